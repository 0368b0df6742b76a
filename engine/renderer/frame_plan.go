package renderer

import (
	"github.com/Carmen-Shannon/brink/engine/light"
	"github.com/Carmen-Shannon/brink/engine/scene"
)

// DrawRef references one mesh draw inside a FramePlan by its index into the
// snapshot's mesh list.
type DrawRef struct {
	MeshIndex     int
	InstanceCount uint32
}

// ShadowPassPlan is the plan for one shadow map layer. Every slot gets a pass
// each frame so stale depth never survives a light being removed; inactive
// slots carry no draws and their pass only clears the layer to the far plane.
type ShadowPassPlan struct {
	Slot           int
	Active         bool
	ViewProjection [16]float32
	Draws          []DrawRef
}

// FramePlan is the CPU-side execution plan for one frame: the four shadow
// passes in slot order followed by the main pass draws. Shadow passes are
// encoded before the main pass so every shadow map layer is complete when the
// lit fragment shader reads it.
type FramePlan struct {
	ShadowPasses [light.MaxLights]ShadowPassPlan
	MainDraws    []DrawRef
}

// BuildFramePlan derives the pass and draw ordering for a frame snapshot.
// Meshes with no geometry or no instances are skipped in both pass kinds.
//
// Parameters:
//   - fs: the frame snapshot to plan
//
// Returns:
//   - *FramePlan: the execution plan
func BuildFramePlan(fs *scene.FrameState) *FramePlan {
	plan := &FramePlan{}

	draws := make([]DrawRef, 0, len(fs.Meshes))
	for i, m := range fs.Meshes {
		if m.IndexCount == 0 || m.InstanceCount == 0 {
			continue
		}
		draws = append(draws, DrawRef{MeshIndex: i, InstanceCount: uint32(m.InstanceCount)})
	}
	plan.MainDraws = draws

	for slot := range plan.ShadowPasses {
		pass := ShadowPassPlan{
			Slot:           slot,
			Active:         fs.LightActive[slot],
			ViewProjection: fs.LightViewProjections[slot],
		}
		if pass.Active {
			pass.Draws = draws
		}
		plan.ShadowPasses[slot] = pass
	}

	return plan
}
