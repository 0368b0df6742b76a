package renderer

import (
	"testing"

	"github.com/Carmen-Shannon/brink/engine/light"
	"github.com/Carmen-Shannon/brink/engine/scene"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testFrameState() *scene.FrameState {
	fs := &scene.FrameState{}
	fs.Meshes = []scene.MeshDraw{
		{ID: uuid.New(), Name: "floor", IndexCount: 6, InstanceCount: 1},
		{ID: uuid.New(), Name: "cubes", IndexCount: 36, InstanceCount: 8},
	}
	return fs
}

func TestBuildFramePlanEmitsPassPerSlot(t *testing.T) {
	fs := testFrameState()
	fs.LightActive[0] = true
	fs.LightActive[2] = true

	plan := BuildFramePlan(fs)

	require.Len(t, plan.ShadowPasses, light.MaxLights)
	for slot, pass := range plan.ShadowPasses {
		assert.Equal(t, slot, pass.Slot)
		if fs.LightActive[slot] {
			assert.True(t, pass.Active)
			assert.Len(t, pass.Draws, 2)
		} else {
			// Inactive slots still get a clear-only pass so stale depth data
			// never leaks into the shadow test.
			assert.False(t, pass.Active)
			assert.Empty(t, pass.Draws)
		}
	}
}

func TestBuildFramePlanMainDraws(t *testing.T) {
	fs := testFrameState()

	plan := BuildFramePlan(fs)

	require.Len(t, plan.MainDraws, 2)
	assert.Equal(t, 0, plan.MainDraws[0].MeshIndex)
	assert.Equal(t, uint32(1), plan.MainDraws[0].InstanceCount)
	assert.Equal(t, 1, plan.MainDraws[1].MeshIndex)
	assert.Equal(t, uint32(8), plan.MainDraws[1].InstanceCount)
}

func TestBuildFramePlanSkipsEmptyMeshes(t *testing.T) {
	fs := testFrameState()
	fs.LightActive[1] = true
	fs.Meshes = append(fs.Meshes,
		scene.MeshDraw{ID: uuid.New(), Name: "no_indices", IndexCount: 0, InstanceCount: 1},
		scene.MeshDraw{ID: uuid.New(), Name: "no_instances", IndexCount: 12, InstanceCount: 0},
	)

	plan := BuildFramePlan(fs)

	assert.Len(t, plan.MainDraws, 2)
	assert.Len(t, plan.ShadowPasses[1].Draws, 2)
}

func TestBuildFramePlanNoLights(t *testing.T) {
	fs := testFrameState()

	plan := BuildFramePlan(fs)

	for _, pass := range plan.ShadowPasses {
		assert.False(t, pass.Active)
		assert.Empty(t, pass.Draws)
	}
	assert.Len(t, plan.MainDraws, 2)
}
