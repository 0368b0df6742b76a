package scene

import (
	"github.com/Carmen-Shannon/brink/engine/camera"
	"github.com/Carmen-Shannon/brink/engine/light"
	"github.com/Carmen-Shannon/brink/engine/model"
	"github.com/Carmen-Shannon/brink/engine/renderer/material"
	"github.com/google/uuid"
)

// SceneBuilderOption is a functional option for configuring a Scene.
// Use the With* functions to create options.
type SceneBuilderOption func(s *sceneImpl)

// WithCamera sets the scene's camera. Required: NewScene panics without one.
//
// Parameters:
//   - cam: the camera to use
//
// Returns:
//   - SceneBuilderOption: option function to apply
func WithCamera(cam camera.Camera) SceneBuilderOption {
	return func(s *sceneImpl) {
		s.cam = cam
	}
}

// WithMaterial sets the scene's globally active material. Defaults to a
// plain white material when omitted.
//
// Parameters:
//   - mat: the material to use
//
// Returns:
//   - SceneBuilderOption: option function to apply
func WithMaterial(mat material.Material) SceneBuilderOption {
	return func(s *sceneImpl) {
		s.mat = mat
	}
}

// WithLights fills the scene's light slots in order, starting at slot 0.
// Lights beyond MaxLights are ignored.
//
// Parameters:
//   - lights: the lights to place
//
// Returns:
//   - SceneBuilderOption: option function to apply
func WithLights(lights ...light.Light) SceneBuilderOption {
	return func(s *sceneImpl) {
		for i, l := range lights {
			if i >= light.MaxLights {
				break
			}
			s.slots[i] = l
		}
	}
}

// WithMeshes registers initial meshes with the scene. Each mesh is assigned
// a fresh registry handle.
//
// Parameters:
//   - meshes: the meshes to register
//
// Returns:
//   - SceneBuilderOption: option function to apply
func WithMeshes(meshes ...model.Mesh) SceneBuilderOption {
	return func(s *sceneImpl) {
		for _, m := range meshes {
			id := uuid.New()
			s.meshes[id] = m
			s.order = append(s.order, id)
		}
	}
}

// WithSnapshotWorkers sets the number of worker goroutines used to marshal
// per-mesh draw data during Snapshot. Defaults to runtime.NumCPU()-1.
//
// Parameters:
//   - n: the number of workers (minimum 1)
//
// Returns:
//   - SceneBuilderOption: option function to apply
func WithSnapshotWorkers(n int) SceneBuilderOption {
	return func(s *sceneImpl) {
		if n < 1 {
			n = 1
		}
		s.workers = n
	}
}
