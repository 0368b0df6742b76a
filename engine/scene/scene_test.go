package scene

import (
	"testing"

	"github.com/Carmen-Shannon/brink/engine/camera"
	"github.com/Carmen-Shannon/brink/engine/light"
	"github.com/Carmen-Shannon/brink/engine/model"
	"github.com/Carmen-Shannon/brink/engine/renderer/material"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testScene(t *testing.T, options ...SceneBuilderOption) Scene {
	t.Helper()
	opts := append([]SceneBuilderOption{
		WithCamera(camera.NewCamera(camera.WithPosition(0, 2, 5))),
	}, options...)
	return NewScene("test", opts...)
}

func TestNewSceneRequiresCamera(t *testing.T) {
	assert.Panics(t, func() {
		NewScene("no_camera")
	})
}

func TestLightSlotSemantics(t *testing.T) {
	s := testScene(t)

	l := light.NewLight(light.LightTypePoint, light.WithPosition(0, 4, 0))
	require.NoError(t, s.SetLight(2, l))
	assert.Nil(t, s.Light(0))
	assert.Nil(t, s.Light(1))
	assert.Equal(t, l, s.Light(2))

	// Clearing a slot with nil empties it.
	require.NoError(t, s.SetLight(2, nil))
	assert.Nil(t, s.Light(2))

	assert.Error(t, s.SetLight(-1, l))
	assert.Error(t, s.SetLight(light.MaxLights, l))
	assert.Nil(t, s.Light(light.MaxLights))
}

func TestMeshRegistry(t *testing.T) {
	s := testScene(t)

	id := s.AddMesh(model.NewPlane(5))
	require.NotNil(t, s.Mesh(id))
	assert.Equal(t, 1, s.MeshCount())

	assert.True(t, s.RemoveMesh(id))
	assert.False(t, s.RemoveMesh(id))
	assert.Nil(t, s.Mesh(id))
	assert.Equal(t, 0, s.MeshCount())
}

func TestSnapshotUniformSizes(t *testing.T) {
	s := testScene(t,
		WithMaterial(material.NewMaterial(material.WithBaseColor(1, 0, 0, 1))),
		WithLights(
			light.NewLight(light.LightTypeDirectional, light.WithDirection(0, -1, 0)),
			light.NewLight(light.LightTypePoint, light.WithPosition(0, 3, 0)),
		),
		WithMeshes(model.NewPlane(10), model.NewCube(1)),
	)

	fs := s.Snapshot()
	require.NotNil(t, fs)

	assert.Len(t, fs.CameraUniform, 80)
	assert.Len(t, fs.LightArray, light.MaxLights*128)
	assert.Len(t, fs.MaterialUniform, 32)

	assert.True(t, fs.LightActive[0])
	assert.True(t, fs.LightActive[1])
	assert.False(t, fs.LightActive[2])
	assert.False(t, fs.LightActive[3])

	// An active slot carries a non-zero light view-projection.
	var zero [16]float32
	assert.NotEqual(t, zero, fs.LightViewProjections[0])
	assert.Equal(t, zero, fs.LightViewProjections[2])
}

func TestSnapshotMeshDraws(t *testing.T) {
	plane := model.NewPlane(10, model.WithName("floor"))
	cube := model.NewCube(1, model.WithName("box"), model.WithInstances(
		model.NewTransform(),
		model.NewTransform(),
	))
	s := testScene(t, WithMeshes(plane, cube))

	fs := s.Snapshot()
	require.Len(t, fs.Meshes, 2)

	// Insertion order is preserved.
	assert.Equal(t, "floor", fs.Meshes[0].Name)
	assert.Equal(t, "box", fs.Meshes[1].Name)

	floor := fs.Meshes[0]
	assert.Len(t, floor.VertexData, 4*model.GPUVertexSize)
	assert.Len(t, floor.IndexData, 6*4)
	assert.Len(t, floor.InstanceData, 1*model.GPUInstanceSize)
	assert.Equal(t, 6, floor.IndexCount)
	assert.Equal(t, 1, floor.InstanceCount)

	box := fs.Meshes[1]
	assert.Len(t, box.VertexData, 24*model.GPUVertexSize)
	assert.Len(t, box.IndexData, 36*4)
	assert.Len(t, box.InstanceData, 2*model.GPUInstanceSize)
	assert.Equal(t, 36, box.IndexCount)
	assert.Equal(t, 2, box.InstanceCount)
}

func TestSnapshotManyMeshes(t *testing.T) {
	s := testScene(t, WithSnapshotWorkers(4))
	for range 64 {
		s.AddMesh(model.NewCube(1))
	}

	fs := s.Snapshot()
	require.Len(t, fs.Meshes, 64)
	for _, d := range fs.Meshes {
		assert.NotEmpty(t, d.VertexData)
		assert.NotEmpty(t, d.IndexData)
		assert.NotEmpty(t, d.InstanceData)
	}
}
