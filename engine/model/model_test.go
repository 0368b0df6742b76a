package model

import (
	"testing"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTransformMatrixComposesTRS(t *testing.T) {
	tr := NewTransform()
	tr.Translation = mgl32.Vec3{1, 2, 3}
	tr.Scale = mgl32.Vec3{2, 2, 2}

	m := tr.Matrix()
	p := m.Mul4x1(mgl32.Vec4{1, 0, 0, 1})
	// Scale applies before translation.
	assert.InDelta(t, 3, p.X(), 1e-6)
	assert.InDelta(t, 2, p.Y(), 1e-6)
	assert.InDelta(t, 3, p.Z(), 1e-6)
}

func TestNormalRotationUndoesNonUniformScale(t *testing.T) {
	tr := NewTransform()
	tr.Scale = mgl32.Vec3{4, 1, 1}

	// A normal perpendicular to the stretched axis must stay unit length
	// under the normal matrix.
	n := tr.NormalRotation().Mul3x1(mgl32.Vec3{0, 1, 0})
	assert.InDelta(t, 1, n.Len(), 1e-6)

	// Along the stretched axis the normal matrix applies the inverse scale.
	n = tr.NormalRotation().Mul3x1(mgl32.Vec3{1, 0, 0})
	assert.InDelta(t, 0.25, n.X(), 1e-6)
}

func TestNormalRotationMatchesRotation(t *testing.T) {
	tr := NewTransform()
	tr.Rotation = mgl32.QuatRotate(mgl32.DegToRad(90), mgl32.Vec3{0, 1, 0})

	n := tr.NormalRotation().Mul3x1(mgl32.Vec3{0, 0, 1})
	assert.InDelta(t, 1, n.X(), 1e-6)
	assert.InDelta(t, 0, n.Z(), 1e-6)
}

func TestGPUInstanceMarshalLayout(t *testing.T) {
	tr := NewTransform()
	tr.Translation = mgl32.Vec3{5, 6, 7}
	gpu := tr.ToGPUInstance()

	require.Equal(t, GPUInstanceSize, gpu.Size())
	buf := gpu.Marshal()
	require.Len(t, buf, 100)

	// Column-major mat4: translation lands in column 3 (floats 12..14).
	assert.Equal(t, float32(5), gpu.Model[12])
	assert.Equal(t, float32(6), gpu.Model[13])
	assert.Equal(t, float32(7), gpu.Model[14])
}

func TestMeshDefaultsToOneIdentityInstance(t *testing.T) {
	m := NewMesh(WithName("bare"))
	require.Equal(t, 1, m.InstanceCount())
	assert.Equal(t, NewTransform(), m.Instances()[0])
}

func TestMeshInstanceBytes(t *testing.T) {
	m := NewCube(1, WithInstances(NewTransform(), NewTransform(), NewTransform()))
	assert.Len(t, m.InstanceBytes(), 3*GPUInstanceSize)
	assert.Len(t, m.VertexBytes(), 24*GPUVertexSize)
	assert.Len(t, m.IndexBytes(), 36*4)
}

func TestPlaneGeometry(t *testing.T) {
	m := NewPlane(5)
	require.Len(t, m.Vertices(), 4)
	require.Equal(t, 6, m.IndexCount())
	for _, v := range m.Vertices() {
		assert.Equal(t, [3]float32{0, 1, 0}, v.Normal)
		assert.Equal(t, float32(0), v.Position[1])
		assert.Equal(t, float32(5), absf(v.Position[0]))
		assert.Equal(t, float32(5), absf(v.Position[2]))
	}
}

func TestCubeFaceNormals(t *testing.T) {
	m := NewCube(1)
	require.Len(t, m.Vertices(), 24)
	require.Equal(t, 36, m.IndexCount())

	// Each face's four vertices share one axis-aligned unit normal.
	verts := m.Vertices()
	for face := 0; face < 6; face++ {
		n := verts[face*4].Normal
		for i := 1; i < 4; i++ {
			assert.Equal(t, n, verts[face*4+i].Normal)
		}
		assert.InDelta(t, 1, absf(n[0])+absf(n[1])+absf(n[2]), 1e-6)
	}
}

func TestSetInstanceIgnoresOutOfRange(t *testing.T) {
	m := NewMesh()
	moved := NewTransform()
	moved.Translation = mgl32.Vec3{9, 9, 9}

	m.SetInstance(5, moved)
	assert.Equal(t, NewTransform(), m.Instances()[0])

	m.SetInstance(0, moved)
	assert.Equal(t, moved, m.Instances()[0])
}

func absf(v float32) float32 {
	if v < 0 {
		return -v
	}
	return v
}
