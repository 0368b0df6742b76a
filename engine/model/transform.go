package model

import (
	"github.com/go-gl/mathgl/mgl32"
)

// Transform is a decomposed translation/rotation/scale placement for one
// mesh instance. The zero value is not useful; use NewTransform for an
// identity placement.
type Transform struct {
	Translation mgl32.Vec3
	Rotation    mgl32.Quat
	Scale       mgl32.Vec3
}

// NewTransform returns an identity transform: no translation, no rotation,
// unit scale.
//
// Returns:
//   - Transform: the identity transform
func NewTransform() Transform {
	return Transform{
		Rotation: mgl32.QuatIdent(),
		Scale:    mgl32.Vec3{1, 1, 1},
	}
}

// Matrix composes the model-to-world matrix as translate * rotate * scale.
//
// Returns:
//   - mgl32.Mat4: the column-major model matrix
func (t Transform) Matrix() mgl32.Mat4 {
	return mgl32.Translate3D(t.Translation.X(), t.Translation.Y(), t.Translation.Z()).
		Mul4(t.Rotation.Mat4()).
		Mul4(mgl32.Scale3D(t.Scale.X(), t.Scale.Y(), t.Scale.Z()))
}

// NormalRotation builds the 3x3 matrix that transforms model-space normals to
// world space: the rotation matrix times the inverse scale. This is the
// inverse-transpose of the model matrix's upper 3x3 for a TRS transform, and
// keeps normals perpendicular to surfaces under non-uniform scale.
//
// Returns:
//   - mgl32.Mat3: the column-major normal rotation matrix
func (t Transform) NormalRotation() mgl32.Mat3 {
	invScale := mgl32.Diag3(mgl32.Vec3{
		1.0 / t.Scale.X(),
		1.0 / t.Scale.Y(),
		1.0 / t.Scale.Z(),
	})
	return t.Rotation.Mat4().Mat3().Mul3(invScale)
}

// ToGPUInstance converts the transform into the per-instance GPU attributes.
//
// Returns:
//   - GPUInstance: the GPU representation
func (t Transform) ToGPUInstance() GPUInstance {
	return GPUInstance{
		Model:          [16]float32(t.Matrix()),
		NormalRotation: [9]float32(t.NormalRotation()),
	}
}
