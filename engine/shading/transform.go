// Package shading is the CPU reference implementation of the renderer's
// shading and shadow pipeline: vertex transform, shadow depth testing,
// per-light radiance accumulation, the Cook-Torrance BRDF, and ACES tone
// mapping. The WGSL programs assembled by the renderer package implement the
// same math on the GPU; this package is the testable single source of truth
// for that behavior.
package shading

import (
	"github.com/go-gl/mathgl/mgl32"
)

// TransformedVertex is the output of the full vertex transform: clip-space
// position for rasterization plus the world-space position and normal the
// fragment stage interpolates.
type TransformedVertex struct {
	ClipPosition  mgl32.Vec4
	WorldPosition mgl32.Vec3
	WorldNormal   mgl32.Vec3
}

// TransformVertex maps an object-space vertex through an instance's model and
// normal-rotation matrices into clip space under the given view-projection.
// Pure function; both the shadow and main vertex stages are built on it.
//
// Parameters:
//   - viewProj: the camera or light view-projection matrix
//   - model: the instance's model-to-world matrix
//   - normalRot: the instance's normal rotation matrix (rotation times inverse scale)
//   - position: object-space vertex position
//   - normal: object-space vertex normal
//
// Returns:
//   - TransformedVertex: clip position, world position, and normalized world normal
func TransformVertex(viewProj, model mgl32.Mat4, normalRot mgl32.Mat3, position, normal mgl32.Vec3) TransformedVertex {
	world := model.Mul4x1(position.Vec4(1))
	clip := viewProj.Mul4x1(world)

	worldPos := world.Vec3()
	if w := world.W(); w != 0 && w != 1 {
		worldPos = worldPos.Mul(1 / w)
	}

	return TransformedVertex{
		ClipPosition:  clip,
		WorldPosition: worldPos,
		WorldNormal:   normalRot.Mul3x1(normal).Normalize(),
	}
}

// TransformPosition is the position-only variant of TransformVertex used by
// the shadow depth pass, which discards normals and world positions.
//
// Parameters:
//   - viewProj: the light's view-projection matrix
//   - model: the instance's model-to-world matrix
//   - position: object-space vertex position
//
// Returns:
//   - mgl32.Vec4: the clip-space position
func TransformPosition(viewProj, model mgl32.Mat4, position mgl32.Vec3) mgl32.Vec4 {
	return viewProj.Mul4x1(model.Mul4x1(position.Vec4(1)))
}
