package light

import (
	"github.com/Carmen-Shannon/brink/common"
)

// MaxLights is the number of light slots in a scene. Every slot owns one layer
// of the shadow depth texture array and one 128-byte entry in the light uniform
// buffer, whether or not the slot is occupied. Empty slots carry LightTypeNil.
const MaxLights = 4

// ShadowMapResolution is the width and height in texels of each layer of the
// shadow depth texture array.
const ShadowMapResolution = 2048

// ShadowBias is the constant depth bias subtracted from the fragment's
// light-space depth before comparing against the sampled shadow depth.
// Reduces shadow acne from depth quantization.
const ShadowBias float32 = 1e-6

// DefaultShadowHalfExtent is the orthographic half-extent (in world units)
// used for the directional light shadow frustum. Controls how much of the
// scene around the origin is captured in the shadow map.
const DefaultShadowHalfExtent float32 = 40.0

// DefaultShadowNear is the near plane for light shadow projections.
const DefaultShadowNear float32 = 0.1

// DefaultShadowFar is the far plane for light shadow projections.
const DefaultShadowFar float32 = 200.0

// directionalViewProjection builds an orthographic view-projection matrix for a
// directional light's shadow pass. The frustum is centered on the world origin
// and looks along the light's travel direction from far behind the scene.
func directionalViewProjection(out []float32, dir [3]float32) {
	eyeX := -dir[0] * DefaultShadowFar * 0.5
	eyeY := -dir[1] * DefaultShadowFar * 0.5
	eyeZ := -dir[2] * DefaultShadowFar * 0.5
	upX, upY, upZ := shadowUp(dir)

	var view, proj [16]float32
	common.LookTo(view[:], eyeX, eyeY, eyeZ, dir[0], dir[1], dir[2], upX, upY, upZ)
	common.Ortho(proj[:],
		-DefaultShadowHalfExtent, DefaultShadowHalfExtent,
		-DefaultShadowHalfExtent, DefaultShadowHalfExtent,
		DefaultShadowNear, DefaultShadowFar,
	)
	common.Mul4(out, proj[:], view[:])
}

// spotViewProjection builds a perspective view-projection matrix for a spot
// light's shadow pass. The vertical field of view covers the full outer cone.
func spotViewProjection(out []float32, pos, dir [3]float32, outerAngle float32) {
	upX, upY, upZ := shadowUp(dir)
	var view, proj [16]float32
	common.LookTo(view[:], pos[0], pos[1], pos[2], dir[0], dir[1], dir[2], upX, upY, upZ)
	common.Perspective(proj[:], 2.0*outerAngle, 1.0, DefaultShadowNear, DefaultShadowFar)
	common.Mul4(out, proj[:], view[:])
}

// pointViewProjection builds a perspective view-projection matrix for a point
// light's shadow pass. A single 90-degree frustum along the light's stored
// direction stands in for a full cube map; occluders outside it do not shadow.
func pointViewProjection(out []float32, pos, dir [3]float32) {
	upX, upY, upZ := shadowUp(dir)
	var view, proj [16]float32
	common.LookTo(view[:], pos[0], pos[1], pos[2], dir[0], dir[1], dir[2], upX, upY, upZ)
	common.Perspective(proj[:], degToRad(90), 1.0, DefaultShadowNear, DefaultShadowFar)
	common.Mul4(out, proj[:], view[:])
}

// shadowUp chooses a stable up vector that is not parallel to the light
// direction. If the light points nearly straight up or down, use X-axis as up.
func shadowUp(dir [3]float32) (upX, upY, upZ float32) {
	upX, upY, upZ = 0, 1, 0
	if absF32(dir[1]) > 0.99 {
		upX, upY, upZ = 1, 0, 0
	}
	return upX, upY, upZ
}

// absF32 returns the absolute value of a float32.
func absF32(v float32) float32 {
	if v < 0 {
		return -v
	}
	return v
}
