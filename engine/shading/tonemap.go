package shading

import (
	"github.com/Carmen-Shannon/brink/common"
	"github.com/Carmen-Shannon/brink/engine/light"
	"github.com/Carmen-Shannon/brink/engine/renderer/material"
	"github.com/go-gl/mathgl/mgl32"
)

// acesInput transforms linear HDR radiance into the ACES working space.
// Stephen Hill's fitted constants; mgl32.Mat3 literals are column-major.
var acesInput = mgl32.Mat3{
	0.59719, 0.07600, 0.02840,
	0.35458, 0.90834, 0.13383,
	0.04823, 0.01566, 0.83777,
}

// acesOutput transforms the tone-compressed value back to display RGB.
var acesOutput = mgl32.Mat3{
	1.60475, -0.10208, -0.00327,
	-0.53108, 1.10813, -0.07276,
	-0.07367, -0.00605, 1.07602,
}

// ToneMap compresses accumulated HDR radiance into the displayable [0,1]
// range with the fitted ACES curve: transform into the ACES working space,
// apply the rational tone curve per channel, transform back, and clamp.
// Applied once per fragment after all lights and the ambient term are summed.
//
// Parameters:
//   - hdr: the accumulated HDR radiance
//
// Returns:
//   - mgl32.Vec3: the displayable color, componentwise in [0,1]
func ToneMap(hdr mgl32.Vec3) mgl32.Vec3 {
	v := acesInput.Mul3x1(hdr)

	a := mul3(v, v.Add(mgl32.Vec3{0.0245786, 0.0245786, 0.0245786})).
		Sub(mgl32.Vec3{0.000090537, 0.000090537, 0.000090537})
	b := mul3(v, v.Mul(0.983729).Add(mgl32.Vec3{0.432951, 0.432951, 0.432951})).
		Add(mgl32.Vec3{0.238081, 0.238081, 0.238081})

	mapped := acesOutput.Mul3x1(mgl32.Vec3{
		a.X() / b.X(),
		a.Y() / b.Y(),
		a.Z() / b.Z(),
	})

	return mgl32.Vec3{
		common.Saturate(mapped.X()),
		common.Saturate(mapped.Y()),
		common.Saturate(mapped.Z()),
	}
}

// Shade is the full fragment pipeline in one call: light accumulation over
// the four slots followed by tone mapping. The alpha channel of the material
// base color passes through unchanged.
//
// Parameters:
//   - slots: the scene's light slots
//   - shadows: the shadow depth array (nil skips shadow tests)
//   - cameraPos: the camera's world position
//   - mat: the active material
//   - surf: the fragment's world position and normal
//
// Returns:
//   - mgl32.Vec4: the final display color with the material's alpha
func Shade(slots [light.MaxLights]light.Light, shadows *DepthArray, cameraPos mgl32.Vec3, mat material.Material, surf Surface) mgl32.Vec4 {
	hdr := AccumulateLights(slots, shadows, cameraPos, mat, surf)
	rgb := ToneMap(hdr)
	return rgb.Vec4(mat.BaseColor()[3])
}
