package shading

import (
	"math"

	"github.com/Carmen-Shannon/brink/engine/light"
	"github.com/Carmen-Shannon/brink/engine/renderer/material"
	"github.com/go-gl/mathgl/mgl32"
)

// AmbientFactor scales the material base color to form the constant ambient
// term added after all lights are accumulated.
const AmbientFactor float32 = 0.1

// DirectionalPowerFactor scales directional and spot light intensity; these
// types deliver a fraction of their nominal power compared to point lights.
const DirectionalPowerFactor float32 = 0.2

// Surface is the per-fragment geometric input to the light accumulator.
type Surface struct {
	WorldPosition mgl32.Vec3
	WorldNormal   mgl32.Vec3
}

// AccumulateLights evaluates the full lighting model for one fragment: for
// each of the four light slots it shadow-tests the fragment, dispatches to
// the slot's per-type falloff, weights the BRDF by the light's radiance and
// incidence angle, and sums the contributions. The ambient term is added
// after the loop. The result is HDR radiance; callers tone-map it before
// display.
//
// Empty (nil-typed) slots contribute nothing and skip both the shadow test
// and the BRDF. An occluded light likewise contributes exactly zero without
// invoking the BRDF. A spot fragment outside the outer cone terminates only
// that light's case; remaining slots are still evaluated.
//
// Parameters:
//   - slots: the scene's light slots (nil entries are empty)
//   - shadows: the shadow depth array; slot i tests against slice i (nil skips all shadow tests)
//   - cameraPos: the camera's world position
//   - mat: the active material
//   - surf: the fragment's world position and normal
//
// Returns:
//   - mgl32.Vec3: accumulated HDR radiance including the ambient term
func AccumulateLights(slots [light.MaxLights]light.Light, shadows *DepthArray, cameraPos mgl32.Vec3, mat material.Material, surf Surface) mgl32.Vec3 {
	base := mat.BaseColor()
	baseColor := mgl32.Vec3{base[0], base[1], base[2]}
	viewDir := cameraPos.Sub(surf.WorldPosition).Normalize()

	var sum mgl32.Vec3
	for i, l := range slots {
		if l == nil || l.Type() == light.LightTypeNil {
			continue
		}

		var lightSpace mgl32.Mat4
		l.ViewProjection(lightSpace[:])

		if shadows != nil && ShadowTest(lightSpace, surf.WorldPosition, shadows.Slice(i)) {
			continue
		}

		lightDir, power, lit := lightDirAndPower(l, surf.WorldPosition)
		if !lit {
			continue
		}

		color := l.Color()
		radiance := mgl32.Vec3{color[0] * power, color[1] * power, color[2] * power}

		nDotL := surf.WorldNormal.Dot(lightDir)
		if nDotL < 0 {
			nDotL = 0
		}

		brdf := EvaluateBRDF(lightDir, viewDir, surf.WorldNormal, baseColor, mat.Metallic(), mat.Roughness())
		sum = sum.Add(mul3(brdf, radiance).Mul(nDotL))
	}

	return sum.Add(baseColor.Mul(AmbientFactor))
}

// lightDirAndPower dispatches on the light's type to produce the unit
// direction from the surface toward the light and the scalar power reaching
// the fragment. lit is false when the fragment receives nothing from this
// light (outside a spot's outer cone).
func lightDirAndPower(l light.Light, worldPos mgl32.Vec3) (dir mgl32.Vec3, power float32, lit bool) {
	switch l.Type() {
	case light.LightTypePoint:
		pos := vec3(l.Position())
		toLight := pos.Sub(worldPos)
		distSq := toLight.Dot(toLight)
		return toLight.Normalize(), l.Intensity() / distSq, true

	case light.LightTypeDirectional:
		d := vec3(l.Direction())
		return d.Mul(-1).Normalize(), DirectionalPowerFactor * l.Intensity(), true

	case light.LightTypeSpot:
		pos := vec3(l.Position())
		toLight := pos.Sub(worldPos)
		distSq := toLight.Dot(toLight)
		falloff := SpotConeFalloff(vec3(l.Direction()), pos, worldPos, l.InnerAngle(), l.OuterAngle())
		if falloff == 0 {
			return mgl32.Vec3{}, 0, false
		}
		return toLight.Normalize(), DirectionalPowerFactor * l.Intensity() * falloff / distSq, true

	default:
		return mgl32.Vec3{}, 0, false
	}
}

// SpotConeFalloff computes the linear cone attenuation for a spot light: 1
// inside the inner half-angle, a linear ramp from inner to outer, and 0
// outside the outer half-angle. The angle is measured between the cone axis
// and the vector from the light to the fragment.
//
// Parameters:
//   - axis: the spot light's unit cone axis
//   - lightPos: the light's world position
//   - worldPos: the fragment's world position
//   - inner, outer: cone half-angles in radians (inner ≤ outer)
//
// Returns:
//   - float32: the falloff in [0,1]
func SpotConeFalloff(axis, lightPos, worldPos mgl32.Vec3, inner, outer float32) float32 {
	toFrag := worldPos.Sub(lightPos).Normalize()
	angle := float32(math.Acos(float64(axis.Dot(toFrag))))
	switch {
	case angle < inner:
		return 1
	case angle < outer:
		return (outer - angle) / (outer - inner)
	default:
		return 0
	}
}

func vec3(v [3]float32) mgl32.Vec3 {
	return mgl32.Vec3{v[0], v[1], v[2]}
}
