package shading

import (
	"math"
	"testing"

	"github.com/Carmen-Shannon/brink/engine/light"
	"github.com/Carmen-Shannon/brink/engine/renderer/material"
	"github.com/go-gl/mathgl/mgl32"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func defaultMaterial() material.Material {
	return material.NewMaterial(
		material.WithBaseColor(1, 1, 1, 1),
		material.WithMetallic(0),
		material.WithRoughness(0.5),
	)
}

func upSurface(pos mgl32.Vec3) Surface {
	return Surface{WorldPosition: pos, WorldNormal: mgl32.Vec3{0, 1, 0}}
}

func TestTransformVertexWorldAndClip(t *testing.T) {
	model := mgl32.Translate3D(1, 2, 3)
	viewProj := mgl32.Scale3D(2, 2, 2)
	normalRot := mgl32.Ident3()

	out := TransformVertex(viewProj, model, normalRot, mgl32.Vec3{1, 0, 0}, mgl32.Vec3{0, 1, 0})

	assert.InDelta(t, 2.0, out.WorldPosition.X(), 1e-6)
	assert.InDelta(t, 2.0, out.WorldPosition.Y(), 1e-6)
	assert.InDelta(t, 3.0, out.WorldPosition.Z(), 1e-6)

	assert.InDelta(t, 4.0, out.ClipPosition.X(), 1e-6)
	assert.InDelta(t, 4.0, out.ClipPosition.Y(), 1e-6)
	assert.InDelta(t, 6.0, out.ClipPosition.Z(), 1e-6)
	assert.InDelta(t, 1.0, out.ClipPosition.W(), 1e-6)

	assert.InDelta(t, 1.0, out.WorldNormal.Len(), 1e-6)
}

func TestTransformVertexNormalizesScaledNormals(t *testing.T) {
	// A transform with non-uniform scale must use the separate normal
	// rotation matrix, not the model matrix, to keep normals unit length.
	normalRot := mgl32.Diag3(mgl32.Vec3{0.5, 1, 1})
	out := TransformVertex(mgl32.Ident4(), mgl32.Scale3D(2, 1, 1), normalRot, mgl32.Vec3{}, mgl32.Vec3{1, 1, 0})

	assert.InDelta(t, 1.0, out.WorldNormal.Len(), 1e-6)
	// Direction favors Y after the inverse-scale correction.
	assert.Greater(t, out.WorldNormal.Y(), out.WorldNormal.X())
}

func TestDepthSliceClearWriteSample(t *testing.T) {
	s := NewDepthSlice(4)
	assert.InDelta(t, 1.0, s.At(0, 0), 1e-6)

	s.Write(1, 1, 0.5)
	assert.InDelta(t, 0.5, s.At(1, 1), 1e-6)

	// Depth test keeps the nearer value.
	s.Write(1, 1, 0.8)
	assert.InDelta(t, 0.5, s.At(1, 1), 1e-6)
	s.Write(1, 1, 0.2)
	assert.InDelta(t, 0.2, s.At(1, 1), 1e-6)

	// Out-of-range writes are discarded, reads see the far plane.
	s.Write(-1, 9, 0.0)
	assert.InDelta(t, 1.0, s.At(-1, 9), 1e-6)
}

func TestDepthSliceBilinearSample(t *testing.T) {
	s := NewDepthSlice(2)
	for y := range 2 {
		for x := range 2 {
			s.Write(x, y, 0.0)
		}
	}
	s.texels[0] = 0.0
	s.texels[1] = 1.0
	s.texels[2] = 0.0
	s.texels[3] = 1.0

	// Dead center of the texture sits halfway between texel centers.
	assert.InDelta(t, 0.5, s.Sample(0.5, 0.5), 1e-6)
	// On a texel center the filtered value is the stored value.
	assert.InDelta(t, 0.0, s.Sample(0.25, 0.25), 1e-6)
	// Clamp-to-edge beyond the border.
	assert.InDelta(t, 0.0, s.Sample(-1.0, 0.25), 1e-6)
	assert.InDelta(t, 1.0, s.Sample(2.0, 0.25), 1e-6)
}

func TestProjectToShadowUVFlipsY(t *testing.T) {
	u, v, depth := ProjectToShadowUV(mgl32.Ident4(), mgl32.Vec3{0.5, 0.5, 0.3})
	assert.InDelta(t, 0.75, u, 1e-6)
	assert.InDelta(t, 0.25, v, 1e-6)
	assert.InDelta(t, 0.3, depth, 1e-6)
}

func TestShadowTestBiasComparison(t *testing.T) {
	s := NewDepthSlice(4)
	for y := range 4 {
		for x := range 4 {
			s.Write(x, y, 0.1)
		}
	}

	// Fragment depth 0.5 against stored 0.1: occluded.
	assert.True(t, ShadowTest(mgl32.Ident4(), mgl32.Vec3{0, 0, 0.5}, s))
	// Fragment at exactly the stored depth: the bias keeps it lit.
	assert.False(t, ShadowTest(mgl32.Ident4(), mgl32.Vec3{0, 0, 0.1}, s))
	// Fragment nearer than the occluder: lit.
	assert.False(t, ShadowTest(mgl32.Ident4(), mgl32.Vec3{0, 0, 0.05}, s))
}

func TestOccludedLightContributesNothing(t *testing.T) {
	// A point light whose entire shadow slice reads nearer depths than any
	// fragment: every fragment is occluded, so the result is ambient only.
	shadows := NewDepthArray(8)
	for y := range 8 {
		for x := range 8 {
			shadows.Slice(0).Write(x, y, 0.0)
		}
	}

	l := light.NewLight(light.LightTypePoint,
		light.WithPosition(0, 5, 0),
		light.WithIntensity(100),
	)
	var slots [light.MaxLights]light.Light
	slots[0] = l

	mat := defaultMaterial()
	got := AccumulateLights(slots, shadows, mgl32.Vec3{0, 3, 0}, mat, upSurface(mgl32.Vec3{0, 0, 0}))

	assert.InDelta(t, 0.1, got.X(), 1e-6)
	assert.InDelta(t, 0.1, got.Y(), 1e-6)
	assert.InDelta(t, 0.1, got.Z(), 1e-6)
}

func TestPointLightInverseSquareLaw(t *testing.T) {
	mat := defaultMaterial()
	camera := mgl32.Vec3{0, 1, 4}
	surf := upSurface(mgl32.Vec3{0, 0, 0})

	ambient := mgl32.Vec3{0.1, 0.1, 0.1}

	near := light.NewLight(light.LightTypePoint,
		light.WithPosition(0, 2, 0),
		light.WithIntensity(8),
	)
	far := light.NewLight(light.LightTypePoint,
		light.WithPosition(0, 4, 0),
		light.WithIntensity(8),
	)

	var slotsNear, slotsFar [light.MaxLights]light.Light
	slotsNear[0] = near
	slotsFar[0] = far

	cNear := AccumulateLights(slotsNear, nil, camera, mat, surf).Sub(ambient)
	cFar := AccumulateLights(slotsFar, nil, camera, mat, surf).Sub(ambient)

	require.Greater(t, cFar.X(), float32(0))
	assert.InEpsilon(t, 4.0, cNear.X()/cFar.X(), 1e-4)
	assert.InEpsilon(t, 4.0, cNear.Y()/cFar.Y(), 1e-4)
	assert.InEpsilon(t, 4.0, cNear.Z()/cFar.Z(), 1e-4)
}

func TestDirectionalLightDistanceIndependent(t *testing.T) {
	mat := defaultMaterial()
	l := light.NewLight(light.LightTypeDirectional,
		light.WithDirection(0, -1, 0),
		light.WithIntensity(10),
	)
	var slots [light.MaxLights]light.Light
	slots[0] = l

	// Two fragments at different heights under the same light, with the
	// camera moved in lockstep so the BRDF geometry is identical.
	a := AccumulateLights(slots, nil, mgl32.Vec3{0, 5, 0}, mat, upSurface(mgl32.Vec3{0, 0, 0}))
	b := AccumulateLights(slots, nil, mgl32.Vec3{0, -95, 0}, mat, upSurface(mgl32.Vec3{0, -100, 0}))

	assert.InDelta(t, a.X(), b.X(), 1e-6)
	assert.InDelta(t, a.Y(), b.Y(), 1e-6)
	assert.InDelta(t, a.Z(), b.Z(), 1e-6)
}

func TestSpotConeFalloffRamp(t *testing.T) {
	axis := mgl32.Vec3{0, -1, 0}
	lightPos := mgl32.Vec3{0, 0, 0}
	inner := float32(0.3)
	outer := float32(0.6)

	fragAt := func(angle float32) mgl32.Vec3 {
		return mgl32.Vec3{sin32(angle), -cos32(angle), 0}
	}

	assert.InDelta(t, 1.0, SpotConeFalloff(axis, lightPos, fragAt(0), inner, outer), 1e-6)
	assert.InDelta(t, 1.0, SpotConeFalloff(axis, lightPos, fragAt(inner), inner, outer), 1e-4)
	assert.InDelta(t, 0.5, SpotConeFalloff(axis, lightPos, fragAt(0.45), inner, outer), 1e-4)
	assert.InDelta(t, 0.0, SpotConeFalloff(axis, lightPos, fragAt(outer), inner, outer), 1e-4)
	assert.InDelta(t, 0.0, SpotConeFalloff(axis, lightPos, fragAt(1.0), inner, outer), 1e-6)
}

func TestSpotOutsideConeSkipsOnlyThatLight(t *testing.T) {
	mat := defaultMaterial()
	camera := mgl32.Vec3{0, 3, 0}
	surf := upSurface(mgl32.Vec3{0, 0, 0})

	// Slot 0: spot light aimed away from the fragment. Slot 1: point light
	// that must still be evaluated.
	spot := light.NewLight(light.LightTypeSpot,
		light.WithPosition(0, 5, 0),
		light.WithDirection(0, 1, 0),
		light.WithIntensity(100),
		light.WithSpotCone(10, 20),
	)
	point := light.NewLight(light.LightTypePoint,
		light.WithPosition(0, 2, 0),
		light.WithIntensity(8),
	)

	var slots [light.MaxLights]light.Light
	slots[0] = spot
	slots[1] = point

	got := AccumulateLights(slots, nil, camera, mat, surf)

	var pointOnly [light.MaxLights]light.Light
	pointOnly[1] = point
	want := AccumulateLights(pointOnly, nil, camera, mat, surf)

	require.Greater(t, got.X(), float32(0.1), "the later light slot must still contribute")
	assert.InDelta(t, want.X(), got.X(), 1e-6)
	assert.InDelta(t, want.Y(), got.Y(), 1e-6)
	assert.InDelta(t, want.Z(), got.Z(), 1e-6)
}

func TestNilSlotsContributeNothing(t *testing.T) {
	mat := defaultMaterial()
	var slots [light.MaxLights]light.Light

	got := AccumulateLights(slots, nil, mgl32.Vec3{0, 1, 0}, mat, upSurface(mgl32.Vec3{}))
	assert.InDelta(t, 0.1, got.X(), 1e-6)
	assert.InDelta(t, 0.1, got.Y(), 1e-6)
	assert.InDelta(t, 0.1, got.Z(), 1e-6)
}

func TestToneMapZeroAndRange(t *testing.T) {
	zero := ToneMap(mgl32.Vec3{})
	assert.InDelta(t, 0.0, zero.X(), 1e-6)
	assert.InDelta(t, 0.0, zero.Y(), 1e-6)
	assert.InDelta(t, 0.0, zero.Z(), 1e-6)

	inputs := []mgl32.Vec3{
		{0.5, 0.5, 0.5},
		{1, 0, 0},
		{10, 10, 10},
		{1000, 0.001, 3},
	}
	for _, in := range inputs {
		out := ToneMap(in)
		for i := range 3 {
			assert.GreaterOrEqual(t, out[i], float32(0))
			assert.LessOrEqual(t, out[i], float32(1))
		}
	}
}

func TestToneMapMonotonic(t *testing.T) {
	prev := ToneMap(mgl32.Vec3{})
	for v := float32(0.05); v < 20; v += 0.05 {
		cur := ToneMap(mgl32.Vec3{v, v, v})
		for i := range 3 {
			assert.GreaterOrEqual(t, cur[i]+1e-6, prev[i], "tone curve must be non-decreasing at %f", v)
		}
		prev = cur
	}
}

func TestDirectLitBrighterThanAmbient(t *testing.T) {
	// Single overhead directional light on a white dielectric surface viewed
	// from above: the result must clearly exceed the ambient-only baseline.
	mat := defaultMaterial()
	l := light.NewLight(light.LightTypeDirectional,
		light.WithDirection(0, -1, 0),
		light.WithIntensity(10),
	)
	var slots [light.MaxLights]light.Light
	slots[0] = l

	lit := Shade(slots, nil, mgl32.Vec3{0, 5, 0}, mat, upSurface(mgl32.Vec3{}))

	var none [light.MaxLights]light.Light
	baseline := Shade(none, nil, mgl32.Vec3{0, 5, 0}, mat, upSurface(mgl32.Vec3{}))

	for i := range 3 {
		assert.Greater(t, lit[i], baseline[i])
	}
	assert.InDelta(t, 1.0, lit.W(), 1e-6, "alpha passes through")
}

func TestPointAndDirectionalShareBRDF(t *testing.T) {
	// A point light and a directional light tuned to deliver the same power
	// from the same direction must contribute identically: the BRDF depends
	// only on directions and material, never on the light type.
	mat := defaultMaterial()
	camera := mgl32.Vec3{0, 1, 3}
	surf := upSurface(mgl32.Vec3{0, 0, 0})
	ambient := mgl32.Vec3{0.1, 0.1, 0.1}

	// Point at distance 2 with intensity 4: power = 4/4 = 1.
	point := light.NewLight(light.LightTypePoint,
		light.WithPosition(0, 2, 0),
		light.WithIntensity(4),
	)
	// Directional with intensity 5: power = 0.2*5 = 1, from the same direction.
	directional := light.NewLight(light.LightTypeDirectional,
		light.WithDirection(0, -1, 0),
		light.WithIntensity(5),
	)

	var pSlots, dSlots [light.MaxLights]light.Light
	pSlots[0] = point
	dSlots[0] = directional

	cPoint := AccumulateLights(pSlots, nil, camera, mat, surf).Sub(ambient)
	cDir := AccumulateLights(dSlots, nil, camera, mat, surf).Sub(ambient)

	assert.InDelta(t, cPoint.X(), cDir.X(), 1e-6)
	assert.InDelta(t, cPoint.Y(), cDir.Y(), 1e-6)
	assert.InDelta(t, cPoint.Z(), cDir.Z(), 1e-6)
}

func TestRenderedDepthsOccludeFragments(t *testing.T) {
	// An occluder plane at y=1 between an overhead directional light and a
	// fragment at y=0 must shadow it; a fragment above the plane stays lit.
	l := light.NewLight(light.LightTypeDirectional, light.WithDirection(0, -1, 0))
	var vp mgl32.Mat4
	l.ViewProjection(vp[:])

	// Vertex grid dense enough to cover every texel of a small slice.
	var positions []mgl32.Vec3
	for x := -40; x <= 40; x++ {
		for z := -40; z <= 40; z++ {
			positions = append(positions, mgl32.Vec3{float32(x), 1, float32(z)})
		}
	}

	slice := NewDepthSlice(8)
	RenderMeshDepths(slice, vp, []mgl32.Mat4{mgl32.Ident4()}, positions)

	assert.True(t, ShadowTest(vp, mgl32.Vec3{0, 0, 0}, slice), "fragment below the occluder is shadowed")
	assert.False(t, ShadowTest(vp, mgl32.Vec3{0, 2, 0}, slice), "fragment above the occluder is lit")
}

func TestBRDFSpecularNormalization(t *testing.T) {
	// Symmetric overhead geometry: halfway == normal, so the distribution
	// sits at its maximum a²/π and fresnel reduces to f0.
	lightDir := mgl32.Vec3{0, 1, 0}
	viewDir := mgl32.Vec3{0, 1, 0}
	normal := mgl32.Vec3{0, 1, 0}

	got := EvaluateBRDF(lightDir, viewDir, normal, mgl32.Vec3{1, 1, 1}, 0, 0.5)

	// diffuse: (1-f0)*(1-0)*1/π per channel with f0=0.4 → 0.6/π ≈ 0.19099.
	// specular: f0 * D * G / 4 with D = 0.25/π·(0.25·(0.25-1)+1)² and
	// k=(1.5)²/8, G=(1/(1-k)+k)² = 1.
	// Hand-computed total ≈ 0.24183 per channel.
	for i := range 3 {
		assert.InDelta(t, 0.24183, got[i], 1e-3)
	}
}

func TestUnknownLightTagContributesNothing(t *testing.T) {
	mat := defaultMaterial()
	cameraPos := mgl32.Vec3{0, 5, 0}
	surf := upSurface(mgl32.Vec3{0, 0, 0})

	var empty [light.MaxLights]light.Light
	ambientOnly := AccumulateLights(empty, nil, cameraPos, mat, surf)

	var slots [light.MaxLights]light.Light
	slots[0] = light.NewLight(light.LightType(9), light.WithIntensity(100))
	got := AccumulateLights(slots, nil, cameraPos, mat, surf)

	assert.Equal(t, ambientOnly, got)
}

func TestZeroRoughnessMaterialShadesFinite(t *testing.T) {
	// Construction clamps roughness away from zero, so the specular
	// distribution denominator never collapses and no NaN reaches the
	// tone mapper.
	mat := material.NewMaterial(
		material.WithBaseColor(1, 1, 1, 1),
		material.WithMetallic(1),
		material.WithRoughness(0),
	)
	l := light.NewLight(light.LightTypeDirectional,
		light.WithDirection(0, -1, 0),
		light.WithIntensity(5),
	)
	var slots [light.MaxLights]light.Light
	slots[0] = l

	got := Shade(slots, nil, mgl32.Vec3{0, 5, 0}, mat, upSurface(mgl32.Vec3{0, 0, 0}))

	for i := range 4 {
		require.False(t, math.IsNaN(float64(got[i])), "component %d is NaN", i)
	}
	assert.Greater(t, got.X(), float32(0))
	assert.Equal(t, float32(1), got.W())
}

func sin32(v float32) float32 {
	return float32(math.Sin(float64(v)))
}

func cos32(v float32) float32 {
	return float32(math.Cos(float64(v)))
}
