package light

import (
	"encoding/binary"
	"math"
	"testing"

	"github.com/Carmen-Shannon/brink/common"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func f32At(t *testing.T, buf []byte, offset int) float32 {
	t.Helper()
	return math.Float32frombits(binary.LittleEndian.Uint32(buf[offset:]))
}

func TestNewLightDefaults(t *testing.T) {
	l := NewLight(LightTypePoint)
	assert.Equal(t, LightTypePoint, l.Type())
	assert.Equal(t, [3]float32{1, 1, 1}, l.Color())
	assert.Equal(t, float32(1.0), l.Intensity())
	assert.Equal(t, [3]float32{0, -1, 0}, l.Direction())
}

func TestWithDirectionNormalizes(t *testing.T) {
	l := NewLight(LightTypeDirectional, WithDirection(0, -2, 0))
	assert.Equal(t, [3]float32{0, -1, 0}, l.Direction())

	l.SetDirection(3, 0, 4)
	dir := l.Direction()
	assert.InDelta(t, 0.6, dir[0], 1e-6)
	assert.InDelta(t, 0.8, dir[2], 1e-6)
}

func TestWithLuminousIntensityConversion(t *testing.T) {
	l := NewLight(LightTypePoint, WithLuminousIntensity(683))
	assert.InDelta(t, 4*math.Pi, l.Intensity(), 1e-4)
}

func TestSpotConeStoredInRadians(t *testing.T) {
	l := NewLight(LightTypeSpot, WithSpotCone(30, 45))
	assert.InDelta(t, math.Pi/6, l.InnerAngle(), 1e-6)
	assert.InDelta(t, math.Pi/4, l.OuterAngle(), 1e-6)
}

func TestGPULightMarshalOffsets(t *testing.T) {
	l := NewLight(LightTypeSpot,
		WithPosition(1, 2, 3),
		WithDirection(0, 0, -1),
		WithColor(0.5, 0.25, 0.125),
		WithIntensity(7),
		WithSpotCone(10, 20),
	)
	g := ToGPULight(l)
	require.Equal(t, 128, g.Size())

	buf := g.Marshal()
	require.Len(t, buf, 128)

	assert.Equal(t, float32(1), f32At(t, buf, 64))
	assert.Equal(t, float32(2), f32At(t, buf, 68))
	assert.Equal(t, float32(3), f32At(t, buf, 72))
	assert.Equal(t, uint32(LightTypeSpot), binary.LittleEndian.Uint32(buf[76:]))
	assert.Equal(t, float32(0.5), f32At(t, buf, 80))
	assert.Equal(t, float32(7), f32At(t, buf, 92))
	assert.Equal(t, float32(-1), f32At(t, buf, 104))
	assert.InDelta(t, float64(degToRad(10)), float64(f32At(t, buf, 108)), 1e-6)
	assert.InDelta(t, float64(degToRad(20)), float64(f32At(t, buf, 112)), 1e-6)

	// Tail padding stays zeroed.
	for i := 116; i < 128; i++ {
		assert.Zero(t, buf[i])
	}
}

func TestToGPULightNilSlot(t *testing.T) {
	g := ToGPULight(nil)
	assert.Equal(t, GPULight{}, g)
	assert.Equal(t, uint32(LightTypeNil), g.LightType)
}

func TestMarshalLightArraySlotStride(t *testing.T) {
	var slots [MaxLights]Light
	slots[1] = NewLight(LightTypePoint, WithPosition(5, 6, 7))

	buf := MarshalLightArray(slots)
	require.Len(t, buf, MaxLights*128)

	// Slot 0 empty, slot 1 occupied at its own 128-byte stride.
	assert.Equal(t, uint32(LightTypeNil), binary.LittleEndian.Uint32(buf[76:]))
	assert.Equal(t, uint32(LightTypePoint), binary.LittleEndian.Uint32(buf[128+76:]))
	assert.Equal(t, float32(5), f32At(t, buf, 128+64))
}

func TestViewProjectionMapsFrustumCenter(t *testing.T) {
	tests := []struct {
		name  string
		light Light
		// A point expected to be well inside the light's shadow frustum.
		point [3]float32
	}{
		{
			"directional",
			NewLight(LightTypeDirectional, WithDirection(0, -1, 0)),
			[3]float32{0, 0, 0},
		},
		{
			"spot",
			NewLight(LightTypeSpot, WithPosition(0, 10, 0), WithDirection(0, -1, 0), WithSpotCone(20, 40)),
			[3]float32{0, 0, 0},
		},
		{
			"point",
			NewLight(LightTypePoint, WithPosition(0, 10, 0), WithDirection(0, -1, 0)),
			[3]float32{0, 0, 0},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var vp [16]float32
			tt.light.ViewProjection(vp[:])

			ndcX, ndcY, ndcZ, w := common.TransformPoint(vp[:], tt.point[0], tt.point[1], tt.point[2])
			require.NotZero(t, w)
			assert.LessOrEqual(t, float64(ndcX), 1.0)
			assert.GreaterOrEqual(t, float64(ndcX), -1.0)
			assert.LessOrEqual(t, float64(ndcY), 1.0)
			assert.GreaterOrEqual(t, float64(ndcY), -1.0)
			assert.LessOrEqual(t, float64(ndcZ), 1.0)
			assert.GreaterOrEqual(t, float64(ndcZ), 0.0)
		})
	}
}

func TestNilTypeViewProjectionZeroes(t *testing.T) {
	l := NewLight(LightTypeNil)
	vp := [16]float32{1, 1, 1, 1, 1, 1, 1, 1, 1, 1, 1, 1, 1, 1, 1, 1}
	l.ViewProjection(vp[:])
	assert.Equal(t, [16]float32{}, vp)
}
