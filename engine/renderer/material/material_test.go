package material

import (
	"encoding/binary"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewMaterialDefaults(t *testing.T) {
	m := NewMaterial()
	assert.Equal(t, [4]float32{1, 1, 1, 1}, m.BaseColor())
	assert.Equal(t, float32(0), m.Metallic())
	assert.Equal(t, float32(1), m.Roughness())
}

func TestNewMaterialClampsFactors(t *testing.T) {
	tests := []struct {
		name          string
		metallic      float32
		roughness     float32
		wantMetallic  float32
		wantRoughness float32
	}{
		{"zero roughness floored", 0.5, 0, 0.5, minRoughness},
		{"negative factors", -0.5, -1, 0, minRoughness},
		{"overshoot factors", 2, 5, 1, 1},
		{"in-range untouched", 0.25, 0.75, 0.25, 0.75},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m := NewMaterial(WithMetallic(tt.metallic), WithRoughness(tt.roughness))
			assert.Equal(t, tt.wantMetallic, m.Metallic())
			assert.Equal(t, tt.wantRoughness, m.Roughness())
		})
	}
}

func TestGPUMaterialMarshalLayout(t *testing.T) {
	m := NewMaterial(
		WithName("worn_gold"),
		WithBaseColor(1.0, 0.8, 0.2, 0.5),
		WithMetallic(0.9),
		WithRoughness(0.3),
	)
	g := ToGPUMaterial(m)
	require.Equal(t, 32, g.Size())

	buf := g.Marshal()
	require.Len(t, buf, 32)

	at := func(offset int) float32 {
		return math.Float32frombits(binary.LittleEndian.Uint32(buf[offset:]))
	}
	assert.Equal(t, float32(1.0), at(0))
	assert.Equal(t, float32(0.8), at(4))
	assert.Equal(t, float32(0.2), at(8))
	assert.Equal(t, float32(0.5), at(12))
	assert.Equal(t, float32(0.9), at(16))
	assert.Equal(t, float32(0.3), at(20))
	for i := 24; i < 32; i++ {
		assert.Zero(t, buf[i])
	}
}
