package material

import (
	_ "embed"
	"encoding/binary"
	"math"
	"unsafe"
)

// GPUMaterialSource is the canonical WGSL definition of the Material struct.
// Matches GPUMaterial layout exactly (32 bytes, uniform aligned).
//
//go:embed assets/material.wgsl
var GPUMaterialSource string

// GPUMaterial is the GPU-aligned uniform for the lit fragment shader's
// material factors.
// Matches the WGSL Material struct layout exactly (see GPUMaterialSource).
// Size: 32 bytes (uniform / WGSL aligned).
//
// Layout:
//
//	vec4<f32> base_color  (16 bytes, offset  0)
//	f32       metallic    ( 4 bytes, offset 16)
//	f32       roughness   ( 4 bytes, offset 20)
//	(8 bytes padding to 32)
type GPUMaterial struct {
	BaseColor [4]float32 // offset  0: albedo RGBA
	Metallic  float32    // offset 16: 0.0 = dielectric, 1.0 = metal
	Roughness float32    // offset 20: 0.0 = smooth, 1.0 = rough
	_pad      [2]float32 // offset 24: padding to 32-byte alignment
}

// Size returns the size of the GPUMaterial struct in bytes.
//
// Returns:
//   - int: the struct size in bytes (32)
func (g *GPUMaterial) Size() int {
	return int(unsafe.Sizeof(*g))
}

// Marshal serializes the GPUMaterial struct into a byte buffer suitable for GPU upload.
//
// Returns:
//   - []byte: 32-byte buffer ready for GPU upload
func (g *GPUMaterial) Marshal() []byte {
	buf := make([]byte, 32)
	binary.LittleEndian.PutUint32(buf[0:4], math.Float32bits(g.BaseColor[0]))
	binary.LittleEndian.PutUint32(buf[4:8], math.Float32bits(g.BaseColor[1]))
	binary.LittleEndian.PutUint32(buf[8:12], math.Float32bits(g.BaseColor[2]))
	binary.LittleEndian.PutUint32(buf[12:16], math.Float32bits(g.BaseColor[3]))
	binary.LittleEndian.PutUint32(buf[16:20], math.Float32bits(g.Metallic))
	binary.LittleEndian.PutUint32(buf[20:24], math.Float32bits(g.Roughness))
	// bytes 24..32 are padding, left zeroed
	return buf
}

// ToGPUMaterial converts a Material into the GPU-aligned GPUMaterial struct.
//
// Parameters:
//   - m: the Material to convert
//
// Returns:
//   - GPUMaterial: the GPU-aligned representation
func ToGPUMaterial(m Material) GPUMaterial {
	return GPUMaterial{
		BaseColor: m.BaseColor(),
		Metallic:  m.Metallic(),
		Roughness: m.Roughness(),
	}
}
