package light

import (
	_ "embed"
	"encoding/binary"
	"math"
	"unsafe"
)

// GPULightSource is the canonical WGSL definition of the Light struct.
// Matches GPULight layout exactly (128 bytes, uniform aligned).
//
//go:embed assets/light.wgsl
var GPULightSource string

// GPULight is the GPU-aligned representation of a single light slot.
// Matches the WGSL Light struct layout exactly (see GPULightSource).
// Size: 128 bytes (uniform / WGSL aligned).
//
// Layout:
//
//	mat4x4<f32> light_space    (64 bytes, offset   0)
//	vec3<f32>   position       (12 bytes, offset  64)
//	u32         kind           ( 4 bytes, offset  76)
//	vec3<f32>   color          (12 bytes, offset  80)
//	f32         intensity      ( 4 bytes, offset  92)
//	vec3<f32>   direction      (12 bytes, offset  96)
//	f32         inner_angle    ( 4 bytes, offset 108)
//	f32         outer_angle    ( 4 bytes, offset 112)
//	(12 bytes padding to 128)
type GPULight struct {
	LightSpace [16]float32 // offset   0: view-projection from the light's perspective
	Position   [3]float32  // offset  64: world-space position (point/spot) or unused (directional)
	LightType  uint32      // offset  76: 0 = nil, 1 = point, 2 = directional, 3 = spot
	Color      [3]float32  // offset  80: RGB color
	Intensity  float32     // offset  92: scalar radiant power
	Direction  [3]float32  // offset  96: normalized direction (directional/spot) or unused (point)
	InnerAngle float32     // offset 108: spot inner cone half-angle in radians
	OuterAngle float32     // offset 112: spot outer cone half-angle in radians
	_pad       [3]uint32   // offset 116: padding to 128-byte alignment
}

// Size returns the size of the GPULight struct in bytes.
//
// Returns:
//   - int: the struct size in bytes (128)
func (g *GPULight) Size() int {
	return int(unsafe.Sizeof(*g))
}

// Marshal serializes the GPULight struct into a byte buffer suitable for GPU upload.
//
// Returns:
//   - []byte: 128-byte buffer ready for GPU upload
func (g *GPULight) Marshal() []byte {
	buf := make([]byte, 128)
	for i := range 16 {
		binary.LittleEndian.PutUint32(buf[i*4:(i+1)*4], math.Float32bits(g.LightSpace[i]))
	}
	binary.LittleEndian.PutUint32(buf[64:68], math.Float32bits(g.Position[0]))
	binary.LittleEndian.PutUint32(buf[68:72], math.Float32bits(g.Position[1]))
	binary.LittleEndian.PutUint32(buf[72:76], math.Float32bits(g.Position[2]))
	binary.LittleEndian.PutUint32(buf[76:80], uint32(g.LightType))
	binary.LittleEndian.PutUint32(buf[80:84], math.Float32bits(g.Color[0]))
	binary.LittleEndian.PutUint32(buf[84:88], math.Float32bits(g.Color[1]))
	binary.LittleEndian.PutUint32(buf[88:92], math.Float32bits(g.Color[2]))
	binary.LittleEndian.PutUint32(buf[92:96], math.Float32bits(g.Intensity))
	binary.LittleEndian.PutUint32(buf[96:100], math.Float32bits(g.Direction[0]))
	binary.LittleEndian.PutUint32(buf[100:104], math.Float32bits(g.Direction[1]))
	binary.LittleEndian.PutUint32(buf[104:108], math.Float32bits(g.Direction[2]))
	binary.LittleEndian.PutUint32(buf[108:112], math.Float32bits(g.InnerAngle))
	binary.LittleEndian.PutUint32(buf[112:116], math.Float32bits(g.OuterAngle))
	// bytes 116..128 are padding, left zeroed
	return buf
}

// ToGPULight converts a Light interface value into the GPU-aligned GPULight
// struct, computing the light-space view-projection matrix for its type.
//
// Parameters:
//   - l: the Light to convert (may be nil for an empty slot)
//
// Returns:
//   - GPULight: the GPU-aligned representation; the zero value for a nil slot
func ToGPULight(l Light) GPULight {
	if l == nil || l.Type() == LightTypeNil {
		return GPULight{}
	}
	g := GPULight{
		Position:   l.Position(),
		LightType:  uint32(l.Type()),
		Color:      l.Color(),
		Intensity:  l.Intensity(),
		Direction:  l.Direction(),
		InnerAngle: l.InnerAngle(),
		OuterAngle: l.OuterAngle(),
	}
	l.ViewProjection(g.LightSpace[:])
	return g
}

// MarshalLightArray marshals the scene's fixed light slots into a byte buffer
// suitable for GPU uniform upload. The buffer layout is:
//
//	[GPULight × MaxLights (128 bytes each)] = 512 bytes
//
// Every slot is written whether or not it is occupied; empty slots are zeroed,
// which the shader reads as LightTypeNil and skips. Slot order is preserved so
// slot i's shadow map lives in layer i of the depth texture array.
//
// Parameters:
//   - slots: the scene's light slots (nil entries are empty slots)
//
// Returns:
//   - []byte: the marshaled 512-byte buffer ready for GPU upload
func MarshalLightArray(slots [MaxLights]Light) []byte {
	lightSize := (&GPULight{}).Size()
	buf := make([]byte, MaxLights*lightSize)
	for i, l := range slots {
		gpu := ToGPULight(l)
		copy(buf[i*lightSize:(i+1)*lightSize], gpu.Marshal())
	}
	return buf
}
