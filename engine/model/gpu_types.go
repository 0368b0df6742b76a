package model

import (
	_ "embed"
	"encoding/binary"
	"math"
)

// GPUVertexSource is the canonical WGSL definition of the VertexInput struct.
// Matches GPUVertex layout exactly (24 bytes, tightly packed).
//
//go:embed assets/vertex.wgsl
var GPUVertexSource string

// GPUVertexSize is the stride in bytes of one vertex in the vertex buffer.
const GPUVertexSize = 24

// GPUVertex is the GPU representation of a single mesh vertex.
// Matches the WGSL VertexInput struct layout exactly (see GPUVertexSource).
// Size: 24 bytes, tightly packed (vertex buffers carry no std430 padding).
type GPUVertex struct {
	Position [3]float32 // offset  0: vertex position in model space (12 bytes)
	Normal   [3]float32 // offset 12: vertex normal for lighting (12 bytes)
}

// Size returns the size of the GPUVertex struct in bytes.
//
// Returns:
//   - int: the vertex stride in bytes (24)
func (g *GPUVertex) Size() int {
	return GPUVertexSize
}

// Marshal serializes the GPUVertex struct into a byte buffer suitable for GPU upload.
//
// Returns:
//   - []byte: 24-byte buffer ready for GPU upload
func (g *GPUVertex) Marshal() []byte {
	buf := make([]byte, GPUVertexSize)
	binary.LittleEndian.PutUint32(buf[0:4], math.Float32bits(g.Position[0]))
	binary.LittleEndian.PutUint32(buf[4:8], math.Float32bits(g.Position[1]))
	binary.LittleEndian.PutUint32(buf[8:12], math.Float32bits(g.Position[2]))
	binary.LittleEndian.PutUint32(buf[12:16], math.Float32bits(g.Normal[0]))
	binary.LittleEndian.PutUint32(buf[16:20], math.Float32bits(g.Normal[1]))
	binary.LittleEndian.PutUint32(buf[20:24], math.Float32bits(g.Normal[2]))
	return buf
}

// GPUInstanceSource is the canonical WGSL definition of the per-instance
// vertex attributes. Matches GPUInstance layout exactly (100 bytes, tightly packed).
//
//go:embed assets/instance.wgsl
var GPUInstanceSource string

// GPUInstanceSize is the stride in bytes of one instance in the instance buffer.
const GPUInstanceSize = 100

// GPUInstance is the GPU representation of a single mesh instance: the
// model-to-world matrix plus the normal rotation matrix that undoes
// non-uniform scale. The mat3 is delivered as three tightly packed vec3
// columns because instance buffers, unlike uniform buffers, carry no
// per-column padding.
// Matches the WGSL instance attribute layout exactly (see GPUInstanceSource).
// Size: 100 bytes (64 + 36), tightly packed.
type GPUInstance struct {
	Model          [16]float32 // offset  0: 4x4 model-to-world matrix, column-major (64 bytes)
	NormalRotation [9]float32  // offset 64: 3x3 normal rotation matrix, column-major (36 bytes)
}

// Size returns the size of the GPUInstance struct in bytes.
//
// Returns:
//   - int: the instance stride in bytes (100)
func (g *GPUInstance) Size() int {
	return GPUInstanceSize
}

// Marshal serializes the GPUInstance struct into a byte buffer suitable for GPU upload.
//
// Returns:
//   - []byte: 100-byte buffer ready for GPU upload
func (g *GPUInstance) Marshal() []byte {
	buf := make([]byte, GPUInstanceSize)
	for i := range 16 {
		binary.LittleEndian.PutUint32(buf[i*4:(i+1)*4], math.Float32bits(g.Model[i]))
	}
	for i := range 9 {
		binary.LittleEndian.PutUint32(buf[64+i*4:64+(i+1)*4], math.Float32bits(g.NormalRotation[i]))
	}
	return buf
}

// MarshalVertices serializes a slice of vertices into a contiguous buffer
// suitable for vertex buffer upload.
//
// Parameters:
//   - vertices: the vertices to serialize
//
// Returns:
//   - []byte: len(vertices) × 24 bytes
func MarshalVertices(vertices []GPUVertex) []byte {
	buf := make([]byte, 0, len(vertices)*GPUVertexSize)
	for i := range vertices {
		buf = append(buf, vertices[i].Marshal()...)
	}
	return buf
}

// MarshalIndices serializes a slice of 32-bit indices into a contiguous buffer
// suitable for index buffer upload.
//
// Parameters:
//   - indices: the indices to serialize
//
// Returns:
//   - []byte: len(indices) × 4 bytes
func MarshalIndices(indices []uint32) []byte {
	buf := make([]byte, len(indices)*4)
	for i, idx := range indices {
		binary.LittleEndian.PutUint32(buf[i*4:(i+1)*4], idx)
	}
	return buf
}
