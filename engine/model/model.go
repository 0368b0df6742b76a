package model

import (
	"github.com/Carmen-Shannon/brink/engine/renderer/material"
)

// mesh is the implementation of the Mesh interface.
type mesh struct {
	name      string
	vertices  []GPUVertex
	indices   []uint32
	instances []Transform
	material  material.Material
}

// Mesh defines the interface for a renderable mesh: indexed triangle geometry,
// one or more world-space instance placements, and the material its surface
// is shaded with.
//
// Geometry (vertices, indices) is set at construction and read-only through
// this interface. Instances are mutable so meshes can be moved between frames;
// the scene snapshots and marshals them into the per-mesh instance buffer.
type Mesh interface {
	// Name retrieves the mesh identifier.
	//
	// Returns:
	//   - string: the mesh name
	Name() string

	// Vertices retrieves the mesh's vertex data.
	//
	// Returns:
	//   - []GPUVertex: the vertices
	Vertices() []GPUVertex

	// Indices retrieves the mesh's triangle-list index data.
	//
	// Returns:
	//   - []uint32: the indices
	Indices() []uint32

	// IndexCount returns the number of indices in the mesh.
	//
	// Returns:
	//   - int: the index count
	IndexCount() int

	// Instances retrieves the world-space placements of this mesh. Each
	// instance produces one draw of the geometry.
	//
	// Returns:
	//   - []Transform: the instance transforms
	Instances() []Transform

	// InstanceCount returns the number of instance placements.
	//
	// Returns:
	//   - int: the instance count
	InstanceCount() int

	// SetInstance replaces the transform at the given instance index.
	// Out-of-range indices are ignored.
	//
	// Parameters:
	//   - index: the instance index to replace
	//   - t: the new transform
	SetInstance(index int, t Transform)

	// AddInstance appends a new instance placement.
	//
	// Parameters:
	//   - t: the transform to append
	AddInstance(t Transform)

	// Material retrieves the material this mesh is shaded with.
	//
	// Returns:
	//   - material.Material: the material, or nil if none is set
	Material() material.Material

	// SetMaterial replaces the mesh's material.
	//
	// Parameters:
	//   - mat: the material to set
	SetMaterial(mat material.Material)

	// VertexBytes marshals the vertex data into a buffer ready for vertex
	// buffer upload.
	//
	// Returns:
	//   - []byte: the marshaled vertex data
	VertexBytes() []byte

	// IndexBytes marshals the index data into a buffer ready for index
	// buffer upload.
	//
	// Returns:
	//   - []byte: the marshaled index data
	IndexBytes() []byte

	// InstanceBytes marshals all instance transforms into a buffer ready for
	// instance buffer upload. Layout is GPUInstance × InstanceCount.
	//
	// Returns:
	//   - []byte: the marshaled instance data
	InstanceBytes() []byte
}

var _ Mesh = &mesh{}

// NewMesh creates a new Mesh instance with the specified options applied.
// A mesh with no explicit instances renders once at the identity transform.
//
// Parameters:
//   - options: a variadic list of MeshBuilderOption functions to configure the mesh
//
// Returns:
//   - Mesh: a new Mesh configured with the provided options
func NewMesh(options ...MeshBuilderOption) Mesh {
	m := &mesh{}
	for _, opt := range options {
		opt(m)
	}
	if len(m.instances) == 0 {
		m.instances = []Transform{NewTransform()}
	}
	return m
}

func (m *mesh) Name() string {
	return m.name
}

func (m *mesh) Vertices() []GPUVertex {
	return m.vertices
}

func (m *mesh) Indices() []uint32 {
	return m.indices
}

func (m *mesh) IndexCount() int {
	return len(m.indices)
}

func (m *mesh) Instances() []Transform {
	return m.instances
}

func (m *mesh) InstanceCount() int {
	return len(m.instances)
}

func (m *mesh) SetInstance(index int, t Transform) {
	if index < 0 || index >= len(m.instances) {
		return
	}
	m.instances[index] = t
}

func (m *mesh) AddInstance(t Transform) {
	m.instances = append(m.instances, t)
}

func (m *mesh) Material() material.Material {
	return m.material
}

func (m *mesh) SetMaterial(mat material.Material) {
	m.material = mat
}

func (m *mesh) VertexBytes() []byte {
	return MarshalVertices(m.vertices)
}

func (m *mesh) IndexBytes() []byte {
	return MarshalIndices(m.indices)
}

func (m *mesh) InstanceBytes() []byte {
	buf := make([]byte, 0, len(m.instances)*GPUInstanceSize)
	for _, t := range m.instances {
		gpu := t.ToGPUInstance()
		buf = append(buf, gpu.Marshal()...)
	}
	return buf
}
