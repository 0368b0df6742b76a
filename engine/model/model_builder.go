package model

import (
	"github.com/Carmen-Shannon/brink/engine/renderer/material"
)

// MeshBuilderOption is a functional option for configuring a Mesh via NewMesh.
type MeshBuilderOption func(*mesh)

// WithName is an option builder that sets the name of the Mesh.
//
// Parameters:
//   - name: the mesh identifier
//
// Returns:
//   - MeshBuilderOption: a function that applies the name option to a mesh
func WithName(name string) MeshBuilderOption {
	return func(m *mesh) {
		m.name = name
	}
}

// WithVertices is an option builder that sets the mesh's vertex data.
//
// Parameters:
//   - vertices: the vertex data
//
// Returns:
//   - MeshBuilderOption: a function that applies the vertex option to a mesh
func WithVertices(vertices []GPUVertex) MeshBuilderOption {
	return func(m *mesh) {
		m.vertices = vertices
	}
}

// WithIndices is an option builder that sets the mesh's triangle-list index data.
//
// Parameters:
//   - indices: the index data
//
// Returns:
//   - MeshBuilderOption: a function that applies the index option to a mesh
func WithIndices(indices []uint32) MeshBuilderOption {
	return func(m *mesh) {
		m.indices = indices
	}
}

// WithInstances is an option builder that sets the mesh's instance placements.
//
// Parameters:
//   - instances: the instance transforms
//
// Returns:
//   - MeshBuilderOption: a function that applies the instance option to a mesh
func WithInstances(instances ...Transform) MeshBuilderOption {
	return func(m *mesh) {
		m.instances = instances
	}
}

// WithMaterial is an option builder that sets the mesh's material.
//
// Parameters:
//   - mat: the material to shade the mesh with
//
// Returns:
//   - MeshBuilderOption: a function that applies the material option to a mesh
func WithMaterial(mat material.Material) MeshBuilderOption {
	return func(m *mesh) {
		m.material = mat
	}
}
