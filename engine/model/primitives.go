package model

// NewPlane builds a unit quad in the XZ plane centered on the origin, facing
// +Y, scaled to the given half-extent. Two triangles, four vertices.
//
// Parameters:
//   - halfExtent: half the edge length in world units
//   - options: additional mesh options (name, material, instances)
//
// Returns:
//   - Mesh: the plane mesh
func NewPlane(halfExtent float32, options ...MeshBuilderOption) Mesh {
	h := halfExtent
	vertices := []GPUVertex{
		{Position: [3]float32{-h, 0, -h}, Normal: [3]float32{0, 1, 0}},
		{Position: [3]float32{h, 0, -h}, Normal: [3]float32{0, 1, 0}},
		{Position: [3]float32{h, 0, h}, Normal: [3]float32{0, 1, 0}},
		{Position: [3]float32{-h, 0, h}, Normal: [3]float32{0, 1, 0}},
	}
	indices := []uint32{0, 2, 1, 0, 3, 2}

	opts := append([]MeshBuilderOption{
		WithVertices(vertices),
		WithIndices(indices),
	}, options...)
	return NewMesh(opts...)
}

// NewCube builds an axis-aligned cube centered on the origin with flat-shaded
// faces: 24 vertices so each face carries its own normal.
//
// Parameters:
//   - halfExtent: half the edge length in world units
//   - options: additional mesh options (name, material, instances)
//
// Returns:
//   - Mesh: the cube mesh
func NewCube(halfExtent float32, options ...MeshBuilderOption) Mesh {
	h := halfExtent
	faces := []struct {
		normal  [3]float32
		corners [4][3]float32
	}{
		{[3]float32{0, 0, 1}, [4][3]float32{{-h, -h, h}, {h, -h, h}, {h, h, h}, {-h, h, h}}},
		{[3]float32{0, 0, -1}, [4][3]float32{{h, -h, -h}, {-h, -h, -h}, {-h, h, -h}, {h, h, -h}}},
		{[3]float32{1, 0, 0}, [4][3]float32{{h, -h, h}, {h, -h, -h}, {h, h, -h}, {h, h, h}}},
		{[3]float32{-1, 0, 0}, [4][3]float32{{-h, -h, -h}, {-h, -h, h}, {-h, h, h}, {-h, h, -h}}},
		{[3]float32{0, 1, 0}, [4][3]float32{{-h, h, h}, {h, h, h}, {h, h, -h}, {-h, h, -h}}},
		{[3]float32{0, -1, 0}, [4][3]float32{{-h, -h, -h}, {h, -h, -h}, {h, -h, h}, {-h, -h, h}}},
	}

	vertices := make([]GPUVertex, 0, 24)
	indices := make([]uint32, 0, 36)
	for _, f := range faces {
		base := uint32(len(vertices))
		for _, c := range f.corners {
			vertices = append(vertices, GPUVertex{Position: c, Normal: f.normal})
		}
		indices = append(indices, base, base+1, base+2, base, base+2, base+3)
	}

	opts := append([]MeshBuilderOption{
		WithVertices(vertices),
		WithIndices(indices),
	}, options...)
	return NewMesh(opts...)
}
