package shading

import (
	"math"

	"github.com/Carmen-Shannon/brink/engine/light"
	"github.com/go-gl/mathgl/mgl32"
)

// DepthSlice is one layer of the shadow depth array: a square grid of depth
// texels cleared to the far plane (1.0) and written with a less-than depth
// test, mirroring a Depth32Float render attachment.
type DepthSlice struct {
	resolution int
	texels     []float32
}

// NewDepthSlice creates a cleared depth slice at the given resolution.
//
// Parameters:
//   - resolution: width and height in texels
//
// Returns:
//   - *DepthSlice: the cleared slice
func NewDepthSlice(resolution int) *DepthSlice {
	s := &DepthSlice{
		resolution: resolution,
		texels:     make([]float32, resolution*resolution),
	}
	s.Clear()
	return s
}

// Resolution returns the slice's width and height in texels.
func (s *DepthSlice) Resolution() int {
	return s.resolution
}

// Clear resets every texel to the far-plane depth of 1.0.
func (s *DepthSlice) Clear() {
	for i := range s.texels {
		s.texels[i] = 1.0
	}
}

// At returns the stored depth at the given texel coordinate. Out-of-range
// coordinates read as the far plane.
//
// Parameters:
//   - x, y: texel coordinates
//
// Returns:
//   - float32: the stored depth
func (s *DepthSlice) At(x, y int) float32 {
	if x < 0 || y < 0 || x >= s.resolution || y >= s.resolution {
		return 1.0
	}
	return s.texels[y*s.resolution+x]
}

// Write stores depth at the given texel if it passes a less-than depth test
// against the current value. Out-of-range coordinates are discarded.
//
// Parameters:
//   - x, y: texel coordinates
//   - depth: the candidate depth value
func (s *DepthSlice) Write(x, y int, depth float32) {
	if x < 0 || y < 0 || x >= s.resolution || y >= s.resolution {
		return
	}
	idx := y*s.resolution + x
	if depth < s.texels[idx] {
		s.texels[idx] = depth
	}
}

// Sample reads the depth at normalized texture coordinates (u, v) in [0,1]
// using bilinear filtering with clamp-to-edge addressing, matching an
// ordinary (non-comparison) sampler over the depth texture.
//
// Parameters:
//   - u, v: normalized texture coordinates
//
// Returns:
//   - float32: the filtered depth
func (s *DepthSlice) Sample(u, v float32) float32 {
	fx := u*float32(s.resolution) - 0.5
	fy := v*float32(s.resolution) - 0.5

	x0 := int(math.Floor(float64(fx)))
	y0 := int(math.Floor(float64(fy)))
	tx := fx - float32(x0)
	ty := fy - float32(y0)

	x0c := clampIndex(x0, s.resolution)
	x1c := clampIndex(x0+1, s.resolution)
	y0c := clampIndex(y0, s.resolution)
	y1c := clampIndex(y0+1, s.resolution)

	top := s.At(x0c, y0c)*(1-tx) + s.At(x1c, y0c)*tx
	bottom := s.At(x0c, y1c)*(1-tx) + s.At(x1c, y1c)*tx
	return top*(1-ty) + bottom*ty
}

// DepthArray is the CPU mirror of the shadow depth texture array: one slice
// per light slot.
type DepthArray struct {
	slices [light.MaxLights]*DepthSlice
}

// NewDepthArray creates a depth array with cleared slices at the given
// resolution.
//
// Parameters:
//   - resolution: width and height of each slice in texels
//
// Returns:
//   - *DepthArray: the cleared array
func NewDepthArray(resolution int) *DepthArray {
	a := &DepthArray{}
	for i := range a.slices {
		a.slices[i] = NewDepthSlice(resolution)
	}
	return a
}

// Slice returns the depth slice for the given light slot.
//
// Parameters:
//   - index: the light slot index in [0, MaxLights)
//
// Returns:
//   - *DepthSlice: the slice, or nil if index is out of range
func (a *DepthArray) Slice(index int) *DepthSlice {
	if index < 0 || index >= light.MaxLights {
		return nil
	}
	return a.slices[index]
}

// Clear resets every slice to the far plane.
func (a *DepthArray) Clear() {
	for _, s := range a.slices {
		s.Clear()
	}
}

// ProjectToShadowUV projects a world position through a light's
// view-projection matrix into shadow map coordinates: a perspective divide
// followed by the NDC-to-texture mapping u = x·0.5+0.5, v = y·(-0.5)+0.5.
// The v axis is flipped because texture rows grow downward while NDC y grows
// upward.
//
// Parameters:
//   - lightSpace: the light's view-projection matrix
//   - worldPos: the fragment's world position
//
// Returns:
//   - u, v: shadow map texture coordinates
//   - depth: the fragment's light-space depth
func ProjectToShadowUV(lightSpace mgl32.Mat4, worldPos mgl32.Vec3) (u, v, depth float32) {
	p := lightSpace.Mul4x1(worldPos.Vec4(1))
	if w := p.W(); w != 0 {
		p = p.Mul(1 / w)
	}
	u = p.X()*0.5 + 0.5
	v = p.Y()*(-0.5) + 0.5
	return u, v, p.Z()
}

// ShadowTest reports whether a fragment is occluded from the given light: the
// fragment's biased light-space depth is compared against a single filtered
// sample of the light's depth slice.
//
// Parameters:
//   - lightSpace: the light's view-projection matrix
//   - worldPos: the fragment's world position
//   - slice: the light's shadow depth slice
//
// Returns:
//   - bool: true if the fragment is occluded
func ShadowTest(lightSpace mgl32.Mat4, worldPos mgl32.Vec3, slice *DepthSlice) bool {
	u, v, depth := ProjectToShadowUV(lightSpace, worldPos)
	return depth-light.ShadowBias > slice.Sample(u, v)
}

// RenderMeshDepths projects every vertex of the given geometry through each
// instance's model matrix and the light's view-projection, writing the
// resulting depths into the slice with a less-than depth test. Vertices are
// splatted to their covering texel; triangle interiors are not filled
// (rasterization is owned by the graphics pipeline on the GPU path).
//
// Parameters:
//   - slice: the destination depth slice
//   - lightViewProj: the light's view-projection matrix
//   - models: the instance model matrices
//   - positions: the object-space vertex positions
func RenderMeshDepths(slice *DepthSlice, lightViewProj mgl32.Mat4, models []mgl32.Mat4, positions []mgl32.Vec3) {
	res := float32(slice.Resolution())
	for _, m := range models {
		for _, p := range positions {
			clip := TransformPosition(lightViewProj, m, p)
			w := clip.W()
			if w <= 0 {
				continue
			}
			ndc := clip.Mul(1 / w)
			if ndc.Z() < 0 || ndc.Z() > 1 {
				continue
			}
			u := ndc.X()*0.5 + 0.5
			v := ndc.Y()*(-0.5) + 0.5
			x := int(u * res)
			y := int(v * res)
			slice.Write(x, y, ndc.Z())
		}
	}
}

func clampIndex(i, n int) int {
	if i < 0 {
		return 0
	}
	if i >= n {
		return n - 1
	}
	return i
}
