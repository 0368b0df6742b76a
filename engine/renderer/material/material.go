package material

import "github.com/Carmen-Shannon/brink/common"

// minRoughness is the floor applied to the roughness factor at construction.
// A roughness of exactly zero collapses the specular distribution and
// divides by zero in the BRDF.
const minRoughness float32 = 1e-3

// material is the implementation of the Material interface.
type material struct {
	name      string
	baseColor [4]float32
	metallic  float32
	roughness float32
}

// Material defines the interface for a render material, encapsulating the
// factor-based PBR surface properties consumed by the lit fragment shader.
//
// Surface properties (name, base color, metallic, roughness) are set at
// construction and are read-only through this interface. The material owns
// no textures; shading is driven entirely by the scalar factors, which are
// marshaled into the material uniform buffer each frame.
type Material interface {
	// Name retrieves the material identifier.
	//
	// Returns:
	//   - string: the name of the material
	Name() string

	// BaseColor retrieves the albedo/diffuse RGBA color of the material.
	// The alpha channel is carried through to the fragment output unchanged.
	//
	// Returns:
	//   - [4]float32: the base color as RGBA values
	BaseColor() [4]float32

	// Metallic retrieves the metallic factor of the material.
	// A value of 0.0 represents a dielectric surface, 1.0 represents a fully metallic surface.
	//
	// Returns:
	//   - float32: the metallic factor
	Metallic() float32

	// Roughness retrieves the roughness factor of the material.
	// A value of 0.0 represents a perfectly smooth surface, 1.0 represents a fully rough surface.
	//
	// Returns:
	//   - float32: the roughness factor
	Roughness() float32
}

var _ Material = &material{}

// NewMaterial creates a new Material instance configured with the provided options.
// Metallic is clamped to [0, 1] and roughness to [minRoughness, 1] after the
// options are applied, so out-of-range factors never reach the shading core.
//
// Parameters:
//   - options: variadic list of MaterialBuilderOption functions to configure the material
//
// Returns:
//   - Material: a new Material instance
func NewMaterial(options ...MaterialBuilderOption) Material {
	m := &material{
		baseColor: [4]float32{1, 1, 1, 1},
		metallic:  0.0,
		roughness: 1.0,
	}
	for _, opt := range options {
		opt(m)
	}
	m.metallic = common.Saturate(m.metallic)
	m.roughness = common.Clamp(m.roughness, minRoughness, 1)
	return m
}

func (m *material) Name() string {
	return m.name
}

func (m *material) BaseColor() [4]float32 {
	return m.baseColor
}

func (m *material) Metallic() float32 {
	return m.metallic
}

func (m *material) Roughness() float32 {
	return m.roughness
}
