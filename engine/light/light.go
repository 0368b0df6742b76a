package light

// LightType identifies the kind of light source. The numeric values are a
// GPU contract: they are written verbatim into the light uniform buffer and
// matched by the lit fragment shader's switch, so they must not be reordered.
type LightType uint32

const (
	// LightTypeNil marks an empty light slot. Nil slots contribute nothing
	// and are skipped by the shader without evaluating the BRDF.
	LightTypeNil LightType = 0

	// LightTypePoint represents a light that emits in all directions from a
	// position. Used for bare bulbs, lanterns, and candle flames. Attenuates
	// with the inverse square of the distance to the fragment.
	LightTypePoint LightType = 1

	// LightTypeDirectional represents a light with no position, only direction.
	// Used for large distant sources like the sun or moon. Affects all fragments
	// uniformly with no distance attenuation.
	LightTypeDirectional LightType = 2

	// LightTypeSpot represents a light that emits in a cone from a position
	// along a direction. Used for flashlights, desk lamps, and wall sconces.
	// Attenuates with distance and falls off linearly between the inner and
	// outer cone half-angles.
	LightTypeSpot LightType = 3
)

// lightImpl is the implementation of the Light interface.
type lightImpl struct {
	lightType  LightType
	position   [3]float32
	direction  [3]float32
	color      [3]float32
	intensity  float32
	innerAngle float32 // spot inner cone half-angle in radians
	outerAngle float32 // spot outer cone half-angle in radians
}

// Light defines the interface for a light source in the scene.
//
// Lights are scene-level entities that contribute to the final pixel color
// during the lit forward rendering pass. All light types (point, directional,
// spot) share this interface; type-specific properties (e.g. cone angles for
// spot lights) return zero values when not applicable.
//
// The scene holds a fixed number of light slots (see MaxLights). Each occupied
// slot owns one layer of the shadow depth texture array and is marshaled into
// the GPU light uniform buffer every frame via the gpu_types helpers.
type Light interface {
	// Type returns the kind of light source.
	//
	// Returns:
	//   - LightType: the light type (point, directional, or spot)
	Type() LightType

	// Position returns the world-space position of the light.
	// Meaningless for directional lights.
	//
	// Returns:
	//   - [3]float32: position as (x, y, z)
	Position() [3]float32

	// Direction returns the normalized direction of the light.
	// For directional lights this is the direction light travels. For spot
	// lights this is the cone axis. Meaningless for point lights.
	//
	// Returns:
	//   - [3]float32: normalized direction as (x, y, z)
	Direction() [3]float32

	// Color returns the RGB color of the light.
	//
	// Returns:
	//   - [3]float32: color as (r, g, b)
	Color() [3]float32

	// Intensity returns the scalar radiant power of the light. The shader
	// promotes this to RGB radiance by multiplying with the light color.
	//
	// Returns:
	//   - float32: the intensity value
	Intensity() float32

	// InnerAngle returns the inner cone half-angle in radians for spot lights.
	// Fragments within this angle receive full cone intensity. Meaningless for
	// directional and point lights.
	//
	// Returns:
	//   - float32: inner half-angle in radians
	InnerAngle() float32

	// OuterAngle returns the outer cone half-angle in radians for spot lights.
	// Fragments outside this angle receive zero intensity from the spot cone
	// falloff. Meaningless for directional and point lights.
	//
	// Returns:
	//   - float32: outer half-angle in radians
	OuterAngle() float32

	// ViewProjection builds the light-space view-projection matrix used for
	// the light's shadow depth pass and shadow lookups in the lit pass.
	// Directional lights use an orthographic projection centered on the
	// shadow frustum; point and spot lights use a perspective projection
	// from the light's position.
	//
	// Parameters:
	//   - out: destination slice for the column-major matrix (at least 16 elements)
	ViewProjection(out []float32)

	// SetPosition sets the world-space position of the light.
	//
	// Parameters:
	//   - x, y, z: position components
	SetPosition(x, y, z float32)

	// SetDirection sets the direction of the light and normalizes it.
	//
	// Parameters:
	//   - x, y, z: direction components (will be normalized)
	SetDirection(x, y, z float32)

	// SetColor sets the RGB color of the light.
	//
	// Parameters:
	//   - r, g, b: color components
	SetColor(r, g, b float32)

	// SetIntensity sets the scalar radiant power.
	//
	// Parameters:
	//   - intensity: the intensity value
	SetIntensity(intensity float32)

	// SetSpotCone sets the inner and outer cone half-angles for spot lights.
	// Angles are specified in degrees and stored internally as radians, which
	// is the format the GPU shader compares against.
	//
	// Parameters:
	//   - innerDeg: inner cone half-angle in degrees
	//   - outerDeg: outer cone half-angle in degrees
	SetSpotCone(innerDeg, outerDeg float32)
}

var _ Light = &lightImpl{}

// NewLight creates a new Light of the specified type with sensible defaults and
// any provided options applied.
//
// Parameters:
//   - lightType: the kind of light to create (point, directional, or spot)
//   - opts: variadic list of LightBuilderOption functions to configure the light
//
// Returns:
//   - Light: a new Light instance
func NewLight(lightType LightType, opts ...LightBuilderOption) Light {
	l := &lightImpl{
		lightType:  lightType,
		position:   [3]float32{0, 0, 0},
		direction:  [3]float32{0, -1, 0},
		color:      [3]float32{1, 1, 1},
		intensity:  1.0,
		innerAngle: degToRad(25),
		outerAngle: degToRad(35),
	}
	for _, opt := range opts {
		opt(l)
	}
	return l
}

func (l *lightImpl) Type() LightType {
	return l.lightType
}

func (l *lightImpl) Position() [3]float32 {
	return l.position
}

func (l *lightImpl) Direction() [3]float32 {
	return l.direction
}

func (l *lightImpl) Color() [3]float32 {
	return l.color
}

func (l *lightImpl) Intensity() float32 {
	return l.intensity
}

func (l *lightImpl) InnerAngle() float32 {
	return l.innerAngle
}

func (l *lightImpl) OuterAngle() float32 {
	return l.outerAngle
}

func (l *lightImpl) ViewProjection(out []float32) {
	switch l.lightType {
	case LightTypeDirectional:
		directionalViewProjection(out, l.direction)
	case LightTypeSpot:
		spotViewProjection(out, l.position, l.direction, l.outerAngle)
	case LightTypePoint:
		pointViewProjection(out, l.position, l.direction)
	default:
		for i := range 16 {
			out[i] = 0
		}
	}
}

func (l *lightImpl) SetPosition(x, y, z float32) {
	l.position = [3]float32{x, y, z}
}

func (l *lightImpl) SetDirection(x, y, z float32) {
	l.direction = normalize3(x, y, z)
}

func (l *lightImpl) SetColor(r, g, b float32) {
	l.color = [3]float32{r, g, b}
}

func (l *lightImpl) SetIntensity(intensity float32) {
	l.intensity = intensity
}

func (l *lightImpl) SetSpotCone(innerDeg, outerDeg float32) {
	l.innerAngle = degToRad(innerDeg)
	l.outerAngle = degToRad(outerDeg)
}
