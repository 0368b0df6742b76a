package camera

import (
	"math"
	"sync"

	"github.com/Carmen-Shannon/brink/common"
)

type cameraImpl struct {
	mu *sync.Mutex

	position [3]float32
	yaw      float32
	pitch    float32
	roll     float32

	fov    float32
	aspect float32
	near   float32
	far    float32

	viewMatrix           [16]float32
	projectionMatrix     [16]float32
	viewProjectionMatrix [16]float32
}

// Camera defines the interface for the scene camera.
//
// The camera is positioned in world space and oriented by yaw/pitch/roll
// Euler angles applied extrinsically in Z-X-Y order, matching the glTF
// convention where an unrotated camera looks down -Z with +Y up. Perspective
// settings plus the orientation produce the view-projection matrix consumed
// by the vertex transform stage.
type Camera interface {
	// Position returns the camera's world-space position.
	//
	// Returns:
	//   - x, y, z: position components
	Position() (x, y, z float32)

	// Yaw returns the rotation around the world Y axis in radians.
	//
	// Returns:
	//   - float32: yaw in radians
	Yaw() float32

	// Pitch returns the rotation around the world X axis in radians.
	//
	// Returns:
	//   - float32: pitch in radians
	Pitch() float32

	// Roll returns the rotation around the world Z axis in radians.
	//
	// Returns:
	//   - float32: roll in radians
	Roll() float32

	// Fov returns the vertical field of view in radians.
	//
	// Returns:
	//   - float32: field of view in radians
	Fov() float32

	// Aspect returns the aspect ratio (width / height).
	//
	// Returns:
	//   - float32: the aspect ratio
	Aspect() float32

	// Near returns the near clipping plane distance.
	//
	// Returns:
	//   - float32: near plane distance
	Near() float32

	// Far returns the far clipping plane distance.
	//
	// Returns:
	//   - float32: far plane distance
	Far() float32

	// Direction returns the normalized view direction derived from the
	// camera's Euler angles.
	//
	// Returns:
	//   - x, y, z: direction components
	Direction() (x, y, z float32)

	// ViewMatrix returns the current 4x4 view matrix as 16 floats (column-major).
	//
	// Returns:
	//   - [16]float32: the view matrix
	ViewMatrix() [16]float32

	// ProjectionMatrix returns the current 4x4 projection matrix as 16 floats (column-major).
	//
	// Returns:
	//   - [16]float32: the projection matrix
	ProjectionMatrix() [16]float32

	// ViewProjectionMatrix returns the current combined view-projection matrix
	// as 16 floats (column-major).
	//
	// Returns:
	//   - [16]float32: the combined view-projection matrix
	ViewProjectionMatrix() [16]float32

	// SetPosition sets the camera's world-space position and recomputes matrices.
	//
	// Parameters:
	//   - x, y, z: position components
	SetPosition(x, y, z float32)

	// SetOrientation sets the yaw, pitch, and roll in radians and recomputes matrices.
	//
	// Parameters:
	//   - yaw: rotation around the world Y axis in radians
	//   - pitch: rotation around the world X axis in radians
	//   - roll: rotation around the world Z axis in radians
	SetOrientation(yaw, pitch, roll float32)

	// SetFov sets the vertical field of view in radians and recomputes matrices.
	//
	// Parameters:
	//   - fov: field of view in radians
	SetFov(fov float32)

	// SetAspect sets the aspect ratio (width / height) and recomputes matrices.
	//
	// Parameters:
	//   - aspect: the aspect ratio
	SetAspect(aspect float32)

	// SetNear sets the near clipping plane distance and recomputes matrices.
	//
	// Parameters:
	//   - near: near plane distance
	SetNear(near float32)

	// SetFar sets the far clipping plane distance and recomputes matrices.
	//
	// Parameters:
	//   - far: far plane distance
	SetFar(far float32)
}

var _ Camera = &cameraImpl{}

// NewCamera creates a new Camera with default perspective settings and any
// provided options applied. The default camera sits at the origin looking
// down -Z with a 45-degree vertical field of view.
//
// Parameters:
//   - options: functional options to configure the camera
//
// Returns:
//   - Camera: the newly created camera
func NewCamera(options ...CameraBuilderOption) Camera {
	c := &cameraImpl{
		mu:     &sync.Mutex{},
		fov:    45.0 * (math.Pi / 180.0), // radians
		aspect: 1.0,
		near:   0.1,
		far:    100.0,
	}
	for _, option := range options {
		option(c)
	}
	c.updateMatrices()
	return c
}

func (c *cameraImpl) Position() (x, y, z float32) {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.position[0], c.position[1], c.position[2]
}

func (c *cameraImpl) Yaw() float32 {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.yaw
}

func (c *cameraImpl) Pitch() float32 {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.pitch
}

func (c *cameraImpl) Roll() float32 {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.roll
}

func (c *cameraImpl) Fov() float32 {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.fov
}

func (c *cameraImpl) Aspect() float32 {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.aspect
}

func (c *cameraImpl) Near() float32 {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.near
}

func (c *cameraImpl) Far() float32 {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.far
}

func (c *cameraImpl) Direction() (x, y, z float32) {
	c.mu.Lock()
	defer c.mu.Unlock()
	d := c.direction()
	return d[0], d[1], d[2]
}

func (c *cameraImpl) ViewMatrix() [16]float32 {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.viewMatrix
}

func (c *cameraImpl) ProjectionMatrix() [16]float32 {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.projectionMatrix
}

func (c *cameraImpl) ViewProjectionMatrix() [16]float32 {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.viewProjectionMatrix
}

func (c *cameraImpl) SetPosition(x, y, z float32) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.position = [3]float32{x, y, z}
	c.updateMatrices()
}

func (c *cameraImpl) SetOrientation(yaw, pitch, roll float32) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.yaw, c.pitch, c.roll = yaw, pitch, roll
	c.updateMatrices()
}

func (c *cameraImpl) SetFov(fov float32) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.fov = fov
	c.updateMatrices()
}

func (c *cameraImpl) SetAspect(aspect float32) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.aspect = aspect
	c.updateMatrices()
}

func (c *cameraImpl) SetNear(near float32) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.near = near
	c.updateMatrices()
}

func (c *cameraImpl) SetFar(far float32) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.far = far
	c.updateMatrices()
}

// direction rotates -Z by the camera's Euler angles (extrinsic Z-X-Y order).
// Caller must hold the mutex.
func (c *cameraImpl) direction() [3]float32 {
	return rotateZXY([3]float32{0, 0, -1}, c.yaw, c.pitch, c.roll)
}

// upVec rotates +Y by the camera's Euler angles (extrinsic Z-X-Y order).
// Caller must hold the mutex.
func (c *cameraImpl) upVec() [3]float32 {
	return rotateZXY([3]float32{0, 1, 0}, c.yaw, c.pitch, c.roll)
}

// updateMatrices recalculates the view, projection, and view-projection matrices.
// Caller must hold the mutex.
func (c *cameraImpl) updateMatrices() {
	dir := c.direction()
	up := c.upVec()

	common.LookTo(c.viewMatrix[:],
		c.position[0], c.position[1], c.position[2],
		dir[0], dir[1], dir[2],
		up[0], up[1], up[2],
	)

	common.Perspective(c.projectionMatrix[:],
		c.fov, c.aspect, c.near, c.far,
	)

	common.Mul4(c.viewProjectionMatrix[:], c.projectionMatrix[:], c.viewMatrix[:])
}

// rotateZXY applies extrinsic rotations around the fixed world axes in Z, X, Y
// order: first roll around Z, then pitch around X, then yaw around Y.
func rotateZXY(v [3]float32, yaw, pitch, roll float32) [3]float32 {
	sr, cr := sincos(roll)
	sp, cp := sincos(pitch)
	sy, cy := sincos(yaw)

	// Roll around Z.
	x := v[0]*cr - v[1]*sr
	y := v[0]*sr + v[1]*cr
	z := v[2]

	// Pitch around X.
	y, z = y*cp-z*sp, y*sp+z*cp

	// Yaw around Y.
	x, z = x*cy+z*sy, -x*sy+z*cy

	return [3]float32{x, y, z}
}

func sincos(rad float32) (sin, cos float32) {
	s, c := math.Sincos(float64(rad))
	return float32(s), float32(c)
}
