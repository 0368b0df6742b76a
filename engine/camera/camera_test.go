package camera

import (
	"math"
	"testing"

	"github.com/Carmen-Shannon/brink/common"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultCameraLooksDownNegativeZ(t *testing.T) {
	c := NewCamera()
	x, y, z := c.Direction()
	assert.InDelta(t, 0, x, 1e-6)
	assert.InDelta(t, 0, y, 1e-6)
	assert.InDelta(t, -1, z, 1e-6)
}

func TestYawRotatesDirection(t *testing.T) {
	c := NewCamera(WithOrientation(float32(math.Pi/2), 0, 0))
	x, _, z := c.Direction()
	// Positive yaw of 90 degrees swings the view from -Z to -X.
	assert.InDelta(t, -1, x, 1e-6)
	assert.InDelta(t, 0, z, 1e-6)
}

func TestPitchRaisesDirection(t *testing.T) {
	c := NewCamera(WithOrientation(0, float32(math.Pi/4), 0))
	_, y, z := c.Direction()
	assert.InDelta(t, math.Sqrt2/2, y, 1e-6)
	assert.InDelta(t, -math.Sqrt2/2, z, 1e-6)
}

func TestViewProjectionCentersTarget(t *testing.T) {
	c := NewCamera(WithPosition(0, 0, 5))
	vp := c.ViewProjectionMatrix()

	// A point straight ahead of the camera projects to the NDC center with
	// depth inside [0, 1].
	x, y, z, w := common.TransformPoint(vp[:], 0, 0, 0)
	require.NotZero(t, w)
	assert.InDelta(t, 0, x, 1e-5)
	assert.InDelta(t, 0, y, 1e-5)
	assert.Greater(t, float64(z), 0.0)
	assert.Less(t, float64(z), 1.0)
}

func TestNearPointProjectsToZeroDepth(t *testing.T) {
	c := NewCamera(WithPosition(0, 0, 0), WithNear(1), WithFar(100))
	vp := c.ViewProjectionMatrix()

	_, _, z, _ := common.TransformPoint(vp[:], 0, 0, -1)
	assert.InDelta(t, 0, z, 1e-5)

	_, _, z, _ = common.TransformPoint(vp[:], 0, 0, -100)
	assert.InDelta(t, 1, z, 1e-4)
}

func TestSetAspectRecomputesProjection(t *testing.T) {
	c := NewCamera()
	before := c.ProjectionMatrix()
	c.SetAspect(2.0)
	after := c.ProjectionMatrix()
	assert.NotEqual(t, before[0], after[0])
	assert.Equal(t, before[5], after[5])
}

func TestGPUCameraUniformLayout(t *testing.T) {
	c := NewCamera(WithPosition(1, 2, 3))
	g := ToGPUCameraUniform(c)
	require.Equal(t, 80, g.Size())
	assert.Equal(t, [3]float32{1, 2, 3}, g.CameraPosition)

	buf := g.Marshal()
	require.Len(t, buf, 80)
}
