package engine

import (
	"fmt"
	"sync"
	"testing"

	"github.com/Carmen-Shannon/brink/engine/camera"
	"github.com/Carmen-Shannon/brink/engine/scene"
	"github.com/Carmen-Shannon/brink/engine/window"
	"github.com/cogentcore/webgpu/wgpu"
	"github.com/stretchr/testify/assert"
)

// stubWindow satisfies window.Window without any platform surface, for tests
// that exercise engine state handling off the render path.
type stubWindow struct {
	width, height int
}

var _ window.Window = &stubWindow{}

func (w *stubWindow) SetUpdateCallback(func())                   {}
func (w *stubWindow) SetResizeCallback(func(int, int))           {}
func (w *stubWindow) SetScrollCallback(func(float32))            {}
func (w *stubWindow) SetKeyDownCallback(func(uint32))            {}
func (w *stubWindow) SetKeyUpCallback(func(uint32))              {}
func (w *stubWindow) SetMouseMoveCallback(func(int32, int32))    {}
func (w *stubWindow) SurfaceDescriptor() *wgpu.SurfaceDescriptor { return nil }
func (w *stubWindow) IsRunning() bool                            { return false }
func (w *stubWindow) Close() error                               { return nil }
func (w *stubWindow) ProcessMessages()                           {}
func (w *stubWindow) Width() int                                 { return w.width }
func (w *stubWindow) Height() int                                { return w.height }

func testScene(name string) scene.Scene {
	return scene.NewScene(name, scene.WithCamera(camera.NewCamera()))
}

func TestSetSceneSwapsActiveScene(t *testing.T) {
	e := &engine{window: &stubWindow{width: 1280, height: 720}}

	assert.Nil(t, e.Scene())

	first := testScene("first")
	e.SetScene(first)
	assert.Same(t, first, e.Scene())

	e.SetScene(nil)
	assert.Nil(t, e.Scene())
}

func TestSetSceneConcurrentWithReads(t *testing.T) {
	e := &engine{window: &stubWindow{width: 1280, height: 720}}

	scenes := make([]scene.Scene, 4)
	for i := range scenes {
		scenes[i] = testScene(fmt.Sprintf("scene_%d", i))
	}

	var wg sync.WaitGroup
	wg.Add(2)
	go func() {
		defer wg.Done()
		for i := range 200 {
			e.SetScene(scenes[i%len(scenes)])
		}
	}()
	go func() {
		defer wg.Done()
		for range 200 {
			if s := e.Scene(); s != nil {
				_ = s.Name()
			}
		}
	}()
	wg.Wait()

	assert.NotNil(t, e.Scene())
}
