package renderer

import "github.com/cogentcore/webgpu/wgpu"

// RendererBackendType identifies the GPU backend implementation used by the Renderer.
type RendererBackendType int

const (
	// BackendTypeWGPU selects the WebGPU-based rendering backend.
	BackendTypeWGPU RendererBackendType = iota
)

// PresentMode controls how completed frames are delivered to the display.
type PresentMode int

const (
	// PresentModeVSync synchronizes presentation with the display refresh rate.
	PresentModeVSync PresentMode = iota
	// PresentModeUncapped presents frames as fast as they are produced.
	PresentModeUncapped
)

// MSAASampleCount is the number of samples per pixel for multisample anti-aliasing.
type MSAASampleCount uint32

const (
	MSAAOff MSAASampleCount = 1
	MSAA4x  MSAASampleCount = 4
	MSAA8x  MSAASampleCount = 8
	MSAA16x MSAASampleCount = 16
)

// RendererBackend is the interface implemented by GPU API backends. The only
// implementation today is the WebGPU backend.
type RendererBackend = wgpuRendererBackend

// NewRendererBackend creates a renderer backend of the given type.
//
// Parameters:
//   - backendType: the RendererBackendType to create
//   - surfaceDescriptor: the platform surface descriptor for the window to render into
//   - forceFallbackAdapter: whether to force a software rendering adapter
//   - sampleCount: the MSAA sample count for the main render pass
//
// Returns:
//   - RendererBackend: the created backend, or nil for an unknown backend type
func NewRendererBackend(backendType RendererBackendType, surfaceDescriptor *wgpu.SurfaceDescriptor, forceFallbackAdapter bool, sampleCount MSAASampleCount) RendererBackend {
	switch backendType {
	case BackendTypeWGPU:
		return newWGPURendererBackend(surfaceDescriptor, forceFallbackAdapter, sampleCount)
	default:
		return nil
	}
}
