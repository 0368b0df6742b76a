package engine

import (
	"time"

	"github.com/Carmen-Shannon/brink/common"
	"github.com/Carmen-Shannon/brink/engine/config"
	"github.com/Carmen-Shannon/brink/engine/renderer"
	"github.com/Carmen-Shannon/brink/engine/scene"
	"github.com/Carmen-Shannon/brink/engine/window"
)

// EngineBuilderOption is a functional option for configuring an Engine.
type EngineBuilderOption func(*engine)

// WithProfiling enables or disables frame statistics output.
//
// Parameters:
//   - enabled: if true, enables profiling output
//
// Returns:
//   - EngineBuilderOption: option function to apply
func WithProfiling(enabled bool) EngineBuilderOption {
	return func(e *engine) {
		e.profilingEnabled = enabled
	}
}

// WithTickRate sets the tick rate in ticks per second.
// Values <= 0 are treated as the default (60Hz).
//
// Parameters:
//   - fps: target ticks per second (default 60)
//
// Returns:
//   - EngineBuilderOption: option function to apply
func WithTickRate(fps float64) EngineBuilderOption {
	return func(e *engine) {
		if fps <= 0 {
			fps = 60.0
		}
		e.engineTickRate = time.Second / time.Duration(fps)
	}
}

// WithWindow sets the window the engine renders into. Required.
//
// Parameters:
//   - w: a pre-configured Window instance
//
// Returns:
//   - EngineBuilderOption: option function to apply
func WithWindow(w window.Window) EngineBuilderOption {
	return func(e *engine) {
		e.window = w
	}
}

// WithScene sets the active scene during engine construction.
//
// Parameters:
//   - s: the Scene to activate
//
// Returns:
//   - EngineBuilderOption: option function to apply
func WithScene(s scene.Scene) EngineBuilderOption {
	return func(e *engine) {
		e.scene = s
	}
}

// WithRendererOptions forwards options to the renderer created by the engine.
//
// Parameters:
//   - options: renderer options to apply
//
// Returns:
//   - EngineBuilderOption: option function to apply
func WithRendererOptions(options ...renderer.RendererBuilderOption) EngineBuilderOption {
	return func(e *engine) {
		e.rendererOptions = append(e.rendererOptions, options...)
	}
}

// WithRenderFrameLimit sets an optional render frame rate cap in frames per
// second. Pass 0 to uncap the render loop (default).
//
// Parameters:
//   - fps: maximum render frames per second (0 = uncapped)
//
// Returns:
//   - EngineBuilderOption: option function to apply
func WithRenderFrameLimit(fps float64) EngineBuilderOption {
	return func(e *engine) {
		if fps <= 0 {
			e.renderFrameLimit = 0
			return
		}
		e.renderFrameLimit = time.Second / time.Duration(fps)
	}
}

// WithConfig applies a loaded configuration: log level and renderer options.
// The window is not created here; pass its size to window.NewWindow from the
// same config.
//
// Parameters:
//   - cfg: the configuration to apply
//
// Returns:
//   - EngineBuilderOption: option function to apply
func WithConfig(cfg config.Config) EngineBuilderOption {
	return func(e *engine) {
		common.SetLogLevel(cfg.Log.Level)

		var opts []renderer.RendererBuilderOption
		if cfg.Renderer.PresentMode == "uncapped" {
			opts = append(opts, renderer.WithPresentMode(renderer.PresentModeUncapped))
		} else {
			opts = append(opts, renderer.WithPresentMode(renderer.PresentModeVSync))
		}
		opts = append(opts, renderer.WithMSAA(renderer.MSAASampleCount(cfg.Renderer.MSAASamples)))
		if cfg.Renderer.ForceSoftware {
			opts = append(opts, renderer.WithForceSoftwareRenderer())
		}
		e.rendererOptions = append(e.rendererOptions, opts...)
	}
}
