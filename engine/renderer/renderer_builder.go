package renderer

import (
	"github.com/Carmen-Shannon/brink/engine/renderer/pipeline"
)

// RendererBuilderOption configures a Renderer during construction.
type RendererBuilderOption func(*rendererImpl)

// WithPipeline registers a custom pipeline in place of the default lit and
// shadow pipelines. When any pipeline is supplied the defaults are not created.
//
// Parameters:
//   - p: the pipeline to register
//
// Returns:
//   - RendererBuilderOption: the option function
func WithPipeline(p pipeline.Pipeline) RendererBuilderOption {
	return func(r *rendererImpl) {
		if p == nil {
			return
		}
		r.pipelines[p.PipelineKey()] = p
	}
}

// WithPipelines registers multiple custom pipelines.
//
// Parameters:
//   - pipelines: the pipelines to register
//
// Returns:
//   - RendererBuilderOption: the option function
func WithPipelines(pipelines ...pipeline.Pipeline) RendererBuilderOption {
	return func(r *rendererImpl) {
		for _, p := range pipelines {
			if p == nil {
				continue
			}
			r.pipelines[p.PipelineKey()] = p
		}
	}
}

// WithPresentMode sets the initial surface present mode. Defaults to VSync.
//
// Parameters:
//   - mode: the PresentMode to use
//
// Returns:
//   - RendererBuilderOption: the option function
func WithPresentMode(mode PresentMode) RendererBuilderOption {
	return func(r *rendererImpl) {
		r.presentMode = mode
	}
}

// WithMSAA sets the MSAA sample count for the main render pass. Defaults to 4x.
// Shadow map passes always render at sample count 1.
//
// Parameters:
//   - sampleCount: the MSAA sample count
//
// Returns:
//   - RendererBuilderOption: the option function
func WithMSAA(sampleCount MSAASampleCount) RendererBuilderOption {
	return func(r *rendererImpl) {
		switch sampleCount {
		case MSAAOff, MSAA4x, MSAA8x, MSAA16x:
			r.sampleCount = sampleCount
		default:
			r.sampleCount = MSAAOff
		}
	}
}

// WithForceSoftwareRenderer forces adapter selection to a software fallback
// adapter. Useful for headless environments and CI.
//
// Returns:
//   - RendererBuilderOption: the option function
func WithForceSoftwareRenderer() RendererBuilderOption {
	return func(r *rendererImpl) {
		r.forceFallbackAdapter = true
	}
}
