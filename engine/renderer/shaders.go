package renderer

import (
	_ "embed"

	"github.com/Carmen-Shannon/brink/engine/camera"
	"github.com/Carmen-Shannon/brink/engine/light"
	"github.com/Carmen-Shannon/brink/engine/model"
	"github.com/Carmen-Shannon/brink/engine/renderer/material"
	"github.com/Carmen-Shannon/brink/engine/renderer/shader"
)

//go:embed assets/lit.wgsl
var litShaderBody string

//go:embed assets/shadow.wgsl
var shadowShaderBody string

// Pipeline cache keys for the built-in pipelines.
const (
	LitPipelineKey    = "lit"
	ShadowPipelineKey = "shadow"
)

// LitShaderSource composes the full WGSL source for the forward lit pipeline:
// the struct snippets embedded next to their Go GPU types, followed by the
// lit shader body. Composing instead of duplicating the struct declarations
// keeps the WGSL and Go layouts from drifting apart.
//
// Returns:
//   - string: the composed WGSL source containing both entry points
func LitShaderSource() string {
	return shader.Compose(
		camera.GPUCameraUniformSource,
		light.GPULightSource,
		material.GPUMaterialSource,
		model.GPUVertexSource,
		model.GPUInstanceSource,
		litShaderBody,
	)
}

// ShadowShaderSource composes the full WGSL source for the depth-only shadow
// pipeline.
//
// Returns:
//   - string: the composed WGSL source containing the vertex entry point
func ShadowShaderSource() string {
	return shader.Compose(
		model.GPUVertexSource,
		model.GPUInstanceSource,
		shadowShaderBody,
	)
}
