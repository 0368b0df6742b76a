package renderer

import (
	"github.com/Carmen-Shannon/brink/engine/light"
	"github.com/Carmen-Shannon/brink/engine/model"
	"github.com/cogentcore/webgpu/wgpu"
)

// Bind group indices for the lit pipeline. The shadow pipeline uses a single
// group 0 holding the active light's view-projection.
const (
	// GroupCamera holds the per-frame camera uniform.
	GroupCamera = 0
	// GroupLighting holds the light slot array and the shadow map texture array.
	GroupLighting = 1
	// GroupMaterial holds the active material uniform.
	GroupMaterial = 2
)

// Binding indices within their groups.
const (
	BindingCameraUniform   = 0
	BindingLightArray      = 0
	BindingShadowMaps      = 1
	BindingMaterialUniform = 0
	BindingShadowViewProj  = 0
)

// Uniform buffer sizes in bytes. These mirror the Marshal output of the
// corresponding GPU types.
const (
	cameraUniformSize   = 80
	lightArraySize      = light.MaxLights * 128
	materialUniformSize = 32
	shadowViewProjSize  = 64
)

// litBindGroupLayouts returns the explicit layout descriptors for the lit
// pipeline's three bind groups.
func litBindGroupLayouts() map[int]wgpu.BindGroupLayoutDescriptor {
	return map[int]wgpu.BindGroupLayoutDescriptor{
		GroupCamera: {
			Label: "Camera Bind Group Layout",
			Entries: []wgpu.BindGroupLayoutEntry{
				{
					Binding:    BindingCameraUniform,
					Visibility: wgpu.ShaderStageVertex | wgpu.ShaderStageFragment,
					Buffer: wgpu.BufferBindingLayout{
						Type:           wgpu.BufferBindingTypeUniform,
						MinBindingSize: cameraUniformSize,
					},
				},
			},
		},
		GroupLighting: {
			Label: "Lighting Bind Group Layout",
			Entries: []wgpu.BindGroupLayoutEntry{
				{
					Binding:    BindingLightArray,
					Visibility: wgpu.ShaderStageFragment,
					Buffer: wgpu.BufferBindingLayout{
						Type:           wgpu.BufferBindingTypeUniform,
						MinBindingSize: lightArraySize,
					},
				},
				{
					Binding:    BindingShadowMaps,
					Visibility: wgpu.ShaderStageFragment,
					Texture: wgpu.TextureBindingLayout{
						SampleType:    wgpu.TextureSampleTypeDepth,
						ViewDimension: wgpu.TextureViewDimension2DArray,
					},
				},
			},
		},
		GroupMaterial: {
			Label: "Material Bind Group Layout",
			Entries: []wgpu.BindGroupLayoutEntry{
				{
					Binding:    BindingMaterialUniform,
					Visibility: wgpu.ShaderStageFragment,
					Buffer: wgpu.BufferBindingLayout{
						Type:           wgpu.BufferBindingTypeUniform,
						MinBindingSize: materialUniformSize,
					},
				},
			},
		},
	}
}

// shadowBindGroupLayouts returns the single-group layout for the depth-only
// shadow pipeline: one mat4 uniform holding the light's view-projection.
func shadowBindGroupLayouts() map[int]wgpu.BindGroupLayoutDescriptor {
	return map[int]wgpu.BindGroupLayoutDescriptor{
		0: {
			Label: "Shadow Bind Group Layout",
			Entries: []wgpu.BindGroupLayoutEntry{
				{
					Binding:    BindingShadowViewProj,
					Visibility: wgpu.ShaderStageVertex,
					Buffer: wgpu.BufferBindingLayout{
						Type:           wgpu.BufferBindingTypeUniform,
						MinBindingSize: shadowViewProjSize,
					},
				},
			},
		},
	}
}

// meshVertexLayouts returns the two vertex buffer slots shared by the lit and
// shadow pipelines: slot 0 is per-vertex geometry, slot 1 is per-instance
// transform data. Strides are packed, matching the Marshal layouts.
func meshVertexLayouts() []wgpu.VertexBufferLayout {
	return []wgpu.VertexBufferLayout{
		{
			ArrayStride: model.GPUVertexSize,
			StepMode:    wgpu.VertexStepModeVertex,
			Attributes: []wgpu.VertexAttribute{
				{Format: wgpu.VertexFormatFloat32x3, Offset: 0, ShaderLocation: 0},
				{Format: wgpu.VertexFormatFloat32x3, Offset: 12, ShaderLocation: 1},
			},
		},
		{
			ArrayStride: model.GPUInstanceSize,
			StepMode:    wgpu.VertexStepModeInstance,
			Attributes: []wgpu.VertexAttribute{
				{Format: wgpu.VertexFormatFloat32x4, Offset: 0, ShaderLocation: 2},
				{Format: wgpu.VertexFormatFloat32x4, Offset: 16, ShaderLocation: 3},
				{Format: wgpu.VertexFormatFloat32x4, Offset: 32, ShaderLocation: 4},
				{Format: wgpu.VertexFormatFloat32x4, Offset: 48, ShaderLocation: 5},
				{Format: wgpu.VertexFormatFloat32x3, Offset: 64, ShaderLocation: 6},
				{Format: wgpu.VertexFormatFloat32x3, Offset: 76, ShaderLocation: 7},
				{Format: wgpu.VertexFormatFloat32x3, Offset: 88, ShaderLocation: 8},
			},
		},
	}
}
