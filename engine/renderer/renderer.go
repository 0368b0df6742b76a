package renderer

import (
	"fmt"
	"sync"

	"github.com/Carmen-Shannon/brink/common"
	"github.com/Carmen-Shannon/brink/engine/light"
	"github.com/Carmen-Shannon/brink/engine/renderer/bind_group_provider"
	"github.com/Carmen-Shannon/brink/engine/renderer/pipeline"
	"github.com/Carmen-Shannon/brink/engine/renderer/shader"
	"github.com/Carmen-Shannon/brink/engine/scene"
	"github.com/cogentcore/webgpu/wgpu"
	"github.com/google/uuid"
)

type rendererImpl struct {
	mu      *sync.Mutex
	backend RendererBackend

	backendType          RendererBackendType
	presentMode          PresentMode
	sampleCount          MSAASampleCount
	forceFallbackAdapter bool

	pipelines map[string]pipeline.Pipeline

	// Per-frame uniform providers, created once during RegisterPipelines.
	cameraProvider   bind_group_provider.BindGroupProvider
	lightingProvider bind_group_provider.BindGroupProvider
	materialProvider bind_group_provider.BindGroupProvider
	shadowProviders  [light.MaxLights]bind_group_provider.BindGroupProvider

	// Per-mesh GPU resources keyed by mesh ID. Entries whose meshes have left
	// the scene are released at the start of the next frame.
	meshResources map[uuid.UUID]bind_group_provider.BindGroupProvider

	width  int
	height int
	ready  bool
}

// Renderer owns the GPU backend, the pipeline cache, and the per-frame and
// per-mesh GPU resources. It consumes scene.FrameState snapshots and encodes
// complete frames: shadow depth passes for every active light slot followed
// by the main lit pass.
type Renderer interface {
	// Backend returns the underlying RendererBackend.
	//
	// Returns:
	//   - RendererBackend: the backend instance
	Backend() RendererBackend

	// Pipeline returns the registered pipeline with the given key, or nil.
	//
	// Parameters:
	//   - key: the pipeline key to look up
	//
	// Returns:
	//   - pipeline.Pipeline: the pipeline, or nil if not registered
	Pipeline(key string) pipeline.Pipeline

	// RegisterPipelines compiles and registers all configured pipelines with
	// the backend, creates the shadow map targets, and initializes the
	// per-frame uniform bind groups. Must be called once after the surface
	// has been configured and before the first RenderFrame.
	//
	// Returns:
	//   - error: an error if any pipeline or resource creation fails
	RegisterPipelines() error

	// Resize reconfigures the surface and size-dependent resources.
	//
	// Parameters:
	//   - width: the new surface width in pixels
	//   - height: the new surface height in pixels
	Resize(width, height int)

	// SetPresentMode switches the presentation mode and reconfigures the surface.
	//
	// Parameters:
	//   - mode: the PresentMode to switch to
	SetPresentMode(mode PresentMode)

	// RenderFrame uploads the snapshot's uniform and instance data and encodes
	// one complete frame from it.
	//
	// Parameters:
	//   - fs: the frame snapshot to render
	//
	// Returns:
	//   - error: an error if the frame could not be started or resources failed to upload
	RenderFrame(fs *scene.FrameState) error
}

var _ Renderer = &rendererImpl{}

// NewRenderer creates a Renderer with the given backend type and surface.
// The surface is configured to the given size; call RegisterPipelines before
// rendering frames.
//
// Parameters:
//   - backendType: the RendererBackendType to use
//   - surfaceDescriptor: the platform surface descriptor for the target window
//   - width: the initial surface width in pixels
//   - height: the initial surface height in pixels
//   - options: optional configuration functions
//
// Returns:
//   - Renderer: the created Renderer instance
func NewRenderer(backendType RendererBackendType, surfaceDescriptor *wgpu.SurfaceDescriptor, width, height int, options ...RendererBuilderOption) Renderer {
	r := &rendererImpl{
		mu:            &sync.Mutex{},
		backendType:   backendType,
		presentMode:   PresentModeVSync,
		sampleCount:   MSAA4x,
		pipelines:     make(map[string]pipeline.Pipeline),
		meshResources: make(map[uuid.UUID]bind_group_provider.BindGroupProvider),
		width:         width,
		height:        height,
	}
	for _, opt := range options {
		opt(r)
	}

	r.backend = NewRendererBackend(backendType, surfaceDescriptor, r.forceFallbackAdapter, r.sampleCount)
	if r.backend == nil {
		panic(fmt.Sprintf("unsupported renderer backend type: %d", backendType))
	}
	r.backend.SetPresentMode(r.presentMode)
	r.backend.ConfigureSurface(width, height)

	if len(r.pipelines) == 0 {
		r.pipelines[LitPipelineKey] = newLitPipeline()
		r.pipelines[ShadowPipelineKey] = newShadowPipeline()
	}

	return r
}

// newLitPipeline builds the default forward-shading pipeline.
func newLitPipeline() pipeline.Pipeline {
	source := LitShaderSource()
	return pipeline.NewPipeline(
		LitPipelineKey,
		pipeline.PipelineTypeRender,
		pipeline.WithVertexShader(shader.NewShader(LitPipelineKey+"_vs", shader.ShaderTypeVertex, source)),
		pipeline.WithFragmentShader(shader.NewShader(LitPipelineKey+"_fs", shader.ShaderTypeFragment, source)),
		pipeline.WithBindGroupLayouts(litBindGroupLayouts()),
		pipeline.WithVertexLayouts(meshVertexLayouts()...),
		pipeline.WithCullMode(wgpu.CullModeBack),
	)
}

// newShadowPipeline builds the default depth-only shadow pipeline. The depth
// bias nudges stored depths away from the surface to reduce shadow acne on
// top of the fixed bias applied at sampling time.
func newShadowPipeline() pipeline.Pipeline {
	source := ShadowShaderSource()
	return pipeline.NewPipeline(
		ShadowPipelineKey,
		pipeline.PipelineTypeShadow,
		pipeline.WithVertexShader(shader.NewShader(ShadowPipelineKey+"_vs", shader.ShaderTypeVertex, source)),
		pipeline.WithBindGroupLayouts(shadowBindGroupLayouts()),
		pipeline.WithVertexLayouts(meshVertexLayouts()...),
		pipeline.WithDepthBias(2, 2.0),
		pipeline.WithCullMode(wgpu.CullModeFront),
	)
}

func (r *rendererImpl) Backend() RendererBackend {
	return r.backend
}

func (r *rendererImpl) Pipeline(key string) pipeline.Pipeline {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.pipelines[key]
}

func (r *rendererImpl) RegisterPipelines() error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.ready {
		return nil
	}

	if err := r.backend.InitShadowTargets(); err != nil {
		return err
	}

	for key, p := range r.pipelines {
		var err error
		switch p.Type() {
		case pipeline.PipelineTypeShadow:
			err = r.backend.RegisterShadowPipeline(p)
		case pipeline.PipelineTypeRender:
			fallthrough
		default:
			err = r.backend.RegisterRenderPipeline(p)
		}
		if err != nil {
			return fmt.Errorf("failed to register pipeline %q: %w", key, err)
		}
		common.LogDebug("registered pipeline %s", key)
	}

	if err := r.initFrameProviders(); err != nil {
		return err
	}

	r.ready = true
	return nil
}

// initFrameProviders creates the uniform bind groups shared by every frame:
// camera, lighting (light array + shadow map array view), material, and one
// light view-projection group per shadow slot.
func (r *rendererImpl) initFrameProviders() error {
	layouts := litBindGroupLayouts()

	r.cameraProvider = bind_group_provider.NewBindGroupProvider("camera")
	if err := r.backend.InitBindGroup(r.cameraProvider, layouts[GroupCamera]); err != nil {
		return fmt.Errorf("failed to init camera bind group: %w", err)
	}

	r.lightingProvider = bind_group_provider.NewBindGroupProvider(
		"lighting",
		bind_group_provider.WithTextureView(BindingShadowMaps, r.backend.ShadowArrayView()),
	)
	if err := r.backend.InitBindGroup(r.lightingProvider, layouts[GroupLighting]); err != nil {
		return fmt.Errorf("failed to init lighting bind group: %w", err)
	}

	r.materialProvider = bind_group_provider.NewBindGroupProvider("material")
	if err := r.backend.InitBindGroup(r.materialProvider, layouts[GroupMaterial]); err != nil {
		return fmt.Errorf("failed to init material bind group: %w", err)
	}

	shadowLayouts := shadowBindGroupLayouts()
	for slot := range r.shadowProviders {
		provider := bind_group_provider.NewBindGroupProvider(fmt.Sprintf("shadow_slot_%d", slot))
		if err := r.backend.InitBindGroup(provider, shadowLayouts[0]); err != nil {
			return fmt.Errorf("failed to init shadow bind group for slot %d: %w", slot, err)
		}
		r.shadowProviders[slot] = provider
	}

	return nil
}

func (r *rendererImpl) Resize(width, height int) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if width <= 0 || height <= 0 {
		return
	}
	r.width = width
	r.height = height
	r.backend.ConfigureSurface(width, height)
}

func (r *rendererImpl) SetPresentMode(mode PresentMode) {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.presentMode = mode
	r.backend.SetPresentMode(mode)
	r.backend.ConfigureSurface(r.width, r.height)
}

func (r *rendererImpl) RenderFrame(fs *scene.FrameState) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if !r.ready {
		return fmt.Errorf("pipelines not registered")
	}
	if fs == nil {
		return fmt.Errorf("nil frame state")
	}

	r.writeFrameUniforms(fs)
	if err := r.syncMeshResources(fs); err != nil {
		return err
	}

	plan := BuildFramePlan(fs)

	if err := r.backend.BeginFrame(); err != nil {
		return err
	}

	shadowPipeline := r.pipelines[ShadowPipelineKey]
	for _, pass := range plan.ShadowPasses {
		r.backend.BeginShadowPass(pass.Slot)
		for _, draw := range pass.Draws {
			mesh := fs.Meshes[draw.MeshIndex]
			r.backend.ShadowDrawCall(shadowPipeline, r.meshResources[mesh.ID], draw.InstanceCount, r.shadowProviders[pass.Slot])
		}
		r.backend.EndShadowPass()
	}

	litPipeline := r.pipelines[LitPipelineKey]
	frameGroups := []bind_group_provider.BindGroupProvider{
		r.cameraProvider,
		r.lightingProvider,
		r.materialProvider,
	}
	r.backend.BeginMainPass()
	for _, draw := range plan.MainDraws {
		mesh := fs.Meshes[draw.MeshIndex]
		r.backend.DrawCall(litPipeline, r.meshResources[mesh.ID], draw.InstanceCount, frameGroups)
	}
	r.backend.EndMainPass()

	r.backend.EndFrame()
	r.backend.Present()

	return nil
}

// writeFrameUniforms stages the snapshot's uniform data onto the GPU queue:
// camera, light array, material, and the view-projection matrix for each
// active shadow slot.
func (r *rendererImpl) writeFrameUniforms(fs *scene.FrameState) {
	writes := []bind_group_provider.BufferWrite{
		{Provider: r.cameraProvider, Binding: BindingCameraUniform, Offset: 0, Data: fs.CameraUniform},
		{Provider: r.lightingProvider, Binding: BindingLightArray, Offset: 0, Data: fs.LightArray},
		{Provider: r.materialProvider, Binding: BindingMaterialUniform, Offset: 0, Data: fs.MaterialUniform},
	}
	for slot := range r.shadowProviders {
		if !fs.LightActive[slot] {
			continue
		}
		writes = append(writes, bind_group_provider.BufferWrite{
			Provider: r.shadowProviders[slot],
			Binding:  BindingShadowViewProj,
			Offset:   0,
			Data:     common.Float32SliceToBytes(fs.LightViewProjections[slot][:]),
		})
	}
	r.backend.WriteBuffers(writes)
}

// syncMeshResources uploads buffers for meshes new to the renderer, refreshes
// instance data for known meshes, and releases resources for meshes that are
// no longer in the snapshot.
func (r *rendererImpl) syncMeshResources(fs *scene.FrameState) error {
	seen := make(map[uuid.UUID]struct{}, len(fs.Meshes))
	for _, mesh := range fs.Meshes {
		seen[mesh.ID] = struct{}{}

		provider, ok := r.meshResources[mesh.ID]
		if !ok {
			provider = bind_group_provider.NewBindGroupProvider(mesh.Name)
			if err := r.backend.InitMeshBuffers(provider, mesh.VertexData, mesh.IndexData, mesh.InstanceData, mesh.IndexCount); err != nil {
				return fmt.Errorf("failed to init buffers for mesh %s: %w", mesh.Name, err)
			}
			r.meshResources[mesh.ID] = provider
			common.LogDebug("uploaded mesh %s (%d indices, %d instances)", mesh.Name, mesh.IndexCount, mesh.InstanceCount)
			continue
		}

		// Instance transforms change frame to frame; vertex and index data are
		// immutable once uploaded.
		if err := r.backend.WriteInstanceBuffer(provider, mesh.InstanceData); err != nil {
			return fmt.Errorf("failed to write instance buffer for mesh %s: %w", mesh.Name, err)
		}
	}

	for id, provider := range r.meshResources {
		if _, ok := seen[id]; ok {
			continue
		}
		provider.Release()
		delete(r.meshResources, id)
	}

	return nil
}
