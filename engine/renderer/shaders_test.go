package renderer

import (
	"strings"
	"testing"

	"github.com/Carmen-Shannon/brink/engine/renderer/shader"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLitShaderSourceComposition(t *testing.T) {
	source := LitShaderSource()

	// Struct snippets from every contributing package must land ahead of the
	// shader body that references them.
	for _, want := range []string{
		"struct CameraUniform",
		"struct Light",
		"struct Material",
		"struct Vertex",
		"struct Instance",
		"@vertex",
		"@fragment",
	} {
		assert.Contains(t, source, want)
	}

	bodyIdx := strings.Index(source, "fn vs_main")
	structIdx := strings.Index(source, "struct CameraUniform")
	require.GreaterOrEqual(t, bodyIdx, 0)
	require.GreaterOrEqual(t, structIdx, 0)
	assert.Less(t, structIdx, bodyIdx)
}

func TestLitShaderEntryPoints(t *testing.T) {
	source := LitShaderSource()

	vs := shader.NewShader("lit_vs", shader.ShaderTypeVertex, source)
	assert.Equal(t, "vs_main", vs.EntryPoint())

	fs := shader.NewShader("lit_fs", shader.ShaderTypeFragment, source)
	assert.Equal(t, "fs_main", fs.EntryPoint())
}

func TestLitShaderDispatchesOnEveryLightTag(t *testing.T) {
	source := LitShaderSource()

	// Each concrete tag gets an explicit branch; anything else must fall
	// through to the slot skip so the fragment loop matches the CPU
	// reference for out-of-contract tags.
	for _, want := range []string{
		"l.kind == LIGHT_NIL",
		"l.kind == LIGHT_POINT",
		"l.kind == LIGHT_DIRECTIONAL",
		"l.kind == LIGHT_SPOT",
	} {
		assert.Contains(t, source, want)
	}

	spotIdx := strings.Index(source, "l.kind == LIGHT_SPOT")
	require.GreaterOrEqual(t, spotIdx, 0)
	tail := source[spotIdx:]
	elseIdx := strings.Index(tail, "} else {")
	require.GreaterOrEqual(t, elseIdx, 0)
	assert.Contains(t, tail[elseIdx:elseIdx+100], "continue;")
}

func TestShadowShaderIsDepthOnly(t *testing.T) {
	source := ShadowShaderSource()

	assert.Contains(t, source, "@vertex")
	assert.NotContains(t, source, "@fragment")

	vs := shader.NewShader("shadow_vs", shader.ShaderTypeVertex, source)
	assert.Equal(t, "vs_shadow", vs.EntryPoint())
}

func TestLitBindGroupLayoutsMatchContract(t *testing.T) {
	layouts := litBindGroupLayouts()
	require.Len(t, layouts, 3)

	camera := layouts[GroupCamera]
	require.Len(t, camera.Entries, 1)
	assert.Equal(t, uint64(cameraUniformSize), camera.Entries[0].Buffer.MinBindingSize)

	lighting := layouts[GroupLighting]
	require.Len(t, lighting.Entries, 2)
	assert.Equal(t, uint64(lightArraySize), lighting.Entries[0].Buffer.MinBindingSize)

	material := layouts[GroupMaterial]
	require.Len(t, material.Entries, 1)
	assert.Equal(t, uint64(materialUniformSize), material.Entries[0].Buffer.MinBindingSize)
}

func TestMeshVertexLayouts(t *testing.T) {
	layouts := meshVertexLayouts()
	require.Len(t, layouts, 2)

	// Slot 0: per-vertex position + normal. Slot 1: per-instance transforms.
	assert.Equal(t, uint64(24), layouts[0].ArrayStride)
	assert.Len(t, layouts[0].Attributes, 2)
	assert.Equal(t, uint64(100), layouts[1].ArrayStride)
	assert.Len(t, layouts[1].Attributes, 7)
}
