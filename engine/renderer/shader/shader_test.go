package shader

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testVertexSource = `
struct VSOut {
    @builtin(position) clip_position: vec4<f32>,
}

@vertex
fn vs_main() -> VSOut {
    var out: VSOut;
    return out;
}
`

const testFragmentSource = `
@fragment
fn fs_main() -> @location(0) vec4<f32> {
    return vec4<f32>(1.0);
}
`

func TestNewShaderParsesEntryPoint(t *testing.T) {
	vs := NewShader("test_vs", ShaderTypeVertex, testVertexSource)
	assert.Equal(t, "vs_main", vs.EntryPoint())
	assert.Equal(t, ShaderTypeVertex, vs.ShaderType())
	assert.Equal(t, "test_vs", vs.Key())

	fs := NewShader("test_fs", ShaderTypeFragment, testFragmentSource)
	assert.Equal(t, "fs_main", fs.EntryPoint())
}

func TestNewShaderStageMismatchPanics(t *testing.T) {
	assert.Panics(t, func() {
		NewShader("wrong_stage", ShaderTypeFragment, testVertexSource)
	})
}

func TestNewShaderBuildsModuleDescriptor(t *testing.T) {
	s := NewShader("test_vs", ShaderTypeVertex, testVertexSource)
	m := s.Module()
	require.NotNil(t, m)
	assert.Equal(t, "test_vs", m.Label)
	assert.Equal(t, s.Source(), m.WGSLDescriptor.Code)
}

func TestComposeJoinsFragments(t *testing.T) {
	src := Compose("struct A { x: f32, }", "", "  struct B { y: f32, }  ")
	assert.Equal(t, "struct A { x: f32, }\n\nstruct B { y: f32, }\n", src)
}

func TestComposedSourceParses(t *testing.T) {
	src := Compose("struct Foo { v: vec3<f32>, }", testVertexSource)
	s := NewShader("composed", ShaderTypeVertex, src)
	assert.Equal(t, "vs_main", s.EntryPoint())
	assert.Contains(t, s.Source(), "struct Foo")
}

func TestMultiStageSourcePicksRightEntry(t *testing.T) {
	src := Compose(testVertexSource, testFragmentSource)
	assert.Equal(t, "vs_main", NewShader("vs", ShaderTypeVertex, src).EntryPoint())
	assert.Equal(t, "fs_main", NewShader("fs", ShaderTypeFragment, src).EntryPoint())
}
