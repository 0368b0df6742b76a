package shader

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/cogentcore/webgpu/wgpu"
)

// ShaderType identifies the pipeline stage a shader provides.
type ShaderType int

const (
	// ShaderTypeVertex is the vertex shader type, used for vertex processing in render pipelines.
	ShaderTypeVertex ShaderType = iota

	// ShaderTypeFragment is the fragment shader type, used for fragment processing in pair with a vertex shader.
	ShaderTypeFragment
)

// shader is the implementation of the Shader interface.
type shader struct {
	key        string
	source     string
	shaderType ShaderType
	entryPoint string
	module     *wgpu.ShaderModuleDescriptor
}

// Shader defines the interface for a composed WGSL shader. It exposes the
// shader's unique key, final source code, entry point name, and the module
// descriptor used for pipeline creation.
type Shader interface {
	// Key retrieves the unique identifier for this shader, used for caching and lookups.
	//
	// Returns:
	//   - string: the shader's unique key
	Key() string

	// Source retrieves the WGSL shader source code.
	//
	// Returns:
	//   - string: the WGSL source code of the shader
	Source() string

	// EntryPoint returns the entry point name for this shader, parsed from the
	// @vertex or @fragment function declaration in the source.
	//
	// Returns:
	//   - string: the entry point name (e.g. "vs_main")
	EntryPoint() string

	// ShaderType returns the type of the shader (vertex or fragment).
	//
	// Returns:
	//   - ShaderType: ShaderTypeVertex or ShaderTypeFragment
	ShaderType() ShaderType

	// Module returns the wgpu.ShaderModuleDescriptor for this shader.
	//
	// Returns:
	//   - *wgpu.ShaderModuleDescriptor: the shader module descriptor containing the WGSL code and label
	Module() *wgpu.ShaderModuleDescriptor
}

var _ Shader = &shader{}

// NewShader creates a new Shader from composed WGSL source. The entry point
// is parsed from the source's @vertex or @fragment function declaration;
// NewShader panics when the source has no entry point matching shaderType,
// since a shader without one can never produce a valid pipeline.
//
// Parameters:
//   - key: a unique identifier for the shader, used for caching and lookups
//   - shaderType: the type of shader (vertex or fragment)
//   - source: the complete WGSL source code (see Compose)
//
// Returns:
//   - Shader: a new Shader instance
func NewShader(key string, shaderType ShaderType, source string) Shader {
	entry := parseEntryPoint(source, shaderType)
	if entry == "" {
		panic(fmt.Sprintf("shader: %s has no %s entry point", key, stageAttribute(shaderType)))
	}
	return &shader{
		key:        key,
		source:     source,
		shaderType: shaderType,
		entryPoint: entry,
		module: &wgpu.ShaderModuleDescriptor{
			Label: key,
			WGSLDescriptor: &wgpu.ShaderModuleWGSLDescriptor{
				Code: source,
			},
		},
	}
}

// Compose joins WGSL source fragments into a single module with blank lines
// between them. Struct snippets embedded next to their Go GPU types are
// composed with a shader body so the two layouts can never drift apart.
//
// Parameters:
//   - parts: the WGSL fragments in declaration order
//
// Returns:
//   - string: the composed WGSL source
func Compose(parts ...string) string {
	trimmed := make([]string, 0, len(parts))
	for _, p := range parts {
		if t := strings.TrimSpace(p); t != "" {
			trimmed = append(trimmed, t)
		}
	}
	return strings.Join(trimmed, "\n\n") + "\n"
}

func (s *shader) Key() string {
	return s.key
}

func (s *shader) Source() string {
	return s.source
}

func (s *shader) EntryPoint() string {
	return s.entryPoint
}

func (s *shader) ShaderType() ShaderType {
	return s.shaderType
}

func (s *shader) Module() *wgpu.ShaderModuleDescriptor {
	return s.module
}

var entryPointPattern = regexp.MustCompile(`@(vertex|fragment)\s+fn\s+(\w+)`)

// parseEntryPoint finds the entry function name for the given stage. The
// first matching declaration wins.
func parseEntryPoint(source string, shaderType ShaderType) string {
	stage := strings.TrimPrefix(stageAttribute(shaderType), "@")
	for _, m := range entryPointPattern.FindAllStringSubmatch(source, -1) {
		if m[1] == stage {
			return m[2]
		}
	}
	return ""
}

func stageAttribute(shaderType ShaderType) string {
	switch shaderType {
	case ShaderTypeFragment:
		return "@fragment"
	default:
		return "@vertex"
	}
}
