package shader

import (
	"fmt"
	"os"
	"regexp"

	"github.com/Carmen-Shannon/cubewalk/engine/model"
	"github.com/cogentcore/webgpu/wgpu"
)

// ShaderType identifies which render stage a shader feeds.
type ShaderType int

const (
	// ShaderTypeVertex is the vertex stage of a render pipeline.
	ShaderTypeVertex ShaderType = iota

	// ShaderTypeFragment is the fragment stage, paired with a vertex shader.
	ShaderTypeFragment
)

var (
	vertexEntryRegex   = regexp.MustCompile(`(?s)@vertex\b.*?\bfn\s+(\w+)`)
	fragmentEntryRegex = regexp.MustCompile(`(?s)@fragment\b.*?\bfn\s+(\w+)`)
	lineCommentRegex   = regexp.MustCompile(`//[^\n]*`)
)

// shader holds the persistent shader data required for pipeline creation.
type shader struct {
	key                        string
	source                     string
	shaderType                 ShaderType
	bindGroupLayoutDescriptors map[int]wgpu.BindGroupLayoutDescriptor
	bindingVarNames            map[int]map[int]string
	vertexLayouts              map[int][]wgpu.VertexBufferLayout
	entryPoint                 string
	module                     *wgpu.ShaderModuleDescriptor

	pp PreProcessor
}

// Shader is a pre-processed WGSL shader stage. It exposes the shader module descriptor, the
// entry point and the bind group and vertex layouts derived from the source's annotations.
type Shader interface {
	// Key retrieves the unique identifier for this shader.
	//
	// Returns:
	//   - string: the shader's unique key
	Key() string

	// Source retrieves the processed WGSL source.
	//
	// Returns:
	//   - string: the WGSL source with annotations expanded
	Source() string

	// BindGroupLayoutDescriptor retrieves the layout descriptor for a bind group.
	//
	// Parameters:
	//   - group: the bind group index
	//
	// Returns:
	//   - wgpu.BindGroupLayoutDescriptor: the descriptor, or an empty descriptor if the group is not declared
	BindGroupLayoutDescriptor(group int) wgpu.BindGroupLayoutDescriptor

	// BindGroupLayoutDescriptors retrieves all layout descriptors keyed by group index.
	//
	// Returns:
	//   - map[int]wgpu.BindGroupLayoutDescriptor: the descriptors
	BindGroupLayoutDescriptors() map[int]wgpu.BindGroupLayoutDescriptor

	// BindGroupVarName retrieves the WGSL variable name declared at a group and binding.
	//
	// Parameters:
	//   - group: the bind group index
	//   - binding: the binding index within the group
	//
	// Returns:
	//   - string: the variable name, or an empty string if nothing is declared there
	BindGroupVarName(group, binding int) string

	// VertexLayouts retrieves the vertex buffer layouts keyed by pipeline variant.
	//
	// Returns:
	//   - map[int][]wgpu.VertexBufferLayout: the layouts
	VertexLayouts() map[int][]wgpu.VertexBufferLayout

	// SetVertexLayout overrides the vertex buffer layout for a variant.
	//
	// Parameters:
	//   - key: the variant key
	//   - layout: the buffer layouts
	SetVertexLayout(key int, layout []wgpu.VertexBufferLayout)

	// EntryPoint returns the entry point function name.
	//
	// Returns:
	//   - string: the entry point name
	EntryPoint() string

	// Module returns the shader module descriptor.
	//
	// Returns:
	//   - *wgpu.ShaderModuleDescriptor: the descriptor holding the processed WGSL
	Module() *wgpu.ShaderModuleDescriptor

	// ShaderType returns the stage this shader feeds.
	//
	// Returns:
	//   - ShaderType: ShaderTypeVertex or ShaderTypeFragment
	ShaderType() ShaderType

	// Declarations returns the resource annotations parsed from the source.
	//
	// Returns:
	//   - []Annotation: the group, texture and sampler declarations in source order
	Declarations() []Annotation
}

var _ Shader = &shader{}

// NewShader pre-processes source and derives the entry point and layouts from it.
// It panics when the source is empty, fails to pre-process or has no entry point for the
// requested stage, since a pipeline cannot be built from it.
//
// Parameters:
//   - key: a unique identifier for the shader
//   - shaderType: the render stage
//   - source: the annotated WGSL source
//   - options: functional options applied after parsing
//
// Returns:
//   - Shader: the parsed shader
func NewShader(key string, shaderType ShaderType, source string, options ...ShaderBuilderOption) Shader {
	if source == "" {
		panic(fmt.Sprintf("shader: %s has no source", key))
	}
	s := &shader{
		key:                        key,
		shaderType:                 shaderType,
		bindGroupLayoutDescriptors: make(map[int]wgpu.BindGroupLayoutDescriptor),
		bindingVarNames:            make(map[int]map[int]string),
		vertexLayouts:              make(map[int][]wgpu.VertexBufferLayout),
		pp:                         NewPreProcessor(),
	}
	if err := s.parseSource(source); err != nil {
		panic(fmt.Sprintf("shader: failed to pre-process %s: %v", key, err))
	}
	for _, option := range options {
		option(s)
	}
	if s.entryPoint == "" {
		panic(fmt.Sprintf("shader: %s has no entry point for its stage", key))
	}
	return s
}

// NewShaderFromPath reads the WGSL source from disk and calls NewShader.
//
// Parameters:
//   - key: a unique identifier for the shader
//   - shaderType: the render stage
//   - path: the WGSL file path
//   - options: functional options applied after parsing
//
// Returns:
//   - Shader: the parsed shader
func NewShaderFromPath(key string, shaderType ShaderType, path string, options ...ShaderBuilderOption) Shader {
	data, err := os.ReadFile(path)
	if err != nil {
		panic(fmt.Sprintf("shader: failed to read source file %q: %v", path, err))
	}
	return NewShader(key, shaderType, string(data), options...)
}

func (s *shader) Key() string {
	return s.key
}

func (s *shader) Source() string {
	return s.source
}

func (s *shader) BindGroupLayoutDescriptor(group int) wgpu.BindGroupLayoutDescriptor {
	return s.bindGroupLayoutDescriptors[group]
}

func (s *shader) BindGroupLayoutDescriptors() map[int]wgpu.BindGroupLayoutDescriptor {
	return s.bindGroupLayoutDescriptors
}

func (s *shader) BindGroupVarName(group, binding int) string {
	if s.bindingVarNames[group] == nil {
		return ""
	}
	return s.bindingVarNames[group][binding]
}

func (s *shader) VertexLayouts() map[int][]wgpu.VertexBufferLayout {
	return s.vertexLayouts
}

func (s *shader) SetVertexLayout(key int, layout []wgpu.VertexBufferLayout) {
	s.vertexLayouts[key] = layout
}

func (s *shader) EntryPoint() string {
	return s.entryPoint
}

func (s *shader) Module() *wgpu.ShaderModuleDescriptor {
	return s.module
}

func (s *shader) ShaderType() ShaderType {
	return s.shaderType
}

func (s *shader) Declarations() []Annotation {
	return s.pp.Declarations()
}

// parseSource expands annotations, builds the module descriptor, finds the entry point and
// derives bind group layouts from the declarations. Vertex shaders that include the
// VertexInput struct get the engine's vertex buffer layout as variant 0.
func (s *shader) parseSource(source string) error {
	processed, err := s.pp.Process(source)
	if err != nil {
		return err
	}
	s.source = processed
	s.module = &wgpu.ShaderModuleDescriptor{
		Label: s.key,
		WGSLDescriptor: &wgpu.ShaderModuleWGSLDescriptor{
			Code: s.source,
		},
	}

	cleaned := lineCommentRegex.ReplaceAllString(s.source, "")
	re := vertexEntryRegex
	visibility := wgpu.ShaderStageVertex
	if s.shaderType == ShaderTypeFragment {
		re = fragmentEntryRegex
		visibility = wgpu.ShaderStageFragment
	}
	if match := re.FindStringSubmatch(cleaned); match != nil {
		s.entryPoint = match[1]
	}

	if s.shaderType == ShaderTypeVertex && s.pp.Included(AnnotationArgVertex) {
		s.vertexLayouts[0] = []wgpu.VertexBufferLayout{model.VertexBufferLayout()}
	}

	for _, a := range s.pp.Declarations() {
		group, binding := *a.Group, *a.Binding
		desc := s.bindGroupLayoutDescriptors[group]
		if desc.Label == "" {
			desc.Label = fmt.Sprintf("%s_group_%d", s.key, group)
		}
		desc.Entries = append(desc.Entries, s.layoutEntry(a, visibility))
		s.bindGroupLayoutDescriptors[group] = desc

		if s.bindingVarNames[group] == nil {
			s.bindingVarNames[group] = make(map[int]string)
		}
		s.bindingVarNames[group][binding] = varName(a)
	}
	return nil
}

// layoutEntry classifies a declaration into a bind group layout entry.
func (s *shader) layoutEntry(a Annotation, visibility wgpu.ShaderStage) wgpu.BindGroupLayoutEntry {
	entry := wgpu.BindGroupLayoutEntry{
		Binding:    uint32(*a.Binding),
		Visibility: visibility,
	}
	switch a.Type {
	case AnnotationTypeTexture:
		entry.Texture.SampleType = wgpu.TextureSampleTypeFloat
		entry.Texture.ViewDimension = wgpu.TextureViewDimension2D
	case AnnotationTypeSampler:
		entry.Sampler.Type = wgpu.SamplerBindingTypeFiltering
	case AnnotationTypeBindingGroup:
		entry.Buffer.Type = wgpu.BufferBindingTypeUniform
		if a.Args[0] == annotationArgStorageTypeRead {
			entry.Buffer.Type = wgpu.BufferBindingTypeReadOnlyStorage
		}
		entry.Buffer.MinBindingSize = s.pp.StructSize(a.Args[2])
	}
	return entry
}

func varName(a Annotation) string {
	if a.Type == AnnotationTypeBindingGroup {
		return string(a.Args[1])
	}
	return string(a.Args[0])
}
