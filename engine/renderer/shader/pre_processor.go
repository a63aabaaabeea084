// pre_processor.go implements the engine's WGSL pre-processor. It replaces @engine:
// annotations with injected struct sources or generated declarations and records the
// declarations so the Shader can build matching bind group layouts.
package shader

import (
	"fmt"
	"slices"
	"strings"

	"github.com/Carmen-Shannon/cubewalk/engine/camera"
	"github.com/Carmen-Shannon/cubewalk/engine/light"
	"github.com/Carmen-Shannon/cubewalk/engine/model"
)

// registryEntry pairs an embedded WGSL struct source with its type name and byte size.
// A zero Size marks a struct that cannot back a buffer binding.
type registryEntry struct {
	Source string
	Type   string
	Size   uint64
}

type preProcessor struct {
	structRegistry       map[AnnotationArg]registryEntry
	addressSpaceRegistry map[AnnotationArg]string

	// declarations and includes are reset at the start of each Process call
	declarations []Annotation
	includes     []AnnotationArg
}

// PreProcessor rewrites annotated WGSL source and reports what it declared.
type PreProcessor interface {
	// Process replaces every annotation in source with its WGSL output.
	//
	// Parameters:
	//   - source: the raw WGSL source
	//
	// Returns:
	//   - string: the processed source
	//   - error: an error if an annotation is malformed, references an unknown type or
	//     declares the same group and binding twice
	Process(source string) (string, error)

	// Declarations returns the group, texture and sampler annotations from the last Process
	// call in source order.
	//
	// Returns:
	//   - []Annotation: the declarations
	Declarations() []Annotation

	// Included reports whether the last Process call included the given struct.
	//
	// Parameters:
	//   - arg: the struct type key
	//
	// Returns:
	//   - bool: true if the struct was included
	Included(arg AnnotationArg) bool

	// StructSize returns the byte size of a registered struct, or 0 if it is unknown or unbindable.
	//
	// Parameters:
	//   - arg: the struct type key
	//
	// Returns:
	//   - uint64: the struct size in bytes
	StructSize(arg AnnotationArg) uint64
}

var _ PreProcessor = &preProcessor{}

// NewPreProcessor creates a PreProcessor with the engine's GPU structs registered.
//
// Returns:
//   - PreProcessor: a ready-to-use pre-processor
func NewPreProcessor() PreProcessor {
	cam := camera.GPUCameraUniform{}
	lt := light.GPULightUniform{}
	inst := model.GPUInstance{}
	return &preProcessor{
		structRegistry: map[AnnotationArg]registryEntry{
			AnnotationArgCamera:   {Source: camera.GPUCameraUniformSource, Type: "CameraUniform", Size: uint64(cam.Size())},
			AnnotationArgLight:    {Source: light.GPULightSource, Type: "Light", Size: uint64(lt.Size())},
			AnnotationArgInstance: {Source: model.GPUInstanceSource, Type: "Instance", Size: uint64(inst.Size())},
			AnnotationArgVertex:   {Source: model.GPUVertexSource, Type: "VertexInput"},
		},
		addressSpaceRegistry: map[AnnotationArg]string{
			annotationArgStorageTypeUniform: "var<uniform>",
			annotationArgStorageTypeRead:    "var<storage, read>",
		},
	}
}

func (p *preProcessor) Process(source string) (string, error) {
	p.declarations = p.declarations[:0]
	p.includes = p.includes[:0]
	seen := make(map[[2]int]int)

	lines := strings.Split(source, "\n")
	out := make([]string, 0, len(lines))

	for i, line := range lines {
		a, err := parseAnnotation(line, i+1)
		if err != nil {
			return "", err
		}
		if a == nil {
			out = append(out, line)
			continue
		}

		if a.Group != nil {
			key := [2]int{*a.Group, *a.Binding}
			if prev, dup := seen[key]; dup {
				return "", fmt.Errorf("line %d: group %d binding %d already declared on line %d", a.Line, key[0], key[1], prev)
			}
			seen[key] = a.Line
		}

		switch a.Type {
		case annotationTypeInclude:
			entry, ok := p.structRegistry[a.Args[0]]
			if !ok {
				return "", fmt.Errorf("line %d: unknown include %q", a.Line, a.Args[0])
			}
			if slices.Contains(p.includes, a.Args[0]) {
				continue
			}
			p.includes = append(p.includes, a.Args[0])
			out = append(out, entry.Source)
		case AnnotationTypeBindingGroup:
			wgslType, err := p.resolveType(a)
			if err != nil {
				return "", err
			}
			out = append(out, fmt.Sprintf("@group(%d) @binding(%d) %s %s: %s;", *a.Group, *a.Binding, p.addressSpaceRegistry[a.Args[0]], a.Args[1], wgslType))
			p.declarations = append(p.declarations, *a)
		case AnnotationTypeTexture:
			out = append(out, fmt.Sprintf("@group(%d) @binding(%d) var %s: texture_2d<f32>;", *a.Group, *a.Binding, a.Args[0]))
			p.declarations = append(p.declarations, *a)
		case AnnotationTypeSampler:
			out = append(out, fmt.Sprintf("@group(%d) @binding(%d) var %s: sampler;", *a.Group, *a.Binding, a.Args[0]))
			p.declarations = append(p.declarations, *a)
		}
	}
	return strings.Join(out, "\n"), nil
}

// resolveType maps a group annotation's type key, optionally wrapped in array<>, to its
// WGSL type name.
func (p *preProcessor) resolveType(a *Annotation) (string, error) {
	key, isArray := arrayElem(a.Args[2])
	entry, ok := p.structRegistry[key]
	if !ok || entry.Size == 0 {
		return "", fmt.Errorf("line %d: type %q cannot be bound", a.Line, a.Args[2])
	}
	if isArray && a.Args[0] == annotationArgStorageTypeUniform {
		return "", fmt.Errorf("line %d: runtime arrays need a storage address space", a.Line)
	}
	if isArray {
		return "array<" + entry.Type + ">", nil
	}
	return entry.Type, nil
}

func (p *preProcessor) Declarations() []Annotation {
	return p.declarations
}

func (p *preProcessor) Included(arg AnnotationArg) bool {
	return slices.Contains(p.includes, arg)
}

func (p *preProcessor) StructSize(arg AnnotationArg) uint64 {
	key, _ := arrayElem(arg)
	return p.structRegistry[key].Size
}

func arrayElem(arg AnnotationArg) (AnnotationArg, bool) {
	inner, ok := strings.CutPrefix(string(arg), "array<")
	if !ok {
		return arg, false
	}
	return AnnotationArg(strings.TrimSuffix(inner, ">")), true
}
