// annotations.go defines the annotation types and parser for the engine's WGSL
// pre-processor. Annotations are single-line WGSL comments prefixed with @engine: that
// inject shared struct sources and declare bind group resources. The parsed group, texture
// and sampler annotations drive the bind group layouts a Shader exposes, so layouts never
// drift from the declarations in the source.
package shader

import (
	"fmt"
	"strconv"
	"strings"
)

// annotationPrefix marks an annotation within a WGSL comment line.
const annotationPrefix = "@engine:"

// AnnotationType identifies the kind of annotation parsed from a WGSL comment line.
type AnnotationType string

const (
	// annotationTypeInclude injects the WGSL source of a registered struct.
	//
	// Syntax: //@engine:include <struct_type>
	//
	// Example: //@engine:include camera
	annotationTypeInclude AnnotationType = "include"

	// AnnotationTypeBindingGroup generates a buffer variable declaration for a registered struct.
	//
	// Syntax: //@engine:group <group> <binding> <address_space> <var_name> <type>
	//
	// Example: //@engine:group 1 0 storage_read instances array<instance>
	AnnotationTypeBindingGroup AnnotationType = "group"

	// AnnotationTypeTexture generates a texture_2d<f32> declaration.
	//
	// Syntax: //@engine:texture <group> <binding> <var_name>
	AnnotationTypeTexture AnnotationType = "texture"

	// AnnotationTypeSampler generates a filtering sampler declaration.
	//
	// Syntax: //@engine:sampler <group> <binding> <var_name>
	AnnotationTypeSampler AnnotationType = "sampler"
)

// Annotation is a single parsed annotation.
type Annotation struct {
	// Type identifies which annotation was parsed.
	Type AnnotationType

	// Args holds the arguments after the group and binding indices:
	//   - include: [0] = struct type key
	//   - group:   [0] = address space, [1] = var name, [2] = type key
	//   - texture, sampler: [0] = var name
	Args []AnnotationArg

	// Line is the 1-based source line, used for error reporting.
	Line int

	// Group and Binding are nil for include annotations.
	Group   *int
	Binding *int
}

// AnnotationArg is a typed annotation argument.
type AnnotationArg string

// Struct type arguments. Each maps to a Go GPU type with an embedded .wgsl asset.
const (
	// AnnotationArgCamera identifies the CameraUniform struct.
	AnnotationArgCamera AnnotationArg = "camera"

	// AnnotationArgLight identifies the Light struct.
	AnnotationArgLight AnnotationArg = "light"

	// AnnotationArgInstance identifies the per-object Instance struct.
	AnnotationArgInstance AnnotationArg = "instance"

	// AnnotationArgVertex identifies the VertexInput struct. It can be included but not bound.
	AnnotationArgVertex AnnotationArg = "vertex"
)

// Address space arguments for group annotations.
const (
	annotationArgStorageTypeUniform AnnotationArg = "storage_uniform"
	annotationArgStorageTypeRead    AnnotationArg = "storage_read"
)

// argCount is the number of arguments each annotation takes after the type,
// including the group and binding indices where present.
var argCount = map[AnnotationType]int{
	annotationTypeInclude:      1,
	AnnotationTypeBindingGroup: 5,
	AnnotationTypeTexture:      3,
	AnnotationTypeSampler:      3,
}

// parseAnnotation parses a single source line. It returns nil, nil when the line is not
// an annotation.
func parseAnnotation(line string, lineNum int) (*Annotation, error) {
	trimmed := strings.TrimSpace(line)
	body, ok := strings.CutPrefix(trimmed, "//")
	if !ok {
		return nil, nil
	}
	body, ok = strings.CutPrefix(strings.TrimSpace(body), annotationPrefix)
	if !ok {
		return nil, nil
	}

	fields := strings.Fields(body)
	if len(fields) == 0 {
		return nil, fmt.Errorf("line %d: empty annotation", lineNum)
	}

	a := &Annotation{Type: AnnotationType(fields[0]), Line: lineNum}
	want, known := argCount[a.Type]
	if !known {
		return nil, fmt.Errorf("line %d: unknown annotation type %q", lineNum, fields[0])
	}
	args := fields[1:]
	if len(args) != want {
		return nil, fmt.Errorf("line %d: %s annotation takes %d arguments, got %d", lineNum, a.Type, want, len(args))
	}

	if a.Type != annotationTypeInclude {
		group, err := parseIndex(args[0], "group", lineNum)
		if err != nil {
			return nil, err
		}
		binding, err := parseIndex(args[1], "binding", lineNum)
		if err != nil {
			return nil, err
		}
		a.Group, a.Binding = &group, &binding
		args = args[2:]
	}

	for _, arg := range args {
		a.Args = append(a.Args, AnnotationArg(arg))
	}

	if a.Type == AnnotationTypeBindingGroup {
		switch a.Args[0] {
		case annotationArgStorageTypeUniform, annotationArgStorageTypeRead:
		default:
			return nil, fmt.Errorf("line %d: unknown address space %q", lineNum, a.Args[0])
		}
	}
	return a, nil
}

func parseIndex(s, what string, lineNum int) (int, error) {
	v, err := strconv.Atoi(s)
	if err != nil || v < 0 {
		return 0, fmt.Errorf("line %d: invalid %s index %q", lineNum, what, s)
	}
	return v, nil
}
