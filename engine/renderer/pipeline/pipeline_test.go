package pipeline

import (
	"testing"

	"github.com/Carmen-Shannon/cubewalk/engine/renderer/shader"
	"github.com/cogentcore/webgpu/wgpu"
)

const testSource = `//@engine:include vertex
@vertex
fn vs_main(in: VertexInput) -> @builtin(position) vec4<f32> {
    return vec4<f32>(in.position, 1.0);
}

@fragment
fn fs_main() -> @location(0) vec4<f32> {
    return vec4<f32>(1.0);
}
`

func TestNewPipelineDefaults(t *testing.T) {
	p := NewPipeline("cube")

	if p.PipelineKey() != "cube" {
		t.Fatalf("key = %q", p.PipelineKey())
	}
	if !p.DepthWriteEnabled() || p.BlendEnabled() {
		t.Fatal("unexpected depth/blend defaults")
	}
	if p.CullMode() != wgpu.CullModeBack || p.FrontFace() != wgpu.FrontFaceCCW {
		t.Fatal("cube faces are wound CCW and should be back-face culled")
	}
	if p.Topology() != wgpu.PrimitiveTopologyTriangleList || p.WriteMask() != wgpu.ColorWriteMaskAll {
		t.Fatal("unexpected topology or write mask")
	}
	if p.BlendState() == nil || p.Pipeline() != nil {
		t.Fatal("blend state should default, GPU pipeline should not")
	}
}

func TestPipelineOptions(t *testing.T) {
	blend := &wgpu.BlendState{}
	p := NewPipeline("wire",
		WithCullMode(wgpu.CullModeNone),
		WithTopology(wgpu.PrimitiveTopologyLineList),
		WithFrontFace(wgpu.FrontFaceCW),
		WithDepthWriteEnabled(false),
		WithBlendEnabled(true),
		WithBlendState(blend),
		WithWriteMask(wgpu.ColorWriteMaskRed),
	)

	if p.CullMode() != wgpu.CullModeNone || p.Topology() != wgpu.PrimitiveTopologyLineList || p.FrontFace() != wgpu.FrontFaceCW {
		t.Fatal("primitive options not applied")
	}
	if p.DepthWriteEnabled() || !p.BlendEnabled() || p.BlendState() != blend || p.WriteMask() != wgpu.ColorWriteMaskRed {
		t.Fatal("target options not applied")
	}
}

func TestValidate(t *testing.T) {
	vs := shader.NewShader("vs", shader.ShaderTypeVertex, testSource)
	fs := shader.NewShader("fs", shader.ShaderTypeFragment, testSource)
	bareVS := shader.NewShader("bare", shader.ShaderTypeVertex, testSource, shader.WithVertexLayout(0))

	tests := []struct {
		name    string
		opts    []PipelineBuilderOption
		wantErr bool
	}{
		{"complete", []PipelineBuilderOption{WithShaders(vs, fs)}, false},
		{"separate options", []PipelineBuilderOption{WithVertexShader(vs), WithFragmentShader(fs)}, false},
		{"no shaders", nil, true},
		{"no fragment", []PipelineBuilderOption{WithVertexShader(vs)}, true},
		{"no vertex layout", []PipelineBuilderOption{WithShaders(bareVS, fs)}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := NewPipeline("p", tt.opts...).Validate()
			if (err != nil) != tt.wantErr {
				t.Fatalf("Validate() = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}

	p := NewPipeline("p", WithShaders(vs, fs))
	if p.Shader(shader.ShaderTypeVertex) != vs || p.Shader(shader.ShaderTypeFragment) != fs {
		t.Fatal("shader lookup mismatch")
	}
	p.Release()
}

func TestMergeBindGroupLayouts(t *testing.T) {
	vertex := map[int]wgpu.BindGroupLayoutDescriptor{
		0: {Label: "camera", Entries: []wgpu.BindGroupLayoutEntry{
			{Binding: 0, Visibility: wgpu.ShaderStageVertex},
		}},
		1: {Label: "instances", Entries: []wgpu.BindGroupLayoutEntry{
			{Binding: 0, Visibility: wgpu.ShaderStageVertex},
		}},
	}
	fragment := map[int]wgpu.BindGroupLayoutDescriptor{
		0: {Label: "camera_fs", Entries: []wgpu.BindGroupLayoutEntry{
			{Binding: 1, Visibility: wgpu.ShaderStageFragment},
			{Binding: 0, Visibility: wgpu.ShaderStageFragment},
		}},
		2: {Label: "light", Entries: []wgpu.BindGroupLayoutEntry{
			{Binding: 0, Visibility: wgpu.ShaderStageFragment},
		}},
	}

	merged := mergeBindGroupLayouts(vertex, fragment)
	if len(merged) != 3 {
		t.Fatalf("groups = %d, want 3", len(merged))
	}

	cam := merged[0]
	if cam.Label != "camera" || len(cam.Entries) != 2 {
		t.Fatalf("group 0 = %+v", cam)
	}
	if cam.Entries[0].Binding != 0 || cam.Entries[1].Binding != 1 {
		t.Fatal("merged entries are not sorted by binding")
	}
	if cam.Entries[0].Visibility != wgpu.ShaderStageVertex|wgpu.ShaderStageFragment {
		t.Fatalf("shared binding visibility = %v", cam.Entries[0].Visibility)
	}
	if cam.Entries[1].Visibility != wgpu.ShaderStageFragment {
		t.Fatalf("fragment-only binding visibility = %v", cam.Entries[1].Visibility)
	}
	if merged[1].Label != "instances" || merged[2].Label != "light" {
		t.Fatal("single-stage groups should pass through unchanged")
	}
}

func TestPipelineBindGroupLayoutDescriptors(t *testing.T) {
	src := `//@engine:include vertex
//@engine:include camera
//@engine:group 0 0 storage_uniform camera camera
@vertex
fn vs_main(in: VertexInput) -> @builtin(position) vec4<f32> {
    return camera.view_proj * vec4<f32>(in.position, 1.0);
}

@fragment
fn fs_main() -> @location(0) vec4<f32> {
    return vec4<f32>(camera.eye, 1.0);
}
`
	p := NewPipeline("p", WithShaders(
		shader.NewShader("vs", shader.ShaderTypeVertex, src),
		shader.NewShader("fs", shader.ShaderTypeFragment, src),
	))

	desc := p.BindGroupLayoutDescriptors()[0]
	if len(desc.Entries) != 1 {
		t.Fatalf("entries = %d", len(desc.Entries))
	}
	if desc.Entries[0].Visibility != wgpu.ShaderStageVertex|wgpu.ShaderStageFragment {
		t.Fatalf("visibility = %v", desc.Entries[0].Visibility)
	}
	if len(NewPipeline("empty").BindGroupLayoutDescriptors()) != 0 {
		t.Fatal("pipeline without shaders should have no layouts")
	}
}
