package renderer

import (
	"errors"
	"testing"

	"github.com/Carmen-Shannon/cubewalk/common"
	"github.com/Carmen-Shannon/cubewalk/engine/renderer/bind_group_provider"
	"github.com/Carmen-Shannon/cubewalk/engine/renderer/pipeline"
	"github.com/Carmen-Shannon/cubewalk/engine/renderer/shader"
	"github.com/cogentcore/webgpu/wgpu"
)

type fakeSurface struct{ w, h int }

func (s fakeSurface) SurfaceDescriptor() *wgpu.SurfaceDescriptor { return nil }
func (s fakeSurface) Width() int                                 { return s.w }
func (s fakeSurface) Height() int                                { return s.h }

type fakeBackend struct {
	configured  [][2]int
	presentMode PresentMode
	clear       wgpu.Color
	registered  []string
	registerErr error
	draws       []uint32
	writes      int
	released    bool
}

func (b *fakeBackend) ConfigureSurface(w, h int)                        { b.configured = append(b.configured, [2]int{w, h}) }
func (b *fakeBackend) SetPresentMode(mode PresentMode)                  { b.presentMode = mode }
func (b *fakeBackend) SetClearColor(color wgpu.Color)                   { b.clear = color }
func (b *fakeBackend) BeginFrame() error                                { return nil }
func (b *fakeBackend) EndFrame()                                        {}
func (b *fakeBackend) Present()                                         {}
func (b *fakeBackend) Release()                                         { b.released = true }
func (b *fakeBackend) WriteBuffers(w []bind_group_provider.BufferWrite) { b.writes += len(w) }

func (b *fakeBackend) RegisterRenderPipeline(p pipeline.Pipeline) error {
	if b.registerErr != nil {
		return b.registerErr
	}
	b.registered = append(b.registered, p.PipelineKey())
	return nil
}

func (b *fakeBackend) InitMeshBuffers(bind_group_provider.BindGroupProvider, []byte, []byte, int) error {
	return nil
}

func (b *fakeBackend) InitBindGroup(bind_group_provider.BindGroupProvider, wgpu.BindGroupLayoutDescriptor, map[int]uint64) error {
	return nil
}

func (b *fakeBackend) InitTextureView(bind_group_provider.BindGroupProvider, int, common.TextureStagingData) error {
	return nil
}

func (b *fakeBackend) InitSampler(bind_group_provider.BindGroupProvider, int, common.SamplerStagingData) error {
	return nil
}

func (b *fakeBackend) DrawCall(_ pipeline.Pipeline, _ bind_group_provider.BindGroupProvider, instanceCount uint32, _ []bind_group_provider.BindGroupProvider) {
	b.draws = append(b.draws, instanceCount)
}

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

func testPipeline(key string) pipeline.Pipeline {
	return pipeline.NewPipeline(key, pipeline.WithShaders(
		shader.NewShader(key+"_vs", shader.ShaderTypeVertex, testSource),
		shader.NewShader(key+"_fs", shader.ShaderTypeFragment, testSource),
	))
}

func TestNewRendererConfiguresBackend(t *testing.T) {
	b := &fakeBackend{}
	NewRenderer(BackendTypeWGPU, fakeSurface{800, 600},
		WithBackend(b),
		WithPresentMode(PresentModeUncapped),
		WithClearColor(0.1, 0.2, 0.3, 1),
	)

	if len(b.configured) != 1 || b.configured[0] != [2]int{800, 600} {
		t.Fatalf("configured = %v", b.configured)
	}
	if b.presentMode != PresentModeUncapped {
		t.Fatalf("present mode = %v", b.presentMode)
	}
	if b.clear != (wgpu.Color{R: 0.1, G: 0.2, B: 0.3, A: 1}) {
		t.Fatalf("clear = %+v", b.clear)
	}
}

func TestDefaultClearColor(t *testing.T) {
	b := &fakeBackend{}
	NewRenderer(BackendTypeWGPU, fakeSurface{1, 1}, WithBackend(b))
	if b.clear != (wgpu.Color{R: 0.2, G: 0.2, B: 0.2, A: 1}) {
		t.Fatalf("clear = %+v", b.clear)
	}
	if b.presentMode != PresentModeVSync {
		t.Fatalf("present mode = %v", b.presentMode)
	}
}

func TestResizeIgnoresZeroSize(t *testing.T) {
	b := &fakeBackend{}
	r := NewRenderer(BackendTypeWGPU, fakeSurface{0, 0}, WithBackend(b))
	r.Resize(0, 300)
	r.Resize(640, 480)

	if len(b.configured) != 1 || b.configured[0] != [2]int{640, 480} {
		t.Fatalf("configured = %v", b.configured)
	}
}

func TestRegisterPipelines(t *testing.T) {
	b := &fakeBackend{}
	r := NewRenderer(BackendTypeWGPU, fakeSurface{1, 1}, WithBackend(b))

	if err := r.RegisterPipelines(testPipeline("cube"), testPipeline("cube"), testPipeline("wire")); err != nil {
		t.Fatalf("register: %v", err)
	}
	if len(b.registered) != 2 {
		t.Fatalf("backend saw %v, duplicates should be skipped", b.registered)
	}
	if r.Pipeline("cube") == nil || r.Pipeline("missing") != nil || len(r.Pipelines()) != 2 {
		t.Fatal("pipeline cache mismatch")
	}

	if err := r.RegisterPipelines(pipeline.NewPipeline("broken")); err == nil {
		t.Fatal("invalid pipeline should not register")
	}
	if r.Pipeline("broken") != nil {
		t.Fatal("invalid pipeline was cached")
	}

	b.registerErr = errors.New("device lost")
	if err := r.RegisterPipelines(testPipeline("lit")); !errors.Is(err, b.registerErr) {
		t.Fatalf("err = %v, want wrapped device error", err)
	}
}

func TestDrawCall(t *testing.T) {
	b := &fakeBackend{}
	r := NewRenderer(BackendTypeWGPU, fakeSurface{1, 1}, WithBackend(b))
	mesh := bind_group_provider.NewBindGroupProvider("mesh")

	if err := r.DrawCall("cube", mesh, 3, nil); err == nil {
		t.Fatal("unregistered pipeline should error")
	}

	if err := r.RegisterPipelines(testPipeline("cube")); err != nil {
		t.Fatal(err)
	}
	if err := r.DrawCall("cube", mesh, 0, nil); err != nil {
		t.Fatal(err)
	}
	if err := r.DrawCall("cube", mesh, 7, nil); err != nil {
		t.Fatal(err)
	}
	if len(b.draws) != 1 || b.draws[0] != 7 {
		t.Fatalf("draws = %v, empty draws should be skipped", b.draws)
	}
}

func TestWriteBuffersAndRelease(t *testing.T) {
	b := &fakeBackend{}
	r := NewRenderer(BackendTypeWGPU, fakeSurface{1, 1}, WithBackend(b))

	r.WriteBuffers(nil)
	r.WriteBuffers([]bind_group_provider.BufferWrite{{Binding: 0, Data: []byte{1}}})
	if b.writes != 1 {
		t.Fatalf("writes = %d", b.writes)
	}

	if err := r.RegisterPipelines(testPipeline("cube")); err != nil {
		t.Fatal(err)
	}
	r.Release()
	if !b.released || len(r.Pipelines()) != 0 {
		t.Fatal("release did not clear pipelines and backend")
	}
}
