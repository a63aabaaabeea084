package renderer

import (
	"github.com/Carmen-Shannon/cubewalk/common"
	"github.com/Carmen-Shannon/cubewalk/engine/renderer/bind_group_provider"
	"github.com/Carmen-Shannon/cubewalk/engine/renderer/pipeline"
	"github.com/cogentcore/webgpu/wgpu"
)

// RendererBackendType identifies the GPU backend implementation used by the Renderer.
type RendererBackendType int

const (
	// BackendTypeWGPU selects the WebGPU-based rendering backend.
	BackendTypeWGPU RendererBackendType = iota
)

// PresentMode controls how rendered frames are presented to the display surface.
type PresentMode int

const (
	// PresentModeVSync waits for vertical blank before presenting. No tearing.
	PresentModeVSync PresentMode = iota

	// PresentModeUncapped presents immediately. Lowest latency, may tear.
	PresentModeUncapped
)

// MSAASampleCount is the number of samples per pixel for multisample anti-aliasing.
// WebGPU guarantees 1 and 4; other counts are adapter-dependent.
type MSAASampleCount uint32

const (
	// MSAAOff disables multisampling.
	MSAAOff MSAASampleCount = 1

	// MSAA4x enables 4x multisampling. This is the default.
	MSAA4x MSAASampleCount = 4
)

// RendererBackend is the GPU API a Renderer drives. Pipelines and providers passed in are
// mutated in place: the backend stores the GPU objects it creates on them.
type RendererBackend interface {
	// ConfigureSurface (re)configures the swapchain and the multisample and depth targets.
	ConfigureSurface(width, height int)

	// SetPresentMode takes effect on the next ConfigureSurface.
	SetPresentMode(mode PresentMode)

	// SetClearColor sets the color the main pass clears to.
	SetClearColor(color wgpu.Color)

	// RegisterRenderPipeline creates the GPU pipeline for p and stores it on p.
	RegisterRenderPipeline(p pipeline.Pipeline) error

	// InitMeshBuffers uploads vertex and index data into new GPU buffers on provider.
	InitMeshBuffers(provider bind_group_provider.BindGroupProvider, vertexData, indexData []byte, indexCount int) error

	// InitBindGroup creates missing buffers and the bind group described by descriptor.
	// Buffers are sized by MinBindingSize unless bufferSizeOverrides names the binding.
	InitBindGroup(provider bind_group_provider.BindGroupProvider, descriptor wgpu.BindGroupLayoutDescriptor, bufferSizeOverrides map[int]uint64) error

	// InitTextureView uploads RGBA pixels and stores a view at the binding.
	InitTextureView(provider bind_group_provider.BindGroupProvider, bindingKey int, stagingData common.TextureStagingData) error

	// InitSampler creates a sampler and stores it at the binding.
	InitSampler(provider bind_group_provider.BindGroupProvider, bindingKey int, samplerStagingData common.SamplerStagingData) error

	// WriteBuffers queues buffer writes. Writes to bindings without a buffer are skipped.
	WriteBuffers(writes []bind_group_provider.BufferWrite)

	// BeginFrame acquires the swapchain texture and opens the main render pass.
	BeginFrame() error

	// DrawCall encodes one indexed, instanced draw in the open pass.
	DrawCall(p pipeline.Pipeline, meshProvider bind_group_provider.BindGroupProvider, instanceCount uint32, bindGroups []bind_group_provider.BindGroupProvider)

	// EndFrame closes the pass and submits the command buffer.
	EndFrame()

	// Present displays the submitted frame and releases the swapchain texture.
	Present()

	// Release frees the device, surface and render targets.
	Release()
}
