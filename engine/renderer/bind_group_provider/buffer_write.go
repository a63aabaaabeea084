package bind_group_provider

// BufferWrite describes a single queued GPU buffer write targeting a binding of a provider.
// A write whose binding has no buffer yet is skipped by the Renderer.
type BufferWrite struct {
	Provider BindGroupProvider
	Binding  int
	Offset   uint64
	Data     []byte
}
