package bind_group_provider

// BufferWrite is a queued upload of raw bytes into the uniform buffer backing a
// provider binding. The renderer batches these per frame and flushes them before
// any pass is encoded.
type BufferWrite struct {
	Provider BindGroupProvider
	Binding  int
	Offset   uint64
	Data     []byte
}
