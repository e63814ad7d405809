package glx

// VertexArray owns one vertex array object. It records how buffer data
// maps to shader input attributes.
type VertexArray struct {
	api API
	id  uint32
}

func NewVertexArray(api API) (*VertexArray, error) {
	id := api.GenVertexArray()
	if id == 0 {
		return nil, &CreateError{Resource: "vertex array"}
	}

	return registerWithGC(&VertexArray{api: api, id: id}), nil
}

// Bind makes this vertex array the current one. Binding is driver-global
// state, only one vertex array is current at a time.
func (va *VertexArray) Bind() {
	va.api.BindVertexArray(va.id)
}

func (va *VertexArray) Unbind() {
	va.api.BindVertexArray(0)
}

// Release deletes the vertex array. Calling it twice is a no-op.
func (va *VertexArray) Release() {
	if va.id == 0 {
		return
	}

	va.api.DeleteVertexArray(va.id)
	va.id = 0
}

func (va *VertexArray) isReleased() bool {
	return va.id == 0
}

// Buffer owns one buffer object holding raw vertex data on the GPU. The
// target is supplied per call, not stored.
type Buffer struct {
	api API
	id  uint32
}

func NewBuffer(api API) (*Buffer, error) {
	id := api.GenBuffer()
	if id == 0 {
		return nil, &CreateError{Resource: "buffer"}
	}

	return registerWithGC(&Buffer{api: api, id: id}), nil
}

func (b *Buffer) Bind(target uint32) {
	b.api.BindBuffer(target, b.id)
}

func (b *Buffer) Unbind(target uint32) {
	b.api.BindBuffer(target, 0)
}

// Data uploads data into the buffer's storage with the given usage hint.
// The buffer must be bound to target. A second upload replaces the
// previous storage.
func (b *Buffer) Data(target uint32, data []byte, usage uint32) {
	b.api.BufferData(target, data, usage)
}

// Release deletes the buffer. Calling it twice is a no-op.
func (b *Buffer) Release() {
	if b.id == 0 {
		return
	}

	b.api.DeleteBuffer(b.id)
	b.id = 0
}

func (b *Buffer) isReleased() bool {
	return b.id == 0
}
