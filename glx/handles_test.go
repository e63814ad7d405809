package glx

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewVertexArray(t *testing.T) {
	rec := &Recorder{}

	va, err := NewVertexArray(rec)
	require.NoError(t, err)

	va.Bind()
	va.Unbind()

	assert.Equal(t, []string{
		"GenVertexArray() = 1",
		"BindVertexArray(1)",
		"BindVertexArray(0)",
	}, rec.Calls)
}

func TestNewVertexArrayNullHandle(t *testing.T) {
	rec := &Recorder{NullHandles: true}

	_, err := NewVertexArray(rec)

	var createErr *CreateError
	require.ErrorAs(t, err, &createErr)
	assert.Equal(t, "vertex array", createErr.Resource)
}

func TestVertexArrayReleaseIsIdempotent(t *testing.T) {
	rec := &Recorder{}

	va, err := NewVertexArray(rec)
	require.NoError(t, err)

	va.Release()
	va.Release()

	assert.Equal(t, 1, rec.Count("DeleteVertexArray"))
	assert.True(t, va.isReleased())
}

func TestBufferUploadSize(t *testing.T) {
	rec := &Recorder{}

	buf, err := NewBuffer(rec)
	require.NoError(t, err)

	// three vertices of three float32 components each
	vertices := []float32{
		-0.5, -0.5, 0.0,
		0.5, -0.5, 0.0,
		0.0, 0.5, 0.0,
	}

	buf.Bind(ArrayBuffer)
	buf.Data(ArrayBuffer, AsByteSlice(vertices), StaticDraw)

	assert.True(t, rec.Has("BufferData(34962, 36 bytes, 35044)"))
}

func TestBufferReuploadReplacesContents(t *testing.T) {
	rec := &Recorder{}

	buf, err := NewBuffer(rec)
	require.NoError(t, err)

	buf.Bind(ArrayBuffer)
	buf.Data(ArrayBuffer, make([]byte, 36), StaticDraw)
	buf.Data(ArrayBuffer, make([]byte, 24), StaticDraw)

	// both uploads go to the same buffer object
	assert.Equal(t, 1, rec.Count("GenBuffer"))
	assert.Equal(t, 2, rec.Count("BufferData"))
}

func TestNewBufferNullHandle(t *testing.T) {
	rec := &Recorder{NullHandles: true}

	_, err := NewBuffer(rec)

	var createErr *CreateError
	require.ErrorAs(t, err, &createErr)
	assert.Equal(t, "buffer", createErr.Resource)
}

func TestBufferReleaseIsIdempotent(t *testing.T) {
	rec := &Recorder{}

	buf, err := NewBuffer(rec)
	require.NoError(t, err)

	buf.Release()
	buf.Release()

	assert.Equal(t, 1, rec.Count("DeleteBuffer"))
}
