package vertex

import (
	"errors"
	"testing"

	"github.com/spaghettifunk/anima-vertex/engine/core"
	"github.com/spaghettifunk/anima-vertex/engine/renderer/metadata"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewVertexBuffer(t *testing.T) {
	alloc := &hostAllocator{}
	data := []testVertex{
		{Position: [3]float32{0, 0, 0.4}, Texcoord: [2]float32{0, 1}},
		{Position: [3]float32{12, 4.5, -1.8}, Texcoord: [2]float32{1, 0.5}},
		{Position: [3]float32{-7.124, 0.1, 0}, Texcoord: [2]float32{0, 0.4}},
	}
	vb, err := NewVertexBuffer(baseCaps, alloc, data)
	require.NoError(t, err)

	assert.Equal(t, 3, vb.Len())
	assert.Equal(t, metadata.RENDERBUFFER_TYPE_VERTEX, vb.Buffer().RenderBufferType)
	assert.Equal(t, uint64(vb.Format().Stride)*3, vb.Buffer().TotalSize)
	assert.Equal(t, data, vb.Buffer().InternalData)
}

func TestNewVertexBufferUnsupported(t *testing.T) {
	alloc := &hostAllocator{}
	_, err := NewVertexBuffer(baseCaps, alloc, []doubleVertex{{}})
	assert.ErrorIs(t, err, core.ErrUnsupportedAttribute)
	// rejected before anything was allocated
	assert.Empty(t, alloc.buffers)
}

func TestNewVertexBufferAllocationFailure(t *testing.T) {
	oom := errors.New("out of device memory")
	_, err := NewVertexBuffer(baseCaps, &hostAllocator{fail: oom}, []testVertex{{}})

	var creationErr *BufferCreationError
	require.ErrorAs(t, err, &creationErr)
	assert.Same(t, oom, creationErr.Err)
	assert.ErrorIs(t, err, oom)
}

func TestNewEmptyVertexBuffer(t *testing.T) {
	vb, err := NewEmptyVertexBuffer[testVertex](baseCaps, &hostAllocator{}, metadata.RENDERBUFFER_TYPE_TRANSFORM_FEEDBACK, 8)
	require.NoError(t, err)
	assert.Equal(t, 8, vb.Len())
	assert.Nil(t, vb.Buffer().InternalData)

	_, err = NewEmptyVertexBuffer[testVertex](baseCaps, &hostAllocator{}, metadata.RENDERBUFFER_TYPE_VERTEX, -1)
	assert.Error(t, err)
}

func TestWrapVertexBuffer(t *testing.T) {
	f, err := FormatOf[testVertex]()
	require.NoError(t, err)

	raw := &metadata.RenderBuffer{ID: 7, ElementSize: uint64(f.Stride), ElementCount: 2}
	vb, err := WrapVertexBuffer[testVertex](raw)
	require.NoError(t, err)
	assert.Equal(t, 2, vb.Len())

	_, err = WrapVertexBuffer[testVertex](&metadata.RenderBuffer{ElementSize: 3})
	assert.ErrorIs(t, err, core.ErrInvalidLayout)
	_, err = WrapVertexBuffer[testVertex](nil)
	assert.ErrorIs(t, err, core.ErrNilBuffer)
}

func TestNilVertexBuffer(t *testing.T) {
	var vb *VertexBuffer[testVertex]

	require.NotPanics(t, func() {
		assert.Equal(t, 0, vb.Len())
		assert.Nil(t, vb.Buffer())
		assert.Nil(t, vb.Format())
		assert.Nil(t, vb.Any().Slice.Buffer)
	})
	_, err := vb.Slice(0, 1)
	assert.ErrorIs(t, err, core.ErrNilBuffer)

	// a typed nil stored as a Source reaches the nil buffer check
	var src Source = vb
	_, err = CheckSources(Sources{src}.Iter(), false)
	assert.ErrorIs(t, err, core.ErrNilBuffer)

	_, err = CheckSources(Sources{newTestBuffer[testVertex](3), vb.PerInstance()}.Iter(), false)
	assert.ErrorIs(t, err, core.ErrNilBuffer)
}
