package metadata

import (
	"testing"

	"github.com/spaghettifunk/anima-vertex/engine/core"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBufferSlice(t *testing.T) {
	buf := &RenderBuffer{ID: 7, RenderBufferType: RENDERBUFFER_TYPE_VERTEX, ElementSize: 20, ElementCount: 10, TotalSize: 200}

	all := buf.AsSlice()
	assert.Equal(t, 10, all.Len())
	assert.Zero(t, all.Offset())
	assert.Equal(t, uint64(200), all.Size())

	s, err := buf.Slice(2, 8)
	require.NoError(t, err)
	assert.Same(t, buf, s.Buffer)
	assert.Equal(t, 6, s.Len())
	assert.Equal(t, uint64(40), s.Offset())
	assert.Equal(t, uint64(120), s.Size())

	// nested slices are relative to the view
	inner, err := s.Slice(1, 3)
	require.NoError(t, err)
	assert.Equal(t, 3, inner.Start)
	assert.Equal(t, 2, inner.Len())

	empty, err := s.Slice(6, 6)
	require.NoError(t, err)
	assert.Zero(t, empty.Len())

	for _, r := range [][2]int{{-1, 2}, {3, 2}, {0, 7}} {
		_, err := s.Slice(r[0], r[1])
		assert.ErrorIs(t, err, core.ErrSliceOutOfRange, "range %v", r)
	}

	_, err = BufferSlice{}.Slice(0, 0)
	assert.ErrorIs(t, err, core.ErrNilBuffer)
	assert.Zero(t, BufferSlice{}.Size())
}

func TestRenderBufferTypeString(t *testing.T) {
	assert.Equal(t, "vertex", RENDERBUFFER_TYPE_VERTEX.String())
	assert.Equal(t, "transform_feedback", RENDERBUFFER_TYPE_TRANSFORM_FEEDBACK.String())
	assert.Equal(t, "unknown", RenderBufferType(42).String())
}
