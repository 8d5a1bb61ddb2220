package metadata

import (
	"fmt"

	"github.com/spaghettifunk/anima-vertex/engine/core"
)

type RenderBufferType int

const (
	/** @brief Buffer is use is unknown. Default, but usually invalid. */
	RENDERBUFFER_TYPE_UNKNOWN RenderBufferType = iota
	/** @brief Buffer is used for vertex data. */
	RENDERBUFFER_TYPE_VERTEX
	/** @brief Buffer is used for index data. */
	RENDERBUFFER_TYPE_INDEX
	/** @brief Buffer is used for staging purposes (i.e. from host-visible to device-local memory) */
	RENDERBUFFER_TYPE_STAGING
	/** @brief Buffer receives primitives captured by transform feedback. */
	RENDERBUFFER_TYPE_TRANSFORM_FEEDBACK
)

func (t RenderBufferType) String() string {
	switch t {
	case RENDERBUFFER_TYPE_VERTEX:
		return "vertex"
	case RENDERBUFFER_TYPE_INDEX:
		return "index"
	case RENDERBUFFER_TYPE_STAGING:
		return "staging"
	case RENDERBUFFER_TYPE_TRANSFORM_FEEDBACK:
		return "transform_feedback"
	default:
		return "unknown"
	}
}

/**
 * @brief A region of GPU memory holding ElementCount elements of ElementSize bytes.
 * Allocated and owned by the renderer backend.
 */
type RenderBuffer struct {
	/** @brief The buffer identifier. */
	ID uint32
	/** @brief The type of buffer, which typically determines its use. */
	RenderBufferType RenderBufferType
	/** @brief The size of one element in bytes. */
	ElementSize uint64
	/** @brief The number of elements. */
	ElementCount uint64
	/** @brief The total size of the buffer in bytes. */
	TotalSize uint64
	/** @brief Contains internal data for the renderer-API-specific buffer. */
	InternalData interface{}
}

func (b *RenderBuffer) Len() int {
	return int(b.ElementCount)
}

/** @brief A view over the whole buffer. */
func (b *RenderBuffer) AsSlice() BufferSlice {
	return BufferSlice{Buffer: b, Start: 0, Count: b.Len()}
}

/** @brief A view over elements [start, end). */
func (b *RenderBuffer) Slice(start, end int) (BufferSlice, error) {
	return b.AsSlice().Slice(start, end)
}

/**
 * @brief A non-owning view over a range of elements of a RenderBuffer. Keeps the
 * buffer reachable but does not keep it alive on the GPU: the buffer must not be
 * destroyed while the view is used by a draw.
 */
type BufferSlice struct {
	Buffer *RenderBuffer
	/** @brief First element of the view. */
	Start int
	/** @brief Number of elements in the view. */
	Count int
}

func (s BufferSlice) Len() int {
	return s.Count
}

/** @brief Byte offset of the view inside the buffer. */
func (s BufferSlice) Offset() uint64 {
	if s.Buffer == nil {
		return 0
	}
	return uint64(s.Start) * s.Buffer.ElementSize
}

/** @brief Size of the view in bytes. */
func (s BufferSlice) Size() uint64 {
	if s.Buffer == nil {
		return 0
	}
	return uint64(s.Count) * s.Buffer.ElementSize
}

/** @brief A sub-view over elements [start, end) of this view. */
func (s BufferSlice) Slice(start, end int) (BufferSlice, error) {
	if s.Buffer == nil {
		return BufferSlice{}, core.ErrNilBuffer
	}
	if start < 0 || end < start || end > s.Count {
		return BufferSlice{}, fmt.Errorf("%w: [%d, %d) of %d elements", core.ErrSliceOutOfRange, start, end, s.Count)
	}
	return BufferSlice{Buffer: s.Buffer, Start: s.Start + start, Count: end - start}, nil
}
