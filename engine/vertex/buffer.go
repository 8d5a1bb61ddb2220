package vertex

import (
	"fmt"
	"reflect"

	"github.com/spaghettifunk/anima-vertex/engine/core"
	"github.com/spaghettifunk/anima-vertex/engine/renderer/metadata"
)

// BufferAllocator creates GPU buffers. It is implemented by the renderer backend.
type BufferAllocator interface {
	// CreateBuffer allocates count elements of elementSize bytes. data is a
	// slice holding the initial content, or nil for an uninitialized buffer.
	CreateBuffer(kind metadata.RenderBufferType, elementSize, count uint64, data any) (*metadata.RenderBuffer, error)
}

// BufferCreationError is returned when the allocator fails. It unwraps to the
// allocator's error unchanged.
type BufferCreationError struct {
	Type reflect.Type
	Err  error
}

func (e *BufferCreationError) Error() string {
	return fmt.Sprintf("vertex buffer of %s: creation failed: %s", e.Type, e.Err)
}

func (e *BufferCreationError) Unwrap() error {
	return e.Err
}

// VertexBuffer is a buffer of vertices of type T.
type VertexBuffer[T any] struct {
	buffer *metadata.RenderBuffer
	format *metadata.VertexFormat
}

// NewVertexBuffer validates T against the context and uploads data into a new
// vertex buffer.
func NewVertexBuffer[T any](caps metadata.CapabilitiesSource, alloc BufferAllocator, data []T) (*VertexBuffer[T], error) {
	return newVertexBuffer(caps, alloc, metadata.RENDERBUFFER_TYPE_VERTEX, uint64(len(data)), data)
}

// NewEmptyVertexBuffer creates an uninitialized buffer for count vertices.
// Use RENDERBUFFER_TYPE_TRANSFORM_FEEDBACK for a capture target.
func NewEmptyVertexBuffer[T any](caps metadata.CapabilitiesSource, alloc BufferAllocator, kind metadata.RenderBufferType, count int) (*VertexBuffer[T], error) {
	if count < 0 {
		return nil, fmt.Errorf("func NewEmptyVertexBuffer: negative count %d", count)
	}
	return newVertexBuffer[T](caps, alloc, kind, uint64(count), nil)
}

func newVertexBuffer[T any](caps metadata.CapabilitiesSource, alloc BufferAllocator, kind metadata.RenderBufferType, count uint64, data []T) (*VertexBuffer[T], error) {
	if err := Validate[T](caps); err != nil {
		core.LogError("vertex buffer not created: %s", err)
		return nil, err
	}
	format, _ := FormatOf[T]()

	var initial any
	if data != nil {
		initial = data
	}
	buf, err := alloc.CreateBuffer(kind, uint64(format.Stride), count, initial)
	if err != nil {
		return nil, &BufferCreationError{Type: reflect.TypeFor[T](), Err: err}
	}
	core.LogDebug("created %s buffer %d: %d x %s", kind, buf.ID, count, reflect.TypeFor[T]())
	return &VertexBuffer[T]{buffer: buf, format: format}, nil
}

// WrapVertexBuffer types an existing buffer as holding T. The element size of
// the buffer must equal the size of T.
func WrapVertexBuffer[T any](buf *metadata.RenderBuffer) (*VertexBuffer[T], error) {
	if buf == nil {
		return nil, core.ErrNilBuffer
	}
	format, err := FormatOf[T]()
	if err != nil {
		return nil, err
	}
	if buf.ElementSize != uint64(format.Stride) {
		return nil, fmt.Errorf("%w: buffer %d holds %d-byte elements, %s is %d bytes",
			core.ErrInvalidLayout, buf.ID, buf.ElementSize, reflect.TypeFor[T](), format.Stride)
	}
	return &VertexBuffer[T]{buffer: buf, format: format}, nil
}

// Len is the number of vertices in the buffer.
func (vb *VertexBuffer[T]) Len() int {
	return vb.all().Len()
}

func (vb *VertexBuffer[T]) Buffer() *metadata.RenderBuffer {
	if vb == nil {
		return nil
	}
	return vb.buffer
}

func (vb *VertexBuffer[T]) Format() *metadata.VertexFormat {
	if vb == nil {
		return nil
	}
	return vb.format
}

// all views the whole buffer. A nil VertexBuffer views nothing, so that drawing
// from it fails with ErrNilBuffer instead of panicking.
func (vb *VertexBuffer[T]) all() metadata.BufferSlice {
	if vb == nil || vb.buffer == nil {
		return metadata.BufferSlice{}
	}
	return vb.buffer.AsSlice()
}

// Slice returns the vertices [start, end).
func (vb *VertexBuffer[T]) Slice(start, end int) (VertexBufferSlice[T], error) {
	s, err := vb.all().Slice(start, end)
	if err != nil {
		return VertexBufferSlice[T]{}, err
	}
	return VertexBufferSlice[T]{slice: s, format: vb.Format()}, nil
}

// PerInstance returns the whole buffer as a source read once per instance.
func (vb *VertexBuffer[T]) PerInstance() PerInstance {
	return PerInstance{slice: vb.all(), format: vb.Format()}
}

func (vb *VertexBuffer[T]) VerticesSource() VerticesSource {
	return VerticesSource{Kind: SourceBuffer, Slice: vb.all(), Format: vb.Format()}
}

// Any erases the vertex type.
func (vb *VertexBuffer[T]) Any() VertexBufferAny {
	return VertexBufferAny{Slice: vb.all(), Format: vb.Format()}
}

// VertexBufferSlice is a range of a VertexBuffer.
type VertexBufferSlice[T any] struct {
	slice  metadata.BufferSlice
	format *metadata.VertexFormat
}

func (s VertexBufferSlice[T]) Len() int {
	return s.slice.Len()
}

// Slice returns the vertices [start, end) relative to this range.
func (s VertexBufferSlice[T]) Slice(start, end int) (VertexBufferSlice[T], error) {
	sub, err := s.slice.Slice(start, end)
	if err != nil {
		return VertexBufferSlice[T]{}, err
	}
	return VertexBufferSlice[T]{slice: sub, format: s.format}, nil
}

func (s VertexBufferSlice[T]) PerInstance() PerInstance {
	return PerInstance{slice: s.slice, format: s.format}
}

func (s VertexBufferSlice[T]) VerticesSource() VerticesSource {
	return VerticesSource{Kind: SourceBuffer, Slice: s.slice, Format: s.format}
}

// VertexBufferAny is a range of a vertex buffer whose Go type is not known
// statically, only its layout.
type VertexBufferAny struct {
	Slice  metadata.BufferSlice
	Format *metadata.VertexFormat
}

func (a VertexBufferAny) Len() int {
	return a.Slice.Len()
}

func (a VertexBufferAny) PerInstance() PerInstance {
	return PerInstance{slice: a.Slice, format: a.Format}
}

func (a VertexBufferAny) VerticesSource() VerticesSource {
	return VerticesSource{Kind: SourceBuffer, Slice: a.Slice, Format: a.Format}
}
