package vertex

import (
	"fmt"

	"github.com/spaghettifunk/anima-vertex/engine/renderer/metadata"
)

type SourceKind int

const (
	// SourceBuffer reads attributes from a range of a vertex buffer.
	SourceBuffer SourceKind = iota
	// SourceMarker has no attributes and only declares a count.
	SourceMarker
)

func (k SourceKind) String() string {
	switch k {
	case SourceBuffer:
		return "buffer"
	case SourceMarker:
		return "marker"
	default:
		return fmt.Sprintf("SourceKind(%d)", int(k))
	}
}

// VerticesSource describes one source of vertex data for a draw.
//
// For SourceBuffer, Slice and Format are set and Len is unused. For
// SourceMarker only Len is set. PerInstance tells whether the source advances
// once per instance (true) or once per vertex (false).
//
// The source borrows the buffer behind Slice: the buffer must stay alive, and
// must not be written, until the draw that reads it has completed.
type VerticesSource struct {
	Kind        SourceKind
	Slice       metadata.BufferSlice
	Format      *metadata.VertexFormat
	Len         int
	PerInstance bool
}

// VerticesSource makes a VerticesSource usable as a Source.
func (s VerticesSource) VerticesSource() VerticesSource {
	return s
}

// Count is the number of vertices, or instances, the source provides.
func (s VerticesSource) Count() int {
	if s.Kind == SourceMarker {
		return s.Len
	}
	return s.Slice.Len()
}

func (s VerticesSource) String() string {
	rate := "vertex"
	if s.PerInstance {
		rate = "instance"
	}
	if s.Kind == SourceMarker {
		return fmt.Sprintf("marker(len=%d, per %s)", s.Len, rate)
	}
	id := uint32(0)
	if s.Slice.Buffer != nil {
		id = s.Slice.Buffer.ID
	}
	return fmt.Sprintf("buffer(id=%d, [%d:%d], per %s)", id, s.Slice.Start, s.Slice.Start+s.Slice.Count, rate)
}

// Source is anything that can supply vertex data to a draw.
type Source interface {
	VerticesSource() VerticesSource
}

// EmptyVertexAttributes can be passed instead of a buffer to draw Len vertices
// that have no attributes.
type EmptyVertexAttributes struct {
	// Number of phantom vertices.
	Len int
}

func (e EmptyVertexAttributes) VerticesSource() VerticesSource {
	return VerticesSource{Kind: SourceMarker, Len: e.Len, PerInstance: false}
}

// EmptyInstanceAttributes can be passed instead of a buffer to draw Len
// instances that have no per-instance attributes.
type EmptyInstanceAttributes struct {
	// Number of phantom instances.
	Len int
}

func (e EmptyInstanceAttributes) VerticesSource() VerticesSource {
	return VerticesSource{Kind: SourceMarker, Len: e.Len, PerInstance: true}
}

// PerInstance marks a buffer range to be read once per instance.
type PerInstance struct {
	slice  metadata.BufferSlice
	format *metadata.VertexFormat
}

// NewPerInstance wraps a raw range and its layout. Typed buffers offer the same
// through their PerInstance method.
func NewPerInstance(slice metadata.BufferSlice, format *metadata.VertexFormat) PerInstance {
	return PerInstance{slice: slice, format: format}
}

func (p PerInstance) VerticesSource() VerticesSource {
	return VerticesSource{Kind: SourceBuffer, Slice: p.slice, Format: p.format, PerInstance: true}
}
