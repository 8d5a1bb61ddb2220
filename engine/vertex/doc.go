/*
Package vertex describes where the vertices of a draw come from.

A draw reads one or several vertex sources. Each source is either a range of a
vertex buffer, read once per vertex or once per instance, or a marker that only
declares a vertex or instance count:

	vb, err := vertex.NewVertexBuffer(caps, allocator, vertices)
	ib, err := vertex.NewVertexBuffer(caps, allocator, instances)

	// a single buffer
	vertex.Single(vb)
	// two parallel buffers, the second one read per instance
	vertex.Sources{vb, ib.PerInstance()}
	// a slice of a buffer
	s, err := vb.Slice(6, 24)
	vertex.Sources{s}
	// no attributes at all, 12 phantom vertices
	vertex.Single(vertex.EmptyVertexAttributes{Len: 12})
	// instancing without per-instance attributes
	vertex.Sources{vb, vertex.EmptyInstanceAttributes{Len: 36}}

The layout of a vertex struct is derived from its fields (see FormatOf). Field
offsets come from the compiler, so a derived layout always matches memory. Types
that need a hand-written layout implement UnsafeLayout instead.

When drawing without indices all per-vertex sources must have the same length,
or ErrVerticesSourcesLengthMismatch is returned. The length of all per-instance
sources must match in every case, or ErrInstancesCountMismatch is returned.

Transform feedback writes the primitives generated by a program into a buffer.
Create a TransformFeedbackSession with the target buffer and the program, then
attach it to the draws that should record. Drawing with another program fails
with ErrTransformFeedbackProgramMismatch.

Nothing in this package is safe for concurrent use with the same graphics
context, except the layout cache.
*/
package vertex
