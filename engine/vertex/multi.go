package vertex

import (
	"iter"
	"slices"
)

// MultiVerticesSource is an ordered group of sources for one draw.
type MultiVerticesSource interface {
	// Iter yields the sources in the order they were given. Sources are
	// converted lazily, as the sequence is consumed.
	Iter() iter.Seq[VerticesSource]
}

// Sources groups several sources. Position i of the group feeds binding i of
// the draw; nothing is reordered or deduplicated.
type Sources []Source

func (s Sources) Iter() iter.Seq[VerticesSource] {
	return func(yield func(VerticesSource) bool) {
		for _, src := range s {
			if !yield(src.VerticesSource()) {
				return
			}
		}
	}
}

// Single groups one source.
func Single(src Source) MultiVerticesSource {
	return Sources{src}
}

// Collect consumes the sequence of m into a slice.
func Collect(m MultiVerticesSource) []VerticesSource {
	return slices.Collect(m.Iter())
}
