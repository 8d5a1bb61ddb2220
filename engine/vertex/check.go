package vertex

import (
	"fmt"
	"iter"

	"github.com/spaghettifunk/anima-vertex/engine/core"
)

// NoCount marks a DrawCounts field for which no source gave a count.
const NoCount = -1

// DrawCounts are the vertex and instance counts agreed on by the sources of a draw.
type DrawCounts struct {
	// Vertices is the common length of per-vertex sources. For an indexed draw
	// it is the shortest one, the highest index that can be read.
	Vertices int
	// Instances is the common length of per-instance sources.
	Instances int
}

// IsInstanced reports whether at least one per-instance source was given.
func (c DrawCounts) IsInstanced() bool {
	return c.Instances != NoCount
}

// CheckSources verifies that the sources of a draw agree with each other.
//
// Per-instance sources must all have the same count, whatever the draw. Per-vertex
// sources must all have the same count only when the draw is not indexed; with
// indices, the vertices actually read are chosen by the index buffer.
func CheckSources(sources iter.Seq[VerticesSource], indexed bool) (DrawCounts, error) {
	counts := DrawCounts{Vertices: NoCount, Instances: NoCount}
	seenVertices, seenInstances := false, false

	i := 0
	for src := range sources {
		if src.Kind == SourceBuffer && src.Slice.Buffer == nil {
			return counts, fmt.Errorf("source %d: %w", i, core.ErrNilBuffer)
		}
		n := src.Count()
		if n < 0 {
			return counts, fmt.Errorf("%w: source %d (%s) has length %d", core.ErrInvalidSourceLength, i, src, n)
		}

		switch {
		case src.PerInstance:
			if !seenInstances {
				counts.Instances = n
				seenInstances = true
			} else if counts.Instances != n {
				return counts, fmt.Errorf("%w: source %d has %d instances, previous sources have %d",
					core.ErrInstancesCountMismatch, i, n, counts.Instances)
			}
		case !seenVertices:
			counts.Vertices = n
			seenVertices = true
		case counts.Vertices != n && !indexed:
			return counts, fmt.Errorf("%w: source %d has %d vertices, previous sources have %d",
				core.ErrVerticesSourcesLengthMismatch, i, n, counts.Vertices)
		case n < counts.Vertices:
			counts.Vertices = n
		}
		i++
	}
	return counts, nil
}
