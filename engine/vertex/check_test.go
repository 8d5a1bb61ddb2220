package vertex

import (
	"testing"

	"github.com/spaghettifunk/anima-vertex/engine/core"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCheckSourcesMarkerMatchesBuffer(t *testing.T) {
	vb := newTestBuffer[testVertex](3)

	counts, err := CheckSources(Sources{vb, EmptyVertexAttributes{Len: 3}}.Iter(), false)
	require.NoError(t, err)
	assert.Equal(t, DrawCounts{Vertices: 3, Instances: NoCount}, counts)
	assert.False(t, counts.IsInstanced())
}

func TestCheckSourcesVertexLengthMismatch(t *testing.T) {
	vb := newTestBuffer[testVertex](3)

	_, err := CheckSources(Sources{vb, EmptyVertexAttributes{Len: 5}}.Iter(), false)
	assert.ErrorIs(t, err, core.ErrVerticesSourcesLengthMismatch)
}

func TestCheckSourcesIndexedAllowsDifferentLengths(t *testing.T) {
	a := newTestBuffer[testVertex](3)
	b := newTestBuffer[testVertex](5)

	counts, err := CheckSources(Sources{b, a}.Iter(), true)
	require.NoError(t, err)
	assert.Equal(t, 3, counts.Vertices)
}

func TestCheckSourcesInstanceCounts(t *testing.T) {
	vb := newTestBuffer[testVertex](3)
	five := newTestBuffer[testInstance](5)
	six := newTestBuffer[testInstance](6)

	counts, err := CheckSources(Sources{vb, five.PerInstance(), EmptyInstanceAttributes{Len: 5}, five.PerInstance()}.Iter(), false)
	require.NoError(t, err)
	assert.Equal(t, DrawCounts{Vertices: 3, Instances: 5}, counts)
	assert.True(t, counts.IsInstanced())

	_, err = CheckSources(Sources{vb, five.PerInstance(), five.PerInstance(), six.PerInstance()}.Iter(), false)
	assert.ErrorIs(t, err, core.ErrInstancesCountMismatch)

	// the instance check does not depend on indices
	_, err = CheckSources(Sources{vb, five.PerInstance(), six.PerInstance()}.Iter(), true)
	assert.ErrorIs(t, err, core.ErrInstancesCountMismatch)
}

func TestCheckSourcesMarkersOnly(t *testing.T) {
	counts, err := CheckSources(Sources{EmptyVertexAttributes{Len: 12}, EmptyInstanceAttributes{Len: 4}}.Iter(), false)
	require.NoError(t, err)
	assert.Equal(t, DrawCounts{Vertices: 12, Instances: 4}, counts)
}

func TestCheckSourcesEmpty(t *testing.T) {
	counts, err := CheckSources(Sources{}.Iter(), false)
	require.NoError(t, err)
	assert.Equal(t, DrawCounts{Vertices: NoCount, Instances: NoCount}, counts)
}

func TestCheckSourcesNilBuffer(t *testing.T) {
	_, err := CheckSources(Sources{VerticesSource{Kind: SourceBuffer}}.Iter(), false)
	assert.ErrorIs(t, err, core.ErrNilBuffer)
}

func TestCheckSourcesNegativeLength(t *testing.T) {
	vb := newTestBuffer[testVertex](3)

	// a length of -1 must not be mistaken for "no source seen yet"
	_, err := CheckSources(Sources{EmptyVertexAttributes{Len: -1}, vb}.Iter(), false)
	assert.ErrorIs(t, err, core.ErrInvalidSourceLength)

	_, err = CheckSources(Sources{vb, EmptyInstanceAttributes{Len: -4}}.Iter(), true)
	assert.ErrorIs(t, err, core.ErrInvalidSourceLength)

	_, err = CheckSources(Sources{EmptyVertexAttributes{Len: -7}}.Iter(), false)
	assert.ErrorIs(t, err, core.ErrInvalidSourceLength)
}

func TestCheckSourcesZeroLengthIsACount(t *testing.T) {
	vb := newTestBuffer[testVertex](3)

	counts, err := CheckSources(Sources{EmptyVertexAttributes{Len: 0}}.Iter(), false)
	require.NoError(t, err)
	assert.Equal(t, 0, counts.Vertices)

	_, err = CheckSources(Sources{EmptyVertexAttributes{Len: 0}, vb}.Iter(), false)
	assert.ErrorIs(t, err, core.ErrVerticesSourcesLengthMismatch)
}
