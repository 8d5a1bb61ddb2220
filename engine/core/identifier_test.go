package core

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestIdentifierRegistry(t *testing.T) {
	a, b := new(int), new(int)

	idA := IdentifierAquireNewID(a)
	idB := IdentifierAquireNewID(b)
	assert.NotEqual(t, idA, idB)
	assert.Same(t, a, IdentifierOwner(idA))
	assert.Same(t, b, IdentifierOwner(idB))

	require.NoError(t, IdentifierReleaseID(idA))
	assert.Nil(t, IdentifierOwner(idA))

	// the lowest free slot is reused
	c := new(int)
	assert.Equal(t, idA, IdentifierAquireNewID(c))

	assert.Error(t, IdentifierReleaseID(uint32(len(Owners))))
	assert.Nil(t, IdentifierOwner(uint32(len(Owners))))

	require.NoError(t, IdentifierReleaseID(idA))
	require.NoError(t, IdentifierReleaseID(idB))
}
