package prefilter

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSet_Find(t *testing.T) {
	set, ok := New([][]byte{[]byte("cat"), []byte("car")})
	require.True(t, ok)

	assert.Equal(t, 4, set.Find([]byte("the cat sat"), 0))
	assert.Equal(t, -1, set.Find([]byte("the dog sat"), 0))
}

func TestSet_IsMatch(t *testing.T) {
	set, ok := New([][]byte{[]byte("cat"), []byte("car")})
	require.True(t, ok)

	assert.True(t, set.IsMatch([]byte("racecar")))
	assert.False(t, set.IsMatch([]byte("racedog")))
}

func TestNew_EmptyLiteralsIsNotOK(t *testing.T) {
	_, ok := New(nil)
	assert.False(t, ok)
}
