package trie

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRemove_UnknownKey(t *testing.T) {
	t.Parallel()

	var tr Trie

	_, err := tr.InsertString("aa", 2, false)
	require.NoError(t, err)

	for _, key := range []string{"ab", "a", "aaa", "", "aa\x00"} {
		e, ok := tr.RemoveString(key)
		assert.False(t, ok, "%q", key)
		assert.Nil(t, e)
	}
	assert.True(t, tr.HasString("aa"))
	assert.Equal(t, 1, tr.Len())
}

func TestRemove_LeavesOthersIntact(t *testing.T) {
	t.Parallel()

	var tr Trie

	insertAll(t, &tr, paths)

	for _, s := range unknownPaths {
		_, ok := tr.RemoveString(s)
		require.False(t, ok, s)
	}
	require.NoError(t, tr.Check())

	for i, s := range paths {
		e, ok := tr.RemoveString(s)
		require.True(t, ok, s)
		assert.Equal(t, i, e.Val)
		require.NoError(t, tr.Check())

		for j, other := range paths {
			assert.Equal(t, j > i, tr.HasString(other), "after removing %q: %q", s, other)
		}
	}
	assert.True(t, tr.Empty())
	assert.Zero(t, tr.Len())
}

func TestRemove_Stress(t *testing.T) {
	t.Parallel()

	var tr Trie

	// insert both sets, then remove them one after another
	insertAll(t, &tr, paths)
	insertAll(t, &tr, unknownPaths)

	for _, s := range paths {
		_, ok := tr.RemoveString(s)
		require.True(t, ok, s)
	}
	for _, s := range unknownPaths {
		assert.True(t, tr.HasString(s), s)
	}
	for _, s := range paths {
		assert.False(t, tr.HasString(s), s)
	}

	insertAll(t, &tr, paths)

	for _, s := range unknownPaths {
		_, ok := tr.RemoveString(s)
		require.True(t, ok, s)
	}
	for _, s := range paths {
		assert.True(t, tr.HasString(s), s)
	}
	for _, s := range unknownPaths {
		assert.False(t, tr.HasString(s), s)
	}

	for _, s := range paths {
		_, ok := tr.RemoveString(s)
		require.True(t, ok, s)
	}
	assert.True(t, tr.root.isEmpty())
}
