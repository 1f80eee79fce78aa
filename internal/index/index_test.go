package index_test

import (
	"testing"

	. "github.com/tobsdb/invdb/internal/index"
	"gotest.tools/assert"
)

func TestIndex(t *testing.T) {
	t.Run("add and lookup", func(t *testing.T) {
		idx := New("name")
		idx.Add("TV", 3)
		idx.Add("TV", 1)
		idx.Add("Radio", 2)

		assert.DeepEqual(t, idx.Lookup("TV"), []int64{1, 3})
		assert.DeepEqual(t, idx.Lookup("Radio"), []int64{2})
		assert.DeepEqual(t, idx.Lookup("Mouse"), []int64{})
		assert.Equal(t, idx.Count("TV"), 2)
		assert.DeepEqual(t, idx.Keys(), []string{"Radio", "TV"})
	})

	t.Run("add is idempotent", func(t *testing.T) {
		idx := New("name")
		idx.Add("TV", 1)
		idx.Add("TV", 1)
		assert.Equal(t, idx.Count("TV"), 1)
	})

	t.Run("remove", func(t *testing.T) {
		idx := New("supplier")
		idx.Add("A", 1)
		idx.Add("A", 2)

		assert.Assert(t, idx.Remove("A", 1))
		assert.Assert(t, !idx.Has("A", 1))
		assert.Assert(t, idx.Has("A", 2))
		assert.Assert(t, !idx.Remove("A", 1))
		assert.Assert(t, !idx.Remove("B", 2))

		assert.Assert(t, idx.Remove("A", 2))
		// empty sets drop their key
		assert.Equal(t, len(idx.Map), 0)
	})

	t.Run("id lives under one key", func(t *testing.T) {
		idx := New("name")
		idx.Add("TV", 1)
		idx.Add("Telly", 1)

		assert.DeepEqual(t, idx.Lookup("TV"), []int64{})
		assert.DeepEqual(t, idx.Lookup("Telly"), []int64{1})
		key, ok := idx.KeyOf(1)
		assert.Assert(t, ok)
		assert.Equal(t, key, "Telly")
	})

	t.Run("remove by id", func(t *testing.T) {
		idx := New("name")
		idx.Add("TV", 1)
		idx.Add("TV", 2)

		assert.Assert(t, idx.RemoveId(1))
		assert.Assert(t, !idx.RemoveId(1))
		assert.DeepEqual(t, idx.Lookup("TV"), []int64{2})
		_, ok := idx.KeyOf(1)
		assert.Assert(t, !ok)

		assert.Assert(t, idx.RemoveId(2))
		assert.Equal(t, len(idx.Map), 0)
	})

	t.Run("negative ids sort first", func(t *testing.T) {
		idx := New("name")
		idx.Add("TV", 3)
		idx.Add("TV", -1)
		idx.Add("TV", 1)
		assert.DeepEqual(t, idx.Lookup("TV"), []int64{-1, 1, 3})
	})

	t.Run("clear", func(t *testing.T) {
		idx := New("name")
		idx.Add("TV", 1)
		idx.Clear()
		assert.Equal(t, idx.Count("TV"), 0)
		assert.Assert(t, !idx.RemoveId(1))
		assert.Equal(t, idx.String(), "index(name, 0 keys)")
	})
}
