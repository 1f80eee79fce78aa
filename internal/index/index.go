// Package index implements the store's secondary indexes: a field value
// mapped to the set of record ids sharing it.
package index

import (
	"fmt"
	"slices"

	"github.com/RoaringBitmap/roaring/v2/roaring64"
	"github.com/tobsdb/invdb/pkg"
)

type Index struct {
	Name string
	// index value -> record ids
	Map pkg.Map[string, *roaring64.Bitmap]
	// record id -> the one key holding it
	keys pkg.Map[int64, string]
}

func New(name string) *Index {
	return &Index{
		Name: name,
		Map:  pkg.Map[string, *roaring64.Bitmap]{},
		keys: pkg.Map[int64, string]{},
	}
}

// Add files id under key. An id is held by at most one key, so a previous
// key for the same id loses it.
func (idx *Index) Add(key string, id int64) {
	if old, ok := idx.keys[id]; ok && old != key {
		idx.drop(old, id)
	}
	idx.Map.GetOrInit(key, roaring64.NewBitmap).Add(uint64(id))
	idx.keys[id] = key
}

// Remove drops id from key's set. Empty sets are removed with their key.
func (idx *Index) Remove(key string, id int64) bool {
	if !idx.Has(key, id) {
		return false
	}
	idx.drop(key, id)
	return true
}

// RemoveId drops id from whichever key holds it, which may no longer be
// the record's current value.
func (idx *Index) RemoveId(id int64) bool {
	key, ok := idx.keys[id]
	if !ok {
		return false
	}
	idx.drop(key, id)
	return true
}

// KeyOf returns the key id is filed under.
func (idx *Index) KeyOf(id int64) (string, bool) {
	key, ok := idx.keys[id]
	return key, ok
}

func (idx *Index) drop(key string, id int64) {
	idx.keys.Delete(id)
	ids, ok := idx.Map[key]
	if !ok {
		return
	}
	ids.Remove(uint64(id))
	if ids.IsEmpty() {
		idx.Map.Delete(key)
	}
}

func (idx *Index) Has(key string, id int64) bool {
	ids, ok := idx.Map[key]
	return ok && ids.Contains(uint64(id))
}

// Lookup returns the ids stored under key in ascending order. Negative ids
// sort first even though the bitmap holds them as large unsigned values.
func (idx *Index) Lookup(key string) []int64 {
	ids, ok := idx.Map[key]
	if !ok {
		return []int64{}
	}
	found := make([]int64, 0, ids.GetCardinality())
	for _, id := range ids.ToArray() {
		found = append(found, int64(id))
	}
	slices.Sort(found)
	return found
}

// Count is the number of ids stored under key.
func (idx *Index) Count(key string) int {
	ids, ok := idx.Map[key]
	if !ok {
		return 0
	}
	return int(ids.GetCardinality())
}

func (idx *Index) Keys() []string { return pkg.SortedKeys(idx.Map) }

func (idx *Index) Clear() {
	idx.Map = pkg.Map[string, *roaring64.Bitmap]{}
	idx.keys = pkg.Map[int64, string]{}
}

func (idx *Index) String() string {
	return fmt.Sprintf("index(%s, %d keys)", idx.Name, len(idx.Map))
}
