package pkg

import (
	"cmp"
	"slices"
)

type Map[K comparable, V any] map[K]V

func (m Map[K, V]) Get(key K) V {
	return m[key]
}

func (m Map[K, V]) Set(key K, value V) {
	m[key] = value
}

func (m Map[K, V]) Has(key K) bool {
	_, ok := m[key]
	return ok
}

func (m Map[K, V]) Delete(key K) {
	delete(m, key)
}

func (m Map[K, V]) Keys() []K {
	keys := make([]K, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	return keys
}

// SortedKeys returns the keys in ascending order.
func SortedKeys[K cmp.Ordered, V any](m Map[K, V]) []K {
	keys := m.Keys()
	slices.Sort(keys)
	return keys
}

// GetOrInit returns the value for key, storing init() first when absent.
func (m Map[K, V]) GetOrInit(key K, init func() V) V {
	v, ok := m[key]
	if !ok {
		v = init()
		m[key] = v
	}
	return v
}
