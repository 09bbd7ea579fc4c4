package twokeymap

import (
	"github.com/mwildt/twokey/skiplist"
	"golang.org/x/exp/constraints"
)

var _ Container[int, string, any] = (*SortedMap[int, string, any])(nil)

// SortedMap is the Container for ordered keys. Its index is a skiplist of
// skiplists, so AllValues, ValuesFor and Keys1 return results in ascending
// key order. Iteration still follows insertion order.
type SortedMap[K1 constraints.Ordered, K2 constraints.Ordered, V any] struct {
	entrySequence[K1, K2, V]
	index *skiplist.SkipList[K1, *skiplist.SkipList[K2, V]]
	level int
}

func NewSorted[K1 constraints.Ordered, K2 constraints.Ordered, V any](options ...ConfigOption) *SortedMap[K1, K2, V] {
	config := newConfig(options)
	return &SortedMap[K1, K2, V]{
		entrySequence: newEntrySequence[K1, K2, V](config.capacity),
		index:         skiplist.NewSkipList[K1, *skiplist.SkipList[K2, V]](config.level),
		level:         config.level,
	}
}

func (m *SortedMap[K1, K2, V]) Insert(key1 K1, key2 K2, value V) error {
	secondLevel, found := m.index.Get(key1)
	if !found {
		secondLevel = skiplist.NewSkipList[K2, V](m.level)
	}
	if !secondLevel.Insert(key2, value) {
		return duplicateKey(key1, key2)
	}
	if !found {
		m.index.Insert(key1, secondLevel)
	}
	m.record(key1, key2, value)
	return nil
}

func (m *SortedMap[K1, K2, V]) Get(key1 K1, key2 K2) (value V, found bool) {
	if secondLevel, ok := m.index.Get(key1); ok {
		return secondLevel.Get(key2)
	}
	return value, false
}

func (m *SortedMap[K1, K2, V]) Contains(key1 K1, key2 K2) bool {
	_, found := m.Get(key1, key2)
	return found
}

func (m *SortedMap[K1, K2, V]) AllValues() []V {
	values := make([]V, 0, m.Len())
	for _, secondLevel := range m.index.All() {
		for _, value := range secondLevel.All() {
			values = append(values, value)
		}
	}
	return values
}

func (m *SortedMap[K1, K2, V]) ValuesFor(key1 K1) []V {
	if secondLevel, found := m.index.Get(key1); found {
		return secondLevel.Values()
	}
	return make([]V, 0)
}

func (m *SortedMap[K1, K2, V]) EntriesFor(key1 K1) map[K2]V {
	secondLevel, found := m.index.Get(key1)
	if !found {
		return make(map[K2]V)
	}
	entries := make(map[K2]V, secondLevel.Size())
	for key2, value := range secondLevel.All() {
		entries[key2] = value
	}
	return entries
}

func (m *SortedMap[K1, K2, V]) Keys1() []K1 {
	return m.index.Keys()
}
