// Package twokeymap stores values under a pair of keys.
//
// Values are addressable by the full (key1, key2) pair or by key1 alone. Every
// successful insert is also recorded in an insertion ordered entry sequence,
// which backs iteration. Pairs can only be added: there is no update and no
// removal, and inserting an existing pair fails with a DuplicateKeyError.
//
// None of the containers are safe for concurrent mutation. Callers sharing a
// container between goroutines have to guard it themselves.
package twokeymap

import (
	"iter"

	"github.com/mwildt/twokey/base"
	"golang.org/x/exp/maps"
)

// Container is implemented by Map and SortedMap.
type Container[K1 comparable, K2 comparable, V any] interface {
	// Insert stores value under (key1, key2) or fails if the pair exists.
	Insert(key1 K1, key2 K2, value V) error
	// Get returns the value stored under (key1, key2).
	Get(key1 K1, key2 K2) (V, bool)
	Contains(key1 K1, key2 K2) bool
	// Len returns the number of stored entries.
	Len() int
	// AllValues returns every value, traversing the two index levels.
	AllValues() []V
	// ValuesFor returns the values stored under key1.
	ValuesFor(key1 K1) []V
	// EntriesFor returns a copy of the second level mapping of key1.
	EntriesFor(key1 K1) map[K2]V
	// Keys1 returns the distinct first keys.
	Keys1() []K1
	// Entries returns all entries in insertion order.
	Entries() []base.Entry[K1, K2, V]
	// All yields all entries in insertion order.
	All() iter.Seq[base.Entry[K1, K2, V]]
}

var _ Container[int, string, any] = (*Map[int, string, any])(nil)

// Map is the hash based Container. AllValues has no defined order.
type Map[K1 comparable, K2 comparable, V any] struct {
	entrySequence[K1, K2, V]
	index map[K1]map[K2]V
}

func New[K1 comparable, K2 comparable, V any](options ...ConfigOption) *Map[K1, K2, V] {
	config := newConfig(options)
	return &Map[K1, K2, V]{
		entrySequence: newEntrySequence[K1, K2, V](config.capacity),
		index:         make(map[K1]map[K2]V),
	}
}

func (m *Map[K1, K2, V]) secondLevel(key1 K1, create bool) map[K2]V {
	secondLevel, found := m.index[key1]
	if !found && create {
		secondLevel = make(map[K2]V)
		m.index[key1] = secondLevel
	}
	return secondLevel
}

func (m *Map[K1, K2, V]) Insert(key1 K1, key2 K2, value V) error {
	// a plain map assignment would overwrite
	if m.Contains(key1, key2) {
		return duplicateKey(key1, key2)
	}
	m.secondLevel(key1, true)[key2] = value
	m.record(key1, key2, value)
	return nil
}

func (m *Map[K1, K2, V]) Get(key1 K1, key2 K2) (value V, found bool) {
	if secondLevel := m.secondLevel(key1, false); secondLevel != nil {
		value, found = secondLevel[key2]
	}
	return value, found
}

func (m *Map[K1, K2, V]) Contains(key1 K1, key2 K2) bool {
	_, found := m.Get(key1, key2)
	return found
}

func (m *Map[K1, K2, V]) AllValues() []V {
	values := make([]V, 0, m.Len())
	for _, secondLevel := range m.index {
		for _, value := range secondLevel {
			values = append(values, value)
		}
	}
	return values
}

func (m *Map[K1, K2, V]) ValuesFor(key1 K1) []V {
	secondLevel := m.secondLevel(key1, false)
	values := make([]V, 0, len(secondLevel))
	for _, value := range secondLevel {
		values = append(values, value)
	}
	return values
}

func (m *Map[K1, K2, V]) EntriesFor(key1 K1) map[K2]V {
	secondLevel := m.secondLevel(key1, false)
	if secondLevel == nil {
		return make(map[K2]V)
	}
	return maps.Clone(secondLevel)
}

func (m *Map[K1, K2, V]) Keys1() []K1 {
	keys := make([]K1, 0, len(m.index))
	for key1 := range m.index {
		keys = append(keys, key1)
	}
	return keys
}
