package twokeymap

import (
	"iter"

	"github.com/mwildt/twokey/base"
)

// entrySequence is the append-only, insertion ordered record of every stored entry.
type entrySequence[K1 comparable, K2 comparable, V any] struct {
	entries []base.Entry[K1, K2, V]
}

func newEntrySequence[K1 comparable, K2 comparable, V any](capacity int) entrySequence[K1, K2, V] {
	return entrySequence[K1, K2, V]{entries: make([]base.Entry[K1, K2, V], 0, capacity)}
}

func (seq *entrySequence[K1, K2, V]) record(key1 K1, key2 K2, value V) {
	seq.entries = append(seq.entries, base.NewEntry(key1, key2, value))
}

// Len returns the number of stored entries.
func (seq *entrySequence[K1, K2, V]) Len() int {
	return len(seq.entries)
}

// Entries returns a copy of all entries in insertion order.
func (seq *entrySequence[K1, K2, V]) Entries() []base.Entry[K1, K2, V] {
	return append(make([]base.Entry[K1, K2, V], 0, len(seq.entries)), seq.entries...)
}

// All yields the entries stored at call time in insertion order.
// Entries inserted afterwards are not part of the sequence.
func (seq *entrySequence[K1, K2, V]) All() iter.Seq[base.Entry[K1, K2, V]] {
	snapshot := seq.entries[:len(seq.entries):len(seq.entries)]
	return func(yield func(base.Entry[K1, K2, V]) bool) {
		for _, entry := range snapshot {
			if !yield(entry) {
				return
			}
		}
	}
}
