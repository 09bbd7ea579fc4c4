// Package base for common code
package base

import "fmt"

// Entry is one stored (key1, key2) -> value association.
type Entry[K1 comparable, K2 comparable, V any] struct {
	Key1  K1 `json:"key1"`
	Key2  K2 `json:"key2"`
	Value V  `json:"value"`
}

func NewEntry[K1 comparable, K2 comparable, V any](key1 K1, key2 K2, value V) Entry[K1, K2, V] {
	return Entry[K1, K2, V]{Key1: key1, Key2: key2, Value: value}
}

func (e Entry[K1, K2, V]) String() string {
	return fmt.Sprintf("(%v, %v) -> %v", e.Key1, e.Key2, e.Value)
}
