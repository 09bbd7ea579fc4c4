// Package skiplist contains an ordered, insert-only index used by the sorted two key map.
package skiplist

import (
	"iter"
	"math"
	"math/rand"

	"golang.org/x/exp/constraints"
)

const DefaultLevel = 4

// Height returns the number of levels needed for n elements: ceil(log(n) / log(1/p))
func Height(n int, p float64) int {
	if n <= 1 {
		return 1
	}
	height := math.Ceil(math.Log(float64(n)) / math.Log(1/p))
	return int(height)
}

func randomLevel(maxLevel int) int {
	level := 1
	for rand.Float64() < 0.5 && level < maxLevel {
		level++
	}
	return level
}

type skipListNode[K constraints.Ordered, V any] struct {
	key   K
	value V
	next  []*skipListNode[K, V]
}

func (node *skipListNode[K, V]) hasNext(level int) bool {
	return len(node.next) > level && node.next[level] != nil
}

// SkipList maps ordered keys to values. Keys can only be added, never replaced or removed.
// The head node is a sentinel spanning all levels and carries no key.
type SkipList[K constraints.Ordered, V any] struct {
	head  *skipListNode[K, V]
	size  int
	level int
}

func NewSkipList[K constraints.Ordered, V any](level int) *SkipList[K, V] {
	if level < 1 {
		level = 1
	}
	return &SkipList[K, V]{
		head:  &skipListNode[K, V]{next: make([]*skipListNode[K, V], level)},
		level: level,
	}
}

// [L2] [HD] --> --> --> --> --> --> --> --> [30] --> NIL
// [L1] [HD] --> [10] --> --> --> --> --> --> [30] --> NIL
// [L0] [HD] --> [10] --> [15] --> [20] --> [30] --> NIL

// search returns the first node with a key >= key (or nil) and, per level,
// the last node whose key is lower than key.
func (sl *SkipList[K, V]) search(key K) (node *skipListNode[K, V], refs []*skipListNode[K, V]) {
	refs = make([]*skipListNode[K, V], sl.level)
	node = sl.head
	for level := sl.level - 1; level >= 0; level-- {
		for node.hasNext(level) && node.next[level].key < key {
			node = node.next[level]
		}
		refs[level] = node
	}
	return node.next[0], refs
}

func (sl *SkipList[K, V]) find(key K) *skipListNode[K, V] {
	node := sl.head
	for level := sl.level - 1; level >= 0; level-- {
		for node.hasNext(level) && node.next[level].key < key {
			node = node.next[level]
		}
	}
	if next := node.next[0]; next != nil && next.key == key {
		return next
	}
	return nil
}

func (sl *SkipList[K, V]) newRandomNode(key K, value V) *skipListNode[K, V] {
	return &skipListNode[K, V]{
		key:   key,
		value: value,
		next:  make([]*skipListNode[K, V], randomLevel(sl.level))}
}

func (sl *SkipList[K, V]) Get(key K) (value V, found bool) {
	if node := sl.find(key); node != nil {
		return node.value, true
	}
	return value, false
}

func (sl *SkipList[K, V]) Contains(key K) bool {
	return sl.find(key) != nil
}

// Insert adds key with value. If key is already present the list is left
// untouched and false is returned.
func (sl *SkipList[K, V]) Insert(key K, value V) bool {
	node, refs := sl.search(key)
	if node != nil && node.key == key {
		return false
	}
	newNode := sl.newRandomNode(key, value)
	for level := range newNode.next {
		newNode.next[level] = refs[level].next[level]
		refs[level].next[level] = newNode
	}
	sl.size++
	return true
}

// All yields the entries in ascending key order.
func (sl *SkipList[K, V]) All() iter.Seq2[K, V] {
	return func(yield func(K, V) bool) {
		for current := sl.head.next[0]; current != nil; current = current.next[0] {
			if !yield(current.key, current.value) {
				return
			}
		}
	}
}

func (sl *SkipList[K, V]) Keys() []K {
	keys := make([]K, 0, sl.size)
	for key := range sl.All() {
		keys = append(keys, key)
	}
	return keys
}

func (sl *SkipList[K, V]) Values() []V {
	values := make([]V, 0, sl.size)
	for _, value := range sl.All() {
		values = append(values, value)
	}
	return values
}

func (sl *SkipList[K, V]) Size() int {
	return sl.size
}

func (sl *SkipList[K, V]) Level() int {
	return sl.level
}
