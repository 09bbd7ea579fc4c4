package twokeymap

import (
	"testing"

	"github.com/google/go-cmp/cmp/cmpopts"
	"github.com/mwildt/twokey/base"
	"github.com/mwildt/twokey/utils/testutils"
	"github.com/pkg/errors"
)

type entry = base.Entry[int, string, int]

func newEntry(key1 int, key2 string, value int) entry {
	return base.NewEntry(key1, key2, value)
}

func forEachContainer(t *testing.T, test func(t *testing.T, m Container[int, string, int])) {
	t.Run("Map", func(t *testing.T) {
		test(t, New[int, string, int]())
	})
	t.Run("SortedMap", func(t *testing.T) {
		test(t, NewSorted[int, string, int]())
	})
}

func TestInsert_GetReturnsValue(t *testing.T) {
	forEachContainer(t, func(t *testing.T, m Container[int, string, int]) {
		err := m.Insert(2, "sdf", 6)
		testutils.AssertNoError(t, err, "insert failed")

		value, found := m.Get(2, "sdf")
		testutils.Assert(t, found, "inserted pair not found")
		testutils.Assert(t, value == 6, "expected 6, but got %d", value)
		testutils.Assert(t, m.Contains(2, "sdf"), "contains is false for inserted pair")
	})
}

func TestInsert_EmptyStringKey(t *testing.T) {
	forEachContainer(t, func(t *testing.T, m Container[int, string, int]) {
		testutils.AssertNoError(t, m.Insert(2, "", 6), "insert with empty key2 failed")
		testutils.AssertNoError(t, m.Insert(0, "", 7), "insert with zero keys failed")

		value, found := m.Get(2, "")
		testutils.Assert(t, found && value == 6, "expected 6 under (2, \"\"), got %d (found %v)", value, found)
		value, found = m.Get(0, "")
		testutils.Assert(t, found && value == 7, "expected 7 under (0, \"\"), got %d (found %v)", value, found)
	})
}

func TestGet_Missing(t *testing.T) {
	forEachContainer(t, func(t *testing.T, m Container[int, string, int]) {
		value, found := m.Get(5, "key2")
		testutils.Assert(t, !found, "found pair in empty container")
		testutils.Assert(t, value == 0, "expected zero value, but got %d", value)
		testutils.Assert(t, !m.Contains(5, "key2"), "contains is true for empty container")

		m.Insert(5, "other", 1)
		m.Insert(6, "key2", 2)
		_, found = m.Get(5, "key2")
		testutils.Assert(t, found == m.Contains(5, "key2"), "contains differs from get")
		testutils.Assert(t, !found, "found pair that was never inserted")
		_, found = m.Get(7, "key2")
		testutils.Assert(t, !found, "found pair for unknown key1")
	})
}

func TestInsert_DuplicateFails(t *testing.T) {
	forEachContainer(t, func(t *testing.T, m Container[int, string, int]) {
		testutils.AssertNoError(t, m.Insert(5, "key2", 1), "first insert failed")
		err := m.Insert(5, "key2", 2)
		testutils.AssertError(t, err, "second insert of (5, key2) succeeded")
		testutils.Assert(t, errors.Is(err, ErrDuplicateKey), "error does not match ErrDuplicateKey: %v", err)

		var duplicate *DuplicateKeyError[int, string]
		testutils.Assert(t, errors.As(err, &duplicate), "error is no DuplicateKeyError: %v", err)
		testutils.Assert(t, duplicate.Key1 == 5 && duplicate.Key2 == "key2", "wrong keys in error: %v", duplicate)
		testutils.Assert(t, err.Error() == "duplicate key (5, key2)", "unexpected message %q", err.Error())

		value, _ := m.Get(5, "key2")
		testutils.Assert(t, value == 1, "failed insert replaced the value, got %d", value)
		testutils.Assert(t, m.Len() == 1, "failed insert changed the count to %d", m.Len())
		testutils.AssertEqual(t, []entry{newEntry(5, "key2", 1)}, m.Entries())
		testutils.AssertEqual(t, []int{1}, m.ValuesFor(5))
	})
}

func TestLen(t *testing.T) {
	forEachContainer(t, func(t *testing.T, m Container[int, string, int]) {
		testutils.Assert(t, m.Len() == 0, "new container is not empty")
		n := 0
		for key1 := 0; key1 < 10; key1++ {
			for _, key2 := range []string{"a", "b", "c"} {
				testutils.AssertNoError(t, m.Insert(key1, key2, n), "insert (%d, %s) failed", key1, key2)
				n++
			}
		}
		testutils.Assert(t, m.Len() == n, "expected %d entries, but got %d", n, m.Len())
		testutils.Assert(t, len(m.AllValues()) == n, "all values has %d values, expected %d", len(m.AllValues()), n)
	})
}

func TestAllValues(t *testing.T) {
	forEachContainer(t, func(t *testing.T, m Container[int, string, int]) {
		testutils.Assert(t, len(m.AllValues()) == 0, "empty container has values")

		m.Insert(34, "skdlfj", 45)
		m.Insert(34, "sdfg", 56)
		m.Insert(56, "hfgh", 87)
		m.Insert(56, "same", 87)

		testutils.AssertEqual(t, []int{45, 56, 87, 87}, m.AllValues(), cmpopts.SortSlices(func(a, b int) bool { return a < b }))
	})
}

func TestValuesFor(t *testing.T) {
	forEachContainer(t, func(t *testing.T, m Container[int, string, int]) {
		m.Insert(1, "a", 10)
		m.Insert(1, "b", 20)
		m.Insert(2, "a", 30)

		testutils.AssertEqual(t, []int{10, 20}, m.ValuesFor(1), cmpopts.SortSlices(func(a, b int) bool { return a < b }))
		testutils.AssertEqual(t, []int{30}, m.ValuesFor(2))

		unknown := m.ValuesFor(99)
		testutils.Assert(t, unknown != nil, "values for unknown key1 is nil")
		testutils.Assert(t, len(unknown) == 0, "values for unknown key1 is not empty: %v", unknown)
	})
}

func TestEntriesFor(t *testing.T) {
	forEachContainer(t, func(t *testing.T, m Container[int, string, int]) {
		m.Insert(34, "skdlfj", 45)
		m.Insert(34, "sdfg", 56)
		m.Insert(56, "hfgh", 87)

		testutils.AssertEqual(t, map[string]int{"skdlfj": 45, "sdfg": 56}, m.EntriesFor(34))

		unknown := m.EntriesFor(37)
		testutils.Assert(t, unknown != nil, "entries for unknown key1 is nil")
		testutils.Assert(t, len(unknown) == 0, "entries for unknown key1 is not empty: %v", unknown)
	})
}

func TestEntriesFor_ReturnsCopy(t *testing.T) {
	forEachContainer(t, func(t *testing.T, m Container[int, string, int]) {
		m.Insert(1, "a", 1)
		m.Insert(1, "b", 2)

		entries := m.EntriesFor(1)
		entries["a"] = 100
		entries["c"] = 3
		delete(entries, "b")

		value, _ := m.Get(1, "a")
		testutils.Assert(t, value == 1, "mutating the copy changed (1, a) to %d", value)
		testutils.Assert(t, m.Contains(1, "b"), "deleting from the copy removed (1, b)")
		testutils.Assert(t, !m.Contains(1, "c"), "adding to the copy added (1, c)")
		testutils.Assert(t, m.Len() == 2, "mutating the copy changed the count to %d", m.Len())

		unknown := m.EntriesFor(2)
		unknown["x"] = 1
		testutils.Assert(t, !m.Contains(2, "x"), "mutating the empty copy added (2, x)")
		testutils.Assert(t, len(m.EntriesFor(2)) == 0, "mutating the empty copy is visible")
	})
}

func TestKeys1(t *testing.T) {
	forEachContainer(t, func(t *testing.T, m Container[int, string, int]) {
		testutils.Assert(t, len(m.Keys1()) == 0, "empty container has keys")
		m.Insert(3, "a", 1)
		m.Insert(1, "a", 2)
		m.Insert(3, "b", 3)

		testutils.AssertEqual(t, []int{1, 3}, m.Keys1(), cmpopts.SortSlices(func(a, b int) bool { return a < b }))
	})
}

func TestEntries_InsertionOrder(t *testing.T) {
	forEachContainer(t, func(t *testing.T, m Container[int, string, int]) {
		m.Insert(2, "y", 20)
		m.Insert(1, "x", 10)
		m.Insert(2, "a", 30)

		expected := []entry{newEntry(2, "y", 20), newEntry(1, "x", 10), newEntry(2, "a", 30)}
		testutils.AssertEqual(t, expected, m.Entries())

		collected := make([]entry, 0)
		for e := range m.All() {
			collected = append(collected, e)
		}
		testutils.AssertEqual(t, expected, collected)
	})
}

func TestAll_Restartable(t *testing.T) {
	forEachContainer(t, func(t *testing.T, m Container[int, string, int]) {
		m.Insert(1, "x", 10)
		m.Insert(2, "y", 20)

		seq := m.All()
		for i := 0; i < 2; i++ {
			collected := make([]entry, 0)
			for e := range seq {
				collected = append(collected, e)
			}
			testutils.AssertEqual(t, []entry{newEntry(1, "x", 10), newEntry(2, "y", 20)}, collected)
		}

		for e := range seq {
			testutils.Assert(t, e.Key1 == 1, "early break did not stop at first entry")
			break
		}
	})
}

func TestAll_ReflectsStateAtCallTime(t *testing.T) {
	forEachContainer(t, func(t *testing.T, m Container[int, string, int]) {
		m.Insert(1, "x", 10)
		seq := m.All()
		entries := m.Entries()
		m.Insert(2, "y", 20)

		count := 0
		for range seq {
			count++
		}
		testutils.Assert(t, count == 1, "sequence saw %d entries, expected 1", count)
		testutils.Assert(t, len(entries) == 1, "entries copy has %d entries, expected 1", len(entries))

		entries[0].Value = 99
		value, _ := m.Get(1, "x")
		testutils.Assert(t, value == 10, "modifying the entries copy changed the stored value")
		testutils.Assert(t, m.Entries()[0].Value == 10, "modifying the entries copy changed the sequence")
	})
}

type payload struct {
	Name string
}

func TestValuesAreShared(t *testing.T) {
	m := New[int, string, *payload]()
	value := &payload{Name: "asmdpsodfgkhöglhmdfgh d"}
	testutils.AssertNoError(t, m.Insert(5, "key2", value), "insert failed")

	result, found := m.Get(5, "key2")
	testutils.Assert(t, found, "inserted pair not found")
	testutils.Assert(t, result == value, "expected the same pointer to be returned")

	missing, found := m.Get(5, "other")
	testutils.Assert(t, !found && missing == nil, "missing pair returned %v", missing)
}

func TestNew_WithCapacity(t *testing.T) {
	m := New[int, string, int](WithCapacity(16))
	testutils.Assert(t, cap(m.entries) == 16, "expected capacity 16, but got %d", cap(m.entries))

	m = New[int, string, int](WithCapacity(-1))
	testutils.Assert(t, cap(m.entries) == 0, "negative capacity was applied")
}
