package filecleaner

import "testing"

func TestDuplicateIndexInsertAndLookup(t *testing.T) {
	index := NewDuplicateIndex(4)

	if _, ok := index.Lookup(GroupingKey(7)); ok {
		t.Error("Expected lookup miss on empty index")
	}

	index.Insert(GroupingKey(7), "a")
	bucket, ok := index.Lookup(GroupingKey(7))
	if !ok {
		t.Fatal("Expected lookup hit after insert")
	}
	if len(bucket) != 1 || bucket[0] != "a" {
		t.Errorf("Expected bucket [a], got %v", bucket)
	}
}

func TestDuplicateIndexAppendPreservesInsertionOrder(t *testing.T) {
	index := NewDuplicateIndex(0)
	key := GroupingKey(0xDEADBEEF)

	index.Insert(key, "first")
	index.Append(key, "second")
	index.Append(key, "third")

	bucket, ok := index.Lookup(key)
	if !ok {
		t.Fatal("Expected lookup hit")
	}

	expected := []string{"first", "second", "third"}
	if len(bucket) != len(expected) {
		t.Fatalf("Expected %d entries, got %d", len(expected), len(bucket))
	}
	for i, path := range expected {
		if bucket[i] != path {
			t.Errorf("Entry %d: expected %s, got %s", i, path, bucket[i])
		}
	}
}

func TestDuplicateIndexDistinctKeys(t *testing.T) {
	index := NewDuplicateIndex(2)

	index.Insert(GroupingKey(1), "a")
	index.Insert(GroupingKey(2), "b")

	if index.Len() != 2 {
		t.Errorf("Expected 2 distinct keys, got %d", index.Len())
	}
	if index.Paths() != 2 {
		t.Errorf("Expected 2 total paths, got %d", index.Paths())
	}

	index.Append(GroupingKey(1), "c")
	if index.Len() != 2 {
		t.Errorf("Expected key count unchanged after append, got %d", index.Len())
	}
	if index.Paths() != 3 {
		t.Errorf("Expected 3 total paths, got %d", index.Paths())
	}
}

func TestDuplicateIndexNegativeSizeHint(t *testing.T) {
	index := NewDuplicateIndex(-1)
	index.Insert(GroupingKey(0), "a")
	if index.Len() != 1 {
		t.Errorf("Expected index to work with negative size hint, got len %d", index.Len())
	}
}
