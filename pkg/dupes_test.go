package filecleaner

import (
	"path/filepath"
	"testing"
)

func TestDuplicateGroupsFromDryRun(t *testing.T) {
	dir := t.TempDir()

	// Two groups: (a, b) identical, (x, y, z) identical, plus one unique.
	contentOne := withSuffix("group one")
	contentTwo := append([]byte{9, 9, 9, 9, 9, 9, 9, 9}, "group two"...)
	writeTestFile(t, dir, "a.bin", contentOne)
	writeTestFile(t, dir, "b.bin", contentOne)
	writeTestFile(t, dir, "u.bin", withSuffix("unique"))
	writeTestFile(t, dir, "x.bin", contentTwo)
	writeTestFile(t, dir, "y.bin", contentTwo)
	writeTestFile(t, dir, "z.bin", contentTwo)

	engine, _, _ := runEngine(t, dir, Options{DryRun: true})

	groups := engine.DuplicateGroups()
	if len(groups) != 2 {
		t.Fatalf("Expected 2 groups, got %d", len(groups))
	}

	// Groups come back ordered by representative path.
	first := groups[0]
	if first.Count != 2 || len(first.Files) != 2 {
		t.Errorf("Expected first group of 2, got count=%d files=%v", first.Count, first.Files)
	}
	if first.Files[0] != filepath.Join(dir, "a.bin") {
		t.Errorf("Expected representative a.bin first, got %s", first.Files[0])
	}

	second := groups[1]
	if second.Count != 3 {
		t.Errorf("Expected second group of 3, got %d", second.Count)
	}
	if second.Files[0] != filepath.Join(dir, "x.bin") {
		t.Errorf("Expected representative x.bin first, got %s", second.Files[0])
	}
}

func TestDuplicateGroupsAfterDeletion(t *testing.T) {
	dir := t.TempDir()
	content := withSuffix("payload")
	writeTestFile(t, dir, "a.bin", content)
	writeTestFile(t, dir, "b.bin", content)

	engine, _, _ := runEngine(t, dir, Options{})

	groups := engine.DuplicateGroups()
	if len(groups) != 1 {
		t.Fatalf("Expected 1 group, got %d", len(groups))
	}
	if groups[0].Count != 2 {
		t.Errorf("Expected deleted duplicate to still be listed, got count %d", groups[0].Count)
	}
	if groups[0].Key == 0 {
		t.Error("Expected group key to carry the grouping key")
	}
}

func TestDuplicateGroupsEmptyWhenNoDuplicates(t *testing.T) {
	dir := t.TempDir()
	writeTestFile(t, dir, "a.bin", withSuffix("one"))
	writeTestFile(t, dir, "b.bin", withSuffix("two"))

	engine, _, _ := runEngine(t, dir, Options{})

	if groups := engine.DuplicateGroups(); len(groups) != 0 {
		t.Errorf("Expected no groups, got %v", groups)
	}
}
