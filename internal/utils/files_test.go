package utils

import (
	"os"
	"path/filepath"
	"sort"
	"testing"
)

func TestFindFilesFiltersByExtension(t *testing.T) {
	dir := t.TempDir()
	for _, name := range []string{"a.py", "b.py", "c.txt"} {
		if err := os.WriteFile(filepath.Join(dir, name), []byte("x"), 0644); err != nil {
			t.Fatalf("seed file: %v", err)
		}
	}
	sub := filepath.Join(dir, "nested")
	if err := os.Mkdir(sub, 0755); err != nil {
		t.Fatalf("mkdir: %v", err)
	}
	if err := os.WriteFile(filepath.Join(sub, "d.py"), []byte("x"), 0644); err != nil {
		t.Fatalf("seed nested file: %v", err)
	}

	got, err := FindFiles(dir, ".py")
	if err != nil {
		t.Fatalf("FindFiles: %v", err)
	}

	names := make([]string, len(got))
	for i, path := range got {
		names[i] = filepath.Base(path)
	}
	sort.Strings(names)

	want := []string{"a.py", "b.py", "d.py"}
	if len(names) != len(want) {
		t.Fatalf("expected %v, got %v", want, names)
	}
	for i := range want {
		if names[i] != want[i] {
			t.Errorf("expected %v, got %v", want, names)
			break
		}
	}
}

func TestFindFilesNoExtensionMatchesEverything(t *testing.T) {
	dir := t.TempDir()
	if err := os.WriteFile(filepath.Join(dir, "a.py"), []byte("x"), 0644); err != nil {
		t.Fatalf("seed file: %v", err)
	}
	if err := os.WriteFile(filepath.Join(dir, "b.txt"), []byte("x"), 0644); err != nil {
		t.Fatalf("seed file: %v", err)
	}

	got, err := FindFiles(dir)
	if err != nil {
		t.Fatalf("FindFiles: %v", err)
	}
	if len(got) != 2 {
		t.Errorf("expected 2 files with no extension filter, got %d", len(got))
	}
}
