package fs

import (
	"os"
	"path/filepath"
	"testing"
)

func TestWalkDefaults(t *testing.T) {
	root := t.TempDir()

	mustWrite(t, filepath.Join(root, "alice.pdf"))
	mustWrite(t, filepath.Join(root, "bob.docx"))
	mustWrite(t, filepath.Join(root, "notes.md"))
	mustWrite(t, filepath.Join(root, "sub", "carol.pdf"))

	w := NewWalker(nil, nil)
	files, err := w.Walk(root)
	if err != nil {
		t.Fatalf("walk failed: %v", err)
	}

	if len(files) != 3 {
		t.Fatalf("expected 3 files, got %d: %v", len(files), files)
	}

	// Sorted by path.
	if files[0].Name != "alice.pdf" || files[1].Name != "bob.docx" || files[2].Name != "carol.pdf" {
		t.Errorf("unexpected order: %v", files)
	}
}

func TestWalkExcludes(t *testing.T) {
	root := t.TempDir()

	mustWrite(t, filepath.Join(root, "keep.pdf"))
	mustWrite(t, filepath.Join(root, "archive", "old.pdf"))

	w := NewWalker(nil, []string{"archive/**"})
	files, err := w.Walk(root)
	if err != nil {
		t.Fatalf("walk failed: %v", err)
	}

	if len(files) != 1 || files[0].Name != "keep.pdf" {
		t.Errorf("expected only keep.pdf, got %v", files)
	}
}

func mustWrite(t *testing.T, path string) {
	t.Helper()
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(path, []byte("x"), 0644); err != nil {
		t.Fatal(err)
	}
}
