package walker

import (
	"os"
	"path/filepath"
	"testing"
)

func TestWalk(t *testing.T) {
	root := t.TempDir()
	mustWrite := func(rel, content string) {
		path := filepath.Join(root, rel)
		if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
			t.Fatal(err)
		}
		if err := os.WriteFile(path, []byte(content), 0644); err != nil {
			t.Fatal(err)
		}
	}

	mustWrite("a.gloss", "dog cat")
	mustWrite("docs/b.md", "# doc")
	mustWrite("docs/c.txt", "text")
	mustWrite("skip.html", "<p>no</p>")

	entries, err := NewWalker().Walk(root)
	if err != nil {
		t.Fatalf("Walk: %v", err)
	}
	if len(entries) != 3 {
		t.Fatalf("got %d entries, want 3: %+v", len(entries), entries)
	}
	for _, e := range entries {
		if e.Parser == nil {
			t.Errorf("entry %s has no parser", e.Path)
		}
		if !e.Parser.CanParse(e.Ext) {
			t.Errorf("entry %s dispatched to wrong parser", e.Path)
		}
	}
}

func TestWalkRejectsFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "f.gloss")
	if err := os.WriteFile(path, []byte("x"), 0644); err != nil {
		t.Fatal(err)
	}
	if _, err := NewWalker().Walk(path); err == nil {
		t.Error("Walk on a plain file must fail")
	}
}

func TestLookup(t *testing.T) {
	w := NewWalker()
	if w.Lookup("x/y/sample.GLOSS") == nil {
		t.Error("Lookup must be case-insensitive on the extension")
	}
	if w.Lookup("sample.html") != nil {
		t.Error("Lookup must return nil for unsupported extensions")
	}
}
