package gallery

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

const watchCatalogV1 = `
[[sections]]
title = "First"

[[sections.items]]
id = 1
image_url = "a.jpg"
`

const watchCatalogV2 = `
[[sections]]
title = "Second"

[[sections.items]]
id = 1
image_url = "b.jpg"

[[sections.items]]
id = 2
image_url = "c.jpg"
`

func waitCatalog(t *testing.T, w *Watcher) *Catalog {
	t.Helper()
	select {
	case cat := <-w.Updates():
		return cat
	case <-time.After(5 * time.Second):
		t.Fatal("timed out waiting for a reload")
		return nil
	}
}

func TestWatcher_ReloadsOnWrite(t *testing.T) {
	path := filepath.Join(t.TempDir(), "catalog.toml")
	if err := os.WriteFile(path, []byte(watchCatalogV1), 0o644); err != nil {
		t.Fatal(err)
	}
	w, err := NewWatcher(path, 20*time.Millisecond)
	if err != nil {
		t.Fatal(err)
	}
	defer w.Close()

	if err := os.WriteFile(path, []byte(watchCatalogV2), 0o644); err != nil {
		t.Fatal(err)
	}
	cat := waitCatalog(t, w)
	if len(cat.Sections) != 1 || cat.Sections[0].Title != "Second" || len(cat.Sections[0].Items) != 2 {
		t.Errorf("reloaded catalog = %+v", cat)
	}
}

func TestWatcher_SkipsInvalidEdits(t *testing.T) {
	path := filepath.Join(t.TempDir(), "catalog.toml")
	if err := os.WriteFile(path, []byte(watchCatalogV1), 0o644); err != nil {
		t.Fatal(err)
	}
	w, err := NewWatcher(path, 20*time.Millisecond)
	if err != nil {
		t.Fatal(err)
	}
	defer w.Close()

	if err := os.WriteFile(path, []byte("[[sections]]\ntitle = \"Empty\"\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	select {
	case cat := <-w.Updates():
		t.Fatalf("invalid catalog published: %+v", cat)
	case <-time.After(300 * time.Millisecond):
	}

	if err := os.WriteFile(path, []byte(watchCatalogV2), 0o644); err != nil {
		t.Fatal(err)
	}
	if cat := waitCatalog(t, w); cat.Sections[0].Title != "Second" {
		t.Errorf("title = %q, want Second", cat.Sections[0].Title)
	}
}

func TestWatcher_IgnoresOtherFiles(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "catalog.toml")
	if err := os.WriteFile(path, []byte(watchCatalogV1), 0o644); err != nil {
		t.Fatal(err)
	}
	w, err := NewWatcher(path, 20*time.Millisecond)
	if err != nil {
		t.Fatal(err)
	}
	defer w.Close()

	if err := os.WriteFile(filepath.Join(dir, "notes.txt"), []byte("hi"), 0o644); err != nil {
		t.Fatal(err)
	}
	select {
	case cat := <-w.Updates():
		t.Fatalf("unexpected reload: %+v", cat)
	case <-time.After(200 * time.Millisecond):
	}
}

func TestWatcher_MissingDirectory(t *testing.T) {
	if _, err := NewWatcher(filepath.Join(t.TempDir(), "nope", "catalog.toml"), 0); err == nil {
		t.Error("expected an error for a missing directory")
	}
}
