package connectors

import (
	"os"
	"path/filepath"
	"testing"
)

func writeFile(t *testing.T, path, content string) {
	t.Helper()
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write %s: %v", path, err)
	}
}

func TestDiscoverFiltersByExtension(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, filepath.Join(dir, "a.csv"), "x,y\n1,2\n")
	writeFile(t, filepath.Join(dir, "b.json"), "[]")
	writeFile(t, filepath.Join(dir, "c.txt"), "nope")

	files, err := Discover(dir, "csv", Options{})
	if err != nil {
		t.Fatalf("Discover failed: %v", err)
	}
	if len(files) != 1 {
		t.Fatalf("expected 1 file, got %d", len(files))
	}
	if filepath.Base(files[0].Path) != "a.csv" {
		t.Errorf("unexpected file: %s", files[0].Path)
	}
}

func TestDiscoverRecursive(t *testing.T) {
	dir := t.TempDir()
	sub := filepath.Join(dir, "sub")
	if err := os.Mkdir(sub, 0o755); err != nil {
		t.Fatalf("mkdir: %v", err)
	}
	writeFile(t, filepath.Join(dir, "a.csv"), "x\n1\n")
	writeFile(t, filepath.Join(sub, "b.csv"), "x\n2\n")

	flat, err := Discover(dir, "csv", Options{})
	if err != nil {
		t.Fatalf("Discover failed: %v", err)
	}
	if len(flat) != 1 {
		t.Errorf("non-recursive: expected 1 file, got %d", len(flat))
	}

	deep, err := Discover(dir, "csv", Options{Recursive: true})
	if err != nil {
		t.Fatalf("Discover failed: %v", err)
	}
	if len(deep) != 2 {
		t.Errorf("recursive: expected 2 files, got %d", len(deep))
	}
}

func TestDiscoverSizeFilters(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, filepath.Join(dir, "small.csv"), "x\n")
	writeFile(t, filepath.Join(dir, "big.csv"), "x,y,z\n1,2,3\n4,5,6\n7,8,9\n")

	files, err := Discover(dir, "csv", Options{MinSize: 10})
	if err != nil {
		t.Fatalf("Discover failed: %v", err)
	}
	if len(files) != 1 || filepath.Base(files[0].Path) != "big.csv" {
		t.Errorf("MinSize filter failed: %+v", files)
	}
}

func TestDiscoverBadRoot(t *testing.T) {
	if _, err := Discover("", "csv", Options{}); err == nil {
		t.Error("expected error for empty root")
	}
	if _, err := Discover(filepath.Join(t.TempDir(), "missing"), "csv", Options{}); err == nil {
		t.Error("expected error for missing directory")
	}
}
