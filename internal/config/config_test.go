package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestDefault(t *testing.T) {
	s := Default()
	if s.HistogramWidth != 40 {
		t.Errorf("HistogramWidth = %d, want 40", s.HistogramWidth)
	}
	if s.Workers != 0 {
		t.Errorf("Workers = %d, want 0 (auto)", s.Workers)
	}
}

func TestLoadMissingFileReturnsDefaults(t *testing.T) {
	s, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if s != Default() {
		t.Errorf("got %+v, want defaults", s)
	}
}

func TestSaveLoadRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")

	want := Settings{HistogramWidth: 60, Workers: 4}
	if err := Save(want, path); err != nil {
		t.Fatalf("Save failed: %v", err)
	}

	got, err := Load(path)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if got != want {
		t.Errorf("got %+v, want %+v", got, want)
	}
}

func TestLoadPartialFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	if err := os.WriteFile(path, []byte("histogram_width: 25\n"), 0o644); err != nil {
		t.Fatalf("write: %v", err)
	}

	got, err := Load(path)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if got.HistogramWidth != 25 {
		t.Errorf("HistogramWidth = %d, want 25", got.HistogramWidth)
	}
	if got.Workers != 0 {
		t.Errorf("Workers = %d, want default 0", got.Workers)
	}
}
