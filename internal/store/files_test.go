package store

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"go.uber.org/zap"
)

func TestWriteAndRead(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "calendars")
	s := NewFileStore(dir, zap.NewNop())

	if err := s.Write("Tokyo", "BEGIN:VCALENDAR\r\nEND:VCALENDAR\r\n"); err != nil {
		t.Fatalf("write failed: %v", err)
	}

	// The output directory is created on first write.
	if _, err := os.Stat(dir); err != nil {
		t.Fatalf("output directory not created: %v", err)
	}

	doc, err := s.Read("Tokyo")
	if err != nil {
		t.Fatalf("read failed: %v", err)
	}
	if doc != "BEGIN:VCALENDAR\r\nEND:VCALENDAR\r\n" {
		t.Errorf("read back %q", doc)
	}
}

func TestReadUnknownCity(t *testing.T) {
	s := NewFileStore(t.TempDir(), zap.NewNop())

	_, err := s.Read("Nowhere")
	if !errors.Is(err, ErrNotFound) {
		t.Errorf("expected ErrNotFound, got %v", err)
	}
}

func TestCities(t *testing.T) {
	dir := t.TempDir()
	s := NewFileStore(dir, zap.NewNop())

	for _, city := range []string{"Tokyo", "Osaka"} {
		if err := s.Write(city, "data"); err != nil {
			t.Fatalf("write failed: %v", err)
		}
	}
	// Unrelated files are not reported as calendars.
	if err := os.WriteFile(filepath.Join(dir, "notes.txt"), []byte("x"), 0o644); err != nil {
		t.Fatal(err)
	}

	cities := s.Cities()
	if len(cities) != 2 {
		t.Fatalf("cities = %v, want 2 entries", cities)
	}
	seen := map[string]bool{}
	for _, c := range cities {
		seen[c] = true
	}
	if !seen["Tokyo"] || !seen["Osaka"] {
		t.Errorf("cities = %v", cities)
	}
}

func TestWriteOverwritesPreviousRun(t *testing.T) {
	s := NewFileStore(t.TempDir(), zap.NewNop())

	if err := s.Write("Tokyo", "old"); err != nil {
		t.Fatal(err)
	}
	if err := s.Write("Tokyo", "new"); err != nil {
		t.Fatal(err)
	}

	doc, err := s.Read("Tokyo")
	if err != nil {
		t.Fatal(err)
	}
	if doc != "new" {
		t.Errorf("read back %q, want the rewritten document", doc)
	}
}
