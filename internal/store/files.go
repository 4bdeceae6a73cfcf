// Package store persists generated calendar documents, one file per city,
// inside a single output directory.
package store

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync"

	"go.uber.org/zap"
)

// ErrNotFound reports that no calendar has been generated for a city.
var ErrNotFound = errors.New("calendar not found")

const calendarExt = ".ics"

// FileStore writes and reads per-city calendar files. Writes from a refresh
// and reads from the feed server may overlap, hence the mutex.
type FileStore struct {
	dir    string
	logger *zap.Logger

	mu      sync.RWMutex
	created bool
}

func NewFileStore(dir string, logger *zap.Logger) *FileStore {
	return &FileStore{
		dir:    dir,
		logger: logger,
	}
}

// Write stores the calendar document for a city as <city>.ics, creating the
// output directory on first use. No atomicity is guaranteed; an interrupted
// run simply leaves some files unwritten.
func (s *FileStore) Write(city string, doc string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.created {
		if err := os.MkdirAll(s.dir, 0o755); err != nil {
			return fmt.Errorf("creating output directory %s: %w", s.dir, err)
		}
		s.created = true
	}

	path := filepath.Join(s.dir, city+calendarExt)
	if err := os.WriteFile(path, []byte(doc), 0o644); err != nil {
		return fmt.Errorf("writing calendar for %s: %w", city, err)
	}

	s.logger.Debug("Calendar written",
		zap.String("city", city),
		zap.String("path", path),
		zap.Int("bytes", len(doc)))

	return nil
}

// Read returns the stored calendar document for a city.
func (s *FileStore) Read(city string) (string, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	data, err := os.ReadFile(filepath.Join(s.dir, city+calendarExt))
	if err != nil {
		if os.IsNotExist(err) {
			return "", ErrNotFound
		}
		return "", fmt.Errorf("reading calendar for %s: %w", city, err)
	}
	return string(data), nil
}

// Cities lists every city with a stored calendar.
func (s *FileStore) Cities() []string {
	s.mu.RLock()
	defer s.mu.RUnlock()

	entries, err := os.ReadDir(s.dir)
	if err != nil {
		return nil
	}

	var cities []string
	for _, e := range entries {
		if e.IsDir() || !strings.HasSuffix(e.Name(), calendarExt) {
			continue
		}
		cities = append(cities, strings.TrimSuffix(e.Name(), calendarExt))
	}
	return cities
}
