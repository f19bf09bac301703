package storage

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sync"

	"gopkg.in/yaml.v3"

	"github.com/vovakirdan/tui-asteroids/internal/highscore"
)

// FileStore keeps the high-score table in a YAML file.
// It is safe for concurrent use within one process.
type FileStore struct {
	mu   sync.Mutex
	path string
}

type fileDoc struct {
	Highscores []highscore.Entry `yaml:"highscores"`
}

// OpenFile returns a store backed by the YAML file at path.
// The file is created on the first Save.
func OpenFile(path string) *FileStore {
	return &FileStore{path: path}
}

// Path returns the file location.
func (f *FileStore) Path() string {
	return f.path
}

// Load reads the table. A missing file yields a blank table.
func (f *FileStore) Load() ([]highscore.Entry, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	data, err := os.ReadFile(f.path)
	if errors.Is(err, fs.ErrNotExist) {
		return highscore.Blank(), nil
	}
	if err != nil {
		return nil, fmt.Errorf("storage: read %s: %w", f.path, err)
	}

	var doc fileDoc
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("storage: parse %s: %w", f.path, err)
	}
	return highscore.Normalize(doc.Highscores), nil
}

// Save writes the table through a temp file and rename so readers never
// see a partial file.
func (f *FileStore) Save(entries []highscore.Entry) error {
	f.mu.Lock()
	defer f.mu.Unlock()

	data, err := yaml.Marshal(fileDoc{Highscores: highscore.Normalize(entries)})
	if err != nil {
		return fmt.Errorf("storage: marshal highscores: %w", err)
	}

	tmp, err := os.CreateTemp(filepath.Dir(f.path), ".highscores-*.yaml")
	if err != nil {
		return fmt.Errorf("storage: create temp file: %w", err)
	}
	defer os.Remove(tmp.Name()) //nolint:errcheck

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		return fmt.Errorf("storage: write %s: %w", tmp.Name(), err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("storage: close %s: %w", tmp.Name(), err)
	}
	if err := os.Rename(tmp.Name(), f.path); err != nil {
		return fmt.Errorf("storage: replace %s: %w", f.path, err)
	}
	return nil
}

// RecordGame is a no-op; the file store keeps only the table.
func (f *FileStore) RecordGame(GameRecord) error {
	return nil
}

// Stats is not supported by the file store.
func (f *FileStore) Stats() (*GameStats, error) {
	return nil, ErrNoHistory
}

// Close is a no-op.
func (f *FileStore) Close() error {
	return nil
}

var _ Backend = (*FileStore)(nil)
