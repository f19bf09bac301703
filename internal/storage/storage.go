// Package storage persists the high-score table and the game history.
// A path ending in .yaml or .yml selects a plain YAML file; any other path
// is opened as a SQLite database through the pure-Go modernc.org/sqlite driver.
package storage

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/vovakirdan/tui-asteroids/internal/highscore"
)

// GameID identifies asteroids rows in a database shared with other games.
const GameID = "asteroids"

// DefaultPath is the store used when no --db flag is given.
const DefaultPath = "~/.asteroids/asteroids.db"

// ErrNoHistory is returned by backends that keep no game history.
var ErrNoHistory = errors.New("storage: game history not supported by this store")

// Backend is a high-score store with an optional game history.
type Backend interface {
	highscore.Store
	RecordGame(GameRecord) error
	Stats() (*GameStats, error)
	Close() error
}

// GameRecord is one finished game.
type GameRecord struct {
	Initials  string
	Score     int
	Level     int
	CreatedAt time.Time
}

// GameStats contains aggregated statistics over finished games.
type GameStats struct {
	GameID     string
	GamesCount int
	HighScore  int
	AvgScore   float64
	TotalScore int64
	BestLevel  int
	LastPlayed time.Time
}

// Open opens the store at path, creating parent directories as needed.
func Open(path string) (Backend, error) {
	path, err := expandPath(path)
	if err != nil {
		return nil, err
	}

	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("storage: cannot create directory %s: %w", dir, err)
	}

	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return OpenFile(path), nil
	default:
		db, err := OpenSQLite(path)
		if err != nil {
			return nil, err
		}
		return db, nil
	}
}

// LoadOrBlank loads the table, falling back to a blank one on any error.
// The error is still returned so the caller can log it.
func LoadOrBlank(s highscore.Store) ([]highscore.Entry, error) {
	if s == nil {
		return highscore.Blank(), nil
	}
	entries, err := s.Load()
	if err != nil {
		return highscore.Blank(), err
	}
	return highscore.Normalize(entries), nil
}

// expandPath expands a leading ~ to the user's home directory.
func expandPath(path string) (string, error) {
	if path == "" {
		path = DefaultPath
	}
	if path[0] != '~' {
		return path, nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("storage: cannot expand home directory: %w", err)
	}
	return filepath.Join(home, path[1:]), nil
}

func parseTime(v any) time.Time {
	switch t := v.(type) {
	case time.Time:
		return t
	case string:
		for _, layout := range []string{"2006-01-02 15:04:05", time.RFC3339Nano} {
			if parsed, err := time.Parse(layout, t); err == nil {
				return parsed
			}
		}
	}
	return time.Time{}
}
