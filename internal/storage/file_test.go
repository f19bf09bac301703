package storage

import (
	"errors"
	"os"
	"path/filepath"
	"sync"
	"testing"

	"github.com/vovakirdan/tui-asteroids/internal/highscore"
)

func TestOpenSelectsFileStore(t *testing.T) {
	for _, name := range []string{"scores.yaml", "scores.YML"} {
		store, err := Open(filepath.Join(t.TempDir(), name))
		if err != nil {
			t.Fatalf("Open(%q) failed: %v", name, err)
		}
		if _, ok := store.(*FileStore); !ok {
			t.Errorf("Open(%q) returned %T, expected *FileStore", name, store)
		}
		store.Close()
	}
}

func TestFileStoreMissingFile(t *testing.T) {
	store := OpenFile(filepath.Join(t.TempDir(), "none.yaml"))

	table, err := store.Load()
	if err != nil {
		t.Fatalf("Load() failed: %v", err)
	}
	if len(table) != highscore.Size {
		t.Errorf("Expected blank table of %d, got %d", highscore.Size, len(table))
	}
}

func TestFileStoreRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "scores.yaml")
	store := OpenFile(path)

	table, _ := highscore.Insert(highscore.Blank(), highscore.Entry{Initials: "QX", Score: 1200})
	if err := store.Save(table); err != nil {
		t.Fatalf("Save() failed: %v", err)
	}

	reopened := OpenFile(path)
	got, err := reopened.Load()
	if err != nil {
		t.Fatalf("Load() failed: %v", err)
	}
	if got[0] != (highscore.Entry{Initials: "QX", Score: 1200}) {
		t.Errorf("Expected QX 1200 first, got %+v", got[0])
	}
	if len(got) != highscore.Size {
		t.Errorf("Expected %d entries, got %d", highscore.Size, len(got))
	}

	// No temp files left behind.
	files, _ := os.ReadDir(filepath.Dir(path))
	if len(files) != 1 {
		t.Errorf("Expected only the store file, found %d entries", len(files))
	}
}

func TestFileStoreCorrupt(t *testing.T) {
	path := filepath.Join(t.TempDir(), "scores.yaml")
	if err := os.WriteFile(path, []byte("highscores: {not: [a list"), 0o644); err != nil {
		t.Fatal(err)
	}

	store := OpenFile(path)
	if _, err := store.Load(); err == nil {
		t.Error("Expected error for corrupt file")
	}

	table, err := LoadOrBlank(store)
	if err == nil {
		t.Error("LoadOrBlank should surface the error")
	}
	if len(table) != highscore.Size {
		t.Errorf("LoadOrBlank should fall back to a blank table, got %d entries", len(table))
	}
}

func TestFileStoreNoHistory(t *testing.T) {
	store := OpenFile(filepath.Join(t.TempDir(), "scores.yaml"))
	if err := store.RecordGame(GameRecord{Score: 10}); err != nil {
		t.Errorf("RecordGame() should be a no-op, got %v", err)
	}
	if _, err := store.Stats(); !errors.Is(err, ErrNoHistory) {
		t.Errorf("Stats() error = %v, expected ErrNoHistory", err)
	}
}

func TestFileStoreConcurrentSaves(t *testing.T) {
	path := filepath.Join(t.TempDir(), "scores.yaml")
	store := OpenFile(path)

	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func(score int) {
			defer wg.Done()
			if err := store.Save([]highscore.Entry{{Initials: "C", Score: score}}); err != nil {
				t.Errorf("Save() failed: %v", err)
			}
		}(i * 100)
	}
	wg.Wait()

	got, err := store.Load()
	if err != nil {
		t.Fatalf("Load() after concurrent saves failed: %v", err)
	}
	if len(got) != highscore.Size {
		t.Errorf("Expected %d entries, got %d", highscore.Size, len(got))
	}
}
