// Package highscore defines the top-10 table and its invariants.
package highscore

import (
	"sort"
	"strings"
)

// Size is the number of entries a table always holds.
const Size = 10

// MaxInitials is the longest initials string stored in a table.
const MaxInitials = 2

// Entry is one row of the high-score table.
type Entry struct {
	Initials string `yaml:"initials"`
	Score    int    `yaml:"score"`
}

// Store loads and saves a high-score table.
type Store interface {
	Load() ([]Entry, error)
	Save([]Entry) error
}

// Blank returns a table of Size zero-score entries with empty initials.
func Blank() []Entry {
	return make([]Entry, Size)
}

// Normalize returns a copy of entries that is exactly Size long, sorted by
// score descending. Ties keep their original order. Initials are trimmed to
// MaxInitials runes and negative scores are clamped to 0.
func Normalize(entries []Entry) []Entry {
	out := make([]Entry, 0, max(len(entries), Size))
	for _, e := range entries {
		out = append(out, Entry{Initials: clip(e.Initials), Score: max(e.Score, 0)})
	}
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].Score > out[j].Score
	})
	for len(out) < Size {
		out = append(out, Entry{})
	}
	return out[:Size]
}

// Min returns the lowest score on the table.
func Min(table []Entry) int {
	t := Normalize(table)
	return t[Size-1].Score
}

// Qualifies reports whether score earns a place on the table.
// A score equal to the current minimum qualifies.
func Qualifies(table []Entry, score int) bool {
	return score >= Min(table)
}

// Insert adds an entry and returns the normalized table together with the
// 0-based rank of the new entry, or -1 when it was truncated away.
// An entry tied with existing scores ranks above them.
func Insert(table []Entry, e Entry) ([]Entry, int) {
	e.Initials = clip(e.Initials)
	rows := make([]Entry, 0, len(table)+1)
	rows = append(rows, e)
	rows = append(rows, table...)
	// e is first, so the stable sort keeps it ahead of equal scores.
	out := Normalize(rows)

	rank := -1
	placed := 0
	for _, r := range rows[1:] {
		if r.Score > e.Score {
			placed++
		}
	}
	if placed < Size {
		rank = placed
	}
	return out, rank
}

// Best returns the top score of the table.
func Best(table []Entry) int {
	if len(table) == 0 {
		return 0
	}
	return Normalize(table)[0].Score
}

func clip(s string) string {
	s = strings.ToUpper(strings.TrimSpace(s))
	r := []rune(s)
	if len(r) > MaxInitials {
		r = r[:MaxInitials]
	}
	return string(r)
}
