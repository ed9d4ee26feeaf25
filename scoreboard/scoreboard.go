// @lixen: #dev{feature[scoreboard(scoreboard,httpapi,cmd)]}
package scoreboard

import (
	"cmp"
	"context"
	"errors"
	"fmt"
	"slices"
	"strings"

	"github.com/lixenwraith/puyo/constants"
)

// ErrInvalidName is returned for names that cannot be stored
var ErrInvalidName = errors.New("invalid player name")

// Entry is one recorded session
type Entry struct {
	Name  string `json:"name"`
	Score int    `json:"score"`
}

// Store persists entries
// Load returns entries sorted by score, highest first, ties in insertion order
type Store interface {
	Load(ctx context.Context) ([]Entry, error)
	Save(ctx context.Context, e Entry) error
	Close() error
}

// Open creates the store for driver at path
func Open(driver, path string, opts ...Option) (Store, error) {
	switch driver {
	case "text", "":
		return NewFileStore(path, opts...), nil
	case "sqlite":
		return NewSQLiteStore(path, opts...)
	default:
		return nil, fmt.Errorf("unknown scoreboard driver %q", driver)
	}
}

// Sort orders entries by score descending; equal scores keep their order
func Sort(entries []Entry) {
	slices.SortStableFunc(entries, func(a, b Entry) int {
		return cmp.Compare(b.Score, a.Score)
	})
}

// Top returns at most n leading entries
func Top(entries []Entry, n int) []Entry {
	if n < 0 || n >= len(entries) {
		return entries
	}
	return entries[:n]
}

// HighScore returns the best score, zero for an empty board
func HighScore(entries []Entry) int {
	best := 0
	for _, e := range entries {
		best = max(best, e.Score)
	}
	return best
}

// AcceptsRune reports whether r may be typed into a name
func AcceptsRune(r rune) bool {
	return r >= 0x20 && r <= 0x7e
}

// NormalizeName validates a typed name for storage
// Names are 1..MaxNameLength printable ASCII characters; inner spaces become
// underscores so the text format stays one token per field
func NormalizeName(name string) (string, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return "", fmt.Errorf("%w: empty", ErrInvalidName)
	}
	if len(name) > constants.MaxNameLength {
		return "", fmt.Errorf("%w: longer than %d characters", ErrInvalidName, constants.MaxNameLength)
	}
	var sb strings.Builder
	for _, r := range name {
		if !AcceptsRune(r) {
			return "", fmt.Errorf("%w: character %q", ErrInvalidName, r)
		}
		if r == ' ' {
			r = '_'
		}
		sb.WriteRune(r)
	}
	return sb.String(), nil
}

// NewEntry builds a validated entry
func NewEntry(name string, score int) (Entry, error) {
	n, err := NormalizeName(name)
	if err != nil {
		return Entry{}, err
	}
	if score < 0 {
		return Entry{}, fmt.Errorf("negative score %d", score)
	}
	return Entry{Name: n, Score: score}, nil
}
