package scoreboard

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"sync"

	"github.com/rs/zerolog"
)

// FileStore keeps entries in a text file, one "name score" line each
type FileStore struct {
	mu     sync.Mutex
	path   string
	logger zerolog.Logger
}

// NewFileStore returns a store backed by path; the file is created on first load
func NewFileStore(path string, opts ...Option) *FileStore {
	o := buildOptions(opts)
	return &FileStore{path: path, logger: o.logger}
}

// Path returns the backing file
func (s *FileStore) Path() string {
	return s.path
}

// Load reads and sorts all entries, creating an empty file when none exists
// Malformed lines are skipped
func (s *FileStore) Load(ctx context.Context) ([]Entry, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.load(ctx)
}

func (s *FileStore) load(ctx context.Context) ([]Entry, error) {
	f, err := os.Open(s.path)
	if errors.Is(err, fs.ErrNotExist) {
		if err := s.create(); err != nil {
			return nil, err
		}
		return []Entry{}, nil
	}
	if err != nil {
		return nil, fmt.Errorf("open scoreboard: %w", err)
	}
	defer f.Close()

	entries := []Entry{}
	sc := bufio.NewScanner(f)
	line := 0
	for sc.Scan() {
		line++
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		text := strings.TrimSpace(sc.Text())
		if text == "" {
			continue
		}
		e, err := parseLine(text)
		if err != nil {
			s.logger.Warn().Str("path", s.path).Int("line", line).Err(err).Msg("skipping scoreboard line")
			continue
		}
		entries = append(entries, e)
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("read scoreboard: %w", err)
	}

	Sort(entries)
	return entries, nil
}

func parseLine(text string) (Entry, error) {
	fields := strings.Fields(text)
	if len(fields) != 2 {
		return Entry{}, fmt.Errorf("expected 2 fields, got %d", len(fields))
	}
	score, err := strconv.Atoi(fields[1])
	if err != nil {
		return Entry{}, fmt.Errorf("score: %w", err)
	}
	return Entry{Name: fields[0], Score: score}, nil
}

func (s *FileStore) create() error {
	if dir := filepath.Dir(s.path); dir != "." && dir != "" {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("mkdir %s: %w", dir, err)
		}
	}
	f, err := os.OpenFile(s.path, os.O_CREATE|os.O_WRONLY, 0o644)
	if err != nil {
		return fmt.Errorf("create scoreboard: %w", err)
	}
	s.logger.Info().Str("path", s.path).Msg("created scoreboard")
	return f.Close()
}

// Save adds e and rewrites the file sorted
func (s *FileStore) Save(ctx context.Context, e Entry) error {
	e, err := NewEntry(e.Name, e.Score)
	if err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	entries, err := s.load(ctx)
	if err != nil {
		return err
	}
	entries = append(entries, e)
	Sort(entries)

	var sb strings.Builder
	for _, en := range entries {
		fmt.Fprintf(&sb, "%s %d\n", en.Name, en.Score)
	}

	// Atomic replace
	tmp := s.path + ".tmp"
	if err := os.WriteFile(tmp, []byte(sb.String()), 0o644); err != nil {
		return fmt.Errorf("write scoreboard: %w", err)
	}
	if err := os.Rename(tmp, s.path); err != nil {
		return fmt.Errorf("replace scoreboard: %w", err)
	}
	s.logger.Info().Str("name", e.Name).Int("score", e.Score).Msg("score saved")
	return nil
}

// Close is a no-op; the file is opened per operation
func (s *FileStore) Close() error {
	return nil
}
