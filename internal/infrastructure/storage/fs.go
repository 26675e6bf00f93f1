package storage

import (
	"context"
	"encoding/json"
	"errors"
	"os"
	"path/filepath"
	"strings"

	"github.com/google/uuid"

	"github.com/literal-gargoyle/sudoku/internal/domain"
)

// FS stores puzzles as pretty-printed JSON under dir/{difficulty}/{id}.json,
// with the difficulty bucket derived from the clue count.
type FS struct{ dir string }

func NewFS(dir string) *FS { return &FS{dir: dir} }

func (s *FS) pathFor(p *domain.Puzzle) string {
	sub := domain.DifficultyForClues(p.Clues).String()
	return filepath.Join(s.dir, sub, strings.TrimSpace(p.ID)+".json")
}

// Save writes the puzzle, assigning a fresh ID when it has none.
func (s *FS) Save(ctx context.Context, p *domain.Puzzle) error {
	if p == nil {
		return errors.New("invalid puzzle: nil")
	}
	if p.ID == "" {
		p.ID = uuid.NewString()
	}
	target := s.pathFor(p)
	if err := os.MkdirAll(filepath.Dir(target), 0o755); err != nil {
		return err
	}
	f, err := os.Create(target)
	if err != nil {
		return err
	}
	defer f.Close()
	enc := json.NewEncoder(f)
	enc.SetIndent("", "  ")
	return enc.Encode(p)
}

func buckets() []string {
	return []string{
		domain.Easy.String(),
		domain.Medium.String(),
		domain.Hard.String(),
		domain.Expert.String(),
	}
}

// Load finds a puzzle by ID across the difficulty buckets.
func (s *FS) Load(ctx context.Context, id string) (*domain.Puzzle, error) {
	for _, sub := range buckets() {
		path := filepath.Join(s.dir, sub, id+".json")
		data, err := os.ReadFile(path)
		if err != nil {
			if os.IsNotExist(err) {
				continue
			}
			return nil, err
		}
		var out domain.Puzzle
		if err := json.Unmarshal(data, &out); err != nil {
			return nil, err
		}
		return &out, nil
	}
	return nil, os.ErrNotExist
}

// List scans all buckets and returns lightweight metadata entries.
func (s *FS) List(ctx context.Context) ([]domain.PuzzleMeta, error) {
	var out []domain.PuzzleMeta
	for _, sub := range buckets() {
		dir := filepath.Join(s.dir, sub)
		ents, err := os.ReadDir(dir)
		if err != nil {
			if os.IsNotExist(err) {
				continue
			}
			return nil, err
		}
		for _, e := range ents {
			if e.IsDir() || !strings.HasSuffix(e.Name(), ".json") {
				continue
			}
			data, err := os.ReadFile(filepath.Join(dir, e.Name()))
			if err != nil {
				continue
			}
			var m domain.PuzzleMeta
			if err := json.Unmarshal(data, &m); err != nil || m.ID == "" {
				continue
			}
			out = append(out, m)
		}
	}
	return out, nil
}
