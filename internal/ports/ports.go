package ports

import (
	"context"
	"math/rand"
	"time"

	"github.com/literal-gargoyle/sudoku/internal/domain"
)

// Stats captures performance characteristics of an operation.
type Stats struct {
	Nodes    int
	Duration time.Duration
}

// Solver runs the backtracking search in its three modes: deterministic
// solve, randomized fill, and solution counting.
type Solver interface {
	Solve(ctx context.Context, b *domain.Board) (*domain.Board, Stats, error)
	Fill(ctx context.Context, rng *rand.Rand, b *domain.Board) (*domain.Board, Stats, error)
	Unique(ctx context.Context, b *domain.Board) (bool, Stats, error)
}

// Generator creates new puzzles with a unique solution.
// A seed of 0 means "derive from the clock"; the effective seed is recorded
// on the returned puzzle so runs can be reproduced.
type Generator interface {
	Generate(ctx context.Context, seed int64, targetClues int) (*domain.Puzzle, Stats, error)
}

// Validator performs fast constraint checks (row/col/box).
type Validator interface {
	Validate(ctx context.Context, b *domain.Board) (ok bool, conflicts []domain.CellCoord, err error)
}

// Storage persists and retrieves puzzles as JSON.
type Storage interface {
	Save(ctx context.Context, p *domain.Puzzle) error
	Load(ctx context.Context, id string) (*domain.Puzzle, error)
	List(ctx context.Context) ([]domain.PuzzleMeta, error)
}
