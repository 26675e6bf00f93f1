package generator

import (
	"errors"

	"github.com/literal-gargoyle/sudoku/internal/ports"
)

const (
	MinValidClues = 17
	MaxValidClues = 80
)

var (
	// ErrFillFailed means the initial randomized solve of an empty grid
	// failed. That cannot happen for standard 9x9 rules, so it indicates a
	// defect rather than a recoverable condition.
	ErrFillFailed = errors.New("generator: randomized fill of empty grid failed")

	ErrInvalidClues = errors.New("generator: clue count must be between 17 and 80")
)

// UniqueGenerator creates puzzles with a unique solution using a provided
// Solver for the randomized fill and for uniqueness re-checks.
type UniqueGenerator struct {
	Solver ports.Solver
}

// NewUniqueGenerator wires a generator that uses the given solver.
func NewUniqueGenerator(s ports.Solver) *UniqueGenerator {
	return &UniqueGenerator{Solver: s}
}
