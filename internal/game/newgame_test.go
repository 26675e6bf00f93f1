package game

import (
	"context"
	"math/rand"
	"testing"

	"github.com/literal-gargoyle/sudoku/internal/generator"
	"github.com/literal-gargoyle/sudoku/internal/solver"
)

func TestNewGameResetsState(t *testing.T) {
	gen := generator.NewUniqueGenerator(solver.NewBacktrackingSolver())
	s := New(testPuzzle(t), DefaultSettings(), rand.New(rand.NewSource(3)), gen)

	s.Place(holes[0][0], holes[0][1], 2)
	s.Hint()
	if s.Moves() == 0 || s.HistoryLen() == 0 {
		t.Fatal("fixture: expected a dirty session before NewGame")
	}

	if err := s.NewGame(context.Background(), 40); err != nil {
		t.Fatalf("NewGame failed: %v", err)
	}
	if s.Moves() != 0 {
		t.Fatalf("moves = %d after NewGame, want 0", s.Moves())
	}
	if s.HistoryLen() != 0 {
		t.Fatalf("history has %d entries after NewGame, want 0", s.HistoryLen())
	}
	if s.Status() != "" {
		t.Fatalf("status %q survived NewGame", s.Status())
	}

	// cell flags must mirror the new puzzle's givens
	p := s.Puzzle()
	for r := 0; r < 9; r++ {
		for c := 0; c < 9; c++ {
			cell := s.Cell(r, c)
			if cell.Value != p.Board.Values[r][c] {
				t.Fatalf("cell (%d,%d) = %d, puzzle has %d", r, c, cell.Value, p.Board.Values[r][c])
			}
			if cell.Fixed != (cell.Value != 0) {
				t.Fatalf("fixed flag wrong at (%d,%d)", r, c)
			}
			if cell.Pencil != 0 {
				t.Fatalf("stale pencil at (%d,%d)", r, c)
			}
		}
	}
}
