package generator

import (
	"context"
	"errors"
	"testing"

	"github.com/literal-gargoyle/sudoku/internal/domain"
	"github.com/literal-gargoyle/sudoku/internal/solver"
)

func TestGenerateUniquePuzzle(t *testing.T) {
	s := solver.NewBacktrackingSolver()
	g := NewUniqueGenerator(s)
	ctx := context.Background()

	p, st, err := g.Generate(ctx, 12345, domain.DefaultClues)
	if err != nil {
		t.Fatalf("Generate failed: %v", err)
	}
	t.Logf("clues=%d removed=%d nodes=%d dur=%v", p.Clues, p.Removed, st.Nodes, st.Duration)

	if got := p.Board.Givens(); got != p.Clues {
		t.Fatalf("Clues=%d but board has %d givens", p.Clues, got)
	}
	if p.Clues+p.Removed != 81 {
		t.Fatalf("clues (%d) + removed (%d) != 81", p.Clues, p.Removed)
	}
	if p.Removed > 81-domain.DefaultClues {
		t.Fatalf("removed %d cells, more than the %d allowed", p.Removed, 81-domain.DefaultClues)
	}

	// every remaining given must be flagged fixed, every hole not
	for r := 0; r < 9; r++ {
		for c := 0; c < 9; c++ {
			if got, want := p.Board.Fixed[r][c], p.Board.Values[r][c] != 0; got != want {
				t.Fatalf("fixed flag at r=%d c=%d is %v, want %v", r, c, got, want)
			}
		}
	}

	unique, _, err := s.Unique(ctx, &p.Board)
	if err != nil {
		t.Fatal(err)
	}
	if !unique {
		t.Fatal("generated puzzle does not have a unique solution")
	}

	// the deterministic solve must land exactly on the carried solution
	solved, _, err := s.Solve(ctx, &p.Board)
	if err != nil {
		t.Fatalf("generated puzzle unsolvable: %v", err)
	}
	if solved.Values != p.Solution {
		t.Fatal("solving the puzzle does not reproduce the paired solution")
	}
}

func TestGenerateReproducibleSeed(t *testing.T) {
	g := NewUniqueGenerator(solver.NewBacktrackingSolver())
	ctx := context.Background()

	a, _, err := g.Generate(ctx, 7, 40)
	if err != nil {
		t.Fatal(err)
	}
	b, _, err := g.Generate(ctx, 7, 40)
	if err != nil {
		t.Fatal(err)
	}
	if a.Board.Values != b.Board.Values || a.Solution != b.Solution {
		t.Fatal("same seed produced different puzzles")
	}
	if a.Seed != 7 {
		t.Fatalf("effective seed not recorded, got %d", a.Seed)
	}
}

func TestGenerateVariesAcrossRuns(t *testing.T) {
	g := NewUniqueGenerator(solver.NewBacktrackingSolver())
	ctx := context.Background()

	a, _, err := g.Generate(ctx, 0, 40)
	if err != nil {
		t.Fatal(err)
	}
	b, _, err := g.Generate(ctx, 0, 40)
	if err != nil {
		t.Fatal(err)
	}
	if a.Board.Values == b.Board.Values {
		t.Fatal("two clock-seeded generations produced cell-for-cell identical puzzles")
	}
}

func TestGenerateRejectsBadClueCount(t *testing.T) {
	g := NewUniqueGenerator(solver.NewBacktrackingSolver())
	for _, clues := range []int{0, 16, 81, 500} {
		if _, _, err := g.Generate(context.Background(), 1, clues); !errors.Is(err, ErrInvalidClues) {
			t.Fatalf("clues=%d: want ErrInvalidClues, got %v", clues, err)
		}
	}
}

func TestGenerateCancellation(t *testing.T) {
	g := NewUniqueGenerator(solver.NewBacktrackingSolver())
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	if _, _, err := g.Generate(ctx, 1, 40); !errors.Is(err, context.Canceled) {
		t.Fatalf("want context.Canceled, got %v", err)
	}
}
