package generator

import (
	"context"
	"math/rand"
	"time"

	"github.com/literal-gargoyle/sudoku/internal/domain"
	"github.com/literal-gargoyle/sudoku/internal/ports"
)

// Generate creates a puzzle with a unique solution. seed 0 derives a seed
// from the clock; the effective seed is recorded on the puzzle.
//
// The carve is a single pass over all 81 coordinates in shuffled order:
// each cell is tentatively blanked and kept blank only while the puzzle
// still has exactly one solution. The pass stops once 81-targetClues cells
// are gone; if the coordinates exhaust first the puzzle simply keeps more
// clues than asked for (surfaced via Removed, not an error). There is no
// carve deadline: low clue targets just take longer.
func (g *UniqueGenerator) Generate(ctx context.Context, seed int64, targetClues int) (*domain.Puzzle, ports.Stats, error) {
	if targetClues < MinValidClues || targetClues > MaxValidClues {
		return nil, ports.Stats{}, ErrInvalidClues
	}
	start := time.Now()
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	rng := rand.New(rand.NewSource(seed))

	// 1) full random solution
	full, st, err := g.Solver.Fill(ctx, rng, &domain.Board{})
	if err != nil {
		if ctx.Err() != nil {
			return nil, ports.Stats{Nodes: st.Nodes, Duration: time.Since(start)}, ctx.Err()
		}
		return nil, ports.Stats{Nodes: st.Nodes, Duration: time.Since(start)}, ErrFillFailed
	}
	nodes := st.Nodes

	// 2) carve out cells while preserving uniqueness
	puz := full.Values
	fixed := [9][9]bool{}
	for r := 0; r < 9; r++ {
		for c := 0; c < 9; c++ {
			fixed[r][c] = true
		}
	}
	positions := rng.Perm(81)

	toRemove := 81 - targetClues
	removed := 0
	for _, pos := range positions {
		if removed >= toRemove {
			break
		}
		if ctx.Err() != nil {
			return nil, ports.Stats{Nodes: nodes, Duration: time.Since(start)}, ctx.Err()
		}
		r, c := pos/9, pos%9
		old := puz[r][c]
		puz[r][c] = 0
		unique, st, _ := g.Solver.Unique(ctx, &domain.Board{Values: puz})
		nodes += st.Nodes
		if !unique {
			// revert
			puz[r][c] = old
			continue
		}
		fixed[r][c] = false
		removed++
	}

	p := &domain.Puzzle{
		Seed:      seed,
		Clues:     81 - removed,
		Removed:   removed,
		Board:     domain.Board{Values: puz, Fixed: fixed},
		Solution:  full.Values,
		CreatedAt: time.Now().UnixNano(),
	}
	return p, ports.Stats{Nodes: nodes, Duration: time.Since(start)}, nil
}
