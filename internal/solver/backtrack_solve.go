package solver

import (
	"context"
	"errors"
	"math/rand"
	"time"

	"github.com/literal-gargoyle/sudoku/internal/domain"
	"github.com/literal-gargoyle/sudoku/internal/ports"
)

var ErrNoSolution = errors.New("no solution")

// Solve completes the board with deterministic ascending candidate order.
// The input board is not mutated; the solved copy is returned.
func (s *BacktrackingSolver) Solve(ctx context.Context, b *domain.Board) (*domain.Board, ports.Stats, error) {
	return s.search(ctx, b, nil)
}

// Fill completes the board trying candidates in an order shuffled by rng.
// Generation calls this on an empty board to draw a varied full solution.
func (s *BacktrackingSolver) Fill(ctx context.Context, rng *rand.Rand, b *domain.Board) (*domain.Board, ports.Stats, error) {
	return s.search(ctx, b, rng)
}

// search is the single backtracking engine behind both modes. rng == nil
// selects ascending order.
func (s *BacktrackingSolver) search(ctx context.Context, b *domain.Board, rng *rand.Rand) (*domain.Board, ports.Stats, error) {
	start := time.Now()
	grid := b.Values
	nodes := 0
	var dfs func() bool
	dfs = func() bool {
		if ctx.Err() != nil {
			return false
		}
		r, c, ok := findEmpty(&grid)
		if !ok {
			return true
		}
		nums := ascending
		if rng != nil {
			nums = shuffled(rng)
		}
		for _, v := range nums {
			nodes++
			if legal(&grid, r, c, v) {
				grid[r][c] = v
				if dfs() {
					return true
				}
				grid[r][c] = 0
			}
		}
		return false
	}
	if !dfs() {
		if err := ctx.Err(); err != nil {
			return nil, ports.Stats{Nodes: nodes, Duration: time.Since(start)}, err
		}
		return nil, ports.Stats{Nodes: nodes, Duration: time.Since(start)}, ErrNoSolution
	}
	out := &domain.Board{Values: grid, Fixed: b.Fixed}
	return out, ports.Stats{Nodes: nodes, Duration: time.Since(start)}, nil
}
