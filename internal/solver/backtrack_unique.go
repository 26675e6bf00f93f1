package solver

import (
	"context"
	"time"

	"github.com/literal-gargoyle/sudoku/internal/domain"
	"github.com/literal-gargoyle/sudoku/internal/ports"
)

// Unique counts completions of the board up to 2 and reports whether
// exactly one exists. Same cell and candidate order as Solve, but every
// legal digit is tried even after a completion is found; the search stops
// the moment a second completion is confirmed.
func (s *BacktrackingSolver) Unique(ctx context.Context, b *domain.Board) (bool, ports.Stats, error) {
	start := time.Now()
	grid := b.Values
	nodes := 0
	count := 0

	var dfs func() bool
	dfs = func() bool {
		if ctx.Err() != nil || count >= 2 {
			return true // stop early
		}
		r, c, ok := findEmpty(&grid)
		if !ok {
			count++
			return count >= 2
		}
		for _, v := range ascending {
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
	_ = dfs()
	if err := ctx.Err(); err != nil {
		return false, ports.Stats{Nodes: nodes, Duration: time.Since(start)}, err
	}
	return count == 1, ports.Stats{Nodes: nodes, Duration: time.Since(start)}, nil
}
