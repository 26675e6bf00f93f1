package solver

import (
	"math/rand"

	"github.com/literal-gargoyle/sudoku/internal/validator"
)

// BacktrackingSolver is a straightforward recursive solver. Solve, Fill and
// Unique (in the other files of this package) all run the same depth-first
// search and differ only in candidate ordering and stop condition, so the
// two modes cannot drift apart.
type BacktrackingSolver struct{}

func NewBacktrackingSolver() *BacktrackingSolver { return &BacktrackingSolver{} }

func findEmpty(b *[9][9]uint8) (int, int, bool) {
	for r := 0; r < 9; r++ {
		for c := 0; c < 9; c++ {
			if b[r][c] == 0 {
				return r, c, true
			}
		}
	}
	return 0, 0, false
}

// ascending is the deterministic candidate order shared by Solve and Unique.
var ascending = [9]uint8{1, 2, 3, 4, 5, 6, 7, 8, 9}

// shuffled returns a fresh random permutation of 1..9. A new permutation is
// drawn per cell so repeated fills do not degenerate into the same grid.
func shuffled(rng *rand.Rand) [9]uint8 {
	nums := ascending
	rng.Shuffle(9, func(i, j int) { nums[i], nums[j] = nums[j], nums[i] })
	return nums
}

func legal(b *[9][9]uint8, r, c int, v uint8) bool {
	return validator.Legal(b, r, c, v)
}
