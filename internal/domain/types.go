package domain

// Board holds current values and which cells are fixed givens.
type Board struct {
	Values [9][9]uint8 `json:"board"`
	Fixed  [9][9]bool  `json:"fixed,omitempty"`
}

// CellCoord identifies a cell on the board.
type CellCoord struct {
	Row int `json:"row"`
	Col int `json:"col"`
}

// Givens counts the nonzero cells of the board.
func (b *Board) Givens() int {
	n := 0
	for r := 0; r < 9; r++ {
		for c := 0; c < 9; c++ {
			if b.Values[r][c] != 0 {
				n++
			}
		}
	}
	return n
}

// Puzzle is a generated Sudoku paired with its unique solution.
// The solution is produced once at generation time and carried alongside
// the board; it is never re-derived.
type Puzzle struct {
	ID        string      `json:"id,omitempty"`
	Seed      int64       `json:"seed,omitempty"`
	Clues     int         `json:"clues"`
	Removed   int         `json:"removed"`
	Board     Board       `json:"board"`
	Solution  [9][9]uint8 `json:"solution"`
	CreatedAt int64       `json:"createdAt,omitempty"`
	Name      string      `json:"name,omitempty"`
}

// PuzzleMeta is a lightweight listing entry.
type PuzzleMeta struct {
	ID        string `json:"id"`
	Name      string `json:"name,omitempty"`
	Clues     int    `json:"clues"`
	CreatedAt int64  `json:"createdAt"`
}
