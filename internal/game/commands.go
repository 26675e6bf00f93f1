package game

import (
	"errors"
	"fmt"
)

var errNoGenerator = errors.New("game: session has no generator wired")

func inBounds(r, c int) bool { return r >= 0 && r < 9 && c >= 0 && c < 9 }

func (s *Session) pushUndo() {
	s.history.push(snapshot{cells: s.cells, moves: s.moves})
}

// Place writes digit (1..9) into a non-fixed cell. A fixed or out-of-range
// target is a silent no-op: commands are total, never errors.
func (s *Session) Place(r, c int, digit uint8) {
	if !inBounds(r, c) || digit < 1 || digit > 9 {
		return
	}
	cell := &s.cells[r][c]
	if cell.Fixed {
		return
	}
	s.pushUndo()
	cell.Value = digit
	cell.Pencil = 0
	s.moves++
}

// Clear empties a non-fixed, non-empty cell.
func (s *Session) Clear(r, c int) {
	if !inBounds(r, c) {
		return
	}
	cell := &s.cells[r][c]
	if cell.Fixed || cell.Value == 0 {
		return
	}
	s.pushUndo()
	cell.Value = 0
	cell.Pencil = 0
	s.moves++
}

// CommitPencil promotes a pending pencil digit into the cell's value.
func (s *Session) CommitPencil(r, c int) {
	if !inBounds(r, c) {
		return
	}
	cell := &s.cells[r][c]
	if cell.Fixed || cell.Pencil == 0 {
		return
	}
	s.pushUndo()
	cell.Value = cell.Pencil
	cell.Pencil = 0
	s.moves++
}

// Hint picks one empty, non-fixed cell uniformly at random and pencils in
// the solution's digit there. It is informational only: no undo snapshot,
// no move counted, Value untouched. The chosen coordinate is returned so
// the UI can move its cursor; ok is false when hints are disabled or the
// grid has no empty cell, with the reason in the status line.
func (s *Session) Hint() (r, c int, ok bool) {
	if !s.settings.ShowHints {
		s.status = "Hints are disabled in Settings."
		return 0, 0, false
	}
	var open [][2]int
	for r := 0; r < 9; r++ {
		for c := 0; c < 9; c++ {
			if !s.cells[r][c].Fixed && s.cells[r][c].Value == 0 {
				open = append(open, [2]int{r, c})
			}
		}
	}
	if len(open) == 0 {
		s.status = "No hints: puzzle already complete!"
		return 0, 0, false
	}
	pick := open[s.rng.Intn(len(open))]
	r, c = pick[0], pick[1]
	s.cells[r][c].Pencil = s.puzzle.Solution[r][c]
	s.status = fmt.Sprintf("Hint: try %d at (%d,%d)", s.cells[r][c].Pencil, r+1, c+1)
	return r, c, true
}

// Undo restores the most recent snapshot; with empty history it does
// nothing. The start-time anchor is kept as-is.
func (s *Session) Undo() {
	snap, ok := s.history.pop()
	if !ok {
		return
	}
	s.cells = snap.cells
	s.moves = snap.moves
}

// HistoryLen reports how many undo snapshots are held.
func (s *Session) HistoryLen() int { return s.history.len() }
