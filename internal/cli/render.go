package cli

import (
	"fmt"
	"strings"

	"github.com/literal-gargoyle/sudoku/internal/game"
)

// formatGrid renders a bare value grid with box separators.
func formatGrid(values [9][9]uint8) string {
	var sb strings.Builder
	for r := 0; r < 9; r++ {
		if r > 0 && r%3 == 0 {
			sb.WriteString("------+-------+------\n")
		}
		for c := 0; c < 9; c++ {
			if c > 0 && c%3 == 0 {
				sb.WriteString("| ")
			}
			v := values[r][c]
			if v == 0 {
				sb.WriteString(". ")
			} else {
				fmt.Fprintf(&sb, "%d ", v)
			}
		}
		sb.WriteString("\n")
	}
	return sb.String()
}

// formatSession renders the live grid plus the stats line. Empty cells
// holding a pencil digit show it with a trailing '?'.
func formatSession(v game.View) string {
	var sb strings.Builder
	for r := 0; r < 9; r++ {
		if r > 0 && r%3 == 0 {
			sb.WriteString("------+-------+------\n")
		}
		for c := 0; c < 9; c++ {
			if c > 0 && c%3 == 0 {
				sb.WriteString("| ")
			}
			cell := v.Cells[r][c]
			switch {
			case cell.Value != 0:
				fmt.Fprintf(&sb, "%d ", cell.Value)
			case cell.Pencil != 0:
				fmt.Fprintf(&sb, "%d?", cell.Pencil)
			default:
				sb.WriteString(". ")
			}
		}
		sb.WriteString("\n")
	}
	mins, secs := v.ElapsedS/60, v.ElapsedS%60
	fmt.Fprintf(&sb, "Time %02d:%02d  Moves %d\n", mins, secs, v.Moves)
	if v.Status != "" {
		sb.WriteString(v.Status + "\n")
	}
	if v.Complete {
		sb.WriteString("SUDOKU SOLVED! Type 'new' for a new game.\n")
	}
	return sb.String()
}
