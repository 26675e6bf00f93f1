package cli

import (
	"bufio"
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/literal-gargoyle/sudoku/internal/domain"
	"github.com/literal-gargoyle/sudoku/internal/game"
)

var (
	playClues int
	noHints   bool
	loadID    string
)

func init() {
	playCmd := &cobra.Command{
		Use:   "play",
		Short: "Play an interactive game on stdin/stdout",
		Long: `Play a game. Rows and columns are 1-based. Commands:

  place <row> <col> <digit>   enter a digit
  clear <row> <col>           empty a cell
  commit <row> <col>          commit a pencilled hint digit
  hint                        pencil the solution digit into a random cell
  undo                        revert the last edit
  new [clues]                 start a new game
  show                        redraw the grid
  quit`,
		RunE: runPlay,
	}
	playCmd.Flags().IntVar(&playClues, "clues", domain.DefaultClues, "Target clue count for new games")
	playCmd.Flags().BoolVar(&noHints, "no-hints", false, "Disable the hint command")
	playCmd.Flags().StringVar(&loadID, "load", "", "Start from a saved puzzle ID instead of generating")
	rootCmd.AddCommand(playCmd)
}

func runPlay(cmd *cobra.Command, args []string) error {
	svc := newService()
	ctx := cmd.Context()

	var p *domain.Puzzle
	var err error
	if loadID != "" {
		p, err = svc.Load(ctx, loadID)
		if err != nil {
			return fmt.Errorf("failed to load puzzle %q: %w", loadID, err)
		}
	} else {
		p, _, err = svc.Generate(ctx, 0, playClues)
		if err != nil {
			return fmt.Errorf("generation failed: %w", err)
		}
	}

	settings := game.DefaultSettings()
	settings.ShowHints = !noHints
	sess := game.New(p, settings, nil, svc.Generator)

	out := cmd.OutOrStdout()
	fmt.Fprint(out, formatSession(sess.Snapshot()))

	scanner := bufio.NewScanner(cmd.InOrStdin())
	for {
		fmt.Fprint(out, "sudoku> ")
		if !scanner.Scan() {
			return scanner.Err()
		}
		fields := strings.Fields(strings.ToLower(scanner.Text()))
		if len(fields) == 0 {
			continue
		}
		switch fields[0] {
		case "quit", "exit", "q":
			return nil
		case "place", "p":
			r, c, v, ok := parseCoordDigit(fields[1:])
			if !ok {
				fmt.Fprintln(out, "usage: place <row 1-9> <col 1-9> <digit 1-9>")
				continue
			}
			sess.Place(r, c, v)
		case "clear", "c":
			r, c, ok := parseCoord(fields[1:])
			if !ok {
				fmt.Fprintln(out, "usage: clear <row 1-9> <col 1-9>")
				continue
			}
			sess.Clear(r, c)
		case "commit", "fill":
			r, c, ok := parseCoord(fields[1:])
			if !ok {
				fmt.Fprintln(out, "usage: commit <row 1-9> <col 1-9>")
				continue
			}
			sess.CommitPencil(r, c)
		case "hint", "h":
			sess.Hint()
		case "undo", "u":
			sess.Undo()
		case "new", "n":
			clues := playClues
			if len(fields) > 1 {
				if v, err := strconv.Atoi(fields[1]); err == nil {
					clues = v
				}
			}
			if err := sess.NewGame(ctx, clues); err != nil {
				return fmt.Errorf("new game failed: %w", err)
			}
		case "show", "s":
			// nothing to do; every command redraws below
		default:
			fmt.Fprintf(out, "unknown command %q (try: place, clear, commit, hint, undo, new, show, quit)\n", fields[0])
			continue
		}
		fmt.Fprint(out, formatSession(sess.Snapshot()))
	}
}

// parseCoord reads 1-based "row col" arguments.
func parseCoord(args []string) (r, c int, ok bool) {
	if len(args) != 2 {
		return 0, 0, false
	}
	r, err1 := strconv.Atoi(args[0])
	c, err2 := strconv.Atoi(args[1])
	if err1 != nil || err2 != nil || r < 1 || r > 9 || c < 1 || c > 9 {
		return 0, 0, false
	}
	return r - 1, c - 1, true
}

func parseCoordDigit(args []string) (r, c int, v uint8, ok bool) {
	if len(args) != 3 {
		return 0, 0, 0, false
	}
	r, c, ok = parseCoord(args[:2])
	if !ok {
		return 0, 0, 0, false
	}
	d, err := strconv.Atoi(args[2])
	if err != nil || d < 1 || d > 9 {
		return 0, 0, 0, false
	}
	return r, c, uint8(d), true
}
