package cli

import (
	"fmt"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

func init() {
	solveCmd := &cobra.Command{
		Use:   "solve <grid>",
		Short: "Solve a puzzle given as an 81-character grid string",
		Long: `Solve a puzzle. The grid is 81 characters in row-major order,
using 0 or . for empty cells, e.g.

  sudoku solve 53..7....6..195....98....6.8...6...34..8.3..17...2...6.6....28....419..5....8..79`,
		Args: cobra.ExactArgs(1),
		RunE: runSolve,
	}
	rootCmd.AddCommand(solveCmd)
}

func runSolve(cmd *cobra.Command, args []string) error {
	b, err := parseBoard(args[0])
	if err != nil {
		return err
	}
	svc := newService()

	if ok, conflicts, _ := svc.Validate(cmd.Context(), b); !ok {
		return fmt.Errorf("grid violates Sudoku constraints at %v", conflicts)
	}

	out, st, err := svc.Solve(cmd.Context(), b)
	if err != nil {
		return fmt.Errorf("solve failed: %w", err)
	}
	log.WithFields(logrus.Fields{
		"nodes":   st.Nodes,
		"elapsed": st.Duration.Round(time.Microsecond),
	}).Debug("solved")

	unique, _, _ := svc.Unique(cmd.Context(), b)
	fmt.Println(formatGrid(out.Values))
	if !unique {
		fmt.Println("Note: this puzzle has more than one solution.")
	}
	return nil
}
