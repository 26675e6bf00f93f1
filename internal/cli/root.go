package cli

import (
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/literal-gargoyle/sudoku/internal/generator"
	"github.com/literal-gargoyle/sudoku/internal/infrastructure/storage"
	"github.com/literal-gargoyle/sudoku/internal/solver"
	"github.com/literal-gargoyle/sudoku/internal/usecase"
	"github.com/literal-gargoyle/sudoku/internal/validator"
)

var log = logrus.New()

var (
	dataDir string
	verbose bool
)

var rootCmd = &cobra.Command{
	Use:   "sudoku",
	Short: "Generate, solve and play Sudoku puzzles in the terminal",
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		if verbose {
			log.SetLevel(logrus.DebugLevel)
		}
	},
}

func init() {
	rootCmd.PersistentFlags().StringVar(&dataDir, "data", "./data", "Directory for saved puzzles")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable debug logging")
}

// newService wires solver, generator, validator and the filesystem store.
func newService() *usecase.Service {
	s := solver.NewBacktrackingSolver()
	g := generator.NewUniqueGenerator(s)
	v := validator.New()
	st := storage.NewFS(dataDir)
	return usecase.NewService(s, g, v, st)
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}
