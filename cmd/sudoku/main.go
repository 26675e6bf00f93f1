package main

import (
	"os"

	"github.com/literal-gargoyle/sudoku/internal/cli"
)

func main() {
	if err := cli.Execute(); err != nil {
		os.Exit(1)
	}
}
