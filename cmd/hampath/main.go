// Command hampath is the CLI front-end for the grid Hamiltonian-path
// solver: it loads a matrix, runs one of the seven search strategies, and
// prints the resulting path (or a benchmark comparison across strategies).
package main

import (
	"log/slog"
	"os"
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		slog.Error("hampath: command failed", "error", err)
		os.Exit(1)
	}
}
