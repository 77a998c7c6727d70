package main

import (
	"github.com/spf13/cobra"
)

var (
	gridPath     string
	strategyName string

	rootCmd = &cobra.Command{
		Use:   "hampath",
		Short: "Solve the Hamiltonian-path problem on 4-connected grids",
	}

	solveCmd = &cobra.Command{
		Use:   "solve",
		Short: "Find a Hamiltonian path on a single grid under one strategy",
		RunE:  runSolve,
	}

	benchCmd = &cobra.Command{
		Use:   "bench",
		Short: "Solve a grid under all seven strategies and compare their elapsed time",
		RunE:  runBench,
	}
)

func init() {
	rootCmd.PersistentFlags().StringVar(&gridPath, "grid", "", "path to a grid file (.json or plain text)")
	_ = rootCmd.MarkPersistentFlagRequired("grid")

	solveCmd.Flags().StringVar(&strategyName, "strategy", "optimized",
		"search strategy: backtracking, greedy, forced_move, edge_elimination, "+
			"validation_forced_move, validation_edge_elimination, optimized")

	rootCmd.AddCommand(solveCmd)
	rootCmd.AddCommand(benchCmd)
}
