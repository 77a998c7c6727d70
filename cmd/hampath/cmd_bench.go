package main

import (
	"fmt"
	"log/slog"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"github.com/gridwalk/hampath"
)

func runBench(cmd *cobra.Command, args []string) error {
	requestID := uuid.NewString()
	log := slog.With("request_id", requestID)

	matrix, err := loadGrid(gridPath)
	if err != nil {
		return err
	}

	for _, strategy := range hampath.AllStrategies() {
		res, err := hampath.Solve(matrix, strategy)
		if err != nil && res.Elapsed == 0 {
			log.Error("bench: solve failed before the driver ran", "strategy", strategy, "error", err)
			continue
		}
		fmt.Printf("%-28s found=%-5v elapsed=%s\n", strategy, res.Found, res.Elapsed)
	}

	return nil
}
