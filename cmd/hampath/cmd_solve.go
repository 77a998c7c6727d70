package main

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"github.com/gridwalk/hampath"
	"github.com/gridwalk/hampath/render"
)

func runSolve(cmd *cobra.Command, args []string) error {
	requestID := uuid.NewString()
	log := slog.With("request_id", requestID)

	strategy, err := hampath.ParseStrategy(strategyName)
	if err != nil {
		return err
	}

	matrix, err := loadGrid(gridPath)
	if err != nil {
		return err
	}

	log.Info("solving", "grid", gridPath, "strategy", strategy)
	res, err := hampath.Solve(matrix, strategy)
	if err != nil {
		log.Error("solve failed", "error", err, "elapsed", res.Elapsed)
		return err
	}

	log.Info("solved", "elapsed", res.Elapsed, "steps", len(res.Path))

	var start hampath.Vertex
	if len(res.Path) > 0 {
		start = res.Path[0]
	}
	out, err := (render.ASCII{}).Render(matrix, res.Path, start, res.Finish)
	if err != nil {
		return err
	}
	_, err = fmt.Fprint(os.Stdout, string(out))

	return err
}
