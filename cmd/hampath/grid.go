package main

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/gridwalk/hampath/gridgraph"
)

// loadGrid reads a grid from path: a ".json" file holding a 2-D array of
// ints, or a plain-text file holding one digit (0, 1, or 2) per cell per
// line, whitespace between digits optional.
func loadGrid(path string) ([][]gridgraph.Cell, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("hampath: reading %s: %w", path, err)
	}

	if strings.EqualFold(filepath.Ext(path), ".json") {
		return parseJSONGrid(raw)
	}

	return parseTextGrid(raw)
}

func parseJSONGrid(raw []byte) ([][]gridgraph.Cell, error) {
	var ints [][]int
	if err := json.Unmarshal(raw, &ints); err != nil {
		return nil, fmt.Errorf("hampath: parsing grid JSON: %w", err)
	}

	return intsToCells(ints), nil
}

func parseTextGrid(raw []byte) ([][]gridgraph.Cell, error) {
	lines := strings.Split(strings.TrimRight(string(raw), "\n"), "\n")
	ints := make([][]int, 0, len(lines))
	for _, line := range lines {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}

		var row []int
		fields := strings.Fields(line)
		if len(fields) > 1 {
			for _, f := range fields {
				v, err := strconv.Atoi(f)
				if err != nil {
					return nil, fmt.Errorf("hampath: parsing grid cell %q: %w", f, err)
				}
				row = append(row, v)
			}
		} else {
			for _, r := range line {
				v, err := strconv.Atoi(string(r))
				if err != nil {
					return nil, fmt.Errorf("hampath: parsing grid cell %q: %w", string(r), err)
				}
				row = append(row, v)
			}
		}
		ints = append(ints, row)
	}

	return intsToCells(ints), nil
}

func intsToCells(ints [][]int) [][]gridgraph.Cell {
	m := make([][]gridgraph.Cell, len(ints))
	for i, row := range ints {
		r := make([]gridgraph.Cell, len(row))
		for j, v := range row {
			r[j] = gridgraph.Cell(v)
		}
		m[i] = r
	}

	return m
}
