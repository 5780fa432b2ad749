package main

import (
	"bytes"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"Stairwell/internal/calc/premium/importer"
	"Stairwell/internal/calc/stairs"
)

// loadFlight reads a flight definition. YAML covers JSON files too; xlsx
// workbooks are read as a run sheet with default options.
func loadFlight(path string) (stairs.Input, error) {
	if path == "" {
		return stairs.Input{}, errors.New("no input file, use -i")
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return stairs.Input{}, err
	}

	if strings.EqualFold(filepath.Ext(path), ".xlsx") {
		picks, _, err := importer.Parse(bytes.NewReader(data))
		if err != nil {
			return stairs.Input{}, fmt.Errorf("%s: %w", path, err)
		}
		return stairs.Input{Runs: picks}, nil
	}

	var in stairs.Input
	if err := yaml.Unmarshal(data, &in); err != nil {
		return stairs.Input{}, fmt.Errorf("%s: %w", path, err)
	}
	return in, nil
}

// computeFlight loads the -i file and builds every run and landing.
func computeFlight(cmd *cobra.Command) (stairs.Result, error) {
	logger, err := commandLogger(cmd)
	if err != nil {
		return stairs.Result{}, err
	}
	path, _ := cmd.Flags().GetString("input")
	in, err := loadFlight(path)
	if err != nil {
		return stairs.Result{}, err
	}
	res, err := stairs.Compute(in, logger)
	if err != nil {
		return stairs.Result{}, fmt.Errorf("%s: %w", path, err)
	}
	return res, nil
}
