package cmd

import (
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"os"

	"github.com/simovilab/gtfs-ontology/internal/configpaths"
	"github.com/simovilab/gtfs-ontology/internal/yamljson"
)

type JSON struct {
	Input  string `help:"Path to the field definitions YAML" default:"spec/schedule.yaml" env:"GTFSGEN_INPUT"`
	Output string `help:"JSON output path" default:"spec/schedule.json" env:"GTFSGEN_JSON_OUTPUT"`
}

// Run is called by Kong when the json command is executed. Unlike the other
// converters it classifies failures into distinct exit codes so scripted
// callers can tell a missing input from a broken one.
func (c *JSON) Run(logger *slog.Logger) error {
	data, err := os.ReadFile(c.Input)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return &ExitError{Code: ExitInputMissing, Err: fmt.Errorf("input YAML not found: %s", c.Input)}
		}
		return &ExitError{Code: ExitReadFailure, Err: fmt.Errorf("could not read YAML: %w", err)}
	}

	out, err := yamljson.Convert(data)
	if err != nil {
		return &ExitError{Code: ExitParseFailure, Err: fmt.Errorf("failed to parse YAML: %w", err)}
	}

	if err := configpaths.EnsureDir(c.Output); err != nil {
		return &ExitError{Code: ExitWriteFailure, Err: fmt.Errorf("could not create output directory: %w", err)}
	}
	if err := os.WriteFile(c.Output, out, 0o644); err != nil {
		return &ExitError{Code: ExitWriteFailure, Err: fmt.Errorf("could not write JSON: %w", err)}
	}

	logger.Info("Wrote JSON", "output", c.Output, "bytes", len(out))
	return nil
}
