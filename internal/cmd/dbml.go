package cmd

import (
	"log/slog"
	"path/filepath"
	"strings"

	"github.com/simovilab/gtfs-ontology/internal/dbml"
	"github.com/simovilab/gtfs-ontology/internal/spec"
)

type Dbml struct {
	Input       string `help:"Path to the field definitions YAML" default:"spec/schedule.yaml" env:"GTFSGEN_INPUT"`
	Output      string `help:"Canonical DBML output path" default:"models/schedule.dbml" env:"GTFSGEN_DBML_OUTPUT"`
	NoOverwrite bool   `help:"Write to a .generated path beside the canonical output instead of overwriting a hand-reviewed file"`
}

// Run is called by Kong when the dbml command is executed.
func (c *Dbml) Run(logger *slog.Logger) error {
	doc, err := spec.Load(c.Input)
	if err != nil {
		return err
	}

	schema := dbml.Build(doc)

	output := c.Output
	if c.NoOverwrite {
		output = generatedPath(output)
	}

	logger.Info("Generating DBML schema",
		"input", c.Input,
		"output", output,
		"tables", len(schema.Tables),
		"enums", len(schema.Enums))

	if err := dbml.WriteFile(output, schema); err != nil {
		return err
	}

	logger.Info("DBML generation complete", "output", output)
	return nil
}

// generatedPath inserts ".generated" before the file extension:
// models/schedule.dbml -> models/schedule.generated.dbml.
func generatedPath(path string) string {
	ext := filepath.Ext(path)
	return strings.TrimSuffix(path, ext) + ".generated" + ext
}
