package cmd

import (
	"log/slog"

	"github.com/simovilab/gtfs-ontology/internal/htmldoc"
	"github.com/simovilab/gtfs-ontology/internal/spec"
)

type HTML struct {
	Input  string `help:"Path to the field definitions YAML" default:"spec/schedule.yaml" env:"GTFSGEN_INPUT"`
	Output string `help:"Output directory for the HTML reference" default:"docs" env:"GTFSGEN_HTML_OUTPUT"`
}

// Run is called by Kong when the html command is executed.
func (c *HTML) Run(logger *slog.Logger) error {
	doc, err := spec.Load(c.Input)
	if err != nil {
		return err
	}

	logger.Info("Generating HTML reference", "input", c.Input, "output", c.Output)
	return htmldoc.Generate(logger, c.Output, doc)
}
