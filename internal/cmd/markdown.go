package cmd

import (
	"log/slog"

	"github.com/simovilab/gtfs-ontology/internal/markdown"
	"github.com/simovilab/gtfs-ontology/internal/spec"
)

type Markdown struct {
	Input    string `help:"Path to the field definitions YAML" default:"spec/schedule.yaml" env:"GTFSGEN_INPUT"`
	Output   string `help:"Markdown output path" default:"documentation/schedule.md" env:"GTFSGEN_MARKDOWN_OUTPUT"`
	Template string `help:"Custom template file overriding the built-in one" env:"GTFSGEN_MARKDOWN_TEMPLATE"`
}

// Run is called by Kong when the markdown command is executed.
func (c *Markdown) Run(logger *slog.Logger) error {
	doc, err := spec.Load(c.Input)
	if err != nil {
		return err
	}

	logger.Info("Generating Markdown documentation", "input", c.Input, "output", c.Output)

	opts := markdown.Options{TemplatePath: c.Template}
	if err := markdown.WriteFile(c.Output, doc, opts); err != nil {
		return err
	}

	logger.Info("Markdown generation complete", "output", c.Output)
	return nil
}
