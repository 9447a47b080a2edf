package cmd

import (
	"log/slog"
	"os"

	"github.com/simovilab/gtfs-ontology/internal/configpaths"
	"github.com/simovilab/gtfs-ontology/internal/dbml"
	"github.com/simovilab/gtfs-ontology/internal/htmldoc"
	"github.com/simovilab/gtfs-ontology/internal/markdown"
	"github.com/simovilab/gtfs-ontology/internal/spec"
	"github.com/simovilab/gtfs-ontology/internal/yamljson"
)

type All struct {
	Input          string `help:"Path to the field definitions YAML" default:"spec/schedule.yaml" env:"GTFSGEN_INPUT"`
	DbmlOutput     string `help:"DBML output path" default:"models/schedule.dbml"`
	MarkdownOutput string `help:"Markdown output path" default:"documentation/schedule.md"`
	JSONOutput     string `help:"JSON output path" default:"spec/schedule.json"`
	HTMLOutput     string `help:"HTML output directory" default:"docs"`
	Template       string `help:"Custom Markdown template file" env:"GTFSGEN_MARKDOWN_TEMPLATE"`
}

// Run generates every artifact from a single load of the input document.
func (c *All) Run(logger *slog.Logger) error {
	data, err := os.ReadFile(c.Input)
	if err != nil {
		return err
	}
	doc, err := spec.Parse(data)
	if err != nil {
		return err
	}

	logger.Info("Generating all artifacts", "input", c.Input)

	if err := dbml.WriteFile(c.DbmlOutput, dbml.Build(doc)); err != nil {
		return err
	}
	logger.Info("Wrote DBML", "output", c.DbmlOutput)

	if err := markdown.WriteFile(c.MarkdownOutput, doc, markdown.Options{TemplatePath: c.Template}); err != nil {
		return err
	}
	logger.Info("Wrote Markdown", "output", c.MarkdownOutput)

	out, err := yamljson.Convert(data)
	if err != nil {
		return err
	}
	if err := configpaths.EnsureDir(c.JSONOutput); err != nil {
		return err
	}
	if err := os.WriteFile(c.JSONOutput, out, 0o644); err != nil {
		return err
	}
	logger.Info("Wrote JSON", "output", c.JSONOutput)

	return htmldoc.Generate(logger, c.HTMLOutput, doc)
}
