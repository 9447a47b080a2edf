package main

import (
	"errors"
	"os"
	"strings"

	"github.com/simovilab/gtfs-ontology/internal/cmd"
	"github.com/simovilab/gtfs-ontology/internal/configpaths"
	"github.com/simovilab/gtfs-ontology/internal/log"

	"github.com/alecthomas/kong"
	kongtoml "github.com/alecthomas/kong-toml"
	kongyaml "github.com/alecthomas/kong-yaml"
)

func main() {
	userCfg := findUserConfig(os.Args[1:])
	jsonPaths, yamlPaths, tomlPaths := configpaths.ConfigCandidatePaths(userCfg)

	var cli cmd.CLI
	ctx := kong.Parse(&cli,
		kong.Name("gtfsgen"),
		kong.Description("Generates DBML, JSON, Markdown, and HTML artifacts from the GTFS field definitions YAML"),
		kong.UsageOnError(),
		// Load configuration from JSON/YAML/TOML in priority order; flags/env override config values.
		kong.Configuration(kong.JSON, jsonPaths...),
		kong.Configuration(kongyaml.Loader, yamlPaths...),
		kong.Configuration(kongtoml.Loader, tomlPaths...),
	)

	logger, closeFiles, err := log.SetupLogger(cli.Log.Level, cli.Log.File)
	if err != nil {
		_, _ = os.Stderr.WriteString("failed to setup logger: " + err.Error() + "\n")
		os.Exit(2)
	}
	defer func() {
		for _, c := range closeFiles {
			_ = c.Close()
		}
	}()

	ctx.Bind(logger)

	err = ctx.Run()

	// The json command classifies its failures into specific exit codes.
	var exitErr *cmd.ExitError
	if errors.As(err, &exitErr) {
		_, _ = os.Stderr.WriteString("ERROR: " + exitErr.Error() + "\n")
		for _, c := range closeFiles {
			_ = c.Close()
		}
		os.Exit(exitErr.Code)
	}
	ctx.FatalIfErrorf(err)
}

func findUserConfig(args []string) string {
	for i := 0; i < len(args); i++ {
		a := args[i]
		if strings.HasPrefix(a, "--config=") {
			return a[len("--config="):]
		}
		if a == "--config" && i+1 < len(args) {
			return args[i+1]
		}
	}
	if v := os.Getenv("GTFSGEN_CONFIG"); v != "" {
		return v
	}
	return ""
}
