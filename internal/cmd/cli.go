// Package cmd defines the gtfsgen command grammar. Each converter is its own
// subcommand; Kong wires flags, environment variables, and layered config
// files into the structs below.
package cmd

// CLI is the root command grammar parsed by Kong.
type CLI struct {
	Config string      `help:"Path to a configuration file" env:"GTFSGEN_CONFIG"`
	Log    LogSettings `embed:"" prefix:"log."`

	Dbml      Dbml          `cmd:"" help:"Generate the DBML relational schema from the field definitions"`
	Markdown  Markdown      `cmd:"" help:"Generate Markdown reference documentation"`
	JSON      JSON          `cmd:"" name:"json" help:"Re-serialize the field definitions YAML as pretty-printed JSON"`
	HTML      HTML          `cmd:"" name:"html" help:"Generate browsable HTML reference pages"`
	All       All           `cmd:"" help:"Generate every artifact in one pass"`
	ConfigCmd ConfigCommand `cmd:"" name:"config" help:"Configuration helpers"`
}

// LogSettings configures the shared logger.
type LogSettings struct {
	Level string `help:"Log level" default:"info" enum:"debug,info,warn,error" env:"GTFSGEN_LOG_LEVEL"`
	File  string `help:"Write logs to this file instead of the console" env:"GTFSGEN_LOG_FILE"`
}
