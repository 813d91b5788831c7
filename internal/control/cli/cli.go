// Package cli provides the command-line interface for walktest.
package cli

type CommandLineOpts struct {
	Version bool `short:"v" long:"version" description:"Show the program version"`

	TuiCommand     TuiCommand     `command:"tui" subcommands-optional:"true"`
	CalcCommand    CalcCommand    `command:"calc" subcommands-optional:"true"`
	VersionCommand VersionCommand `command:"version" subcommands-optional:"true"`
}

var Opts CommandLineOpts
