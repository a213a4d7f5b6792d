// Command jsonpp validates and pretty-prints JSON.
//
// It reads a single JSON document from a file or stdin and writes it back
// pretty-printed (the default) or compactly encoded:
//
//	$ echo '{"json":"obj"}' | jsonpp
//	{
//	   "json": "obj"
//	}
//
//	$ echo '{ "bool": false, "key": 1 }' | jsonpp -c
//	{"bool":false,"key":1}
//
// Object key order and the exact text of numbers are preserved, so large or
// high-precision numbers survive a round trip unchanged.
package main

import (
	"bytes"
	"fmt"
	"os"

	"github.com/alecthomas/kong"

	"github.com/mcncl/jsonpp/internal/config"
	"github.com/mcncl/jsonpp/internal/errors"
	"github.com/mcncl/jsonpp/internal/formatter"
	"github.com/mcncl/jsonpp/internal/models"
	"github.com/mcncl/jsonpp/internal/parser"
)

// CLI defines the command-line interface
var CLI struct {
	Compact bool   `help:"Compact encoding: no whitespace beyond separators." short:"c"`
	Pretty  bool   `help:"Pretty-print with indentation. This is the default." short:"p"`
	Config  string `help:"Path to a jsonpp config file." type:"path"`
	Version bool   `help:"Show version information." short:"v"`

	Infile  string `arg:"" optional:"" help:"Input file, or '-' for stdin. Defaults to stdin."`
	Outfile string `arg:"" optional:"" help:"Output file. Defaults to stdout."`
}

// Version information
const (
	Version = "0.1.0"
)

func main() {
	// Parse CLI arguments with Kong. Flags are stripped before positional
	// binding, so -c or -p can never be taken for a file name.
	cliParser := kong.Must(&CLI,
		kong.Name("jsonpp"),
		kong.Description("A tool to validate and pretty-print JSON"),
		kong.UsageOnError(),
	)

	_, err := cliParser.Parse(os.Args[1:])
	if err != nil {
		fmt.Fprintf(os.Stderr, "%s: %v\n", cliParser.Model.Name, err)
		fmt.Fprintf(os.Stderr, "usage: %s {-c|-p} [infile [outfile]]\n", cliParser.Model.Name)
		os.Exit(1)
	}

	// Show version and exit if requested
	if CLI.Version {
		fmt.Printf("jsonpp version %s\n", Version)
		return
	}

	cfg, err := loadConfig()
	if err == nil {
		err = run(cfg)
	}
	if err != nil {
		fmt.Fprintf(os.Stderr, "%s\n", errors.UserFriendlyError(err))
		os.Exit(1)
	}
}

// run executes the main program logic: decode the input, then encode it
// with the selected formatting mode.
func run(cfg *config.Config) error {
	value, err := readInput()
	if err != nil {
		// Error is already wrapped by the parser
		return err
	}

	return writeOutput(cfg, value)
}

// loadConfig resolves the effective configuration. An explicit --config
// path must exist; a discovered file is used when present.
func loadConfig() (*config.Config, error) {
	path := CLI.Config
	if path == "" {
		path = config.FindConfigFile()
	}
	if path == "" {
		return config.NewConfig(), nil
	}
	cfg, err := config.LoadConfig(path)
	if err != nil {
		return nil, errors.NewInputError(fmt.Sprintf("failed to load config '%s'", path), err)
	}
	return cfg, nil
}

// readInput decodes JSON from the input file or stdin
func readInput() (models.Value, error) {
	if CLI.Infile != "" && CLI.Infile != "-" {
		return parser.ParseFile(CLI.Infile)
	}
	return parser.Parse(os.Stdin)
}

// writeOutput encodes value to the output file or stdout. The document is
// rendered into memory first, so a failed encode never leaves a partially
// written output file, and exactly one newline follows the document.
func writeOutput(cfg *config.Config, value models.Value) error {
	f := formatter.NewWithOptions(formatter.Options{
		Indent:      cfg.Formatting.Indent,
		EnsureASCII: cfg.Formatting.EnsureASCII,
	})

	compact := CLI.Compact || (cfg.Formatting.Compact && !CLI.Pretty)

	var buf bytes.Buffer
	var err error
	if compact {
		err = f.Compact(&buf, value)
	} else {
		err = f.Pretty(&buf, value)
	}
	if err != nil {
		return errors.NewOutputError("failed to encode JSON", err)
	}
	buf.WriteByte('\n')

	if CLI.Outfile != "" {
		if err := os.WriteFile(CLI.Outfile, buf.Bytes(), 0644); err != nil {
			return errors.NewOutputError(fmt.Sprintf("failed to write to file '%s'", CLI.Outfile), err)
		}
		return nil
	}

	if _, err := os.Stdout.Write(buf.Bytes()); err != nil {
		return errors.NewOutputError("failed to write to stdout", err)
	}
	return nil
}
