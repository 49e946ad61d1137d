package main

import (
	"errors"
	"fmt"

	"github.com/spf13/pflag"
)

// ErrNoInput indicates neither invoice files nor invoice ids were given.
var ErrNoInput = errors.New("no input: pass invoice files or --invoice ids")

// cliFlags holds all parsed command-line flags.
type cliFlags struct {
	output   string
	config   string
	style    string
	apiBase  string
	token    string
	invoices []string
	workers  int
	verbose  bool
	version  bool
}

const usageText = `Usage: invoicepdf [flags] [invoice files...]

Generates paginated PDF documents from invoice records. Inputs are local
YAML/JSON invoice files, or invoice ids fetched from the invoices API with
--invoice (requires --api-base or an api section in the config).

Flags:
`

// parseFlags parses command-line arguments.
// Returns the flags, the positional invoice file paths, and any parse error.
func parseFlags(args []string) (*cliFlags, []string, error) {
	flags := &cliFlags{}

	fs := pflag.NewFlagSet("invoicepdf", pflag.ContinueOnError)
	fs.SortFlags = false
	fs.Usage = func() {
		fmt.Fprint(fs.Output(), usageText)
		fs.PrintDefaults()
	}

	fs.StringVarP(&flags.output, "output", "o", "", "output directory (default: working directory)")
	fs.StringVarP(&flags.config, "config", "c", "", "config name or path")
	fs.StringVar(&flags.style, "style", "", "document style: built-in name, CSS path, or raw CSS")
	fs.StringVar(&flags.apiBase, "api-base", "", "invoices API base URL")
	fs.StringVar(&flags.token, "token", "", "invoices API bearer token")
	fs.StringArrayVarP(&flags.invoices, "invoice", "i", nil, "invoice id to fetch and generate (repeatable)")
	fs.IntVarP(&flags.workers, "workers", "w", 0, "parallel workers (0 = auto)")
	fs.BoolVarP(&flags.verbose, "verbose", "v", false, "verbose output")
	fs.BoolVar(&flags.version, "version", false, "print version and exit")

	if err := fs.Parse(args[1:]); err != nil {
		return nil, nil, err
	}

	return flags, fs.Args(), nil
}
