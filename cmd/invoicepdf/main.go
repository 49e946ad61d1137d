package main

import (
	"fmt"
	"os"

	"go.uber.org/automaxprocs/maxprocs"

	invoicepdf "github.com/alnah/go-invoicepdf"
)

// Version is set at build time via ldflags.
var Version = "dev"

func main() {
	flags, files, err := parseFlags(os.Args)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}

	if flags.version {
		fmt.Println("invoicepdf " + Version)
		return
	}

	// Configure GOMAXPROCS with conditional logging
	// Error ignored: maxprocs.Set only fails if GOMAXPROCS env is invalid,
	// in which case Go runtime defaults apply and the program continues safely.
	if flags.verbose {
		_, _ = maxprocs.Set(maxprocs.Logger(func(format string, args ...interface{}) {
			fmt.Fprintf(os.Stderr, format+"\n", args...)
		}))
	} else {
		_, _ = maxprocs.Set(maxprocs.Logger(func(string, ...interface{}) {}))
	}

	poolSize := invoicepdf.ResolvePoolSize(flags.workers)
	if flags.verbose {
		fmt.Fprintf(os.Stderr, "Pool size: %d\n", poolSize)
	}

	if err := run(flags, files, poolSize); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
