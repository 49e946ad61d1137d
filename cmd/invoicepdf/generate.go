package main

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"time"

	invoicepdf "github.com/alnah/go-invoicepdf"
	"github.com/alnah/go-invoicepdf/internal/api"
	"github.com/alnah/go-invoicepdf/internal/config"
	"github.com/alnah/go-invoicepdf/internal/yamlutil"
)

// Sentinel errors for generation.
var (
	ErrReadInvoice      = errors.New("failed to read invoice file")
	ErrInvalidExtension = errors.New("invoice file must have .yaml, .yml or .json extension")
	ErrAPIRequired      = errors.New("--invoice requires an API base URL (flag or config)")
)

// dirPermissions: rwxr-x---, owner full, group read+execute.
const dirPermissions = 0o750

// job is one invoice to generate.
type job struct {
	source string // file path or "api:<id>" for diagnostics
	input  invoicepdf.Input
}

// result holds the outcome of a single generation.
type result struct {
	source   string
	output   string
	err      error
	duration time.Duration
}

// fileInput is the on-disk invoice document shape. Issuer and client are
// optional; the config's issuer profile fills the gap.
type fileInput struct {
	Invoice *invoicepdf.Invoice `json:"invoice" yaml:"invoice"`
	Issuer  *invoicepdf.Issuer  `json:"issuer,omitempty" yaml:"issuer,omitempty"`
	Client  *invoicepdf.Client  `json:"client,omitempty" yaml:"client,omitempty"`
}

// run loads the configuration, collects jobs from files and the API, and
// generates all documents over a bounded worker pool.
func run(flags *cliFlags, files []string, poolSize int) error {
	cfg := config.DefaultConfig()
	if flags.config != "" {
		loaded, err := config.LoadConfig(flags.config)
		if err != nil {
			return err
		}
		cfg = loaded
	}
	mergeFlags(cfg, flags)

	if len(files) == 0 && len(flags.invoices) == 0 {
		return ErrNoInput
	}

	ctx := context.Background()

	jobs, err := collectJobs(ctx, cfg, flags, files)
	if err != nil {
		return err
	}

	if flags.output != "" {
		if err := os.MkdirAll(flags.output, dirPermissions); err != nil {
			return fmt.Errorf("creating output directory: %w", err)
		}
	}

	pool := invoicepdf.NewGeneratorPool(poolSize, cfg.GeneratorOptions()...)
	defer pool.Close()

	results := runBatch(ctx, pool, jobs, outputDir(cfg, flags))

	failed := 0
	for _, r := range results {
		if r.err != nil {
			failed++
			fmt.Fprintf(os.Stderr, "FAIL %s: %v\n", r.source, r.err)
			continue
		}
		if flags.verbose {
			fmt.Fprintf(os.Stderr, "OK   %s -> %s (%s)\n", r.source, r.output, r.duration.Round(time.Millisecond))
		}
	}
	if failed > 0 {
		return fmt.Errorf("%d of %d documents failed", failed, len(results))
	}
	return nil
}

// mergeFlags applies flag overrides onto the loaded config.
func mergeFlags(cfg *config.Config, flags *cliFlags) {
	if flags.apiBase != "" {
		cfg.API.BaseURL = flags.apiBase
	}
	if flags.token != "" {
		cfg.API.Token = flags.token
	}
	if flags.style != "" {
		cfg.Document.Style = flags.style
	}
}

func outputDir(cfg *config.Config, flags *cliFlags) string {
	if flags.output != "" {
		return flags.output
	}
	return cfg.Output.DefaultDir
}

// collectJobs builds the job list from local files and fetched invoice ids.
func collectJobs(ctx context.Context, cfg *config.Config, flags *cliFlags, files []string) ([]job, error) {
	issuer := issuerFromConfig(cfg)

	jobs := make([]job, 0, len(files)+len(flags.invoices))
	for _, path := range files {
		input, err := loadInvoiceFile(path)
		if err != nil {
			return nil, err
		}
		if input.Issuer == nil {
			input.Issuer = issuer
		}
		jobs = append(jobs, job{source: path, input: *input})
	}

	if len(flags.invoices) > 0 {
		if cfg.API.BaseURL == "" {
			return nil, ErrAPIRequired
		}
		client, err := api.New(cfg.API.BaseURL, api.WithToken(cfg.API.Token))
		if err != nil {
			return nil, err
		}
		for _, id := range flags.invoices {
			inv, err := client.GetInvoice(ctx, id)
			if err != nil {
				return nil, fmt.Errorf("fetching invoice %q: %w", id, err)
			}
			jobs = append(jobs, job{
				source: "api:" + id,
				input:  invoicepdf.Input{Invoice: inv, Issuer: issuer},
			})
		}
	}

	return jobs, nil
}

// issuerFromConfig returns the config's issuer profile, or nil when unset so
// the renderer falls back to its placeholder identity.
func issuerFromConfig(cfg *config.Config) *invoicepdf.Issuer {
	if cfg.Issuer == (invoicepdf.Issuer{}) {
		return nil
	}
	issuer := cfg.Issuer
	return &issuer
}

// loadInvoiceFile parses a YAML or JSON invoice document. A file may contain
// either a bare invoice record or an {invoice, issuer, client} document.
func loadInvoiceFile(path string) (*invoicepdf.Input, error) {
	ext := strings.ToLower(filepath.Ext(path))
	switch ext {
	case ".yaml", ".yml", ".json":
	default:
		return nil, fmt.Errorf("%w: %s", ErrInvalidExtension, path)
	}

	data, err := os.ReadFile(path) // #nosec G304 -- user-provided path
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrReadInvoice, err)
	}

	var doc fileInput
	if ext == ".json" {
		err = json.Unmarshal(data, &doc)
	} else {
		err = yamlutil.Unmarshal(data, &doc)
	}
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %v", ErrReadInvoice, path, err)
	}

	// Bare invoice record fallback
	if doc.Invoice == nil {
		var inv invoicepdf.Invoice
		if ext == ".json" {
			err = json.Unmarshal(data, &inv)
		} else {
			err = yamlutil.Unmarshal(data, &inv)
		}
		if err != nil || inv.Number == "" {
			return nil, fmt.Errorf("%w: %s: missing invoice record", ErrReadInvoice, path)
		}
		doc.Invoice = &inv
	}

	return &invoicepdf.Input{
		Invoice: doc.Invoice,
		Issuer:  doc.Issuer,
		Client:  doc.Client,
	}, nil
}

// runBatch fans jobs out over the generator pool and collects results in
// input order.
func runBatch(ctx context.Context, pool *invoicepdf.GeneratorPool, jobs []job, outDir string) []result {
	results := make([]result, len(jobs))
	sem := make(chan struct{}, pool.Size())
	var wg sync.WaitGroup

	for i, j := range jobs {
		wg.Add(1)
		sem <- struct{}{}
		go func(i int, j job) {
			defer wg.Done()
			defer func() { <-sem }()

			start := time.Now()
			res := result{source: j.source}

			gen, err := pool.Acquire()
			if err != nil {
				res.err = err
				results[i] = res
				return
			}
			defer pool.Release(gen)

			doc, err := gen.Generate(ctx, j.input)
			if err != nil {
				res.err = err
				results[i] = res
				return
			}

			outPath := doc.Filename
			if outDir != "" {
				outPath = filepath.Join(outDir, doc.Filename)
			}
			if err := doc.WriteFile(outPath); err != nil {
				res.err = err
				results[i] = res
				return
			}

			res.output = outPath
			res.duration = time.Since(start)
			results[i] = res
		}(i, j)
	}

	wg.Wait()
	return results
}
