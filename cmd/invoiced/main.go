// Command invoiced is an HTTP service that renders invoice records into
// paginated PDF documents.
package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/pflag"
	"go.uber.org/automaxprocs/maxprocs"
	"go.uber.org/zap"

	invoicepdf "github.com/alnah/go-invoicepdf"
	"github.com/alnah/go-invoicepdf/internal/config"
)

// Version is set at build time via ldflags.
var Version = "dev"

// shutdownGrace bounds how long in-flight generations may finish on shutdown.
const shutdownGrace = 30 * time.Second

func main() {
	if err := runMain(os.Args); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func runMain(args []string) error {
	fs := pflag.NewFlagSet("invoiced", pflag.ContinueOnError)
	addr := fs.String("addr", ":8080", "listen address")
	configName := fs.StringP("config", "c", "", "config name or path")
	version := fs.Bool("version", false, "print version and exit")
	if err := fs.Parse(args[1:]); err != nil {
		return err
	}
	if *version {
		fmt.Println("invoiced " + Version)
		return nil
	}

	logger, err := zap.NewProduction()
	if err != nil {
		return fmt.Errorf("initializing logger: %w", err)
	}
	defer func() { _ = logger.Sync() }()

	_, _ = maxprocs.Set(maxprocs.Logger(logger.Sugar().Debugf))

	cfg := config.DefaultConfig()
	if *configName != "" {
		cfg, err = config.LoadConfig(*configName)
		if err != nil {
			return err
		}
	}

	gen, err := invoicepdf.NewGenerator(cfg.GeneratorOptions()...)
	if err != nil {
		return fmt.Errorf("initializing generator: %w", err)
	}
	defer func() { _ = gen.Close() }()

	srv := newServer(logger, gen, issuerFromConfig(cfg))

	httpServer := &http.Server{
		Addr:              *addr,
		Handler:           srv,
		ReadHeaderTimeout: 10 * time.Second,
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	errCh := make(chan error, 1)
	go func() {
		logger.Info("listening", zap.String("addr", *addr))
		errCh <- httpServer.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}
	case <-ctx.Done():
		logger.Info("shutting down")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownGrace)
		defer cancel()
		if err := httpServer.Shutdown(shutdownCtx); err != nil {
			return fmt.Errorf("shutdown: %w", err)
		}
	}
	return nil
}

// issuerFromConfig returns the configured issuer profile, or nil so the
// renderer falls back to its placeholder identity.
func issuerFromConfig(cfg *config.Config) *invoicepdf.Issuer {
	if cfg.Issuer == (invoicepdf.Issuer{}) {
		return nil
	}
	issuer := cfg.Issuer
	return &issuer
}
