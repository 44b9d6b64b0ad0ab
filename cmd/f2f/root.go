package main

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/dougbrierley/F2F/config"
	"github.com/dougbrierley/F2F/document"
	"github.com/dougbrierley/F2F/store"
)

var (
	cfgFile string
	outDir  string
	upload  bool
	verbose bool
)

var rootCmd = &cobra.Command{
	Use:   "f2f",
	Short: "Generate farm-to-fork ordering documents",
	Long: `f2f turns the weekly growers' ordering spreadsheet and JSON batch
files into buyer orders, seller pick lists and VAT invoices as A4 PDFs,
saved locally or uploaded to S3.`,
	SilenceUsage:  true,
	SilenceErrors: true,
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "path to the YAML config file")
	rootCmd.PersistentFlags().StringVar(&outDir, "out", "generated", "directory for locally saved documents")
	rootCmd.PersistentFlags().BoolVar(&upload, "upload", false, "upload documents to the configured S3 bucket")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable debug logging")
}

func execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

// app is the wiring every subcommand needs.
type app struct {
	cfg *config.Config
	log *zap.Logger
	gen *document.Generator
}

func newApp(ctx context.Context) (*app, error) {
	log, err := newLogger()
	if err != nil {
		return nil, err
	}

	cfg := config.Default()
	if cfgFile != "" {
		cfg, err = config.Load(cfgFile)
		if err != nil {
			return nil, err
		}
	}

	st, err := newStore(ctx, cfg)
	if err != nil {
		return nil, err
	}
	return &app{
		cfg: cfg,
		log: log,
		gen: document.NewGenerator(cfg.Stationery(), st, log),
	}, nil
}

func newLogger() (*zap.Logger, error) {
	if verbose {
		return zap.NewDevelopment()
	}
	cfg := zap.NewProductionConfig()
	cfg.Encoding = "console"
	return cfg.Build()
}

func newStore(ctx context.Context, cfg *config.Config) (document.Store, error) {
	if !upload {
		return store.Dir{Path: outDir}, nil
	}
	if cfg.Bucket == "" {
		return nil, fmt.Errorf("--upload needs a bucket in the config file")
	}
	return store.NewUploader(ctx, cfg.Bucket, cfg.Region, cfg.UploadTimeout())
}

// report logs a batch summary and returns an error when any document
// failed, so the process exits non-zero without aborting the batch.
func (a *app) report(results []document.Result) error {
	failed := 0
	for _, res := range results {
		if res.Err != nil {
			failed++
		}
	}
	if failed > 0 {
		return fmt.Errorf("%d of %d documents failed", failed, len(results))
	}
	a.log.Info("batch complete", zap.Int("documents", len(results)))
	return nil
}
