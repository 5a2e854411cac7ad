package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"sync"
	"syscall"

	"doc_ingest/internal/app"
	"doc_ingest/internal/config"
	"doc_ingest/internal/domain"
	"doc_ingest/internal/service"
)

const usage = `Usage: processor [flags]

Processes pending PDFs of one or all categories: extracts them and stores
the resulting records.

Flags:
`

type options struct {
	category   string
	configPath string
	dryRun     bool
	maxFiles   int
	verbose    bool
	force      bool
	reset      bool
	health     bool
	backfill   bool
	status     bool
}

func main() {
	opts := parseFlags()

	logger := app.SetupLogger("info")

	cfg, err := config.Load(opts.configPath)
	if err != nil {
		logger.Error("failed to load config", "error", err)
		os.Exit(1)
	}

	level := cfg.LogLevel
	if opts.verbose {
		level = "debug"
	}
	logger = app.SetupLogger(level)

	if err := cfg.Validate(); err != nil {
		logger.Error("invalid config", "error", err)
		os.Exit(1)
	}

	categories, err := selectCategories(cfg, opts.category)
	if err != nil {
		logger.Error("invalid category", "error", err)
		os.Exit(1)
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	a, err := app.New(ctx, cfg, logger, app.Options{Extraction: true})
	if err != nil {
		logger.Error("failed to initialize", "error", err)
		os.Exit(1)
	}

	ok := true
	for _, cat := range categories {
		if ctx.Err() != nil {
			break
		}
		if !runCategory(ctx, a, cat, opts, logger) {
			ok = false
		}
	}

	if opts.status {
		counts := a.InvalidCounts().InvalidCounts(ctx)
		logger.Info("invalid documents", "total", counts.Total, "breakdown", counts.Breakdown)
	}

	a.Close()

	if !ok || ctx.Err() != nil {
		os.Exit(1)
	}
}

func parseFlags() options {
	var opts options
	flag.StringVar(&opts.category, "category", "all", "category to process: sales_invoice, purchase_invoice, contract, bank_transaction or all")
	flag.StringVar(&opts.configPath, "config", "config.yaml", "path to config file")
	flag.BoolVar(&opts.dryRun, "dry-run", false, "list the files that would be processed without processing them")
	flag.IntVar(&opts.maxFiles, "max", 0, "process at most N files per category (0 means no limit)")
	flag.BoolVar(&opts.verbose, "verbose", false, "enable debug logging and per-file progress")
	flag.BoolVar(&opts.force, "force", false, "reprocess files that were already processed")
	flag.BoolVar(&opts.reset, "reset-processing", false, "mark every file of the category as unprocessed and exit")
	flag.BoolVar(&opts.health, "health", false, "check storage and extraction access and exit")
	flag.BoolVar(&opts.backfill, "backfill", false, "register untracked bucket files with the tracker and exit")
	flag.BoolVar(&opts.status, "status", false, "report tracker counts after the run")
	flag.Usage = func() {
		fmt.Fprint(flag.CommandLine.Output(), usage)
		flag.PrintDefaults()
	}
	flag.Parse()
	return opts
}

func selectCategories(cfg *config.Config, name string) ([]domain.Category, error) {
	if name == "" || name == "all" {
		return cfg.ConfiguredCategories(), nil
	}
	cat, err := domain.ParseCategory(name)
	if err != nil {
		return nil, err
	}
	if _, err := cfg.Category(cat); err != nil {
		return nil, err
	}
	return []domain.Category{cat}, nil
}

// runCategory reports false when the category had a fatal error or any
// failed file.
func runCategory(ctx context.Context, a *app.App, cat domain.Category, opts options, logger *slog.Logger) bool {
	logger = logger.With("category", cat)

	runner, err := a.Runner(cat)
	if err != nil {
		logger.Error("failed to build runner", "error", err)
		return false
	}

	switch {
	case opts.health:
		if err := runner.HealthCheck(ctx); err != nil {
			logger.Error("health check failed", "error", err)
			return false
		}
		logger.Info("health check passed")
		return true

	case opts.reset:
		if _, err := runner.Tracker().ResetAllProcessing(ctx); err != nil {
			logger.Error("failed to reset processing state", "error", err)
			return false
		}
		return true

	case opts.backfill:
		if _, err := runner.Backfill(ctx); err != nil {
			logger.Error("backfill failed", "error", err)
			return false
		}
		return true
	}

	progress := make(chan domain.ProgressEvent)
	var wg sync.WaitGroup
	wg.Add(1)
	go func() {
		defer wg.Done()
		for ev := range progress {
			logger.Debug("file done",
				"index", ev.Index,
				"total", ev.Total,
				"file", ev.Result.FileName,
				"status", ev.Result.Status,
				"message", ev.Result.Message,
			)
		}
	}()

	summary, err := runner.ProcessAllFiles(ctx, service.RunOptions{
		DryRun:   opts.dryRun,
		MaxFiles: opts.maxFiles,
		Force:    opts.force,
		Progress: progress,
	})
	close(progress)
	wg.Wait()

	if errors.Is(err, domain.ErrRunInProgress) {
		logger.Warn("another run holds the lock, skipping category")
		return false
	}
	if summary == nil {
		logger.Error("run failed", "error", err)
		return false
	}

	logSummary(logger, summary)

	if opts.status {
		if status, err := runner.Tracker().GetProcessingStatus(ctx); err == nil {
			logger.Info("tracker status",
				"total", status.Total,
				"processed", status.Processed,
				"invalid", status.Invalid,
				"failed", status.Failed,
				"unprocessed", status.Unprocessed,
			)
		} else {
			logger.Warn("failed to read tracker status", "error", err)
		}
	}

	if err != nil {
		logger.Error("run interrupted", "error", err)
		return false
	}
	return summary.Errors == 0
}

func logSummary(logger *slog.Logger, summary *domain.RunSummary) {
	if summary.DryRun {
		for _, r := range summary.Results {
			logger.Info("would process", "file", r.FileName)
		}
	}

	for _, f := range summary.FailedFiles() {
		logger.Error("file failed", "file", f.Name, "error", f.Error)
	}

	logger.Info("run summary",
		"run_id", summary.RunID,
		"dry_run", summary.DryRun,
		"total", summary.Total,
		"processed", summary.Processed,
		"invalid", summary.Invalid,
		"skipped", summary.Skipped,
		"errors", summary.Errors,
		"duration", summary.Duration,
	)
}
