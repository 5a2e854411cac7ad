package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"doc_ingest/internal/app"
	"doc_ingest/internal/config"
	"doc_ingest/internal/scheduler"
	"doc_ingest/internal/service"
)

func main() {
	configPath := flag.String("config", "config.yaml", "path to config file")
	once := flag.Bool("once", false, "run one sync pass and exit")
	process := flag.Bool("process", false, "process new files after each sync")
	flag.Parse()

	logger := app.SetupLogger("info")

	cfg, err := config.Load(*configPath)
	if err != nil {
		logger.Error("failed to load config", "error", err)
		os.Exit(1)
	}

	logger = app.SetupLogger(cfg.LogLevel)

	if err := cfg.Validate(); err != nil {
		logger.Error("invalid config", "error", err)
		os.Exit(1)
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	go func() {
		sigCh := make(chan os.Signal, 1)
		signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
		sig := <-sigCh
		logger.Info("received shutdown signal", "signal", sig)
		cancel()
	}()

	processAfterSync := *process || cfg.Scheduler.ProcessAfterSync

	a, err := app.New(ctx, cfg, logger, app.Options{Source: true, Extraction: processAfterSync})
	if err != nil {
		logger.Error("failed to initialize", "error", err)
		os.Exit(1)
	}
	defer a.Close()

	syncService, err := a.SyncService()
	if err != nil {
		logger.Error("failed to build sync service", "error", err)
		os.Exit(1)
	}

	p := &pipeline{
		app:     a,
		cfg:     cfg,
		sync:    syncService,
		process: processAfterSync,
		logger:  logger,
	}

	if *once {
		failed, err := p.run(ctx)
		if err != nil {
			logger.Error("sync failed", "error", err)
		}
		if err != nil || failed > 0 {
			a.Close()
			os.Exit(1)
		}
		return
	}

	logger.Info("starting document syncer",
		"interval", cfg.Scheduler.Interval,
		"process", processAfterSync,
		"categories", len(cfg.Categories),
	)

	sched := scheduler.NewScheduler(p, cfg.Scheduler.Interval, cfg.Scheduler.RunTimeout, logger)
	if err := sched.Start(ctx); err != nil && !errors.Is(err, context.Canceled) {
		logger.Error("scheduler error", "error", err)
		a.Close()
		os.Exit(1)
	}
}

type pipeline struct {
	app     *app.App
	cfg     *config.Config
	sync    *service.SyncService
	process bool
	logger  *slog.Logger
}

// Run implements scheduler.Job.
func (p *pipeline) Run(ctx context.Context) error {
	failed, err := p.run(ctx)
	if err != nil {
		return err
	}
	if failed > 0 {
		return fmt.Errorf("%d file(s) failed", failed)
	}
	return nil
}

// run syncs every category and optionally processes the new files. It
// returns the number of files that failed in either step.
func (p *pipeline) run(ctx context.Context) (int, error) {
	results, syncErr := p.sync.SyncAll(ctx)

	failed := 0
	for _, r := range results {
		failed += r.Failed
		for _, f := range r.FailedFiles {
			p.logger.Error("file sync failed", "category", r.Category, "file", f.Name, "error", f.Error)
		}
	}

	if !p.process {
		return failed, syncErr
	}

	var errs []error
	if syncErr != nil {
		errs = append(errs, syncErr)
	}

	for _, cat := range p.cfg.ConfiguredCategories() {
		runner, err := p.app.Runner(cat)
		if err != nil {
			errs = append(errs, err)
			continue
		}

		summary, err := runner.ProcessAllFiles(ctx, service.RunOptions{})
		if err != nil {
			errs = append(errs, fmt.Errorf("process %s: %w", cat, err))
		}
		if summary != nil {
			failed += summary.Errors
		}
	}

	return failed, errors.Join(errs...)
}
