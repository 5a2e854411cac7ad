package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"doc_ingest/internal/domain"
)

// RunOptions control a bucket run. Progress, when set, receives one event
// per processed file; the runner never closes it.
type RunOptions struct {
	DryRun   bool
	MaxFiles int
	Force    bool
	Progress chan<- domain.ProgressEvent
}

// BucketRunner processes every pending PDF of one category bucket.
type BucketRunner struct {
	category  domain.Category
	bucket    string
	objects   ObjectStore
	tracker   *FileTracker
	processor FileProcessor
	engine    ExtractionEngine
	locker    RunLocker
	delay     time.Duration
	logger    *slog.Logger
}

func NewBucketRunner(
	category domain.Category,
	bucket string,
	objects ObjectStore,
	tracker *FileTracker,
	processor FileProcessor,
	engine ExtractionEngine,
	locker RunLocker,
	delay time.Duration,
	logger *slog.Logger,
) *BucketRunner {
	return &BucketRunner{
		category:  category,
		bucket:    bucket,
		objects:   objects,
		tracker:   tracker,
		processor: processor,
		engine:    engine,
		locker:    locker,
		delay:     delay,
		logger:    logger.With("category", category, "bucket", bucket),
	}
}

func (r *BucketRunner) Category() domain.Category {
	return r.category
}

func (r *BucketRunner) Tracker() *FileTracker {
	return r.tracker
}

func lockKey(category domain.Category) string {
	return "doc_ingest:run:" + string(category)
}

// ProcessAllFiles processes pending files one at a time with the configured
// delay between them. A failing file is recorded and the run continues.
func (r *BucketRunner) ProcessAllFiles(ctx context.Context, opts RunOptions) (*domain.RunSummary, error) {
	startTime := time.Now()
	summary := &domain.RunSummary{
		RunID:    uuid.New(),
		Category: r.category,
		DryRun:   opts.DryRun,
	}
	logger := r.logger.With("run_id", summary.RunID)

	if r.locker != nil && !opts.DryRun {
		release, err := r.locker.Acquire(ctx, lockKey(r.category))
		if err != nil {
			return nil, fmt.Errorf("acquire run lock: %w", err)
		}
		defer release()
	}

	files, err := r.pendingFiles(ctx, opts)
	if err != nil {
		return nil, err
	}
	summary.Total = len(files)

	logger.Info("starting run",
		"files", len(files),
		"dry_run", opts.DryRun,
		"force", opts.Force,
		"max_files", opts.MaxFiles,
	)

	if opts.DryRun {
		for _, f := range files {
			summary.Results = append(summary.Results, domain.ProcessingResult{
				FileName: f.Name,
				Status:   domain.ResultPending,
			})
		}
		summary.Duration = time.Since(startTime)
		return summary, nil
	}

	for i, f := range files {
		if i > 0 && r.delay > 0 {
			select {
			case <-ctx.Done():
				summary.Duration = time.Since(startTime)
				return summary, ctx.Err()
			case <-time.After(r.delay):
			}
		}

		result := r.processor.ProcessFile(ctx, f, domain.ProcessOptions{Force: opts.Force})
		summary.Results = append(summary.Results, *result)

		switch result.Status {
		case domain.ResultProcessed:
			summary.Processed++
		case domain.ResultInvalid:
			summary.Invalid++
		case domain.ResultSkipped:
			summary.Skipped++
		case domain.ResultFailed:
			summary.Errors++
		}

		if opts.Progress != nil {
			event := domain.ProgressEvent{Index: i + 1, Total: len(files), Result: *result}
			select {
			case opts.Progress <- event:
			case <-ctx.Done():
				summary.Duration = time.Since(startTime)
				return summary, ctx.Err()
			}
		}
	}

	summary.Duration = time.Since(startTime)

	logger.Info("run completed",
		"total", summary.Total,
		"processed", summary.Processed,
		"invalid", summary.Invalid,
		"skipped", summary.Skipped,
		"errors", summary.Errors,
		"duration", summary.Duration,
	)

	return summary, nil
}

func (r *BucketRunner) pendingFiles(ctx context.Context, opts RunOptions) ([]domain.StorageObject, error) {
	objects, err := r.objects.List(ctx, r.bucket)
	if err != nil {
		return nil, fmt.Errorf("list bucket: %w", err)
	}

	var candidates []domain.StorageObject
	for _, o := range objects {
		if isPDF(o.Name) && o.Size > 0 {
			candidates = append(candidates, o)
		}
	}

	tracked, err := r.tracker.GetUnprocessedFiles(ctx, candidates, opts.Force)
	if err != nil {
		return nil, err
	}

	files := tracked.Unprocessed
	if opts.MaxFiles > 0 && len(files) > opts.MaxFiles {
		files = files[:opts.MaxFiles]
	}
	return files, nil
}

// Backfill registers untracked PDFs of the bucket with the tracker.
func (r *BucketRunner) Backfill(ctx context.Context) (int64, error) {
	objects, err := r.objects.List(ctx, r.bucket)
	if err != nil {
		return 0, fmt.Errorf("list bucket: %w", err)
	}
	return r.tracker.Backfill(ctx, objects)
}

// HealthCheck verifies the bucket can be listed and the extraction engine is
// configured.
func (r *BucketRunner) HealthCheck(ctx context.Context) error {
	var errs []error
	if _, err := r.objects.List(ctx, r.bucket); err != nil {
		errs = append(errs, fmt.Errorf("storage: %w", err))
	}
	if err := r.engine.Ready(ctx); err != nil {
		errs = append(errs, fmt.Errorf("extraction: %w", err))
	}
	return errors.Join(errs...)
}
