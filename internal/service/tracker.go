package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"doc_ingest/internal/domain"
)

// FileTracker answers which files of one category still need processing and
// records the outcome of each attempt.
type FileTracker struct {
	category domain.Category
	store    ProcessingLogStore
	logger   *slog.Logger
}

func NewFileTracker(category domain.Category, store ProcessingLogStore, logger *slog.Logger) *FileTracker {
	return &FileTracker{
		category: category,
		store:    store,
		logger:   logger.With("category", category, "tracker", category.Label()),
	}
}

func (t *FileTracker) Category() domain.Category {
	return t.category
}

// GetUnprocessedFiles splits bucket files by tracker state. Files without a
// tracker row are left out of both lists and counted in Untracked.
func (t *FileTracker) GetUnprocessedFiles(ctx context.Context, files []domain.StorageObject, force bool) (*domain.TrackedFiles, error) {
	result := &domain.TrackedFiles{}
	if len(files) == 0 {
		return result, nil
	}

	names := make([]string, len(files))
	for i, f := range files {
		names[i] = f.Name
	}

	entries, err := t.store.GetByFilenames(ctx, t.category, names)
	if err != nil {
		return nil, fmt.Errorf("get tracked files: %w", err)
	}

	tracked := make(map[string]domain.ProcessingLogEntry, len(entries))
	for _, e := range entries {
		tracked[e.Filename] = e
	}

	for _, f := range files {
		entry, ok := tracked[f.Name]
		switch {
		case !ok:
			result.Untracked++
		case force || !entry.IsProcessed:
			result.Unprocessed = append(result.Unprocessed, f)
		default:
			result.Processed = append(result.Processed, f)
		}
	}

	if result.Untracked > 0 {
		t.logger.Warn("bucket contains untracked files, run backfill to register them",
			"untracked", result.Untracked,
		)
	}

	return result, nil
}

// TrackFileProcessing decides whether a file may be processed now. With force
// a processed row is reset first.
func (t *FileTracker) TrackFileProcessing(ctx context.Context, filename string, force bool) (*domain.TrackDecision, error) {
	entry, err := t.store.Get(ctx, t.category, filename)
	if errors.Is(err, domain.ErrNotTracked) {
		return &domain.TrackDecision{ShouldSkip: true, Reason: "file is not tracked"}, nil
	}
	if err != nil {
		return nil, fmt.Errorf("get tracker entry: %w", err)
	}

	if !entry.IsProcessed {
		return &domain.TrackDecision{Entry: entry}, nil
	}

	if !force {
		return &domain.TrackDecision{
			Entry:      entry,
			ShouldSkip: true,
			Reason:     "file already processed",
		}, nil
	}

	if _, err := t.store.Reset(ctx, t.category, filename); err != nil {
		return nil, fmt.Errorf("reset tracker entry: %w", err)
	}

	entry, err = t.store.Get(ctx, t.category, filename)
	if err != nil {
		return nil, fmt.Errorf("get tracker entry: %w", err)
	}
	t.logger.Info("reset processed file for reprocessing", "file", filename)

	return &domain.TrackDecision{Entry: entry}, nil
}

// MarkAsProcessed fails with domain.ErrAlreadyProcessed when another run
// already moved the row out of the unprocessed state.
func (t *FileTracker) MarkAsProcessed(ctx context.Context, entry *domain.ProcessingLogEntry, message string) error {
	ok, err := t.store.MarkProcessed(ctx, t.category, entry.Filename, truncateMessage(message))
	if err != nil {
		return fmt.Errorf("mark processed: %w", err)
	}
	if !ok {
		return domain.ErrAlreadyProcessed
	}
	return nil
}

// MarkAsInvalid and MarkAsFailed only touch unprocessed rows; a row another
// run already finished yields domain.ErrAlreadyProcessed.
func (t *FileTracker) MarkAsInvalid(ctx context.Context, entry *domain.ProcessingLogEntry, message string) error {
	if err := t.store.MarkInvalid(ctx, t.category, entry.Filename, truncateMessage(message)); err != nil {
		return fmt.Errorf("mark invalid: %w", err)
	}
	return nil
}

// Quarantine marks a file invalid regardless of its processing state.
func (t *FileTracker) Quarantine(ctx context.Context, filename, message string) error {
	if err := t.store.Quarantine(ctx, t.category, filename, truncateMessage(message)); err != nil {
		return fmt.Errorf("quarantine: %w", err)
	}
	return nil
}

func (t *FileTracker) MarkAsFailed(ctx context.Context, entry *domain.ProcessingLogEntry, message string) error {
	if err := t.store.MarkFailed(ctx, t.category, entry.Filename, truncateMessage(message)); err != nil {
		return fmt.Errorf("mark failed: %w", err)
	}
	return nil
}

// Register creates unprocessed rows for the given files. Already tracked
// files are left as they are.
func (t *FileTracker) Register(ctx context.Context, filenames []string) (int64, error) {
	n, err := t.store.Register(ctx, t.category, filenames)
	if err != nil {
		return 0, fmt.Errorf("register files: %w", err)
	}
	return n, nil
}

// Backfill registers every PDF in the bucket listing that has no tracker row.
func (t *FileTracker) Backfill(ctx context.Context, files []domain.StorageObject) (int64, error) {
	var names []string
	for _, f := range files {
		if isPDF(f.Name) && f.Size > 0 {
			names = append(names, f.Name)
		}
	}

	n, err := t.Register(ctx, names)
	if err != nil {
		return 0, err
	}
	t.logger.Info("backfill completed", "candidates", len(names), "registered", n)
	return n, nil
}

func (t *FileTracker) ResetAllProcessing(ctx context.Context) (int64, error) {
	n, err := t.store.ResetAll(ctx, t.category)
	if err != nil {
		return 0, fmt.Errorf("reset processing: %w", err)
	}
	t.logger.Info("processing state reset", "rows", n)
	return n, nil
}

func (t *FileTracker) GetProcessingStatus(ctx context.Context) (*domain.ProcessingStatus, error) {
	status, err := t.store.Status(ctx, t.category)
	if err != nil {
		return nil, fmt.Errorf("processing status: %w", err)
	}
	return status, nil
}
