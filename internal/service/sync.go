package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"sync"
	"time"

	"golang.org/x/sync/errgroup"

	"doc_ingest/internal/config"
	"doc_ingest/internal/domain"
)

// SyncService copies new files from drive folders into their category buckets
// and registers them with the tracker.
type SyncService struct {
	source     SourceRepository
	objects    ObjectStore
	logs       ProcessingLogStore
	logger     *slog.Logger
	config     config.SyncConfig
	categories map[domain.Category]config.CategoryConfig
}

func NewSyncService(
	source SourceRepository,
	objects ObjectStore,
	logs ProcessingLogStore,
	logger *slog.Logger,
	cfg config.SyncConfig,
	categories map[domain.Category]config.CategoryConfig,
) *SyncService {
	if cfg.BatchSize < 1 {
		cfg.BatchSize = 1
	}
	if cfg.Retry.MaxAttempts < 1 {
		cfg.Retry.MaxAttempts = 1
	}
	return &SyncService{
		source:     source,
		objects:    objects,
		logs:       logs,
		logger:     logger.With("component", "sync"),
		config:     cfg,
		categories: categories,
	}
}

type uploadJob struct {
	file domain.SourceFile
	name string
}

type syncOutcome int

const (
	outcomeUploaded syncOutcome = iota
	outcomeSkipped
	// the file was deleted from the source while the sync ran
	outcomeRemoved
)

// SyncAll syncs every configured category with a source folder, one after
// another. A category that fails does not stop the others.
func (s *SyncService) SyncAll(ctx context.Context) ([]*domain.SyncResult, error) {
	var (
		results []*domain.SyncResult
		errs    []error
	)

	for _, cat := range domain.AllCategories() {
		cc, ok := s.categories[cat]
		if !ok || cc.SourceFolderID == "" {
			continue
		}

		result, err := s.SyncFolder(ctx, cat, cc.SourceFolderID, cc.Bucket)
		if err != nil {
			s.logger.Error("category sync failed", "category", cat, "error", err)
			errs = append(errs, fmt.Errorf("sync %s: %w", cat, err))
			continue
		}
		results = append(results, result)
	}

	return results, errors.Join(errs...)
}

// SyncFolder uploads every file of the folder whose sanitized name is not in
// the bucket yet. Per-file failures are collected in the result.
func (s *SyncService) SyncFolder(ctx context.Context, category domain.Category, folderID, bucket string) (*domain.SyncResult, error) {
	startTime := time.Now()
	logger := s.logger.With("category", category, "bucket", bucket)
	logger.Info("starting sync", "folder_id", folderID, "batch_size", s.config.BatchSize)

	files, err := s.source.List(ctx, folderID)
	if err != nil {
		return nil, fmt.Errorf("list source folder: %w", err)
	}

	objects, err := s.objects.List(ctx, bucket)
	if err != nil {
		return nil, fmt.Errorf("list bucket: %w", err)
	}

	toUpload := s.filterForUpload(files, objects, logger)

	result := &domain.SyncResult{
		Category: category,
		Total:    len(toUpload),
	}
	logger.Info("files to upload", "source", len(files), "bucket", len(objects), "new", len(toUpload))

	if len(toUpload) == 0 {
		result.Duration = time.Since(startTime)
		return result, nil
	}

	tempDir, err := os.MkdirTemp(s.config.TempDir, "doc-sync-*")
	if err != nil {
		return nil, fmt.Errorf("create temp dir: %w", err)
	}
	defer func() {
		if err := os.RemoveAll(tempDir); err != nil {
			logger.Warn("failed to remove temp dir", "dir", tempDir, "error", err)
		}
	}()

	for start := 0; start < len(toUpload); start += s.config.BatchSize {
		end := min(start+s.config.BatchSize, len(toUpload))
		s.syncBatch(ctx, category, bucket, tempDir, toUpload[start:end], result, logger)
	}

	result.Duration = time.Since(startTime)

	logger.Info("sync completed",
		"uploaded", result.Uploaded,
		"skipped", result.Skipped,
		"failed", result.Failed,
		"total", result.Total,
		"duration", result.Duration,
	)

	return result, nil
}

func (s *SyncService) filterForUpload(files []domain.SourceFile, objects []domain.StorageObject, logger *slog.Logger) []uploadJob {
	existing := make(map[string]struct{}, len(objects))
	for _, o := range objects {
		existing[o.Name] = struct{}{}
	}

	seen := make(map[string]struct{}, len(files))
	var jobs []uploadJob
	for _, f := range files {
		name := ObjectName(f)
		if name == "" {
			continue
		}
		if _, ok := existing[name]; ok {
			continue
		}
		if _, ok := seen[name]; ok {
			logger.Warn("source folder has several files with the same name", "file", name, "id", f.ID)
			continue
		}
		seen[name] = struct{}{}
		jobs = append(jobs, uploadJob{file: f, name: name})
	}
	return jobs
}

func (s *SyncService) syncBatch(
	ctx context.Context,
	category domain.Category,
	bucket, tempDir string,
	jobs []uploadJob,
	result *domain.SyncResult,
	logger *slog.Logger,
) {
	var (
		g          errgroup.Group
		mu         sync.Mutex
		registered []string
	)

	for _, job := range jobs {
		g.Go(func() error {
			outcome, err := s.syncFile(ctx, bucket, tempDir, job)

			mu.Lock()
			defer mu.Unlock()

			if err != nil {
				logger.Error("failed to sync file", "file", job.name, "error", err)
				result.Failed++
				result.FailedFiles = append(result.FailedFiles, domain.FailedFile{
					Name:  job.name,
					Error: err.Error(),
				})
				return nil
			}

			switch outcome {
			case outcomeRemoved:
				logger.Info("file removed from source during sync", "file", job.name)
				result.Skipped++
				return nil
			case outcomeSkipped:
				result.Skipped++
			default:
				result.Uploaded++
			}
			registered = append(registered, job.name)
			return nil
		})
	}
	_ = g.Wait()

	if len(registered) == 0 {
		return
	}
	if _, err := s.logs.Register(ctx, category, registered); err != nil {
		logger.Error("failed to register uploaded files", "files", len(registered), "error", err)
	}
}

func (s *SyncService) syncFile(ctx context.Context, bucket, tempDir string, job uploadJob) (syncOutcome, error) {
	tmpPath, err := s.downloadWithRetry(ctx, tempDir, job.file)
	if err != nil {
		if exists, existsErr := s.source.Exists(ctx, job.file.ID); existsErr == nil && !exists {
			return outcomeRemoved, nil
		}
		return 0, fmt.Errorf("download: %w", err)
	}
	defer os.Remove(tmpPath)

	f, err := os.Open(tmpPath)
	if err != nil {
		return 0, fmt.Errorf("open temp file: %w", err)
	}
	defer f.Close()

	err = s.objects.Upload(ctx, bucket, job.name, f, false)
	if errors.Is(err, domain.ErrDuplicateObject) {
		return outcomeSkipped, nil
	}
	if err != nil {
		return 0, fmt.Errorf("upload: %w", err)
	}
	return outcomeUploaded, nil
}

func (s *SyncService) downloadWithRetry(ctx context.Context, tempDir string, file domain.SourceFile) (string, error) {
	var err error
	for attempt := 0; attempt < s.config.Retry.MaxAttempts; attempt++ {
		if attempt > 0 {
			backoff := s.calculateBackoff(attempt - 1)
			s.logger.Warn("download failed, retrying",
				"file", file.Name,
				"attempt", attempt,
				"backoff", backoff,
				"error", err,
			)
			select {
			case <-ctx.Done():
				return "", ctx.Err()
			case <-time.After(backoff):
			}
		}

		var path string
		path, err = s.download(ctx, tempDir, file)
		if err == nil {
			return path, nil
		}
	}
	return "", fmt.Errorf("after %d attempts: %w", s.config.Retry.MaxAttempts, err)
}

func (s *SyncService) download(ctx context.Context, tempDir string, file domain.SourceFile) (string, error) {
	f, err := os.CreateTemp(tempDir, "download-*")
	if err != nil {
		return "", err
	}

	if err := s.source.Download(ctx, file, f); err != nil {
		f.Close()
		os.Remove(f.Name())
		return "", err
	}
	if err := f.Close(); err != nil {
		os.Remove(f.Name())
		return "", err
	}
	return f.Name(), nil
}

// calculateBackoff returns initial_backoff * 2^attempt.
func (s *SyncService) calculateBackoff(attempt int) time.Duration {
	return s.config.Retry.InitialBackoff << attempt
}
