package service

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"doc_ingest/internal/domain"
)

// ApprovalService lets reviewers approve, correct and reject materialized records.
type ApprovalService struct {
	records      RecordStore
	logs         ProcessingLogStore
	objects      ObjectStore
	txManager    TransactionManager
	buckets      map[domain.Category]string
	signedURLTTL time.Duration
	now          func() time.Time
	logger       *slog.Logger
}

func NewApprovalService(
	records RecordStore,
	logs ProcessingLogStore,
	objects ObjectStore,
	txManager TransactionManager,
	buckets map[domain.Category]string,
	signedURLTTL time.Duration,
	logger *slog.Logger,
) *ApprovalService {
	return &ApprovalService{
		records:      records,
		logs:         logs,
		objects:      objects,
		txManager:    txManager,
		buckets:      buckets,
		signedURLTTL: signedURLTTL,
		now:          time.Now,
		logger:       logger.With("component", "approval"),
	}
}

func (s *ApprovalService) Get(ctx context.Context, category domain.Category, id int64) (*domain.Record, error) {
	return s.records.Get(ctx, category, id, false)
}

// Approve applies the optional edits and marks the record approved by actorID.
func (s *ApprovalService) Approve(ctx context.Context, category domain.Category, id int64, actorID string, edits *domain.RecordEdits) (*domain.Record, error) {
	var record *domain.Record
	err := s.txManager.WithTransaction(ctx, func(txCtx context.Context) error {
		r, err := s.records.Get(txCtx, category, id, true)
		if err != nil {
			return err
		}
		if r.Approved() {
			return domain.ErrAlreadyApproved
		}

		edits.Apply(r)
		now := s.now().UTC()
		r.ApprovedAt = &now
		r.ApprovedBy = &actorID

		if err := s.save(txCtx, r, edits); err != nil {
			return err
		}
		record = r
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.logger.Info("record approved", "category", category, "record_id", id, "actor", actorID)
	return record, nil
}

// Edit applies the edits and always clears a previous approval.
func (s *ApprovalService) Edit(ctx context.Context, category domain.Category, id int64, edits *domain.RecordEdits) (*domain.Record, error) {
	var record *domain.Record
	err := s.txManager.WithTransaction(ctx, func(txCtx context.Context) error {
		r, err := s.records.Get(txCtx, category, id, true)
		if err != nil {
			return err
		}

		edits.Apply(r)
		r.ApprovedAt = nil
		r.ApprovedBy = nil

		if err := s.save(txCtx, r, edits); err != nil {
			return err
		}
		record = r
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.logger.Info("record edited", "category", category, "record_id", id)
	return record, nil
}

func (s *ApprovalService) save(ctx context.Context, r *domain.Record, edits *domain.RecordEdits) error {
	if err := s.records.Update(ctx, r); err != nil {
		return fmt.Errorf("update record: %w", err)
	}
	if edits == nil || edits.Items == nil {
		return nil
	}
	if err := s.records.ReplaceItems(ctx, r.Category, r.ID, edits.Items); err != nil {
		return fmt.Errorf("replace items: %w", err)
	}
	r.Items = edits.Items
	return nil
}

// Reject quarantines a file that has not produced a record.
func (s *ApprovalService) Reject(ctx context.Context, category domain.Category, filename, reason string) error {
	exists, err := s.records.ExistsForFile(ctx, category, filename)
	if err != nil {
		return fmt.Errorf("check record: %w", err)
	}
	if exists {
		return domain.ErrRecordExists
	}

	tracker := NewFileTracker(category, s.logs, s.logger)
	if err := tracker.Quarantine(ctx, filename, "rejected: "+reason); err != nil {
		return err
	}

	s.logger.Info("file rejected", "category", category, "file", filename)
	return nil
}

// SignedURL returns a temporary download link for the record's source file,
// which must still be in the bucket.
func (s *ApprovalService) SignedURL(ctx context.Context, category domain.Category, id int64) (string, error) {
	bucket, ok := s.buckets[category]
	if !ok {
		return "", fmt.Errorf("%w: %q has no bucket", domain.ErrUnsupportedCategory, category)
	}

	record, err := s.records.Get(ctx, category, id, false)
	if err != nil {
		return "", err
	}

	exists, err := s.objects.Exists(ctx, bucket, record.FileName)
	if err != nil {
		return "", fmt.Errorf("check source file: %w", err)
	}
	if !exists {
		return "", fmt.Errorf("%w: %s/%s", domain.ErrObjectNotFound, bucket, record.FileName)
	}

	return s.objects.SignedURL(ctx, bucket, record.FileName, s.signedURLTTL)
}
