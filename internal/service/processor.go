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

const (
	pdfMimeType             = "application/pdf"
	alreadyProcessedMessage = "file processed by another run"
)

// DocumentProcessor runs one bucket file of a category through extraction and
// materializes the result.
type DocumentProcessor struct {
	docType     DocumentType
	bucket      string
	tracker     *FileTracker
	objects     ObjectStore
	engine      ExtractionEngine
	inspector   PDFInspector
	records     RecordStore
	txManager   TransactionManager
	publisher   Publisher
	maxFileSize int64
	logger      *slog.Logger
}

func NewDocumentProcessor(
	docType DocumentType,
	bucket string,
	tracker *FileTracker,
	objects ObjectStore,
	engine ExtractionEngine,
	inspector PDFInspector,
	records RecordStore,
	txManager TransactionManager,
	publisher Publisher,
	maxFileSize int64,
	logger *slog.Logger,
) *DocumentProcessor {
	return &DocumentProcessor{
		docType:     docType,
		bucket:      bucket,
		tracker:     tracker,
		objects:     objects,
		engine:      engine,
		inspector:   inspector,
		records:     records,
		txManager:   txManager,
		publisher:   publisher,
		maxFileSize: maxFileSize,
		logger:      logger.With("category", docType.Category, "bucket", bucket),
	}
}

// ProcessFile never returns nil. Failures are recorded on the tracker and
// reported through the result.
func (p *DocumentProcessor) ProcessFile(ctx context.Context, object domain.StorageObject, opts domain.ProcessOptions) *domain.ProcessingResult {
	result := &domain.ProcessingResult{FileName: object.Name}
	logger := p.logger.With("file", object.Name)

	decision, err := p.tracker.TrackFileProcessing(ctx, object.Name, opts.Force)
	if err != nil {
		logger.Error("failed to check tracker", "error", err)
		result.Status = domain.ResultFailed
		result.Err = err
		result.Message = truncateMessage(err.Error())
		return result
	}
	if decision.ShouldSkip {
		logger.Debug("skipping file", "reason", decision.Reason)
		result.Status = domain.ResultSkipped
		result.Message = decision.Reason
		return result
	}

	err = p.process(ctx, object, decision.Entry, result, logger)
	switch {
	case errors.Is(err, domain.ErrAlreadyProcessed):
		logger.Warn("file was processed by another run")
		result.Status = domain.ResultSkipped
		result.Message = alreadyProcessedMessage
	case err != nil:
		p.fail(ctx, decision.Entry, result, err, logger)
	}

	return result
}

func (p *DocumentProcessor) process(
	ctx context.Context,
	object domain.StorageObject,
	entry *domain.ProcessingLogEntry,
	result *domain.ProcessingResult,
	logger *slog.Logger,
) error {
	if p.maxFileSize > 0 && object.Size > p.maxFileSize {
		return fmt.Errorf("%w: %d bytes, limit %d", domain.ErrFileTooLarge, object.Size, p.maxFileSize)
	}

	data, err := p.objects.Download(ctx, p.bucket, object.Name)
	if err != nil {
		return fmt.Errorf("download: %w", err)
	}

	pages, err := p.inspector.PageCount(data)
	if err != nil {
		return fmt.Errorf("validate pdf: %w", err)
	}

	raw, err := p.engine.Extract(ctx, data, pdfMimeType, p.docType.Schema, p.docType.Prompt)
	if err != nil {
		return fmt.Errorf("extract: %w", err)
	}

	decoded, err := p.docType.Decode(raw)
	if err != nil {
		return fmt.Errorf("decode extraction: %w", err)
	}

	if !decoded.Valid {
		message := fmt.Sprintf("not %s: %s", p.docType.Category.Label(), decoded.Reason)
		if err := p.tracker.MarkAsInvalid(ctx, entry, message); err != nil {
			return err
		}

		logger.Info("document quarantined", "reason", decoded.Reason)
		result.Status = domain.ResultInvalid
		result.Message = truncateMessage(message)
		p.publish(ctx, domain.EventQuarantined, object.Name, 0, result.Message, logger)
		return nil
	}

	record := decoded.Record
	record.Category = p.docType.Category
	record.FileName = object.Name

	var recordID int64
	err = p.txManager.WithTransaction(ctx, func(txCtx context.Context) error {
		id, err := p.records.Create(txCtx, record)
		if err != nil {
			return fmt.Errorf("create record: %w", err)
		}
		recordID = id

		message := fmt.Sprintf("record %d created from %d page(s) with %d item(s)", id, pages, len(record.Items))
		return p.tracker.MarkAsProcessed(txCtx, entry, message)
	})
	if err != nil {
		return err
	}

	logger.Info("document materialized", "record_id", recordID, "items", len(record.Items), "pages", pages)
	result.Status = domain.ResultProcessed
	result.RecordID = recordID
	p.publish(ctx, domain.EventMaterialized, object.Name, recordID, "", logger)
	return nil
}

func (p *DocumentProcessor) fail(
	ctx context.Context,
	entry *domain.ProcessingLogEntry,
	result *domain.ProcessingResult,
	err error,
	logger *slog.Logger,
) {
	message := truncateMessage(err.Error())

	markErr := p.tracker.MarkAsFailed(ctx, entry, message)
	if errors.Is(markErr, domain.ErrAlreadyProcessed) {
		logger.Warn("file was processed by another run", "error", err)
		result.Status = domain.ResultSkipped
		result.Message = alreadyProcessedMessage
		return
	}

	logger.Error("failed to process file", "error", err)
	result.Status = domain.ResultFailed
	result.Err = err
	result.Message = message

	if markErr != nil {
		logger.Error("failed to record processing failure", "error", markErr)
	}
}

func (p *DocumentProcessor) publish(
	ctx context.Context,
	action domain.EventAction,
	fileName string,
	recordID int64,
	message string,
	logger *slog.Logger,
) {
	if p.publisher == nil {
		return
	}

	event := &domain.DocumentEvent{
		ID:        uuid.NewString(),
		Action:    action,
		Category:  p.docType.Category,
		FileName:  fileName,
		RecordID:  recordID,
		Message:   message,
		Timestamp: time.Now().UTC(),
	}
	if err := p.publisher.Publish(ctx, event); err != nil {
		logger.Warn("failed to publish document event", "action", action, "error", err)
	}
}
