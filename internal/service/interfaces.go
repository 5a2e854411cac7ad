package service

//go:generate mockgen -source=interfaces.go -destination=mocks/mocks.go -package=mocks

import (
	"context"
	"encoding/json"
	"io"
	"time"

	"doc_ingest/internal/domain"
)

type ObjectStore interface {
	List(ctx context.Context, bucket string) ([]domain.StorageObject, error)
	Exists(ctx context.Context, bucket, path string) (bool, error)
	Upload(ctx context.Context, bucket, path string, r io.Reader, upsert bool) error
	Download(ctx context.Context, bucket, path string) ([]byte, error)
	SignedURL(ctx context.Context, bucket, path string, ttl time.Duration) (string, error)
}

type SourceRepository interface {
	List(ctx context.Context, folderID string) ([]domain.SourceFile, error)
	Download(ctx context.Context, file domain.SourceFile, w io.Writer) error
	Exists(ctx context.Context, fileID string) (bool, error)
}

type ExtractionEngine interface {
	Extract(ctx context.Context, data []byte, mimeType string, schema *domain.Schema, prompt string) (json.RawMessage, error)
	Ready(ctx context.Context) error
}

type PDFInspector interface {
	PageCount(data []byte) (int, error)
}

type ProcessingLogStore interface {
	Get(ctx context.Context, category domain.Category, filename string) (*domain.ProcessingLogEntry, error)
	GetByFilenames(ctx context.Context, category domain.Category, filenames []string) ([]domain.ProcessingLogEntry, error)
	Register(ctx context.Context, category domain.Category, filenames []string) (int64, error)
	Reset(ctx context.Context, category domain.Category, filename string) (bool, error)
	MarkProcessed(ctx context.Context, category domain.Category, filename, message string) (bool, error)
	MarkInvalid(ctx context.Context, category domain.Category, filename, message string) error
	MarkFailed(ctx context.Context, category domain.Category, filename, message string) error
	Quarantine(ctx context.Context, category domain.Category, filename, message string) error
	ResetAll(ctx context.Context, category domain.Category) (int64, error)
	Status(ctx context.Context, category domain.Category) (*domain.ProcessingStatus, error)
	CountInvalid(ctx context.Context, category domain.Category) (int, error)
}

type RecordStore interface {
	Create(ctx context.Context, record *domain.Record) (int64, error)
	Get(ctx context.Context, category domain.Category, id int64, forUpdate bool) (*domain.Record, error)
	Update(ctx context.Context, record *domain.Record) error
	ReplaceItems(ctx context.Context, category domain.Category, recordID int64, items []domain.LineItem) error
	ExistsForFile(ctx context.Context, category domain.Category, fileName string) (bool, error)
}

type TransactionManager interface {
	WithTransaction(ctx context.Context, fn func(ctx context.Context) error) error
}

type Publisher interface {
	Publish(ctx context.Context, event *domain.DocumentEvent) error
	Close() error
}

type RunLocker interface {
	Acquire(ctx context.Context, key string) (release func(), err error)
}

type FileProcessor interface {
	ProcessFile(ctx context.Context, object domain.StorageObject, opts domain.ProcessOptions) *domain.ProcessingResult
}
