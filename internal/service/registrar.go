package service

import (
	"context"
	"log/slog"

	"doc_ingest/internal/domain"
)

// ObjectRegistrar registers objects announced by storage notifications with
// the tracker of the category owning the bucket.
type ObjectRegistrar struct {
	logs    ProcessingLogStore
	buckets map[string]domain.Category
	logger  *slog.Logger
}

func NewObjectRegistrar(logs ProcessingLogStore, buckets map[string]domain.Category, logger *slog.Logger) *ObjectRegistrar {
	return &ObjectRegistrar{
		logs:    logs,
		buckets: buckets,
		logger:  logger.With("component", "registrar"),
	}
}

// RegisterObject reports whether a new tracker row was created. Objects in
// unknown buckets, non-PDF objects and empty objects are ignored.
func (r *ObjectRegistrar) RegisterObject(ctx context.Context, object domain.StorageObject, bucket string) (bool, error) {
	category, ok := r.buckets[bucket]
	if !ok {
		r.logger.Debug("ignoring object from unknown bucket", "bucket", bucket, "file", object.Name)
		return false, nil
	}
	if !isPDF(object.Name) || object.Size == 0 {
		r.logger.Debug("ignoring object", "bucket", bucket, "file", object.Name, "size", object.Size)
		return false, nil
	}

	n, err := NewFileTracker(category, r.logs, r.logger).Register(ctx, []string{object.Name})
	if err != nil {
		return false, err
	}

	r.logger.Info("object registered", "category", category, "file", object.Name, "new", n > 0)
	return n > 0, nil
}
