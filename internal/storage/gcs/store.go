package gcs

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"time"

	"cloud.google.com/go/storage"
	"google.golang.org/api/googleapi"
	"google.golang.org/api/iterator"
	"google.golang.org/api/option"

	"doc_ingest/internal/domain"
)

type Config struct {
	CredentialsFile string
}

// Store is the object store backed by Google Cloud Storage.
type Store struct {
	client *storage.Client
	logger *slog.Logger
}

func New(ctx context.Context, cfg Config, logger *slog.Logger) (*Store, error) {
	var opts []option.ClientOption
	if cfg.CredentialsFile != "" {
		opts = append(opts, option.WithCredentialsFile(cfg.CredentialsFile))
	}

	client, err := storage.NewClient(ctx, opts...)
	if err != nil {
		return nil, fmt.Errorf("create storage client: %w", err)
	}

	return &Store{client: client, logger: logger.With("component", "gcs")}, nil
}

func (s *Store) List(ctx context.Context, bucket string) ([]domain.StorageObject, error) {
	it := s.client.Bucket(bucket).Objects(ctx, nil)

	var objects []domain.StorageObject
	for {
		attrs, err := it.Next()
		if errors.Is(err, iterator.Done) {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("list gs://%s: %w", bucket, err)
		}
		objects = append(objects, domain.StorageObject{
			Name:    attrs.Name,
			Size:    attrs.Size,
			Updated: attrs.Updated,
		})
	}
	return objects, nil
}

func (s *Store) Exists(ctx context.Context, bucket, path string) (bool, error) {
	_, err := s.client.Bucket(bucket).Object(path).Attrs(ctx)
	if errors.Is(err, storage.ErrObjectNotExist) {
		return false, nil
	}
	if err != nil {
		return false, fmt.Errorf("stat gs://%s/%s: %w", bucket, path, err)
	}
	return true, nil
}

// Upload writes r to bucket/path. Unless upsert is set the write only succeeds
// when the object does not exist yet; an existing object yields
// domain.ErrDuplicateObject.
func (s *Store) Upload(ctx context.Context, bucket, path string, r io.Reader, upsert bool) error {
	obj := s.client.Bucket(bucket).Object(path)
	if !upsert {
		exists, err := s.Exists(ctx, bucket, path)
		if err != nil {
			return err
		}
		if exists {
			return domain.ErrDuplicateObject
		}
		obj = obj.If(storage.Conditions{DoesNotExist: true})
	}

	writeCtx, cancel := context.WithCancel(ctx)
	defer cancel()

	if err := writeObject(obj.NewWriter(writeCtx), cancel, r); err != nil {
		if isPreconditionFailed(err) {
			return domain.ErrDuplicateObject
		}
		return fmt.Errorf("write gs://%s/%s: %w", bucket, path, err)
	}

	s.logger.Debug("uploaded object", "bucket", bucket, "path", path)
	return nil
}

func (s *Store) Download(ctx context.Context, bucket, path string) ([]byte, error) {
	reader, err := s.client.Bucket(bucket).Object(path).NewReader(ctx)
	if err != nil {
		return nil, fmt.Errorf("open gs://%s/%s: %w", bucket, path, err)
	}
	defer reader.Close()

	data, err := io.ReadAll(reader)
	if err != nil {
		return nil, fmt.Errorf("read gs://%s/%s: %w", bucket, path, err)
	}
	return data, nil
}

func (s *Store) SignedURL(_ context.Context, bucket, path string, ttl time.Duration) (string, error) {
	url, err := s.client.Bucket(bucket).SignedURL(path, &storage.SignedURLOptions{
		Scheme:  storage.SigningSchemeV4,
		Method:  http.MethodGet,
		Expires: time.Now().Add(ttl),
	})
	if err != nil {
		return "", fmt.Errorf("sign gs://%s/%s: %w", bucket, path, err)
	}
	return url, nil
}

func (s *Store) Close() error {
	return s.client.Close()
}

// writeObject copies r into w and finalizes it. A failed copy cancels the
// writer's context before closing so no partial object is committed.
func writeObject(w io.WriteCloser, cancel context.CancelFunc, r io.Reader) error {
	if _, err := io.Copy(w, r); err != nil {
		cancel()
		_ = w.Close()
		return err
	}
	return w.Close()
}

func isPreconditionFailed(err error) bool {
	var gerr *googleapi.Error
	return errors.As(err, &gerr) && gerr.Code == http.StatusPreconditionFailed
}
