package drive

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"google.golang.org/api/drive/v3"
	"google.golang.org/api/googleapi"
	"google.golang.org/api/option"

	"doc_ingest/internal/domain"
)

const (
	folderMimeType   = "application/vnd.google-apps.folder"
	nativeMimePrefix = "application/vnd.google-apps."
	xlsxMimeType     = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"
)

// exportFormats maps drive-native document types to the format they are
// exported as. Native types missing here cannot be downloaded and are skipped.
var exportFormats = map[string]string{
	"application/vnd.google-apps.document":     "application/pdf",
	"application/vnd.google-apps.presentation": "application/pdf",
	"application/vnd.google-apps.drawing":      "application/pdf",
	"application/vnd.google-apps.spreadsheet":  xlsxMimeType,
}

// Config holds drive source configuration.
type Config struct {
	CredentialsFile string
	MaxAttempts     int
	InitialBackoff  time.Duration
	MaxBackoff      time.Duration
}

// Source lists and downloads files from Google Drive folders.
type Source struct {
	service        *drive.Service
	maxAttempts    int
	initialBackoff time.Duration
	maxBackoff     time.Duration
	logger         *slog.Logger
}

// New creates a read-only drive source.
func New(ctx context.Context, cfg Config, logger *slog.Logger) (*Source, error) {
	opts := []option.ClientOption{option.WithScopes(drive.DriveReadonlyScope)}
	if cfg.CredentialsFile != "" {
		opts = append(opts, option.WithCredentialsFile(cfg.CredentialsFile))
	}

	svc, err := drive.NewService(ctx, opts...)
	if err != nil {
		return nil, fmt.Errorf("create drive service: %w", err)
	}

	maxBackoff := cfg.MaxBackoff
	if maxBackoff == 0 {
		maxBackoff = 30 * time.Second
	}

	return &Source{
		service:        svc,
		maxAttempts:    max(cfg.MaxAttempts, 1),
		initialBackoff: cfg.InitialBackoff,
		maxBackoff:     maxBackoff,
		logger:         logger.With("component", "drive"),
	}, nil
}

// List returns the files directly inside folderID. Folders and native
// documents without an export format are left out.
func (s *Source) List(ctx context.Context, folderID string) ([]domain.SourceFile, error) {
	query := fmt.Sprintf("'%s' in parents and trashed = false", folderID)

	var files []domain.SourceFile
	err := s.retry(ctx, "list", func() error {
		files = files[:0]
		return s.service.Files.List().
			Q(query).
			Fields("nextPageToken, files(id, name, mimeType, size, modifiedTime)").
			PageSize(1000).
			SupportsAllDrives(true).
			IncludeItemsFromAllDrives(true).
			Pages(ctx, func(page *drive.FileList) error {
				for _, f := range page.Files {
					if file, ok := s.toSourceFile(f); ok {
						files = append(files, file)
					}
				}
				return nil
			})
	})
	if err != nil {
		return nil, fmt.Errorf("list folder %s: %w", folderID, err)
	}

	s.logger.Debug("listed folder", "folder_id", folderID, "files", len(files))
	return files, nil
}

// Download writes the file content to w, exporting native documents.
// Retries are left to the caller, which owns the destination.
func (s *Source) Download(ctx context.Context, file domain.SourceFile, w io.Writer) error {
	var (
		resp *http.Response
		err  error
	)
	if file.ExportMimeType != "" {
		resp, err = s.service.Files.Export(file.ID, file.ExportMimeType).Context(ctx).Download()
	} else {
		resp, err = s.service.Files.Get(file.ID).SupportsAllDrives(true).Context(ctx).Download()
	}
	if err != nil {
		return fmt.Errorf("download %s: %w", file.ID, err)
	}
	defer resp.Body.Close()

	if _, err := io.Copy(w, resp.Body); err != nil {
		return fmt.Errorf("read %s: %w", file.ID, err)
	}
	return nil
}

func (s *Source) Exists(ctx context.Context, fileID string) (bool, error) {
	f, err := s.service.Files.Get(fileID).Fields("id, trashed").SupportsAllDrives(true).Context(ctx).Do()
	if err != nil {
		var gerr *googleapi.Error
		if errors.As(err, &gerr) && gerr.Code == http.StatusNotFound {
			return false, nil
		}
		return false, fmt.Errorf("get %s: %w", fileID, err)
	}
	return !f.Trashed, nil
}

func (s *Source) toSourceFile(f *drive.File) (domain.SourceFile, bool) {
	if f.MimeType == folderMimeType {
		return domain.SourceFile{}, false
	}

	file := domain.SourceFile{
		ID:       f.Id,
		Name:     f.Name,
		MimeType: f.MimeType,
		Size:     f.Size,
	}
	if t, err := time.Parse(time.RFC3339, f.ModifiedTime); err == nil {
		file.ModifiedTime = t
	}

	if strings.HasPrefix(f.MimeType, nativeMimePrefix) {
		export, ok := exportFormats[f.MimeType]
		if !ok {
			s.logger.Debug("skipping native file without export format", "name", f.Name, "mime_type", f.MimeType)
			return domain.SourceFile{}, false
		}
		file.ExportMimeType = export
	}

	return file, true
}

func (s *Source) retry(ctx context.Context, op string, fn func() error) error {
	var err error
	for attempt := 1; attempt <= s.maxAttempts; attempt++ {
		err = fn()
		if err == nil {
			return nil
		}

		if attempt == s.maxAttempts {
			break
		}

		backoff := s.calculateBackoff(attempt)
		s.logger.Warn("drive request failed, retrying",
			"op", op,
			"attempt", attempt,
			"backoff", backoff,
			"error", err,
		)

		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-time.After(backoff):
		}
	}
	return fmt.Errorf("after %d attempts: %w", s.maxAttempts, err)
}

func (s *Source) calculateBackoff(attempt int) time.Duration {
	backoff := s.initialBackoff
	for i := 1; i < attempt; i++ {
		backoff *= 2
	}
	if backoff > s.maxBackoff {
		backoff = s.maxBackoff
	}
	return backoff
}
