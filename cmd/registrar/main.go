package main

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"os"
	"sync"

	"github.com/GoogleCloudPlatform/functions-framework-go/functions"
	cloudevents "github.com/cloudevents/sdk-go/v2"
	"github.com/jmoiron/sqlx"
	_ "github.com/lib/pq"

	"doc_ingest/internal/app"
	"doc_ingest/internal/config"
	"doc_ingest/internal/domain"
	"doc_ingest/internal/service"
	"doc_ingest/internal/storage/postgres"
)

// gcsEvent is the payload of a storage object finalized event.
type gcsEvent struct {
	Bucket string `json:"bucket"`
	Name   string `json:"name"`
	Size   int64  `json:"size,string"`
}

var (
	registrar *service.ObjectRegistrar
	once      sync.Once
	initErr   error
)

func init() {
	functions.CloudEvent("RegisterObject", registerObject)
}

// main is required by the functions framework.
func main() {}

func setup() (*service.ObjectRegistrar, error) {
	path := os.Getenv("CONFIG_PATH")
	if path == "" {
		path = "config.yaml"
	}

	cfg, err := config.Load(path)
	if err != nil {
		return nil, err
	}

	logger := app.SetupLogger(cfg.LogLevel)
	slog.SetDefault(logger)

	db, err := sqlx.Connect("postgres", cfg.Database.DSN())
	if err != nil {
		return nil, fmt.Errorf("connect to database: %w", err)
	}

	buckets := make(map[string]domain.Category, len(cfg.Categories))
	for cat, cc := range cfg.Categories {
		buckets[cc.Bucket] = cat
	}

	return service.NewObjectRegistrar(postgres.NewProcessingLogStore(db), buckets, logger), nil
}

func registerObject(ctx context.Context, e cloudevents.Event) error {
	once.Do(func() {
		registrar, initErr = setup()
	})
	if initErr != nil {
		slog.Error("failed to initialize registrar", "error", initErr)
		return initErr
	}

	var event gcsEvent
	if err := json.Unmarshal(e.Data(), &event); err != nil {
		slog.Error("failed to unmarshal event data", "error", err, "event_id", e.ID())
		return fmt.Errorf("json.Unmarshal: %w", err)
	}

	object := domain.StorageObject{Name: event.Name, Size: event.Size, Updated: e.Time()}
	if _, err := registrar.RegisterObject(ctx, object, event.Bucket); err != nil {
		slog.Error("failed to register object", "error", err, "bucket", event.Bucket, "file", event.Name)
		return err
	}
	return nil
}
