package app

import (
	"context"
	"fmt"
	"log/slog"
	"os"

	"github.com/jmoiron/sqlx"
	_ "github.com/lib/pq"

	"doc_ingest/internal/config"
	"doc_ingest/internal/domain"
	"doc_ingest/internal/extraction"
	"doc_ingest/internal/lock"
	"doc_ingest/internal/publisher"
	"doc_ingest/internal/service"
	"doc_ingest/internal/source/drive"
	"doc_ingest/internal/storage/gcs"
	"doc_ingest/internal/storage/postgres"
)

// Options select the optional clients a command needs.
type Options struct {
	Source     bool
	Extraction bool
}

// App holds the clients and stores shared by the commands.
type App struct {
	cfg    *config.Config
	logger *slog.Logger

	DB        *sqlx.DB
	Objects   *gcs.Store
	Source    *drive.Source
	Engine    *extraction.Engine
	Logs      *postgres.ProcessingLogStore
	Records   *postgres.RecordStore
	TxManager *postgres.TransactionManager
	Publisher service.Publisher
	Locker    service.RunLocker

	closers []func() error
}

func New(ctx context.Context, cfg *config.Config, logger *slog.Logger, opts Options) (*App, error) {
	a := &App{cfg: cfg, logger: logger}
	if err := a.init(ctx, opts); err != nil {
		a.Close()
		return nil, err
	}
	return a, nil
}

func (a *App) init(ctx context.Context, opts Options) error {
	db, err := sqlx.Connect("postgres", a.cfg.Database.DSN())
	if err != nil {
		return fmt.Errorf("connect to database: %w", err)
	}
	a.DB = db
	a.closers = append(a.closers, db.Close)
	a.logger.Info("connected to database")

	a.Logs = postgres.NewProcessingLogStore(db)
	a.Records = postgres.NewRecordStore(db)
	a.TxManager = postgres.NewTransactionManager(db)

	objects, err := gcs.New(ctx, gcs.Config{CredentialsFile: a.cfg.Storage.CredentialsFile}, a.logger)
	if err != nil {
		return fmt.Errorf("create storage client: %w", err)
	}
	a.Objects = objects
	a.closers = append(a.closers, objects.Close)

	if opts.Source {
		source, err := drive.New(ctx, drive.Config{
			CredentialsFile: a.cfg.Drive.CredentialsFile,
			MaxAttempts:     a.cfg.Drive.Retry.MaxAttempts,
			InitialBackoff:  a.cfg.Drive.Retry.InitialBackoff,
		}, a.logger)
		if err != nil {
			return fmt.Errorf("create drive client: %w", err)
		}
		a.Source = source
	}

	if opts.Extraction {
		engine, err := extraction.New(ctx, extraction.Config{
			ProjectID:       a.cfg.Extraction.ProjectID,
			Location:        a.cfg.Extraction.Location,
			Model:           a.cfg.Extraction.Model,
			CredentialsFile: a.cfg.Extraction.CredentialsFile,
			Temperature:     a.cfg.Extraction.Temperature,
		}, a.logger)
		if err != nil {
			return fmt.Errorf("create extraction client: %w", err)
		}
		a.Engine = engine
		a.closers = append(a.closers, engine.Close)
	}

	if a.cfg.RabbitMQ.Enabled {
		rabbitMQ, err := publisher.NewRabbitMQ(publisher.Config{
			URL:        a.cfg.RabbitMQ.URL,
			Exchange:   a.cfg.RabbitMQ.Exchange,
			RoutingKey: a.cfg.RabbitMQ.RoutingKey,
			QueueName:  a.cfg.RabbitMQ.QueueName,
		}, a.logger)
		if err != nil {
			return fmt.Errorf("connect to rabbitmq: %w", err)
		}
		a.Publisher = rabbitMQ
		a.closers = append(a.closers, rabbitMQ.Close)
	}

	if a.cfg.Redis.Addr != "" {
		locker, err := lock.NewRedisLocker(ctx, lock.Config{
			Addr:     a.cfg.Redis.Addr,
			Password: a.cfg.Redis.Password,
			DB:       a.cfg.Redis.DB,
			TTL:      a.cfg.Redis.LockTTL,
		}, a.logger)
		if err != nil {
			return fmt.Errorf("connect to redis: %w", err)
		}
		a.Locker = locker
		a.closers = append(a.closers, locker.Close)
	}

	return nil
}

// Runner builds the processing runner of one configured category.
func (a *App) Runner(category domain.Category) (*service.BucketRunner, error) {
	if a.Engine == nil {
		return nil, fmt.Errorf("extraction client is not initialized")
	}

	cc, err := a.cfg.Category(category)
	if err != nil {
		return nil, err
	}
	docType, err := service.DocumentTypeFor(category)
	if err != nil {
		return nil, err
	}

	tracker := service.NewFileTracker(category, a.Logs, a.logger)
	processor := service.NewDocumentProcessor(
		docType,
		cc.Bucket,
		tracker,
		a.Objects,
		a.Engine,
		extraction.NewPDFInspector(),
		a.Records,
		a.TxManager,
		a.Publisher,
		a.cfg.Processing.MaxFileSizeBytes(),
		a.logger,
	)

	return service.NewBucketRunner(
		category,
		cc.Bucket,
		a.Objects,
		tracker,
		processor,
		a.Engine,
		a.Locker,
		a.cfg.Processing.Delay,
		a.logger,
	), nil
}

func (a *App) SyncService() (*service.SyncService, error) {
	if a.Source == nil {
		return nil, fmt.Errorf("drive client is not initialized")
	}
	return service.NewSyncService(a.Source, a.Objects, a.Logs, a.logger, a.cfg.Sync, a.cfg.Categories), nil
}

func (a *App) ApprovalService() *service.ApprovalService {
	buckets := make(map[domain.Category]string, len(a.cfg.Categories))
	for cat, cc := range a.cfg.Categories {
		buckets[cat] = cc.Bucket
	}
	return service.NewApprovalService(a.Records, a.Logs, a.Objects, a.TxManager, buckets, a.cfg.Processing.SignedURLTTL, a.logger)
}

func (a *App) InvalidCounts() *service.InvalidDocumentAggregator {
	return service.NewInvalidDocumentAggregator(a.Logs, a.cfg.ConfiguredCategories(), a.cfg.Processing.InvalidCacheTTL, nil, a.logger)
}

// Close releases clients in reverse order of creation.
func (a *App) Close() {
	for i := len(a.closers) - 1; i >= 0; i-- {
		if err := a.closers[i](); err != nil {
			a.logger.Warn("failed to close client", "error", err)
		}
	}
	a.closers = nil
}

// SetupLogger builds the JSON logger used by every command.
func SetupLogger(level string) *slog.Logger {
	var logLevel slog.Level
	switch level {
	case "debug":
		logLevel = slog.LevelDebug
	case "warn":
		logLevel = slog.LevelWarn
	case "error":
		logLevel = slog.LevelError
	default:
		logLevel = slog.LevelInfo
	}

	opts := &slog.HandlerOptions{Level: logLevel}
	handler := slog.NewJSONHandler(os.Stdout, opts)
	return slog.New(handler)
}
