package main

import (
	"context"
	"encoding/json"
	"errors"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"doc_ingest/internal/app"
	"doc_ingest/internal/config"
	"doc_ingest/internal/domain"
	"doc_ingest/internal/service"
)

const usage = `Usage: review [-config path] <command> [flags]

Commands:
  get      -category c -id n              print a record as JSON
  edit     -category c -id n -edits file  apply edits and clear approval
  approve  -category c -id n -actor a     approve a record, optionally with -edits
  reject   -category c -file name -reason r
                                          quarantine a file that has no record
  url      -category c -id n              print a signed link to the source file
  invalid                                 print quarantined file counts
`

func main() {
	configPath := flag.String("config", "config.yaml", "path to config file")
	flag.Usage = func() { fmt.Fprint(os.Stderr, usage) }
	flag.Parse()

	if flag.NArg() == 0 {
		flag.Usage()
		os.Exit(2)
	}

	logger := app.SetupLogger("info")

	cfg, err := config.Load(*configPath)
	if err != nil {
		logger.Error("failed to load config", "error", err)
		os.Exit(1)
	}
	logger = app.SetupLogger(cfg.LogLevel)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	a, err := app.New(ctx, cfg, logger, app.Options{})
	if err != nil {
		logger.Error("failed to initialize", "error", err)
		os.Exit(1)
	}
	defer a.Close()

	cmd := &command{
		approvals: a.ApprovalService(),
		invalid:   a.InvalidCounts(),
		out:       os.Stdout,
		logger:    logger,
	}

	if err := cmd.run(ctx, flag.Arg(0), flag.Args()[1:]); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return
		}
		logger.Error("command failed", "command", flag.Arg(0), "error", err)
		a.Close()
		os.Exit(1)
	}
}

type approvals interface {
	Get(ctx context.Context, category domain.Category, id int64) (*domain.Record, error)
	Edit(ctx context.Context, category domain.Category, id int64, edits *domain.RecordEdits) (*domain.Record, error)
	Approve(ctx context.Context, category domain.Category, id int64, actorID string, edits *domain.RecordEdits) (*domain.Record, error)
	Reject(ctx context.Context, category domain.Category, filename, reason string) error
	SignedURL(ctx context.Context, category domain.Category, id int64) (string, error)
}

type invalidCounter interface {
	InvalidCounts(ctx context.Context) *domain.InvalidCounts
}

var (
	_ approvals      = (*service.ApprovalService)(nil)
	_ invalidCounter = (*service.InvalidDocumentAggregator)(nil)
)

type command struct {
	approvals approvals
	invalid   invalidCounter
	out       io.Writer
	logger    *slog.Logger
}

type recordFlags struct {
	fs        *flag.FlagSet
	category  *string
	id        *int64
	editsPath *string
	actor     *string
	file      *string
	reason    *string
}

func newRecordFlags(name string) *recordFlags {
	fs := flag.NewFlagSet(name, flag.ContinueOnError)
	return &recordFlags{
		fs:        fs,
		category:  fs.String("category", "", "document category"),
		id:        fs.Int64("id", 0, "record id"),
		editsPath: fs.String("edits", "", "path to a JSON edits file"),
		actor:     fs.String("actor", "", "id of the approving user"),
		file:      fs.String("file", "", "source file name"),
		reason:    fs.String("reason", "", "rejection reason"),
	}
}

func (f *recordFlags) parse(args []string, needID bool) (domain.Category, error) {
	if err := f.fs.Parse(args); err != nil {
		return "", err
	}
	cat := domain.Category(*f.category)
	if !cat.Valid() {
		return "", fmt.Errorf("%w: %q", domain.ErrUnsupportedCategory, *f.category)
	}
	if needID && *f.id <= 0 {
		return "", errors.New("-id must be positive")
	}
	return cat, nil
}

func (f *recordFlags) edits() (*domain.RecordEdits, error) {
	if *f.editsPath == "" {
		return nil, nil
	}
	file, err := os.Open(*f.editsPath)
	if err != nil {
		return nil, err
	}
	defer file.Close()
	return parseEdits(file)
}

func (c *command) run(ctx context.Context, name string, args []string) error {
	f := newRecordFlags(name)

	switch name {
	case "get":
		cat, err := f.parse(args, true)
		if err != nil {
			return err
		}
		record, err := c.approvals.Get(ctx, cat, *f.id)
		if err != nil {
			return err
		}
		return c.print(record)

	case "edit":
		cat, err := f.parse(args, true)
		if err != nil {
			return err
		}
		edits, err := f.edits()
		if err != nil {
			return err
		}
		if edits == nil {
			return errors.New("-edits is required")
		}
		record, err := c.approvals.Edit(ctx, cat, *f.id, edits)
		if err != nil {
			return err
		}
		c.logger.Info("record edited", "category", cat, "id", record.ID)
		return c.print(record)

	case "approve":
		cat, err := f.parse(args, true)
		if err != nil {
			return err
		}
		if *f.actor == "" {
			return errors.New("-actor is required")
		}
		edits, err := f.edits()
		if err != nil {
			return err
		}
		record, err := c.approvals.Approve(ctx, cat, *f.id, *f.actor, edits)
		if err != nil {
			return err
		}
		c.logger.Info("record approved", "category", cat, "id", record.ID, "actor", *f.actor)
		return c.print(record)

	case "reject":
		cat, err := f.parse(args, false)
		if err != nil {
			return err
		}
		if *f.file == "" {
			return errors.New("-file is required")
		}
		if err := c.approvals.Reject(ctx, cat, *f.file, *f.reason); err != nil {
			return err
		}
		c.logger.Info("file rejected", "category", cat, "file", *f.file)
		return nil

	case "url":
		cat, err := f.parse(args, true)
		if err != nil {
			return err
		}
		url, err := c.approvals.SignedURL(ctx, cat, *f.id)
		if err != nil {
			return err
		}
		_, err = fmt.Fprintln(c.out, url)
		return err

	case "invalid":
		return c.print(c.invalid.InvalidCounts(ctx))

	default:
		return fmt.Errorf("unknown command %q", name)
	}
}

func (c *command) print(v any) error {
	enc := json.NewEncoder(c.out)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}
