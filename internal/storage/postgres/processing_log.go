package postgres

import (
	"context"
	"database/sql"
	"errors"

	"github.com/jmoiron/sqlx"
	"github.com/lib/pq"

	"doc_ingest/internal/domain"
)

const processingLogColumns = `id, category, filename, is_processed, processed_at, attempted_at,
		message, is_valid, created_at, updated_at`

// ProcessingLogStore persists tracker state. One table serves every category;
// (category, filename) is unique.
type ProcessingLogStore struct {
	db *sqlx.DB
}

func NewProcessingLogStore(db *sqlx.DB) *ProcessingLogStore {
	return &ProcessingLogStore{db: db}
}

func (s *ProcessingLogStore) Get(ctx context.Context, category domain.Category, filename string) (*domain.ProcessingLogEntry, error) {
	var entry domain.ProcessingLogEntry
	query := `SELECT ` + processingLogColumns + `
		FROM processing_log
		WHERE category = $1 AND filename = $2`

	err := sqlx.GetContext(ctx, GetExecutor(ctx, s.db), &entry, query, category, filename)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, domain.ErrNotTracked
	}
	if err != nil {
		return nil, err
	}
	return &entry, nil
}

func (s *ProcessingLogStore) GetByFilenames(ctx context.Context, category domain.Category, filenames []string) ([]domain.ProcessingLogEntry, error) {
	if len(filenames) == 0 {
		return nil, nil
	}

	query := `SELECT ` + processingLogColumns + `
		FROM processing_log
		WHERE category = $1 AND filename = ANY($2)`

	var entries []domain.ProcessingLogEntry
	err := sqlx.SelectContext(ctx, GetExecutor(ctx, s.db), &entries, query, category, pq.Array(filenames))
	return entries, err
}

// Register creates unprocessed rows for filenames that are not tracked yet and
// returns how many were created.
func (s *ProcessingLogStore) Register(ctx context.Context, category domain.Category, filenames []string) (int64, error) {
	if len(filenames) == 0 {
		return 0, nil
	}

	query := `
		INSERT INTO processing_log (category, filename)
		SELECT $1, f FROM unnest($2::text[]) AS f
		ON CONFLICT (category, filename) DO NOTHING`

	res, err := GetExecutor(ctx, s.db).ExecContext(ctx, query, category, pq.Array(filenames))
	if err != nil {
		return 0, err
	}
	return res.RowsAffected()
}

// Reset clears a processed row so it can be extracted again. It reports false
// when the row was not in a processed state.
func (s *ProcessingLogStore) Reset(ctx context.Context, category domain.Category, filename string) (bool, error) {
	query := `
		UPDATE processing_log SET
			is_processed = FALSE,
			processed_at = NULL,
			attempted_at = NULL,
			message = NULL,
			is_valid = TRUE,
			updated_at = NOW()
		WHERE category = $1 AND filename = $2 AND is_processed = TRUE`

	return s.execAffected(ctx, query, category, filename)
}

// MarkProcessed only transitions rows that are still unprocessed, so two
// runners racing on one file cannot both succeed.
func (s *ProcessingLogStore) MarkProcessed(ctx context.Context, category domain.Category, filename, message string) (bool, error) {
	query := `
		UPDATE processing_log SET
			is_processed = TRUE,
			is_valid = TRUE,
			processed_at = NOW(),
			attempted_at = NOW(),
			message = $3,
			updated_at = NOW()
		WHERE category = $1 AND filename = $2 AND is_processed = FALSE`

	return s.execAffected(ctx, query, category, filename, message)
}

// MarkInvalid quarantines a row that is still unprocessed. A row another run
// already finished yields domain.ErrAlreadyProcessed.
func (s *ProcessingLogStore) MarkInvalid(ctx context.Context, category domain.Category, filename, message string) error {
	query := `
		UPDATE processing_log SET
			is_processed = TRUE,
			is_valid = FALSE,
			processed_at = NOW(),
			attempted_at = NOW(),
			message = $3,
			updated_at = NOW()
		WHERE category = $1 AND filename = $2 AND is_processed = FALSE`

	return s.execPending(ctx, query, category, filename, message)
}

// Quarantine marks a row invalid whatever its current state.
func (s *ProcessingLogStore) Quarantine(ctx context.Context, category domain.Category, filename, message string) error {
	query := `
		UPDATE processing_log SET
			is_processed = TRUE,
			is_valid = FALSE,
			processed_at = NOW(),
			attempted_at = NOW(),
			message = $3,
			updated_at = NOW()
		WHERE category = $1 AND filename = $2`

	ok, err := s.execAffected(ctx, query, category, filename, message)
	if err != nil {
		return err
	}
	if !ok {
		return domain.ErrNotTracked
	}
	return nil
}

// MarkFailed records a failed attempt on a row that is still unprocessed, so
// a late failure cannot undo another run's success.
func (s *ProcessingLogStore) MarkFailed(ctx context.Context, category domain.Category, filename, message string) error {
	query := `
		UPDATE processing_log SET
			is_processed = FALSE,
			attempted_at = NOW(),
			message = $3,
			updated_at = NOW()
		WHERE category = $1 AND filename = $2 AND is_processed = FALSE`

	return s.execPending(ctx, query, category, filename, message)
}

func (s *ProcessingLogStore) ResetAll(ctx context.Context, category domain.Category) (int64, error) {
	query := `
		UPDATE processing_log SET
			is_processed = FALSE,
			processed_at = NULL,
			attempted_at = NULL,
			message = NULL,
			is_valid = TRUE,
			updated_at = NOW()
		WHERE category = $1`

	res, err := GetExecutor(ctx, s.db).ExecContext(ctx, query, category)
	if err != nil {
		return 0, err
	}
	return res.RowsAffected()
}

func (s *ProcessingLogStore) Status(ctx context.Context, category domain.Category) (*domain.ProcessingStatus, error) {
	query := `
		SELECT
			COUNT(*) AS total,
			COUNT(*) FILTER (WHERE is_processed AND is_valid) AS processed,
			COUNT(*) FILTER (WHERE is_processed AND NOT is_valid) AS invalid,
			COUNT(*) FILTER (WHERE NOT is_processed AND attempted_at IS NOT NULL) AS failed,
			COUNT(*) FILTER (WHERE NOT is_processed AND attempted_at IS NULL) AS unprocessed
		FROM processing_log
		WHERE category = $1`

	var status domain.ProcessingStatus
	if err := sqlx.GetContext(ctx, GetExecutor(ctx, s.db), &status, query, category); err != nil {
		return nil, err
	}
	status.Category = category
	return &status, nil
}

func (s *ProcessingLogStore) CountInvalid(ctx context.Context, category domain.Category) (int, error) {
	var count int
	err := sqlx.GetContext(ctx, GetExecutor(ctx, s.db), &count,
		`SELECT COUNT(*) FROM processing_log WHERE category = $1 AND is_processed AND NOT is_valid`,
		category,
	)
	return count, err
}

func (s *ProcessingLogStore) execAffected(ctx context.Context, query string, args ...interface{}) (bool, error) {
	res, err := GetExecutor(ctx, s.db).ExecContext(ctx, query, args...)
	if err != nil {
		return false, err
	}
	n, err := res.RowsAffected()
	if err != nil {
		return false, err
	}
	return n > 0, nil
}

// execPending runs an update guarded by is_processed = FALSE and tells an
// untracked row apart from one that is already processed.
func (s *ProcessingLogStore) execPending(ctx context.Context, query string, category domain.Category, filename, message string) error {
	ok, err := s.execAffected(ctx, query, category, filename, message)
	if err != nil {
		return err
	}
	if ok {
		return nil
	}

	if _, err := s.Get(ctx, category, filename); err != nil {
		return err
	}
	return domain.ErrAlreadyProcessed
}
