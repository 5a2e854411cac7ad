package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"doc_ingest/internal/domain"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func TestLoad_ExpandsEnvAndSetsDefaults(t *testing.T) {
	t.Setenv("DOC_INGEST_DB_PASSWORD", "s3cret")
	path := writeConfig(t, `
database:
  host: localhost
  user: ingest
  password: ${DOC_INGEST_DB_PASSWORD}
  dbname: documents
extraction:
  project_id: acme
categories:
  contract:
    bucket: acme-contracts
    source_folder_id: folder-1
processing:
  delay: 500ms
`)

	cfg, err := Load(path)

	require.NoError(t, err)
	assert.Equal(t, "s3cret", cfg.Database.Password)
	assert.Equal(t, 5432, cfg.Database.Port)
	assert.Equal(t, "disable", cfg.Database.SSLMode)
	assert.Equal(t, 500*time.Millisecond, cfg.Processing.Delay)
	assert.Equal(t, 5, cfg.Sync.BatchSize)
	assert.Equal(t, 60*time.Second, cfg.Processing.InvalidCacheTTL)
	assert.Equal(t, int64(20*1024*1024), cfg.Processing.MaxFileSizeBytes())
	assert.Equal(t, "info", cfg.LogLevel)
	assert.NoError(t, cfg.Validate())
}

func TestLoad_MissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.ErrorContains(t, err, "read config file")
}

func TestLoad_InvalidYAML(t *testing.T) {
	_, err := Load(writeConfig(t, "database: [unterminated"))
	assert.ErrorContains(t, err, "parse config")
}

func TestValidate(t *testing.T) {
	cfg := &Config{
		Categories: map[domain.Category]CategoryConfig{
			"receipt":                   {Bucket: "receipts"},
			domain.CategorySalesInvoice: {},
		},
	}

	err := cfg.Validate()

	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrUnsupportedCategory)
	assert.ErrorContains(t, err, "categories.sales_invoice.bucket must be set")
	assert.ErrorContains(t, err, "extraction.project_id must be set")
	assert.ErrorContains(t, err, "sync.batch_size must be positive")
}

func TestValidate_NoCategories(t *testing.T) {
	cfg := &Config{Extraction: ExtractionConfig{ProjectID: "acme"}, Sync: SyncConfig{BatchSize: 1}}
	assert.ErrorContains(t, cfg.Validate(), "no categories configured")
}

func TestCategoryLookups(t *testing.T) {
	cfg := &Config{
		Categories: map[domain.Category]CategoryConfig{
			domain.CategoryBankTransaction: {Bucket: "bank"},
			domain.CategorySalesInvoice:    {Bucket: "sales"},
		},
	}

	assert.Equal(t, []domain.Category{domain.CategorySalesInvoice, domain.CategoryBankTransaction}, cfg.ConfiguredCategories())

	cat, ok := cfg.CategoryForBucket("bank")
	assert.True(t, ok)
	assert.Equal(t, domain.CategoryBankTransaction, cat)

	_, ok = cfg.CategoryForBucket("other")
	assert.False(t, ok)

	_, err := cfg.Category(domain.CategoryContract)
	assert.ErrorIs(t, err, domain.ErrUnsupportedCategory)
}

func TestMaxFileSizeBytes(t *testing.T) {
	path := writeConfig(t, "processing:\n  max_file_size_mb: -1\n")

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Zero(t, cfg.Processing.MaxFileSizeBytes(), "negative disables the limit")

	assert.Equal(t, int64(5*1024*1024), ProcessingConfig{MaxFileSizeMB: 5}.MaxFileSizeBytes())
}
