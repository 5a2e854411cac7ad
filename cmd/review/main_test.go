package main

import (
	"bytes"
	"context"
	"io"
	"log/slog"
	"strings"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"doc_ingest/internal/domain"
)

type fakeApprovals struct {
	approvedBy string
	edits      *domain.RecordEdits
	rejected   string
	reason     string
}

func (f *fakeApprovals) Get(_ context.Context, category domain.Category, id int64) (*domain.Record, error) {
	if id != 1 {
		return nil, domain.ErrRecordNotFound
	}
	return &domain.Record{ID: id, Category: category, Number: "FV/1/2024"}, nil
}

func (f *fakeApprovals) Edit(ctx context.Context, category domain.Category, id int64, edits *domain.RecordEdits) (*domain.Record, error) {
	f.edits = edits
	return f.Get(ctx, category, id)
}

func (f *fakeApprovals) Approve(ctx context.Context, category domain.Category, id int64, actorID string, edits *domain.RecordEdits) (*domain.Record, error) {
	f.approvedBy = actorID
	f.edits = edits
	return f.Get(ctx, category, id)
}

func (f *fakeApprovals) Reject(_ context.Context, _ domain.Category, filename, reason string) error {
	f.rejected = filename
	f.reason = reason
	return nil
}

func (f *fakeApprovals) SignedURL(context.Context, domain.Category, int64) (string, error) {
	return "https://storage.example/signed", nil
}

type fakeCounter struct{}

func (fakeCounter) InvalidCounts(context.Context) *domain.InvalidCounts {
	return &domain.InvalidCounts{Total: 2, Breakdown: map[domain.Category]int{domain.CategoryContract: 2}}
}

func newTestCommand() (*command, *fakeApprovals, *bytes.Buffer) {
	fake := &fakeApprovals{}
	out := &bytes.Buffer{}
	return &command{
		approvals: fake,
		invalid:   fakeCounter{},
		out:       out,
		logger:    slog.New(slog.NewTextHandler(io.Discard, nil)),
	}, fake, out
}

func TestParseEdits(t *testing.T) {
	input := `{
		"number": "FV/2/2024",
		"issue_date": "2024-03-01",
		"gross_total": "123.45",
		"items": [{"description": "Usługa", "quantity": "1", "gross_amount": "123.45"}]
	}`

	edits, err := parseEdits(strings.NewReader(input))

	require.NoError(t, err)
	assert.Equal(t, "FV/2/2024", *edits.Number)
	assert.Equal(t, time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC), *edits.IssueDate)
	assert.Nil(t, edits.DueDate)
	assert.True(t, decimal.RequireFromString("123.45").Equal(*edits.GrossTotal))
	require.Len(t, edits.Items, 1)
	assert.Equal(t, 1, edits.Items[0].Position)
	assert.Equal(t, "Usługa", edits.Items[0].Description)
}

func TestParseEdits_RejectsBadInput(t *testing.T) {
	_, err := parseEdits(strings.NewReader(`{"issue_date": "01.03.2024"}`))
	assert.ErrorContains(t, err, "issue_date")

	_, err = parseEdits(strings.NewReader(`{"unknown": 1}`))
	assert.Error(t, err)
}

func TestCommand_Get(t *testing.T) {
	cmd, _, out := newTestCommand()

	err := cmd.run(context.Background(), "get", []string{"-category", "contract", "-id", "1"})

	require.NoError(t, err)
	assert.Contains(t, out.String(), "FV/1/2024")
}

func TestCommand_ApproveRequiresActor(t *testing.T) {
	cmd, fake, _ := newTestCommand()

	err := cmd.run(context.Background(), "approve", []string{"-category", "contract", "-id", "1"})

	assert.ErrorContains(t, err, "-actor")
	assert.Empty(t, fake.approvedBy)
}

func TestCommand_Approve(t *testing.T) {
	cmd, fake, _ := newTestCommand()

	err := cmd.run(context.Background(), "approve", []string{"-category", "contract", "-id", "1", "-actor", "u-42"})

	require.NoError(t, err)
	assert.Equal(t, "u-42", fake.approvedBy)
	assert.Nil(t, fake.edits)
}

func TestCommand_Reject(t *testing.T) {
	cmd, fake, _ := newTestCommand()

	err := cmd.run(context.Background(), "reject", []string{"-category", "sales_invoice", "-file", "scan.pdf", "-reason", "duplicate"})

	require.NoError(t, err)
	assert.Equal(t, "scan.pdf", fake.rejected)
	assert.Equal(t, "duplicate", fake.reason)
}

func TestCommand_InvalidCategory(t *testing.T) {
	cmd, _, _ := newTestCommand()

	err := cmd.run(context.Background(), "get", []string{"-category", "receipt", "-id", "1"})

	assert.ErrorIs(t, err, domain.ErrUnsupportedCategory)
}

func TestCommand_URLAndInvalid(t *testing.T) {
	cmd, _, out := newTestCommand()

	require.NoError(t, cmd.run(context.Background(), "url", []string{"-category", "contract", "-id", "1"}))
	assert.Equal(t, "https://storage.example/signed\n", out.String())

	out.Reset()
	require.NoError(t, cmd.run(context.Background(), "invalid", nil))
	assert.Contains(t, out.String(), `"Total": 2`)
}

func TestCommand_Unknown(t *testing.T) {
	cmd, _, _ := newTestCommand()

	assert.ErrorContains(t, cmd.run(context.Background(), "purge", nil), "unknown command")
}
