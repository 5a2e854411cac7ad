package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/jmoiron/sqlx"

	"doc_ingest/internal/domain"
)

type recordTables struct {
	header string
	items  string
}

var tablesByCategory = map[domain.Category]recordTables{
	domain.CategorySalesInvoice:    {header: "sales_invoices", items: "sales_invoice_items"},
	domain.CategoryPurchaseInvoice: {header: "purchase_invoices", items: "purchase_invoice_items"},
	domain.CategoryContract:        {header: "contracts", items: "contract_items"},
	domain.CategoryBankTransaction: {header: "bank_transactions", items: "bank_transaction_items"},
}

// itemParams is the number of bound columns per inserted item row.
const itemParams = 9

// RecordStore persists materialized records and their line items. Every
// category has its own pair of tables with the same shape.
type RecordStore struct {
	db *sqlx.DB
}

func NewRecordStore(db *sqlx.DB) *RecordStore {
	return &RecordStore{db: db}
}

func tablesFor(category domain.Category) (recordTables, error) {
	t, ok := tablesByCategory[category]
	if !ok {
		return recordTables{}, fmt.Errorf("%w: %q", domain.ErrUnsupportedCategory, category)
	}
	return t, nil
}

// Create inserts the header and its items. Callers wrap it in a transaction
// together with the tracker update.
func (s *RecordStore) Create(ctx context.Context, record *domain.Record) (int64, error) {
	t, err := tablesFor(record.Category)
	if err != nil {
		return 0, err
	}

	query := `
		INSERT INTO ` + t.header + ` (
			number, counterparty_name, counterparty_tax_id, issue_date, due_date,
			currency, net_total, vat_total, gross_total, description, file_name
		) VALUES (
			$1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11
		)
		RETURNING id, created_at, updated_at`

	exec := GetExecutor(ctx, s.db)
	err = exec.QueryRowxContext(ctx, query,
		record.Number,
		record.CounterpartyName,
		record.CounterpartyTaxID,
		record.IssueDate,
		record.DueDate,
		record.Currency,
		record.NetTotal,
		record.VATTotal,
		record.GrossTotal,
		record.Description,
		record.FileName,
	).Scan(&record.ID, &record.CreatedAt, &record.UpdatedAt)
	if err != nil {
		return 0, fmt.Errorf("insert %s: %w", t.header, err)
	}

	if err := s.insertItems(ctx, exec, t, record.ID, record.Items); err != nil {
		return 0, err
	}

	return record.ID, nil
}

func (s *RecordStore) Get(ctx context.Context, category domain.Category, id int64, forUpdate bool) (*domain.Record, error) {
	t, err := tablesFor(category)
	if err != nil {
		return nil, err
	}

	query := `
		SELECT id, number, counterparty_name, counterparty_tax_id, issue_date, due_date,
			currency, net_total, vat_total, gross_total, description, file_name,
			approved_at, approved_by, created_at, updated_at
		FROM ` + t.header + `
		WHERE id = $1`
	if forUpdate {
		query += ` FOR UPDATE`
	}

	exec := GetExecutor(ctx, s.db)

	var record domain.Record
	err = sqlx.GetContext(ctx, exec, &record, query, id)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, domain.ErrRecordNotFound
	}
	if err != nil {
		return nil, err
	}
	record.Category = category

	itemsQuery := `
		SELECT id, record_id, position, description, quantity, unit_price,
			net_amount, vat_rate, vat_amount, gross_amount
		FROM ` + t.items + `
		WHERE record_id = $1
		ORDER BY position`

	if err := sqlx.SelectContext(ctx, exec, &record.Items, itemsQuery, id); err != nil {
		return nil, fmt.Errorf("select %s: %w", t.items, err)
	}

	return &record, nil
}

// Update writes the header fields including approval state. Items are not
// touched; see ReplaceItems.
func (s *RecordStore) Update(ctx context.Context, record *domain.Record) error {
	t, err := tablesFor(record.Category)
	if err != nil {
		return err
	}

	query := `
		UPDATE ` + t.header + ` SET
			number = $2,
			counterparty_name = $3,
			counterparty_tax_id = $4,
			issue_date = $5,
			due_date = $6,
			currency = $7,
			net_total = $8,
			vat_total = $9,
			gross_total = $10,
			description = $11,
			approved_at = $12,
			approved_by = $13,
			updated_at = NOW()
		WHERE id = $1
		RETURNING updated_at`

	err = GetExecutor(ctx, s.db).QueryRowxContext(ctx, query,
		record.ID,
		record.Number,
		record.CounterpartyName,
		record.CounterpartyTaxID,
		record.IssueDate,
		record.DueDate,
		record.Currency,
		record.NetTotal,
		record.VATTotal,
		record.GrossTotal,
		record.Description,
		record.ApprovedAt,
		record.ApprovedBy,
	).Scan(&record.UpdatedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return domain.ErrRecordNotFound
	}
	return err
}

// ReplaceItems deletes every item of the record and inserts the given set.
func (s *RecordStore) ReplaceItems(ctx context.Context, category domain.Category, recordID int64, items []domain.LineItem) error {
	t, err := tablesFor(category)
	if err != nil {
		return err
	}

	exec := GetExecutor(ctx, s.db)
	if _, err := exec.ExecContext(ctx, `DELETE FROM `+t.items+` WHERE record_id = $1`, recordID); err != nil {
		return fmt.Errorf("delete %s: %w", t.items, err)
	}

	return s.insertItems(ctx, exec, t, recordID, items)
}

func (s *RecordStore) ExistsForFile(ctx context.Context, category domain.Category, fileName string) (bool, error) {
	t, err := tablesFor(category)
	if err != nil {
		return false, err
	}

	var exists bool
	err = sqlx.GetContext(ctx, GetExecutor(ctx, s.db), &exists,
		`SELECT EXISTS (SELECT 1 FROM `+t.header+` WHERE file_name = $1)`,
		fileName,
	)
	return exists, err
}

func (s *RecordStore) insertItems(ctx context.Context, exec sqlx.ExtContext, t recordTables, recordID int64, items []domain.LineItem) error {
	if len(items) == 0 {
		return nil
	}

	var sb strings.Builder
	sb.WriteString("INSERT INTO ")
	sb.WriteString(t.items)
	sb.WriteString(` (record_id, position, description, quantity, unit_price,
		net_amount, vat_rate, vat_amount, gross_amount, created_at) VALUES `)
	valueArgs := make([]interface{}, 0, len(items)*itemParams)

	for i, item := range items {
		if i > 0 {
			sb.WriteString(", ")
		}
		sb.WriteString("(")
		for col := 0; col < itemParams; col++ {
			if col > 0 {
				sb.WriteString(", ")
			}
			sb.WriteString("$")
			sb.WriteString(strconv.Itoa(i*itemParams + col + 1))
		}
		sb.WriteString(", NOW())")

		position := item.Position
		if position == 0 {
			position = i + 1
		}
		valueArgs = append(valueArgs,
			recordID,
			position,
			item.Description,
			item.Quantity,
			item.UnitPrice,
			item.NetAmount,
			item.VATRate,
			item.VATAmount,
			item.GrossAmount,
		)
	}

	if _, err := exec.ExecContext(ctx, sb.String(), valueArgs...); err != nil {
		return fmt.Errorf("insert %s: %w", t.items, err)
	}
	return nil
}
