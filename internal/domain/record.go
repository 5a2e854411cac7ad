package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// Record is a document materialized from a successful extraction: a sales or
// purchase invoice, a contract or a bank transaction.
type Record struct {
	ID                int64           `db:"id"`
	Category          Category        `db:"-"`
	Number            string          `db:"number"`
	CounterpartyName  string          `db:"counterparty_name"`
	CounterpartyTaxID *string         `db:"counterparty_tax_id"`
	IssueDate         *time.Time      `db:"issue_date"`
	DueDate           *time.Time      `db:"due_date"`
	Currency          string          `db:"currency"`
	NetTotal          decimal.Decimal `db:"net_total"`
	VATTotal          decimal.Decimal `db:"vat_total"`
	GrossTotal        decimal.Decimal `db:"gross_total"`
	Description       *string         `db:"description"`
	FileName          string          `db:"file_name"`
	ApprovedAt        *time.Time      `db:"approved_at"`
	ApprovedBy        *string         `db:"approved_by"`
	CreatedAt         time.Time       `db:"created_at"`
	UpdatedAt         time.Time       `db:"updated_at"`
	Items             []LineItem      `db:"-"`
}

func (r *Record) Approved() bool {
	return r.ApprovedAt != nil
}

type LineItem struct {
	ID          int64           `db:"id"`
	RecordID    int64           `db:"record_id"`
	Position    int             `db:"position"`
	Description string          `db:"description"`
	Quantity    decimal.Decimal `db:"quantity"`
	UnitPrice   decimal.Decimal `db:"unit_price"`
	NetAmount   decimal.Decimal `db:"net_amount"`
	VATRate     decimal.Decimal `db:"vat_rate"`
	VATAmount   decimal.Decimal `db:"vat_amount"`
	GrossAmount decimal.Decimal `db:"gross_amount"`
}

// RecordEdits holds a partial update. Nil fields are left untouched; a non-nil
// Items replaces the whole item set.
type RecordEdits struct {
	Number            *string
	CounterpartyName  *string
	CounterpartyTaxID *string
	IssueDate         *time.Time
	DueDate           *time.Time
	Currency          *string
	NetTotal          *decimal.Decimal
	VATTotal          *decimal.Decimal
	GrossTotal        *decimal.Decimal
	Description       *string
	Items             []LineItem
}

// Apply copies the set fields onto r. Items are not touched; they are
// replaced through the store.
func (e *RecordEdits) Apply(r *Record) {
	if e == nil {
		return
	}
	if e.Number != nil {
		r.Number = *e.Number
	}
	if e.CounterpartyName != nil {
		r.CounterpartyName = *e.CounterpartyName
	}
	if e.CounterpartyTaxID != nil {
		r.CounterpartyTaxID = e.CounterpartyTaxID
	}
	if e.IssueDate != nil {
		r.IssueDate = e.IssueDate
	}
	if e.DueDate != nil {
		r.DueDate = e.DueDate
	}
	if e.Currency != nil {
		r.Currency = *e.Currency
	}
	if e.NetTotal != nil {
		r.NetTotal = *e.NetTotal
	}
	if e.VATTotal != nil {
		r.VATTotal = *e.VATTotal
	}
	if e.GrossTotal != nil {
		r.GrossTotal = *e.GrossTotal
	}
	if e.Description != nil {
		r.Description = e.Description
	}
}

// InvalidCounts is the number of quarantined files per category.
type InvalidCounts struct {
	Total     int
	Breakdown map[Category]int
}
