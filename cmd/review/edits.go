package main

import (
	"encoding/json"
	"fmt"
	"io"
	"time"

	"github.com/shopspring/decimal"

	"doc_ingest/internal/domain"
)

const dateLayout = "2006-01-02"

// editsFile is the JSON document accepted by the edit and approve commands.
type editsFile struct {
	Number            *string          `json:"number"`
	CounterpartyName  *string          `json:"counterparty_name"`
	CounterpartyTaxID *string          `json:"counterparty_tax_id"`
	IssueDate         *string          `json:"issue_date"`
	DueDate           *string          `json:"due_date"`
	Currency          *string          `json:"currency"`
	NetTotal          *decimal.Decimal `json:"net_total"`
	VATTotal          *decimal.Decimal `json:"vat_total"`
	GrossTotal        *decimal.Decimal `json:"gross_total"`
	Description       *string          `json:"description"`
	Items             []itemEdit       `json:"items"`
}

type itemEdit struct {
	Description string          `json:"description"`
	Quantity    decimal.Decimal `json:"quantity"`
	UnitPrice   decimal.Decimal `json:"unit_price"`
	NetAmount   decimal.Decimal `json:"net_amount"`
	VATRate     decimal.Decimal `json:"vat_rate"`
	VATAmount   decimal.Decimal `json:"vat_amount"`
	GrossAmount decimal.Decimal `json:"gross_amount"`
}

func parseEdits(r io.Reader) (*domain.RecordEdits, error) {
	var f editsFile
	dec := json.NewDecoder(r)
	dec.DisallowUnknownFields()
	if err := dec.Decode(&f); err != nil {
		return nil, fmt.Errorf("decode edits: %w", err)
	}

	edits := &domain.RecordEdits{
		Number:            f.Number,
		CounterpartyName:  f.CounterpartyName,
		CounterpartyTaxID: f.CounterpartyTaxID,
		Currency:          f.Currency,
		NetTotal:          f.NetTotal,
		VATTotal:          f.VATTotal,
		GrossTotal:        f.GrossTotal,
		Description:       f.Description,
	}

	var err error
	if edits.IssueDate, err = parseDate("issue_date", f.IssueDate); err != nil {
		return nil, err
	}
	if edits.DueDate, err = parseDate("due_date", f.DueDate); err != nil {
		return nil, err
	}

	if f.Items != nil {
		edits.Items = make([]domain.LineItem, len(f.Items))
		for i, it := range f.Items {
			edits.Items[i] = domain.LineItem{
				Position:    i + 1,
				Description: it.Description,
				Quantity:    it.Quantity,
				UnitPrice:   it.UnitPrice,
				NetAmount:   it.NetAmount,
				VATRate:     it.VATRate,
				VATAmount:   it.VATAmount,
				GrossAmount: it.GrossAmount,
			}
		}
	}

	return edits, nil
}

func parseDate(field string, value *string) (*time.Time, error) {
	if value == nil {
		return nil, nil
	}
	t, err := time.Parse(dateLayout, *value)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", field, err)
	}
	return &t, nil
}
