package service

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"doc_ingest/internal/domain"
)

func TestDocumentTypeFor(t *testing.T) {
	flags := map[domain.Category]string{
		domain.CategorySalesInvoice:    "isInvoice",
		domain.CategoryPurchaseInvoice: "isInvoice",
		domain.CategoryContract:        "isContract",
		domain.CategoryBankTransaction: "isBankStatement",
	}
	for cat, flag := range flags {
		dt, err := DocumentTypeFor(cat)
		require.NoError(t, err)
		assert.Equal(t, flag, dt.Flag)
		assert.Contains(t, dt.Schema.Required, flag)
		assert.Equal(t, domain.TypeBoolean, dt.Schema.Properties[flag].Type)
		assert.NotEmpty(t, dt.Prompt)
	}

	_, err := DocumentTypeFor("receipt")
	assert.ErrorIs(t, err, domain.ErrUnsupportedCategory)
}

func TestDecode_Contract(t *testing.T) {
	dt, err := DocumentTypeFor(domain.CategoryContract)
	require.NoError(t, err)

	raw := json.RawMessage(`{
		"isContract": true,
		"number": "UM/7",
		"counterpartyName": " Builders Ltd ",
		"counterpartyTaxId": "",
		"issueDate": "2024-02-10",
		"dueDate": null,
		"currency": "pln",
		"grossTotal": "1500.50",
		"items": [
			{"description": "Design", "quantity": null, "unitPrice": null, "grossAmount": 1000},
			{"description": "Build", "grossAmount": 500.5}
		]
	}`)

	decoded, err := dt.Decode(raw)
	require.NoError(t, err)
	require.True(t, decoded.Valid)

	r := decoded.Record
	assert.Equal(t, domain.CategoryContract, r.Category)
	assert.Equal(t, "Builders Ltd", r.CounterpartyName)
	assert.Nil(t, r.CounterpartyTaxID)
	assert.Equal(t, time.Date(2024, 2, 10, 0, 0, 0, 0, time.UTC), *r.IssueDate)
	assert.Nil(t, r.DueDate)
	assert.Equal(t, "PLN", r.Currency)
	assert.True(t, decimal.RequireFromString("1500.50").Equal(r.GrossTotal))
	require.Len(t, r.Items, 2)
	assert.True(t, r.Items[0].Quantity.IsZero())
	assert.Equal(t, 2, r.Items[1].Position)
}

func TestDecode_NotInCategory(t *testing.T) {
	dt, err := DocumentTypeFor(domain.CategoryBankTransaction)
	require.NoError(t, err)

	decoded, err := dt.Decode(json.RawMessage(`{"isBankStatement": false, "reason": "it is an invoice"}`))
	require.NoError(t, err)
	assert.False(t, decoded.Valid)
	assert.Nil(t, decoded.Record)
	assert.Equal(t, "it is an invoice", decoded.Reason)

	decoded, err = dt.Decode(json.RawMessage(`{"isBankStatement": false}`))
	require.NoError(t, err)
	assert.Contains(t, decoded.Reason, "bank transactions")
}

func TestDecode_Errors(t *testing.T) {
	dt, err := DocumentTypeFor(domain.CategorySalesInvoice)
	require.NoError(t, err)

	_, err = dt.Decode(json.RawMessage(`not json`))
	assert.Error(t, err)

	_, err = dt.Decode(json.RawMessage(`{"number": "1"}`))
	assert.ErrorContains(t, err, "isInvoice")

	_, err = dt.Decode(json.RawMessage(`{"isInvoice": null, "reason": ""}`))
	assert.ErrorContains(t, err, "null isInvoice")

	_, err = dt.Decode(json.RawMessage(`{"isInvoice": "yes"}`))
	assert.ErrorContains(t, err, "decode isInvoice")

	_, err = dt.Decode(json.RawMessage(`{"isInvoice": true, "issueDate": "01.02.2024"}`))
	assert.ErrorContains(t, err, "issueDate")
}
