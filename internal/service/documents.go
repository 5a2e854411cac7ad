package service

import (
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/shopspring/decimal"

	"doc_ingest/internal/domain"
)

const dateLayout = "2006-01-02"

// DocumentType is the extraction contract of one category: the response
// schema, the prompt and the name of the flag telling whether the document
// belongs to the category at all.
type DocumentType struct {
	Category domain.Category
	Flag     string
	Schema   *domain.Schema
	Prompt   string
}

// DecodedDocument is the decoded model output. Record is nil when Valid is false.
type DecodedDocument struct {
	Valid  bool
	Record *domain.Record
	Reason string
}

type extractedItem struct {
	Description string              `json:"description"`
	Quantity    decimal.NullDecimal `json:"quantity"`
	UnitPrice   decimal.NullDecimal `json:"unitPrice"`
	NetAmount   decimal.NullDecimal `json:"netAmount"`
	VATRate     decimal.NullDecimal `json:"vatRate"`
	VATAmount   decimal.NullDecimal `json:"vatAmount"`
	GrossAmount decimal.NullDecimal `json:"grossAmount"`
}

type extractedDocument struct {
	Reason            string              `json:"reason"`
	Number            *string             `json:"number"`
	CounterpartyName  *string             `json:"counterpartyName"`
	CounterpartyTaxID *string             `json:"counterpartyTaxId"`
	IssueDate         *string             `json:"issueDate"`
	DueDate           *string             `json:"dueDate"`
	Currency          *string             `json:"currency"`
	NetTotal          decimal.NullDecimal `json:"netTotal"`
	VATTotal          decimal.NullDecimal `json:"vatTotal"`
	GrossTotal        decimal.NullDecimal `json:"grossTotal"`
	Description       *string             `json:"description"`
	Items             []extractedItem     `json:"items"`
}

var documentTypes = map[domain.Category]DocumentType{
	domain.CategorySalesInvoice: newDocumentType(
		domain.CategorySalesInvoice,
		"isInvoice",
		"True when the document is an invoice issued by us to a customer.",
		"the customer (buyer) named on the invoice",
		"invoice lines",
		"The attached PDF should be a sales invoice issued by our company. "+
			"Set isInvoice to false and explain why in reason when it is anything else "+
			"(a quote, a receipt, a purchase invoice, an unrelated document). "+
			"Otherwise extract the invoice number, the buyer, dates, currency, totals and every invoice line.",
	),
	domain.CategoryPurchaseInvoice: newDocumentType(
		domain.CategoryPurchaseInvoice,
		"isInvoice",
		"True when the document is an invoice issued to us by a supplier.",
		"the supplier (seller) named on the invoice",
		"invoice lines",
		"The attached PDF should be a purchase invoice we received from a supplier. "+
			"Set isInvoice to false and explain why in reason when it is anything else. "+
			"Otherwise extract the invoice number, the seller, dates, currency, totals and every invoice line.",
	),
	domain.CategoryContract: newDocumentType(
		domain.CategoryContract,
		"isContract",
		"True when the document is a signed or draft contract.",
		"the other contracting party",
		"priced deliverables or payment milestones; lump sums have no quantity",
		"The attached PDF should be a contract. "+
			"Set isContract to false and explain why in reason when it is not. "+
			"Otherwise extract the contract number, the counterparty, the signing date as issueDate, "+
			"the end or first payment date as dueDate, currency, total value and priced items.",
	),
	domain.CategoryBankTransaction: newDocumentType(
		domain.CategoryBankTransaction,
		"isBankStatement",
		"True when the document is a bank statement or transaction confirmation.",
		"the bank or account holder named on the statement",
		"one item per transaction; grossAmount is signed, negative for debits",
		"The attached PDF should be a bank statement or transaction confirmation. "+
			"Set isBankStatement to false and explain why in reason when it is not. "+
			"Otherwise extract the statement number, the bank, the statement date as issueDate, "+
			"currency, totals and one item per transaction.",
	),
}

// DocumentTypeFor returns the extraction contract of a category.
func DocumentTypeFor(category domain.Category) (DocumentType, error) {
	dt, ok := documentTypes[category]
	if !ok {
		return DocumentType{}, fmt.Errorf("%w: %q", domain.ErrUnsupportedCategory, category)
	}
	return dt, nil
}

func newDocumentType(category domain.Category, flag, flagDesc, counterpartyDesc, itemsDesc, prompt string) DocumentType {
	money := func(desc string) *domain.Schema {
		return &domain.Schema{Type: domain.TypeNumber, Description: desc, Nullable: true}
	}
	text := func(desc string) *domain.Schema {
		return &domain.Schema{Type: domain.TypeString, Description: desc, Nullable: true}
	}
	date := func(desc string) *domain.Schema {
		return &domain.Schema{Type: domain.TypeString, Format: "date", Description: desc + " (YYYY-MM-DD)", Nullable: true}
	}

	item := &domain.Schema{
		Type: domain.TypeObject,
		Properties: map[string]*domain.Schema{
			"description": {Type: domain.TypeString},
			"quantity":    money("quantity, null for lump sums"),
			"unitPrice":   money("net unit price, null for lump sums"),
			"netAmount":   money("net line amount"),
			"vatRate":     money("VAT rate in percent"),
			"vatAmount":   money("VAT line amount"),
			"grossAmount": money("gross line amount"),
		},
		Required: []string{"description"},
	}

	schema := &domain.Schema{
		Type: domain.TypeObject,
		Properties: map[string]*domain.Schema{
			flag:                {Type: domain.TypeBoolean, Description: flagDesc},
			"reason":            text("why the document was rejected, empty when it was accepted"),
			"number":            text("document number"),
			"counterpartyName":  text(counterpartyDesc),
			"counterpartyTaxId": text("tax identification number of the counterparty"),
			"issueDate":         date("issue date"),
			"dueDate":           date("payment due date"),
			"currency":          text("ISO 4217 currency code"),
			"netTotal":          money("total net amount"),
			"vatTotal":          money("total VAT amount"),
			"grossTotal":        money("total gross amount"),
			"description":       text("one sentence summary of the document"),
			"items": {
				Type:        domain.TypeArray,
				Description: itemsDesc,
				Items:       item,
			},
		},
		Required: []string{flag, "reason"},
	}

	return DocumentType{
		Category: category,
		Flag:     flag,
		Schema:   schema,
		Prompt:   prompt,
	}
}

// Decode reads the category flag and, when it is set, converts the payload
// into a record.
func (d DocumentType) Decode(raw json.RawMessage) (*DecodedDocument, error) {
	var fields map[string]json.RawMessage
	if err := json.Unmarshal(raw, &fields); err != nil {
		return nil, fmt.Errorf("unmarshal extraction: %w", err)
	}

	flagRaw, ok := fields[d.Flag]
	if !ok {
		return nil, fmt.Errorf("extraction has no %s field", d.Flag)
	}
	var flag *bool
	if err := json.Unmarshal(flagRaw, &flag); err != nil {
		return nil, fmt.Errorf("decode %s: %w", d.Flag, err)
	}
	if flag == nil {
		return nil, fmt.Errorf("extraction has null %s field", d.Flag)
	}
	valid := *flag

	var doc extractedDocument
	if err := json.Unmarshal(raw, &doc); err != nil {
		return nil, fmt.Errorf("unmarshal extraction: %w", err)
	}

	if !valid {
		reason := strings.TrimSpace(doc.Reason)
		if reason == "" {
			reason = fmt.Sprintf("document is not one of %s", d.Category.Label())
		}
		return &DecodedDocument{Reason: reason}, nil
	}

	record, err := doc.toRecord(d.Category)
	if err != nil {
		return nil, err
	}
	return &DecodedDocument{Valid: true, Record: record}, nil
}

func (doc *extractedDocument) toRecord(category domain.Category) (*domain.Record, error) {
	issueDate, err := parseDate(doc.IssueDate)
	if err != nil {
		return nil, fmt.Errorf("issueDate: %w", err)
	}
	dueDate, err := parseDate(doc.DueDate)
	if err != nil {
		return nil, fmt.Errorf("dueDate: %w", err)
	}

	record := &domain.Record{
		Category:          category,
		Number:            deref(doc.Number),
		CounterpartyName:  deref(doc.CounterpartyName),
		CounterpartyTaxID: nonEmpty(doc.CounterpartyTaxID),
		IssueDate:         issueDate,
		DueDate:           dueDate,
		Currency:          strings.ToUpper(deref(doc.Currency)),
		NetTotal:          doc.NetTotal.Decimal,
		VATTotal:          doc.VATTotal.Decimal,
		GrossTotal:        doc.GrossTotal.Decimal,
		Description:       nonEmpty(doc.Description),
		Items:             make([]domain.LineItem, 0, len(doc.Items)),
	}

	for i, it := range doc.Items {
		record.Items = append(record.Items, domain.LineItem{
			Position:    i + 1,
			Description: it.Description,
			Quantity:    it.Quantity.Decimal,
			UnitPrice:   it.UnitPrice.Decimal,
			NetAmount:   it.NetAmount.Decimal,
			VATRate:     it.VATRate.Decimal,
			VATAmount:   it.VATAmount.Decimal,
			GrossAmount: it.GrossAmount.Decimal,
		})
	}

	return record, nil
}

func parseDate(s *string) (*time.Time, error) {
	if s == nil || strings.TrimSpace(*s) == "" {
		return nil, nil
	}
	t, err := time.Parse(dateLayout, strings.TrimSpace(*s))
	if err != nil {
		return nil, err
	}
	return &t, nil
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return strings.TrimSpace(*s)
}

func nonEmpty(s *string) *string {
	if s == nil || strings.TrimSpace(*s) == "" {
		return nil
	}
	v := strings.TrimSpace(*s)
	return &v
}
