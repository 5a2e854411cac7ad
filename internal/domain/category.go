package domain

import "fmt"

// Category identifies a document type. Each category has its own bucket,
// source folder and record tables.
type Category string

const (
	CategorySalesInvoice    Category = "sales_invoice"
	CategoryPurchaseInvoice Category = "purchase_invoice"
	CategoryContract        Category = "contract"
	CategoryBankTransaction Category = "bank_transaction"
)

var categoryLabels = map[Category]string{
	CategorySalesInvoice:    "sales invoices",
	CategoryPurchaseInvoice: "purchase invoices",
	CategoryContract:        "contracts",
	CategoryBankTransaction: "bank transactions",
}

// AllCategories returns the categories in a stable order.
func AllCategories() []Category {
	return []Category{
		CategorySalesInvoice,
		CategoryPurchaseInvoice,
		CategoryContract,
		CategoryBankTransaction,
	}
}

func (c Category) Label() string {
	if l, ok := categoryLabels[c]; ok {
		return l
	}
	return string(c)
}

func (c Category) Valid() bool {
	_, ok := categoryLabels[c]
	return ok
}

func ParseCategory(s string) (Category, error) {
	c := Category(s)
	if !c.Valid() {
		return "", fmt.Errorf("%w: %q", ErrUnsupportedCategory, s)
	}
	return c, nil
}
