package model

// Category tells which ledger an invoice belongs to.
type Category string

const (
	CategorySales    Category = "sales"
	CategoryPurchase Category = "purchase"
)

// Invoice is one open accounting invoice. The core treats invoices as
// read-only reference data supplied in two collections (sales, purchase).
type Invoice struct {
	ID              int
	ReferenceNumber string // "" = no document number on record
	PartnerName     string
	TotalAmount     string // decimal string
	PaymentState    string
}
