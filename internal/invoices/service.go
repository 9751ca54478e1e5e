// Package invoices is the read-only provider of the two open-invoice
// collections the matcher scans. Collections are file-backed under
// <root>/invoices/ as sales.csv and purchases.csv, with a JSON fallback
// for payloads exported straight from an accounting API.
package invoices

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/tomasbukis-maker/TMS-NEW-sub001/internal/model"
)

// Repository provides in-memory lookup over the open invoice collections.
// The core never mutates them.
type Repository struct {
	sales     []model.Invoice
	purchases []model.Invoice
	byID      map[int]model.Invoice
}

// NewRepository creates a Repository from the two ordered collections.
func NewRepository(sales, purchases []model.Invoice) *Repository {
	byID := make(map[int]model.Invoice, len(sales)+len(purchases))
	for _, inv := range sales {
		byID[inv.ID] = inv
	}
	for _, inv := range purchases {
		byID[inv.ID] = inv
	}
	return &Repository{sales: sales, purchases: purchases, byID: byID}
}

// Load reads both collections from <root>/invoices/. A missing file means
// an empty collection, not an error.
func Load(root string) (*Repository, error) {
	sales, err := loadCollection(filepath.Join(root, "invoices", "sales"))
	if err != nil {
		return nil, fmt.Errorf("loading sales invoices: %w", err)
	}
	purchases, err := loadCollection(filepath.Join(root, "invoices", "purchases"))
	if err != nil {
		return nil, fmt.Errorf("loading purchase invoices: %w", err)
	}
	return NewRepository(sales, purchases), nil
}

// loadCollection reads <base>.csv, falling back to <base>.json.
func loadCollection(base string) ([]model.Invoice, error) {
	f, err := os.Open(base + ".csv")
	if err == nil {
		defer f.Close()
		return ReadInvoices(f)
	}
	if !errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("opening %s.csv: %w", base, err)
	}

	data, err := os.ReadFile(base + ".json")
	if errors.Is(err, fs.ErrNotExist) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("reading %s.json: %w", base, err)
	}
	return DecodeCollection(data)
}

// Sales returns the outstanding sales invoices in document order.
func (r *Repository) Sales() []model.Invoice {
	return r.sales
}

// Purchases returns the outstanding purchase invoices in document order.
func (r *Repository) Purchases() []model.Invoice {
	return r.purchases
}

// Get returns an invoice by ID.
func (r *Repository) Get(id int) (model.Invoice, bool) {
	inv, ok := r.byID[id]
	return inv, ok
}

// Exists reports whether an invoice ID is known.
func (r *Repository) Exists(id int) bool {
	_, ok := r.byID[id]
	return ok
}
