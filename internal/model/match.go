package model

import "github.com/shopspring/decimal"

// MatchResult is the matcher's verdict for a single transaction. The zero
// value (InvoiceID 0, zero confidence, empty category) means no match.
type MatchResult struct {
	InvoiceID  int
	Confidence decimal.Decimal // one of the fixed tiers, not a probability
	Category   Category        // "" when no match
}

// Matched reports whether the result names an invoice.
func (m MatchResult) Matched() bool {
	return m.InvoiceID != 0
}
