package model

import "github.com/shopspring/decimal"

// DecisionStatus represents the operator's decision on a review item.
type DecisionStatus string

const (
	DecisionPending    DecisionStatus = "pending"
	DecisionConfirmed  DecisionStatus = "confirmed"
	DecisionOverridden DecisionStatus = "overridden"
	DecisionRejected   DecisionStatus = "rejected"
)

// ReviewItem is one row in a review session: a parsed transaction paired
// with its proposed match and the operator's decision. The parsed values
// are copied in so a session file stands on its own.
type ReviewItem struct {
	Row          int
	Date         string
	Description  string
	PartnerName  string
	Amount       string
	Currency     string
	InvoiceID    int // proposed match, 0 = none
	Confidence   decimal.Decimal
	Category     Category
	Decision     DecisionStatus
	DecidedBy    string
	ChosenID     int // operator override target, 0 unless overridden
	Notes        string
}
