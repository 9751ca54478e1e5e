package review

import (
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/tomasbukis-maker/TMS-NEW-sub001/internal/model"
)

// ValidationError describes a single invariant violation in a session.
type ValidationError struct {
	Invariant   int
	Row         int
	Description string
}

func (e ValidationError) Error() string {
	return fmt.Sprintf("invariant %d [row %d]: %s", e.Invariant, e.Row, e.Description)
}

var one = decimal.NewFromInt(1)

var validDecisions = map[model.DecisionStatus]bool{
	model.DecisionPending:    true,
	model.DecisionConfirmed:  true,
	model.DecisionOverridden: true,
	model.DecisionRejected:   true,
}

// ValidateItems enforces 5 invariants on a review session.
func ValidateItems(items []model.ReviewItem) []ValidationError {
	var errs []ValidationError

	seen := make(map[int]bool, len(items))
	for _, item := range items {
		// Invariant 1: row ordinals are positive and unique.
		if item.Row < 1 {
			errs = append(errs, ValidationError{
				Invariant:   1,
				Row:         item.Row,
				Description: "row ordinal must be positive",
			})
		} else if seen[item.Row] {
			errs = append(errs, ValidationError{
				Invariant:   1,
				Row:         item.Row,
				Description: "duplicate row ordinal",
			})
		}
		seen[item.Row] = true

		// Invariant 2: decision is a known status.
		if !validDecisions[item.Decision] {
			errs = append(errs, ValidationError{
				Invariant:   2,
				Row:         item.Row,
				Description: fmt.Sprintf("unknown decision %q", item.Decision),
			})
		}

		// Invariant 3: confidence lies in [0, 1].
		if item.Confidence.IsNegative() || item.Confidence.GreaterThan(one) {
			errs = append(errs, ValidationError{
				Invariant:   3,
				Row:         item.Row,
				Description: fmt.Sprintf("confidence %s outside [0,1]", item.Confidence),
			})
		}

		// Invariant 4: a confirmed item must name a matched invoice.
		if item.Decision == model.DecisionConfirmed && item.InvoiceID == 0 && item.ChosenID == 0 {
			errs = append(errs, ValidationError{
				Invariant:   4,
				Row:         item.Row,
				Description: "confirmed item has no invoice",
			})
		}

		// Invariant 5: an overridden item must carry the operator's choice.
		if item.Decision == model.DecisionOverridden && item.ChosenID == 0 {
			errs = append(errs, ValidationError{
				Invariant:   5,
				Row:         item.Row,
				Description: "overridden item has no chosen invoice",
			})
		}
	}
	return errs
}
