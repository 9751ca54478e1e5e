package review

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tomasbukis-maker/TMS-NEW-sub001/internal/model"
)

func validItem(row int) model.ReviewItem {
	return model.ReviewItem{
		Row:        row,
		Amount:     "10.00",
		InvoiceID:  1,
		Confidence: decimal.NewFromFloat(0.95),
		Category:   model.CategorySales,
		Decision:   model.DecisionPending,
	}
}

func TestValidate_OK(t *testing.T) {
	errs := ValidateItems([]model.ReviewItem{validItem(1), validItem(2)})
	assert.Empty(t, errs)
}

func TestValidate_DuplicateRow(t *testing.T) {
	errs := ValidateItems([]model.ReviewItem{validItem(1), validItem(1)})
	require.Len(t, errs, 1)
	assert.Equal(t, 1, errs[0].Invariant)
	assert.Contains(t, errs[0].Error(), "duplicate")
}

func TestValidate_NonPositiveRow(t *testing.T) {
	errs := ValidateItems([]model.ReviewItem{validItem(0)})
	require.Len(t, errs, 1)
	assert.Equal(t, 1, errs[0].Invariant)
}

func TestValidate_UnknownDecision(t *testing.T) {
	item := validItem(1)
	item.Decision = "approved-ish"
	errs := ValidateItems([]model.ReviewItem{item})
	require.Len(t, errs, 1)
	assert.Equal(t, 2, errs[0].Invariant)
}

func TestValidate_ConfidenceRange(t *testing.T) {
	item := validItem(1)
	item.Confidence = decimal.NewFromFloat(1.5)
	errs := ValidateItems([]model.ReviewItem{item})
	require.Len(t, errs, 1)
	assert.Equal(t, 3, errs[0].Invariant)

	item.Confidence = decimal.NewFromFloat(-0.1)
	errs = ValidateItems([]model.ReviewItem{item})
	require.Len(t, errs, 1)
	assert.Equal(t, 3, errs[0].Invariant)
}

func TestValidate_ConfirmedNeedsInvoice(t *testing.T) {
	item := validItem(1)
	item.InvoiceID = 0
	item.Decision = model.DecisionConfirmed
	errs := ValidateItems([]model.ReviewItem{item})
	require.Len(t, errs, 1)
	assert.Equal(t, 4, errs[0].Invariant)

	// An operator override satisfies the invariant.
	item.ChosenID = 7
	item.Decision = model.DecisionOverridden
	errs = ValidateItems([]model.ReviewItem{item})
	assert.Empty(t, errs)
}

func TestValidate_OverrideNeedsChoice(t *testing.T) {
	item := validItem(1)
	item.Decision = model.DecisionOverridden
	errs := ValidateItems([]model.ReviewItem{item})
	require.Len(t, errs, 1)
	assert.Equal(t, 5, errs[0].Invariant)
}
