// Package matcher reconciles parsed bank transactions against open
// invoices. Matching is pure: no I/O, no mutation of the invoice
// collections, and a result for every transaction — bad input lowers
// confidence instead of raising errors.
package matcher

import (
	"strings"

	"github.com/shopspring/decimal"

	"github.com/tomasbukis-maker/TMS-NEW-sub001/internal/model"
	"github.com/tomasbukis-maker/TMS-NEW-sub001/internal/normalize"
)

// amountTolerance is the currency-unit tolerance for amount equality.
var amountTolerance = decimal.NewFromFloat(0.01)

// Fixed confidence tiers. Reference-number evidence always outranks the
// partner+amount fallback: the weakest Phase 1 tier (0.70) beats the
// Phase 2 ceiling (0.60).
var (
	confNumberAmountPartner = decimal.NewFromInt(1)
	confNumberAmount        = decimal.NewFromFloat(0.95)
	confNumberPartner       = decimal.NewFromFloat(0.85)
	confNumberOnly          = decimal.NewFromFloat(0.70)
	confPartnerAmount       = decimal.NewFromFloat(0.60)
)

// ledger tags an invoice collection with its category. Collection order
// is significant: iteration order breaks confidence ties (first seen
// wins), so sales are always scanned before purchases.
type ledger struct {
	invoices []model.Invoice
	category model.Category
}

// Match finds the best-matching invoice for one transaction. Phase 1
// considers invoices whose reference number equals or contains (or is
// contained by) the transaction's inferred number. Phase 2 runs only when
// Phase 1 found nothing and falls back to partner + amount equality.
// The zero MatchResult means no match.
func Match(txn model.Transaction, sales, purchases []model.Invoice) model.MatchResult {
	best := model.MatchResult{Confidence: decimal.Zero}
	ledgers := []ledger{
		{invoices: sales, category: model.CategorySales},
		{invoices: purchases, category: model.CategoryPurchase},
	}

	number := normalize.Reference(txn.InvoiceNumber)
	if number != "" {
		for _, l := range ledgers {
			for _, inv := range l.invoices {
				conf, ok := scoreByNumber(txn, inv, number)
				if !ok {
					continue
				}
				if conf.GreaterThan(best.Confidence) {
					best = model.MatchResult{InvoiceID: inv.ID, Confidence: conf, Category: l.category}
				}
			}
		}
	}

	if best.Matched() || txn.PartnerName == "" {
		return best
	}

	for _, l := range ledgers {
		for _, inv := range l.invoices {
			if inv.PartnerName == "" || inv.TotalAmount == "" {
				continue
			}
			if !normalize.PartnerNamesMatch(txn.PartnerName, inv.PartnerName) {
				continue
			}
			if !amountsMatch(txn.Amount, inv.TotalAmount) {
				continue
			}
			if confPartnerAmount.GreaterThan(best.Confidence) {
				best = model.MatchResult{InvoiceID: inv.ID, Confidence: confPartnerAmount, Category: l.category}
			}
		}
	}
	return best
}

// MatchAll scores every transaction against the same invoice collections.
// Results are positionally aligned with txns.
func MatchAll(txns []model.Transaction, sales, purchases []model.Invoice) []model.MatchResult {
	results := make([]model.MatchResult, len(txns))
	for i, txn := range txns {
		results[i] = Match(txn, sales, purchases)
	}
	return results
}

// scoreByNumber reports the Phase 1 tier for one invoice, or ok=false when
// the invoice is not a number-match candidate at all.
func scoreByNumber(txn model.Transaction, inv model.Invoice, number string) (decimal.Decimal, bool) {
	if inv.ReferenceNumber == "" {
		return decimal.Zero, false
	}
	ref := normalize.Reference(inv.ReferenceNumber)
	if ref == "" {
		return decimal.Zero, false
	}
	if ref != number && !strings.Contains(ref, number) && !strings.Contains(number, ref) {
		return decimal.Zero, false
	}

	amountOK := amountsMatch(txn.Amount, inv.TotalAmount)
	partnerOK := txn.PartnerName != "" && inv.PartnerName != "" &&
		normalize.PartnerNamesMatch(txn.PartnerName, inv.PartnerName)

	switch {
	case amountOK && partnerOK:
		return confNumberAmountPartner, true
	case amountOK:
		return confNumberAmount, true
	case partnerOK:
		return confNumberPartner, true
	default:
		return confNumberOnly, true
	}
}

// amountsMatch compares two decimal strings within the tolerance.
// Unparseable text is not a match, never an error.
func amountsMatch(txnAmount, invoiceAmount string) bool {
	a, err := decimal.NewFromString(strings.TrimSpace(txnAmount))
	if err != nil {
		return false
	}
	b, err := decimal.NewFromString(strings.TrimSpace(invoiceAmount))
	if err != nil {
		return false
	}
	return a.Sub(b).Abs().LessThan(amountTolerance)
}
