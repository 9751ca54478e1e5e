package invoices

import (
	"bytes"
	"encoding/json"
	"fmt"

	"github.com/tomasbukis-maker/TMS-NEW-sub001/internal/model"
)

type invoiceJSON struct {
	ID              int    `json:"id"`
	ReferenceNumber string `json:"reference_number"`
	PartnerName     string `json:"partner_name"`
	TotalAmount     string `json:"total_amount"`
	PaymentState    string `json:"payment_state"`
}

// DecodeCollection parses an invoice-provider payload. Providers answer
// with either a bare invoice array or a paginated {"results": [...]}
// envelope; both normalize to a plain ordered slice here, at the
// boundary, so the matcher never sees the difference.
func DecodeCollection(data []byte) ([]model.Invoice, error) {
	trimmed := bytes.TrimSpace(data)
	if len(trimmed) == 0 {
		return nil, nil
	}

	var rows []invoiceJSON
	if trimmed[0] == '[' {
		if err := json.Unmarshal(trimmed, &rows); err != nil {
			return nil, fmt.Errorf("parsing invoice array: %w", err)
		}
	} else {
		var envelope struct {
			Results []invoiceJSON `json:"results"`
		}
		if err := json.Unmarshal(trimmed, &envelope); err != nil {
			return nil, fmt.Errorf("parsing invoice envelope: %w", err)
		}
		rows = envelope.Results
	}

	invs := make([]model.Invoice, 0, len(rows))
	for _, r := range rows {
		invs = append(invs, model.Invoice{
			ID:              r.ID,
			ReferenceNumber: r.ReferenceNumber,
			PartnerName:     r.PartnerName,
			TotalAmount:     r.TotalAmount,
			PaymentState:    r.PaymentState,
		})
	}
	return invs, nil
}
