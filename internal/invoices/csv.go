package invoices

import (
	"encoding/csv"
	"fmt"
	"io"
	"strconv"

	"github.com/tomasbukis-maker/TMS-NEW-sub001/internal/model"
)

// Header is the CSV header for an invoice collection file.
const Header = "id,reference_number,partner_name,total_amount,payment_state"

const (
	numFields       = 5
	colID           = 0
	colRef          = 1
	colPartner      = 2
	colTotal        = 3
	colPaymentState = 4
)

// ReadInvoices reads one invoice collection, preserving document order.
// Order matters downstream: the matcher breaks confidence ties by first
// occurrence.
func ReadInvoices(r io.Reader) ([]model.Invoice, error) {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = numFields

	records, err := cr.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("reading invoices CSV: %w", err)
	}

	if len(records) == 0 {
		return nil, nil
	}

	// Skip header row.
	var invs []model.Invoice
	for i, rec := range records[1:] {
		inv, err := unmarshalInvoice(rec)
		if err != nil {
			return nil, fmt.Errorf("row %d: %w", i+2, err)
		}
		invs = append(invs, inv)
	}
	return invs, nil
}

func unmarshalInvoice(record []string) (model.Invoice, error) {
	id, err := strconv.Atoi(record[colID])
	if err != nil {
		return model.Invoice{}, fmt.Errorf("parsing id %q: %w", record[colID], err)
	}
	return model.Invoice{
		ID:              id,
		ReferenceNumber: record[colRef],
		PartnerName:     record[colPartner],
		TotalAmount:     record[colTotal],
		PaymentState:    record[colPaymentState],
	}, nil
}
