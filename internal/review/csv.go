package review

import (
	"encoding/csv"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/tomasbukis-maker/TMS-NEW-sub001/internal/model"
)

// Header is the CSV header for a review-session file.
const Header = "row,date,description,partner,amount,currency,invoice_id,confidence,category,decision,decided_by,chosen_id,notes"

const (
	numFields    = 13
	colRow       = 0
	colDate      = 1
	colDesc      = 2
	colPartner   = 3
	colAmount    = 4
	colCurrency  = 5
	colInvoiceID = 6
	colConf      = 7
	colCategory  = 8
	colDecision  = 9
	colDecidedBy = 10
	colChosenID  = 11
	colNotes     = 12
)

// ReadItems reads all items from a session CSV reader.
func ReadItems(r io.Reader) ([]model.ReviewItem, error) {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = numFields

	records, err := cr.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("reading session CSV: %w", err)
	}

	if len(records) == 0 {
		return nil, nil
	}

	// Skip header row.
	var items []model.ReviewItem
	for i, rec := range records[1:] {
		item, err := UnmarshalItem(rec)
		if err != nil {
			return nil, fmt.Errorf("row %d: %w", i+2, err)
		}
		items = append(items, item)
	}
	return items, nil
}

// WriteItems writes items to a session CSV writer (including header).
func WriteItems(w io.Writer, items []model.ReviewItem) error {
	cw := csv.NewWriter(w)
	defer cw.Flush()

	if err := cw.Write(strings.Split(Header, ",")); err != nil {
		return fmt.Errorf("writing header: %w", err)
	}

	for i, item := range items {
		if err := cw.Write(MarshalItem(item)); err != nil {
			return fmt.Errorf("writing row %d: %w", i+2, err)
		}
	}
	return cw.Error()
}

// MarshalItem converts a ReviewItem to a CSV row ([]string).
func MarshalItem(item model.ReviewItem) []string {
	row := make([]string, numFields)
	row[colRow] = strconv.Itoa(item.Row)
	row[colDate] = item.Date
	row[colDesc] = item.Description
	row[colPartner] = item.PartnerName
	row[colAmount] = item.Amount
	row[colCurrency] = item.Currency

	if item.InvoiceID != 0 {
		row[colInvoiceID] = strconv.Itoa(item.InvoiceID)
	}
	if !item.Confidence.IsZero() {
		row[colConf] = item.Confidence.String()
	}

	row[colCategory] = string(item.Category)
	row[colDecision] = string(item.Decision)
	row[colDecidedBy] = item.DecidedBy

	if item.ChosenID != 0 {
		row[colChosenID] = strconv.Itoa(item.ChosenID)
	}

	row[colNotes] = item.Notes
	return row
}

// UnmarshalItem converts a CSV row to a ReviewItem.
func UnmarshalItem(record []string) (model.ReviewItem, error) {
	if len(record) != numFields {
		return model.ReviewItem{}, fmt.Errorf("expected %d fields, got %d", numFields, len(record))
	}

	rowNum, err := strconv.Atoi(record[colRow])
	if err != nil {
		return model.ReviewItem{}, fmt.Errorf("parsing row %q: %w", record[colRow], err)
	}

	var invoiceID, chosenID int
	if record[colInvoiceID] != "" {
		invoiceID, err = strconv.Atoi(record[colInvoiceID])
		if err != nil {
			return model.ReviewItem{}, fmt.Errorf("parsing invoice_id %q: %w", record[colInvoiceID], err)
		}
	}
	if record[colChosenID] != "" {
		chosenID, err = strconv.Atoi(record[colChosenID])
		if err != nil {
			return model.ReviewItem{}, fmt.Errorf("parsing chosen_id %q: %w", record[colChosenID], err)
		}
	}

	var confidence decimal.Decimal
	if record[colConf] != "" {
		confidence, err = decimal.NewFromString(record[colConf])
		if err != nil {
			return model.ReviewItem{}, fmt.Errorf("parsing confidence %q: %w", record[colConf], err)
		}
	}

	return model.ReviewItem{
		Row:         rowNum,
		Date:        record[colDate],
		Description: record[colDesc],
		PartnerName: record[colPartner],
		Amount:      record[colAmount],
		Currency:    record[colCurrency],
		InvoiceID:   invoiceID,
		Confidence:  confidence,
		Category:    model.Category(record[colCategory]),
		Decision:    model.DecisionStatus(record[colDecision]),
		DecidedBy:   record[colDecidedBy],
		ChosenID:    chosenID,
		Notes:       record[colNotes],
	}, nil
}
