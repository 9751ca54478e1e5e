package statement

import (
	"fmt"
	"strings"

	"github.com/tomasbukis-maker/TMS-NEW-sub001/internal/model"
)

const (
	fieldDelim = ','
	minFields  = 10

	colOpType      = 1
	colDate        = 2
	colPartner     = 3
	colDesc        = 4
	colAmount      = 5
	colCurrency    = 6
	colDebitCredit = 7
	colBankRef     = 8
	colPaymentCode = 9
)

// excludedOpTypes are operation codes for non-transactional entries
// (opening/closing balance and turnover rows).
var excludedOpTypes = map[string]bool{
	"10": true,
	"82": true,
	"86": true,
}

// SwedbankParser parses Swedbank LT delimited account statement exports.
type SwedbankParser struct{}

// Format returns the parser name.
func (p *SwedbankParser) Format() string { return "swedbank" }

// Parse splits already-decoded statement text into lines and assembles one
// Transaction per data line. Lines with fewer than 10 fields or with an
// excluded operation code are skipped without error; a line that fails
// field assembly is recorded in the outcome's error list and never aborts
// the batch.
func (p *SwedbankParser) Parse(text string) model.ParseOutcome {
	var out model.ParseOutcome

	for i, line := range strings.Split(text, "\n") {
		line = strings.TrimRight(line, "\r")
		if strings.TrimSpace(line) == "" {
			continue
		}
		row := i + 1
		out.TotalRows++

		fields := SplitFields(line, fieldDelim)
		if len(fields) < minFields {
			continue
		}
		if excludedOpTypes[strings.TrimSpace(fields[colOpType])] {
			continue
		}

		txn, err := buildTransaction(row, fields)
		if err != nil {
			out.Errors = append(out.Errors, model.RowError{Row: row, Message: err.Error()})
			continue
		}
		out.Transactions = append(out.Transactions, txn)
		out.SuccessRows++
	}
	return out
}

// buildTransaction assembles one Transaction from tokenized fields,
// applying the party and reference extractors.
func buildTransaction(row int, fields []string) (model.Transaction, error) {
	amount := strings.TrimSpace(fields[colAmount])
	if amount == "" {
		return model.Transaction{}, fmt.Errorf("empty amount field")
	}
	date := strings.TrimSpace(fields[colDate])
	if date == "" {
		return model.Transaction{}, fmt.Errorf("empty date field")
	}

	party := ExtractParty(fields[colPartner])
	desc := strings.TrimSpace(strings.Trim(strings.TrimSpace(fields[colDesc]), `"`))

	return model.Transaction{
		Row:            row,
		Date:           date,
		DebitCredit:    strings.TrimSpace(fields[colDebitCredit]),
		Amount:         amount,
		Currency:       strings.TrimSpace(fields[colCurrency]),
		Description:    desc,
		InvoiceNumber:  ExtractReference(desc),
		PartnerName:    party.Name,
		PartnerCode:    party.Code,
		PartnerAccount: party.Account,
		BankRef:        strings.TrimSpace(fields[colBankRef]),
		PaymentCode:    strings.TrimSpace(fields[colPaymentCode]),
	}, nil
}
