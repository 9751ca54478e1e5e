package model

// Transaction is one parsed statement line. String fields are kept
// format-preserved; the amount is converted to a decimal lazily by the
// matcher. A Transaction is never mutated after the parser builds it.
type Transaction struct {
	Row            int    // 1-based statement line ordinal
	Date           string // raw date text, passed through verbatim
	DebitCredit    string // two-valued debit/credit marker
	Amount         string // decimal string, parsed lazily
	Currency       string
	Description    string
	InvoiceNumber  string // inferred from the description, "" = none
	PartnerName    string
	PartnerCode    string
	PartnerAccount string
	BankRef        string // bank operation reference number
	PaymentCode    string // payment-type code
}
