package model

// RowError records a statement line that failed to parse.
type RowError struct {
	Row     int // 1-based statement line ordinal
	Message string
}

// ParseOutcome aggregates one statement parse. Lines skipped for too few
// fields or an excluded operation code appear in neither Transactions nor
// Errors, so SuccessRows + len(Errors) <= TotalRows.
type ParseOutcome struct {
	Transactions []Transaction
	Errors       []RowError
	TotalRows    int
	SuccessRows  int
}

// SkippedRows returns the count of lines filtered out without error.
func (o ParseOutcome) SkippedRows() int {
	return o.TotalRows - o.SuccessRows - len(o.Errors)
}
