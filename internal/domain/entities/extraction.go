package entities

import "time"

// ExtractedInvoice is the transient output of the document extraction
// backend. It is never persisted on its own; the parsing pipeline consumes it
// immediately to resolve a Service and insert an Invoice, then discards it.
//
// Field shapes:
//   - AmountCents is in minor units; 0 means the backend found no amount.
//   - MultibancoEntity is exactly 5 digits, MultibancoReference exactly
//     9 digits with embedded whitespace already stripped. Values that do not
//     match these shapes are left empty rather than stored verbatim.
type ExtractedInvoice struct {
	Issuer              string
	Category            Category
	AmountCents         int64
	DueDate             *time.Time
	IssueDate           *time.Time
	ContractNumber      string
	MultibancoEntity    string
	MultibancoReference string
	LogoURL             string
}
