package entities

import "time"

// InvoiceStatus represents the payment state of a single invoice.
//
// Transitions are externally driven (settlement happens outside this
// service): pending -> paid/overdue/failed/expired. There is no reverse
// transition.

type InvoiceStatus string

const (
	InvoiceStatusPending InvoiceStatus = "pending"
	InvoiceStatusPaid    InvoiceStatus = "paid"
	InvoiceStatusOverdue InvoiceStatus = "overdue"
	InvoiceStatusFailed  InvoiceStatus = "failed"
	InvoiceStatusExpired InvoiceStatus = "expired"
)

// CanTransitionTo reports whether moving from s to next is allowed.
func (s InvoiceStatus) CanTransitionTo(next InvoiceStatus) bool {
	if s != InvoiceStatusPending {
		return false
	}
	switch next {
	case InvoiceStatusPaid, InvoiceStatusOverdue, InvoiceStatusFailed, InvoiceStatusExpired:
		return true
	}
	return false
}

// Invoice is one billing instance for a service, persisted in DynamoDB.
//
// Storage model (DynamoDB):
//   - PK: id
//   - GSI1 (service_id-index): service_id
//
// Monetary representation:
//   - AmountCents is always an integer amount in minor currency units.
//
// ParsedFields holds payment-rail details extracted from the source document
// (Multibanco entity/reference). It is stored as-is for traceability.
type Invoice struct {
	ID              string            `json:"id"`
	ServiceID       string            `json:"service_id"`
	AmountCents     int64             `json:"amount_cents"`
	Currency        string            `json:"currency"`
	DueDate         time.Time         `json:"due_date"`
	IssueDate       *time.Time        `json:"issue_date,omitempty"`
	Status          InvoiceStatus     `json:"status"`
	ParsedFields    map[string]string `json:"parsed_fields,omitempty"`
	PDFURL          string            `json:"pdf_url,omitempty"`
	SourceEmailHash string            `json:"source_email_hash,omitempty"`
	CreatedAt       time.Time         `json:"created_at"`
	UpdatedAt       time.Time         `json:"updated_at"`
}

// Multibanco parsed_fields keys.
const (
	ParsedFieldMultibancoEntity    = "multibanco_entity"
	ParsedFieldMultibancoReference = "multibanco_reference"
)
