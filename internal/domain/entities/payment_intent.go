package entities

import (
	"encoding/json"
	"time"
)

// PaymentIntentStatus represents the PSP-side outcome of a payment attempt.
//
// Settlement is driven by the PSP; this service only records the intent and
// whatever status the PSP reported at creation time.

type PaymentIntentStatus string

const (
	PaymentIntentStatusPending  PaymentIntentStatus = "pending"
	PaymentIntentStatusApproved PaymentIntentStatus = "approved"
	PaymentIntentStatusRejected PaymentIntentStatus = "rejected"
	PaymentIntentStatusExpired  PaymentIntentStatus = "expired"
)

// PaymentIntent is a payment attempt for an invoice, persisted in DynamoDB.
//
// Storage model (DynamoDB):
//   - PK: id
//   - GSI1 (invoice_id-index): invoice_id
//
// PSP payload:
//   - WebhookLog keeps the raw provider response (JSON) for traceability.
type PaymentIntent struct {
	ID           string              `json:"id"`
	InvoiceID    string              `json:"invoice_id"`
	AmountCents  int64               `json:"amount_cents"`
	Entity       string              `json:"entity,omitempty"`
	Reference    string              `json:"reference,omitempty"`
	PSP          string              `json:"psp"`
	PSPPaymentID string              `json:"psp_payment_id,omitempty"`
	Status       PaymentIntentStatus `json:"status"`
	ExpiresAt    *time.Time          `json:"expires_at,omitempty"`
	WebhookLog   json.RawMessage     `json:"webhook_log,omitempty"`
	CreatedAt    time.Time           `json:"created_at"`
	UpdatedAt    time.Time           `json:"updated_at"`
}
