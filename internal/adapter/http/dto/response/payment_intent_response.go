package response

import (
	"encoding/json"
	"time"

	"faturas/internal/domain/entities"
)

type PaymentIntentResponse struct {
	ID           string                 `json:"id"`
	InvoiceID    string                 `json:"invoice_id"`
	AmountCents  int64                  `json:"amount_cents"`
	Entity       string                 `json:"entity,omitempty"`
	Reference    string                 `json:"reference,omitempty"`
	PSP          string                 `json:"psp"`
	PSPPaymentID string                 `json:"psp_payment_id,omitempty"`
	Status       string                 `json:"status"`
	ExpiresAt    *time.Time             `json:"expires_at,omitempty"`
	WebhookLog   map[string]interface{} `json:"webhook_log,omitempty"`
	CreatedAt    time.Time              `json:"created_at"`
	UpdatedAt    time.Time              `json:"updated_at"`
}

func FromPaymentIntent(p entities.PaymentIntent) PaymentIntentResponse {
	out := PaymentIntentResponse{
		ID:           p.ID,
		InvoiceID:    p.InvoiceID,
		AmountCents:  p.AmountCents,
		Entity:       p.Entity,
		Reference:    p.Reference,
		PSP:          p.PSP,
		PSPPaymentID: p.PSPPaymentID,
		Status:       string(p.Status),
		ExpiresAt:    p.ExpiresAt,
		CreatedAt:    p.CreatedAt,
		UpdatedAt:    p.UpdatedAt,
	}
	if len(p.WebhookLog) > 0 {
		var parsed map[string]interface{}
		if err := json.Unmarshal(p.WebhookLog, &parsed); err == nil {
			out.WebhookLog = parsed
		}
	}
	return out
}

func FromPaymentIntents(list []entities.PaymentIntent) []PaymentIntentResponse {
	out := make([]PaymentIntentResponse, 0, len(list))
	for _, p := range list {
		out = append(out, FromPaymentIntent(p))
	}
	return out
}
