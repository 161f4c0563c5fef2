package interfaces

import (
	"context"
	"encoding/json"
)

// IPaymentGateway abstracts the external PSP (Mercado Pago) used to open a
// payment attempt for an invoice.
//
// The raw provider response is returned so the caller can persist it for
// traceability.
type IPaymentGateway interface {
	CreatePayment(ctx context.Context, amountCents int64, description, externalReference string) (pspPaymentID string, pspStatus string, providerResponse json.RawMessage, err error)
}
