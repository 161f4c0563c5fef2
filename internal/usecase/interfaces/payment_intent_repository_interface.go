package interfaces

import (
	"context"

	"faturas/internal/domain/entities"
)

// IPaymentIntentRepository abstracts DynamoDB persistence for PaymentIntent.

type IPaymentIntentRepository interface {
	Create(ctx context.Context, pi entities.PaymentIntent) (entities.PaymentIntent, error)
	ListByInvoiceID(ctx context.Context, invoiceID string) ([]entities.PaymentIntent, error)
}
