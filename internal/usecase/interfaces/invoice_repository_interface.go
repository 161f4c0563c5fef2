package interfaces

import (
	"context"

	"faturas/internal/domain/entities"
)

// IInvoiceRepository abstracts DynamoDB persistence for Invoice.

type IInvoiceRepository interface {
	Create(ctx context.Context, inv entities.Invoice) (entities.Invoice, error)
	GetByID(ctx context.Context, id string) (entities.Invoice, error)
	ListByServiceID(ctx context.Context, serviceID string) ([]entities.Invoice, error)
	UpdateStatus(ctx context.Context, id string, status entities.InvoiceStatus) (entities.Invoice, error)
}
