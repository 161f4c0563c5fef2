package interfaces

import (
	"context"

	"faturas/internal/domain/entities"
)

// ServiceUpdate carries the user-editable service fields. Nil pointers leave
// the stored value untouched.
type ServiceUpdate struct {
	Issuer         *string
	Category       *entities.Category
	ContractNumber *string
	LogoURL        *string
	Status         *entities.ServiceStatus
}

// IServiceRepository abstracts DynamoDB persistence for Service.
//
// The reconciliation pipeline needs:
//   - ListByUserAndIssuerContains: existing services whose stored issuer
//     contains the extracted issuer, case-insensitively (asymmetric check),
//     ordered most recently updated first so reuse is deterministic.
//   - UpdateLogoURL: single-field backfill, not a full overwrite.

type IServiceRepository interface {
	Create(ctx context.Context, s entities.Service) (entities.Service, error)
	GetByID(ctx context.Context, id string) (entities.Service, error)
	ListByUserID(ctx context.Context, userID string) ([]entities.Service, error)
	ListByUserAndIssuerContains(ctx context.Context, userID, issuer string) ([]entities.Service, error)
	UpdateLogoURL(ctx context.Context, id, logoURL string) (entities.Service, error)
	UpdateDetails(ctx context.Context, id string, upd ServiceUpdate) (entities.Service, error)
	UpdateAutopay(ctx context.Context, id string, autopay bool, limitCents *int64) (entities.Service, error)
}
