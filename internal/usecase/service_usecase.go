package usecase

import (
	"context"
	"errors"
	"strings"
	"time"

	"faturas/internal/domain/entities"
	"faturas/internal/usecase/interfaces"

	"github.com/google/uuid"
)

var (
	ErrInvalidServiceID    = errors.New("invalid service id")
	ErrInvalidIssuerName   = errors.New("invalid issuer name")
	ErrInvalidCategory     = errors.New("invalid category")
	ErrInvalidAutopayLimit = errors.New("invalid autopay limit")
	ErrServiceAccessDenied = errors.New("service does not belong to user")
)

// IServiceUseCase exposes the user-facing service operations: explicit
// creation, listing, field edits and the autopay toggle. Services are never
// deleted through this core.

type IServiceUseCase interface {
	Create(ctx context.Context, userID, issuer string, category entities.Category, contractNumber string) (entities.Service, error)
	GetByID(ctx context.Context, userID, id string) (entities.Service, error)
	ListByUser(ctx context.Context, userID string) ([]entities.Service, error)
	Update(ctx context.Context, userID, id string, upd interfaces.ServiceUpdate) (entities.Service, error)
	SetAutopay(ctx context.Context, userID, id string, enabled bool, limitCents *int64) (entities.Service, error)
}

type ServiceUseCase struct {
	repo interfaces.IServiceRepository
}

var _ IServiceUseCase = (*ServiceUseCase)(nil)

func NewServiceUseCase(repo interfaces.IServiceRepository) *ServiceUseCase {
	return &ServiceUseCase{repo: repo}
}

func (u *ServiceUseCase) Create(ctx context.Context, userID, issuer string, category entities.Category, contractNumber string) (entities.Service, error) {
	userID = strings.TrimSpace(userID)
	if userID == "" {
		return entities.Service{}, ErrInvalidUserID
	}
	issuer = strings.TrimSpace(issuer)
	if issuer == "" {
		return entities.Service{}, ErrInvalidIssuerName
	}
	if category != "" && !entities.ValidCategory(category) {
		return entities.Service{}, ErrInvalidCategory
	}

	now := time.Now().UTC()
	return u.repo.Create(ctx, entities.Service{
		ID:             uuid.NewString(),
		UserID:         userID,
		Issuer:         issuer,
		Category:       category,
		ContractNumber: strings.TrimSpace(contractNumber),
		Status:         entities.ServiceStatusActive,
		CreatedAt:      now,
		UpdatedAt:      now,
	})
}

func (u *ServiceUseCase) GetByID(ctx context.Context, userID, id string) (entities.Service, error) {
	return u.getOwned(ctx, userID, id)
}

func (u *ServiceUseCase) ListByUser(ctx context.Context, userID string) ([]entities.Service, error) {
	userID = strings.TrimSpace(userID)
	if userID == "" {
		return nil, ErrInvalidUserID
	}
	return u.repo.ListByUserID(ctx, userID)
}

func (u *ServiceUseCase) Update(ctx context.Context, userID, id string, upd interfaces.ServiceUpdate) (entities.Service, error) {
	if _, err := u.getOwned(ctx, userID, id); err != nil {
		return entities.Service{}, err
	}
	if upd.Issuer != nil && strings.TrimSpace(*upd.Issuer) == "" {
		return entities.Service{}, ErrInvalidIssuerName
	}
	if upd.Category != nil && *upd.Category != "" && !entities.ValidCategory(*upd.Category) {
		return entities.Service{}, ErrInvalidCategory
	}

	updated, err := u.repo.UpdateDetails(ctx, id, upd)
	if err != nil {
		return entities.Service{}, err
	}
	if updated.ID == "" {
		return entities.Service{}, ErrServiceNotFound
	}
	return updated, nil
}

func (u *ServiceUseCase) SetAutopay(ctx context.Context, userID, id string, enabled bool, limitCents *int64) (entities.Service, error) {
	if _, err := u.getOwned(ctx, userID, id); err != nil {
		return entities.Service{}, err
	}
	if limitCents != nil && *limitCents <= 0 {
		return entities.Service{}, ErrInvalidAutopayLimit
	}

	updated, err := u.repo.UpdateAutopay(ctx, id, enabled, limitCents)
	if err != nil {
		return entities.Service{}, err
	}
	if updated.ID == "" {
		return entities.Service{}, ErrServiceNotFound
	}
	return updated, nil
}

func (u *ServiceUseCase) getOwned(ctx context.Context, userID, id string) (entities.Service, error) {
	userID = strings.TrimSpace(userID)
	if userID == "" {
		return entities.Service{}, ErrInvalidUserID
	}
	id = strings.TrimSpace(id)
	if id == "" {
		return entities.Service{}, ErrInvalidServiceID
	}

	s, err := u.repo.GetByID(ctx, id)
	if err != nil {
		return entities.Service{}, err
	}
	if s.ID == "" {
		return entities.Service{}, ErrServiceNotFound
	}
	if s.UserID != userID {
		return entities.Service{}, ErrServiceAccessDenied
	}
	return s, nil
}
