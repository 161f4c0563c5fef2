package usecase

import (
	"context"
	"errors"
	"strings"
	"time"

	"faturas/internal/domain/entities"
	"faturas/internal/usecase/interfaces"
)

var (
	ErrInvalidInvoiceID        = errors.New("invalid invoice id")
	ErrInvalidInvoiceStatus    = errors.New("invalid invoice status")
	ErrInvoiceStatusTransition = errors.New("invoice status transition not allowed")
	ErrInvoiceAccessDenied     = errors.New("invoice does not belong to user")
)

// DashboardStats is the aggregation behind the dashboard cards: open amount,
// overdue count, what was paid this month and the rolling average spend.
type DashboardStats struct {
	TotalDueCents            int64      `json:"total_due_cents"`
	OverdueCount             int        `json:"overdue_count"`
	PaidThisMonth            int        `json:"paid_this_month"`
	TotalPaidThisMonthCents  int64      `json:"total_paid_this_month_cents"`
	NextDueDate              *time.Time `json:"next_due_date,omitempty"`
	AverageMonthlySpendCents int64      `json:"average_monthly_spend_cents"`
}

// IInvoiceUseCase exposes invoice reads, the externally-driven status
// transitions and the dashboard aggregation. Invoices are only created by
// the parse pipeline, never directly through this interface.

type IInvoiceUseCase interface {
	GetByID(ctx context.Context, userID, id string) (entities.Invoice, error)
	ListByService(ctx context.Context, userID, serviceID string) ([]entities.Invoice, error)
	ListByUser(ctx context.Context, userID string) ([]entities.Invoice, error)
	UpdateStatus(ctx context.Context, userID, id string, status entities.InvoiceStatus) (entities.Invoice, error)
	DashboardStats(ctx context.Context, userID string) (DashboardStats, error)
}

type InvoiceUseCase struct {
	repo        interfaces.IInvoiceRepository
	serviceRepo interfaces.IServiceRepository
}

var _ IInvoiceUseCase = (*InvoiceUseCase)(nil)

func NewInvoiceUseCase(repo interfaces.IInvoiceRepository, serviceRepo interfaces.IServiceRepository) *InvoiceUseCase {
	return &InvoiceUseCase{repo: repo, serviceRepo: serviceRepo}
}

func (u *InvoiceUseCase) GetByID(ctx context.Context, userID, id string) (entities.Invoice, error) {
	return u.getOwned(ctx, userID, id)
}

func (u *InvoiceUseCase) ListByService(ctx context.Context, userID, serviceID string) ([]entities.Invoice, error) {
	userID = strings.TrimSpace(userID)
	if userID == "" {
		return nil, ErrInvalidUserID
	}
	serviceID = strings.TrimSpace(serviceID)
	if serviceID == "" {
		return nil, ErrInvalidServiceID
	}

	service, err := u.serviceRepo.GetByID(ctx, serviceID)
	if err != nil {
		return nil, err
	}
	if service.ID == "" {
		return nil, ErrServiceNotFound
	}
	if service.UserID != userID {
		return nil, ErrServiceAccessDenied
	}
	return u.repo.ListByServiceID(ctx, serviceID)
}

func (u *InvoiceUseCase) ListByUser(ctx context.Context, userID string) ([]entities.Invoice, error) {
	userID = strings.TrimSpace(userID)
	if userID == "" {
		return nil, ErrInvalidUserID
	}

	services, err := u.serviceRepo.ListByUserID(ctx, userID)
	if err != nil {
		return nil, err
	}

	invoices := make([]entities.Invoice, 0)
	for _, s := range services {
		batch, err := u.repo.ListByServiceID(ctx, s.ID)
		if err != nil {
			return nil, err
		}
		invoices = append(invoices, batch...)
	}
	return invoices, nil
}

// UpdateStatus applies an externally-driven transition. Only forward moves
// out of pending are allowed.
func (u *InvoiceUseCase) UpdateStatus(ctx context.Context, userID, id string, status entities.InvoiceStatus) (entities.Invoice, error) {
	inv, err := u.getOwned(ctx, userID, id)
	if err != nil {
		return entities.Invoice{}, err
	}

	switch status {
	case entities.InvoiceStatusPaid, entities.InvoiceStatusOverdue, entities.InvoiceStatusFailed, entities.InvoiceStatusExpired:
	default:
		return entities.Invoice{}, ErrInvalidInvoiceStatus
	}
	if !inv.Status.CanTransitionTo(status) {
		return entities.Invoice{}, ErrInvoiceStatusTransition
	}

	updated, err := u.repo.UpdateStatus(ctx, id, status)
	if err != nil {
		return entities.Invoice{}, err
	}
	if updated.ID == "" {
		return entities.Invoice{}, ErrInvoiceNotFound
	}
	return updated, nil
}

// DashboardStats aggregates the user's invoices in memory. The data set per
// user is small (a handful of bills per month), so no storage-side
// aggregation is needed.
func (u *InvoiceUseCase) DashboardStats(ctx context.Context, userID string) (DashboardStats, error) {
	invoices, err := u.ListByUser(ctx, userID)
	if err != nil {
		return DashboardStats{}, err
	}

	now := time.Now().UTC()
	monthStart := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, time.UTC)
	threeMonthsAgo := monthStart.AddDate(0, -3, 0)

	var stats DashboardStats
	var recentPaidCents int64

	for _, inv := range invoices {
		switch inv.Status {
		case entities.InvoiceStatusPending:
			stats.TotalDueCents += inv.AmountCents
			if inv.DueDate.Before(now) {
				stats.OverdueCount++
			}
			if stats.NextDueDate == nil || inv.DueDate.Before(*stats.NextDueDate) {
				due := inv.DueDate
				stats.NextDueDate = &due
			}
		case entities.InvoiceStatusPaid:
			if !inv.UpdatedAt.Before(monthStart) {
				stats.PaidThisMonth++
				stats.TotalPaidThisMonthCents += inv.AmountCents
			}
			if !inv.UpdatedAt.Before(threeMonthsAgo) {
				recentPaidCents += inv.AmountCents
			}
		}
	}

	stats.AverageMonthlySpendCents = recentPaidCents / 3
	return stats, nil
}

func (u *InvoiceUseCase) getOwned(ctx context.Context, userID, id string) (entities.Invoice, error) {
	userID = strings.TrimSpace(userID)
	if userID == "" {
		return entities.Invoice{}, ErrInvalidUserID
	}
	id = strings.TrimSpace(id)
	if id == "" {
		return entities.Invoice{}, ErrInvalidInvoiceID
	}

	inv, err := u.repo.GetByID(ctx, id)
	if err != nil {
		return entities.Invoice{}, err
	}
	if inv.ID == "" {
		return entities.Invoice{}, ErrInvoiceNotFound
	}

	service, err := u.serviceRepo.GetByID(ctx, inv.ServiceID)
	if err != nil {
		return entities.Invoice{}, err
	}
	if service.ID == "" || service.UserID != userID {
		return entities.Invoice{}, ErrInvoiceAccessDenied
	}
	return inv, nil
}
