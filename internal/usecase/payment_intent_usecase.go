package usecase

import (
	"context"
	"errors"
	"fmt"
	"time"

	"faturas/internal/domain/entities"
	"faturas/internal/logger"
	"faturas/internal/usecase/interfaces"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
)

var (
	ErrInvoiceNotPayable           = errors.New("invoice is not payable")
	ErrPaymentGatewayNotConfigured = errors.New("payment gateway not configured")
)

// IPaymentIntentUseCase opens PSP payment attempts for pending invoices and
// records them. Settlement (webhooks, status sync) happens outside this
// service; intents only ever reflect the status the PSP reported at
// creation.

type IPaymentIntentUseCase interface {
	CreateForInvoice(ctx context.Context, userID, invoiceID string) (entities.PaymentIntent, error)
	ListByInvoice(ctx context.Context, userID, invoiceID string) ([]entities.PaymentIntent, error)
}

type PaymentIntentUseCase struct {
	repo      interfaces.IPaymentIntentRepository
	invoiceUC IInvoiceUseCase
	gateway   interfaces.IPaymentGateway
	log       zerolog.Logger
}

var _ IPaymentIntentUseCase = (*PaymentIntentUseCase)(nil)

func NewPaymentIntentUseCase(repo interfaces.IPaymentIntentRepository, invoiceUC IInvoiceUseCase, gateway interfaces.IPaymentGateway) *PaymentIntentUseCase {
	return &PaymentIntentUseCase{
		repo:      repo,
		invoiceUC: invoiceUC,
		gateway:   gateway,
		log:       logger.WithComponent("payment-intent"),
	}
}

func (u *PaymentIntentUseCase) CreateForInvoice(ctx context.Context, userID, invoiceID string) (entities.PaymentIntent, error) {
	inv, err := u.invoiceUC.GetByID(ctx, userID, invoiceID)
	if err != nil {
		return entities.PaymentIntent{}, err
	}
	if inv.Status != entities.InvoiceStatusPending {
		return entities.PaymentIntent{}, ErrInvoiceNotPayable
	}
	if u.gateway == nil {
		return entities.PaymentIntent{}, ErrPaymentGatewayNotConfigured
	}

	description := fmt.Sprintf("Fatura %s", inv.ID)
	pspPaymentID, pspStatus, raw, err := u.gateway.CreatePayment(ctx, inv.AmountCents, description, inv.ID)
	if err != nil {
		u.log.Warn().Err(err).Str("invoice_id", inv.ID).Msg("psp payment creation failed")
		return entities.PaymentIntent{}, err
	}

	now := time.Now().UTC()
	intent := entities.PaymentIntent{
		ID:           uuid.NewString(),
		InvoiceID:    inv.ID,
		AmountCents:  inv.AmountCents,
		Entity:       inv.ParsedFields[entities.ParsedFieldMultibancoEntity],
		Reference:    inv.ParsedFields[entities.ParsedFieldMultibancoReference],
		PSP:          "mercadopago",
		PSPPaymentID: pspPaymentID,
		Status:       mapPSPStatus(pspStatus),
		WebhookLog:   raw,
		CreatedAt:    now,
		UpdatedAt:    now,
	}

	created, err := u.repo.Create(ctx, intent)
	if err != nil {
		return entities.PaymentIntent{}, err
	}

	u.log.Info().
		Str("invoice_id", inv.ID).
		Str("psp_payment_id", pspPaymentID).
		Str("psp_status", pspStatus).
		Msg("payment intent created")
	return created, nil
}

func (u *PaymentIntentUseCase) ListByInvoice(ctx context.Context, userID, invoiceID string) ([]entities.PaymentIntent, error) {
	inv, err := u.invoiceUC.GetByID(ctx, userID, invoiceID)
	if err != nil {
		return nil, err
	}
	return u.repo.ListByInvoiceID(ctx, inv.ID)
}

func mapPSPStatus(pspStatus string) entities.PaymentIntentStatus {
	switch pspStatus {
	case "approved":
		return entities.PaymentIntentStatusApproved
	case "rejected", "cancelled":
		return entities.PaymentIntentStatusRejected
	default:
		return entities.PaymentIntentStatusPending
	}
}
