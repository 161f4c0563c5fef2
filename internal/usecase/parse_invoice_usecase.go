package usecase

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"faturas/internal/domain/entities"
	"faturas/internal/domain/issuers"
	"faturas/internal/logger"
	"faturas/internal/usecase/interfaces"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
)

var (
	ErrInvalidUserID   = errors.New("invalid user_id")
	ErrEmptyDocument   = errors.New("empty document payload")
	ErrInvalidIssuer   = errors.New("invalid issuer")
	ErrServiceNotFound = errors.New("service not found")
	ErrInvoiceNotFound = errors.New("invoice not found")
)

// ParseResult is the outcome of one upload: the extracted fields plus the
// service and invoice rows the pipeline committed.
type ParseResult struct {
	Extracted      entities.ExtractedInvoice
	Service        entities.Service
	Invoice        entities.Invoice
	ServiceCreated bool
}

// CategorizeResult is the outcome of a categorization-only request.
type CategorizeResult struct {
	Category    entities.Category
	Description string
}

// IParseInvoiceUseCase is the invoice-to-service reconciliation pipeline:
// extraction -> issuer resolution -> service reconcile-or-create -> invoice
// insert. Each call is an independent, synchronous, single-attempt chain.

type IParseInvoiceUseCase interface {
	ParseAndStore(ctx context.Context, userID string, document []byte, fileName string) (ParseResult, error)
	Categorize(ctx context.Context, issuer string, parsedFields map[string]interface{}) (CategorizeResult, error)
}

type ParseInvoiceUseCase struct {
	gateway     interfaces.IExtractionGateway
	serviceRepo interfaces.IServiceRepository
	invoiceRepo interfaces.IInvoiceRepository
	log         zerolog.Logger
}

var _ IParseInvoiceUseCase = (*ParseInvoiceUseCase)(nil)

func NewParseInvoiceUseCase(gateway interfaces.IExtractionGateway, serviceRepo interfaces.IServiceRepository, invoiceRepo interfaces.IInvoiceRepository) *ParseInvoiceUseCase {
	return &ParseInvoiceUseCase{
		gateway:     gateway,
		serviceRepo: serviceRepo,
		invoiceRepo: invoiceRepo,
		log:         logger.WithComponent("parse-invoice"),
	}
}

// ParseAndStore runs the full pipeline for one uploaded document.
//
// Extraction failures abort before any write. After extraction succeeds the
// chain is at most one service update-or-insert followed by one invoice
// insert; there is no transaction spanning the two and no rollback.
func (u *ParseInvoiceUseCase) ParseAndStore(ctx context.Context, userID string, document []byte, fileName string) (ParseResult, error) {
	userID = strings.TrimSpace(userID)
	if userID == "" {
		return ParseResult{}, ErrInvalidUserID
	}
	if len(document) == 0 {
		return ParseResult{}, ErrEmptyDocument
	}

	extracted, err := u.gateway.AnalyzeDocument(ctx, document, fileName)
	if err != nil {
		u.log.Warn().Err(err).Str("file_name", fileName).Msg("document extraction failed")
		return ParseResult{}, err
	}

	u.log.Info().
		Str("issuer", extracted.Issuer).
		Str("category", string(extracted.Category)).
		Int64("amount_cents", extracted.AmountCents).
		Msg("document extracted")

	service, created, err := u.reconcileService(ctx, userID, extracted)
	if err != nil {
		return ParseResult{}, err
	}

	invoice, err := u.writeInvoice(ctx, service.ID, extracted)
	if err != nil {
		return ParseResult{}, err
	}

	u.log.Info().
		Str("service_id", service.ID).
		Str("invoice_id", invoice.ID).
		Bool("service_created", created).
		Msg("invoice stored")

	return ParseResult{
		Extracted:      extracted,
		Service:        service,
		Invoice:        invoice,
		ServiceCreated: created,
	}, nil
}

// reconcileService finds the service to attach the invoice to, creating one
// when the user has no service whose stored issuer contains the extracted
// issuer. When several match, the most recently updated one is reused (the
// repository orders matches that way).
func (u *ParseInvoiceUseCase) reconcileService(ctx context.Context, userID string, extracted entities.ExtractedInvoice) (entities.Service, bool, error) {
	matches, err := u.serviceRepo.ListByUserAndIssuerContains(ctx, userID, extracted.Issuer)
	if err != nil {
		return entities.Service{}, false, err
	}

	if len(matches) > 0 {
		service := matches[0]
		if extracted.LogoURL != "" && service.LogoURL == "" {
			service, err = u.serviceRepo.UpdateLogoURL(ctx, service.ID, extracted.LogoURL)
			if err != nil {
				return entities.Service{}, false, err
			}
			u.log.Info().Str("service_id", service.ID).Msg("backfilled service logo")
		}
		return service, false, nil
	}

	now := time.Now().UTC()
	service, err := u.serviceRepo.Create(ctx, entities.Service{
		ID:        uuid.NewString(),
		UserID:    userID,
		Issuer:    extracted.Issuer,
		Category:  extracted.Category,
		LogoURL:   extracted.LogoURL,
		Status:    entities.ServiceStatusActive,
		CreatedAt: now,
		UpdatedAt: now,
	})
	if err != nil {
		return entities.Service{}, false, err
	}
	return service, true, nil
}

func (u *ParseInvoiceUseCase) writeInvoice(ctx context.Context, serviceID string, extracted entities.ExtractedInvoice) (entities.Invoice, error) {
	now := time.Now().UTC()

	// Missing due date defaults to today; a missing amount is degraded but
	// non-fatal and stored as 0.
	dueDate := now.Truncate(24 * time.Hour)
	if extracted.DueDate != nil {
		dueDate = *extracted.DueDate
	}

	var parsedFields map[string]string
	if extracted.MultibancoEntity != "" || extracted.MultibancoReference != "" {
		parsedFields = map[string]string{}
		if extracted.MultibancoEntity != "" {
			parsedFields[entities.ParsedFieldMultibancoEntity] = extracted.MultibancoEntity
		}
		if extracted.MultibancoReference != "" {
			parsedFields[entities.ParsedFieldMultibancoReference] = extracted.MultibancoReference
		}
	}

	return u.invoiceRepo.Create(ctx, entities.Invoice{
		ID:           uuid.NewString(),
		ServiceID:    serviceID,
		AmountCents:  extracted.AmountCents,
		Currency:     "EUR",
		DueDate:      dueDate,
		IssueDate:    extracted.IssueDate,
		Status:       entities.InvoiceStatusPending,
		ParsedFields: parsedFields,
		CreatedAt:    now,
		UpdatedAt:    now,
	})
}

// Categorize answers categorization-only requests for an already-known
// issuer. It is local keyword inference; no document and no network call.
func (u *ParseInvoiceUseCase) Categorize(ctx context.Context, issuer string, parsedFields map[string]interface{}) (CategorizeResult, error) {
	issuer = strings.TrimSpace(issuer)
	if issuer == "" {
		return CategorizeResult{}, ErrInvalidIssuer
	}
	_ = parsedFields // accepted for API compatibility, not consulted

	category := issuers.InferCategory(issuer)
	return CategorizeResult{
		Category:    category,
		Description: fmt.Sprintf("%s - %s", issuer, category),
	}, nil
}
