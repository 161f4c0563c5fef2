package handlers

import (
	"errors"
	"net/http"

	request "faturas/internal/adapter/http/dto/request"
	response "faturas/internal/adapter/http/dto/response"
	"faturas/internal/domain/entities"
	"faturas/internal/usecase"
	"faturas/internal/usecase/interfaces"
	"faturas/pkg"

	"github.com/gin-gonic/gin"
)

var (
	errInvalidParsePayload   = pkg.NewDomainErrorSimple("INVALID_PARSE_INPUT", "Invalid parse payload", http.StatusBadRequest)
	errInvalidInvoicePayload = pkg.NewDomainErrorSimple("INVALID_INVOICE_INPUT", "Invalid invoice payload", http.StatusBadRequest)
)

// InvoiceHandler handles HTTP requests for invoice parsing and invoice
// lifecycle reads/updates.

type InvoiceHandler struct {
	parseUC   usecase.IParseInvoiceUseCase
	invoiceUC usecase.IInvoiceUseCase
}

func NewInvoiceHandler(parseUC usecase.IParseInvoiceUseCase, invoiceUC usecase.IInvoiceUseCase) *InvoiceHandler {
	return &InvoiceHandler{parseUC: parseUC, invoiceUC: invoiceUC}
}

// ParseInvoice accepts an uploaded document (base64 data URL) and runs the
// full extraction + reconciliation pipeline for the requesting user.
func (h *InvoiceHandler) ParseInvoice(c *gin.Context) {
	userID, ok := userIDFromRequest(c)
	if !ok {
		return
	}

	var payload request.ParseInvoiceRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidParsePayload.HTTPStatus, errInvalidParsePayload.ToHTTPError())
		return
	}

	document, err := payload.DecodeDocument()
	if err != nil {
		c.JSON(errInvalidParsePayload.HTTPStatus, errInvalidParsePayload.ToHTTPError())
		return
	}

	result, err := h.parseUC.ParseAndStore(c.Request.Context(), userID, document, payload.FileName)
	if err != nil {
		appErr := mapParseError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusCreated, response.FromParseResult(result))
}

// Categorize infers a category and display description from an issuer name
// alone, without touching storage.
func (h *InvoiceHandler) Categorize(c *gin.Context) {
	var payload request.CategorizeRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidParsePayload.HTTPStatus, errInvalidParsePayload.ToHTTPError())
		return
	}

	result, err := h.parseUC.Categorize(c.Request.Context(), payload.Issuer, payload.ParsedFields)
	if err != nil {
		appErr := mapParseError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromCategorizeResult(result))
}

// ListInvoices returns either all of the user's invoices or, when the
// service_id query parameter is present, only that service's invoices.
func (h *InvoiceHandler) ListInvoices(c *gin.Context) {
	userID, ok := userIDFromRequest(c)
	if !ok {
		return
	}

	var (
		invoices []entities.Invoice
		err      error
	)
	if serviceID := c.Query("service_id"); serviceID != "" {
		invoices, err = h.invoiceUC.ListByService(c.Request.Context(), userID, serviceID)
	} else {
		invoices, err = h.invoiceUC.ListByUser(c.Request.Context(), userID)
	}
	if err != nil {
		appErr := mapInvoiceError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromInvoices(invoices))
}

func (h *InvoiceHandler) GetInvoice(c *gin.Context) {
	userID, ok := userIDFromRequest(c)
	if !ok {
		return
	}

	invoice, err := h.invoiceUC.GetByID(c.Request.Context(), userID, c.Param("id"))
	if err != nil {
		appErr := mapInvoiceError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromInvoice(invoice))
}

func (h *InvoiceHandler) UpdateInvoiceStatus(c *gin.Context) {
	userID, ok := userIDFromRequest(c)
	if !ok {
		return
	}

	var payload request.UpdateInvoiceStatusRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidInvoicePayload.HTTPStatus, errInvalidInvoicePayload.ToHTTPError())
		return
	}

	invoice, err := h.invoiceUC.UpdateStatus(c.Request.Context(), userID, c.Param("id"), entities.InvoiceStatus(payload.Status))
	if err != nil {
		appErr := mapInvoiceError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromInvoice(invoice))
}

// DashboardStats aggregates the user's invoices into the dashboard numbers.
func (h *InvoiceHandler) DashboardStats(c *gin.Context) {
	userID, ok := userIDFromRequest(c)
	if !ok {
		return
	}

	stats, err := h.invoiceUC.DashboardStats(c.Request.Context(), userID)
	if err != nil {
		appErr := mapInvoiceError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromDashboardStats(stats))
}

func mapParseError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrInvalidUserID), errors.Is(err, usecase.ErrEmptyDocument), errors.Is(err, usecase.ErrInvalidIssuer):
		return pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest)
	case errors.Is(err, interfaces.ErrExtractionRateLimited):
		return pkg.NewDomainErrorSimple("EXTRACTION_RATE_LIMITED", "Rate limits exceeded. Please try again later.", http.StatusTooManyRequests)
	case errors.Is(err, interfaces.ErrExtractionPaymentRequired):
		return pkg.NewDomainErrorSimple("EXTRACTION_PAYMENT_REQUIRED", "Payment required. Please add credits to your account.", http.StatusPaymentRequired)
	case errors.Is(err, interfaces.ErrExtractionMissingCredentials):
		return pkg.NewDomainError("EXTRACTION_NOT_CONFIGURED", "Extraction backend is not configured", err, http.StatusInternalServerError)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}

func mapInvoiceError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrInvalidUserID), errors.Is(err, usecase.ErrInvalidInvoiceID), errors.Is(err, usecase.ErrInvalidServiceID), errors.Is(err, usecase.ErrInvalidInvoiceStatus):
		return pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrInvoiceStatusTransition):
		return pkg.NewDomainErrorSimple("INVALID_STATUS_TRANSITION", "Invoice status transition not allowed", http.StatusConflict)
	case errors.Is(err, usecase.ErrInvoiceNotFound), errors.Is(err, usecase.ErrInvoiceAccessDenied), errors.Is(err, usecase.ErrServiceNotFound), errors.Is(err, usecase.ErrServiceAccessDenied):
		return pkg.NewDomainErrorSimple("INVOICE_NOT_FOUND", "Invoice not found", http.StatusNotFound)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}
