package handlers

import (
	"errors"
	"net/http"

	response "faturas/internal/adapter/http/dto/response"
	"faturas/internal/usecase"
	"faturas/pkg"

	"github.com/gin-gonic/gin"
)

// PaymentIntentHandler handles HTTP requests for invoice payment intents.

type PaymentIntentHandler struct {
	usecase usecase.IPaymentIntentUseCase
}

func NewPaymentIntentHandler(uc usecase.IPaymentIntentUseCase) *PaymentIntentHandler {
	return &PaymentIntentHandler{usecase: uc}
}

// CreatePaymentIntent opens a PSP payment attempt for a pending invoice.
func (h *PaymentIntentHandler) CreatePaymentIntent(c *gin.Context) {
	userID, ok := userIDFromRequest(c)
	if !ok {
		return
	}

	intent, err := h.usecase.CreateForInvoice(c.Request.Context(), userID, c.Param("id"))
	if err != nil {
		appErr := mapPaymentIntentError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusCreated, response.FromPaymentIntent(intent))
}

func (h *PaymentIntentHandler) ListPaymentIntents(c *gin.Context) {
	userID, ok := userIDFromRequest(c)
	if !ok {
		return
	}

	intents, err := h.usecase.ListByInvoice(c.Request.Context(), userID, c.Param("id"))
	if err != nil {
		appErr := mapPaymentIntentError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromPaymentIntents(intents))
}

func mapPaymentIntentError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrInvalidUserID), errors.Is(err, usecase.ErrInvalidInvoiceID):
		return pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrInvoiceNotPayable):
		return pkg.NewDomainErrorSimple("INVOICE_NOT_PAYABLE", "Invoice is not payable", http.StatusConflict)
	case errors.Is(err, usecase.ErrPaymentGatewayNotConfigured):
		return pkg.NewDomainError("PAYMENT_GATEWAY_NOT_CONFIGURED", "Payment gateway is not configured", err, http.StatusServiceUnavailable)
	case errors.Is(err, usecase.ErrInvoiceNotFound), errors.Is(err, usecase.ErrInvoiceAccessDenied):
		return pkg.NewDomainErrorSimple("INVOICE_NOT_FOUND", "Invoice not found", http.StatusNotFound)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}
