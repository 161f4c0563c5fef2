package handlers

import (
	"errors"
	"net/http"

	request "faturas/internal/adapter/http/dto/request"
	response "faturas/internal/adapter/http/dto/response"
	"faturas/internal/domain/entities"
	"faturas/internal/usecase"
	"faturas/pkg"

	"github.com/gin-gonic/gin"
)

var errInvalidServicePayload = pkg.NewDomainErrorSimple("INVALID_SERVICE_INPUT", "Invalid service payload", http.StatusBadRequest)

// ServiceHandler handles HTTP requests for the user's tracked services.

type ServiceHandler struct {
	usecase usecase.IServiceUseCase
}

func NewServiceHandler(uc usecase.IServiceUseCase) *ServiceHandler {
	return &ServiceHandler{usecase: uc}
}

func (h *ServiceHandler) CreateService(c *gin.Context) {
	userID, ok := userIDFromRequest(c)
	if !ok {
		return
	}

	var payload request.CreateServiceRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidServicePayload.HTTPStatus, errInvalidServicePayload.ToHTTPError())
		return
	}

	service, err := h.usecase.Create(c.Request.Context(), userID, payload.Issuer, entities.Category(payload.Category), payload.ContractNumber)
	if err != nil {
		appErr := mapServiceError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusCreated, response.FromService(service))
}

func (h *ServiceHandler) ListServices(c *gin.Context) {
	userID, ok := userIDFromRequest(c)
	if !ok {
		return
	}

	services, err := h.usecase.ListByUser(c.Request.Context(), userID)
	if err != nil {
		appErr := mapServiceError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromServices(services))
}

func (h *ServiceHandler) GetService(c *gin.Context) {
	userID, ok := userIDFromRequest(c)
	if !ok {
		return
	}

	service, err := h.usecase.GetByID(c.Request.Context(), userID, c.Param("id"))
	if err != nil {
		appErr := mapServiceError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromService(service))
}

func (h *ServiceHandler) UpdateService(c *gin.Context) {
	userID, ok := userIDFromRequest(c)
	if !ok {
		return
	}

	var payload request.UpdateServiceRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidServicePayload.HTTPStatus, errInvalidServicePayload.ToHTTPError())
		return
	}

	service, err := h.usecase.Update(c.Request.Context(), userID, c.Param("id"), payload.ToServiceUpdate())
	if err != nil {
		appErr := mapServiceError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromService(service))
}

func (h *ServiceHandler) SetAutopay(c *gin.Context) {
	userID, ok := userIDFromRequest(c)
	if !ok {
		return
	}

	var payload request.AutopayRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidServicePayload.HTTPStatus, errInvalidServicePayload.ToHTTPError())
		return
	}

	service, err := h.usecase.SetAutopay(c.Request.Context(), userID, c.Param("id"), payload.Enabled, payload.LimitCents)
	if err != nil {
		appErr := mapServiceError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromService(service))
}

func mapServiceError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrInvalidUserID), errors.Is(err, usecase.ErrInvalidServiceID), errors.Is(err, usecase.ErrInvalidIssuerName),
		errors.Is(err, usecase.ErrInvalidCategory), errors.Is(err, usecase.ErrInvalidAutopayLimit):
		return pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrServiceNotFound), errors.Is(err, usecase.ErrServiceAccessDenied):
		return pkg.NewDomainErrorSimple("SERVICE_NOT_FOUND", "Service not found", http.StatusNotFound)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}
