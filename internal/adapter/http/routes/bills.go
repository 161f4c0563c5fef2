package routes

import (
	"faturas/internal/adapter/http/handlers"

	"github.com/gin-gonic/gin"
)

const (
	PathInvoices  = "/invoices"
	PathServices  = "/services"
	PathDashboard = "/dashboard"
)

func addBillRoutes(rg *gin.RouterGroup, invoiceHandler *handlers.InvoiceHandler, serviceHandler *handlers.ServiceHandler, intentHandler *handlers.PaymentIntentHandler) {
	invoices := rg.Group(PathInvoices)
	{
		invoices.POST("/parse", invoiceHandler.ParseInvoice)
		invoices.POST("/categorize", invoiceHandler.Categorize)
		invoices.GET("", invoiceHandler.ListInvoices)
		invoices.GET("/:id", invoiceHandler.GetInvoice)
		invoices.PATCH("/:id/status", invoiceHandler.UpdateInvoiceStatus)
		invoices.POST("/:id/payment-intents", intentHandler.CreatePaymentIntent)
		invoices.GET("/:id/payment-intents", intentHandler.ListPaymentIntents)
	}

	services := rg.Group(PathServices)
	{
		services.POST("", serviceHandler.CreateService)
		services.GET("", serviceHandler.ListServices)
		services.GET("/:id", serviceHandler.GetService)
		services.PATCH("/:id", serviceHandler.UpdateService)
		services.PATCH("/:id/autopay", serviceHandler.SetAutopay)
	}

	dashboard := rg.Group(PathDashboard)
	{
		dashboard.GET("/stats", invoiceHandler.DashboardStats)
	}
}
