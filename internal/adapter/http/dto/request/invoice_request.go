package request

type UpdateInvoiceStatusRequest struct {
	Status string `json:"status" binding:"required"`
}
