package response

import (
	"faturas/internal/domain/entities"
	"faturas/internal/usecase"
	"time"
)

type InvoiceResponse struct {
	ID           string            `json:"id"`
	ServiceID    string            `json:"service_id"`
	AmountCents  int64             `json:"amount_cents"`
	Currency     string            `json:"currency"`
	DueDate      string            `json:"due_date"`
	IssueDate    string            `json:"issue_date,omitempty"`
	Status       string            `json:"status"`
	ParsedFields map[string]string `json:"parsed_fields,omitempty"`
	PDFURL       string            `json:"pdf_url,omitempty"`
	CreatedAt    time.Time         `json:"created_at"`
	UpdatedAt    time.Time         `json:"updated_at"`
}

func FromInvoice(inv entities.Invoice) InvoiceResponse {
	out := InvoiceResponse{
		ID:           inv.ID,
		ServiceID:    inv.ServiceID,
		AmountCents:  inv.AmountCents,
		Currency:     inv.Currency,
		DueDate:      inv.DueDate.Format("2006-01-02"),
		Status:       string(inv.Status),
		ParsedFields: inv.ParsedFields,
		PDFURL:       inv.PDFURL,
		CreatedAt:    inv.CreatedAt,
		UpdatedAt:    inv.UpdatedAt,
	}
	if inv.IssueDate != nil {
		out.IssueDate = inv.IssueDate.Format("2006-01-02")
	}
	return out
}

func FromInvoices(list []entities.Invoice) []InvoiceResponse {
	out := make([]InvoiceResponse, 0, len(list))
	for _, inv := range list {
		out = append(out, FromInvoice(inv))
	}
	return out
}

type DashboardStatsResponse struct {
	TotalDueCents            int64  `json:"total_due_cents"`
	OverdueCount             int    `json:"overdue_count"`
	PaidThisMonth            int    `json:"paid_this_month"`
	TotalPaidThisMonthCents  int64  `json:"total_paid_this_month_cents"`
	NextDueDate              string `json:"next_due_date,omitempty"`
	AverageMonthlySpendCents int64  `json:"average_monthly_spend_cents"`
}

func FromDashboardStats(stats usecase.DashboardStats) DashboardStatsResponse {
	out := DashboardStatsResponse{
		TotalDueCents:            stats.TotalDueCents,
		OverdueCount:             stats.OverdueCount,
		PaidThisMonth:            stats.PaidThisMonth,
		TotalPaidThisMonthCents:  stats.TotalPaidThisMonthCents,
		AverageMonthlySpendCents: stats.AverageMonthlySpendCents,
	}
	if stats.NextDueDate != nil {
		out.NextDueDate = stats.NextDueDate.Format("2006-01-02")
	}
	return out
}
