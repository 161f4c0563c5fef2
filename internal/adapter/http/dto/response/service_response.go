package response

import (
	"faturas/internal/domain/entities"
	"time"
)

type ServiceResponse struct {
	ID                string    `json:"id"`
	UserID            string    `json:"user_id"`
	Issuer            string    `json:"issuer"`
	Category          string    `json:"category,omitempty"`
	ContractNumber    string    `json:"contract_number,omitempty"`
	LogoURL           string    `json:"logo_url,omitempty"`
	Autopay           bool      `json:"autopay"`
	AutopayLimitCents *int64    `json:"autopay_limit_cents,omitempty"`
	Status            string    `json:"status"`
	CreatedAt         time.Time `json:"created_at"`
	UpdatedAt         time.Time `json:"updated_at"`
}

func FromService(s entities.Service) ServiceResponse {
	return ServiceResponse{
		ID:                s.ID,
		UserID:            s.UserID,
		Issuer:            s.Issuer,
		Category:          string(s.Category),
		ContractNumber:    s.ContractNumber,
		LogoURL:           s.LogoURL,
		Autopay:           s.Autopay,
		AutopayLimitCents: s.AutopayLimitCents,
		Status:            string(s.Status),
		CreatedAt:         s.CreatedAt,
		UpdatedAt:         s.UpdatedAt,
	}
}

func FromServices(list []entities.Service) []ServiceResponse {
	out := make([]ServiceResponse, 0, len(list))
	for _, s := range list {
		out = append(out, FromService(s))
	}
	return out
}
