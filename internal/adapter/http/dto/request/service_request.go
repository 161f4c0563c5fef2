package request

import (
	"faturas/internal/domain/entities"
	"faturas/internal/usecase/interfaces"
)

type CreateServiceRequest struct {
	Issuer         string `json:"issuer" binding:"required"`
	Category       string `json:"category"`
	ContractNumber string `json:"contract_number"`
}

// UpdateServiceRequest carries partial edits; absent fields stay untouched.
type UpdateServiceRequest struct {
	Issuer         *string `json:"issuer"`
	Category       *string `json:"category"`
	ContractNumber *string `json:"contract_number"`
	LogoURL        *string `json:"logo_url"`
	Status         *string `json:"status"`
}

func (r UpdateServiceRequest) ToServiceUpdate() interfaces.ServiceUpdate {
	upd := interfaces.ServiceUpdate{
		Issuer:         r.Issuer,
		ContractNumber: r.ContractNumber,
		LogoURL:        r.LogoURL,
	}
	if r.Category != nil {
		c := entities.Category(*r.Category)
		upd.Category = &c
	}
	if r.Status != nil {
		s := entities.ServiceStatus(*r.Status)
		upd.Status = &s
	}
	return upd
}

type AutopayRequest struct {
	Enabled    bool   `json:"enabled"`
	LimitCents *int64 `json:"limit_cents"`
}
