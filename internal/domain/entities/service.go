package entities

import "time"

// ServiceStatus represents the lifecycle of a tracked service.
//
// Domain notes:
//   - Services are created either explicitly by the user or implicitly by the
//     invoice parsing pipeline on the first unmatched invoice.
//   - Services are never deleted automatically; deactivation is user-driven.

type ServiceStatus string

const (
	ServiceStatusActive   ServiceStatus = "active"
	ServiceStatusInactive ServiceStatus = "inactive"
)

// Category is the fixed set of bill categories the app tracks.
//
// Values are kept in Portuguese because they are user-facing strings shown in
// the dashboard as-is.

type Category string

const (
	CategoryEletricidade     Category = "Eletricidade"
	CategoryAgua             Category = "Água"
	CategoryGas              Category = "Gás"
	CategoryInternet         Category = "Internet"
	CategoryTelecomunicacoes Category = "Telecomunicações"
	CategorySeguro           Category = "Seguro"
)

// Service is a user's tracked subscription/account with one issuer,
// persisted in DynamoDB.
//
// Storage model (DynamoDB):
//   - PK: id
//   - GSI1 (user_id-index): user_id
//
// Monetary representation:
//   - AutopayLimitCents is the autopay ceiling in minor units (cents);
//     when set it must be a positive integer.
type Service struct {
	ID                string        `json:"id"`
	UserID            string        `json:"user_id"`
	Issuer            string        `json:"issuer"`
	Category          Category      `json:"category,omitempty"`
	ContractNumber    string        `json:"contract_number,omitempty"`
	LogoURL           string        `json:"logo_url,omitempty"`
	Autopay           bool          `json:"autopay"`
	AutopayLimitCents *int64        `json:"autopay_limit_cents,omitempty"`
	Status            ServiceStatus `json:"status"`
	CreatedAt         time.Time     `json:"created_at"`
	UpdatedAt         time.Time     `json:"updated_at"`
}

// ValidCategory reports whether c is one of the fixed category values.
func ValidCategory(c Category) bool {
	switch c {
	case CategoryEletricidade, CategoryAgua, CategoryGas, CategoryInternet, CategoryTelecomunicacoes, CategorySeguro:
		return true
	}
	return false
}
