package response

import (
	"faturas/internal/usecase"
)

// ParseInvoiceResponse mirrors the extraction result plus the rows the
// pipeline committed. Dates are YYYY-MM-DD strings; empty optional fields
// are omitted.
type ParseInvoiceResponse struct {
	Issuer              string            `json:"issuer"`
	Category            string            `json:"category"`
	AmountCents         int64             `json:"amount_cents"`
	DueDate             string            `json:"due_date"`
	IssueDate           string            `json:"issue_date,omitempty"`
	ContractNumber      string            `json:"contract_number,omitempty"`
	MultibancoEntity    string            `json:"multibanco_entity,omitempty"`
	MultibancoReference string            `json:"multibanco_reference,omitempty"`
	LogoURL             string            `json:"logo_url,omitempty"`
	ParsedFields        map[string]string `json:"parsed_fields"`
	ServiceID           string            `json:"service_id"`
	InvoiceID           string            `json:"invoice_id"`
	ServiceCreated      bool              `json:"service_created"`
}

func FromParseResult(res usecase.ParseResult) ParseInvoiceResponse {
	parsedFields := res.Invoice.ParsedFields
	if parsedFields == nil {
		parsedFields = map[string]string{}
	}

	out := ParseInvoiceResponse{
		Issuer:              res.Extracted.Issuer,
		Category:            string(res.Extracted.Category),
		AmountCents:         res.Invoice.AmountCents,
		DueDate:             res.Invoice.DueDate.Format("2006-01-02"),
		ContractNumber:      res.Extracted.ContractNumber,
		MultibancoEntity:    res.Extracted.MultibancoEntity,
		MultibancoReference: res.Extracted.MultibancoReference,
		LogoURL:             res.Extracted.LogoURL,
		ParsedFields:        parsedFields,
		ServiceID:           res.Service.ID,
		InvoiceID:           res.Invoice.ID,
		ServiceCreated:      res.ServiceCreated,
	}
	if res.Invoice.IssueDate != nil {
		out.IssueDate = res.Invoice.IssueDate.Format("2006-01-02")
	}
	return out
}

type CategorizeResponse struct {
	Category    string `json:"category"`
	Description string `json:"description"`
}

func FromCategorizeResult(res usecase.CategorizeResult) CategorizeResponse {
	return CategorizeResponse{
		Category:    string(res.Category),
		Description: res.Description,
	}
}
