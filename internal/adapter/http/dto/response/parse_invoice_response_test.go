package response

import (
	"testing"
	"time"

	"faturas/internal/domain/entities"
	"faturas/internal/usecase"
)

func TestFromParseResult(t *testing.T) {
	due := time.Date(2026, 9, 15, 0, 0, 0, 0, time.UTC)
	issue := time.Date(2026, 8, 30, 0, 0, 0, 0, time.UTC)

	res := usecase.ParseResult{
		Extracted: entities.ExtractedInvoice{
			Issuer:              "EDP Comercial",
			Category:            entities.CategoryEletricidade,
			ContractNumber:      "CT-1",
			MultibancoEntity:    "12345",
			MultibancoReference: "123456789",
			LogoURL:             "https://img.logo.dev/edp.pt?token=t",
		},
		Service: entities.Service{ID: "svc-1"},
		Invoice: entities.Invoice{
			ID:          "inv-1",
			ServiceID:   "svc-1",
			AmountCents: 4523,
			DueDate:     due,
			IssueDate:   &issue,
			ParsedFields: map[string]string{
				entities.ParsedFieldMultibancoEntity:    "12345",
				entities.ParsedFieldMultibancoReference: "123456789",
			},
		},
		ServiceCreated: true,
	}

	out := FromParseResult(res)
	if out.Issuer != "EDP Comercial" || out.Category != "Eletricidade" {
		t.Fatalf("unexpected issuer fields: %+v", out)
	}
	if out.AmountCents != 4523 || out.DueDate != "2026-09-15" || out.IssueDate != "2026-08-30" {
		t.Fatalf("unexpected invoice fields: %+v", out)
	}
	if out.MultibancoEntity != "12345" || out.MultibancoReference != "123456789" {
		t.Fatalf("unexpected multibanco fields: %+v", out)
	}
	if out.ServiceID != "svc-1" || out.InvoiceID != "inv-1" || !out.ServiceCreated {
		t.Fatalf("unexpected linkage fields: %+v", out)
	}
}

func TestFromParseResultDefaults(t *testing.T) {
	out := FromParseResult(usecase.ParseResult{
		Invoice: entities.Invoice{DueDate: time.Date(2026, 9, 1, 0, 0, 0, 0, time.UTC)},
	})
	if out.IssueDate != "" {
		t.Fatalf("expected empty issue date, got %q", out.IssueDate)
	}
	if out.ParsedFields == nil || len(out.ParsedFields) != 0 {
		t.Fatalf("expected empty non-nil parsed fields, got %#v", out.ParsedFields)
	}
}
