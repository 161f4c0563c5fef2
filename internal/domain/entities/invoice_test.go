package entities

import "testing"

func TestInvoiceStatusCanTransitionTo(t *testing.T) {
	forward := []InvoiceStatus{InvoiceStatusPaid, InvoiceStatusOverdue, InvoiceStatusFailed, InvoiceStatusExpired}

	t.Run("pending moves forward", func(t *testing.T) {
		for _, next := range forward {
			if !InvoiceStatusPending.CanTransitionTo(next) {
				t.Fatalf("expected pending -> %s to be allowed", next)
			}
		}
	})

	t.Run("pending is not a target", func(t *testing.T) {
		if InvoiceStatusPending.CanTransitionTo(InvoiceStatusPending) {
			t.Fatalf("pending -> pending must not be allowed")
		}
	})

	t.Run("terminal states are final", func(t *testing.T) {
		for _, from := range forward {
			for _, next := range append(forward, InvoiceStatusPending) {
				if from.CanTransitionTo(next) {
					t.Fatalf("expected %s -> %s to be rejected", from, next)
				}
			}
		}
	})

	t.Run("unknown target", func(t *testing.T) {
		if InvoiceStatusPending.CanTransitionTo("bogus") {
			t.Fatalf("unknown status must be rejected")
		}
	})
}

func TestValidCategory(t *testing.T) {
	for _, c := range []Category{CategoryEletricidade, CategoryAgua, CategoryGas, CategoryInternet, CategoryTelecomunicacoes, CategorySeguro} {
		if !ValidCategory(c) {
			t.Fatalf("expected %s to be valid", c)
		}
	}
	if ValidCategory("Lixo") || ValidCategory("") {
		t.Fatalf("expected invalid categories to be rejected")
	}
}
