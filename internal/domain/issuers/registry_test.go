package issuers

import (
	"strings"
	"testing"

	"faturas/internal/domain/entities"
)

func TestNormalize(t *testing.T) {
	cases := []struct {
		in   string
		want string
	}{
		{"EDP Comercial", "edp comercial"},
		{"  Águas de Portugal  ", "aguas de portugal"},
		{"Telecomunicações", "telecomunicacoes"},
		{"EDP, S.A.", "edp sa"},
		{"", ""},
		{"!!!", ""},
	}
	for _, tc := range cases {
		if got := Normalize(tc.in); got != tc.want {
			t.Fatalf("Normalize(%q) = %q, want %q", tc.in, got, tc.want)
		}
	}
}

func TestNormalizeIdempotent(t *testing.T) {
	for _, s := range []string{"EDP Comercial", "Águas de Portugal", "Vodafone Portugal"} {
		once := Normalize(s)
		if twice := Normalize(once); twice != once {
			t.Fatalf("Normalize not idempotent for %q: %q vs %q", s, once, twice)
		}
	}
}

func TestScore(t *testing.T) {
	cases := []struct {
		query, candidate string
		want             float64
	}{
		{"edp", "edp", 1},
		{"edp", "edp comercial", 0.9},
		{"edp comercial", "edp", 0.9},
		{"comercial", "edp comercial", 0.8},
		{"edp", "galp", 0},
	}
	for _, tc := range cases {
		if got := Score(tc.query, tc.candidate); got != tc.want {
			t.Fatalf("Score(%q, %q) = %v, want %v", tc.query, tc.candidate, got, tc.want)
		}
	}
}

func TestFindDomain(t *testing.T) {
	t.Run("exact match", func(t *testing.T) {
		if got := FindDomain("EDP"); got != "edp.pt" {
			t.Fatalf("expected edp.pt, got %q", got)
		}
	})

	t.Run("alias match", func(t *testing.T) {
		if got := FindDomain("Águas de Portugal"); got != "adp.pt" {
			t.Fatalf("expected adp.pt, got %q", got)
		}
	})

	t.Run("prefix match", func(t *testing.T) {
		if got := FindDomain("EDP Comercial"); got != "edp.pt" {
			t.Fatalf("expected edp.pt, got %q", got)
		}
	})

	t.Run("case and diacritics ignored", func(t *testing.T) {
		if got := FindDomain("vodafone portugal"); got != "vodafone.pt" {
			t.Fatalf("expected vodafone.pt, got %q", got)
		}
	})

	t.Run("no match below threshold", func(t *testing.T) {
		if got := FindDomain("Fornecedor Desconhecido"); got != "" {
			t.Fatalf("expected no domain, got %q", got)
		}
	})

	t.Run("empty input", func(t *testing.T) {
		if got := FindDomain("   "); got != "" {
			t.Fatalf("expected no domain, got %q", got)
		}
	})
}

func TestLogoURL(t *testing.T) {
	t.Run("known issuer", func(t *testing.T) {
		url := LogoURL("MEO")
		if !strings.HasPrefix(url, "https://img.logo.dev/meo.pt?token=") {
			t.Fatalf("unexpected url: %q", url)
		}
		if !strings.Contains(url, "format=webp") || !strings.Contains(url, "size=128") {
			t.Fatalf("unexpected url params: %q", url)
		}
	})

	t.Run("custom token", func(t *testing.T) {
		t.Setenv("LOGO_DEV_TOKEN", "test-token")
		url := LogoURL("MEO")
		if !strings.Contains(url, "token=test-token") {
			t.Fatalf("expected custom token in %q", url)
		}
	})

	t.Run("unknown issuer", func(t *testing.T) {
		if url := LogoURL("Fornecedor Desconhecido"); url != "" {
			t.Fatalf("expected empty url, got %q", url)
		}
	})
}

func TestInferCategory(t *testing.T) {
	cases := []struct {
		issuer string
		want   entities.Category
	}{
		{"EDP Comercial", entities.CategoryEletricidade},
		{"EPAL", entities.CategoryAgua},
		{"Galp Power", entities.CategoryGas},
		{"Vodafone Portugal", entities.CategoryInternet},
		{"Fidelidade Seguros", entities.CategorySeguro},
		{"Fornecedor Desconhecido", entities.CategoryTelecomunicacoes},
		{"", entities.CategoryTelecomunicacoes},
	}
	for _, tc := range cases {
		if got := InferCategory(tc.issuer); got != tc.want {
			t.Fatalf("InferCategory(%q) = %s, want %s", tc.issuer, got, tc.want)
		}
	}
}
