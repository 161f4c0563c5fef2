package extraction

import (
	"testing"
	"time"
)

func TestAmountToCents(t *testing.T) {
	cases := []struct {
		amount float64
		want   int64
	}{
		{45.23, 4523},
		{12.345, 1235},
		{12.344, 1234},
		{0, 0},
		{0.005, 1},
		{100, 10000},
	}
	for _, tc := range cases {
		if got := AmountToCents(tc.amount); got != tc.want {
			t.Fatalf("AmountToCents(%v) = %d, want %d", tc.amount, got, tc.want)
		}
	}
}

func TestNormalizeMultibancoEntity(t *testing.T) {
	cases := []struct {
		in   string
		want string
	}{
		{"12345", "12345"},
		{" 12345 ", "12345"},
		{"1234", ""},
		{"123456", ""},
		{"12a45", ""},
		{"", ""},
	}
	for _, tc := range cases {
		if got := NormalizeMultibancoEntity(tc.in); got != tc.want {
			t.Fatalf("NormalizeMultibancoEntity(%q) = %q, want %q", tc.in, got, tc.want)
		}
	}
}

func TestNormalizeMultibancoReference(t *testing.T) {
	cases := []struct {
		in   string
		want string
	}{
		{"123456789", "123456789"},
		{"123 456 789", "123456789"},
		{" 123456789 ", "123456789"},
		{"12345678", ""},
		{"1234567890", ""},
		{"123 456 78a", ""},
		{"", ""},
	}
	for _, tc := range cases {
		if got := NormalizeMultibancoReference(tc.in); got != tc.want {
			t.Fatalf("NormalizeMultibancoReference(%q) = %q, want %q", tc.in, got, tc.want)
		}
	}
}

func TestScanMultibanco(t *testing.T) {
	t.Run("labeled values", func(t *testing.T) {
		content := "Pagamento por Multibanco\nEntidade: 12345\nReferência: 123 456 789\nValor: 45,23 EUR"
		entity, reference := ScanMultibanco(content)
		if entity != "12345" {
			t.Fatalf("unexpected entity: %q", entity)
		}
		if reference != "123456789" {
			t.Fatalf("unexpected reference: %q", reference)
		}
	})

	t.Run("english labels", func(t *testing.T) {
		entity, reference := ScanMultibanco("Entity 54321 Reference 987654321")
		if entity != "54321" || reference != "987654321" {
			t.Fatalf("unexpected values: %q %q", entity, reference)
		}
	})

	t.Run("absent", func(t *testing.T) {
		entity, reference := ScanMultibanco("Fatura sem dados de pagamento")
		if entity != "" || reference != "" {
			t.Fatalf("expected empty values, got %q %q", entity, reference)
		}
	})
}

func TestParseDate(t *testing.T) {
	t.Run("iso date", func(t *testing.T) {
		got := parseDate("2026-09-15")
		want := time.Date(2026, 9, 15, 0, 0, 0, 0, time.UTC)
		if got == nil || !got.Equal(want) {
			t.Fatalf("unexpected date: %v", got)
		}
	})

	t.Run("portuguese date", func(t *testing.T) {
		got := parseDate("15/09/2026")
		want := time.Date(2026, 9, 15, 0, 0, 0, 0, time.UTC)
		if got == nil || !got.Equal(want) {
			t.Fatalf("unexpected date: %v", got)
		}
	})

	t.Run("garbage", func(t *testing.T) {
		if got := parseDate("not a date"); got != nil {
			t.Fatalf("expected nil, got %v", got)
		}
	})

	t.Run("empty", func(t *testing.T) {
		if got := parseDate("  "); got != nil {
			t.Fatalf("expected nil, got %v", got)
		}
	})
}
