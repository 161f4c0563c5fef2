package extraction

import (
	"math"
	"regexp"
	"strings"
	"time"
)

var (
	entityPattern    = regexp.MustCompile(`^\d{5}$`)
	referencePattern = regexp.MustCompile(`^\d{9}$`)

	// Loose scan patterns for Multibanco details in free OCR text. The
	// reference may carry grouping spaces ("123 456 789") on the document.
	entityScanPattern    = regexp.MustCompile(`(?i)(?:entidade|entity)[:\s]*(\d{5})`)
	referenceScanPattern = regexp.MustCompile(`(?i)(?:referência|referencia|reference)[:\s]*([\d\s]{9,13})`)
)

// AmountToCents converts a major-unit decimal amount to integer cents,
// rounding to the nearest cent. Truncation would silently lose up to a full
// cent on readings like 12.345.
func AmountToCents(amount float64) int64 {
	return int64(math.Round(amount * 100))
}

// NormalizeMultibancoEntity validates a candidate entity code. Anything that
// is not exactly 5 digits after trimming is treated as absent.
func NormalizeMultibancoEntity(raw string) string {
	s := strings.TrimSpace(raw)
	if entityPattern.MatchString(s) {
		return s
	}
	return ""
}

// NormalizeMultibancoReference strips embedded whitespace from a candidate
// reference and validates the result. Anything that is not exactly 9 digits
// after stripping is treated as absent.
func NormalizeMultibancoReference(raw string) string {
	s := strings.Join(strings.Fields(raw), "")
	if referencePattern.MatchString(s) {
		return s
	}
	return ""
}

// ScanMultibanco looks for Multibanco entity/reference labels in free text
// (the full OCR content of the document). Either value may come back empty.
func ScanMultibanco(content string) (entity, reference string) {
	if m := entityScanPattern.FindStringSubmatch(content); m != nil {
		entity = NormalizeMultibancoEntity(m[1])
	}
	if m := referenceScanPattern.FindStringSubmatch(content); m != nil {
		reference = NormalizeMultibancoReference(m[1])
	}
	return entity, reference
}

// parseDate accepts the date shapes extraction backends produce.
func parseDate(raw string) *time.Time {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return nil
	}
	for _, layout := range []string{"2006-01-02", time.RFC3339, "02/01/2006", "02-01-2006"} {
		if t, err := time.Parse(layout, raw); err == nil {
			t = t.UTC()
			return &t
		}
	}
	return nil
}
