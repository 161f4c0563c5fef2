package interfaces

import (
	"context"
	"errors"

	"faturas/internal/domain/entities"
)

// Extraction backend failure kinds. Implementations map provider-specific
// failures onto these so callers can answer with the right HTTP status
// without knowing which backend is configured.
var (
	// ErrExtractionMissingCredentials means the backend credentials are not
	// configured. Surfaced before any network call.
	ErrExtractionMissingCredentials = errors.New("extraction backend credentials not configured")

	// ErrExtractionRateLimited maps upstream "Rate limits exceeded" failures.
	ErrExtractionRateLimited = errors.New("extraction backend rate limit exceeded")

	// ErrExtractionPaymentRequired maps upstream "Payment required" failures.
	ErrExtractionPaymentRequired = errors.New("extraction backend payment required")

	// ErrExtractionTimeout means the bounded poll for an asynchronous
	// analysis was exhausted.
	ErrExtractionTimeout = errors.New("extraction analysis timed out")

	// ErrExtractionNoResult means the backend answered without the expected
	// structured result. Not retried.
	ErrExtractionNoResult = errors.New("no structured result in extraction response")
)

// IExtractionGateway abstracts the external AI/OCR document parsing call.
//
// AnalyzeDocument sends the raw document bytes (page image or single-page
// PDF; only the first page is analyzed) and returns the structured fields.
// One attempt per call, no retry.
type IExtractionGateway interface {
	AnalyzeDocument(ctx context.Context, document []byte, fileName string) (entities.ExtractedInvoice, error)
}
