package extraction

import (
	"fmt"
	"os"
	"strings"

	"faturas/internal/usecase/interfaces"
)

// NewGatewayFromEnv selects the extraction backend via EXTRACTION_BACKEND
// ("openai" or "azure", default openai) and builds it from its own
// credentials. Missing credentials fail here, before the server accepts any
// upload.
func NewGatewayFromEnv() (interfaces.IExtractionGateway, error) {
	backend := strings.ToLower(strings.TrimSpace(os.Getenv("EXTRACTION_BACKEND")))
	switch backend {
	case "", "openai":
		return NewOpenAIGateway()
	case "azure":
		return NewAzureGateway()
	}
	return nil, fmt.Errorf("unknown extraction backend %q", backend)
}
