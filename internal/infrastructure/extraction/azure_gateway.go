package extraction

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"os"
	"strings"
	"time"

	"faturas/internal/domain/entities"
	"faturas/internal/domain/issuers"
	"faturas/internal/logger"
	"faturas/internal/usecase/interfaces"

	"github.com/rs/zerolog"
)

const (
	azureAPIVersion = "2023-07-31"
	azureModelID    = "prebuilt-invoice"

	// The analyze operation is asynchronous; results are polled at a fixed
	// interval with a fixed attempt ceiling. Exhausting the ceiling is a
	// timeout failure for the whole request.
	azurePollInterval    = time.Second
	azureMaxPollAttempts = 30
)

// AzureGateway extracts invoice fields with Azure Document Intelligence:
// one raw-binary POST to the prebuilt-invoice analyze endpoint, then a
// bounded poll of the returned operation-location URL.
//
// Azure has no Go SDK for this API; the REST surface is small enough that a
// plain HTTP client mirrors it directly.
type AzureGateway struct {
	endpoint   string
	key        string
	httpClient *http.Client
	log        zerolog.Logger
}

var _ interfaces.IExtractionGateway = (*AzureGateway)(nil)

// NewAzureGateway builds the gateway from
// AZURE_DOCUMENT_INTELLIGENCE_ENDPOINT and AZURE_DOCUMENT_INTELLIGENCE_KEY.
func NewAzureGateway() (*AzureGateway, error) {
	endpoint := strings.TrimRight(os.Getenv("AZURE_DOCUMENT_INTELLIGENCE_ENDPOINT"), "/")
	key := os.Getenv("AZURE_DOCUMENT_INTELLIGENCE_KEY")
	if endpoint == "" || key == "" {
		return nil, interfaces.ErrExtractionMissingCredentials
	}

	return &AzureGateway{
		endpoint:   endpoint,
		key:        key,
		httpClient: &http.Client{Timeout: 30 * time.Second},
		log:        logger.WithComponent("extraction-azure"),
	}, nil
}

type azureAnalyzeResult struct {
	Status        string `json:"status"`
	AnalyzeResult *struct {
		Content   string          `json:"content"`
		Documents []azureDocument `json:"documents"`
	} `json:"analyzeResult"`
}

type azureDocument struct {
	Fields map[string]azureField `json:"fields"`
}

type azureField struct {
	Content       string  `json:"content"`
	ValueString   string  `json:"valueString"`
	ValueDate     string  `json:"valueDate"`
	ValueNumber   float64 `json:"valueNumber"`
	ValueCurrency *struct {
		Amount float64 `json:"amount"`
	} `json:"valueCurrency"`
}

func (g *AzureGateway) AnalyzeDocument(ctx context.Context, document []byte, fileName string) (entities.ExtractedInvoice, error) {
	operationURL, err := g.submit(ctx, document, fileName)
	if err != nil {
		return entities.ExtractedInvoice{}, err
	}

	result, err := g.poll(ctx, operationURL)
	if err != nil {
		return entities.ExtractedInvoice{}, err
	}

	return g.parse(result)
}

func (g *AzureGateway) submit(ctx context.Context, document []byte, fileName string) (string, error) {
	analyzeURL := fmt.Sprintf("%s/formrecognizer/documentModels/%s:analyze?api-version=%s",
		g.endpoint, azureModelID, azureAPIVersion)

	g.log.Info().Str("file_name", fileName).Int("size_bytes", len(document)).Msg("submitting document")

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, analyzeURL, bytes.NewReader(document))
	if err != nil {
		return "", err
	}
	req.Header.Set("Content-Type", "application/octet-stream")
	req.Header.Set("Ocp-Apim-Subscription-Key", g.key)

	resp, err := g.httpClient.Do(req)
	if err != nil {
		return "", fmt.Errorf("document extraction failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 4096))
		return "", g.classifyStatus(resp.StatusCode, string(body))
	}

	operationURL := resp.Header.Get("Operation-Location")
	if operationURL == "" {
		return "", interfaces.ErrExtractionNoResult
	}
	return operationURL, nil
}

func (g *AzureGateway) poll(ctx context.Context, operationURL string) (azureAnalyzeResult, error) {
	for attempt := 0; attempt < azureMaxPollAttempts; attempt++ {
		select {
		case <-ctx.Done():
			return azureAnalyzeResult{}, ctx.Err()
		case <-time.After(azurePollInterval):
		}

		req, err := http.NewRequestWithContext(ctx, http.MethodGet, operationURL, nil)
		if err != nil {
			return azureAnalyzeResult{}, err
		}
		req.Header.Set("Ocp-Apim-Subscription-Key", g.key)

		resp, err := g.httpClient.Do(req)
		if err != nil {
			return azureAnalyzeResult{}, fmt.Errorf("document extraction failed: %w", err)
		}

		var result azureAnalyzeResult
		decodeErr := json.NewDecoder(resp.Body).Decode(&result)
		resp.Body.Close()

		if resp.StatusCode < 200 || resp.StatusCode >= 300 {
			return azureAnalyzeResult{}, g.classifyStatus(resp.StatusCode, "")
		}
		if decodeErr != nil {
			return azureAnalyzeResult{}, fmt.Errorf("%w: %v", interfaces.ErrExtractionNoResult, decodeErr)
		}

		g.log.Debug().Str("status", result.Status).Int("attempt", attempt+1).Msg("analysis status")

		switch result.Status {
		case "succeeded":
			return result, nil
		case "failed":
			return azureAnalyzeResult{}, fmt.Errorf("document extraction failed: analysis status %q", result.Status)
		}
	}
	return azureAnalyzeResult{}, interfaces.ErrExtractionTimeout
}

func (g *AzureGateway) parse(result azureAnalyzeResult) (entities.ExtractedInvoice, error) {
	if result.AnalyzeResult == nil || len(result.AnalyzeResult.Documents) == 0 {
		return entities.ExtractedInvoice{}, interfaces.ErrExtractionNoResult
	}

	fields := result.AnalyzeResult.Documents[0].Fields

	issuer := firstNonEmpty(fields["VendorName"].Content, fields["VendorName"].ValueString)
	if issuer == "" {
		issuer = "Unknown"
	}

	var amountCents int64
	if total := currencyAmount(fields["InvoiceTotal"]); total > 0 {
		amountCents = AmountToCents(total)
	} else if due := currencyAmount(fields["AmountDue"]); due > 0 {
		amountCents = AmountToCents(due)
	}

	dueDate := parseDate(firstNonEmpty(fields["DueDate"].ValueDate, fields["DueDate"].Content))
	issueDate := parseDate(firstNonEmpty(fields["InvoiceDate"].ValueDate, fields["InvoiceDate"].Content))

	contractNumber := firstNonEmpty(
		fields["CustomerAccountId"].Content,
		fields["CustomerId"].Content,
		fields["InvoiceId"].Content,
	)

	entity, reference := ScanMultibanco(result.AnalyzeResult.Content)

	return entities.ExtractedInvoice{
		Issuer:              issuer,
		Category:            issuers.InferCategory(issuer),
		AmountCents:         amountCents,
		DueDate:             dueDate,
		IssueDate:           issueDate,
		ContractNumber:      contractNumber,
		MultibancoEntity:    entity,
		MultibancoReference: reference,
		LogoURL:             issuers.LogoURL(issuer),
	}, nil
}

func (g *AzureGateway) classifyStatus(status int, body string) error {
	switch {
	case status == http.StatusTooManyRequests || strings.Contains(body, "Rate limits exceeded"):
		return fmt.Errorf("%w: status %d", interfaces.ErrExtractionRateLimited, status)
	case status == http.StatusPaymentRequired || strings.Contains(body, "Payment required"):
		return fmt.Errorf("%w: status %d", interfaces.ErrExtractionPaymentRequired, status)
	}
	return fmt.Errorf("document extraction failed: status %d", status)
}

func currencyAmount(f azureField) float64 {
	if f.ValueCurrency != nil && f.ValueCurrency.Amount > 0 {
		return f.ValueCurrency.Amount
	}
	return f.ValueNumber
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if s := strings.TrimSpace(v); s != "" {
			return s
		}
	}
	return ""
}
