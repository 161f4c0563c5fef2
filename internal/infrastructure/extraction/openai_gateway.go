package extraction

import (
	"context"
	"encoding/base64"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"os"
	"strings"

	"faturas/internal/domain/entities"
	"faturas/internal/domain/issuers"
	"faturas/internal/logger"
	"faturas/internal/usecase/interfaces"

	"github.com/rs/zerolog"
	"github.com/sashabaranov/go-openai"
)

const extractInvoiceToolName = "extract_invoice"

// invoiceToolSchema constrains the model to the structured fields the
// pipeline consumes. Amounts come back in major units and are converted to
// cents locally.
var invoiceToolSchema = json.RawMessage(`{
	"type": "object",
	"properties": {
		"issuer": {"type": "string", "description": "billing entity name as printed on the invoice"},
		"category": {"type": "string", "enum": ["Eletricidade", "Água", "Gás", "Internet", "Telecomunicações", "Seguro"]},
		"amount": {"type": "number", "description": "total amount due, major currency units"},
		"due_date": {"type": "string", "description": "YYYY-MM-DD"},
		"issue_date": {"type": "string", "description": "YYYY-MM-DD"},
		"contract_number": {"type": "string"},
		"multibanco_entity": {"type": "string", "description": "5 digit Multibanco entity code"},
		"multibanco_reference": {"type": "string", "description": "9 digit Multibanco reference, may contain spaces"}
	},
	"required": ["issuer"]
}`)

const extractSystemPrompt = `You extract structured payment data from Portuguese utility and service invoices.
Analyse only the first page of the document. Report the issuer exactly as printed.
Amounts are in major currency units (e.g. 42.50 for 42,50 EUR). Dates are YYYY-MM-DD.
Report the Multibanco entidade (5 digits) and referência (9 digits) when present.
Omit any field you cannot read; never guess values.`

type openAIToolResult struct {
	Issuer              string  `json:"issuer"`
	Category            string  `json:"category"`
	Amount              float64 `json:"amount"`
	DueDate             string  `json:"due_date"`
	IssueDate           string  `json:"issue_date"`
	ContractNumber      string  `json:"contract_number"`
	MultibancoEntity    string  `json:"multibanco_entity"`
	MultibancoReference string  `json:"multibanco_reference"`
}

// OpenAIGateway extracts invoice fields with a chat completion carrying the
// document image inline and a schema-constrained function tool.
type OpenAIGateway struct {
	client *openai.Client
	model  string
	log    zerolog.Logger
}

var _ interfaces.IExtractionGateway = (*OpenAIGateway)(nil)

// NewOpenAIGateway builds the gateway from OPENAI_API_KEY and OPENAI_MODEL.
// A missing key is a configuration error surfaced before any network call.
func NewOpenAIGateway() (*OpenAIGateway, error) {
	apiKey := os.Getenv("OPENAI_API_KEY")
	if apiKey == "" {
		return nil, interfaces.ErrExtractionMissingCredentials
	}

	model := os.Getenv("OPENAI_MODEL")
	if model == "" {
		model = openai.GPT4oMini
	}

	return &OpenAIGateway{
		client: openai.NewClient(apiKey),
		model:  model,
		log:    logger.WithComponent("extraction-openai"),
	}, nil
}

func (g *OpenAIGateway) AnalyzeDocument(ctx context.Context, document []byte, fileName string) (entities.ExtractedInvoice, error) {
	if len(document) == 0 {
		return entities.ExtractedInvoice{}, interfaces.ErrExtractionNoResult
	}

	dataURL := fmt.Sprintf("data:%s;base64,%s",
		http.DetectContentType(document),
		base64.StdEncoding.EncodeToString(document))

	g.log.Info().Str("file_name", fileName).Int("size_bytes", len(document)).Msg("submitting document")

	resp, err := g.client.CreateChatCompletion(ctx, openai.ChatCompletionRequest{
		Model: g.model,
		Messages: []openai.ChatCompletionMessage{
			{
				Role:    openai.ChatMessageRoleSystem,
				Content: extractSystemPrompt,
			},
			{
				Role: openai.ChatMessageRoleUser,
				MultiContent: []openai.ChatMessagePart{
					{
						Type: openai.ChatMessagePartTypeText,
						Text: fmt.Sprintf("Extract the payment data from this invoice (%s).", fileName),
					},
					{
						Type:     openai.ChatMessagePartTypeImageURL,
						ImageURL: &openai.ChatMessageImageURL{URL: dataURL},
					},
				},
			},
		},
		Tools: []openai.Tool{
			{
				Type: openai.ToolTypeFunction,
				Function: &openai.FunctionDefinition{
					Name:        extractInvoiceToolName,
					Description: "Report the structured payment fields read from the invoice",
					Parameters:  invoiceToolSchema,
				},
			},
		},
		ToolChoice: openai.ToolChoice{
			Type:     openai.ToolTypeFunction,
			Function: openai.ToolFunction{Name: extractInvoiceToolName},
		},
	})
	if err != nil {
		return entities.ExtractedInvoice{}, classifyUpstreamError(err)
	}

	args, err := toolCallArguments(resp)
	if err != nil {
		return entities.ExtractedInvoice{}, err
	}

	var result openAIToolResult
	if err := json.Unmarshal([]byte(args), &result); err != nil {
		return entities.ExtractedInvoice{}, fmt.Errorf("%w: %v", interfaces.ErrExtractionNoResult, err)
	}

	return toExtractedInvoice(result), nil
}

func toolCallArguments(resp openai.ChatCompletionResponse) (string, error) {
	if len(resp.Choices) == 0 {
		return "", interfaces.ErrExtractionNoResult
	}
	for _, call := range resp.Choices[0].Message.ToolCalls {
		if call.Function.Name == extractInvoiceToolName {
			return call.Function.Arguments, nil
		}
	}
	return "", interfaces.ErrExtractionNoResult
}

func toExtractedInvoice(r openAIToolResult) entities.ExtractedInvoice {
	issuer := strings.TrimSpace(r.Issuer)
	if issuer == "" {
		issuer = "Unknown"
	}

	category := entities.Category(r.Category)
	if !entities.ValidCategory(category) {
		category = issuers.InferCategory(issuer)
	}

	var amountCents int64
	if r.Amount > 0 {
		amountCents = AmountToCents(r.Amount)
	}

	return entities.ExtractedInvoice{
		Issuer:              issuer,
		Category:            category,
		AmountCents:         amountCents,
		DueDate:             parseDate(r.DueDate),
		IssueDate:           parseDate(r.IssueDate),
		ContractNumber:      strings.TrimSpace(r.ContractNumber),
		MultibancoEntity:    NormalizeMultibancoEntity(r.MultibancoEntity),
		MultibancoReference: NormalizeMultibancoReference(r.MultibancoReference),
		LogoURL:             issuers.LogoURL(issuer),
	}
}

// classifyUpstreamError maps provider failures onto the extraction error
// kinds. Rate-limit and payment-required conditions are recognized both by
// HTTP status and by the substrings the provider puts in error text.
func classifyUpstreamError(err error) error {
	var apiErr *openai.APIError
	if errors.As(err, &apiErr) {
		switch apiErr.HTTPStatusCode {
		case http.StatusTooManyRequests:
			return fmt.Errorf("%w: %v", interfaces.ErrExtractionRateLimited, err)
		case http.StatusPaymentRequired:
			return fmt.Errorf("%w: %v", interfaces.ErrExtractionPaymentRequired, err)
		}
	}

	msg := err.Error()
	switch {
	case strings.Contains(msg, "Rate limits exceeded"):
		return fmt.Errorf("%w: %v", interfaces.ErrExtractionRateLimited, err)
	case strings.Contains(msg, "Payment required"):
		return fmt.Errorf("%w: %v", interfaces.ErrExtractionPaymentRequired, err)
	}
	return fmt.Errorf("document extraction failed: %w", err)
}
