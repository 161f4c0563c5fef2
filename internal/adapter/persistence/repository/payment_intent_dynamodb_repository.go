package repository

import (
	"context"
	"encoding/json"

	"faturas/internal/domain/entities"
	"faturas/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

const (
	defaultPaymentIntentsTableName = "payment_intents"
	paymentIntentsInvoiceIDIndex   = "invoice_id-index"
)

type paymentIntentItem struct {
	ID           string `dynamodbav:"id"`
	InvoiceID    string `dynamodbav:"invoice_id"`
	AmountCents  int64  `dynamodbav:"amount_cents"`
	Entity       string `dynamodbav:"entity,omitempty"`
	Reference    string `dynamodbav:"reference,omitempty"`
	PSP          string `dynamodbav:"psp"`
	PSPPaymentID string `dynamodbav:"psp_payment_id,omitempty"`
	Status       string `dynamodbav:"status"`
	ExpiresAt    string `dynamodbav:"expires_at,omitempty"`
	WebhookLog   string `dynamodbav:"webhook_log,omitempty"`
	CreatedAt    string `dynamodbav:"created_at"`
	UpdatedAt    string `dynamodbav:"updated_at"`
}

// PaymentIntentDynamoRepository persists PaymentIntent entities in DynamoDB.
//
// Table requirements:
//   - PK: id (string)
//   - GSI: invoice_id-index (PK: invoice_id)
//
// WebhookLog keeps the raw PSP response (JSON string) for traceability.

type PaymentIntentDynamoRepository struct {
	ddb       *dynamodb.Client
	tableName string
}

var _ interfaces.IPaymentIntentRepository = (*PaymentIntentDynamoRepository)(nil)

func NewPaymentIntentDynamoRepository(ddb *dynamodb.Client) *PaymentIntentDynamoRepository {
	return &PaymentIntentDynamoRepository{
		ddb:       ddb,
		tableName: getenvDefault("PAYMENT_INTENTS_TABLE", defaultPaymentIntentsTableName),
	}
}

func (r *PaymentIntentDynamoRepository) Create(ctx context.Context, pi entities.PaymentIntent) (entities.PaymentIntent, error) {
	av, err := attributevalue.MarshalMap(toPaymentIntentItem(pi))
	if err != nil {
		return entities.PaymentIntent{}, err
	}

	_, err = r.ddb.PutItem(ctx, &dynamodb.PutItemInput{
		TableName:           aws.String(r.tableName),
		Item:                av,
		ConditionExpression: aws.String("attribute_not_exists(#id)"),
		ExpressionAttributeNames: map[string]string{
			"#id": "id",
		},
	})
	if err != nil {
		return entities.PaymentIntent{}, err
	}
	return pi, nil
}

func (r *PaymentIntentDynamoRepository) ListByInvoiceID(ctx context.Context, invoiceID string) ([]entities.PaymentIntent, error) {
	out, err := r.ddb.Query(ctx, &dynamodb.QueryInput{
		TableName:              aws.String(r.tableName),
		IndexName:              aws.String(paymentIntentsInvoiceIDIndex),
		KeyConditionExpression: aws.String("invoice_id = :iid"),
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":iid": &types.AttributeValueMemberS{Value: invoiceID},
		},
	})
	if err != nil {
		return nil, err
	}

	intents := make([]entities.PaymentIntent, 0, len(out.Items))
	for _, raw := range out.Items {
		var it paymentIntentItem
		if err := attributevalue.UnmarshalMap(raw, &it); err != nil {
			return nil, err
		}
		intents = append(intents, fromPaymentIntentItem(it))
	}
	return intents, nil
}

func toPaymentIntentItem(pi entities.PaymentIntent) paymentIntentItem {
	it := paymentIntentItem{
		ID:           pi.ID,
		InvoiceID:    pi.InvoiceID,
		AmountCents:  pi.AmountCents,
		Entity:       pi.Entity,
		Reference:    pi.Reference,
		PSP:          pi.PSP,
		PSPPaymentID: pi.PSPPaymentID,
		Status:       string(pi.Status),
		WebhookLog:   string(pi.WebhookLog),
		CreatedAt:    formatTimestamp(pi.CreatedAt),
		UpdatedAt:    formatTimestamp(pi.UpdatedAt),
	}
	if pi.ExpiresAt != nil {
		it.ExpiresAt = formatTimestamp(*pi.ExpiresAt)
	}
	return it
}

func fromPaymentIntentItem(it paymentIntentItem) entities.PaymentIntent {
	pi := entities.PaymentIntent{
		ID:           it.ID,
		InvoiceID:    it.InvoiceID,
		AmountCents:  it.AmountCents,
		Entity:       it.Entity,
		Reference:    it.Reference,
		PSP:          it.PSP,
		PSPPaymentID: it.PSPPaymentID,
		Status:       entities.PaymentIntentStatus(it.Status),
		CreatedAt:    parseTimestamp(it.CreatedAt),
		UpdatedAt:    parseTimestamp(it.UpdatedAt),
	}
	if it.WebhookLog != "" {
		pi.WebhookLog = json.RawMessage(it.WebhookLog)
	}
	if it.ExpiresAt != "" {
		exp := parseTimestamp(it.ExpiresAt)
		pi.ExpiresAt = &exp
	}
	return pi
}
