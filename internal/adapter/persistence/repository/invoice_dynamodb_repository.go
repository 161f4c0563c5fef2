package repository

import (
	"context"
	"errors"
	"time"

	"faturas/internal/domain/entities"
	"faturas/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

const (
	defaultInvoicesTableName = "invoices"
	invoicesServiceIDIndex   = "service_id-index"
)

type invoiceItem struct {
	ID              string            `dynamodbav:"id"`
	ServiceID       string            `dynamodbav:"service_id"`
	AmountCents     int64             `dynamodbav:"amount_cents"`
	Currency        string            `dynamodbav:"currency"`
	DueDate         string            `dynamodbav:"due_date"`
	IssueDate       string            `dynamodbav:"issue_date,omitempty"`
	Status          string            `dynamodbav:"status"`
	ParsedFields    map[string]string `dynamodbav:"parsed_fields,omitempty"`
	PDFURL          string            `dynamodbav:"pdf_url,omitempty"`
	SourceEmailHash string            `dynamodbav:"source_email_hash,omitempty"`
	CreatedAt       string            `dynamodbav:"created_at"`
	UpdatedAt       string            `dynamodbav:"updated_at"`
}

// InvoiceDynamoRepository persists Invoice entities in DynamoDB.
//
// Table requirements:
//   - PK: id (string)
//   - GSI: service_id-index (PK: service_id)
//
// Due and issue dates are calendar dates and stored as YYYY-MM-DD;
// created/updated timestamps keep full RFC3339Nano precision.

type InvoiceDynamoRepository struct {
	ddb       *dynamodb.Client
	tableName string
}

var _ interfaces.IInvoiceRepository = (*InvoiceDynamoRepository)(nil)

func NewInvoiceDynamoRepository(ddb *dynamodb.Client) *InvoiceDynamoRepository {
	return &InvoiceDynamoRepository{
		ddb:       ddb,
		tableName: getenvDefault("INVOICES_TABLE", defaultInvoicesTableName),
	}
}

func (r *InvoiceDynamoRepository) Create(ctx context.Context, inv entities.Invoice) (entities.Invoice, error) {
	av, err := attributevalue.MarshalMap(toInvoiceItem(inv))
	if err != nil {
		return entities.Invoice{}, err
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
		return entities.Invoice{}, err
	}
	return inv, nil
}

func (r *InvoiceDynamoRepository) GetByID(ctx context.Context, id string) (entities.Invoice, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return entities.Invoice{}, err
	}
	if len(out.Item) == 0 {
		return entities.Invoice{}, nil
	}

	var it invoiceItem
	if err := attributevalue.UnmarshalMap(out.Item, &it); err != nil {
		return entities.Invoice{}, err
	}
	return fromInvoiceItem(it), nil
}

func (r *InvoiceDynamoRepository) ListByServiceID(ctx context.Context, serviceID string) ([]entities.Invoice, error) {
	out, err := r.ddb.Query(ctx, &dynamodb.QueryInput{
		TableName:              aws.String(r.tableName),
		IndexName:              aws.String(invoicesServiceIDIndex),
		KeyConditionExpression: aws.String("service_id = :sid"),
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":sid": &types.AttributeValueMemberS{Value: serviceID},
		},
	})
	if err != nil {
		return nil, err
	}

	invoices := make([]entities.Invoice, 0, len(out.Items))
	for _, raw := range out.Items {
		var it invoiceItem
		if err := attributevalue.UnmarshalMap(raw, &it); err != nil {
			return nil, err
		}
		invoices = append(invoices, fromInvoiceItem(it))
	}
	return invoices, nil
}

func (r *InvoiceDynamoRepository) UpdateStatus(ctx context.Context, id string, status entities.InvoiceStatus) (entities.Invoice, error) {
	out, err := r.ddb.UpdateItem(ctx, &dynamodb.UpdateItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
		ConditionExpression: aws.String("attribute_exists(#id)"),
		UpdateExpression:    aws.String("SET #status = :status, #updated_at = :updated_at"),
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":status":     &types.AttributeValueMemberS{Value: string(status)},
			":updated_at": &types.AttributeValueMemberS{Value: formatTimestamp(time.Now())},
		},
		ExpressionAttributeNames: map[string]string{
			"#id":         "id",
			"#status":     "status",
			"#updated_at": "updated_at",
		},
		ReturnValues: types.ReturnValueAllNew,
	})
	if err != nil {
		var cfe *types.ConditionalCheckFailedException
		if errors.As(err, &cfe) {
			return entities.Invoice{}, nil
		}
		return entities.Invoice{}, err
	}
	if len(out.Attributes) == 0 {
		return entities.Invoice{}, nil
	}

	var it invoiceItem
	if err := attributevalue.UnmarshalMap(out.Attributes, &it); err != nil {
		return entities.Invoice{}, err
	}
	return fromInvoiceItem(it), nil
}

func toInvoiceItem(inv entities.Invoice) invoiceItem {
	it := invoiceItem{
		ID:              inv.ID,
		ServiceID:       inv.ServiceID,
		AmountCents:     inv.AmountCents,
		Currency:        inv.Currency,
		DueDate:         formatDate(inv.DueDate),
		Status:          string(inv.Status),
		ParsedFields:    inv.ParsedFields,
		PDFURL:          inv.PDFURL,
		SourceEmailHash: inv.SourceEmailHash,
		CreatedAt:       formatTimestamp(inv.CreatedAt),
		UpdatedAt:       formatTimestamp(inv.UpdatedAt),
	}
	if inv.IssueDate != nil {
		it.IssueDate = formatDate(*inv.IssueDate)
	}
	return it
}

func fromInvoiceItem(it invoiceItem) entities.Invoice {
	inv := entities.Invoice{
		ID:              it.ID,
		ServiceID:       it.ServiceID,
		AmountCents:     it.AmountCents,
		Currency:        it.Currency,
		DueDate:         parseDate(it.DueDate),
		Status:          entities.InvoiceStatus(it.Status),
		ParsedFields:    it.ParsedFields,
		PDFURL:          it.PDFURL,
		SourceEmailHash: it.SourceEmailHash,
		CreatedAt:       parseTimestamp(it.CreatedAt),
		UpdatedAt:       parseTimestamp(it.UpdatedAt),
	}
	if it.IssueDate != "" {
		issue := parseDate(it.IssueDate)
		inv.IssueDate = &issue
	}
	return inv
}
