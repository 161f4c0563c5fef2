package repository

import (
	"context"
	"errors"
	"sort"
	"strconv"
	"strings"
	"time"

	"faturas/internal/domain/entities"
	"faturas/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

const (
	defaultServicesTableName = "services"
	servicesUserIDIndex      = "user_id-index"
)

type serviceItem struct {
	ID                string `dynamodbav:"id"`
	UserID            string `dynamodbav:"user_id"`
	Issuer            string `dynamodbav:"issuer"`
	Category          string `dynamodbav:"category,omitempty"`
	ContractNumber    string `dynamodbav:"contract_number,omitempty"`
	LogoURL           string `dynamodbav:"logo_url,omitempty"`
	Autopay           bool   `dynamodbav:"autopay"`
	AutopayLimitCents *int64 `dynamodbav:"autopay_limit_cents,omitempty"`
	Status            string `dynamodbav:"status"`
	CreatedAt         string `dynamodbav:"created_at"`
	UpdatedAt         string `dynamodbav:"updated_at"`
}

// ServiceDynamoRepository persists Service entities in DynamoDB.
//
// Table requirements:
//   - PK: id (string)
//   - GSI: user_id-index (PK: user_id)
//
// The issuer-containment lookup is resolved client-side: DynamoDB contains()
// is case-sensitive, so the repository queries the user's services (a small
// set per user) and filters in memory.

type ServiceDynamoRepository struct {
	ddb       *dynamodb.Client
	tableName string
}

var _ interfaces.IServiceRepository = (*ServiceDynamoRepository)(nil)

func NewServiceDynamoRepository(ddb *dynamodb.Client) *ServiceDynamoRepository {
	return &ServiceDynamoRepository{
		ddb:       ddb,
		tableName: getenvDefault("SERVICES_TABLE", defaultServicesTableName),
	}
}

func (r *ServiceDynamoRepository) Create(ctx context.Context, s entities.Service) (entities.Service, error) {
	av, err := attributevalue.MarshalMap(toServiceItem(s))
	if err != nil {
		return entities.Service{}, err
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
		return entities.Service{}, err
	}
	return s, nil
}

func (r *ServiceDynamoRepository) GetByID(ctx context.Context, id string) (entities.Service, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return entities.Service{}, err
	}
	if len(out.Item) == 0 {
		return entities.Service{}, nil
	}

	var it serviceItem
	if err := attributevalue.UnmarshalMap(out.Item, &it); err != nil {
		return entities.Service{}, err
	}
	return fromServiceItem(it), nil
}

func (r *ServiceDynamoRepository) ListByUserID(ctx context.Context, userID string) ([]entities.Service, error) {
	out, err := r.ddb.Query(ctx, &dynamodb.QueryInput{
		TableName:              aws.String(r.tableName),
		IndexName:              aws.String(servicesUserIDIndex),
		KeyConditionExpression: aws.String("user_id = :uid"),
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":uid": &types.AttributeValueMemberS{Value: userID},
		},
	})
	if err != nil {
		return nil, err
	}

	services := make([]entities.Service, 0, len(out.Items))
	for _, raw := range out.Items {
		var it serviceItem
		if err := attributevalue.UnmarshalMap(raw, &it); err != nil {
			return nil, err
		}
		services = append(services, fromServiceItem(it))
	}
	return services, nil
}

// ListByUserAndIssuerContains returns the user's services whose stored
// issuer contains the given string, case-insensitively. The check is
// asymmetric on purpose: only "stored name contains extracted name" counts.
// Results are ordered most recently updated first so callers reusing the
// first match are deterministic.
func (r *ServiceDynamoRepository) ListByUserAndIssuerContains(ctx context.Context, userID, issuer string) ([]entities.Service, error) {
	all, err := r.ListByUserID(ctx, userID)
	if err != nil {
		return nil, err
	}

	needle := strings.ToLower(strings.TrimSpace(issuer))
	if needle == "" {
		return []entities.Service{}, nil
	}

	matches := make([]entities.Service, 0)
	for _, s := range all {
		if strings.Contains(strings.ToLower(s.Issuer), needle) {
			matches = append(matches, s)
		}
	}
	sort.SliceStable(matches, func(i, j int) bool {
		return matches[i].UpdatedAt.After(matches[j].UpdatedAt)
	})
	return matches, nil
}

func (r *ServiceDynamoRepository) UpdateLogoURL(ctx context.Context, id, logoURL string) (entities.Service, error) {
	return r.update(ctx, id, func(now string) (string, map[string]types.AttributeValue, map[string]string) {
		expr := "SET #logo_url = :logo_url, #updated_at = :updated_at"
		vals := map[string]types.AttributeValue{
			":logo_url":   &types.AttributeValueMemberS{Value: logoURL},
			":updated_at": &types.AttributeValueMemberS{Value: now},
		}
		names := map[string]string{
			"#logo_url":   "logo_url",
			"#updated_at": "updated_at",
		}
		return expr, vals, names
	})
}

func (r *ServiceDynamoRepository) UpdateDetails(ctx context.Context, id string, upd interfaces.ServiceUpdate) (entities.Service, error) {
	return r.update(ctx, id, func(now string) (string, map[string]types.AttributeValue, map[string]string) {
		sets := []string{"#updated_at = :updated_at"}
		vals := map[string]types.AttributeValue{
			":updated_at": &types.AttributeValueMemberS{Value: now},
		}
		names := map[string]string{
			"#updated_at": "updated_at",
		}

		set := func(attr string, value string) {
			placeholder := "#" + attr
			valueKey := ":" + attr
			sets = append(sets, placeholder+" = "+valueKey)
			vals[valueKey] = &types.AttributeValueMemberS{Value: value}
			names[placeholder] = attr
		}

		if upd.Issuer != nil {
			set("issuer", *upd.Issuer)
		}
		if upd.Category != nil {
			set("category", string(*upd.Category))
		}
		if upd.ContractNumber != nil {
			set("contract_number", *upd.ContractNumber)
		}
		if upd.LogoURL != nil {
			set("logo_url", *upd.LogoURL)
		}
		if upd.Status != nil {
			set("status", string(*upd.Status))
		}

		return "SET " + strings.Join(sets, ", "), vals, names
	})
}

func (r *ServiceDynamoRepository) UpdateAutopay(ctx context.Context, id string, autopay bool, limitCents *int64) (entities.Service, error) {
	return r.update(ctx, id, func(now string) (string, map[string]types.AttributeValue, map[string]string) {
		expr := "SET #autopay = :autopay, #updated_at = :updated_at"
		vals := map[string]types.AttributeValue{
			":autopay":    &types.AttributeValueMemberBOOL{Value: autopay},
			":updated_at": &types.AttributeValueMemberS{Value: now},
		}
		names := map[string]string{
			"#autopay":    "autopay",
			"#updated_at": "updated_at",
		}
		if limitCents != nil {
			expr += ", #autopay_limit_cents = :autopay_limit_cents"
			vals[":autopay_limit_cents"] = &types.AttributeValueMemberN{Value: strconv.FormatInt(*limitCents, 10)}
			names["#autopay_limit_cents"] = "autopay_limit_cents"
		} else {
			expr += " REMOVE #autopay_limit_cents"
			names["#autopay_limit_cents"] = "autopay_limit_cents"
		}
		return expr, vals, names
	})
}

func (r *ServiceDynamoRepository) update(
	ctx context.Context,
	id string,
	build func(now string) (updateExpr string, values map[string]types.AttributeValue, names map[string]string),
) (entities.Service, error) {
	now := formatTimestamp(time.Now())
	updateExpr, values, names := build(now)

	out, err := r.ddb.UpdateItem(ctx, &dynamodb.UpdateItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
		ConditionExpression:       aws.String("attribute_exists(#id)"),
		UpdateExpression:          aws.String(updateExpr),
		ExpressionAttributeValues: values,
		ExpressionAttributeNames:  mergeNames(names, map[string]string{"#id": "id"}),
		ReturnValues:              types.ReturnValueAllNew,
	})
	if err != nil {
		var cfe *types.ConditionalCheckFailedException
		if errors.As(err, &cfe) {
			return entities.Service{}, nil
		}
		return entities.Service{}, err
	}
	if len(out.Attributes) == 0 {
		return entities.Service{}, nil
	}
	var it serviceItem
	if err := attributevalue.UnmarshalMap(out.Attributes, &it); err != nil {
		return entities.Service{}, err
	}
	return fromServiceItem(it), nil
}

func toServiceItem(s entities.Service) serviceItem {
	return serviceItem{
		ID:                s.ID,
		UserID:            s.UserID,
		Issuer:            s.Issuer,
		Category:          string(s.Category),
		ContractNumber:    s.ContractNumber,
		LogoURL:           s.LogoURL,
		Autopay:           s.Autopay,
		AutopayLimitCents: s.AutopayLimitCents,
		Status:            string(s.Status),
		CreatedAt:         formatTimestamp(s.CreatedAt),
		UpdatedAt:         formatTimestamp(s.UpdatedAt),
	}
}

func fromServiceItem(it serviceItem) entities.Service {
	return entities.Service{
		ID:                it.ID,
		UserID:            it.UserID,
		Issuer:            it.Issuer,
		Category:          entities.Category(it.Category),
		ContractNumber:    it.ContractNumber,
		LogoURL:           it.LogoURL,
		Autopay:           it.Autopay,
		AutopayLimitCents: it.AutopayLimitCents,
		Status:            entities.ServiceStatus(it.Status),
		CreatedAt:         parseTimestamp(it.CreatedAt),
		UpdatedAt:         parseTimestamp(it.UpdatedAt),
	}
}
