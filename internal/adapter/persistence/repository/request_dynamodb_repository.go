package repository

import (
	"context"
	"fmt"
	"sort"
	"time"

	"plumbing_portal/internal/domain/entities"
	"plumbing_portal/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

const defaultServiceRequestsTableName = "service_requests"

// requestDynamoAPI is the subset of *dynamodb.Client used by the repository.
type requestDynamoAPI interface {
	PutItem(ctx context.Context, params *dynamodb.PutItemInput, optFns ...func(*dynamodb.Options)) (*dynamodb.PutItemOutput, error)
	dynamodb.ScanAPIClient
}

type customerInfoItem struct {
	FullName string `dynamodbav:"full_name"`
	Email    string `dynamodbav:"email"`
	Phone    string `dynamodbav:"phone"`
	Address  string `dynamodbav:"address"`
}

type serviceDetailsItem struct {
	Category          string `dynamodbav:"category"`
	Type              string `dynamodbav:"type"`
	Urgency           string `dynamodbav:"urgency"`
	Description       string `dynamodbav:"description"`
	ContactPreference string `dynamodbav:"contact_preference"`
}

type serviceRequestItem struct {
	ID                    string             `dynamodbav:"id"`
	RequestID             string             `dynamodbav:"request_id"`
	Timestamp             string             `dynamodbav:"timestamp"`
	CustomerInfo          customerInfoItem   `dynamodbav:"customer_info"`
	ServiceDetails        serviceDetailsItem `dynamodbav:"service_details"`
	PhotoUploaded         bool               `dynamodbav:"photo_uploaded"`
	PreliminaryPriceRange string             `dynamodbav:"preliminary_price_range"`
}

// RequestDynamoRepository persists service requests in DynamoDB.
//
// Table requirements:
//   - PK: id (string, a uuid assigned on append)
//
// request_id is a plain attribute: two requests saved in the same second share it and
// are both kept. Puts are conditional on the key being absent, so stored requests are
// never overwritten. Load scans the whole table and orders by timestamp; the store has
// no query surface.

type RequestDynamoRepository struct {
	ddb       requestDynamoAPI
	tableName string
	logger    *zap.Logger
}

var _ interfaces.IRequestStore = (*RequestDynamoRepository)(nil)

func NewRequestDynamoRepository(ddb *dynamodb.Client, tableName string, logger *zap.Logger) *RequestDynamoRepository {
	return newRequestDynamoRepository(ddb, tableName, logger)
}

func newRequestDynamoRepository(ddb requestDynamoAPI, tableName string, logger *zap.Logger) *RequestDynamoRepository {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &RequestDynamoRepository{
		ddb:       ddb,
		tableName: orDefault(tableName, defaultServiceRequestsTableName),
		logger:    logger,
	}
}

func (r *RequestDynamoRepository) Append(ctx context.Context, req entities.ServiceRequest) error {
	item := toServiceRequestItem(req)
	item.ID = uuid.NewString()

	av, err := attributevalue.MarshalMap(item)
	if err != nil {
		return err
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
		return fmt.Errorf("put service request %s: %w", req.RequestID, err)
	}
	r.logger.Debug("[intake][dynamodb] put",
		zap.String("table", r.tableName),
		zap.String("id", item.ID),
		zap.String("request_id", req.RequestID),
	)
	return nil
}

func (r *RequestDynamoRepository) Load(ctx context.Context) ([]entities.ServiceRequest, error) {
	p := dynamodb.NewScanPaginator(r.ddb, &dynamodb.ScanInput{
		TableName:      aws.String(r.tableName),
		ConsistentRead: aws.Bool(true),
	})

	out := []entities.ServiceRequest{}
	for p.HasMorePages() {
		page, err := p.NextPage(ctx)
		if err != nil {
			return nil, err
		}
		var items []serviceRequestItem
		if err := attributevalue.UnmarshalListOfMaps(page.Items, &items); err != nil {
			return nil, fmt.Errorf("%w: %v", interfaces.ErrStoreCorrupt, err)
		}
		for _, it := range items {
			out = append(out, fromServiceRequestItem(it))
		}
	}

	sort.SliceStable(out, func(i, j int) bool {
		if out[i].Timestamp.Equal(out[j].Timestamp) {
			return out[i].RequestID < out[j].RequestID
		}
		return out[i].Timestamp.Before(out[j].Timestamp)
	})
	return out, nil
}

func toServiceRequestItem(r entities.ServiceRequest) serviceRequestItem {
	return serviceRequestItem{
		RequestID: r.RequestID,
		Timestamp: r.Timestamp.UTC().Format(time.RFC3339Nano),
		CustomerInfo: customerInfoItem{
			FullName: r.CustomerInfo.FullName,
			Email:    r.CustomerInfo.Email,
			Phone:    r.CustomerInfo.Phone,
			Address:  r.CustomerInfo.Address,
		},
		ServiceDetails: serviceDetailsItem{
			Category:          string(r.ServiceDetails.Category),
			Type:              r.ServiceDetails.Type,
			Urgency:           string(r.ServiceDetails.Urgency),
			Description:       r.ServiceDetails.Description,
			ContactPreference: string(r.ServiceDetails.ContactPreference),
		},
		PhotoUploaded:         r.PhotoUploaded,
		PreliminaryPriceRange: r.PreliminaryPriceRange,
	}
}

func fromServiceRequestItem(it serviceRequestItem) entities.ServiceRequest {
	ts, _ := time.Parse(time.RFC3339Nano, it.Timestamp)
	return entities.ServiceRequest{
		CustomerInfo: entities.CustomerInfo{
			FullName: it.CustomerInfo.FullName,
			Email:    it.CustomerInfo.Email,
			Phone:    it.CustomerInfo.Phone,
			Address:  it.CustomerInfo.Address,
		},
		ServiceDetails: entities.ServiceDetails{
			Category:          entities.Category(it.ServiceDetails.Category),
			Type:              it.ServiceDetails.Type,
			Urgency:           entities.Urgency(it.ServiceDetails.Urgency),
			Description:       it.ServiceDetails.Description,
			ContactPreference: entities.ContactPreference(it.ServiceDetails.ContactPreference),
		},
		PhotoUploaded:         it.PhotoUploaded,
		PreliminaryPriceRange: it.PreliminaryPriceRange,
		Timestamp:             ts,
		RequestID:             it.RequestID,
	}
}
