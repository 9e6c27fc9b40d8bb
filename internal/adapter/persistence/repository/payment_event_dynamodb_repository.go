package repository

import (
	"context"
	"time"

	"payonom_bridge/internal/domain/entities"
	"payonom_bridge/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

const (
	defaultPaymentEventsTableName = "payment_events"
	paymentEventsOrderIDIndex     = "order_id-index"
)

type paymentEventItem struct {
	ID           string `dynamodbav:"id"`
	OrderID      string `dynamodbav:"order_id"`
	Trx          string `dynamodbav:"trx,omitempty"`
	Outcome      string `dynamodbav:"outcome"`
	Reason       string `dynamodbav:"reason,omitempty"`
	Date         string `dynamodbav:"date"`
	ProcessorRaw string `dynamodbav:"processor_raw,omitempty"`
}

// PaymentEventDynamoRepository persists PaymentEvent entities in DynamoDB.
//
// Table requirements:
//   - PK: id (string)
//   - GSI: order_id-index (PK: order_id)

type PaymentEventDynamoRepository struct {
	ddb       *dynamodb.Client
	tableName string
}

var _ interfaces.IPaymentEventRepository = (*PaymentEventDynamoRepository)(nil)

func NewPaymentEventDynamoRepository(ddb *dynamodb.Client) *PaymentEventDynamoRepository {
	return &PaymentEventDynamoRepository{
		ddb:       ddb,
		tableName: getenvDefault("PAYMENT_EVENTS_TABLE", defaultPaymentEventsTableName),
	}
}

func (r *PaymentEventDynamoRepository) Create(ctx context.Context, e entities.PaymentEvent) (entities.PaymentEvent, error) {
	it := toPaymentEventItem(e)
	av, err := attributevalue.MarshalMap(it)
	if err != nil {
		return entities.PaymentEvent{}, err
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
		return entities.PaymentEvent{}, err
	}
	return e, nil
}

func (r *PaymentEventDynamoRepository) ListByOrderID(ctx context.Context, orderID string) ([]entities.PaymentEvent, error) {
	out, err := r.ddb.Query(ctx, &dynamodb.QueryInput{
		TableName:              aws.String(r.tableName),
		IndexName:              aws.String(paymentEventsOrderIDIndex),
		KeyConditionExpression: aws.String("order_id = :oid"),
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":oid": &types.AttributeValueMemberS{Value: orderID},
		},
	})
	if err != nil {
		return nil, err
	}

	items := make([]entities.PaymentEvent, 0, len(out.Items))
	for _, raw := range out.Items {
		var it paymentEventItem
		if err := attributevalue.UnmarshalMap(raw, &it); err != nil {
			return nil, err
		}
		items = append(items, fromPaymentEventItem(it))
	}
	return items, nil
}

func toPaymentEventItem(e entities.PaymentEvent) paymentEventItem {
	return paymentEventItem{
		ID:           e.ID,
		OrderID:      e.OrderID,
		Trx:          e.Trx,
		Outcome:      string(e.Outcome),
		Reason:       e.Reason,
		Date:         e.Date.UTC().Format(time.RFC3339Nano),
		ProcessorRaw: string(e.ProcessorRaw),
	}
}

func fromPaymentEventItem(it paymentEventItem) entities.PaymentEvent {
	dt, _ := time.Parse(time.RFC3339Nano, it.Date)
	return entities.PaymentEvent{
		ID:           it.ID,
		OrderID:      it.OrderID,
		Trx:          it.Trx,
		Outcome:      entities.PaymentOutcome(it.Outcome),
		Reason:       it.Reason,
		Date:         dt,
		ProcessorRaw: []byte(it.ProcessorRaw),
	}
}
