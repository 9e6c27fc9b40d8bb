package repository

import (
	"context"
	"errors"
	"fmt"
	"time"

	"payonom_bridge/internal/domain/entities"
	"payonom_bridge/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
	"github.com/shopspring/decimal"
)

const defaultOrdersTableName = "orders"

type orderItem struct {
	ID        string `dynamodbav:"id"`
	Currency  string `dynamodbav:"currency"`
	Total     string `dynamodbav:"total"`
	Status    string `dynamodbav:"status"`
	TrxRef    string `dynamodbav:"trx_ref,omitempty"`
	CreatedAt string `dynamodbav:"created_at"`
	UpdatedAt string `dynamodbav:"updated_at"`
}

// OrderDynamoRepository persists Order entities in DynamoDB.
//
// Table requirements:
//   - PK: id (string)
//
// The paid/failed transitions are guarded by conditional updates so that
// concurrent duplicate callbacks for the same order cannot double-apply:
// the first writer wins the condition, repeats observe the terminal state
// and no-op.

type OrderDynamoRepository struct {
	ddb       *dynamodb.Client
	tableName string
}

var _ interfaces.IOrderRepository = (*OrderDynamoRepository)(nil)

func NewOrderDynamoRepository(ddb *dynamodb.Client) *OrderDynamoRepository {
	return &OrderDynamoRepository{
		ddb:       ddb,
		tableName: getenvDefault("ORDERS_TABLE", defaultOrdersTableName),
	}
}

func (r *OrderDynamoRepository) Create(ctx context.Context, o entities.Order) (entities.Order, error) {
	it := toOrderItem(o)
	av, err := attributevalue.MarshalMap(it)
	if err != nil {
		return entities.Order{}, err
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
		return entities.Order{}, err
	}
	return o, nil
}

func (r *OrderDynamoRepository) GetByID(ctx context.Context, id string) (entities.Order, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return entities.Order{}, err
	}
	if len(out.Item) == 0 {
		return entities.Order{}, nil
	}

	var it orderItem
	if err := attributevalue.UnmarshalMap(out.Item, &it); err != nil {
		return entities.Order{}, err
	}
	return fromOrderItem(it), nil
}

func (r *OrderDynamoRepository) MarkPaid(ctx context.Context, orderID, trxRef string) error {
	_, err := r.ddb.UpdateItem(ctx, &dynamodb.UpdateItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: orderID},
		},
		ConditionExpression: aws.String("attribute_exists(#id) AND #status = :pending"),
		UpdateExpression:    aws.String("SET #status = :paid, #trx_ref = :trx, #updated_at = :updated_at"),
		ExpressionAttributeNames: map[string]string{
			"#id":         "id",
			"#status":     "status",
			"#trx_ref":    "trx_ref",
			"#updated_at": "updated_at",
		},
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":pending":    &types.AttributeValueMemberS{Value: string(entities.OrderStatusPending)},
			":paid":       &types.AttributeValueMemberS{Value: string(entities.OrderStatusPaid)},
			":trx":        &types.AttributeValueMemberS{Value: trxRef},
			":updated_at": &types.AttributeValueMemberS{Value: nowString()},
		},
	})
	if err == nil {
		return nil
	}

	var cfe *types.ConditionalCheckFailedException
	if !errors.As(err, &cfe) {
		return err
	}

	// Lost the condition: the order is missing or already terminal.
	// An already-paid order is a duplicate settlement and must no-op.
	cur, gerr := r.GetByID(ctx, orderID)
	if gerr != nil {
		return gerr
	}
	if cur.ID == "" {
		return fmt.Errorf("order %s not found", orderID)
	}
	if cur.Status == entities.OrderStatusPaid {
		return nil
	}
	return fmt.Errorf("order %s is %s, cannot mark paid", orderID, cur.Status)
}

func (r *OrderDynamoRepository) MarkFailed(ctx context.Context, orderID string) error {
	_, err := r.ddb.UpdateItem(ctx, &dynamodb.UpdateItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: orderID},
		},
		ConditionExpression: aws.String("attribute_exists(#id) AND #status = :pending"),
		UpdateExpression:    aws.String("SET #status = :failed, #updated_at = :updated_at"),
		ExpressionAttributeNames: map[string]string{
			"#id":         "id",
			"#status":     "status",
			"#updated_at": "updated_at",
		},
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":pending":    &types.AttributeValueMemberS{Value: string(entities.OrderStatusPending)},
			":failed":     &types.AttributeValueMemberS{Value: string(entities.OrderStatusFailed)},
			":updated_at": &types.AttributeValueMemberS{Value: nowString()},
		},
	})
	if err != nil {
		var cfe *types.ConditionalCheckFailedException
		if errors.As(err, &cfe) {
			// Already terminal (or missing): leave untouched.
			return nil
		}
		return err
	}
	return nil
}

func toOrderItem(o entities.Order) orderItem {
	return orderItem{
		ID:        o.ID,
		Currency:  o.Currency,
		Total:     o.TotalString(),
		Status:    string(o.Status),
		TrxRef:    o.TrxRef,
		CreatedAt: o.CreatedAt.UTC().Format(time.RFC3339Nano),
		UpdatedAt: o.UpdatedAt.UTC().Format(time.RFC3339Nano),
	}
}

func fromOrderItem(it orderItem) entities.Order {
	createdAt, _ := time.Parse(time.RFC3339Nano, it.CreatedAt)
	updatedAt, _ := time.Parse(time.RFC3339Nano, it.UpdatedAt)
	total, _ := decimal.NewFromString(it.Total)
	return entities.Order{
		ID:        it.ID,
		Currency:  it.Currency,
		Total:     total,
		Status:    entities.OrderStatus(it.Status),
		TrxRef:    it.TrxRef,
		CreatedAt: createdAt,
		UpdatedAt: updatedAt,
	}
}

func nowString() string {
	return time.Now().UTC().Format(time.RFC3339Nano)
}
