package interfaces

import (
	"context"
	"payonom_bridge/internal/domain/entities"
)

// IPaymentEventRepository abstracts DynamoDB persistence for PaymentEvent.

type IPaymentEventRepository interface {
	Create(ctx context.Context, e entities.PaymentEvent) (entities.PaymentEvent, error)
	ListByOrderID(ctx context.Context, orderID string) ([]entities.PaymentEvent, error)
}
