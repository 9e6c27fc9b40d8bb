package interfaces

import (
	"context"
	"payonom_bridge/internal/domain/entities"
)

// IOrderRepository abstracts DynamoDB persistence for Order.
//
// MarkPaid and MarkFailed are the only mutations the bridge performs. Both
// must be internally idempotent: the reconciler may invoke them more than
// once with identical inputs for duplicate callbacks, and the repository
// must not double-apply or fail on the repeat.

type IOrderRepository interface {
	Create(ctx context.Context, o entities.Order) (entities.Order, error)
	GetByID(ctx context.Context, id string) (entities.Order, error)
	// MarkPaid transitions pending -> paid and records trxRef as the
	// settlement reference. A repeat call for an already-paid order is a
	// no-op.
	MarkPaid(ctx context.Context, orderID, trxRef string) error
	// MarkFailed transitions pending -> failed. Orders already in a
	// terminal state are left untouched.
	MarkFailed(ctx context.Context, orderID string) error
}
