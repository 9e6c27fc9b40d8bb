package entities

import (
	"time"

	"github.com/shopspring/decimal"
)

// OrderStatus represents the payment lifecycle of an order.
//
// Domain notes:
//   - The order system is the source of truth for order contents; the bridge
//     only reads order fields and drives the pending -> paid/failed transition.
//   - Both terminal transitions are idempotent: repeating the same transition
//     with the same settlement reference is a no-op, never an error.

type OrderStatus string

const (
	OrderStatusPending OrderStatus = "pending"
	OrderStatusPaid    OrderStatus = "paid"
	OrderStatusFailed  OrderStatus = "failed"
)

// Order is the order record persisted in DynamoDB.
//
// Storage model (DynamoDB):
//   - PK: id
//
// Monetary representation:
//   - Total is an exact decimal; it is never passed through binary floats so
//     the amount round-trips the redirect URL and callback without drift.
type Order struct {
	ID        string          `json:"id"`
	Currency  string          `json:"currency"`
	Total     decimal.Decimal `json:"total"`
	Status    OrderStatus     `json:"status"`
	TrxRef    string          `json:"trx_ref,omitempty"`
	CreatedAt time.Time       `json:"created_at"`
	UpdatedAt time.Time       `json:"updated_at"`
}

// TotalString renders the order total exactly as stored, keeping trailing
// zeros (e.g. 50.00 stays "50.00", not "50").
func (o Order) TotalString() string {
	if exp := o.Total.Exponent(); exp < 0 {
		return o.Total.StringFixed(-exp)
	}
	return o.Total.String()
}
