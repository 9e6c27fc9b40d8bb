package usecase

import (
	"context"
	"errors"
	"strings"
	"time"

	"payonom_bridge/internal/domain/entities"
	"payonom_bridge/internal/usecase/interfaces"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

var (
	ErrInvalidOrderTotal    = errors.New("invalid order total")
	ErrInvalidOrderCurrency = errors.New("invalid order currency")
)

// IOrderUseCase exposes the order operations the storefront integration
// needs: seeding an order before checkout, reading it back, and listing the
// reconciliation audit trail.

type IOrderUseCase interface {
	Create(ctx context.Context, id, currency, total string) (entities.Order, error)
	GetByID(ctx context.Context, id string) (entities.Order, error)
	ListPaymentEvents(ctx context.Context, orderID string) ([]entities.PaymentEvent, error)
}

type OrderUseCase struct {
	repo   interfaces.IOrderRepository
	events interfaces.IPaymentEventRepository
}

var _ IOrderUseCase = (*OrderUseCase)(nil)

func NewOrderUseCase(repo interfaces.IOrderRepository, events interfaces.IPaymentEventRepository) *OrderUseCase {
	return &OrderUseCase{repo: repo, events: events}
}

func (u *OrderUseCase) Create(ctx context.Context, id, currency, total string) (entities.Order, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		id = uuid.NewString()
	}
	currency = strings.ToUpper(strings.TrimSpace(currency))
	if currency == "" {
		return entities.Order{}, ErrInvalidOrderCurrency
	}

	amount, err := decimal.NewFromString(strings.TrimSpace(total))
	if err != nil || amount.Sign() <= 0 {
		return entities.Order{}, ErrInvalidOrderTotal
	}

	now := time.Now().UTC()
	o := entities.Order{
		ID:        id,
		Currency:  currency,
		Total:     amount,
		Status:    entities.OrderStatusPending,
		CreatedAt: now,
		UpdatedAt: now,
	}
	return u.repo.Create(ctx, o)
}

func (u *OrderUseCase) GetByID(ctx context.Context, id string) (entities.Order, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return entities.Order{}, ErrInvalidOrderID
	}

	o, err := u.repo.GetByID(ctx, id)
	if err != nil {
		return entities.Order{}, err
	}
	if o.ID == "" {
		return entities.Order{}, ErrOrderNotFound
	}
	return o, nil
}

func (u *OrderUseCase) ListPaymentEvents(ctx context.Context, orderID string) ([]entities.PaymentEvent, error) {
	orderID = strings.TrimSpace(orderID)
	if orderID == "" {
		return nil, ErrInvalidOrderID
	}
	return u.events.ListByOrderID(ctx, orderID)
}
