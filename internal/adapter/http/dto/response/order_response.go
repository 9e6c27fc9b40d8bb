package response

import (
	"time"

	"payonom_bridge/internal/domain/entities"
)

type OrderResponse struct {
	ID        string    `json:"id"`
	Currency  string    `json:"currency"`
	Total     string    `json:"total"`
	Status    string    `json:"status"`
	TrxRef    string    `json:"trx_ref,omitempty"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func FromOrder(o entities.Order) OrderResponse {
	return OrderResponse{
		ID:        o.ID,
		Currency:  o.Currency,
		Total:     o.TotalString(),
		Status:    string(o.Status),
		TrxRef:    o.TrxRef,
		CreatedAt: o.CreatedAt,
		UpdatedAt: o.UpdatedAt,
	}
}

type PaymentEventResponse struct {
	ID      string    `json:"id"`
	OrderID string    `json:"order_id"`
	Trx     string    `json:"trx,omitempty"`
	Outcome string    `json:"outcome"`
	Reason  string    `json:"reason,omitempty"`
	Date    time.Time `json:"date"`
}

func FromPaymentEvent(e entities.PaymentEvent) PaymentEventResponse {
	return PaymentEventResponse{
		ID:      e.ID,
		OrderID: e.OrderID,
		Trx:     e.Trx,
		Outcome: string(e.Outcome),
		Reason:  e.Reason,
		Date:    e.Date,
	}
}

func FromPaymentEvents(events []entities.PaymentEvent) []PaymentEventResponse {
	out := make([]PaymentEventResponse, 0, len(events))
	for _, e := range events {
		out = append(out, FromPaymentEvent(e))
	}
	return out
}
