package response

import (
	"testing"
	"time"

	"payonom_bridge/internal/domain/entities"

	"github.com/shopspring/decimal"
)

func TestFromOrder(t *testing.T) {
	now := time.Now().UTC()
	o := entities.Order{
		ID:        "1001",
		Currency:  "BDT",
		Total:     decimal.RequireFromString("50.00"),
		Status:    entities.OrderStatusPaid,
		TrxRef:    "TRX-1",
		CreatedAt: now,
		UpdatedAt: now,
	}

	res := FromOrder(o)
	if res.ID != "1001" || res.Currency != "BDT" || res.Status != "paid" || res.TrxRef != "TRX-1" {
		t.Fatalf("unexpected mapped fields: %+v", res)
	}
	if res.Total != "50.00" {
		t.Fatalf("total must keep its scale, got %s", res.Total)
	}
	if !res.CreatedAt.Equal(now) || !res.UpdatedAt.Equal(now) {
		t.Fatalf("unexpected dates: %+v", res)
	}
}

func TestFromOrder_WholeTotal(t *testing.T) {
	o := entities.Order{ID: "1", Currency: "BDT", Total: decimal.RequireFromString("100")}
	if res := FromOrder(o); res.Total != "100" {
		t.Fatalf("unexpected total: %s", res.Total)
	}
}

func TestFromPaymentEvents(t *testing.T) {
	now := time.Now().UTC()
	events := []entities.PaymentEvent{
		{ID: "ev-1", OrderID: "1001", Trx: "TRX-1", Outcome: entities.PaymentOutcomeConfirmed, Date: now},
		{ID: "ev-2", OrderID: "1001", Outcome: entities.PaymentOutcomeRejected, Reason: "amount_mismatch", Date: now},
	}

	res := FromPaymentEvents(events)
	if len(res) != 2 {
		t.Fatalf("expected 2 events, got %d", len(res))
	}
	if res[0].Outcome != "confirmed" || res[0].Trx != "TRX-1" {
		t.Fatalf("unexpected first event: %+v", res[0])
	}
	if res[1].Outcome != "rejected" || res[1].Reason != "amount_mismatch" {
		t.Fatalf("unexpected second event: %+v", res[1])
	}

	if res := FromPaymentEvents(nil); res == nil || len(res) != 0 {
		t.Fatalf("nil input must map to an empty slice, got %#v", res)
	}
}
