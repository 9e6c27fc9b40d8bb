package entities

import (
	"encoding/json"
	"time"
)

// PaymentOutcome is the terminal decision of one callback reconciliation.

type PaymentOutcome string

const (
	PaymentOutcomeConfirmed PaymentOutcome = "confirmed"
	PaymentOutcomeRejected  PaymentOutcome = "rejected"
)

// PaymentEvent is the audit record persisted for every reconciled callback.
//
// Storage model (DynamoDB):
//   - PK: id
//   - GSI1 (order_id-index): order_id
//
// Processor payload:
//   - ProcessorRaw keeps the execute-API response body (JSON) for
//     traceability/audit. It is operator-facing only and never surfaced to
//     the shopper.
type PaymentEvent struct {
	ID      string         `json:"id"`
	OrderID string         `json:"order_id"`
	Trx     string         `json:"trx"`
	Outcome PaymentOutcome `json:"outcome"`
	Reason  string         `json:"reason,omitempty"`
	Date    time.Time      `json:"date"`

	ProcessorRaw json.RawMessage `json:"processor_raw,omitempty"`
}
