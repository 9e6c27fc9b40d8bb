package usecase

import (
	"context"
	"fmt"
	"log"
	"net/url"
	"strings"
	"time"

	"payonom_bridge/internal/domain/entities"
	"payonom_bridge/internal/usecase/interfaces"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Rejection reasons recorded in the audit trail and operator logs. They are
// never shown to the shopper.
const (
	reasonStatusMismatch    = "status_mismatch"
	reasonNetworkError      = "network_error"
	reasonProcessorDeclined = "processor_declined"
	reasonTokenMismatch     = "token_mismatch"
	reasonOrderNotFound     = "order_not_found"
	reasonOrderMismatch     = "order_mismatch"
	reasonAmountMismatch    = "amount_mismatch"
)

// ReconcileOutcome is the shopper-facing result of one callback: where to
// send the browser and, on failure, the generic notice to flash.

type ReconcileOutcome struct {
	Decision    entities.PaymentOutcome
	RedirectURL string
	Notice      string
}

// ICallbackUseCase reconciles one inbound Payonom callback.

type ICallbackUseCase interface {
	Reconcile(ctx context.Context, sessionID string, payload entities.CallbackPayload) (ReconcileOutcome, error)
}

// CallbackUseCase is the reconciliation state machine: Received ->
// Verifying -> {Confirmed, Rejected}.
//
// A callback is trusted as paid only when five independent signals agree:
// the payload claims success, Payonom's execute API independently confirms
// the transaction, the correlation token matches the one issued for this
// shopper's latest attempt, and the payload's order reference and amount
// match the stored order. Any single miss, or any processor network
// failure, rejects. Nothing from the payload is ever trusted on its own.

type CallbackUseCase struct {
	orders    interfaces.IOrderRepository
	events    interfaces.IPaymentEventRepository
	sessions  interfaces.ISessionTokenStore
	processor interfaces.IProcessorClient
	settings  interfaces.IGatewaySettings
}

var _ ICallbackUseCase = (*CallbackUseCase)(nil)

func NewCallbackUseCase(orders interfaces.IOrderRepository, events interfaces.IPaymentEventRepository, sessions interfaces.ISessionTokenStore, processor interfaces.IProcessorClient, settings interfaces.IGatewaySettings) *CallbackUseCase {
	return &CallbackUseCase{
		orders:    orders,
		events:    events,
		sessions:  sessions,
		processor: processor,
		settings:  settings,
	}
}

func (u *CallbackUseCase) Reconcile(ctx context.Context, sessionID string, payload entities.CallbackPayload) (ReconcileOutcome, error) {
	log.Printf("[callback][usecase] received order_no=%s trx=%s action=%s", payload.OrderNo, payload.Trx, payload.Action)

	cfg, err := u.settings.Get(ctx)
	if err != nil {
		return ReconcileOutcome{}, err
	}

	verdict, result, err := u.verify(ctx, sessionID, payload)
	if err != nil {
		return ReconcileOutcome{}, err
	}

	u.recordEvent(ctx, payload, verdict, result)

	if verdict.confirmed() {
		if err := u.orders.MarkPaid(ctx, verdict.order.ID, payload.Trx); err != nil {
			log.Printf("[callback][usecase] mark-paid failed order_id=%s trx=%s err=%v", verdict.order.ID, payload.Trx, err)
			return ReconcileOutcome{}, err
		}
		log.Printf("[callback][usecase] confirmed order_id=%s trx=%s", verdict.order.ID, payload.Trx)
		return ReconcileOutcome{
			Decision:    entities.PaymentOutcomeConfirmed,
			RedirectURL: cfg.OrderReceivedURL + "?order=" + url.QueryEscape(verdict.order.ID),
		}, nil
	}

	log.Printf("[callback][usecase] rejected order_no=%s trx=%s reason=%s", payload.OrderNo, payload.Trx, verdict.reason())

	// Never fabricate an order: only mark failure when the lookup found one.
	if verdict.orderFound {
		if err := u.orders.MarkFailed(ctx, verdict.order.ID); err != nil {
			log.Printf("[callback][usecase] mark-failed failed order_id=%s err=%v", verdict.order.ID, err)
			return ReconcileOutcome{}, err
		}
	}

	return ReconcileOutcome{
		Decision:    entities.PaymentOutcomeRejected,
		RedirectURL: cfg.OrderHistoryURL,
		Notice:      fmt.Sprintf("Payment failed with %s. Please try again.", cfg.Title),
	}, nil
}

// verdict carries the five verification predicates plus the looked-up order.
type verdict struct {
	statusOK     bool
	processorOK  bool
	tokenOK      bool
	orderOK      bool
	amountOK     bool
	networkError bool
	orderFound   bool
	order        entities.Order
}

func (v verdict) confirmed() bool {
	return v.statusOK && v.processorOK && v.tokenOK && v.orderOK && v.amountOK
}

func (v verdict) reason() string {
	switch {
	case v.networkError:
		return reasonNetworkError
	case !v.statusOK:
		return reasonStatusMismatch
	case !v.processorOK:
		return reasonProcessorDeclined
	case !v.tokenOK:
		return reasonTokenMismatch
	case !v.orderFound:
		return reasonOrderNotFound
	case !v.orderOK:
		return reasonOrderMismatch
	case !v.amountOK:
		return reasonAmountMismatch
	default:
		return ""
	}
}

func (u *CallbackUseCase) verify(ctx context.Context, sessionID string, payload entities.CallbackPayload) (verdict, entities.ProcessorResult, error) {
	var v verdict

	v.statusOK = payload.Status == "success"

	// Independent re-verification with the processor. The anti-forgery
	// token is fetched per the observed protocol even though the execute
	// call does not consume it; either call failing is a hard reject.
	var result entities.ProcessorResult
	if u.processor == nil {
		log.Printf("[callback][usecase] processor client not configured")
		v.networkError = true
	} else if _, err := u.processor.FetchAntiForgeryToken(ctx); err != nil {
		log.Printf("[callback][usecase] anti-forgery fetch failed err=%v", err)
		v.networkError = true
	} else if result, err = u.processor.ExecuteTransaction(ctx, payload.Trx); err != nil {
		log.Printf("[callback][usecase] execute failed trx=%s err=%v", payload.Trx, err)
		v.networkError = true
	} else {
		v.processorOK = result.Status == "success"
	}

	stored, err := u.sessions.Get(ctx, sessionID)
	if err != nil {
		return verdict{}, entities.ProcessorResult{}, err
	}
	v.tokenOK = stored != "" && payload.Token == stored

	// An absent order reference fails closed without touching the table:
	// DynamoDB rejects empty key attributes outright.
	if ref := strings.TrimSpace(payload.OrderNo); ref != "" {
		order, err := u.orders.GetByID(ctx, ref)
		if err != nil {
			return verdict{}, entities.ProcessorResult{}, err
		}
		if order.ID != "" {
			v.orderFound = true
			v.order = order
			v.orderOK = numericEqual(payload.OrderNo, order.ID)
			v.amountOK = amountEqual(payload.Amount, order.Total)
		}
	}

	return v, result, nil
}

// recordEvent appends the audit trail entry. Audit persistence is
// best-effort: a write failure is logged but does not change the shopper
// outcome.
func (u *CallbackUseCase) recordEvent(ctx context.Context, payload entities.CallbackPayload, v verdict, result entities.ProcessorResult) {
	outcome := entities.PaymentOutcomeRejected
	if v.confirmed() {
		outcome = entities.PaymentOutcomeConfirmed
	}
	orderID := v.order.ID
	if orderID == "" {
		orderID = strings.TrimSpace(payload.OrderNo)
	}

	_, err := u.events.Create(ctx, entities.PaymentEvent{
		ID:           uuid.NewString(),
		OrderID:      orderID,
		Trx:          payload.Trx,
		Outcome:      outcome,
		Reason:       v.reason(),
		Date:         time.Now().UTC(),
		ProcessorRaw: result.Raw,
	})
	if err != nil {
		log.Printf("[callback][usecase] audit write failed order_id=%s err=%v", orderID, err)
	}
}

// numericEqual compares two references numerically when both parse as
// numbers ("1001" equals "01001"), falling back to exact string equality.
// This keeps the permissive order-reference intake without type juggling.
func numericEqual(a, b string) bool {
	da, errA := decimal.NewFromString(strings.TrimSpace(a))
	db, errB := decimal.NewFromString(strings.TrimSpace(b))
	if errA == nil && errB == nil {
		return da.Equal(db)
	}
	return strings.TrimSpace(a) != "" && strings.TrimSpace(a) == strings.TrimSpace(b)
}

// amountEqual parses the untrusted amount into an exact decimal before
// comparing; a malformed amount never matches.
func amountEqual(raw string, total decimal.Decimal) bool {
	d, err := decimal.NewFromString(strings.TrimSpace(raw))
	if err != nil {
		return false
	}
	return d.Equal(total)
}
