package usecase

import (
	"context"
	"crypto/rand"
	"encoding/hex"
	"errors"
	"fmt"
	"log"
	"net/url"
	"strings"
	"time"

	"payonom_bridge/internal/domain/entities"
	"payonom_bridge/internal/usecase/interfaces"
)

var (
	ErrInvalidOrderID       = errors.New("invalid order id")
	ErrInvalidSessionID     = errors.New("invalid session id")
	ErrOrderNotFound        = errors.New("order not found")
	ErrGatewayDisabled      = errors.New("payment gateway disabled")
	ErrGatewayNotConfigured = errors.New("payment gateway not configured")
)

// cartClearWindow bounds how old an order may be for checkout to clear the
// shopper's cart. Orders older than this are retries/resumes, not fresh
// checkouts, and the cart is left alone.
const cartClearWindow = 15 * time.Second

const callbackRoute = "/v1/callback"

// CheckoutRedirect is the successful result of building a payment URL.

type CheckoutRedirect struct {
	Result   string `json:"result"`
	Redirect string `json:"redirect"`
}

// ICheckoutUseCase builds the hosted-payment redirect for an order.

type ICheckoutUseCase interface {
	BuildPaymentURL(ctx context.Context, sessionID, orderID string) (CheckoutRedirect, error)
}

// CheckoutUseCase constructs the Payonom redirect URL for an order: it
// issues a fresh correlation token, parks it in the shopper session, and
// embeds order/amount/merchant data plus the callback URL.
//
// Ordering matters: the token is stored before the URL is returned, so a
// callback can never arrive ahead of the token it must be compared against.

type CheckoutUseCase struct {
	orders   interfaces.IOrderRepository
	sessions interfaces.ISessionTokenStore
	cart     interfaces.ICartService
	settings interfaces.IGatewaySettings

	now func() time.Time
}

var _ ICheckoutUseCase = (*CheckoutUseCase)(nil)

func NewCheckoutUseCase(orders interfaces.IOrderRepository, sessions interfaces.ISessionTokenStore, cart interfaces.ICartService, settings interfaces.IGatewaySettings) *CheckoutUseCase {
	return &CheckoutUseCase{
		orders:   orders,
		sessions: sessions,
		cart:     cart,
		settings: settings,
		now:      time.Now,
	}
}

func (u *CheckoutUseCase) BuildPaymentURL(ctx context.Context, sessionID, orderID string) (CheckoutRedirect, error) {
	sessionID = strings.TrimSpace(sessionID)
	orderID = strings.TrimSpace(orderID)
	log.Printf("[checkout][usecase] build start session_id=%s order_id=%s", sessionID, orderID)
	if sessionID == "" {
		return CheckoutRedirect{}, ErrInvalidSessionID
	}
	if orderID == "" {
		return CheckoutRedirect{}, ErrInvalidOrderID
	}

	cfg, err := u.settings.Get(ctx)
	if err != nil {
		return CheckoutRedirect{}, err
	}
	if !cfg.Enabled {
		log.Printf("[checkout][usecase] gateway disabled order_id=%s", orderID)
		return CheckoutRedirect{}, ErrGatewayDisabled
	}
	if cfg.ClientID == "" || cfg.ClientSecret == "" {
		// Never emit a redirect URL with blank credentials.
		log.Printf("[checkout][usecase] missing merchant credentials order_id=%s", orderID)
		return CheckoutRedirect{}, ErrGatewayNotConfigured
	}

	order, err := u.orders.GetByID(ctx, orderID)
	if err != nil {
		log.Printf("[checkout][usecase] order lookup failed order_id=%s err=%v", orderID, err)
		return CheckoutRedirect{}, err
	}
	if order.ID == "" {
		return CheckoutRedirect{}, ErrOrderNotFound
	}

	token, err := newCorrelationToken()
	if err != nil {
		return CheckoutRedirect{}, err
	}

	// Store-before-redirect: the callback compares against this value.
	if err := u.sessions.Set(ctx, sessionID, token); err != nil {
		log.Printf("[checkout][usecase] token store failed session_id=%s err=%v", sessionID, err)
		return CheckoutRedirect{}, err
	}

	redirect := buildRedirectURL(cfg, order, token)

	if age := u.now().Sub(order.CreatedAt); age <= cartClearWindow {
		if err := u.cart.ClearCart(ctx, sessionID); err != nil {
			log.Printf("[checkout][usecase] cart clear failed session_id=%s err=%v", sessionID, err)
		}
	}

	log.Printf("[checkout][usecase] build success order_id=%s currency=%s amount=%s", order.ID, order.Currency, order.TotalString())
	return CheckoutRedirect{Result: "success", Redirect: redirect}, nil
}

// buildRedirectURL concatenates the fixed Payonom query parameters. The
// amount is the order total rendered exactly, never a float round-trip.
func buildRedirectURL(cfg entities.GatewayConfig, order entities.Order, token string) string {
	var b strings.Builder
	b.WriteString(cfg.BaseURL())
	b.WriteString("/payment/merchant")
	b.WriteString("?token=" + url.QueryEscape(token))
	b.WriteString("&merchant=" + url.QueryEscape(cfg.ClientSecret))
	b.WriteString("&merchant_id=" + url.QueryEscape(cfg.ClientID))
	b.WriteString("&item_name=" + url.QueryEscape("Order-"+order.ID))
	b.WriteString(fmt.Sprintf("&currency_id=%d", cfg.CurrencyCode(order.Currency)))
	b.WriteString("&order=" + url.QueryEscape(order.ID))
	b.WriteString("&amount=" + url.QueryEscape(order.TotalString()))
	b.WriteString("&callback_url=" + url.QueryEscape(cfg.CallbackBaseURL+callbackRoute))
	return b.String()
}

// newCorrelationToken returns 128 bits from crypto/rand, hex-encoded. The
// token is the one-time secret binding a redirect attempt to its callback,
// so it must be unforgeable.
func newCorrelationToken() (string, error) {
	buf := make([]byte, 16)
	if _, err := rand.Read(buf); err != nil {
		return "", err
	}
	return hex.EncodeToString(buf), nil
}
