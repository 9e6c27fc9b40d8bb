package handlers

import (
	"errors"
	"log"
	"net/http"

	"payonom_bridge/internal/usecase"
	"payonom_bridge/pkg"

	"github.com/gin-gonic/gin"
)

// CheckoutHandler starts a payment attempt: it hands the shopper the
// Payonom redirect URL for an order.

type CheckoutHandler struct {
	usecase usecase.ICheckoutUseCase
}

func NewCheckoutHandler(uc usecase.ICheckoutUseCase) *CheckoutHandler {
	return &CheckoutHandler{usecase: uc}
}

// CreateCheckout builds the hosted-payment redirect for the order in path.
func (h *CheckoutHandler) CreateCheckout(c *gin.Context) {
	orderID := c.Param("order_id")
	sessionID := sessionIDFromRequest(c)
	log.Printf("[checkout][handler] start order_id=%s session_id=%s", orderID, sessionID)

	redirect, err := h.usecase.BuildPaymentURL(c.Request.Context(), sessionID, orderID)
	if err != nil {
		log.Printf("[checkout][handler] failed order_id=%s err=%v", orderID, err)
		appErr := mapCheckoutError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	log.Printf("[checkout][handler] success order_id=%s", orderID)

	c.JSON(http.StatusOK, redirect)
}

func mapCheckoutError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrInvalidOrderID), errors.Is(err, usecase.ErrInvalidSessionID):
		return pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrOrderNotFound):
		return pkg.NewDomainErrorSimple("ORDER_NOT_FOUND", "Order not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrGatewayDisabled):
		return pkg.NewDomainErrorSimple("GATEWAY_DISABLED", "Payment gateway is disabled", http.StatusServiceUnavailable)
	case errors.Is(err, usecase.ErrGatewayNotConfigured):
		return pkg.NewDomainErrorSimple("GATEWAY_NOT_CONFIGURED", "Payment gateway is not configured", http.StatusServiceUnavailable)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}
