package handlers

import (
	"errors"
	"log"
	"net/http"

	request "payonom_bridge/internal/adapter/http/dto/request"
	response "payonom_bridge/internal/adapter/http/dto/response"
	"payonom_bridge/internal/usecase"
	"payonom_bridge/pkg"

	"github.com/gin-gonic/gin"
)

// OrderHandler handles HTTP requests for orders and their reconciliation
// audit trail.

type OrderHandler struct {
	usecase usecase.IOrderUseCase
}

func NewOrderHandler(uc usecase.IOrderUseCase) *OrderHandler {
	return &OrderHandler{usecase: uc}
}

// CreateOrder seeds a pending order ahead of checkout.
func (h *OrderHandler) CreateOrder(c *gin.Context) {
	var payload request.OrderCreateRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		appErr := pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	created, err := h.usecase.Create(c.Request.Context(), payload.ID, payload.Currency, payload.Total)
	if err != nil {
		log.Printf("[order][handler] create failed order_id=%s err=%v", payload.ID, err)
		appErr := mapOrderError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	log.Printf("[order][handler] create success order_id=%s total=%s", created.ID, created.TotalString())

	c.JSON(http.StatusCreated, response.FromOrder(created))
}

// GetOrder returns the order with its current payment status.
func (h *OrderHandler) GetOrder(c *gin.Context) {
	orderID := c.Param("order_id")

	o, err := h.usecase.GetByID(c.Request.Context(), orderID)
	if err != nil {
		appErr := mapOrderError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromOrder(o))
}

// ListOrderPayments returns the reconciliation audit trail for an order.
func (h *OrderHandler) ListOrderPayments(c *gin.Context) {
	orderID := c.Param("order_id")

	events, err := h.usecase.ListPaymentEvents(c.Request.Context(), orderID)
	if err != nil {
		appErr := mapOrderError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromPaymentEvents(events))
}

func mapOrderError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrInvalidOrderID), errors.Is(err, usecase.ErrInvalidOrderTotal), errors.Is(err, usecase.ErrInvalidOrderCurrency):
		return pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrOrderNotFound):
		return pkg.NewDomainErrorSimple("ORDER_NOT_FOUND", "Order not found", http.StatusNotFound)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}
