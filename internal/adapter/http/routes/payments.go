package routes

import (
	"payonom_bridge/internal/adapter/http/handlers"

	"github.com/gin-gonic/gin"
)

const (
	PathCheckout = "/checkout"
	PathCallback = "/callback"
	PathOrders   = "/orders"
	PathGateway  = "/gateway"
)

func addPaymentRoutes(rg *gin.RouterGroup, checkoutHandler *handlers.CheckoutHandler, callbackHandler *handlers.CallbackHandler, orderHandler *handlers.OrderHandler, gatewayHandler *handlers.GatewayHandler) {
	rg.POST(PathCheckout+"/:order_id", checkoutHandler.CreateCheckout)

	// Payonom posts the payment result here (form-encoded).
	rg.POST(PathCallback, callbackHandler.HandleCallback)

	orders := rg.Group(PathOrders)
	{
		orders.POST("", orderHandler.CreateOrder)
		orders.GET("/:order_id", orderHandler.GetOrder)
		orders.GET("/:order_id/payments", orderHandler.ListOrderPayments)
	}

	rg.GET(PathGateway, gatewayHandler.GetGateway)
}
