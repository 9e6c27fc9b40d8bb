package handlers

import (
	"net/http"

	response "payonom_bridge/internal/adapter/http/dto/response"
	"payonom_bridge/internal/usecase/interfaces"
	"payonom_bridge/pkg"

	"github.com/gin-gonic/gin"
)

// GatewayHandler serves the display configuration the storefront needs to
// render the payment-method tile.

type GatewayHandler struct {
	settings interfaces.IGatewaySettings
}

func NewGatewayHandler(settings interfaces.IGatewaySettings) *GatewayHandler {
	return &GatewayHandler{settings: settings}
}

func (h *GatewayHandler) GetGateway(c *gin.Context) {
	cfg, err := h.settings.Get(c.Request.Context())
	if err != nil {
		appErr := pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromGatewayConfig(cfg))
}
