package handlers

import (
	"log"
	"net/http"

	request "payonom_bridge/internal/adapter/http/dto/request"
	"payonom_bridge/internal/domain/entities"
	"payonom_bridge/internal/usecase"
	"payonom_bridge/pkg"

	"github.com/gin-gonic/gin"
)

// noticeCookie carries the flash message shown after a failed payment.
const noticeCookie = "payment_notice"

// CallbackHandler receives Payonom's callback POST and answers with a
// redirect on the shopper channel. Verification details never reach the
// response; rejections surface only as a generic notice.

type CallbackHandler struct {
	usecase usecase.ICallbackUseCase
}

func NewCallbackHandler(uc usecase.ICallbackUseCase) *CallbackHandler {
	return &CallbackHandler{usecase: uc}
}

// HandleCallback reconciles one form-encoded callback delivery.
func (h *CallbackHandler) HandleCallback(c *gin.Context) {
	var payload request.CallbackRequest
	// Binding cannot fail for form intake: absent fields stay empty and
	// fail verification downstream.
	_ = c.ShouldBind(&payload)

	sessionID := sessionIDFromRequest(c)
	log.Printf("[callback][handler] start order_no=%s trx=%s", payload.OrderNo, payload.Trx)

	outcome, err := h.usecase.Reconcile(c.Request.Context(), sessionID, payload.ToPayload())
	if err != nil {
		log.Printf("[callback][handler] failed order_no=%s err=%v", payload.OrderNo, err)
		appErr := pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	log.Printf("[callback][handler] done order_no=%s decision=%s", payload.OrderNo, outcome.Decision)

	if outcome.Decision == entities.PaymentOutcomeRejected && outcome.Notice != "" {
		c.SetCookie(noticeCookie, outcome.Notice, 300, "/", "", false, false)
	}
	c.Redirect(http.StatusFound, outcome.RedirectURL)
}
