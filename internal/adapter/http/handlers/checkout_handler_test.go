package handlers

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"payonom_bridge/internal/adapter/http/handlers/mocks"
	"payonom_bridge/internal/usecase"

	"github.com/gin-gonic/gin"
	"go.uber.org/mock/gomock"
)

func TestCheckoutHandler_CreateCheckout(t *testing.T) {
	gin.SetMode(gin.TestMode)

	newRouter := func(uc usecase.ICheckoutUseCase) *gin.Engine {
		r := gin.New()
		r.POST("/v1/checkout/:order_id", NewCheckoutHandler(uc).CreateCheckout)
		return r
	}

	t.Run("success", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockICheckoutUseCase(ctrl)

		uc.EXPECT().BuildPaymentURL(gomock.Any(), "sess-1", "1001").Return(usecase.CheckoutRedirect{
			Result:   "success",
			Redirect: "https://sandbox.payonom.com/payment/merchant?token=abc",
		}, nil)

		req := httptest.NewRequest(http.MethodPost, "/v1/checkout/1001", nil)
		req.Header.Set("X-Session-ID", "sess-1")
		w := httptest.NewRecorder()
		newRouter(uc).ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
		var body map[string]any
		_ = json.Unmarshal(w.Body.Bytes(), &body)
		if body["result"] != "success" {
			t.Fatalf("unexpected body: %s", w.Body.String())
		}
		if body["redirect"] != "https://sandbox.payonom.com/payment/merchant?token=abc" {
			t.Fatalf("unexpected redirect: %s", w.Body.String())
		}
	})

	t.Run("session id from cookie", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockICheckoutUseCase(ctrl)

		uc.EXPECT().BuildPaymentURL(gomock.Any(), "cookie-sess", "1001").Return(usecase.CheckoutRedirect{Result: "success", Redirect: "https://example.com"}, nil)

		req := httptest.NewRequest(http.MethodPost, "/v1/checkout/1001", nil)
		req.AddCookie(&http.Cookie{Name: "session_id", Value: "cookie-sess"})
		w := httptest.NewRecorder()
		newRouter(uc).ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
	})

	t.Run("order not found", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockICheckoutUseCase(ctrl)

		uc.EXPECT().BuildPaymentURL(gomock.Any(), gomock.Any(), "missing").Return(usecase.CheckoutRedirect{}, usecase.ErrOrderNotFound)

		req := httptest.NewRequest(http.MethodPost, "/v1/checkout/missing", nil)
		req.Header.Set("X-Session-ID", "sess-1")
		w := httptest.NewRecorder()
		newRouter(uc).ServeHTTP(w, req)

		if w.Code != http.StatusNotFound {
			t.Fatalf("expected 404, got %d", w.Code)
		}
	})

	t.Run("missing session id", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockICheckoutUseCase(ctrl)

		uc.EXPECT().BuildPaymentURL(gomock.Any(), "", "1001").Return(usecase.CheckoutRedirect{}, usecase.ErrInvalidSessionID)

		req := httptest.NewRequest(http.MethodPost, "/v1/checkout/1001", nil)
		w := httptest.NewRecorder()
		newRouter(uc).ServeHTTP(w, req)

		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("gateway disabled", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockICheckoutUseCase(ctrl)

		uc.EXPECT().BuildPaymentURL(gomock.Any(), gomock.Any(), gomock.Any()).Return(usecase.CheckoutRedirect{}, usecase.ErrGatewayDisabled)

		req := httptest.NewRequest(http.MethodPost, "/v1/checkout/1001", nil)
		req.Header.Set("X-Session-ID", "sess-1")
		w := httptest.NewRecorder()
		newRouter(uc).ServeHTTP(w, req)

		if w.Code != http.StatusServiceUnavailable {
			t.Fatalf("expected 503, got %d", w.Code)
		}
	})

	t.Run("internal error", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockICheckoutUseCase(ctrl)

		uc.EXPECT().BuildPaymentURL(gomock.Any(), gomock.Any(), gomock.Any()).Return(usecase.CheckoutRedirect{}, errors.New("redis down"))

		req := httptest.NewRequest(http.MethodPost, "/v1/checkout/1001", nil)
		req.Header.Set("X-Session-ID", "sess-1")
		w := httptest.NewRecorder()
		newRouter(uc).ServeHTTP(w, req)

		if w.Code != http.StatusInternalServerError {
			t.Fatalf("expected 500, got %d", w.Code)
		}
		if body := w.Body.String(); body == "" || !json.Valid([]byte(body)) {
			t.Fatalf("expected JSON error body, got %q", body)
		}
	})
}
