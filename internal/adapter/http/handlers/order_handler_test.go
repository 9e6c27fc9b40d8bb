package handlers

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"payonom_bridge/internal/adapter/http/handlers/mocks"
	"payonom_bridge/internal/domain/entities"
	"payonom_bridge/internal/usecase"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
	"go.uber.org/mock/gomock"
)

func orderRouter(uc usecase.IOrderUseCase) *gin.Engine {
	h := NewOrderHandler(uc)
	r := gin.New()
	r.POST("/v1/orders", h.CreateOrder)
	r.GET("/v1/orders/:order_id", h.GetOrder)
	r.GET("/v1/orders/:order_id/payments", h.ListOrderPayments)
	return r
}

func TestOrderHandler_CreateOrder(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("invalid payload", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIOrderUseCase(ctrl)

		req := httptest.NewRequest(http.MethodPost, "/v1/orders", bytes.NewBufferString("{"))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		orderRouter(uc).ServeHTTP(w, req)

		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("missing total", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIOrderUseCase(ctrl)

		req := httptest.NewRequest(http.MethodPost, "/v1/orders", bytes.NewBufferString(`{"currency":"BDT"}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		orderRouter(uc).ServeHTTP(w, req)

		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("invalid total rejected by usecase", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIOrderUseCase(ctrl)

		uc.EXPECT().Create(gomock.Any(), "", "BDT", "-5").Return(entities.Order{}, usecase.ErrInvalidOrderTotal)

		req := httptest.NewRequest(http.MethodPost, "/v1/orders", bytes.NewBufferString(`{"currency":"BDT","total":"-5"}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		orderRouter(uc).ServeHTTP(w, req)

		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("success", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIOrderUseCase(ctrl)

		now := time.Now().UTC()
		uc.EXPECT().Create(gomock.Any(), "1001", "BDT", "50.00").Return(entities.Order{
			ID:        "1001",
			Currency:  "BDT",
			Total:     decimal.RequireFromString("50.00"),
			Status:    entities.OrderStatusPending,
			CreatedAt: now,
			UpdatedAt: now,
		}, nil)

		req := httptest.NewRequest(http.MethodPost, "/v1/orders", bytes.NewBufferString(`{"id":"1001","currency":"BDT","total":"50.00"}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		orderRouter(uc).ServeHTTP(w, req)

		if w.Code != http.StatusCreated {
			t.Fatalf("expected 201, got %d", w.Code)
		}
		var body map[string]any
		_ = json.Unmarshal(w.Body.Bytes(), &body)
		if body["id"] != "1001" || body["status"] != "pending" {
			t.Fatalf("unexpected body: %s", w.Body.String())
		}
		if body["total"] != "50.00" {
			t.Fatalf("total must keep its scale, got %v", body["total"])
		}
	})
}

func TestOrderHandler_GetOrder(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("not found", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIOrderUseCase(ctrl)

		uc.EXPECT().GetByID(gomock.Any(), "missing").Return(entities.Order{}, usecase.ErrOrderNotFound)

		req := httptest.NewRequest(http.MethodGet, "/v1/orders/missing", nil)
		w := httptest.NewRecorder()
		orderRouter(uc).ServeHTTP(w, req)

		if w.Code != http.StatusNotFound {
			t.Fatalf("expected 404, got %d", w.Code)
		}
	})

	t.Run("success", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIOrderUseCase(ctrl)

		uc.EXPECT().GetByID(gomock.Any(), "1001").Return(entities.Order{
			ID:       "1001",
			Currency: "BDT",
			Total:    decimal.RequireFromString("50.00"),
			Status:   entities.OrderStatusPaid,
			TrxRef:   "TRX-1",
		}, nil)

		req := httptest.NewRequest(http.MethodGet, "/v1/orders/1001", nil)
		w := httptest.NewRecorder()
		orderRouter(uc).ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
		var body map[string]any
		_ = json.Unmarshal(w.Body.Bytes(), &body)
		if body["status"] != "paid" || body["trx_ref"] != "TRX-1" {
			t.Fatalf("unexpected body: %s", w.Body.String())
		}
	})
}

func TestOrderHandler_ListOrderPayments(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("success", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIOrderUseCase(ctrl)

		uc.EXPECT().ListPaymentEvents(gomock.Any(), "1001").Return([]entities.PaymentEvent{
			{ID: "ev-1", OrderID: "1001", Trx: "TRX-1", Outcome: entities.PaymentOutcomeRejected, Reason: "token_mismatch", Date: time.Now().UTC()},
			{ID: "ev-2", OrderID: "1001", Trx: "TRX-2", Outcome: entities.PaymentOutcomeConfirmed, Date: time.Now().UTC()},
		}, nil)

		req := httptest.NewRequest(http.MethodGet, "/v1/orders/1001/payments", nil)
		w := httptest.NewRecorder()
		orderRouter(uc).ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
		var body []map[string]any
		_ = json.Unmarshal(w.Body.Bytes(), &body)
		if len(body) != 2 {
			t.Fatalf("expected 2 events, got %s", w.Body.String())
		}
		if body[0]["outcome"] != "rejected" || body[0]["reason"] != "token_mismatch" {
			t.Fatalf("unexpected first event: %s", w.Body.String())
		}
	})

	t.Run("empty list", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIOrderUseCase(ctrl)

		uc.EXPECT().ListPaymentEvents(gomock.Any(), "1001").Return(nil, nil)

		req := httptest.NewRequest(http.MethodGet, "/v1/orders/1001/payments", nil)
		w := httptest.NewRecorder()
		orderRouter(uc).ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
	})
}
