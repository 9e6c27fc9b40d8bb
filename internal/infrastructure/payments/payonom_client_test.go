package payments

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"payonom_bridge/internal/domain/entities"
)

func clientAgainst(t *testing.T, srv *httptest.Server) *PayonomClient {
	t.Helper()
	t.Setenv("PAYONOM_ENDPOINT", srv.URL)
	c, err := NewPayonomClient(entities.GatewayConfig{
		ClientID:     "client-1",
		ClientSecret: "secret-1",
		Mode:         entities.GatewayModeSandbox,
	})
	if err != nil {
		t.Fatalf("unexpected error building client: %v", err)
	}
	return c
}

func TestNewPayonomClient_MissingCredentials(t *testing.T) {
	_, err := NewPayonomClient(entities.GatewayConfig{ClientID: "client-1"})
	if !errors.Is(err, ErrMissingMerchantCredentials) {
		t.Fatalf("expected ErrMissingMerchantCredentials, got %v", err)
	}
	_, err = NewPayonomClient(entities.GatewayConfig{ClientSecret: "secret-1"})
	if !errors.Is(err, ErrMissingMerchantCredentials) {
		t.Fatalf("expected ErrMissingMerchantCredentials, got %v", err)
	}
}

func TestNewPayonomClient_BaseURLByMode(t *testing.T) {
	c, err := NewPayonomClient(entities.GatewayConfig{ClientID: "a", ClientSecret: "b", Mode: entities.GatewayModeLive})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if c.baseURL != "https://live.payonom.com" {
		t.Fatalf("unexpected live base url: %s", c.baseURL)
	}
	c, err = NewPayonomClient(entities.GatewayConfig{ClientID: "a", ClientSecret: "b", Mode: entities.GatewayModeSandbox})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if c.baseURL != "https://sandbox.payonom.com" {
		t.Fatalf("unexpected sandbox base url: %s", c.baseURL)
	}
}

func TestFetchAntiForgeryToken(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if r.URL.Path != "/csrf/token" {
				t.Errorf("unexpected path: %s", r.URL.Path)
			}
			w.Write([]byte(`{"token":"csrf-abc"}`))
		}))
		defer srv.Close()

		token, err := clientAgainst(t, srv).FetchAntiForgeryToken(context.Background())
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if token != "csrf-abc" {
			t.Fatalf("unexpected token: %s", token)
		}
	})

	t.Run("malformed body", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.Write([]byte(`<html>maintenance</html>`))
		}))
		defer srv.Close()

		_, err := clientAgainst(t, srv).FetchAntiForgeryToken(context.Background())
		if !errors.Is(err, ErrProcessorUnavailable) {
			t.Fatalf("expected ErrProcessorUnavailable, got %v", err)
		}
	})

	t.Run("missing token field", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.Write([]byte(`{}`))
		}))
		defer srv.Close()

		_, err := clientAgainst(t, srv).FetchAntiForgeryToken(context.Background())
		if !errors.Is(err, ErrProcessorUnavailable) {
			t.Fatalf("expected ErrProcessorUnavailable, got %v", err)
		}
	})

	t.Run("server error", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusInternalServerError)
		}))
		defer srv.Close()

		_, err := clientAgainst(t, srv).FetchAntiForgeryToken(context.Background())
		if !errors.Is(err, ErrProcessorUnavailable) {
			t.Fatalf("expected ErrProcessorUnavailable, got %v", err)
		}
	})
}

func TestExecuteTransaction(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if r.URL.Path != "/payment/execute" {
				t.Errorf("unexpected path: %s", r.URL.Path)
			}
			q := r.URL.Query()
			if q.Get("trx") != "TRX-1" || q.Get("api") != "secret-1" || q.Get("id") != "client-1" {
				t.Errorf("unexpected query: %s", r.URL.RawQuery)
			}
			w.Write([]byte(`{"status":"success","amount":"50.00"}`))
		}))
		defer srv.Close()

		result, err := clientAgainst(t, srv).ExecuteTransaction(context.Background(), "TRX-1")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if result.Status != "success" {
			t.Fatalf("unexpected status: %s", result.Status)
		}
		if string(result.Raw) != `{"status":"success","amount":"50.00"}` {
			t.Fatalf("raw body not preserved: %s", result.Raw)
		}
	})

	t.Run("declined", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.Write([]byte(`{"status":"failed"}`))
		}))
		defer srv.Close()

		result, err := clientAgainst(t, srv).ExecuteTransaction(context.Background(), "TRX-1")
		if err != nil {
			t.Fatalf("a declined transaction is a response, not an error: %v", err)
		}
		if result.Status != "failed" {
			t.Fatalf("unexpected status: %s", result.Status)
		}
	})

	t.Run("server error", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusBadGateway)
		}))
		defer srv.Close()

		_, err := clientAgainst(t, srv).ExecuteTransaction(context.Background(), "TRX-1")
		if !errors.Is(err, ErrProcessorUnavailable) {
			t.Fatalf("expected ErrProcessorUnavailable, got %v", err)
		}
	})

	t.Run("unreachable", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
		srv.Close()

		_, err := clientAgainst(t, srv).ExecuteTransaction(context.Background(), "TRX-1")
		if !errors.Is(err, ErrProcessorUnavailable) {
			t.Fatalf("expected ErrProcessorUnavailable, got %v", err)
		}
	})
}
