package payments

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log"
	"net/http"
	"net/url"
	"os"
	"strings"
	"time"

	"payonom_bridge/internal/domain/entities"
	"payonom_bridge/internal/usecase/interfaces"
)

// ErrProcessorUnavailable covers every failure talking to Payonom: transport
// errors, timeouts, non-2xx statuses and malformed JSON. The reconciler maps
// it to a rejected callback, never to "retry later".
var ErrProcessorUnavailable = errors.New("payonom processor unavailable")

var ErrMissingMerchantCredentials = errors.New("missing payonom merchant credentials")

const requestTimeout = 10 * time.Second

// PayonomClient talks to Payonom's csrf/token and payment/execute endpoints.
//
// The base URL follows the configured mode; PAYONOM_ENDPOINT overrides it
// for local integration testing (same convention as DYNAMODB_ENDPOINT).

type PayonomClient struct {
	httpClient   *http.Client
	baseURL      string
	clientID     string
	clientSecret string
}

var _ interfaces.IProcessorClient = (*PayonomClient)(nil)

func NewPayonomClient(cfg entities.GatewayConfig) (*PayonomClient, error) {
	if cfg.ClientID == "" || cfg.ClientSecret == "" {
		log.Printf("[payonom][client] missing merchant credentials")
		return nil, ErrMissingMerchantCredentials
	}

	base := cfg.BaseURL()
	if v := strings.TrimSpace(os.Getenv("PAYONOM_ENDPOINT")); v != "" {
		base = strings.TrimRight(v, "/")
	}
	log.Printf("[payonom][client] initialized base_url=%s mode=%s", base, cfg.Mode)

	return &PayonomClient{
		httpClient:   &http.Client{Timeout: requestTimeout},
		baseURL:      base,
		clientID:     cfg.ClientID,
		clientSecret: cfg.ClientSecret,
	}, nil
}

func (c *PayonomClient) FetchAntiForgeryToken(ctx context.Context) (string, error) {
	body, err := c.get(ctx, c.baseURL+"/csrf/token")
	if err != nil {
		return "", err
	}

	var out struct {
		Token string `json:"token"`
	}
	if err := json.Unmarshal(body, &out); err != nil {
		log.Printf("[payonom][client] csrf response unmarshal failed err=%v", err)
		return "", fmt.Errorf("%w: decoding csrf token: %v", ErrProcessorUnavailable, err)
	}
	if out.Token == "" {
		log.Printf("[payonom][client] csrf response missing token field")
		return "", fmt.Errorf("%w: csrf response missing token", ErrProcessorUnavailable)
	}
	return out.Token, nil
}

func (c *PayonomClient) ExecuteTransaction(ctx context.Context, trx string) (entities.ProcessorResult, error) {
	q := url.Values{}
	q.Set("trx", trx)
	q.Set("api", c.clientSecret)
	q.Set("id", c.clientID)

	body, err := c.get(ctx, c.baseURL+"/payment/execute?"+q.Encode())
	if err != nil {
		return entities.ProcessorResult{}, err
	}

	var out struct {
		Status string `json:"status"`
	}
	if err := json.Unmarshal(body, &out); err != nil {
		log.Printf("[payonom][client] execute response unmarshal failed trx=%s err=%v", trx, err)
		return entities.ProcessorResult{}, fmt.Errorf("%w: decoding execute response: %v", ErrProcessorUnavailable, err)
	}
	log.Printf("[payonom][client] execute success trx=%s status=%s", trx, out.Status)

	return entities.ProcessorResult{Status: out.Status, Raw: body}, nil
}

func (c *PayonomClient) get(ctx context.Context, rawURL string) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, rawURL, nil)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrProcessorUnavailable, err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		log.Printf("[payonom][client] request failed err=%v", err)
		return nil, fmt.Errorf("%w: %v", ErrProcessorUnavailable, err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("%w: reading response: %v", ErrProcessorUnavailable, err)
	}
	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		log.Printf("[payonom][client] unexpected status=%d body_len=%d", resp.StatusCode, len(body))
		return nil, fmt.Errorf("%w: status %d", ErrProcessorUnavailable, resp.StatusCode)
	}
	return body, nil
}
