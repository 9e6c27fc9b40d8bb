package settings

import (
	"context"
	"log"
	"os"
	"strconv"
	"strings"

	"payonom_bridge/internal/domain/entities"
	"payonom_bridge/internal/usecase/interfaces"
)

// EnvGatewaySettings loads the merchant configuration from environment
// variables once at construction. Both the URL builder and the reconciler
// then observe the same snapshot for the lifetime of the process, which
// keeps the two config reads of a payment attempt consistent.
//
// Supported env vars:
//   - PAYONOM_ENABLED (default: true)
//   - PAYONOM_TITLE (default: Payonom)
//   - PAYONOM_DESCRIPTION (default: Pay with Payonom)
//   - PAYONOM_CLIENT_ID / PAYONOM_CLIENT_SECRET
//   - PAYONOM_MODE (sandbox|live, default: sandbox)
//   - CALLBACK_BASE_URL (default: http://localhost:8080)
//   - ORDER_RECEIVED_URL / ORDER_HISTORY_URL
//   - PAYONOM_CURRENCY_CODES (e.g. "BDT=6,USD=1", merged over defaults)

type EnvGatewaySettings struct {
	cfg entities.GatewayConfig
}

var _ interfaces.IGatewaySettings = (*EnvGatewaySettings)(nil)

func NewEnvGatewaySettings() *EnvGatewaySettings {
	mode := entities.GatewayModeSandbox
	if strings.TrimSpace(os.Getenv("PAYONOM_MODE")) == string(entities.GatewayModeLive) {
		mode = entities.GatewayModeLive
	}

	cfg := entities.GatewayConfig{
		Enabled:          parseBoolDefault(os.Getenv("PAYONOM_ENABLED"), true),
		Title:            getenvDefault("PAYONOM_TITLE", "Payonom"),
		Description:      getenvDefault("PAYONOM_DESCRIPTION", "Pay with Payonom"),
		ClientID:         strings.TrimSpace(os.Getenv("PAYONOM_CLIENT_ID")),
		ClientSecret:     strings.TrimSpace(os.Getenv("PAYONOM_CLIENT_SECRET")),
		Mode:             mode,
		CallbackBaseURL:  strings.TrimRight(getenvDefault("CALLBACK_BASE_URL", "http://localhost:8080"), "/"),
		OrderReceivedURL: getenvDefault("ORDER_RECEIVED_URL", "/order-received"),
		OrderHistoryURL:  getenvDefault("ORDER_HISTORY_URL", "/my-account/orders"),
		CurrencyCodes:    parseCurrencyCodes(os.Getenv("PAYONOM_CURRENCY_CODES")),
	}
	log.Printf("[settings][env] gateway configured mode=%s enabled=%t client_id_set=%t", cfg.Mode, cfg.Enabled, cfg.ClientID != "")

	return &EnvGatewaySettings{cfg: cfg}
}

func (s *EnvGatewaySettings) Get(_ context.Context) (entities.GatewayConfig, error) {
	return s.cfg, nil
}

// parseCurrencyCodes merges operator overrides ("BDT=6,USD=1") over the
// built-in table. The observed processor behavior only special-cases BDT.
func parseCurrencyCodes(raw string) map[string]int {
	codes := map[string]int{"BDT": 6}
	for _, pair := range strings.Split(raw, ",") {
		parts := strings.SplitN(strings.TrimSpace(pair), "=", 2)
		if len(parts) != 2 {
			continue
		}
		id, err := strconv.Atoi(strings.TrimSpace(parts[1]))
		if err != nil {
			log.Printf("[settings][env] skipping bad currency mapping %q", pair)
			continue
		}
		codes[strings.ToUpper(strings.TrimSpace(parts[0]))] = id
	}
	return codes
}

func parseBoolDefault(raw string, def bool) bool {
	v := strings.ToLower(strings.TrimSpace(raw))
	if v == "" {
		return def
	}
	switch v {
	case "1", "true", "yes", "on":
		return true
	}
	return false
}

func getenvDefault(key, def string) string {
	if v := strings.TrimSpace(os.Getenv(key)); v != "" {
		return v
	}
	return def
}
