package response

import "payonom_bridge/internal/domain/entities"

// GatewayResponse is the storefront-facing view of the gateway config:
// display strings and mode only, never credentials.
type GatewayResponse struct {
	Enabled     bool   `json:"enabled"`
	Title       string `json:"title"`
	Description string `json:"description"`
	Mode        string `json:"mode"`
}

func FromGatewayConfig(cfg entities.GatewayConfig) GatewayResponse {
	return GatewayResponse{
		Enabled:     cfg.Enabled,
		Title:       cfg.Title,
		Description: cfg.Description,
		Mode:        string(cfg.Mode),
	}
}
