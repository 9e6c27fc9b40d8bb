package interfaces

import (
	"context"
	"payonom_bridge/internal/domain/entities"
)

// IGatewaySettings supplies the merchant configuration (settings
// persistence is an external collaborator; the bridge only reads).

type IGatewaySettings interface {
	Get(ctx context.Context) (entities.GatewayConfig, error)
}
