package interfaces

import "context"

// ISessionTokenStore is the per-shopper ephemeral store for the one-time
// correlation token.
//
// One token per shopper session under a single well-known key: Set at
// redirect-build time overwrites whatever a previous attempt left behind,
// Get at callback time reads the most recent attempt's token. There is no
// expiry timer; tokens are superseded implicitly.

type ISessionTokenStore interface {
	Set(ctx context.Context, sessionID, token string) error
	Get(ctx context.Context, sessionID string) (string, error)
}

// ICartService clears the shopper's cart after checkout hand-off.

type ICartService interface {
	ClearCart(ctx context.Context, sessionID string) error
}
