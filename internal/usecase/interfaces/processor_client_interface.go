package interfaces

import (
	"context"
	"payonom_bridge/internal/domain/entities"
)

// IProcessorClient abstracts the outbound Payonom API.
//
// Both calls are blocking with a bounded timeout. Any transport failure,
// non-2xx status or malformed JSON surfaces as an error the reconciler
// treats as verification failure, never as success.
type IProcessorClient interface {
	// FetchAntiForgeryToken retrieves Payonom's CSRF-style token. The
	// observed processor contract never consumes it downstream, but a
	// fetch failure still aborts reconciliation.
	FetchAntiForgeryToken(ctx context.Context) (string, error)
	// ExecuteTransaction fetches Payonom's authoritative record for a
	// transaction reference using the configured merchant credentials.
	ExecuteTransaction(ctx context.Context, trx string) (entities.ProcessorResult, error)
}
