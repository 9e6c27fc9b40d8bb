package request

// OrderCreateRequest seeds an order ahead of checkout. Total is a decimal
// string so the exact amount survives the round trip (never a JSON float).
type OrderCreateRequest struct {
	ID       string `json:"id"`
	Currency string `json:"currency" binding:"required"`
	Total    string `json:"total" binding:"required"`
}
