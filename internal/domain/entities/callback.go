package entities

import "encoding/json"

// CallbackPayload carries the fields of Payonom's server-to-server callback.
//
// Every field is an attacker-controlled string from the network boundary;
// nothing here is trusted until the reconciler cross-verifies it. Missing
// form fields bind as empty strings, which makes every verification
// predicate fail closed.
type CallbackPayload struct {
	Token   string `form:"token" json:"token"`
	Status  string `form:"status" json:"status"`
	OrderNo string `form:"order_no" json:"order_no"`
	Amount  string `form:"amount" json:"amount"`
	Trx     string `form:"trx" json:"trx"`
	Action  string `form:"action" json:"action"`
}

// ProcessorResult is Payonom's own record for a transaction reference,
// fetched independently through the execute API. It is the only status the
// reconciler treats as ground truth.
type ProcessorResult struct {
	Status string          `json:"status"`
	Raw    json.RawMessage `json:"-"`
}
