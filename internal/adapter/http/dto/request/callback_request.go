package request

import "payonom_bridge/internal/domain/entities"

// CallbackRequest binds Payonom's form-encoded callback POST. Absent fields
// bind as empty strings on purpose: the reconciler's comparisons then fail
// closed instead of the intake rejecting the request.
type CallbackRequest struct {
	Token   string `form:"token"`
	Status  string `form:"status"`
	OrderNo string `form:"order_no"`
	Amount  string `form:"amount"`
	Trx     string `form:"trx"`
	Action  string `form:"action"`
}

func (r CallbackRequest) ToPayload() entities.CallbackPayload {
	return entities.CallbackPayload{
		Token:   r.Token,
		Status:  r.Status,
		OrderNo: r.OrderNo,
		Amount:  r.Amount,
		Trx:     r.Trx,
		Action:  r.Action,
	}
}
