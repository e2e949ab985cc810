package models

// PaymentFailure is the error payload of the widget's payment.failed event.
type PaymentFailure struct {
	Code        string `json:"code"`
	Description string `json:"description"`
	Source      string `json:"source,omitempty"`
	Step        string `json:"step,omitempty"`
	Reason      string `json:"reason,omitempty"`
	OrderID     string `json:"order_id,omitempty"`
	PaymentID   string `json:"payment_id,omitempty"`
}
