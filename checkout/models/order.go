package models

import "encoding/json"

// DefaultCurrency is used when the backend omits the order currency.
const DefaultCurrency = "INR"

// Order is issued by the backend; Amount is in minor units (paise for INR).
type Order struct {
	ID       string `json:"id"`
	Amount   int64  `json:"amount"`
	Currency string `json:"currency,omitempty"`
}

type KeyResponse struct {
	Key string `json:"key"`
}

type CreateOrder struct {
	// Amount is in major units and must encode as a bare JSON number.
	Amount json.Number `json:"amount"`
}

// PaymentResult is what the hosted checkout hands back on success.
type PaymentResult struct {
	PaymentID string `json:"razorpay_payment_id"`
	OrderID   string `json:"razorpay_order_id"`
	Signature string `json:"razorpay_signature"`
}

type Prefill struct {
	Name    string `json:"name"`
	Email   string `json:"email"`
	Contact string `json:"contact"`
}

// CheckoutOptions configure one hosted checkout session.
type CheckoutOptions struct {
	Key         string  `json:"key"`
	Amount      int64   `json:"amount"`
	Currency    string  `json:"currency"`
	Name        string  `json:"name"`
	Description string  `json:"description"`
	OrderID     string  `json:"order_id"`
	Prefill     Prefill `json:"prefill"`
}
