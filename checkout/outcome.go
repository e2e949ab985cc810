package checkout

import "fmt"

// OutcomeKind enumerates the terminal states a customer is told about.
type OutcomeKind int

const (
	Success OutcomeKind = iota + 1
	VerificationFailed
	WidgetFailed
	Dismissed
)

func (k OutcomeKind) String() string {
	switch k {
	case Success:
		return "success"
	case VerificationFailed:
		return "verification_failed"
	case WidgetFailed:
		return "widget_failed"
	case Dismissed:
		return "dismissed"
	}
	return fmt.Sprintf("outcome(%d)", int(k))
}

// Outcome is the result of a checkout that reached the widget.
type Outcome struct {
	Kind      OutcomeKind
	AttemptID string
	OrderID   string
	PaymentID string
	// Err is a *VerificationError or *WidgetError for the failed kinds.
	Err error
}

// Message is the notice shown to the customer.
func (o Outcome) Message() string {
	switch o.Kind {
	case Success:
		return "Payment successful!"
	case VerificationFailed:
		return "Verification failed on server. Please contact support."
	case WidgetFailed:
		return "Payment failed. If money was debited, please contact support."
	case Dismissed:
		return "Payment was cancelled before completion."
	}
	return ""
}

// Confirmed reports whether the backend verified the payment.
func (o Outcome) Confirmed() bool { return o.Kind == Success }

// State is a step of a single payment attempt.
type State int

const (
	Idle State = iota
	KeyRequested
	OrderRequested
	CheckoutOpen
	Verifying
	Verified
	VerifyFailed
	CheckoutFailed
	CheckoutDismissed
)

var stateNames = [...]string{
	Idle:              "idle",
	KeyRequested:      "key_requested",
	OrderRequested:    "order_requested",
	CheckoutOpen:      "checkout_open",
	Verifying:         "verifying",
	Verified:          "verified",
	VerifyFailed:      "verify_failed",
	CheckoutFailed:    "checkout_failed",
	CheckoutDismissed: "checkout_dismissed",
}

func (s State) String() string {
	if s >= 0 && int(s) < len(stateNames) {
		return stateNames[s]
	}
	return fmt.Sprintf("state(%d)", int(s))
}

// Terminal reports whether no further transition follows s.
func (s State) Terminal() bool {
	return s >= Verified
}
