package checkout

import (
	"fmt"

	"github.com/kabaddi-academy/academy-pay/checkout/models"
	"github.com/kabaddi-academy/academy-pay/internal/amount"
	"github.com/kabaddi-academy/academy-pay/internal/jsonhttp"
)

// ErrInvalidAmount is returned before any network call for amounts <= 0.
var ErrInvalidAmount = amount.ErrNotPositive

type (
	// TransportError is a JSON response with a non-2xx status.
	TransportError = jsonhttp.TransportError
	// FormatError is a response that is not JSON or lacks required fields.
	FormatError = jsonhttp.FormatError
)

// ConfigError wraps a failure to obtain the public checkout key. It usually
// means the deployment is misconfigured: the wrapped error tells an HTML page
// (FormatError) apart from an HTTP failure (TransportError).
type ConfigError struct {
	Err error
}

func (e *ConfigError) Error() string {
	return fmt.Sprintf("fetching checkout key: %v", e.Err)
}

func (e *ConfigError) Unwrap() error { return e.Err }

// VerificationError means the backend did not confirm a completed checkout.
// The customer may already have been charged.
type VerificationError struct {
	Result models.PaymentResult
	Err    error
}

func (e *VerificationError) Error() string {
	return fmt.Sprintf("verifying payment %s for order %s: %v", e.Result.PaymentID, e.Result.OrderID, e.Err)
}

func (e *VerificationError) Unwrap() error { return e.Err }

// WidgetError carries the failure reported by the hosted checkout.
type WidgetError struct {
	Failure models.PaymentFailure
}

func (e *WidgetError) Error() string {
	if e.Failure.Code == "" {
		return fmt.Sprintf("payment failed: %s", e.Failure.Description)
	}
	return fmt.Sprintf("payment failed (%s): %s", e.Failure.Code, e.Failure.Description)
}
