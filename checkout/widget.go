package checkout

import (
	"context"

	"github.com/kabaddi-academy/academy-pay/checkout/models"
)

// Widget is the hosted checkout. Open presents it and reports back through
// exactly one of the handlers, either before returning or later from another
// goroutine. Handlers invoked after the first are ignored.
type Widget interface {
	Open(ctx context.Context, opts models.CheckoutOptions, h Handlers) error
}

type Handlers struct {
	OnSuccess func(models.PaymentResult)
	// OnFailure receives the payment.failed event.
	OnFailure func(models.PaymentFailure)
	// OnDismiss fires when the customer closes the widget without paying.
	OnDismiss func()
}

// Navigator moves the customer to another page of the site.
type Navigator interface {
	Navigate(path string)
}

// Notifier presents a finished attempt to the customer.
type Notifier interface {
	Notify(Outcome)
}

// NavigatorFunc adapts a function to Navigator.
type NavigatorFunc func(path string)

func (f NavigatorFunc) Navigate(path string) { f(path) }

// NotifierFunc adapts a function to Notifier.
type NotifierFunc func(Outcome)

func (f NotifierFunc) Notify(o Outcome) { f(o) }

type nopUI struct{}

func (nopUI) Navigate(string) {}
func (nopUI) Notify(Outcome)  {}
