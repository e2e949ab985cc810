package checkout

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"sync"

	"github.com/google/uuid"
	"github.com/kabaddi-academy/academy-pay/checkout/models"
	"github.com/kabaddi-academy/academy-pay/internal/amount"
	"github.com/kabaddi-academy/academy-pay/internal/jsonhttp"
	"github.com/shopspring/decimal"
	"golang.org/x/exp/slog"
)

// Flow runs payment attempts: fetch key, create order, hand off to the hosted
// checkout, then verify. It keeps no per-attempt state, so concurrent calls
// are independent and are not deduplicated.
type Flow struct {
	api    *jsonhttp.Client
	widget Widget
	nav    Navigator
	notify Notifier
	config *Config
	logger *slog.Logger
}

type Option func(*Flow)

// WithHTTPClient sets the client used for backend calls, e.g. one with a
// cookie jar for session credentials.
func WithHTTPClient(hc *http.Client) Option {
	return func(f *Flow) {
		if hc != nil {
			f.api.HTTP = hc
		}
	}
}

func WithNavigator(n Navigator) Option {
	return func(f *Flow) { f.nav = n }
}

func WithNotifier(n Notifier) Option {
	return func(f *Flow) { f.notify = n }
}

func NewFlow(logger *slog.Logger, config *Config, widget Widget, opts ...Option) *Flow {
	if config == nil {
		config = DefaultConfig()
	}

	f := &Flow{
		api:    jsonhttp.New(config.BaseURL, nil),
		widget: widget,
		nav:    nopUI{},
		notify: nopUI{},
		config: config,
		logger: logger.With(slog.String("component", "checkout")),
	}
	for _, opt := range opts {
		opt(f)
	}
	return f
}

// event is the first widget callback of an attempt.
type event struct {
	result  *models.PaymentResult
	failure *models.PaymentFailure
}

// StartPayment charges amt (major units) for the customer in prefill.
//
// Errors before the widget opens (bad amount, key, order) are returned and
// nothing is shown to the customer. Once the widget has opened, the attempt
// always ends in an Outcome which is also passed to the Notifier.
func (f *Flow) StartPayment(ctx context.Context, amt decimal.Decimal, prefill models.Prefill) (Outcome, error) {
	if err := amount.Validate(amt); err != nil {
		return Outcome{}, err
	}

	a := &attempt{id: uuid.New().String()}
	a.logger = f.logger.With(slog.String("attempt", a.id))

	a.to(KeyRequested)
	key, err := f.fetchKey(ctx)
	if err != nil {
		a.logger.Error("fetching key", "err", err)
		return Outcome{}, err
	}

	a.to(OrderRequested)
	order, err := f.createOrder(ctx, amt)
	if err != nil {
		a.logger.Error("creating order", "err", err)
		return Outcome{}, err
	}
	a.logger = a.logger.With(slog.String("order_id", order.ID))

	opts := f.checkoutOptions(key, order, prefill)

	events := make(chan event, 1)
	var once sync.Once
	deliver := func(ev event) {
		once.Do(func() { events <- ev })
	}
	handlers := Handlers{
		OnSuccess: func(res models.PaymentResult) { deliver(event{result: &res}) },
		OnFailure: func(pf models.PaymentFailure) { deliver(event{failure: &pf}) },
		OnDismiss: func() { deliver(event{}) },
	}

	a.to(CheckoutOpen)
	if err := f.widget.Open(ctx, opts, handlers); err != nil {
		return Outcome{}, fmt.Errorf("opening checkout: %w", err)
	}

	var ev event
	select {
	case ev = <-events:
	case <-ctx.Done():
		return Outcome{}, ctx.Err()
	}

	out := Outcome{AttemptID: a.id, OrderID: order.ID}
	switch {
	case ev.result != nil:
		out.PaymentID = ev.result.PaymentID
		a.to(Verifying)
		if err := f.verify(ctx, *ev.result); err != nil {
			a.to(VerifyFailed)
			a.logger.Error("payment verification failed", "err", err)
			out.Kind = VerificationFailed
			out.Err = &VerificationError{Result: *ev.result, Err: err}
		} else {
			a.to(Verified)
			out.Kind = Success
		}
	case ev.failure != nil:
		a.to(CheckoutFailed)
		a.logger.Error("payment failed", slog.String("code", ev.failure.Code), slog.String("description", ev.failure.Description))
		out.Kind = WidgetFailed
		out.PaymentID = ev.failure.PaymentID
		out.Err = &WidgetError{Failure: *ev.failure}
		f.nav.Navigate(f.config.FailurePath)
	default:
		a.to(CheckoutDismissed)
		out.Kind = Dismissed
	}

	f.notify.Notify(out)
	return out, nil
}

func (f *Flow) fetchKey(ctx context.Context) (string, error) {
	var resp models.KeyResponse
	if err := f.api.Get(ctx, f.config.KeyPath, &resp); err != nil {
		return "", &ConfigError{Err: err}
	}
	if resp.Key == "" {
		return "", &ConfigError{Err: &FormatError{Path: f.config.KeyPath, Missing: "key"}}
	}
	return resp.Key, nil
}

func (f *Flow) createOrder(ctx context.Context, amt decimal.Decimal) (*models.Order, error) {
	var order models.Order
	req := models.CreateOrder{Amount: amount.Number(amt)}
	if err := f.api.Post(ctx, f.config.OrderPath, req, &order); err != nil {
		return nil, fmt.Errorf("creating order: %w", err)
	}
	if order.ID == "" {
		return nil, fmt.Errorf("creating order: %w", &FormatError{Path: f.config.OrderPath, Missing: "id"})
	}
	if order.Currency == "" {
		order.Currency = f.config.Currency
	}
	return &order, nil
}

func (f *Flow) checkoutOptions(key string, order *models.Order, prefill models.Prefill) models.CheckoutOptions {
	return models.CheckoutOptions{
		Key:         key,
		Amount:      order.Amount,
		Currency:    order.Currency,
		Name:        f.config.MerchantName,
		Description: f.config.Description,
		OrderID:     order.ID,
		Prefill:     prefill,
	}
}

func (f *Flow) verify(ctx context.Context, res models.PaymentResult) error {
	var ack json.RawMessage
	return f.api.Post(ctx, f.config.VerifyPath, res, &ack)
}

type attempt struct {
	id     string
	state  State
	logger *slog.Logger
}

func (a *attempt) to(s State) {
	a.logger.Info("payment state", slog.String("from", a.state.String()), slog.String("to", s.String()))
	a.state = s
}
