package main

import (
	"bufio"
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"net/http"
	"net/http/cookiejar"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/kabaddi-academy/academy-pay/checkout"
	"github.com/kabaddi-academy/academy-pay/checkout/models"
	"github.com/kabaddi-academy/academy-pay/internal/amount"
	"github.com/kabaddi-academy/academy-pay/ledger"
	"golang.org/x/exp/slog"
)

var (
	flagBackend = flag.String("backend", "http://127.0.0.1:5001", "payment backend base URL")
	flagAmount  = flag.String("amount", "", "amount in rupees, e.g. 500 or 499.50")
	flagName    = flag.String("name", "", "customer name for prefill")
	flagEmail   = flag.String("email", "", "customer email for prefill")
	flagContact = flag.String("contact", "", "customer phone for prefill")
	flagLedger  = flag.String("ledger", "", "spreadsheet webhook URL; appends a row after a verified payment")
	flagVerbose = flag.Bool("verbose", false, "log every payment state transition")
)

func main() {
	flag.Parse()
	amt, err := amount.Parse(*flagAmount)
	if err != nil {
		fail("-amount: %v", err)
	}

	level := slog.LevelWarn
	if *flagVerbose {
		level = slog.LevelInfo
	}
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))

	jar, _ := cookiejar.New(nil)
	hc := &http.Client{Jar: jar}

	cfg := checkout.DefaultConfig()
	cfg.BaseURL = strings.TrimRight(*flagBackend, "/")

	in := bufio.NewReader(os.Stdin)
	flow := checkout.NewFlow(logger, cfg, &terminalWidget{in: in, out: os.Stdout},
		checkout.WithHTTPClient(hc),
		checkout.WithNavigator(checkout.NavigatorFunc(func(path string) {
			fmt.Printf("-> redirecting to %s%s\n", cfg.BaseURL, path)
		})),
		checkout.WithNotifier(checkout.NotifierFunc(func(o checkout.Outcome) {
			fmt.Println(o.Message())
		})),
	)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	prefill := models.Prefill{Name: *flagName, Email: *flagEmail, Contact: *flagContact}
	out, err := flow.StartPayment(ctx, amt, prefill)
	if err != nil {
		var cerr *checkout.ConfigError
		if errors.As(err, &cerr) {
			fail("payment backend is misconfigured: %v", err)
		}
		fail("%v", err)
	}

	if out.Confirmed() && *flagLedger != "" {
		lc, err := ledger.New(logger, *flagLedger, &http.Client{Timeout: 15 * time.Second})
		must(err)
		row := ledger.Row{
			Name:      prefill.Name,
			Email:     prefill.Email,
			Phone:     prefill.Contact,
			Amount:    amt.String(),
			PaymentID: out.PaymentID,
		}
		must(lc.Append(ctx, row))
		fmt.Println("Recorded in admissions sheet.")
	}
	if !out.Confirmed() {
		os.Exit(2)
	}
}

// terminalWidget stands in for the hosted checkout: it shows the order and
// asks the operator how the payment went.
type terminalWidget struct {
	in  *bufio.Reader
	out io.Writer
}

func (w *terminalWidget) Open(ctx context.Context, opts models.CheckoutOptions, h checkout.Handlers) error {
	fmt.Fprintf(w.out, "%s - %s\n", opts.Name, opts.Description)
	fmt.Fprintf(w.out, "order %s: %s (key %s)\n", opts.OrderID, amount.Format(opts.Amount, opts.Currency), opts.Key)
	if opts.Prefill.Name != "" {
		fmt.Fprintf(w.out, "payer: %s <%s> %s\n", opts.Prefill.Name, opts.Prefill.Email, opts.Prefill.Contact)
	}

	choice, err := w.ask("[p]aid / [f]ailed / [d]ismiss: ")
	if err != nil {
		return err
	}
	switch strings.ToLower(choice) {
	case "p", "paid":
		paymentID, err := w.ask("payment id: ")
		if err != nil {
			return err
		}
		signature, err := w.ask("signature: ")
		if err != nil {
			return err
		}
		h.OnSuccess(models.PaymentResult{PaymentID: paymentID, OrderID: opts.OrderID, Signature: signature})
	case "f", "failed":
		reason, err := w.ask("failure reason: ")
		if err != nil {
			return err
		}
		h.OnFailure(models.PaymentFailure{Code: "BAD_REQUEST_ERROR", Description: reason, OrderID: opts.OrderID})
	default:
		h.OnDismiss()
	}
	return nil
}

func (w *terminalWidget) ask(prompt string) (string, error) {
	fmt.Fprint(w.out, prompt)
	line, err := w.in.ReadString('\n')
	if err != nil && !(errors.Is(err, io.EOF) && line != "") {
		return "", fmt.Errorf("reading answer: %w", err)
	}
	return strings.TrimSpace(line), nil
}

func must(err error) {
	if err != nil {
		fail("%v", err)
	}
}

func fail(format string, a ...any) {
	fmt.Fprintf(os.Stderr, format+"\n", a...)
	os.Exit(1)
}
