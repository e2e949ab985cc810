package main

import (
	"bufio"
	"context"
	"io"
	"strings"
	"testing"

	"github.com/kabaddi-academy/academy-pay/checkout"
	"github.com/kabaddi-academy/academy-pay/checkout/models"
)

func TestTerminalWidget(t *testing.T) {
	opts := models.CheckoutOptions{Key: "k1", Amount: 50000, Currency: "INR", OrderID: "order_1"}

	cases := []struct {
		input string
		want  string
	}{
		{"p\npay_1\nsig\n", "success:pay_1:order_1:sig"},
		{"f\ncard declined\n", "failure:card declined"},
		{"d\n", "dismiss"},
		{"\n", "dismiss"},
	}
	for _, c := range cases {
		var got string
		h := checkout.Handlers{
			OnSuccess: func(r models.PaymentResult) { got = "success:" + r.PaymentID + ":" + r.OrderID + ":" + r.Signature },
			OnFailure: func(f models.PaymentFailure) { got = "failure:" + f.Description },
			OnDismiss: func() { got = "dismiss" },
		}
		w := &terminalWidget{in: bufio.NewReader(strings.NewReader(c.input)), out: io.Discard}
		if err := w.Open(context.Background(), opts, h); err != nil {
			t.Fatalf("Open(%q) err=%v", c.input, err)
		}
		if got != c.want {
			t.Fatalf("Open(%q) = %q want %q", c.input, got, c.want)
		}
	}
}

func TestTerminalWidget_ClosedInput(t *testing.T) {
	w := &terminalWidget{in: bufio.NewReader(strings.NewReader("")), out: io.Discard}
	err := w.Open(context.Background(), models.CheckoutOptions{}, checkout.Handlers{})
	if err == nil {
		t.Fatal("expected error on closed input")
	}
}
