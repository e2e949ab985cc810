// Package ledger appends payment rows to the spreadsheet-backed webhook.
package ledger

import (
	"context"
	"fmt"
	"net/http"
	"net/url"

	"github.com/kabaddi-academy/academy-pay/internal/jsonhttp"
	"golang.org/x/exp/slog"
)

// Row is one spreadsheet line. The webhook adds its own timestamp.
type Row struct {
	Name      string `json:"name"`
	Email     string `json:"email"`
	Phone     string `json:"phone"`
	Amount    string `json:"amount"`
	PaymentID string `json:"payment_id"`
}

type reply struct {
	Status  string `json:"status"`
	Message string `json:"message,omitempty"`
}

// RejectedError is a webhook reply of {"status":"error"}.
type RejectedError struct {
	Message string
}

func (e *RejectedError) Error() string {
	return fmt.Sprintf("ledger rejected row: %s", e.Message)
}

type Client struct {
	api    *jsonhttp.Client
	path   string
	logger *slog.Logger
}

// New returns a client posting to the full webhook URL, e.g. an Apps Script
// /exec deployment.
func New(logger *slog.Logger, webhookURL string, hc *http.Client) (*Client, error) {
	u, err := url.Parse(webhookURL)
	if err != nil {
		return nil, fmt.Errorf("parsing ledger url: %w", err)
	}
	if u.Scheme == "" || u.Host == "" {
		return nil, fmt.Errorf("ledger url %q must be absolute", webhookURL)
	}
	path := u.EscapedPath()
	if u.RawQuery != "" {
		path += "?" + u.RawQuery
	}
	if path == "" {
		path = "/"
	}

	return &Client{
		api:    jsonhttp.New(u.Scheme+"://"+u.Host, hc),
		path:   path,
		logger: logger.With(slog.String("component", "ledger")),
	}, nil
}

// Append writes row to the sheet.
func (c *Client) Append(ctx context.Context, row Row) error {
	var r reply
	if err := c.api.Post(ctx, c.path, row, &r); err != nil {
		return fmt.Errorf("appending ledger row: %w", err)
	}
	switch r.Status {
	case "success":
		c.logger.Info("ledger row appended", slog.String("payment_id", row.PaymentID))
		return nil
	case "error":
		return &RejectedError{Message: r.Message}
	}
	return fmt.Errorf("appending ledger row: %w", &jsonhttp.FormatError{Path: c.path, Missing: "status"})
}
