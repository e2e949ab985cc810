package jsonhttp

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
)

// snippetLen bounds how much of a non-JSON body is echoed back in errors.
const snippetLen = 200

// Client performs JSON round-trips against a single backend origin.
type Client struct {
	Base string
	HTTP *http.Client
}

// New returns a client for base. A nil hc gets a client without a timeout;
// callers bound calls through the context.
func New(base string, hc *http.Client) *Client {
	if hc == nil {
		hc = &http.Client{}
	}
	return &Client{Base: strings.TrimRight(base, "/"), HTTP: hc}
}

// TransportError reports a JSON response with a non-2xx status.
type TransportError struct {
	Method string
	Path   string
	Status int
	Body   string
}

func (e *TransportError) Error() string {
	return fmt.Sprintf("HTTP %d: %s", e.Status, e.Body)
}

// FormatError reports a response that is not JSON or not the expected shape.
type FormatError struct {
	Path        string
	ContentType string
	Snippet     string
	// Missing names a required field absent from an otherwise valid response.
	Missing string
	Err     error
}

func (e *FormatError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("malformed JSON from %s: %v", e.Path, e.Err)
	}
	if e.Missing != "" {
		return fmt.Sprintf("response from %s has no %s", e.Path, e.Missing)
	}
	return fmt.Sprintf("expected JSON but got: %s", e.Snippet)
}

func (e *FormatError) Unwrap() error { return e.Err }

// Get issues a GET to path and decodes the response into out.
func (c *Client) Get(ctx context.Context, path string, out any) error {
	return c.Do(ctx, http.MethodGet, path, nil, out)
}

// Post encodes in as the request body and decodes the response into out.
func (c *Client) Post(ctx context.Context, path string, in, out any) error {
	return c.Do(ctx, http.MethodPost, path, in, out)
}

// Do runs one request. Content type is checked before status so an HTML
// error page is reported as such rather than as an HTTP failure.
func (c *Client) Do(ctx context.Context, method, path string, in, out any) error {
	var body io.Reader
	if in != nil {
		b, err := json.Marshal(in)
		if err != nil {
			return fmt.Errorf("encoding %s body: %w", path, err)
		}
		body = bytes.NewReader(b)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.Base+path, body)
	if err != nil {
		return fmt.Errorf("building %s %s: %w", method, path, err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")

	resp, err := c.HTTP.Do(req)
	if err != nil {
		return fmt.Errorf("%s %s: %w", method, path, err)
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("reading %s response: %w", path, err)
	}
	text := string(raw)

	ct := strings.ToLower(resp.Header.Get("Content-Type"))
	if !strings.Contains(ct, "application/json") {
		return &FormatError{Path: path, ContentType: ct, Snippet: Snippet(text)}
	}
	if resp.StatusCode/100 != 2 {
		return &TransportError{Method: method, Path: path, Status: resp.StatusCode, Body: text}
	}
	if out == nil {
		return nil
	}
	if err := json.Unmarshal(raw, out); err != nil {
		return &FormatError{Path: path, ContentType: ct, Snippet: Snippet(text), Err: err}
	}
	return nil
}

// Snippet returns at most the first 200 characters of s.
func Snippet(s string) string {
	r := []rune(s)
	if len(r) > snippetLen {
		return string(r[:snippetLen])
	}
	return s
}
