package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
)

// TokenSource supplies the bearer token attached to authenticated calls.
// An empty token means the call goes out unauthenticated.
type TokenSource interface {
	AccessToken() string
}

// Client performs HTTP calls against the healthcare backend. Every call is a
// single attempt: no retry, no backoff, no per-request timeout. Timeouts, if
// any, belong to the caller's context.
type Client struct {
	base   *url.URL
	http   *http.Client
	tokens TokenSource
	log    zerolog.Logger
}

type ClientConfig struct {
	BaseURL string
	Tokens  TokenSource
	Logger  zerolog.Logger
	// HTTPClient is optional and defaults to http.DefaultClient.
	HTTPClient *http.Client
}

func NewClient(cfg ClientConfig) (*Client, error) {
	base, err := url.Parse(strings.TrimRight(cfg.BaseURL, "/"))
	if err != nil {
		return nil, fmt.Errorf("parse base URL: %w", err)
	}
	if cfg.HTTPClient == nil {
		cfg.HTTPClient = http.DefaultClient
	}
	return &Client{
		base:   base,
		http:   cfg.HTTPClient,
		tokens: cfg.Tokens,
		log:    cfg.Logger,
	}, nil
}

// BaseURL returns the configured backend base URL.
func (c *Client) BaseURL() string {
	return c.base.String()
}

func (c *Client) Get(ctx context.Context, path string, query url.Values) (json.RawMessage, error) {
	return c.do(ctx, http.MethodGet, path, query, nil)
}

func (c *Client) Post(ctx context.Context, path string, body any) (json.RawMessage, error) {
	return c.do(ctx, http.MethodPost, path, nil, body)
}

func (c *Client) Patch(ctx context.Context, path string, body any) (json.RawMessage, error) {
	return c.do(ctx, http.MethodPatch, path, nil, body)
}

func (c *Client) Delete(ctx context.Context, path string) error {
	_, err := c.do(ctx, http.MethodDelete, path, nil, nil)
	return err
}

func (c *Client) do(ctx context.Context, method, path string, query url.Values, body any) (json.RawMessage, error) {
	u := *c.base
	u.Path = strings.TrimRight(u.Path, "/") + "/" + strings.TrimLeft(path, "/")
	if len(query) > 0 {
		u.RawQuery = query.Encode()
	}

	var reader io.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		if err != nil {
			return nil, fmt.Errorf("encode request body: %w", err)
		}
		reader = bytes.NewReader(payload)
	}

	req, err := http.NewRequestWithContext(ctx, method, u.String(), reader)
	if err != nil {
		return nil, fmt.Errorf("build request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	if tok := c.tokens.AccessToken(); tok != "" {
		req.Header.Set("Authorization", "Bearer "+tok)
	}
	rid := uuid.NewString()
	req.Header.Set("X-Request-ID", rid)

	start := time.Now()
	resp, err := c.http.Do(req)
	if err != nil {
		c.log.Error().Err(err).
			Str("request_id", rid).
			Str("method", method).
			Str("path", path).
			Msg("request failed")
		return nil, fmt.Errorf("%s %s: %w", method, path, err)
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("read response body: %w", err)
	}

	c.log.Debug().
		Str("request_id", rid).
		Str("method", method).
		Str("path", path).
		Int("status", resp.StatusCode).
		Dur("latency", time.Since(start)).
		Msg("request")

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, newStatusError(resp.StatusCode, raw)
	}
	return raw, nil
}

// newStatusError converts a non-2xx response into an *Error. A parseable
// {message} body is forwarded verbatim; anything else degrades to a generic
// network failure message.
func newStatusError(status int, body []byte) error {
	var eb struct {
		Message string `json:"message"`
	}
	if err := json.Unmarshal(body, &eb); err == nil && eb.Message != "" {
		return &Error{Status: status, Message: eb.Message}
	}
	return &Error{Status: status, Message: "network response was not ok"}
}
