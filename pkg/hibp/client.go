// Copyright (c) 2026. Checkpwn Authors.
// SPDX-License-Identifier: MIT

package hibp

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"go.uber.org/ratelimit"
)

const (
	defaultPasswordBaseURL = "https://api.pwnedpasswords.com/range"
	defaultAccountBaseURL  = "https://haveibeenpwned.com/api/v3"

	// DefaultUserAgent identifies the library to HIBP, which rejects
	// requests without a user agent.
	DefaultUserAgent = "checkpwn - go utility for hibp"
)

// Client queries the HIBP APIs. It owns request construction and
// response interpretation only; timeouts, retries and pooling belong
// to the injected http.Client. A Client holds no per-check state and
// is safe for concurrent use.
type Client struct {
	http        *http.Client
	passwordURL string
	accountURL  string
	userAgent   string

	// HIBP allows one authenticated request per 1500ms. Only the
	// account endpoints are paced; the range API is unthrottled.
	limiter ratelimit.Limiter
}

// Option configures a Client.
type Option func(*Client)

// WithHTTP sets the transport collaborator used for every request.
func WithHTTP(client *http.Client) Option {
	return func(c *Client) {
		c.http = client
	}
}

// WithPasswordBaseURL overrides the Pwned Passwords range endpoint.
func WithPasswordBaseURL(base string) Option {
	return func(c *Client) {
		c.passwordURL = strings.TrimRight(base, "/")
	}
}

// WithAccountBaseURL overrides the authenticated account endpoint.
func WithAccountBaseURL(base string) Option {
	return func(c *Client) {
		c.accountURL = strings.TrimRight(base, "/")
	}
}

// WithUserAgent overrides the identification header sent to HIBP.
func WithUserAgent(agent string) Option {
	return func(c *Client) {
		c.userAgent = agent
	}
}

// New builds a Client for the public HIBP endpoints. Without options
// it uses http.DefaultClient; pass WithHTTP to own timeouts and
// retries.
func New(opts ...Option) *Client {
	c := &Client{
		http:        http.DefaultClient,
		passwordURL: defaultPasswordBaseURL,
		accountURL:  defaultAccountBaseURL,
		userAgent:   DefaultUserAgent,
		limiter:     ratelimit.New(2, ratelimit.Per(3*time.Second)),
	}

	for _, opt := range opts {
		opt(c)
	}

	return c
}

// CheckPassword reports whether password appears in the Pwned
// Passwords corpus and how many times it was seen. Exactly one
// request is made per call and no retries are attempted here.
// Cancellation comes from ctx and the transport.
func (c *Client) CheckPassword(ctx context.Context, password *Password) (CheckResult, error) {
	if password == nil {
		return CheckResult{}, ErrEmptyInput
	}

	body, err := c.fetchRange(ctx, password.Prefix())
	if err != nil {
		return CheckResult{}, err
	}

	return searchRange(body, password.suffix())
}

// fetchRange GETs every digest suffix sharing prefix and returns the
// raw response body.
func (c *Client) fetchRange(ctx context.Context, prefix string) (string, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet,
		fmt.Sprintf("%s/%s", c.passwordURL, prefix), nil)
	if err != nil {
		return "", &RequestError{Err: err}
	}

	req.Header.Set("User-Agent", c.userAgent)
	// Pads the response with fake zero-count entries so its size does
	// not reveal how many real suffixes share the prefix.
	req.Header.Set("Add-Padding", "true")

	res, err := c.http.Do(req)
	if err != nil {
		return "", &RequestError{Err: err}
	}
	defer res.Body.Close()

	if res.StatusCode != http.StatusOK {
		return "", &StatusError{Code: res.StatusCode}
	}

	body, err := io.ReadAll(res.Body)
	if err != nil {
		return "", &RequestError{Err: err}
	}

	return string(body), nil
}
