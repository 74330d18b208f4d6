// Copyright (c) 2026. Checkpwn Authors.
// SPDX-License-Identifier: MIT

package hibp

import (
	"errors"
	"fmt"
)

var (
	// ErrEmptyInput is returned for caller-supplied input that must
	// not be empty: passwords, account names, API keys.
	ErrEmptyInput = errors.New("empty input that should not be empty")

	// ErrInvalidAPIKey is returned when HIBP rejects the API key.
	ErrInvalidAPIKey = errors.New("hibp deemed the api key invalid")

	// ErrBadResponse is returned when HIBP rejects the account lookup
	// itself, usually because the account is not a valid search term.
	ErrBadResponse = errors.New("bad response from hibp, make sure the account is valid")
)

// StatusError reports a response status the client does not know how
// to interpret. The request completed; the server answered something
// unexpected.
type StatusError struct {
	Code int
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("unexpected status code %d from hibp", e.Code)
}

// ParseError reports a range response line that does not match the
// SUFFIX:COUNT record format.
type ParseError struct {
	Line string
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("malformed range response line %q", e.Line)
}

// RequestError wraps a transport failure: DNS, connect, timeout and
// the like. The exchange never completed, so no status is available.
type RequestError struct {
	Err error
}

func (e *RequestError) Error() string {
	return fmt.Sprintf("request to hibp failed: %v", e.Err)
}

func (e *RequestError) Unwrap() error {
	return e.Err
}
