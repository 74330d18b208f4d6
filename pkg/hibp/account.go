// Copyright (c) 2026. Checkpwn Authors.
// SPDX-License-Identifier: MIT

package hibp

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
)

// Account database routes. Both are consulted on every account check.
const (
	routeBreachedAccount = "breachedaccount"
	routePasteAccount    = "pasteaccount"
)

// CheckAccount reports whether account appears in the breached
// account database or the paste database. Requests are paced to
// HIBP's one-per-1500ms policy for authenticated endpoints, so a call
// may block on the limiter before each of the two lookups.
func (c *Client) CheckAccount(ctx context.Context, account, apiKey string) (bool, error) {
	if account == "" || apiKey == "" {
		return false, ErrEmptyInput
	}

	accStatus, err := c.fetchAccountStatus(ctx, routeBreachedAccount, account, apiKey)
	if err != nil {
		return false, err
	}

	pasteStatus, err := c.fetchAccountStatus(ctx, routePasteAccount, account, apiKey)
	if err != nil {
		return false, err
	}

	return evaluateAccountStatus(accStatus, pasteStatus)
}

// fetchAccountStatus performs one authenticated lookup. Only the
// status code matters for the account databases; the body is
// discarded unread.
func (c *Client) fetchAccountStatus(ctx context.Context, route, account, apiKey string) (int, error) {
	c.limiter.Take()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet,
		fmt.Sprintf("%s/%s/%s", c.accountURL, route, url.PathEscape(account)), nil)
	if err != nil {
		return 0, &RequestError{Err: err}
	}

	req.Header.Set("User-Agent", c.userAgent)
	req.Header.Set("hibp-api-key", apiKey)

	res, err := c.http.Do(req)
	if err != nil {
		return 0, &RequestError{Err: err}
	}
	res.Body.Close()

	return res.StatusCode, nil
}

// evaluateAccountStatus combines the statuses of the account and
// paste lookups. The paste API returns 400 for plain usernames that
// the account API accepts, so a 400 there still counts as not
// breached when the account database came back empty.
func evaluateAccountStatus(accStatus, pasteStatus int) (bool, error) {
	switch accStatus {
	case http.StatusOK:
		return true, nil
	case http.StatusNotFound:
		switch pasteStatus {
		case http.StatusOK:
			return true, nil
		case http.StatusNotFound, http.StatusBadRequest:
			return false, nil
		default:
			return false, &StatusError{Code: pasteStatus}
		}
	case http.StatusUnauthorized:
		return false, ErrInvalidAPIKey
	case http.StatusBadRequest:
		return false, ErrBadResponse
	default:
		return false, &StatusError{Code: accStatus}
	}
}
