// Copyright (c) 2026. Checkpwn Authors.
// SPDX-License-Identifier: MIT

package hibp

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/h2non/gock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/ratelimit"
)

func TestEvaluateAccountStatus(t *testing.T) {
	cases := []struct {
		acc, paste int
		breached   bool
		err        error
	}{
		{200, 200, true, nil},
		{200, 404, true, nil},
		{200, 400, true, nil},
		{404, 200, true, nil},
		{404, 404, false, nil},
		{404, 400, false, nil},
		{401, 401, false, ErrInvalidAPIKey},
		{400, 400, false, ErrBadResponse},
		{400, 404, false, ErrBadResponse},
		{400, 200, false, ErrBadResponse},
	}

	for _, tc := range cases {
		breached, err := evaluateAccountStatus(tc.acc, tc.paste)
		if tc.err != nil {
			assert.ErrorIs(t, err, tc.err, "acc=%d paste=%d", tc.acc, tc.paste)
			continue
		}
		assert.NoError(t, err, "acc=%d paste=%d", tc.acc, tc.paste)
		assert.Equal(t, tc.breached, breached, "acc=%d paste=%d", tc.acc, tc.paste)
	}
}

func TestEvaluateAccountStatusUnexpected(t *testing.T) {
	var statusErr *StatusError

	_, err := evaluateAccountStatus(503, 503)
	require.ErrorAs(t, err, &statusErr)
	assert.Equal(t, 503, statusErr.Code)

	_, err = evaluateAccountStatus(404, 503)
	require.ErrorAs(t, err, &statusErr)
	assert.Equal(t, 503, statusErr.Code)
}

func TestCheckAccountEmptyInput(t *testing.T) {
	client := testClient()

	_, err := client.CheckAccount(context.Background(), "", "key")
	assert.ErrorIs(t, err, ErrEmptyInput)

	_, err = client.CheckAccount(context.Background(), "test@example.com", "")
	assert.ErrorIs(t, err, ErrEmptyInput)
}

func TestCheckAccountBreached(t *testing.T) {
	defer gock.Off()

	gock.New("https://haveibeenpwned.com").
		Get("/api/v3/breachedaccount/test@example.com").
		MatchHeader("hibp-api-key", "secret").
		Times(1).
		Reply(200).
		BodyString(`[{"Name":"Adobe"}]`)

	gock.New("https://haveibeenpwned.com").
		Get("/api/v3/pasteaccount/test@example.com").
		MatchHeader("hibp-api-key", "secret").
		Times(1).
		Reply(404)

	breached, err := testClient().CheckAccount(context.Background(), "test@example.com", "secret")
	assert.NoError(t, err)
	assert.True(t, breached)
}

func TestCheckAccountNotBreached(t *testing.T) {
	defer gock.Off()

	gock.New("https://haveibeenpwned.com").
		Get("/api/v3/breachedaccount/someuser").
		Times(1).
		Reply(404)

	// The paste API rejects plain usernames.
	gock.New("https://haveibeenpwned.com").
		Get("/api/v3/pasteaccount/someuser").
		Times(1).
		Reply(http.StatusBadRequest)

	breached, err := testClient().CheckAccount(context.Background(), "someuser", "secret")
	assert.NoError(t, err)
	assert.False(t, breached)
}

// Account names go through url.PathEscape before they reach the wire.
func TestCheckAccountEscaped(t *testing.T) {
	var paths []string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		paths = append(paths, r.URL.EscapedPath())
		w.WriteHeader(http.StatusNotFound)
	}))
	defer srv.Close()

	client := New(
		WithHTTP(srv.Client()),
		WithAccountBaseURL(srv.URL),
	)
	client.limiter = ratelimit.NewUnlimited()

	breached, err := client.CheckAccount(context.Background(), "user name/slash", "secret")
	assert.NoError(t, err)
	assert.False(t, breached)

	require.Len(t, paths, 2)
	assert.Equal(t, "/breachedaccount/user%20name%2Fslash", paths[0])
	assert.Equal(t, "/pasteaccount/user%20name%2Fslash", paths[1])
}

func TestCheckAccountInvalidKey(t *testing.T) {
	defer gock.Off()

	gock.New("https://haveibeenpwned.com").
		Get("/api/v3/breachedaccount/test@example.com").
		Times(1).
		Reply(401)

	gock.New("https://haveibeenpwned.com").
		Get("/api/v3/pasteaccount/test@example.com").
		Times(1).
		Reply(401)

	_, err := testClient().CheckAccount(context.Background(), "test@example.com", "badkey")
	assert.ErrorIs(t, err, ErrInvalidAPIKey)
}
