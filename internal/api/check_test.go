// Copyright (c) 2026. Checkpwn Authors.
// SPDX-License-Identifier: MIT

package api

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/h2non/gock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/checkpwn/checkpwn/pkg/hibp"
)

func testRouter(apiKey string) *gin.Engine {
	gin.SetMode(gin.TestMode)
	router := gin.New()

	client := hibp.New(hibp.WithHTTP(&http.Client{Timeout: 2 * time.Second}))
	RegisterCheckApi(router.Group("/v1/check"), client, apiKey)

	return router
}

func postJSON(router *gin.Engine, path, body string) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	router.ServeHTTP(w, req)
	return w
}

func TestCheckPasswordEndpoint(t *testing.T) {
	defer gock.Off()

	gock.New("https://api.pwnedpasswords.com").
		Get("/range/B1B37").
		Times(1).
		Reply(200).
		BodyString("73A05C0ED0176787A4F1574FF0075F7521E:3752262")

	w := postJSON(testRouter(""), "/v1/check/password", `{"password":"qwerty"}`)
	require.Equal(t, http.StatusOK, w.Code)

	var resp passwordResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.True(t, resp.Pwned)
	assert.Equal(t, uint64(3752262), resp.Count)
	require.NotNil(t, resp.Strength)
	assert.LessOrEqual(t, resp.Strength.Score, 4)
}

func TestCheckPasswordEndpointBadRequest(t *testing.T) {
	w := postJSON(testRouter(""), "/v1/check/password", `{}`)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestCheckPasswordEndpointUpstreamDown(t *testing.T) {
	defer gock.Off()

	gock.New("https://api.pwnedpasswords.com").
		Get("/range/B1B37").
		Times(1).
		Reply(503)

	w := postJSON(testRouter(""), "/v1/check/password", `{"password":"qwerty"}`)
	assert.Equal(t, http.StatusBadGateway, w.Code)
}

func TestCheckAccountEndpointNoKey(t *testing.T) {
	w := postJSON(testRouter(""), "/v1/check/account", `{"account":"test@example.com"}`)
	assert.Equal(t, http.StatusServiceUnavailable, w.Code)
}
