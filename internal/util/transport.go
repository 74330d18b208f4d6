// Copyright (c) 2026. Checkpwn Authors.
// SPDX-License-Identifier: MIT

package util

import (
	"crypto/tls"
	"net"
	"net/http"
	"runtime"
	"time"

	"github.com/hashicorp/go-retryablehttp"
)

// NewHTTPClient builds the transport collaborator injected into the
// hibp client. Retries and timeouts live here; the library itself
// performs exactly one logical request per check.
func NewHTTPClient() *http.Client {
	client := retryablehttp.NewClient()
	// Too much garbage in the logs otherwise.
	client.Logger = nil

	// Retry a few times on protocol errors. Anything else is just
	// reported to the caller.
	client.RetryMax = 3

	client.HTTPClient = &http.Client{
		Timeout: 30 * time.Second,
		Transport: &http.Transport{
			TLSClientConfig: &tls.Config{
				MinVersion: tls.VersionTLS12,
			},
			DialContext: (&net.Dialer{
				Timeout:   10 * time.Second,
				KeepAlive: 30 * time.Second,
			}).DialContext,
			MaxIdleConns:          100,
			IdleConnTimeout:       10 * time.Second,
			TLSHandshakeTimeout:   10 * time.Second,
			ExpectContinueTimeout: 1 * time.Second,
			MaxIdleConnsPerHost:   runtime.GOMAXPROCS(0) + 1,
		},
	}

	return client.StandardClient()
}
