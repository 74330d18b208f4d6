// Copyright (c) 2026. Checkpwn Authors.
// SPDX-License-Identifier: MIT

package api

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadConfigFromEnv(t *testing.T) {
	t.Setenv("PORT", "3100")
	t.Setenv("SELF_TLS", "true")
	t.Setenv("HIBP_API_KEY", "secret")
	t.Setenv("DEBUG", "true")

	cfg, err := LoadConfig()
	require.NoError(t, err)

	assert.Equal(t, "3100", cfg.Port)
	assert.True(t, cfg.SelfTLS)
	assert.Equal(t, "secret", cfg.HibpApiKey)
	assert.True(t, cfg.Debug)
	assert.Empty(t, cfg.TLSCert)
	assert.Empty(t, cfg.TLSKey)
}
