// Copyright (c) 2026. Checkpwn Authors.
// SPDX-License-Identifier: MIT

package api

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/nbutton23/zxcvbn-go"

	"github.com/checkpwn/checkpwn/pkg/hibp"
)

type checkApi struct {
	client *hibp.Client
	apiKey string
}

func (q *checkApi) checkPassword(c *gin.Context) {
	var req passwordRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	password, err := hibp.NewPassword(req.Password)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	result, err := q.client.CheckPassword(c.Request.Context(), password)
	if err != nil {
		c.JSON(http.StatusBadGateway, gin.H{"error": err.Error()})
		return
	}

	entropy := zxcvbn.PasswordStrength(req.Password, nil)
	c.JSON(http.StatusOK, passwordResponse{
		Pwned: result.Pwned,
		Count: result.Count,
		Strength: &passwordStrength{
			CrackTime:        entropy.CrackTime,
			CrackTimeDisplay: entropy.CrackTimeDisplay,
			Score:            entropy.Score,
		},
	})
}

func (q *checkApi) checkAccount(c *gin.Context) {
	if q.apiKey == "" {
		c.JSON(http.StatusServiceUnavailable, gin.H{"error": "account checks require an hibp api key"})
		return
	}

	var req accountRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	breached, err := q.client.CheckAccount(c.Request.Context(), req.Account, q.apiKey)
	if err != nil {
		status := http.StatusBadGateway
		if errors.Is(err, hibp.ErrBadResponse) {
			status = http.StatusBadRequest
		}
		c.JSON(status, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, accountResponse{Breached: breached})
}

// RegisterCheckApi mounts the proxy endpoints. apiKey may be empty,
// which disables the account route at runtime.
func RegisterCheckApi(group *gin.RouterGroup, client *hibp.Client, apiKey string) {
	q := &checkApi{client: client, apiKey: apiKey}

	group.POST("/password", q.checkPassword)
	group.POST("/account", q.checkAccount)
}
