// Copyright (c) 2026. Checkpwn Authors.
// SPDX-License-Identifier: MIT

package cli

import (
	"context"
	"errors"
	"os"

	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"github.com/checkpwn/checkpwn/internal/util"
	"github.com/checkpwn/checkpwn/pkg/hibp"
)

var (
	accCmd = &cobra.Command{
		Use:   "acc [ACCOUNT]",
		Short: "Check an account against the breach and paste databases",
		Long: "Check an email address or username against the haveibeenpwned.com breach and " +
			"paste databases. Requires an HIBP API key, from the --api-key flag or the " +
			"HIBP_API_KEY environment variable",
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return accCommand(args[0])
		},
	}
)

func init() {
	accCmd.Flags().StringVarP(&apiKey, "api-key", "k", "", "HIBP API key. Defaults to the HIBP_API_KEY environment variable")

	rootCmd.AddCommand(accCmd)
}

func accCommand(account string) error {
	util.ApplyCliSettings(verbose, profile, pprofPort)

	key := apiKey
	if key == "" {
		key = os.Getenv("HIBP_API_KEY")
	}
	if key == "" {
		return errors.New("an HIBP API key is required, use --api-key or set HIBP_API_KEY")
	}

	client := hibp.New(hibp.WithHTTP(util.NewHTTPClient()))

	log.Info().Msgf("Checking account %s. The authenticated API is rate limited, this can take a few seconds", account)
	breached, err := client.CheckAccount(context.Background(), account, key)
	if err != nil {
		return err
	}

	if breached {
		log.Warn().Msgf("Account %s is present in at least one breach or paste", account)
	} else {
		log.Info().Msgf("Account %s is not present in any known breach or paste", account)
	}

	return nil
}
