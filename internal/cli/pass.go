// Copyright (c) 2026. Checkpwn Authors.
// SPDX-License-Identifier: MIT

package cli

import (
	"context"
	"errors"

	"github.com/manifoldco/promptui"
	"github.com/nbutton23/zxcvbn-go"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"github.com/checkpwn/checkpwn/internal/util"
	"github.com/checkpwn/checkpwn/pkg/hibp"
)

var (
	passCmd = &cobra.Command{
		Use:   "pass [PASSWORD]",
		Short: "Check a password against the Pwned Passwords database",
		Args: func(cmd *cobra.Command, args []string) error {
			if !interactive {
				if err := cobra.MinimumNArgs(1)(cmd, args); err != nil {
					return err
				}
			}

			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			if interactive {
				return passCommand("")
			}
			return passCommand(args[0])
		},
	}
)

func init() {
	passCmd.Flags().BoolVarP(&interactive, "interactive", "n", false, "Interactive mode. Prompts for passwords with masked input")

	rootCmd.AddCommand(passCmd)
}

func passCommand(password string) error {
	util.ApplyCliSettings(verbose, profile, pprofPort)

	client := hibp.New(hibp.WithHTTP(util.NewHTTPClient()))

	if !interactive {
		return checkPassword(client, password)
	}

	prompt := promptui.Prompt{
		Label: "Password",
		Mask:  '*',
		Validate: func(input string) error {
			if len(input) == 0 {
				return errors.New("please enter a valid password")
			}
			return nil
		},
	}

	log.Info().Msgf("Running interactive session. ^C to exit")
	if err := runInteractiveSession(prompt, client); err != nil {
		if err.Error() == "^C" || err.Error() == "^D" {
			log.Info().Msgf("Goodbye")
		} else {
			log.Error().Err(err).Msgf("Error during interactive session")
		}
		// No return to avoid the default cobra error message
		return nil
	}

	return nil
}

func runInteractiveSession(prompt promptui.Prompt, client *hibp.Client) error {
	for {
		result, err := prompt.Run()
		if err != nil {
			return err
		}

		if err = checkPassword(client, result); err != nil {
			log.Error().Err(err).Msg("Error during check")
		}
	}
}

func checkPassword(client *hibp.Client, raw string) error {
	password, err := hibp.NewPassword(raw)
	if err != nil {
		return err
	}

	result, err := client.CheckPassword(context.Background(), password)
	if err != nil {
		return err
	}

	reportResult(raw, result)
	return nil
}

func reportResult(raw string, result hibp.CheckResult) {
	if result.Pwned {
		log.Warn().Msgf("Password is breached. Seen %s times before", util.FormatCount(result.Count))
	} else {
		log.Info().Msgf("Password is not present in any known breach")
	}

	entropy := zxcvbn.PasswordStrength(raw, nil)
	log.Info().Msgf("Estimated crack time: %s (score %d of 4)", entropy.CrackTimeDisplay, entropy.Score)
}
