// Copyright (c) 2026. Checkpwn Authors.
// SPDX-License-Identifier: MIT

package cli

import (
	"github.com/spf13/cobra"
)

var (
	rootCmd = &cobra.Command{
		Use:   "checkpwn [COMMAND] [OPTIONS]",
		Short: "Check passwords and accounts against haveibeenpwned.com",
		Long: "Check passwords and accounts against the haveibeenpwned.com breach databases. " +
			"Password checks use the k-anonymity range API, so only the first five characters " +
			"of the password hash are ever sent over the network",
	}
)

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Print more information on the processing")
	rootCmd.PersistentFlags().BoolVar(&profile, "profile", false, "Enable the profiling server (pprof) when running commands")
	rootCmd.PersistentFlags().Uint16Var(&pprofPort, "profile-port", 6060, "The port to use for the pprof server. Only used if the profile flag is set")
}

func Execute() error {
	return rootCmd.Execute()
}
