// Copyright (c) 2026. Checkpwn Authors.
// SPDX-License-Identifier: MIT

package cli

import (
	"bufio"
	"context"
	"io"
	"os"
	"runtime"
	"sync/atomic"

	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
	"github.com/thinhdanggroup/executor"

	"github.com/checkpwn/checkpwn/internal/util"
	"github.com/checkpwn/checkpwn/pkg/hibp"
)

var (
	fileCmd = &cobra.Command{
		Use:   "file [PATH]",
		Short: "Check a newline-delimited list of passwords",
		Long: "Check every password in a newline-delimited file against the Pwned Passwords " +
			"database. Checks run concurrently; each one is an independent range query",
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return fileCommand(args[0])
		},
	}
)

func init() {
	fileCmd.Flags().IntVarP(&threads, "threads", "t", 0, "Number of concurrent checks. Defaults to the CPU count")

	rootCmd.AddCommand(fileCmd)
}

func fileCommand(path string) error {
	util.ApplyCliSettings(verbose, profile, pprofPort)

	file, err := os.Open(path)
	if err != nil {
		return err
	}
	defer func(file *os.File) {
		if err = file.Close(); err != nil {
			log.Warn().Err(err).Msgf("error closing password file %s", path)
		}
	}(file)

	passwords, err := readPasswordLines(file)
	if err != nil {
		return err
	}

	if len(passwords) == 0 {
		log.Info().Msgf("No passwords found in %s", path)
		return nil
	}

	workers := threads
	if workers <= 0 {
		workers = runtime.NumCPU()
	}

	// Bounded worker pool, same as the corpus downloader uses.
	checkTasks, err := executor.New(executor.Config{
		ReqPerSeconds: 0,
		QueueSize:     2 * workers,
		NumWorkers:    workers,
	})
	if err != nil {
		return err
	}
	defer checkTasks.Close()

	client := hibp.New(hibp.WithHTTP(util.NewHTTPClient()))

	var breached, failed uint64
	check := func(raw string) {
		password, err := hibp.NewPassword(raw)
		if err != nil {
			atomic.AddUint64(&failed, 1)
			log.Error().Err(err).Msg("skipping invalid password")
			return
		}

		result, err := client.CheckPassword(context.Background(), password)
		if err != nil {
			atomic.AddUint64(&failed, 1)
			log.Error().Err(err).Msg("error checking password")
			return
		}

		if result.Pwned {
			atomic.AddUint64(&breached, 1)
			log.Warn().Msgf("Breached password, seen %s times before", util.FormatCount(result.Count))
		}
	}

	log.Info().Msgf("Checking %d passwords with %d threads", len(passwords), workers)
	for _, raw := range passwords {
		if err = checkTasks.Publish(check, raw); err != nil {
			log.Panic().Err(err).Msgf("there is a programming error here.")
		}
	}

	checkTasks.Wait()

	log.Info().Msgf("Done. %d of %d passwords breached, %d failed",
		atomic.LoadUint64(&breached), len(passwords), atomic.LoadUint64(&failed))
	return nil
}

// readPasswordLines collects the non-empty lines of r. Passwords are
// taken verbatim, no trimming beyond the line split.
func readPasswordLines(r io.Reader) ([]string, error) {
	var lines []string

	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		if line := scanner.Text(); line != "" {
			lines = append(lines, line)
		}
	}

	if err := scanner.Err(); err != nil {
		return nil, err
	}

	return lines, nil
}
