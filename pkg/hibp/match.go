// Copyright (c) 2026. Checkpwn Authors.
// SPDX-License-Identifier: MIT

package hibp

import (
	"strconv"
	"strings"
)

// searchRange scans a range response body for suffix and recovers the
// breach count from the matching record. Records are SUFFIX:COUNT,
// one per line.
//
// Parsing is strict: the first line that does not split into exactly
// two colon-delimited fields with a valid unsigned count fails the
// whole scan with a ParseError, even when a later line would have
// matched. Padded entries always carry a count of zero and are
// discarded before matching.
func searchRange(body, suffix string) (CheckResult, error) {
	for _, line := range strings.Split(body, "\n") {
		line = strings.TrimSuffix(line, "\r")
		if line == "" {
			continue
		}

		entry, count, found := strings.Cut(line, ":")
		if !found || strings.Contains(count, ":") {
			return CheckResult{}, &ParseError{Line: line}
		}

		n, err := strconv.ParseUint(count, 10, 64)
		if err != nil {
			return CheckResult{}, &ParseError{Line: line}
		}

		if n == 0 {
			// Padding entry.
			continue
		}

		if strings.EqualFold(entry, suffix) {
			return CheckResult{Pwned: true, Count: n}, nil
		}
	}

	return CheckResult{}, nil
}
