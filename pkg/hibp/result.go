// Copyright (c) 2026. Checkpwn Authors.
// SPDX-License-Identifier: MIT

package hibp

// CheckResult is the outcome of a password check. A failed check is
// an error, never a zero CheckResult.
type CheckResult struct {
	// Pwned reports whether the password appeared in the breach
	// corpus.
	Pwned bool

	// Count is how many times the password was seen across breaches.
	// Zero when Pwned is false.
	Count uint64
}
