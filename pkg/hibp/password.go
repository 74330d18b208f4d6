// Copyright (c) 2026. Checkpwn Authors.
// SPDX-License-Identifier: MIT

// Package hibp checks passwords and accounts against the
// haveibeenpwned.com breach databases. Password checks use the
// k-anonymity range API: only the first five characters of the SHA-1
// digest ever leave the process.
package hibp

import (
	"crypto/sha1"
	"encoding/hex"
	"strings"
)

// Digest layout. The range API works on uppercase hex SHA-1 hashes.
const (
	// digestLen is the hex-encoded length of a full SHA-1 digest.
	digestLen = sha1.Size * 2

	// PrefixLen is the length of the digest prefix sent to the range
	// API. Nothing beyond this many characters is ever transmitted.
	PrefixLen = 5

	// suffixLen is the length of the digest remainder kept locally.
	suffixLen = digestLen - PrefixLen
)

// Password holds the uppercase hex SHA-1 digest of a candidate
// password. The raw secret is hashed at construction and not retained.
// Formatted output is redacted so the digest cannot leak through logs.
type Password struct {
	hash string
}

// NewPassword hashes raw and wraps it. Returns ErrEmptyInput when raw
// is the empty string. No normalization is applied; the bytes are
// hashed exactly as given, whitespace included.
func NewPassword(raw string) (*Password, error) {
	if raw == "" {
		return nil, ErrEmptyInput
	}

	return &Password{hash: hashPassword(raw)}, nil
}

// Prefix returns the five character range prefix, the only part of
// the digest that is ever sent to the network.
func (p *Password) Prefix() string {
	return p.hash[:PrefixLen]
}

// suffix is the remaining 35 characters. Package private so callers
// cannot accidentally send it anywhere.
func (p *Password) suffix() string {
	return p.hash[PrefixLen:]
}

func (p *Password) String() string {
	return "Password{hash: ***OMITTED***}"
}

// GoString keeps %#v output redacted too.
func (p *Password) GoString() string {
	return p.String()
}

// hashPassword returns the uppercase hex SHA-1 of raw. Uppercase
// matches the casing of the range API responses.
func hashPassword(raw string) string {
	sum := sha1.Sum([]byte(raw))
	return strings.ToUpper(hex.EncodeToString(sum[:]))
}
