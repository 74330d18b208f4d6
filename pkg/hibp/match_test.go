// Copyright (c) 2026. Checkpwn Authors.
// SPDX-License-Identifier: MIT

package hibp

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

// Range bodies trimmed from real B1B37 responses.
const (
	qwertySuffix = "73A05C0ED0176787A4F1574FF0075F7521E"

	rangeWithMatch = "73678F196DE938F721CD408ED190330F5DB:3\r\n" +
		"7377BA15B8D5E12FCCBA32B074D45503D67:2\r\n" +
		"73A05C0ED0176787A4F1574FF0075F7521E:3752262\r\n" +
		"748186F058DA83745B80E70B66D36B216A4:4"

	rangeWithoutMatch = "7EC6529B5FFD62972B78F961DA68CCC1B0E:1\r\n" +
		"7ECD0E2C0152DB98585B54B0161E05D5823:2\r\n" +
		"7F14F4258243863575CBF33215358357C61:4"
)

func TestSearchRangeMatch(t *testing.T) {
	result, err := searchRange(rangeWithMatch, qwertySuffix)
	assert.NoError(t, err)
	assert.True(t, result.Pwned)
	assert.Equal(t, uint64(3752262), result.Count)
}

func TestSearchRangeMatchCaseInsensitive(t *testing.T) {
	result, err := searchRange("73a05c0ed0176787a4f1574ff0075f7521e:17", qwertySuffix)
	assert.NoError(t, err)
	assert.True(t, result.Pwned)
	assert.Equal(t, uint64(17), result.Count)
}

func TestSearchRangeNoMatch(t *testing.T) {
	result, err := searchRange(rangeWithoutMatch, qwertySuffix)
	assert.NoError(t, err)
	assert.False(t, result.Pwned)
	assert.Zero(t, result.Count)
}

func TestSearchRangeEmptyBody(t *testing.T) {
	result, err := searchRange("", qwertySuffix)
	assert.NoError(t, err)
	assert.False(t, result.Pwned)
}

func TestSearchRangePaddingSkipped(t *testing.T) {
	// A padded entry matching the target still reports not breached.
	body := qwertySuffix + ":0\r\nFE81480327C992FE62065A827429DD1318B:2"
	result, err := searchRange(body, qwertySuffix)
	assert.NoError(t, err)
	assert.False(t, result.Pwned)
}

func TestSearchRangeMalformed(t *testing.T) {
	var parseErr *ParseError

	_, err := searchRange("ABC", qwertySuffix)
	assert.ErrorAs(t, err, &parseErr)

	_, err = searchRange("ABC:notanumber", qwertySuffix)
	assert.ErrorAs(t, err, &parseErr)

	_, err = searchRange("ABC:1:2", qwertySuffix)
	assert.ErrorAs(t, err, &parseErr)

	_, err = searchRange("ABC:-4", qwertySuffix)
	assert.ErrorAs(t, err, &parseErr)
}

func TestSearchRangeMalformedBeforeMatchIsFatal(t *testing.T) {
	// Strict policy: a bad line fails the scan even when the matching
	// record is reachable further down.
	body := "NOTAVALIDRECORD\r\n" + qwertySuffix + ":3752262"

	var parseErr *ParseError
	_, err := searchRange(body, qwertySuffix)
	assert.ErrorAs(t, err, &parseErr)
	assert.Equal(t, "NOTAVALIDRECORD", parseErr.Line)
}
