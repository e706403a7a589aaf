package ssa

import (
	"strings"
)

// SplitN splits line on sep into at most n fields. The last field absorbs
// every remaining separator, so a free-text field may contain commas. When
// the line holds fewer than n fields the returned slice is shorter and the
// caller is expected to treat it as a mismatch. Fields are not trimmed.
func SplitN(line string, sep byte, n int) []string {
	if n <= 0 {
		return nil
	}
	fields := make([]string, 0, n)
	for len(fields) < n-1 {
		i := strings.IndexByte(line, sep)
		if i < 0 {
			break
		}
		fields = append(fields, line[:i])
		line = line[i+1:]
	}
	return append(fields, line)
}

// SplitTrimmed splits s on sep and trims surrounding whitespace of every
// field. Empty trailing fields are dropped.
func SplitTrimmed(s string, sep byte) []string {
	var fields []string
	for f := range strings.SplitSeq(s, string(sep)) {
		fields = append(fields, strings.TrimSpace(f))
	}
	for len(fields) > 0 && fields[len(fields)-1] == "" {
		fields = fields[:len(fields)-1]
	}
	return fields
}

// splitFields splits a row into exactly n trimmed fields. It reports false
// when the row has fewer fields.
func splitFields(line string, n int) ([]string, bool) {
	fields := SplitN(line, ',', n)
	if len(fields) != n {
		return nil, false
	}
	for i := range fields {
		fields[i] = strings.TrimSpace(fields[i])
	}
	return fields, true
}
