package ssa

import (
	"fmt"
	"strings"
	"time"
)

// ParseTimestamp parses event time in H:MM:SS.cc form. Hours and minutes
// may be omitted, the fraction may have any number of digits. Malformed
// values give zero.
func ParseTimestamp(s string) time.Duration {
	s = strings.TrimSpace(s)
	if s == "" {
		return 0
	}
	neg := strings.HasPrefix(s, "-")
	s = strings.TrimPrefix(s, "-")

	parts := strings.Split(s, ":")
	if len(parts) > 3 {
		return 0
	}
	var minutes int
	for _, p := range parts[:len(parts)-1] {
		minutes = minutes*60 + atoi(p)
	}
	d := time.Duration(minutes) * time.Minute

	sec, frac, _ := strings.Cut(parts[len(parts)-1], ".")
	d += time.Duration(atoi(sec)) * time.Second
	if frac != "" {
		// scale fraction digits to nanoseconds
		const digits = 9
		if len(frac) > digits {
			frac = frac[:digits]
		}
		n := atoi(frac)
		for range digits - len(frac) {
			n *= 10
		}
		d += time.Duration(n)
	}
	if neg {
		d = -d
	}
	return d
}

// FormatTimestamp formats duration in H:MM:SS.cc form, truncating to
// centiseconds.
func FormatTimestamp(d time.Duration) string {
	sign := ""
	if d < 0 {
		sign, d = "-", -d
	}
	cs := d / (10 * time.Millisecond)
	return fmt.Sprintf("%s%d:%02d:%02d.%02d", sign, cs/360000, cs/6000%60, cs/100%60, cs%100)
}
