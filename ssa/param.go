package ssa

import (
	"fmt"
	"strconv"
	"strings"

	pstrconv "github.com/tdewolff/parse/v2/strconv"
)

// Param is a typed override tag parameter. Only the field matching Kind is
// meaningful. Empty is set when the tag carried no usable value, renderers
// treat that as "revert to the style value".
type Param struct {
	Kind  ParamKind
	Empty bool
	Int   int64
	Float float64
	Str   string
	Point [2]float64
	// Args holds numeric arguments of parenthesized tags, Raw the text
	// between the parentheses as written.
	Args []float64
	Raw  string
}

// Number returns numeric value of int and float parameters.
func (p Param) Number() float64 {
	switch p.Kind {
	case ParamKindInt:
		return float64(p.Int)
	case ParamKindFloat:
		return p.Float
	}
	return 0
}

// Color interprets a color parameter (&HBBGGRR&) as an opaque color.
func (p Param) Color() Color {
	return ColorFromBGR(uint32(p.Int))
}

// Opacity interprets an alpha parameter (&HAA&, 00 is opaque) as opacity.
func (p Param) Opacity() uint8 {
	return 255 - uint8(p.Int)
}

func (p Param) String() string {
	if p.Empty {
		return ""
	}
	switch p.Kind {
	case ParamKindInt:
		return strconv.FormatInt(p.Int, 10)
	case ParamKindFloat:
		return strconv.FormatFloat(p.Float, 'f', -1, 64)
	case ParamKindColor:
		return fmt.Sprintf("&H%06X&", p.Int)
	case ParamKindAlpha:
		return fmt.Sprintf("&H%02X&", p.Int)
	case ParamKindString:
		return p.Str
	case ParamKindPoint:
		return fmt.Sprintf("(%s,%s)",
			strconv.FormatFloat(p.Point[0], 'f', -1, 64), strconv.FormatFloat(p.Point[1], 'f', -1, 64))
	case ParamKindArgs:
		return "(" + p.Raw + ")"
	}
	return ""
}

// Clone returns a copy which shares no memory with p.
func (p Param) Clone() Param {
	if p.Args != nil {
		p.Args = append([]float64(nil), p.Args...)
	}
	return p
}

// skipBlanks returns index of first non blank byte.
func skipBlanks(s string) int {
	i := 0
	for i < len(s) && (s[i] == ' ' || s[i] == '\t') {
		i++
	}
	return i
}

// parseIntPrefix parses the longest integer prefix of s after blanks and
// returns the value with number of bytes consumed, 0 when nothing matched.
func parseIntPrefix(s string) (int64, int) {
	i := skipBlanks(s)
	v, n := pstrconv.ParseInt([]byte(s[i:]))
	if n == 0 {
		return 0, 0
	}
	return v, i + n
}

// parseFloatPrefix is parseIntPrefix for decimal fractions and exponents.
func parseFloatPrefix(s string) (float64, int) {
	i := skipBlanks(s)
	v, n := pstrconv.ParseFloat([]byte(s[i:]))
	if n == 0 {
		return 0, 0
	}
	return v, i + n
}

// parseHexPrefix parses "&H" style hexadecimal value. Both ampersands and
// the H are optional.
func parseHexPrefix(s string) (uint64, int) {
	i := skipBlanks(s)
	if i < len(s) && s[i] == '&' {
		i++
	}
	if i < len(s) && (s[i] == 'H' || s[i] == 'h') {
		i++
	}
	start := i
	for i < len(s) && isHexDigit(s[i]) {
		i++
	}
	if i == start {
		return 0, 0
	}
	digits := s[start:i]
	// keep least significant digits on overflow, color values never need more
	if len(digits) > 16 {
		digits = digits[len(digits)-16:]
	}
	v, err := strconv.ParseUint(digits, 16, 64)
	if err != nil {
		return 0, 0
	}
	if i < len(s) && s[i] == '&' {
		i++
	}
	return v, i
}

func isHexDigit(c byte) bool {
	return '0' <= c && c <= '9' || 'a' <= c && c <= 'f' || 'A' <= c && c <= 'F'
}

// atoi leniently converts a record field, failures yield 0.
func atoi(s string) int {
	v, _ := parseIntPrefix(strings.TrimSpace(s))
	return int(v)
}

// atof leniently converts a record field, failures yield 0.
func atof(s string) float64 {
	v, _ := parseFloatPrefix(strings.TrimSpace(s))
	return v
}

// parseArgs converts comma separated items into numbers, stopping at the
// first item which is not numeric.
func parseArgs(raw string) []float64 {
	var args []float64
	for item := range strings.SplitSeq(raw, ",") {
		item = strings.TrimSpace(item)
		v, n := parseFloatPrefix(item)
		if n == 0 || n != len(item) {
			break
		}
		args = append(args, v)
	}
	return args
}
