package ssa

import (
	"fmt"
	"strings"
)

// Color is an RGBA color, A is opacity with 255 being fully opaque.
type Color struct {
	R, G, B, A uint8
}

// ColorFromABGR converts script color value &HAABBGGRR, where alpha 00 is
// opaque, into a Color.
func ColorFromABGR(v uint32) Color {
	return Color{
		R: uint8(v),
		G: uint8(v >> 8),
		B: uint8(v >> 16),
		A: 255 - uint8(v>>24),
	}
}

// ColorFromBGR converts override tag value &HBBGGRR into opaque Color.
func ColorFromBGR(v uint32) Color {
	return ColorFromABGR(v & 0xffffff)
}

// ParseColor parses a style color field. "&H" prefixed values are
// hexadecimal, anything else is a (possibly negative) decimal number as
// written by older tools. Unparsable values give opaque black.
func ParseColor(s string) Color {
	s = strings.TrimSpace(s)
	var v uint32
	switch {
	case strings.HasPrefix(s, "&"), strings.HasPrefix(s, "H"), strings.HasPrefix(s, "h"):
		u, _ := parseHexPrefix(s)
		v = uint32(u)
	case strings.HasPrefix(s, "0x"), strings.HasPrefix(s, "0X"):
		u, _ := parseHexPrefix(s[2:])
		v = uint32(u)
	default:
		i, _ := parseIntPrefix(s)
		v = uint32(i)
	}
	return ColorFromABGR(v)
}

// ABGR returns script representation of the color.
func (c Color) ABGR() uint32 {
	return uint32(255-c.A)<<24 | uint32(c.B)<<16 | uint32(c.G)<<8 | uint32(c.R)
}

// WithOpacity returns copy of the color with replaced opacity.
func (c Color) WithOpacity(a uint8) Color {
	c.A = a
	return c
}

// CSS returns color in CSS notation.
func (c Color) CSS() string {
	if c.A == 255 {
		return fmt.Sprintf("#%02x%02x%02x", c.R, c.G, c.B)
	}
	return fmt.Sprintf("rgba(%d,%d,%d,%.3g)", c.R, c.G, c.B, float64(c.A)/255)
}

func (c Color) String() string {
	return fmt.Sprintf("&H%08X", c.ABGR())
}
