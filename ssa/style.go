package ssa

import (
	"strings"
)

// Style is a resolved style definition.
type Style struct {
	Name     string
	FontName string
	// Vertical is set when font name starts with '@'.
	Vertical bool
	FontSize float64

	Primary   Color
	Secondary Color
	Outline   Color
	Back      Color

	// Bold is 0 for normal, 1 for bold or explicit font weight (100 and up).
	Bold      int
	Italic    bool
	Underline bool
	StrikeOut bool

	ScaleX  float64
	ScaleY  float64
	Spacing float64
	Angle   float64

	BorderStyle  BorderStyle
	OutlineWidth float64
	ShadowDepth  float64

	AlignH AlignH
	AlignV AlignV

	MarginL int
	MarginR int
	MarginV int

	Encoding int
}

// DefaultStyle returns style used for events which reference unknown
// styles.
func DefaultStyle() *Style {
	return &Style{
		Name:         "Default",
		FontName:     "Arial",
		FontSize:     18,
		Primary:      ColorFromABGR(0x00ffffff),
		Secondary:    ColorFromABGR(0x0000ffff),
		Outline:      ColorFromABGR(0x00000000),
		Back:         ColorFromABGR(0x80000000),
		ScaleX:       100,
		ScaleY:       100,
		BorderStyle:  BorderStyleOutline,
		OutlineWidth: 2,
		ShadowDepth:  3,
		AlignH:       AlignHCenter,
		AlignV:       AlignVBottom,
		MarginL:      20,
		MarginR:      20,
		MarginV:      20,
		Encoding:     1,
	}
}

// Clone returns a copy of the style.
func (s *Style) Clone() *Style {
	c := *s
	return &c
}

// Weight returns CSS like font weight.
func (s *Style) Weight() int {
	return weight(s.Bold)
}

func weight(bold int) int {
	switch {
	case bold >= 100:
		return bold
	case bold != 0:
		return 700
	}
	return 400
}

// boldValue normalizes script bold field: -1 (and any other non zero value
// below 100) means bold, 100 and above is explicit weight.
func boldValue(v int) int {
	switch {
	case v >= 100:
		return v
	case v != 0:
		return 1
	}
	return 0
}

// NewStyle resolves a style row. Fields missing from the row keep values of
// def (DefaultStyle when nil). SSA rows use legacy alignment codes and the
// tertiary color as outline color.
func NewStyle(row Row, d Dialect, def *Style) *Style {
	if def == nil {
		def = DefaultStyle()
	}
	s := def.Clone()

	str := func(name string, set func(string)) {
		if v, ok := row.Lookup(name); ok {
			set(v)
		}
	}

	str("Name", func(v string) { s.Name = v })
	str("Fontname", func(v string) {
		s.FontName, s.Vertical = strings.CutPrefix(v, "@")
	})
	str("Fontsize", func(v string) { s.FontSize = atof(v) })
	str("PrimaryColour", func(v string) { s.Primary = ParseColor(v) })
	str("SecondaryColour", func(v string) { s.Secondary = ParseColor(v) })
	str("TertiaryColour", func(v string) { s.Outline = ParseColor(v) })
	str("OutlineColour", func(v string) { s.Outline = ParseColor(v) })
	str("BackColour", func(v string) { s.Back = ParseColor(v) })
	str("Bold", func(v string) { s.Bold = boldValue(atoi(v)) })
	str("Italic", func(v string) { s.Italic = atoi(v) != 0 })
	str("Underline", func(v string) { s.Underline = atoi(v) != 0 })
	str("StrikeOut", func(v string) { s.StrikeOut = atoi(v) != 0 })
	str("ScaleX", func(v string) { s.ScaleX = atof(v) })
	str("ScaleY", func(v string) { s.ScaleY = atof(v) })
	str("Spacing", func(v string) { s.Spacing = atof(v) })
	str("Angle", func(v string) { s.Angle = atof(v) })
	str("BorderStyle", func(v string) {
		if bs := BorderStyle(atoi(v)); bs.IsValid() {
			s.BorderStyle = bs
		}
	})
	str("Outline", func(v string) { s.OutlineWidth = atof(v) })
	str("Shadow", func(v string) { s.ShadowDepth = atof(v) })
	str("Alignment", func(v string) {
		var (
			h  AlignH
			vv AlignV
			ok bool
		)
		if d == DialectAss {
			h, vv, ok = KeypadAlignment(atoi(v))
		} else {
			h, vv, ok = LegacyAlignment(atoi(v))
		}
		if ok {
			s.AlignH, s.AlignV = h, vv
		}
	})
	str("MarginL", func(v string) { s.MarginL = atoi(v) })
	str("MarginR", func(v string) { s.MarginR = atoi(v) })
	str("MarginV", func(v string) { s.MarginV = atoi(v) })
	str("Encoding", func(v string) { s.Encoding = atoi(v) })

	// SSA has a single alpha for every color except the background
	if d == DialectSsa {
		if v, ok := row.Lookup("AlphaLevel"); ok {
			a := 255 - uint8(atoi(v))
			s.Primary.A, s.Secondary.A, s.Outline.A = a, a, a
		}
	}
	return s
}
