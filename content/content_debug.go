package content

import (
	"fmt"
	"maps"
	"slices"
	"sort"
	"strconv"

	"github.com/maruel/natural"

	"subc/ssa"
	"subc/utils/debug"
)

// String returns a readable tree of the whole Content. It is used as "dump"
// output format and for manual inspection during debugging.
func (c *Content) String() string {
	if c == nil {
		return "<nil Content>"
	}

	tw := debug.NewTreeWriter()
	tw.Line(0, "Script %q id=%s dialect=%s", c.SrcName, c.ID, c.Script.Dialect)

	if len(c.Script.Headers) > 0 {
		tw.Line(0, "Headers (%d)", len(c.Script.Headers))
		keys := slices.Collect(maps.Keys(c.Script.Headers))
		sort.Sort(natural.StringSlice(keys))
		for _, k := range keys {
			tw.TextBlock(1, k, c.Script.Headers[k])
		}
	}

	tw.Line(0, "Play resolution %dx%d wrap=%s collisions=%s scaled=%t",
		c.Context.PlayResX, c.Context.PlayResY, c.Context.WrapStyle, c.Context.Collisions, c.Context.ScaledBorderAndShadow)

	names := c.Context.StyleNames()
	tw.Line(0, "Styles (%d)", len(names))
	for _, name := range names {
		dumpStyle(tw, 1, c.Context.StyleForName(name))
	}

	tw.Line(0, "Lines (%d)", len(c.Divs))
	for _, d := range c.Divs {
		dumpDiv(tw, 1, d)
	}

	if len(c.Script.Warnings) > 0 {
		tw.Line(0, "Warnings (%d)", len(c.Script.Warnings))
		for _, w := range c.Script.Warnings {
			tw.Line(1, "%s", w)
		}
	}
	if len(c.Diagnostics) > 0 {
		tw.Line(0, "Diagnostics (%d)", len(c.Diagnostics))
		for _, d := range c.Diagnostics {
			tw.Line(1, "%s", d)
		}
	}
	return tw.String()
}

func dumpStyle(tw *debug.TreeWriter, depth int, s *ssa.Style) {
	tw.Fields(depth, fmt.Sprintf("Style[%q]", s.Name),
		"font", strconv.Quote(s.FontName),
		"size", num(s.FontSize),
		"primary", s.Primary.String(),
		"secondary", s.Secondary.String(),
		"outline", s.Outline.String(),
		"back", s.Back.String(),
		"align", strconv.Itoa(ssa.Keypad(s.AlignH, s.AlignV)),
		"margins", fmt.Sprintf("%d,%d,%d", s.MarginL, s.MarginR, s.MarginV),
	)
}

func dumpDiv(tw *debug.TreeWriter, depth int, d *ssa.Div) {
	label := fmt.Sprintf("Line[%d]", d.Index)
	var start, end string
	if d.Event != nil {
		start, end = ssa.FormatTimestamp(d.Event.Start), ssa.FormatTimestamp(d.Event.End)
	}
	var pos string
	if d.Positioned {
		pos = num(d.PosX) + "," + num(d.PosY)
	}
	var drawing string
	if d.DrawingScale > 0 {
		drawing = num(d.DrawingScale)
	}
	tw.Fields(depth, label,
		"start", start,
		"end", end,
		"layer", strconv.Itoa(d.Layer),
		"style", strconv.Quote(d.Style.Name),
		"align", strconv.Itoa(d.Keypad()),
		"wrap", d.WrapStyle.String(),
		"pos", pos,
		"drawing", drawing,
	)
	if d.Line.Len() > 0 {
		tw.TextBlock(depth+1, "line", d.Line.String())
	}
	tw.TextBlock(depth+1, "text", d.Text)
	for i, sp := range d.Spans {
		tw.Fields(depth+1, fmt.Sprintf("Span[%d]", i),
			"offset", strconv.Itoa(sp.Offset),
			"delta", quoteNonEmpty(sp.Delta.String()),
			"text", quoteNonEmpty(d.SpanText(i)),
		)
		if p := d.SpanPen(i); p != nil {
			tw.Fields(depth+2, "pen",
				"font", strconv.Quote(p.FontName),
				"size", num(p.FontSize),
				"weight", strconv.Itoa(p.Weight()),
				"italic", flag(p.Italic),
				"underline", flag(p.Underline),
				"strikeout", flag(p.StrikeOut),
				"color", p.Colors[0].String(),
				"outline", p.Colors[2].String(),
				"back", p.Colors[3].String(),
			)
		}
	}
}

func num(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}

func flag(b bool) string {
	if b {
		return "yes"
	}
	return ""
}

func quoteNonEmpty(s string) string {
	if s == "" {
		return ""
	}
	return strconv.Quote(s)
}
