package ssa

import (
	"time"
)

// Span is a style checkpoint inside div body text.
type Span struct {
	// Offset in runes into Div.Text where the span becomes active.
	Offset int
	// Delta holds every override active from Offset on.
	Delta Delta
	// Extra is visitor owned state. When a value implements Cloner it is
	// cloned for every following span, otherwise it is shared.
	Extra any
}

// Cloner is implemented by span payloads which must not be shared between
// spans.
type Cloner interface {
	Clone() any
}

func (s *Span) next() *Span {
	n := &Span{
		Offset: s.Offset,
		Delta:  s.Delta.Clone(),
		Extra:  s.Extra,
	}
	if c, ok := s.Extra.(Cloner); ok {
		n.Extra = c.Clone()
	}
	return n
}

// Event carries event row fields which are not used by line parsing.
type Event struct {
	Start  time.Duration
	End    time.Duration
	Name   string
	Effect string
}

// Div is one parsed subtitle line.
type Div struct {
	// Index is position of the line in its source, used to keep sorting
	// stable when lines are parsed concurrently.
	Index int

	// Text is body text with override blocks removed and escapes expanded.
	Text  string
	Spans []Span

	Style *Style
	Event *Event

	Layer   int
	MarginL int
	MarginR int
	MarginV int

	AlignH    AlignH
	AlignV    AlignV
	WrapStyle WrapStyle

	Positioned bool
	PosX       float64
	PosY       float64

	// ResetPens is set by \r without argument.
	ResetPens bool
	// DrawingScale is value of the last \p tag, text is dropped while it
	// is positive.
	DrawingScale float64

	// Line holds line level tags other than alignment, wrapping and
	// position (\move, \org, \fad, \fade, \clip, \iclip), first occurrence
	// of each.
	Line Delta
}

// Clone returns a copy of the div which shares no mutable state with d.
// Style and Event are treated as immutable and shared.
func (d *Div) Clone() *Div {
	c := *d
	c.Line = d.Line.Clone()
	if d.Spans != nil {
		c.Spans = make([]Span, len(d.Spans))
		for i := range d.Spans {
			c.Spans[i] = *d.Spans[i].next()
		}
	}
	return &c
}

// Keypad returns div alignment as numpad value.
func (d *Div) Keypad() int {
	return Keypad(d.AlignH, d.AlignV)
}

// SpanText returns body text covered by span i.
func (d *Div) SpanText(i int) string {
	runes := []rune(d.Text)
	start := min(d.Spans[i].Offset, len(runes))
	end := len(runes)
	if i+1 < len(d.Spans) {
		end = min(d.Spans[i+1].Offset, len(runes))
	}
	if start > end {
		return ""
	}
	return string(runes[start:end])
}
