package ssa

import (
	"cmp"
	"slices"
	"strings"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

// packetFormat is layout of a Matroska subtitle block.
var packetFormat = NewFormat("ReadOrder", "Layer", "Style", "Name", "MarginL", "MarginR", "MarginV", "Effect", "Text")

// BaseDiv builds div for event row before its text is parsed: resolved
// style, layer, margins (0 inherits style margin), alignment and wrapping.
func (c *Context) BaseDiv(row Row) *Div {
	style := c.StyleForName(row.Get("Style"))
	div := NewDiv(style, c.WrapStyle)

	div.Layer = atoi(row.Get("Layer"))
	if m := atoi(row.Get("MarginL")); m != 0 {
		div.MarginL = m
	}
	if m := atoi(row.Get("MarginR")); m != 0 {
		div.MarginR = m
	}
	if m := atoi(row.Get("MarginV")); m != 0 {
		div.MarginV = m
	}

	ev := &Event{
		Name:   row.Get("Name"),
		Effect: row.Get("Effect"),
	}
	if v, ok := row.Lookup("Start"); ok {
		ev.Start = ParseTimestamp(v)
	}
	if v, ok := row.Lookup("End"); ok {
		ev.End = ParseTimestamp(v)
	}
	div.Event = ev
	return div
}

// Div parses a single event row. Index is recorded on the div and used as
// tie-break when sorting.
func (c *Context) Div(index int, row Row, v Visitor) (*Div, Diagnostics) {
	base := c.BaseDiv(row)
	base.Index = index
	lp := NewLineParser(WithLineLogger(c.log), WithStyles(c), WithVisitor(v))
	return lp.Parse(row.Get("Text"), base)
}

// Divs parses every event row and returns divs sorted by layer. With more
// than one worker rows are parsed concurrently, results are still placed by
// row index so ordering does not depend on completion order.
func (c *Context) Divs(events []Row, v Visitor) ([]*Div, Diagnostics) {
	divs := make([]*Div, len(events))
	diags := make([]Diagnostics, len(events))

	if c.workers <= 1 {
		for i, row := range events {
			divs[i], diags[i] = c.Div(i, row, v)
		}
	} else {
		var g errgroup.Group
		g.SetLimit(c.workers)
		for i, row := range events {
			g.Go(func() error {
				divs[i], diags[i] = c.Div(i, row, v)
				return nil
			})
		}
		// parsing never fails
		_ = g.Wait()
	}

	SortDivs(divs)
	return divs, slices.Concat(diags...)
}

// ParsePacket parses a Matroska style packet: one or more lines of
// "ReadOrder, Layer, Style, Name, MarginL, MarginR, MarginV, Effect, Text".
// Lines with fewer fields or empty text are skipped. Divs are returned in
// layer order, with line order reversed first when the script asks for
// reverse collisions.
func (c *Context) ParsePacket(packet string, v Visitor) ([]*Div, Diagnostics) {
	var (
		divs  []*Div
		diags Diagnostics
	)
	for line := range strings.Lines(packet) {
		line = strings.TrimRight(line, "\r\n")
		row, ok := packetFormat.Apply(line)
		if !ok {
			c.log.Debug("Packet line skipped", zap.String("line", line))
			continue
		}
		if row.Get("Text") == "" {
			continue
		}
		div, d := c.Div(len(divs), row, v)
		divs = append(divs, div)
		diags = append(diags, d...)
	}

	if c.Collisions == CollisionsReverse {
		slices.Reverse(divs)
		for i, div := range divs {
			div.Index = i
		}
	}
	SortDivs(divs)
	return divs, diags
}

// SortDivs orders divs by layer, divs on the same layer keep their
// relative order.
func SortDivs(divs []*Div) {
	slices.SortStableFunc(divs, func(a, b *Div) int {
		return cmp.Compare(a.Layer, b.Layer)
	})
}
