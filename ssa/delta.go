package ssa

import (
	"strings"
)

// DeltaEntry is one tag with its parameter.
type DeltaEntry struct {
	Tag   Tag
	Param Param
}

// Delta is an ordered set of override tags active at a span, relative to
// the line base style. Each tag appears at most once, a later value
// replaces the earlier one in place.
type Delta struct {
	entries []DeltaEntry
	// Reset is true when the delta starts from a \r tag, ResetTo then names
	// the style (empty for the line style) and Base is what it resolved to.
	Reset   bool
	ResetTo string
	Base    *Style
}

// Set records tag value.
func (d *Delta) Set(tag Tag, p Param) {
	for i := range d.entries {
		if d.entries[i].Tag == tag {
			d.entries[i].Param = p
			return
		}
	}
	d.entries = append(d.entries, DeltaEntry{Tag: tag, Param: p})
}

// SetFirst records tag value only if tag is not present yet. It reports
// whether the value was recorded.
func (d *Delta) SetFirst(tag Tag, p Param) bool {
	if _, ok := d.Get(tag); ok {
		return false
	}
	d.entries = append(d.entries, DeltaEntry{Tag: tag, Param: p})
	return true
}

// Get returns current value of a tag.
func (d Delta) Get(tag Tag) (Param, bool) {
	for _, e := range d.entries {
		if e.Tag == tag {
			return e.Param, true
		}
	}
	return Param{}, false
}

// ResetStyle drops every recorded tag and marks delta as relative to the
// named style.
func (d *Delta) ResetStyle(name string, base *Style) {
	d.entries = d.entries[:0:0]
	d.Reset = true
	d.ResetTo = name
	d.Base = base
}

// Len returns number of recorded tags.
func (d Delta) Len() int {
	return len(d.entries)
}

// Entries returns recorded tags in the order they were first set.
func (d Delta) Entries() []DeltaEntry {
	return d.entries
}

// Clone returns a deep copy.
func (d Delta) Clone() Delta {
	c := d
	c.entries = make([]DeltaEntry, len(d.entries))
	for i, e := range d.entries {
		c.entries[i] = DeltaEntry{Tag: e.Tag, Param: e.Param.Clone()}
	}
	return c
}

func (d Delta) String() string {
	var sb strings.Builder
	if d.Reset {
		sb.WriteString(`\r`)
		sb.WriteString(d.ResetTo)
	}
	for _, e := range d.entries {
		sb.WriteByte('\\')
		sb.WriteString(string(e.Tag))
		sb.WriteString(e.Param.String())
	}
	return sb.String()
}
