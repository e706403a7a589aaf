package ssa

import (
	"strings"
)

// Format maps field names of a style or event section to their positions.
// It is built from the section's "Format:" line or taken from the dialect
// default.
type Format struct {
	fields []string
	index  map[string]int
}

// Default field layouts.
var (
	ssaStyleFields = []string{
		"Name", "Fontname", "Fontsize", "PrimaryColour", "SecondaryColour", "TertiaryColour",
		"BackColour", "Bold", "Italic", "BorderStyle", "Outline", "Shadow", "Alignment",
		"MarginL", "MarginR", "MarginV", "AlphaLevel", "Encoding",
	}
	assStyleFields = []string{
		"Name", "Fontname", "Fontsize", "PrimaryColour", "SecondaryColour", "OutlineColour",
		"BackColour", "Bold", "Italic", "Underline", "StrikeOut", "ScaleX", "ScaleY", "Spacing",
		"Angle", "BorderStyle", "Outline", "Shadow", "Alignment", "MarginL", "MarginR", "MarginV",
		"Encoding",
	}
	ssaEventFields = []string{
		"Marked", "Start", "End", "Style", "Name", "MarginL", "MarginR", "MarginV", "Effect", "Text",
	}
	assEventFields = []string{
		"Layer", "Start", "End", "Style", "Name", "MarginL", "MarginR", "MarginV", "Effect", "Text",
	}
)

// NewFormat creates a format from field names in declared order. Names are
// matched case-insensitively; when a name repeats the first position wins.
func NewFormat(fields ...string) *Format {
	f := &Format{
		fields: fields,
		index:  make(map[string]int, len(fields)),
	}
	for i, name := range fields {
		key := strings.ToLower(name)
		if _, ok := f.index[key]; !ok {
			f.index[key] = i
		}
	}
	return f
}

// ParseFormat builds a format from the value of a "Format:" line.
func ParseFormat(value string) *Format {
	return NewFormat(SplitTrimmed(value, ',')...)
}

// DefaultStyleFormat returns the built-in style layout for the dialect.
func DefaultStyleFormat(d Dialect) *Format {
	if d == DialectAss {
		return NewFormat(assStyleFields...)
	}
	return NewFormat(ssaStyleFields...)
}

// DefaultEventFormat returns the built-in event layout for the dialect.
func DefaultEventFormat(d Dialect) *Format {
	if d == DialectAss {
		return NewFormat(assEventFields...)
	}
	return NewFormat(ssaEventFields...)
}

// Len returns number of fields.
func (f *Format) Len() int {
	return len(f.fields)
}

// Fields returns field names in declared order.
func (f *Format) Fields() []string {
	return f.fields
}

// Index returns position of the named field.
func (f *Format) Index(name string) (int, bool) {
	i, ok := f.index[strings.ToLower(name)]
	return i, ok
}

// Apply splits a row value into a record. It reports false when the field
// count does not match, in which case the row must be dropped.
func (f *Format) Apply(value string) (Row, bool) {
	if f.Len() == 0 {
		return Row{}, false
	}
	values, ok := splitFields(value, f.Len())
	if !ok {
		return Row{}, false
	}
	return Row{format: f, values: values}, true
}

// Row is one style or event record: raw field values keyed by the names of
// the format it was split with.
type Row struct {
	format *Format
	values []string
}

// NewRow creates a record directly from a format and matching values.
// It reports false if value count differs from the format.
func NewRow(f *Format, values ...string) (Row, bool) {
	if f == nil || len(values) != f.Len() {
		return Row{}, false
	}
	return Row{format: f, values: values}, true
}

// Len returns number of fields in the record.
func (r Row) Len() int {
	return len(r.values)
}

// Names returns field names in format order.
func (r Row) Names() []string {
	if r.format == nil {
		return nil
	}
	return r.format.fields
}

// Values returns raw values in format order.
func (r Row) Values() []string {
	return r.values
}

// Lookup returns raw value of the named field.
func (r Row) Lookup(name string) (string, bool) {
	if r.format == nil {
		return "", false
	}
	i, ok := r.format.Index(name)
	if !ok {
		return "", false
	}
	return r.values[i], true
}

// Get returns raw value of the named field or empty string.
func (r Row) Get(name string) string {
	v, _ := r.Lookup(name)
	return v
}
