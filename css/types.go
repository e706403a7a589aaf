package css

import (
	"fmt"
	"io"
	"slices"
	"strconv"
	"strings"
)

// quote escapes s for use inside CSS double quotes.
func quote(s string) string {
	if !strings.ContainsAny(s, `"\`) {
		return `"` + s + `"`
	}
	var b strings.Builder
	b.Grow(len(s) + 4)
	b.WriteByte('"')
	for _, r := range s {
		switch r {
		case '\\':
			b.WriteString(`\\`)
		case '"':
			b.WriteString(`\"`)
		default:
			b.WriteRune(r)
		}
	}
	b.WriteByte('"')
	return b.String()
}

// Value represents a CSS property value.
type Value struct {
	Raw     string  // CSS text of the value (e.g., "1.2em", "bold", "#ff0000")
	Value   float64 // Numeric value if applicable
	Unit    string  // Unit if applicable: "em", "px", "%", "pt", etc.
	Keyword string  // Keyword if applicable: "bold", "italic", "center", etc.
}

// IsNumeric returns true if the value has a numeric component.
func (v Value) IsNumeric() bool {
	if v.Unit != "" {
		return true
	}
	if v.Keyword != "" || v.Raw == "" {
		return false
	}
	_, err := strconv.ParseFloat(v.Raw, 64)
	return err == nil
}

// Keyword makes keyword value.
func Keyword(s string) Value {
	return Value{Raw: s, Keyword: strings.ToLower(s)}
}

// Px makes pixel length value.
func Px(v float64) Value {
	return Dimension(v, "px")
}

// Pt makes point length value.
func Pt(v float64) Value {
	return Dimension(v, "pt")
}

// Dimension makes numeric value with unit.
func Dimension(v float64, unit string) Value {
	return Value{Raw: strconv.FormatFloat(v, 'f', -1, 64) + unit, Value: v, Unit: unit}
}

// String makes quoted string value, used for font family names.
func String(s string) Value {
	return Value{Raw: quote(s), Keyword: s}
}

// Raw makes value from already formatted CSS text.
func Raw(s string) Value {
	return Value{Raw: s, Keyword: s}
}

// Rule represents a single CSS rule (selector + properties).
type Rule struct {
	Selector   string           // Selector as written
	Properties map[string]Value // Property name -> value
	SourceLine int              // Line number in source for error reporting
}

// NewRule makes rule with no properties.
func NewRule(selector string) *Rule {
	return &Rule{Selector: selector, Properties: make(map[string]Value)}
}

// Set sets property value and returns rule for chaining.
func (r *Rule) Set(name string, v Value) *Rule {
	r.Properties[name] = v
	return r
}

// GetProperty returns the value for a property.
func (r Rule) GetProperty(name string) (Value, bool) {
	v, ok := r.Properties[name]
	return v, ok
}

// Declarations returns properties as inline style attribute text.
func (r Rule) Declarations() string {
	var sb strings.Builder
	for _, name := range sortedNames(r.Properties) {
		if sb.Len() > 0 {
			sb.WriteByte(' ')
		}
		fmt.Fprintf(&sb, "%s: %s;", name, r.Properties[name].Raw)
	}
	return sb.String()
}

// FontFace represents an @font-face declaration.
type FontFace struct {
	Family string // font-family value
	Src    string // src value (URL or local reference)
	Style  string // font-style: normal, italic
	Weight string // font-weight: normal, bold, 400, 700
}

// MediaBlock represents a @media block with its query and nested rules.
type MediaBlock struct {
	Query string
	Rules []Rule
}

// StylesheetItem is a single top-level item in a stylesheet.
// Exactly one of Rule, MediaBlock, FontFace or Import is non-nil.
type StylesheetItem struct {
	Rule       *Rule
	MediaBlock *MediaBlock
	FontFace   *FontFace
	Import     *string
}

// Stylesheet represents a CSS stylesheet.
type Stylesheet struct {
	Items    []StylesheetItem // All top-level items in source order
	Warnings []string         // Warnings for skipped constructs
}

// Add appends rule.
func (s *Stylesheet) Add(r *Rule) {
	s.Items = append(s.Items, StylesheetItem{Rule: r})
}

// Merge appends all items of other after own items, so rules from other take
// precedence in cascade. @import items are moved to the top where CSS
// requires them.
func (s *Stylesheet) Merge(other *Stylesheet) {
	if other == nil {
		return
	}
	var imports []StylesheetItem
	for _, item := range other.Items {
		if item.Import != nil {
			imports = append(imports, item)
			continue
		}
		s.Items = append(s.Items, item)
	}
	s.Items = slices.Insert(s.Items, 0, imports...)
	s.Warnings = append(s.Warnings, other.Warnings...)
}

// Imports returns all @import URLs from the stylesheet in source order.
func (s *Stylesheet) Imports() []string {
	var urls []string
	for _, item := range s.Items {
		if item.Import != nil {
			urls = append(urls, *item.Import)
		}
	}
	return urls
}

// FontFaces returns @font-face declarations with a family in source order.
func (s *Stylesheet) FontFaces() []FontFace {
	var faces []FontFace
	for _, item := range s.Items {
		if item.FontFace != nil && item.FontFace.Family != "" {
			faces = append(faces, *item.FontFace)
		}
	}
	return faces
}

// RulesBySelector returns all top-level rules with the given selector.
func (s *Stylesheet) RulesBySelector(selector string) []Rule {
	var matches []Rule
	for _, item := range s.Items {
		if item.Rule != nil && item.Rule.Selector == selector {
			matches = append(matches, *item.Rule)
		}
	}
	return matches
}

// WriteTo writes the stylesheet to w in source order, implementing io.WriterTo.
// Property order within a rule is sorted alphabetically for deterministic output.
func (s *Stylesheet) WriteTo(w io.Writer) (int64, error) {
	cw := &countingWriter{w: w}
	for _, item := range s.Items {
		switch {
		case item.Import != nil:
			cw.printf("@import url(%s);\n", quote(*item.Import))
		case item.FontFace != nil:
			writeFontFace(cw, item.FontFace)
		case item.MediaBlock != nil:
			cw.printf("@media %s {\n", item.MediaBlock.Query)
			for i := range item.MediaBlock.Rules {
				writeRule(cw, &item.MediaBlock.Rules[i], "  ")
			}
			cw.printf("}\n")
		case item.Rule != nil:
			writeRule(cw, item.Rule, "")
		}
		if cw.err != nil {
			break
		}
	}
	return cw.n, cw.err
}

// String returns the CSS text of the stylesheet.
func (s *Stylesheet) String() string {
	var sb strings.Builder
	s.WriteTo(&sb) //nolint:errcheck
	return sb.String()
}

type countingWriter struct {
	w   io.Writer
	n   int64
	err error
}

func (cw *countingWriter) printf(format string, args ...any) {
	if cw.err != nil {
		return
	}
	n, err := fmt.Fprintf(cw.w, format, args...)
	cw.n += int64(n)
	cw.err = err
}

func writeRule(cw *countingWriter, rule *Rule, indent string) {
	cw.printf("%s%s {\n", indent, rule.Selector)
	for _, name := range sortedNames(rule.Properties) {
		cw.printf("%s  %s: %s;\n", indent, name, rule.Properties[name].Raw)
	}
	cw.printf("%s}\n", indent)
}

func writeFontFace(cw *countingWriter, ff *FontFace) {
	cw.printf("@font-face {\n")
	if ff.Family != "" {
		cw.printf("  font-family: %s;\n", quote(ff.Family))
	}
	if ff.Src != "" {
		cw.printf("  src: %s;\n", ff.Src)
	}
	if ff.Style != "" {
		cw.printf("  font-style: %s;\n", ff.Style)
	}
	if ff.Weight != "" {
		cw.printf("  font-weight: %s;\n", ff.Weight)
	}
	cw.printf("}\n")
}

func sortedNames(props map[string]Value) []string {
	names := make([]string, 0, len(props))
	for name := range props {
		names = append(names, name)
	}
	slices.Sort(names)
	return names
}
