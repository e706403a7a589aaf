package ssa

import (
	"fmt"
	"strings"
	"unicode/utf8"

	"go.uber.org/zap"
)

// Diagnostic is an advisory message about malformed line content.
type Diagnostic struct {
	// Line is Div.Index of the line.
	Line int
	// Offset is byte offset in the raw line text.
	Offset  int
	Message string
}

func (d Diagnostic) String() string {
	return fmt.Sprintf("line %d, offset %d: %s", d.Line, d.Offset, d.Message)
}

// Diagnostics collects advisory messages produced while parsing.
type Diagnostics []Diagnostic

// Strings returns messages in text form.
func (ds Diagnostics) Strings() []string {
	out := make([]string, 0, len(ds))
	for _, d := range ds {
		out = append(out, d.String())
	}
	return out
}

// LineParser turns event text with override blocks into a Div. It holds no
// per line state and may be used concurrently if its visitor allows that.
type LineParser struct {
	log    *zap.Logger
	styles StyleLookup
	v      Visitor
}

// LineOption configures LineParser.
type LineOption func(*LineParser)

// WithLineLogger sets logger for diagnostics.
func WithLineLogger(log *zap.Logger) LineOption {
	return func(lp *LineParser) {
		if log != nil {
			lp.log = log
		}
	}
}

// WithStyles sets style table used to resolve \r<name>.
func WithStyles(styles StyleLookup) LineOption {
	return func(lp *LineParser) {
		lp.styles = styles
	}
}

// WithVisitor sets visitor notified about spans and tags.
func WithVisitor(v Visitor) LineOption {
	return func(lp *LineParser) {
		if v != nil {
			lp.v = v
		}
	}
}

// NewLineParser creates line parser.
func NewLineParser(opts ...LineOption) *LineParser {
	lp := &LineParser{
		log: zap.NewNop(),
		v:   nopVisitor{},
	}
	for _, opt := range opts {
		opt(lp)
	}
	lp.log = lp.log.Named("ssa-line")
	return lp
}

// ParseLine parses one event text against an already resolved base div.
// Both styles and v may be nil.
func ParseLine(text string, base *Div, styles StyleLookup, v Visitor) (*Div, Diagnostics) {
	return NewLineParser(WithStyles(styles), WithVisitor(v)).Parse(text, base)
}

// NewDiv creates a base div for style with no event row behind it.
func NewDiv(style *Style, wrap WrapStyle) *Div {
	if style == nil {
		style = DefaultStyle()
	}
	return &Div{
		Style:     style,
		MarginL:   style.MarginL,
		MarginR:   style.MarginR,
		MarginV:   style.MarginV,
		AlignH:    style.AlignH,
		AlignV:    style.AlignV,
		WrapStyle: wrap,
	}
}

type lineState struct {
	*LineParser

	src   string
	div   *Div
	body  strings.Builder
	runes int
	span  *Span
	diags Diagnostics

	// text is dropped while drawing
	drop bool
	// first writer wins
	alignSet bool
	wrapSet  bool
	posSet   bool
}

// Parse parses text. Base div is not modified, the result is a fresh div
// with at least one span at offset 0.
func (lp *LineParser) Parse(text string, base *Div) (*Div, Diagnostics) {
	if base == nil {
		base = NewDiv(nil, WrapStyleSmart)
	}
	st := &lineState{
		LineParser: lp,
		src:        text,
		div:        base.Clone(),
		span:       &Span{},
	}
	st.div.Spans = nil
	st.v.StartingSpan(st.span, st.div)

	st.run()

	st.div.Spans = append(st.div.Spans, *st.span)
	st.div.Text = st.body.String()
	return st.div, st.diags
}

func (st *lineState) run() {
	s := st.src
	for i := 0; i < len(s); {
		switch s[i] {
		case '{':
			if i > 0 {
				st.nextSpan()
			}
			end, closed := st.block(i + 1)
			st.span.Offset = st.runes
			if !closed {
				st.diag(i, "unterminated override block")
				return
			}
			i = end
		case '\\':
			i = st.escape(i)
		default:
			r, size := utf8.DecodeRuneInString(s[i:])
			st.emit(r)
			i += size
		}
	}
}

func (st *lineState) diag(offset int, msg string) {
	d := Diagnostic{Line: st.div.Index, Offset: offset, Message: msg}
	st.log.Debug("Malformed line", zap.Int("line", d.Line), zap.Int("offset", offset), zap.String("message", msg))
	st.diags = append(st.diags, d)
}

// nextSpan commits current span and starts a copy of it.
func (st *lineState) nextSpan() {
	st.div.Spans = append(st.div.Spans, *st.span)
	st.span = st.span.next()
	st.v.StartingSpan(st.span, st.div)
}

func (st *lineState) emit(r rune) {
	if st.drop {
		return
	}
	st.body.WriteRune(r)
	st.runes++
}

// escape handles backslash outside of override block and returns index of
// the next unread byte.
func (st *lineState) escape(i int) int {
	if i+1 >= len(st.src) {
		st.emit('\\')
		return i + 1
	}
	switch st.src[i+1] {
	case 'N':
		st.emit('\n')
	case 'h':
		st.emit('\u00a0')
	case '}':
		st.emit('}')
	case 'n':
		// soft break is left for the renderer to interpret
		st.emit('\\')
		st.emit('n')
	default:
		st.emit('\\')
		return i + 1
	}
	return i + 2
}

// block reads override block content starting after '{'. It returns index
// after closing '}' and whether the block was closed at all.
func (st *lineState) block(j int) (int, bool) {
	s := st.src
	for j < len(s) {
		switch s[j] {
		case '}':
			return j + 1, true
		case '\\':
			j = st.tag(j + 1)
		default:
			// comment text
			j++
		}
	}
	return len(s), false
}

// skipJunk returns index of the next tag or block end.
func skipJunk(s string, j int) int {
	for j < len(s) && s[j] != '\\' && s[j] != '}' {
		j++
	}
	return j
}

func (st *lineState) tag(j int) int {
	def, ok := lookupTag(st.src[j:])
	if !ok {
		return skipJunk(st.src, j)
	}
	p, end := parseParam(def.kind, st.src, j+len(def.name))
	st.apply(def, p)
	return skipJunk(st.src, end)
}

func parseParam(kind ParamKind, s string, j int) (Param, int) {
	p := Param{Kind: kind}
	switch kind {
	case ParamKindInt:
		v, n := parseIntPrefix(s[j:])
		p.Int, p.Empty = v, n == 0
		return p, j + n
	case ParamKindFloat:
		v, n := parseFloatPrefix(s[j:])
		p.Float, p.Empty = v, n == 0
		return p, j + n
	case ParamKindColor, ParamKindAlpha:
		v, n := parseHexPrefix(s[j:])
		if kind == ParamKindColor {
			v &= 0xffffff
		} else {
			v &= 0xff
		}
		p.Int, p.Empty = int64(v), n == 0
		return p, j + n
	case ParamKindString:
		end := skipJunk(s, j)
		p.Str = strings.TrimSpace(s[j:end])
		p.Empty = p.Str == ""
		return p, end
	case ParamKindPoint, ParamKindArgs:
		raw, end, ok := parenthesized(s, j)
		if !ok {
			p.Empty = true
			return p, j
		}
		p.Raw = raw
		p.Args = parseArgs(raw)
		if kind == ParamKindPoint {
			if len(p.Args) < 2 {
				p.Empty = true
			} else {
				p.Point = [2]float64{p.Args[0], p.Args[1]}
			}
		}
		return p, end
	}
	p.Empty = true
	return p, j
}

// parenthesized reads "(...)" allowing nested parentheses. A missing ')'
// is tolerated, content then ends at block end.
func parenthesized(s string, j int) (string, int, bool) {
	i := j + skipBlanks(s[j:])
	if i >= len(s) || s[i] != '(' {
		return "", j, false
	}
	depth := 0
	for k := i; k < len(s); k++ {
		switch s[k] {
		case '(':
			depth++
		case ')':
			depth--
			if depth == 0 {
				return s[i+1 : k], k + 1, true
			}
		case '}':
			return s[i+1 : k], k, true
		}
	}
	return s[i+1:], len(s), true
}

func (st *lineState) apply(def tagDef, p Param) {
	div := st.div
	switch def.tag {
	case TagAlignment, TagLegacyAlign:
		if st.alignSet || p.Empty {
			return
		}
		var (
			h  AlignH
			v  AlignV
			ok bool
		)
		if def.tag == TagAlignment {
			h, v, ok = KeypadAlignment(int(p.Int))
		} else {
			h, v, ok = LegacyAlignment(int(p.Int))
		}
		if !ok {
			return
		}
		div.AlignH, div.AlignV = h, v
		st.alignSet = true
	case TagWrapStyle:
		ws := WrapStyle(p.Int)
		if st.wrapSet || p.Empty || !ws.IsValid() {
			return
		}
		div.WrapStyle = ws
		st.wrapSet = true
	case TagPosition:
		if st.posSet || p.Empty {
			return
		}
		div.Positioned = true
		div.PosX, div.PosY = p.Point[0], p.Point[1]
		st.posSet = true
	case TagReset:
		base := div.Style
		if !p.Empty && st.styles != nil {
			base = st.styles.StyleForName(p.Str)
		}
		st.span.Delta.ResetStyle(p.Str, base)
		if p.Empty {
			div.ResetPens = true
		}
	case TagDrawing:
		div.DrawingScale = p.Float
		st.drop = p.Float > 0
		st.span.Delta.Set(def.tag, p)
	default:
		if def.line {
			if !div.Line.SetFirst(def.tag, p) {
				return
			}
		} else {
			st.span.Delta.Set(def.tag, p)
		}
	}
	st.v.TagChanged(def.tag, p, st.span, div)
}
