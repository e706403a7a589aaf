package ssa

import (
	"fmt"
	"maps"
	"slices"
	"strings"

	"go.uber.org/zap"
)

// Headers holds "Key: Value" pairs of the [Script Info] section. Keys keep
// the case used by the script, the last occurrence of a key wins.
type Headers map[string]string

// Lookup returns header value, falling back to a case-insensitive match.
// When several keys differ only in case the smallest one wins, parsed
// scripts never have such keys.
func (h Headers) Lookup(key string) (string, bool) {
	if v, ok := h[key]; ok {
		return v, true
	}
	for _, k := range slices.Sorted(maps.Keys(h)) {
		if strings.EqualFold(k, key) {
			return h[k], true
		}
	}
	return "", false
}

// set stores value replacing any key which differs only in case, so the
// last occurrence wins regardless of spelling.
func (h Headers) set(key, value string) {
	for k := range h {
		if k != key && strings.EqualFold(k, key) {
			delete(h, k)
		}
	}
	h[key] = value
}

// Script is the result of splitting a script into its sections.
type Script struct {
	Dialect     Dialect
	Headers     Headers
	StyleFormat *Format
	EventFormat *Format
	Styles      []Row
	Events      []Row
	// Warnings lists advisory messages about skipped content.
	Warnings []string
}

type section int

const (
	sectionNone section = iota
	sectionInfo
	sectionStyles
	sectionEvents
	sectionSkip
)

// rows buffered until the end of input, when the layout is known
type pending struct {
	line  int
	value string
}

type scriptParser struct {
	log *zap.Logger

	script      *Script
	section     section
	assStyles   bool
	styleFormat *Format
	eventFormat *Format
	styles      []pending
	events      []pending
}

// ScriptOption configures ParseScript.
type ScriptOption func(*scriptParser)

// WithScriptLogger sets logger used to report skipped content.
func WithScriptLogger(log *zap.Logger) ScriptOption {
	return func(p *scriptParser) {
		if log != nil {
			p.log = log
		}
	}
}

// event row keywords which are recognized and deliberately not buffered
var ignoredEvents = []string{"Comment:", "Picture:", "Sound:", "Movie:", "Command:"}

// ParseScript splits script text into headers, style rows and event rows.
// It never fails: rows which do not fit their section layout are dropped
// and recorded in Script.Warnings.
func ParseScript(text string, opts ...ScriptOption) *Script {
	p := &scriptParser{
		log:    zap.NewNop(),
		script: &Script{Headers: make(Headers)},
	}
	for _, opt := range opts {
		opt(p)
	}
	p.log = p.log.Named("ssa-script")

	text = strings.TrimPrefix(text, "\ufeff")
	n := 0
	for line := range strings.Lines(text) {
		n++
		p.line(n, strings.TrimRight(line, "\r\n"))
	}
	p.finish()
	return p.script
}

func (p *scriptParser) warn(format string, args ...any) {
	msg := fmt.Sprintf(format, args...)
	p.log.Debug("Script content skipped", zap.String("reason", msg))
	p.script.Warnings = append(p.script.Warnings, msg)
}

func (p *scriptParser) line(n int, raw string) {
	line := strings.TrimSpace(raw)
	if line == "" {
		return
	}

	if strings.HasPrefix(line, "[") && strings.HasSuffix(line, "]") {
		p.enter(n, line)
		return
	}

	switch p.section {
	case sectionInfo:
		if strings.HasPrefix(line, ";") || strings.HasPrefix(line, "!:") {
			return
		}
		key, value, ok := strings.Cut(line, ":")
		if !ok {
			return
		}
		p.script.Headers.set(strings.TrimSpace(key), strings.TrimSpace(value))
	case sectionStyles:
		if value, ok := cutKeyword(line, "Format:"); ok {
			p.styleFormat = ParseFormat(value)
			return
		}
		if value, ok := cutKeyword(line, "Style:"); ok {
			p.styles = append(p.styles, pending{line: n, value: value})
		}
	case sectionEvents:
		if value, ok := cutKeyword(line, "Format:"); ok {
			p.eventFormat = ParseFormat(value)
			return
		}
		if value, ok := cutKeyword(line, "Dialogue:"); ok {
			p.events = append(p.events, pending{line: n, value: value})
			return
		}
		for _, kw := range ignoredEvents {
			if _, ok := cutKeyword(line, kw); ok {
				return
			}
		}
	}
}

func (p *scriptParser) enter(n int, header string) {
	switch strings.ToLower(strings.TrimSpace(header[1 : len(header)-1])) {
	case "script info":
		p.section = sectionInfo
	case "v4 styles":
		p.section = sectionStyles
	case "v4+ styles", "v4++ styles":
		p.section = sectionStyles
		p.assStyles = true
	case "events":
		p.section = sectionEvents
	default:
		p.section = sectionSkip
		p.warn("line %d: section %s skipped", n, header)
	}
}

func (p *scriptParser) dialect() Dialect {
	if p.assStyles {
		return DialectAss
	}
	if v, ok := p.script.Headers.Lookup("ScriptType"); ok {
		switch strings.ToLower(v) {
		case "v4.00+", "v4.00++":
			return DialectAss
		}
	}
	return DialectSsa
}

func (p *scriptParser) finish() {
	s := p.script
	s.Dialect = p.dialect()

	s.StyleFormat = p.styleFormat
	if s.StyleFormat == nil {
		s.StyleFormat = DefaultStyleFormat(s.Dialect)
	}
	s.EventFormat = p.eventFormat
	if s.EventFormat == nil {
		s.EventFormat = DefaultEventFormat(s.Dialect)
	}

	s.Styles = p.apply(s.StyleFormat, p.styles, "style")
	s.Events = p.apply(s.EventFormat, p.events, "event")
}

func (p *scriptParser) apply(f *Format, rows []pending, kind string) []Row {
	out := make([]Row, 0, len(rows))
	for _, r := range rows {
		row, ok := f.Apply(r.value)
		if !ok {
			p.warn("line %d: %s row dropped, expected %d fields", r.line, kind, f.Len())
			continue
		}
		out = append(out, row)
	}
	return out
}

// cutKeyword returns trimmed remainder of line after case-insensitive
// keyword prefix.
func cutKeyword(line, keyword string) (string, bool) {
	if len(line) < len(keyword) || !strings.EqualFold(line[:len(keyword)], keyword) {
		return "", false
	}
	return strings.TrimSpace(line[len(keyword):]), true
}
