package ssa

import (
	"strings"

	"go.uber.org/zap"
)

// Default play resolution used when script specifies none.
const (
	DefaultPlayResX = 384
	DefaultPlayResY = 288
)

// Context is the resolved, read-only view of a script used to assemble
// divs: style table, document defaults and play resolution.
type Context struct {
	log     *zap.Logger
	workers int

	Dialect Dialect
	Headers Headers

	styles     map[string]*Style
	styleNames []string
	// Default is used for events which reference unknown styles.
	Default *Style

	WrapStyle             WrapStyle
	Collisions            Collisions
	PlayResX              int
	PlayResY              int
	ScaledBorderAndShadow bool
}

// ContextOption configures Context.
type ContextOption func(*Context)

// WithLogger sets logger.
func WithLogger(log *zap.Logger) ContextOption {
	return func(c *Context) {
		if log != nil {
			c.log = log
		}
	}
}

// WithDefaultStyle replaces built-in fallback style. Styles named in the
// script are resolved on top of it.
func WithDefaultStyle(s *Style) ContextOption {
	return func(c *Context) {
		if s != nil {
			c.Default = s
		}
	}
}

// WithWorkers sets number of lines parsed concurrently by Divs.
func WithWorkers(n int) ContextOption {
	return func(c *Context) {
		c.workers = n
	}
}

// WithWrapStyle overrides script WrapStyle header.
func WithWrapStyle(ws WrapStyle) ContextOption {
	return func(c *Context) {
		c.WrapStyle = ws
	}
}

// NewContext resolves script headers and styles.
func NewContext(script *Script, opts ...ContextOption) *Context {
	c := &Context{
		log:       zap.NewNop(),
		workers:   1,
		Default:   DefaultStyle(),
		WrapStyle: WrapStyle(-1),
	}
	for _, opt := range opts {
		opt(c)
	}
	c.log = c.log.Named("ssa-context")

	if script == nil {
		script = &Script{Headers: make(Headers)}
	}
	c.Dialect = script.Dialect
	c.Headers = script.Headers

	if c.WrapStyle < 0 {
		c.WrapStyle = WrapStyleSmart
		if v, ok := c.Headers.Lookup("WrapStyle"); ok {
			if ws := WrapStyle(atoi(v)); ws.IsValid() {
				c.WrapStyle = ws
			}
		}
	}
	if v, ok := c.Headers.Lookup("Collisions"); ok && strings.EqualFold(strings.TrimSpace(v), "reverse") {
		c.Collisions = CollisionsReverse
	}
	if v, ok := c.Headers.Lookup("ScaledBorderAndShadow"); ok {
		c.ScaledBorderAndShadow = strings.EqualFold(v, "yes") || atoi(v) != 0
	}
	c.PlayResX, c.PlayResY = playRes(c.Headers)

	c.styles = make(map[string]*Style, len(script.Styles))
	for _, row := range script.Styles {
		s := NewStyle(row, c.Dialect, c.Default)
		if _, ok := c.styles[s.Name]; !ok {
			c.styleNames = append(c.styleNames, s.Name)
		}
		c.styles[s.Name] = s
	}
	c.log.Debug("Context resolved",
		zap.Stringer("dialect", c.Dialect),
		zap.Int("styles", len(c.styles)),
		zap.Int("playResX", c.PlayResX),
		zap.Int("playResY", c.PlayResY))
	return c
}

// playRes derives missing play resolution side the way VSFilter does.
func playRes(h Headers) (int, int) {
	var x, y int
	if v, ok := h.Lookup("PlayResX"); ok {
		x = atoi(v)
	}
	if v, ok := h.Lookup("PlayResY"); ok {
		y = atoi(v)
	}
	switch {
	case x <= 0 && y <= 0:
		return DefaultPlayResX, DefaultPlayResY
	case y <= 0:
		if x == 1280 {
			return x, 1024
		}
		return x, x * 3 / 4
	case x <= 0:
		if y == 1024 {
			return 1280, y
		}
		return y * 4 / 3, y
	}
	return x, y
}

// StyleForName returns named style. A leading '*' is ignored, unknown names
// resolve to the default style.
func (c *Context) StyleForName(name string) *Style {
	name = strings.TrimPrefix(strings.TrimSpace(name), "*")
	if s, ok := c.styles[name]; ok {
		return s
	}
	return c.Default
}

// HasStyle reports whether the script defines named style.
func (c *Context) HasStyle(name string) bool {
	_, ok := c.styles[strings.TrimPrefix(strings.TrimSpace(name), "*")]
	return ok
}

// StyleNames returns style names in definition order.
func (c *Context) StyleNames() []string {
	return c.styleNames
}

// Title returns script title header.
func (c *Context) Title() string {
	v, _ := c.Headers.Lookup("Title")
	return v
}
