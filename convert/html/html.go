// Package html renders subtitle script as HTML page, one screen per
// distinct set of simultaneously visible lines.
package html

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/beevik/etree"
	"github.com/gosimple/slug"
	"go.uber.org/zap"

	"subc/config"
	"subc/content"
	"subc/css"
	"subc/misc"
	"subc/ssa"
	"subc/state"
)

// point to pixel ratio used for font sizes
const fontScale = 72.0 / 96.0

// Generate writes HTML rendition of c to outputPath.
func Generate(ctx context.Context, c *content.Content, outputPath string, cfg *config.DocumentConfig, log *zap.Logger) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	env := state.EnvFromContext(ctx)

	log.Info("Generating HTML", zap.String("output", outputPath))

	doc, err := Build(ctx, c, &cfg.HTML, env.Stylesheet, log)
	if err != nil {
		return err
	}

	if err := os.MkdirAll(filepath.Dir(outputPath), 0755); err != nil {
		return fmt.Errorf("unable to create output directory: %w", err)
	}
	f, err := os.Create(outputPath)
	if err != nil {
		return fmt.Errorf("unable to create output file: %w", err)
	}
	defer f.Close()

	if _, err := doc.WriteTo(f); err != nil {
		return fmt.Errorf("unable to write output file: %w", err)
	}
	return f.Close()
}

type exporter struct {
	c   *content.Content
	cfg *config.HTMLConfig
	log *zap.Logger

	// style name to CSS class
	classes map[string]string
	taken   map[string]bool
}

// Build makes HTML document for c. User CSS, if any, is appended after
// generated rules.
func Build(ctx context.Context, c *content.Content, cfg *config.HTMLConfig, userCSS []byte, log *zap.Logger) (*etree.Document, error) {
	e := &exporter{
		c:       c,
		cfg:     cfg,
		log:     log.Named("html"),
		classes: make(map[string]string),
		taken:   make(map[string]bool),
	}

	sheet := e.stylesheet()
	if len(userCSS) > 0 {
		sheet.Merge(css.NewParser(log).Parse(userCSS, "user stylesheet"))
	}
	for _, w := range sheet.Warnings {
		e.log.Warn("Stylesheet problem", zap.String("details", w))
	}

	doc := etree.NewDocument()
	doc.CreateDirective("DOCTYPE html")

	html := doc.CreateElement("html")
	head := html.CreateElement("head")

	meta := head.CreateElement("meta")
	meta.CreateAttr("charset", "UTF-8")
	meta = head.CreateElement("meta")
	meta.CreateAttr("name", "generator")
	meta.CreateAttr("content", misc.GetAppName()+" "+misc.GetVersion())

	head.CreateElement("title").SetText(c.Title())

	// keep style text valid for both HTML and XML parsers
	style := head.CreateElement("style")
	style.CreateAttr("type", "text/css")
	style.CreateText("/*")
	style.CreateCData("*/\n" + sheet.String() + "/*")
	style.CreateText("*/")

	body := html.CreateElement("body")
	for _, pkt := range ssa.Serialize(c.Script.Events) {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		divs, diags := c.Context.ParsePacket(pkt.Text, ssa.PenVisitor{})
		for _, d := range diags {
			e.log.Debug("Packet line problem", zap.Stringer("details", d))
		}
		e.screen(body, pkt, divs)
	}
	return doc, nil
}

// class returns CSS class for style name.
func (e *exporter) class(name string) string {
	if cl, ok := e.classes[name]; ok {
		return cl
	}
	base := "style-" + slug.Make(name)
	if base == "style-" {
		base = "style"
	}
	cl := base
	for n := 2; e.taken[cl]; n++ {
		cl = base + "-" + strconv.Itoa(n)
	}
	e.taken[cl] = true
	e.classes[name] = cl
	return cl
}

func (e *exporter) stylesheet() *css.Stylesheet {
	sc := e.c.Context
	sheet := &css.Stylesheet{}
	sheet.Add(css.NewRule(".screen").
		Set("width", css.Px(float64(sc.PlayResX))).
		Set("height", css.Px(float64(sc.PlayResY))).
		Set("background-color", css.Raw(e.cfg.Background)).
		Set("position", css.Keyword("relative")).
		Set("display", css.Keyword("table")))
	sheet.Add(css.NewRule(".bottom").
		Set("bottom", css.Px(20)).
		Set("position", css.Keyword("absolute")))
	sheet.Add(css.NewRule(".top").
		Set("top", css.Px(20)).
		Set("position", css.Keyword("absolute")))

	styles := make([]*ssa.Style, 0, len(sc.StyleNames())+1)
	for _, name := range sc.StyleNames() {
		styles = append(styles, sc.StyleForName(name))
	}
	if !sc.HasStyle(sc.Default.Name) {
		styles = append(styles, sc.Default)
	}
	for _, s := range styles {
		sheet.Add(e.styleRule(s))
	}
	return sheet
}

func (e *exporter) styleRule(s *ssa.Style) *css.Rule {
	width := e.c.Context.PlayResX - s.MarginL - s.MarginR
	shadow := css.Px(s.ShadowDepth * 2).Raw
	return css.NewRule("."+e.class(s.Name)).
		Set("display", css.Keyword("table-cell")).
		Set("font-family", css.String(s.FontName)).
		Set("font-size", css.Pt(s.FontSize*fontScale)).
		Set("color", css.Raw(s.Primary.CSS())).
		Set("-webkit-text-stroke-color", css.Raw(s.Outline.CSS())).
		Set("-webkit-text-stroke-width", css.Px(s.OutlineWidth)).
		Set("letter-spacing", css.Px(s.Spacing)).
		Set("text-shadow", css.Raw(strings.Join([]string{s.Back.CSS(), shadow, shadow, "0"}, " "))).
		Set("width", css.Px(float64(max(width, 0)))).
		Set("font-weight", css.Keyword(fontWeight(s.Weight()))).
		Set("font-style", css.Keyword(fontStyle(s.Italic))).
		Set("text-decoration", css.Keyword(textDecoration(s.Underline, s.StrikeOut))).
		Set("text-align", css.Keyword(s.AlignH.String())).
		Set("vertical-align", css.Keyword(s.AlignV.String()))
}

func fontWeight(w int) string {
	switch w {
	case 400:
		return "normal"
	case 700:
		return "bold"
	}
	return strconv.Itoa(w)
}

func fontStyle(italic bool) string {
	if italic {
		return "italic"
	}
	return "normal"
}

func textDecoration(underline, strikeOut bool) string {
	switch {
	case underline && strikeOut:
		return "underline line-through"
	case underline:
		return "underline"
	case strikeOut:
		return "line-through"
	}
	return "none"
}

// penRule has declarations for pen attributes which differ from base.
func penRule(p, base *ssa.Pen) *css.Rule {
	r := css.NewRule("")
	if p.FontName != base.FontName {
		r.Set("font-family", css.String(p.FontName))
	}
	if p.FontSize != base.FontSize {
		r.Set("font-size", css.Pt(p.FontSize*fontScale))
	}
	if p.Weight() != base.Weight() {
		r.Set("font-weight", css.Keyword(fontWeight(p.Weight())))
	}
	if p.Italic != base.Italic {
		r.Set("font-style", css.Keyword(fontStyle(p.Italic)))
	}
	if p.Underline != base.Underline || p.StrikeOut != base.StrikeOut {
		r.Set("text-decoration", css.Keyword(textDecoration(p.Underline, p.StrikeOut)))
	}
	if p.Colors[0] != base.Colors[0] {
		r.Set("color", css.Raw(p.Colors[0].CSS()))
	}
	if p.Colors[2] != base.Colors[2] {
		r.Set("-webkit-text-stroke-color", css.Raw(p.Colors[2].CSS()))
	}
	if p.BorderX != base.BorderX {
		r.Set("-webkit-text-stroke-width", css.Px(p.BorderX))
	}
	if p.Spacing != base.Spacing {
		r.Set("letter-spacing", css.Px(p.Spacing))
	}
	if p.Colors[3] != base.Colors[3] || p.ShadowX != base.ShadowX || p.ShadowY != base.ShadowY {
		r.Set("text-shadow", css.Raw(strings.Join([]string{
			p.Colors[3].CSS(), css.Px(p.ShadowX * 2).Raw, css.Px(p.ShadowY * 2).Raw, "0",
		}, " ")))
	}
	return r
}

// screen renders one packet. Positioned lines are placed absolutely, others
// are stacked at top or bottom of the screen.
func (e *exporter) screen(body *etree.Element, pkt ssa.Packet, divs []*ssa.Div) {
	var top, bottom, absolute []*ssa.Div
	for _, d := range divs {
		switch {
		case hasDrawing(d) && strings.TrimSpace(d.Text) == "":
			// vector drawings are not rendered, text around them is
		case d.Positioned:
			absolute = append(absolute, d)
		case d.AlignV == ssa.AlignVTop:
			top = append(top, d)
		default:
			// later lines are drawn closer to the bottom edge
			bottom = append([]*ssa.Div{d}, bottom...)
		}
	}

	scr := body.CreateElement("div")
	scr.CreateAttr("class", "screen")
	scr.CreateAttr("data-start", ssa.FormatTimestamp(pkt.Start))
	scr.CreateAttr("data-end", ssa.FormatTimestamp(pkt.End))

	if len(top) > 0 {
		group := scr.CreateElement("div")
		group.CreateAttr("class", "top")
		e.lines(group, top)
	}
	if len(bottom) > 0 {
		group := scr.CreateElement("div")
		group.CreateAttr("class", "bottom")
		e.lines(group, bottom)
	}
	e.lines(scr, absolute)

	if e.cfg.ScreenBreaks {
		body.CreateElement("br")
	}
}

// hasDrawing reports whether any part of the line was in drawing mode.
func hasDrawing(d *ssa.Div) bool {
	if d.DrawingScale > 0 {
		return true
	}
	for _, sp := range d.Spans {
		if p, ok := sp.Delta.Get(ssa.TagDrawing); ok && p.Float > 0 {
			return true
		}
	}
	return false
}

func (e *exporter) lines(parent *etree.Element, divs []*ssa.Div) {
	for _, d := range divs {
		holder := parent
		if d.Positioned {
			holder = parent.CreateElement("div")
			holder.CreateAttr("style", css.NewRule("").
				Set("top", css.Px(d.PosY)).
				Set("left", css.Px(d.PosX)).
				Set("position", css.Keyword("absolute")).
				Declarations())
		}
		line := holder.CreateElement("span")
		line.CreateAttr("class", e.class(d.Style.Name))

		base := ssa.NewPen(d.Style)
		for i := range d.Spans {
			text := d.SpanText(i)
			if text == "" {
				continue
			}
			target := line
			if p := d.SpanPen(i); p != nil {
				if decl := penRule(p, base).Declarations(); decl != "" {
					target = line.CreateElement("span")
					target.CreateAttr("style", decl)
				}
			}
			appendText(target, text)
		}
	}
}

// appendText adds text to the end of element content, line breaks become
// <br> elements.
func appendText(el *etree.Element, text string) {
	for i, part := range strings.Split(text, "\n") {
		if i > 0 {
			el.CreateElement("br")
		}
		if part == "" {
			continue
		}
		if children := el.ChildElements(); len(children) > 0 {
			last := children[len(children)-1]
			last.SetTail(last.Tail() + part)
		} else {
			el.SetText(el.Text() + part)
		}
	}
}
