package html

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/beevik/etree"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest"

	"subc/common"
	"subc/config"
	"subc/content"
	"subc/ssa"
	"subc/state"
)

const testScript = "[Script Info]\n" +
	"Title: Test <Show>\n" +
	"ScriptType: v4.00+\n" +
	"PlayResX: 640\n" +
	"PlayResY: 480\n" +
	"\n" +
	"[V4+ Styles]\n" +
	"Format: Name, Fontname, Fontsize, PrimaryColour, SecondaryColour, OutlineColour, BackColour, Bold, Italic, Underline, StrikeOut, ScaleX, ScaleY, Spacing, Angle, BorderStyle, Outline, Shadow, Alignment, MarginL, MarginR, MarginV, Encoding\n" +
	"Style: Default,Arial,32,&H00FFFFFF,&H000000FF,&H00000000,&H00000000,0,0,0,0,100,100,0,0,1,2,1,2,20,20,10,1\n" +
	"Style: Top Sign,Times New Roman,24,&H0000FFFF,&H000000FF,&H00000000,&H00000000,-1,1,1,0,100,100,1,0,1,0,0,8,40,40,10,1\n" +
	"\n" +
	"[Events]\n" +
	"Format: Layer, Start, End, Style, Name, MarginL, MarginR, MarginV, Effect, Text\n" +
	"Dialogue: 0,0:00:01.00,0:00:03.00,Default,,0,0,0,,first {\\b1}bold{\\b0}\\Nnext\n" +
	"Dialogue: 0,0:00:02.00,0:00:03.00,Default,,0,0,0,,second\n" +
	"Dialogue: 0,0:00:02.00,0:00:03.00,Top Sign,,0,0,0,,sign\n" +
	"Dialogue: 0,0:00:04.00,0:00:05.00,Default,,0,0,0,,{\\pos(10.5,20)}placed\n" +
	"Dialogue: 0,0:00:04.00,0:00:05.00,Default,,0,0,0,,{\\p1}m 0 0 l 10 10\n"

func setup(t *testing.T) (context.Context, *content.Content, *config.Config) {
	t.Helper()
	log := zaptest.NewLogger(t, zaptest.WrapOptions(zap.AddCaller(), zap.AddCallerSkip(1)))
	cfg, err := config.LoadConfiguration("")
	if err != nil {
		t.Fatalf("load config: %v", err)
	}
	ctx := state.ContextWithEnv(context.Background())
	env := state.EnvFromContext(ctx)
	env.Log = log
	env.Cfg = cfg

	c, err := content.Prepare(ctx, strings.NewReader(testScript), "show.ass", common.OutputFmtHtml, log)
	if err != nil {
		t.Fatalf("Prepare() error = %v", err)
	}
	return ctx, c, cfg
}

func build(t *testing.T, userCSS []byte) *etree.Document {
	t.Helper()
	ctx, c, cfg := setup(t)
	doc, err := Build(ctx, c, &cfg.Document.HTML, userCSS, zaptest.NewLogger(t))
	if err != nil {
		t.Fatalf("Build() error = %v", err)
	}
	return doc
}

func TestBuild_Head(t *testing.T) {
	doc := build(t, nil)

	if got := doc.FindElement("//head/title").Text(); got != "Test <Show>" {
		t.Errorf("title = %q", got)
	}
	if el := doc.FindElement("//head/meta[@charset='UTF-8']"); el == nil {
		t.Error("charset meta missing")
	}

	style := doc.FindElement("//head/style")
	if style == nil {
		t.Fatal("style element missing")
	}
	var sheet strings.Builder
	for _, ch := range style.Child {
		if cd, ok := ch.(*etree.CharData); ok {
			sheet.WriteString(cd.Data)
		}
	}
	for _, want := range []string{
		".screen {",
		"width: 640px;",
		"height: 480px;",
		"background-color: gray;",
		".style-default {",
		".style-top-sign {",
		`font-family: "Times New Roman";`,
		"font-size: 24pt;",
		"font-size: 18pt;",
		"font-weight: bold;",
		"font-style: italic;",
		"text-decoration: underline;",
		"text-align: center;",
		"vertical-align: top;",
		"width: 560px;",
		"color: #ffff00;",
	} {
		if !strings.Contains(sheet.String(), want) {
			t.Errorf("stylesheet missing %q\n%s", want, sheet.String())
		}
	}
}

func TestBuild_Screens(t *testing.T) {
	doc := build(t, nil)

	screens := doc.FindElements("//body/div[@class='screen']")
	// 1-2 first, 2-3 first+second+sign, 4-5 placed+drawing
	if len(screens) != 3 {
		t.Fatalf("got %d screens, want 3", len(screens))
	}
	if got := screens[0].SelectAttrValue("data-start", ""); got != "0:00:01.00" {
		t.Errorf("first screen start = %q", got)
	}
	if got := len(doc.FindElements("//body/br")); got != 3 {
		t.Errorf("got %d screen breaks, want 3", got)
	}

	// later lines are closer to the bottom
	bottom := screens[1].FindElement("div[@class='bottom']")
	if bottom == nil {
		t.Fatal("bottom group missing")
	}
	lines := bottom.SelectElements("span")
	if len(lines) != 2 {
		t.Fatalf("got %d bottom lines, want 2", len(lines))
	}
	if got := lines[0].Text(); got != "second" {
		t.Errorf("first bottom line = %q, want second", got)
	}

	top := screens[1].FindElement("div[@class='top']/span[@class='style-top-sign']")
	if top == nil || top.Text() != "sign" {
		t.Error("top sign line missing")
	}

	first := lines[1]
	if got := first.Text(); got != "first " {
		t.Errorf("first line leading text = %q", got)
	}
	bold := first.SelectElement("span")
	if bold == nil {
		t.Fatal("styled span missing")
	}
	if got := bold.SelectAttrValue("style", ""); got != "font-weight: bold;" {
		t.Errorf("span style = %q", got)
	}
	if bold.Text() != "bold" || first.SelectElement("br") == nil {
		t.Errorf("unexpected line content")
	}
	if br := first.SelectElement("br"); br.Tail() != "next" {
		t.Errorf("text after break = %q", br.Tail())
	}
}

func TestBuild_Positioned(t *testing.T) {
	doc := build(t, nil)

	screens := doc.FindElements("//body/div[@class='screen']")
	last := screens[len(screens)-1]
	abs := last.SelectElements("div")
	if len(abs) != 1 {
		t.Fatalf("got %d absolute divs, want 1 (drawing skipped)", len(abs))
	}
	if got := abs[0].SelectAttrValue("style", ""); got != "left: 10.5px; position: absolute; top: 20px;" {
		t.Errorf("position style = %q", got)
	}
	if span := abs[0].SelectElement("span"); span == nil || span.Text() != "placed" {
		t.Error("placed line missing")
	}
}

func TestBuild_TextAroundDrawing(t *testing.T) {
	ctx, _, cfg := setup(t)
	log := zaptest.NewLogger(t)

	script := "[Script Info]\nScriptType: v4.00+\n\n[Events]\n" +
		"Format: Layer, Start, End, Style, Name, MarginL, MarginR, MarginV, Effect, Text\n" +
		"Dialogue: 0,0:00:01.00,0:00:02.00,Default,,0,0,0,,text{\\p1}m 0 0 l 10 10\n" +
		"Dialogue: 0,0:00:01.00,0:00:02.00,Default,,0,0,0,,{\\p1}m 0 0{\\p0}\n"
	c, err := content.Prepare(ctx, strings.NewReader(script), "drawing.ass", common.OutputFmtHtml, log)
	if err != nil {
		t.Fatalf("Prepare() error = %v", err)
	}
	doc, err := Build(ctx, c, &cfg.Document.HTML, nil, log)
	if err != nil {
		t.Fatalf("Build() error = %v", err)
	}

	lines := doc.FindElements("//body/div[@class='screen']/div[@class='bottom']/span")
	if len(lines) != 1 {
		t.Fatalf("got %d lines, want 1 (drawing only line skipped)", len(lines))
	}
	if got := lines[0].Text(); got != "text" {
		t.Errorf("line text = %q, want text", got)
	}
}

func TestBuild_UserCSS(t *testing.T) {
	doc := build(t, []byte(`@import url("fonts.css"); .screen { background-color: black }`))

	var sheet strings.Builder
	for _, ch := range doc.FindElement("//head/style").Child {
		if cd, ok := ch.(*etree.CharData); ok {
			sheet.WriteString(cd.Data)
		}
	}
	out := sheet.String()
	if !strings.Contains(out, "background-color: black;") {
		t.Errorf("user rule missing:\n%s", out)
	}
	if strings.Index(out, "@import") > strings.Index(out, ".screen") {
		t.Errorf("@import must come first:\n%s", out)
	}
}

func TestBuild_NoScreenBreaks(t *testing.T) {
	ctx, c, cfg := setup(t)
	cfg.Document.HTML.ScreenBreaks = false

	doc, err := Build(ctx, c, &cfg.Document.HTML, nil, zaptest.NewLogger(t))
	if err != nil {
		t.Fatalf("Build() error = %v", err)
	}
	if got := len(doc.FindElements("//body/br")); got != 0 {
		t.Errorf("got %d screen breaks, want none", got)
	}
}

func TestBuild_Canceled(t *testing.T) {
	ctx, c, cfg := setup(t)
	ctx, cancel := context.WithCancel(ctx)
	cancel()

	if _, err := Build(ctx, c, &cfg.Document.HTML, nil, zaptest.NewLogger(t)); err == nil {
		t.Error("expected error for canceled context")
	}
}

func TestGenerate(t *testing.T) {
	ctx, c, cfg := setup(t)
	out := filepath.Join(t.TempDir(), "sub", "show.html")

	if err := Generate(ctx, c, out, &cfg.Document, zaptest.NewLogger(t)); err != nil {
		t.Fatalf("Generate() error = %v", err)
	}
	data, err := os.ReadFile(out)
	if err != nil {
		t.Fatalf("read output: %v", err)
	}
	s := string(data)
	if !strings.HasPrefix(s, "<!DOCTYPE html>") {
		t.Errorf("missing doctype: %.40q", s)
	}
	if !strings.Contains(s, "<title>Test &lt;Show&gt;</title>") {
		t.Errorf("title not escaped")
	}
	if !strings.Contains(s, "/*<![CDATA[*/") {
		t.Errorf("style block not wrapped")
	}
}

func TestClass(t *testing.T) {
	e := &exporter{classes: make(map[string]string), taken: make(map[string]bool)}

	tests := []struct{ name, want string }{
		{"Default", "style-default"},
		{"Top Sign", "style-top-sign"},
		{"top sign", "style-top-sign-2"},
		{"Default", "style-default"},
		{"!!!", "style"},
		{"???", "style-2"},
	}
	for _, tt := range tests {
		if got := e.class(tt.name); got != tt.want {
			t.Errorf("class(%q) = %q, want %q", tt.name, got, tt.want)
		}
	}
}

func TestPenRule(t *testing.T) {
	base := ssa.NewPen(ssa.DefaultStyle())

	if got := penRule(base, base).Declarations(); got != "" {
		t.Errorf("same pen declarations = %q, want empty", got)
	}

	p := base.Clone().(*ssa.Pen)
	p.Italic = true
	p.StrikeOut = true
	p.FontName = "Comic Sans"
	p.Colors[0] = ssa.ColorFromBGR(0x0000FF)
	got := penRule(p, base).Declarations()
	want := `color: #ff0000; font-family: "Comic Sans"; font-style: italic; text-decoration: line-through;`
	if got != want {
		t.Errorf("declarations = %q, want %q", got, want)
	}
}
