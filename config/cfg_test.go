package config

import (
	"os"
	"path/filepath"
	"runtime"
	"testing"

	"github.com/rupor-github/gencfg"

	"subc/common"
	"subc/ssa"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("Failed to write config file: %v", err)
	}
	return path
}

func TestLoadConfiguration_NoFile(t *testing.T) {
	cfg, err := LoadConfiguration("")
	if err != nil {
		t.Fatalf("LoadConfiguration() with empty path error = %v", err)
	}
	if cfg == nil {
		t.Fatal("LoadConfiguration() returned nil config")
	}
	if cfg.Version != 1 {
		t.Errorf("Default config version = %d, want 1", cfg.Version)
	}
	if cfg.Document.Workers < 1 {
		t.Errorf("Default workers = %d, want number of CPUs", cfg.Document.Workers)
	}
	if cfg.Document.HTML.Background != "gray" {
		t.Errorf("Default background = %q, want gray", cfg.Document.HTML.Background)
	}
	if cfg.Document.WrapStyle != "" {
		t.Errorf("Default wrap style = %q, want empty", cfg.Document.WrapStyle)
	}
}

func TestPrepare_ExpandsTemplate(t *testing.T) {
	data, err := Prepare()
	if err != nil {
		t.Fatalf("Prepare() error = %v", err)
	}
	cfg, err := unmarshalConfig(data, &Config{}, false)
	if err != nil {
		t.Fatalf("unmarshalConfig() of expanded template error = %v\n%s", err, data)
	}
	if cfg.Document.Workers != runtime.NumCPU() {
		t.Errorf("workers = %d, want %d", cfg.Document.Workers, runtime.NumCPU())
	}
}

func TestLoadConfiguration_WithFile(t *testing.T) {
	path := writeConfig(t, `version: 1
document:
  default_style:
    font_name: Verdana
    font_size: 24
    margin_vertical: 30
  wrap_style: none
  workers: 3
  output_name_template: "{{ .Title }}"
  html:
    background: black
    screen_breaks: false
logging:
  console:
    level: normal
  file:
    level: debug
    destination: `+filepath.Join(t.TempDir(), "test.log")+`
    mode: rotate
`)

	cfg, err := LoadConfiguration(path)
	if err != nil {
		t.Fatalf("LoadConfiguration() error = %v", err)
	}

	doc := cfg.Document
	if doc.DefaultStyle.FontName != "Verdana" || doc.DefaultStyle.FontSize != 24 || doc.DefaultStyle.MarginV != 30 {
		t.Errorf("DefaultStyle = %+v", doc.DefaultStyle)
	}
	if doc.Workers != 3 {
		t.Errorf("Workers = %d, want 3", doc.Workers)
	}
	if doc.OutputNameTemplate != "{{ .Title }}" {
		t.Errorf("OutputNameTemplate = %q, must not be expanded", doc.OutputNameTemplate)
	}
	if doc.HTML.Background != "black" || doc.HTML.ScreenBreaks {
		t.Errorf("HTML = %+v", doc.HTML)
	}
	if cfg.Logging.FileLogger.Mode != "rotate" {
		t.Errorf("file logger mode = %q, want rotate", cfg.Logging.FileLogger.Mode)
	}
}

func TestLoadConfiguration_Errors(t *testing.T) {
	tests := []struct {
		name    string
		content string
	}{
		{"invalid yaml", "version: 1\ndocument:\n  workers: 1\n  invalid indent\n"},
		{"unknown field", "version: 1\nunknown_field: value\n"},
		{"bad version", "version: 2\n"},
		{"bad wrap style", "version: 1\ndocument:\n  wrap_style: sideways\n"},
		{"negative workers", "version: 1\ndocument:\n  workers: -1\n"},
		{"bad log mode", "version: 1\nlogging:\n  file:\n    level: none\n    mode: sometimes\n"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := LoadConfiguration(writeConfig(t, tt.content)); err == nil {
				t.Error("expected error")
			}
		})
	}

	if _, err := LoadConfiguration("/nonexistent/config.yaml"); err == nil {
		t.Error("Expected error for nonexistent file")
	}
}

func TestLoadConfiguration_WithOptions(t *testing.T) {
	option := func(opts *gencfg.ProcessingOptions) {}

	cfg, err := LoadConfiguration("", option)
	if err != nil {
		t.Fatalf("LoadConfiguration() with options error = %v", err)
	}
	if cfg == nil {
		t.Fatal("LoadConfiguration() returned nil config")
	}
}

func TestLoadConfiguration_MergeWithDefaults(t *testing.T) {
	cfg, err := LoadConfiguration(writeConfig(t, "version: 1\ndocument:\n  file_name_transliterate: true\n"))
	if err != nil {
		t.Fatalf("LoadConfiguration() error = %v", err)
	}
	if !cfg.Document.FileNameTransliterate {
		t.Error("Expected FileNameTransliterate to be true from config file")
	}
	if cfg.Document.HTML.Background != "gray" {
		t.Errorf("Background = %q, default expected", cfg.Document.HTML.Background)
	}
	if cfg.Reporting.Destination == "" {
		t.Error("Reporting destination should have default value")
	}
}

func TestPrepare(t *testing.T) {
	data, err := Prepare()
	if err != nil {
		t.Fatalf("Prepare() error = %v", err)
	}
	if len(data) == 0 {
		t.Fatal("Prepare() returned empty data")
	}
	if _, err = unmarshalConfig(data, &Config{}, true); err != nil {
		t.Errorf("Prepared config is not valid: %v", err)
	}
}

func TestDump(t *testing.T) {
	cfg := &Config{
		Version: 1,
		Document: DocumentConfig{
			WrapStyle: "endOfLine",
			Workers:   2,
			HTML:      HTMLConfig{Background: "gray"},
		},
	}

	data, err := Dump(cfg)
	if err != nil {
		t.Fatalf("Dump() error = %v", err)
	}

	cfg2, err := unmarshalConfig(data, &Config{}, false)
	if err != nil {
		t.Fatalf("Dumped config cannot be loaded: %v", err)
	}
	if cfg2.Version != cfg.Version || cfg2.Document.WrapStyle != "endOfLine" || cfg2.Document.Workers != 2 {
		t.Errorf("mismatch after dump/load: %+v", cfg2.Document)
	}
}

func TestStyleConfig_Style(t *testing.T) {
	def := ssa.DefaultStyle()

	s := (&StyleConfig{}).Style()
	if s.FontName != def.FontName || s.FontSize != def.FontSize || s.MarginV != def.MarginV {
		t.Errorf("empty overrides changed defaults: %+v", s)
	}

	s = (&StyleConfig{FontName: "Verdana", FontSize: 30, MarginL: 5, MarginR: 6, MarginV: 7}).Style()
	if s.FontName != "Verdana" || s.FontSize != 30 || s.MarginL != 5 || s.MarginR != 6 || s.MarginV != 7 {
		t.Errorf("overrides not applied: %+v", s)
	}
}

func TestDocumentConfig_ContextOptions(t *testing.T) {
	doc := DocumentConfig{
		DefaultStyle: StyleConfig{FontName: "Verdana"},
		WrapStyle:    "none",
		Workers:      4,
	}
	script := ssa.ParseScript("[Script Info]\nWrapStyle: 1\n")
	ctx := ssa.NewContext(script, doc.ContextOptions()...)

	if ctx.WrapStyle != ssa.WrapStyleNone {
		t.Errorf("WrapStyle = %v, want none", ctx.WrapStyle)
	}
	if ctx.Default.FontName != "Verdana" {
		t.Errorf("Default.FontName = %q", ctx.Default.FontName)
	}

	doc.WrapStyle = ""
	ctx = ssa.NewContext(script, doc.ContextOptions()...)
	if ctx.WrapStyle != ssa.WrapStyleEndOfLine {
		t.Errorf("WrapStyle = %v, want header value endOfLine", ctx.WrapStyle)
	}
}

func TestOutputFmt(t *testing.T) {
	tests := []struct {
		fmt  common.OutputFmt
		name string
		ext  string
	}{
		{common.OutputFmtDump, "dump", ".txt"},
		{common.OutputFmtHtml, "html", ".html"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.fmt.String(); got != tt.name {
				t.Errorf("String() = %q, want %q", got, tt.name)
			}
			if got := tt.fmt.Ext(); got != tt.ext {
				t.Errorf("Ext() = %q, want %q", got, tt.ext)
			}
			parsed, err := common.ParseOutputFmt(tt.name)
			if err != nil || parsed != tt.fmt {
				t.Errorf("ParseOutputFmt(%q) = %v, %v", tt.name, parsed, err)
			}
		})
	}
	if got := common.OutputFmt(99).String(); got != "OutputFmt(99)" {
		t.Errorf("String() = %q", got)
	}
}
