package config

import (
	"bytes"
	_ "embed"
	"fmt"
	"os"

	yaml "gopkg.in/yaml.v3"

	"github.com/rupor-github/gencfg"

	"subc/ssa"
)

//go:embed config.yaml.tmpl
var ConfigTmpl []byte

type (
	TemplateFieldName string

	// StyleConfig overrides built-in fallback style used for events
	// referencing styles the script does not define. Zero values keep
	// built-in defaults.
	StyleConfig struct {
		FontName string  `yaml:"font_name"`
		FontSize float64 `yaml:"font_size" validate:"gte=0"`
		MarginL  int     `yaml:"margin_left" validate:"gte=0"`
		MarginR  int     `yaml:"margin_right" validate:"gte=0"`
		MarginV  int     `yaml:"margin_vertical" validate:"gte=0"`
	}

	HTMLConfig struct {
		StylesheetPath string `yaml:"stylesheet_path" sanitize:"assure_file_access"`
		Background     string `yaml:"background" validate:"required"`
		// ScreenBreaks separates time slices with <br>.
		ScreenBreaks bool `yaml:"screen_breaks"`
	}

	DocumentConfig struct {
		DefaultStyle StyleConfig `yaml:"default_style"`
		// WrapStyle overrides script WrapStyle header when not empty.
		WrapStyle             string     `yaml:"wrap_style" validate:"omitempty,oneof=smart endOfLine none smartLower"`
		Workers               int        `yaml:"workers" validate:"gte=0"`
		OutputNameTemplate    string     `yaml:"output_name_template"`
		FileNameTransliterate bool       `yaml:"file_name_transliterate"`
		HTML                  HTMLConfig `yaml:"html"`
	}

	Config struct {
		Version   int            `yaml:"version" validate:"eq=1"`
		Document  DocumentConfig `yaml:"document"`
		Logging   LoggingConfig  `yaml:"logging"`
		Reporting ReporterConfig `yaml:"reporting"`
	}
)

const (
	// NOTE: must match yaml field name above
	OutputNameTemplateFieldName TemplateFieldName = "output_name_template"

	untitledFileName = "_untitled_"
)

var requiredOptions = append([]func(*gencfg.ProcessingOptions){},
	gencfg.WithDoNotExpandField(string(OutputNameTemplateFieldName)),
)

func unmarshalConfig(data []byte, cfg *Config, process bool) (*Config, error) {
	// We want to use only fields we defined so we cannot use yaml.Unmarshal
	// directly here
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(cfg); err != nil {
		return nil, fmt.Errorf("failed to decode configuration data: %w", err)
	}
	if process {
		// sanitize and validate what has been loaded
		if err := gencfg.Sanitize(cfg); err != nil {
			return nil, err
		}
		if err := gencfg.Validate(cfg); err != nil {
			return nil, err
		}
	}
	return cfg, nil
}

// LoadConfiguration reads the configuration from the file at the given path,
// superimposes its values on top of expanded configuration tamplate to provide
// sane defaults and performs validation.
func LoadConfiguration(path string, options ...func(*gencfg.ProcessingOptions)) (*Config, error) {
	haveFile := len(path) > 0

	data, err := gencfg.Process(ConfigTmpl, append(requiredOptions, options...)...)
	if err != nil {
		return nil, fmt.Errorf("failed to process configuration template: %w", err)
	}
	cfg, err := unmarshalConfig(data, &Config{}, !haveFile)
	if err != nil {
		return nil, fmt.Errorf("failed to process configuration template: %w", err)
	}
	if !haveFile {
		return cfg, nil
	}

	// overwrite cfg values with values from the file
	data, err = os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}
	cfg, err = unmarshalConfig(data, cfg, haveFile)
	if err != nil {
		return nil, fmt.Errorf("failed to process configuration file: %w", err)
	}
	return cfg, nil
}

// Prepare generates configuration file from template and returns it as a byte
// slice.
func Prepare() ([]byte, error) {
	return gencfg.Process(ConfigTmpl, requiredOptions...)
}

func Dump(cfg *Config) ([]byte, error) {
	data, err := yaml.Marshal(*cfg)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal config to yaml: %v", err)
	}
	return data, nil
}

// Style returns fallback style with configured overrides applied on top of
// built-in defaults.
func (conf *StyleConfig) Style() *ssa.Style {
	s := ssa.DefaultStyle()
	if len(conf.FontName) > 0 {
		s.FontName = conf.FontName
	}
	if conf.FontSize > 0 {
		s.FontSize = conf.FontSize
	}
	if conf.MarginL > 0 {
		s.MarginL = conf.MarginL
	}
	if conf.MarginR > 0 {
		s.MarginR = conf.MarginR
	}
	if conf.MarginV > 0 {
		s.MarginV = conf.MarginV
	}
	return s
}

// ContextOptions translates document settings into script context options.
func (conf *DocumentConfig) ContextOptions() []ssa.ContextOption {
	opts := []ssa.ContextOption{
		ssa.WithDefaultStyle(conf.DefaultStyle.Style()),
	}
	if conf.Workers > 0 {
		opts = append(opts, ssa.WithWorkers(conf.Workers))
	}
	if len(conf.WrapStyle) > 0 {
		if ws, err := ssa.ParseWrapStyle(conf.WrapStyle); err == nil {
			opts = append(opts, ssa.WithWrapStyle(ws))
		}
	}
	return opts
}
