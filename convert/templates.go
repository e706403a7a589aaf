package convert

import (
	"bytes"
	"fmt"
	"path/filepath"
	"strings"
	"text/template"
	"time"

	sprig "github.com/go-task/slim-sprig/v3"
	"github.com/gosimple/slug"

	"subc/common"
	"subc/config"
	"subc/content"
	"subc/ssa"
)

// Values is a struct that holds variables we make available for template expansion
type Values struct {
	Context    string
	Title      string
	Author     string
	Translator string
	Dialect    string
	Format     string
	SourceFile string
	ScriptID   string
	Styles     []string
	Lines      int
	// Duration is end time of the last line.
	Duration string
	Headers  map[string]string
}

func lastEnd(divs []*ssa.Div) time.Duration {
	var end time.Duration
	for _, d := range divs {
		if d.Event != nil && d.Event.End > end {
			end = d.Event.End
		}
	}
	return end
}

func header(c *content.Content, name string) string {
	v, _ := c.Script.Headers.Lookup(name)
	return v
}

func expandTemplate(c *content.Content, name config.TemplateFieldName, field string, format common.OutputFmt) (string, error) {
	funcMap := sprig.FuncMap()
	funcMap["slug"] = slug.Make

	tmpl, err := template.New(string(name)).Funcs(funcMap).Parse(field)
	if err != nil {
		return "", fmt.Errorf("unable to parse template field %s: %w", name, err)
	}

	values := Values{
		Context:    string(name),
		Title:      header(c, "Title"),
		Author:     header(c, "Original Script"),
		Translator: header(c, "Original Translation"),
		Dialect:    c.Script.Dialect.String(),
		Format:     format.String(),
		SourceFile: strings.TrimSuffix(filepath.Base(c.SrcName), filepath.Ext(c.SrcName)),
		ScriptID:   c.ID,
		Styles:     c.Context.StyleNames(),
		Lines:      len(c.Divs),
		Duration:   ssa.FormatTimestamp(lastEnd(c.Divs)),
		Headers:    c.Script.Headers,
	}

	buf := new(bytes.Buffer)
	if err := tmpl.Execute(buf, values); err != nil {
		return "", err
	}
	return buf.String(), nil
}
