// Package content holds parsed subtitle script prepared for conversion.
package content

import (
	"context"
	"fmt"
	"io"
	"path/filepath"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"subc/common"
	"subc/ssa"
	"subc/state"
)

// Content is a parsed script with its resolved context and every event line
// assembled into divs.
type Content struct {
	SrcName      string
	ID           string
	OutputFormat common.OutputFmt

	Script  *ssa.Script
	Context *ssa.Context
	// Divs are all events in layer order, spans carry *ssa.Pen in Extra.
	Divs        []*ssa.Div
	Diagnostics ssa.Diagnostics
}

// Prepare reads already decoded script text, parses and assembles it.
func Prepare(ctx context.Context, r io.Reader, srcName string, outputFormat common.OutputFmt, log *zap.Logger) (*Content, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	env := state.EnvFromContext(ctx)

	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("unable to read script: %w", err)
	}

	id, err := uuid.NewV7()
	if err != nil {
		return nil, fmt.Errorf("unable to generate script UUID: %w", err)
	}

	script := ssa.ParseScript(string(data), ssa.WithScriptLogger(log))
	for _, w := range script.Warnings {
		log.Warn("Script problem", zap.String("file", srcName), zap.String("details", w))
	}
	if len(script.Events) == 0 {
		log.Warn("Script has no events", zap.String("file", srcName))
	}

	sc := ssa.NewContext(script, env.ScriptOptions()...)
	divs, diags := sc.Divs(script.Events, ssa.PenVisitor{})
	for _, d := range diags {
		log.Debug("Event text problem", zap.String("file", srcName), zap.Stringer("details", d))
	}

	c := &Content{
		SrcName:      srcName,
		ID:           id.String(),
		OutputFormat: outputFormat,
		Script:       script,
		Context:      sc,
		Divs:         divs,
		Diagnostics:  diags,
	}

	// Save decoded source and parsed tree for debugging
	if env.Rpt != nil {
		base := filepath.Base(srcName)
		env.Rpt.StoreData(fmt.Sprintf("%s/%s", c.ID, base), data)
		env.Rpt.StoreData(fmt.Sprintf("%s/%s_parsed.txt", c.ID, base), []byte(c.String()))
	}
	return c, nil
}

// Title returns script title or source file name when script has none.
func (c *Content) Title() string {
	if t := c.Context.Title(); t != "" {
		return t
	}
	base := filepath.Base(c.SrcName)
	return base[:len(base)-len(filepath.Ext(base))]
}
