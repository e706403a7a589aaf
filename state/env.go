// Package state defines shared program state.
package state

import (
	"context"
	"time"

	"go.uber.org/zap"
	"golang.org/x/text/encoding"

	"subc/common"
	"subc/config"
	"subc/ssa"
)

type envKey struct{}

// LocalEnv keeps everything program needs in a single place.
type LocalEnv struct {
	Cfg *config.Config
	Rpt *config.Report
	Log *zap.Logger

	// used by conversion subcommands
	NoDirs    bool
	Overwrite bool
	Format    common.OutputFmt
	// CodePage is used to decode scripts without BOM instead of detection.
	CodePage encoding.Encoding
	// Stylesheet is user CSS merged into html output.
	Stylesheet []byte

	start         time.Time
	restoreStdLog func()
}

func EnvFromContext(ctx context.Context) *LocalEnv {
	if env, ok := ctx.Value(envKey{}).(*LocalEnv); ok {
		return env
	}
	// this should never happen
	panic("localenv not found in context")
}

func ContextWithEnv(ctx context.Context) context.Context {
	return context.WithValue(ctx, envKey{}, newLocalEnv())
}

func (e *LocalEnv) Uptime() time.Duration {
	return time.Since(e.start)
}

func (e *LocalEnv) RedirectStdLog() {
	if e.Log == nil {
		return
	}
	e.restoreStdLog = zap.RedirectStdLog(e.Log)
}

func (e *LocalEnv) RestoreStdLog() {
	if e.Log != nil {
		_ = e.Log.Sync()
	}
	if e.restoreStdLog != nil {
		e.restoreStdLog()
	}
}

// ScriptOptions returns options for building script context from current
// configuration.
func (e *LocalEnv) ScriptOptions() []ssa.ContextOption {
	var opts []ssa.ContextOption
	if e.Cfg != nil {
		opts = e.Cfg.Document.ContextOptions()
	}
	if e.Log != nil {
		opts = append(opts, ssa.WithLogger(e.Log))
	}
	return opts
}
