package dump

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"go.uber.org/zap/zaptest"

	"subc/common"
	"subc/content"
	"subc/state"
)

const testScript = "[Script Info]\nScriptType: v4.00\n\n" +
	"[V4 Styles]\n" +
	"Format: Name, Fontname, Fontsize, PrimaryColour, SecondaryColour, TertiaryColour, BackColour, Bold, Italic, BorderStyle, Outline, Shadow, Alignment, MarginL, MarginR, MarginV, AlphaLevel, Encoding\n" +
	"Style: Default,Tahoma,22,16777215,65535,0,0,0,0,1,2,0,6,30,30,10,0,0\n\n" +
	"[Events]\n" +
	"Format: Marked, Start, End, Style, Name, MarginL, MarginR, MarginV, Effect, Text\n" +
	"Dialogue: Marked=0,0:00:00.50,0:00:01.50,Default,,0000,0000,0000,,{\\a2}legacy\n"

func TestGenerate(t *testing.T) {
	log := zaptest.NewLogger(t)
	ctx := state.ContextWithEnv(context.Background())
	state.EnvFromContext(ctx).Log = log

	c, err := content.Prepare(ctx, strings.NewReader(testScript), "legacy.ssa", common.OutputFmtDump, log)
	if err != nil {
		t.Fatalf("Prepare() error = %v", err)
	}

	out := filepath.Join(t.TempDir(), "nested", "legacy.txt")
	if err := Generate(ctx, c, out, nil, log); err != nil {
		t.Fatalf("Generate() error = %v", err)
	}

	data, err := os.ReadFile(out)
	if err != nil {
		t.Fatalf("read output: %v", err)
	}
	if string(data) != c.String() {
		t.Errorf("output differs from content dump")
	}
	for _, want := range []string{"dialect=ssa", `Style["Default"] font="Tahoma" size=22`, "align=2", `text: "legacy"`} {
		if !strings.Contains(string(data), want) {
			t.Errorf("output missing %q\n%s", want, data)
		}
	}
}

func TestGenerate_Canceled(t *testing.T) {
	ctx, cancel := context.WithCancel(state.ContextWithEnv(context.Background()))
	cancel()

	if err := Generate(ctx, &content.Content{}, filepath.Join(t.TempDir(), "x.txt"), nil, zaptest.NewLogger(t)); err == nil {
		t.Error("expected error for canceled context")
	}
}
