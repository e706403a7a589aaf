package ssa_test

import (
	"testing"
	"time"

	"subc/ssa"
)

func TestParseColor(t *testing.T) {
	tests := []struct {
		in   string
		want ssa.Color
	}{
		{"&H00FFFFFF", ssa.Color{R: 255, G: 255, B: 255, A: 255}},
		{"&H000000FF", ssa.Color{R: 255, A: 255}},
		{"&H80FF0000", ssa.Color{B: 255, A: 127}},
		{"&HFF00FF00&", ssa.Color{G: 255, A: 0}},
		{"&h0000ff", ssa.Color{R: 255, A: 255}},
		{"16777215", ssa.Color{R: 255, G: 255, B: 255, A: 255}},
		{"65535", ssa.Color{R: 255, G: 255, A: 255}},
		{"-2147483640", ssa.Color{R: 8, A: 127}},
		{"0x0000FF00", ssa.Color{G: 255, A: 255}},
		{"garbage", ssa.Color{A: 255}},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			if got := ssa.ParseColor(tt.in); got != tt.want {
				t.Errorf("ParseColor(%q) = %+v, want %+v", tt.in, got, tt.want)
			}
		})
	}
}

func TestColor_Format(t *testing.T) {
	c := ssa.ParseColor("&H80123456")
	if got := c.String(); got != "&H80123456" {
		t.Errorf("String() = %q", got)
	}
	if got := ssa.ParseColor("&H00123456").CSS(); got != "#563412" {
		t.Errorf("CSS() = %q", got)
	}
	if got := ssa.ParseColor("&HFF000000").CSS(); got != "rgba(0,0,0,0)" {
		t.Errorf("CSS() = %q", got)
	}
}

func TestAlignment(t *testing.T) {
	for legacy, keypad := range map[int]int{1: 1, 2: 2, 3: 3, 5: 7, 6: 8, 7: 9, 9: 4, 10: 5, 11: 6} {
		got, ok := ssa.LegacyToKeypad(legacy)
		if !ok || got != keypad {
			t.Errorf("LegacyToKeypad(%d) = %d, %v, want %d", legacy, got, ok, keypad)
		}
	}
	for _, bad := range []int{-1, 0, 4, 8, 12, 100} {
		if _, ok := ssa.LegacyToKeypad(bad); ok {
			t.Errorf("LegacyToKeypad(%d) accepted", bad)
		}
	}
	for n := 1; n <= 9; n++ {
		h, v, ok := ssa.KeypadAlignment(n)
		if !ok {
			t.Fatalf("KeypadAlignment(%d) rejected", n)
		}
		if got := ssa.Keypad(h, v); got != n {
			t.Errorf("Keypad(KeypadAlignment(%d)) = %d", n, got)
		}
	}
	if h, v, _ := ssa.KeypadAlignment(7); h != ssa.AlignHLeft || v != ssa.AlignVTop {
		t.Errorf("KeypadAlignment(7) = %v/%v", h, v)
	}
}

func TestNewStyle(t *testing.T) {
	s := ssa.ParseScript(assScript)
	sign := ssa.NewStyle(s.Styles[1], ssa.DialectAss, nil)

	if sign.FontName != "Times" || !sign.Vertical {
		t.Errorf("font = %q vertical %v", sign.FontName, sign.Vertical)
	}
	if sign.FontSize != 30 {
		t.Errorf("FontSize = %v", sign.FontSize)
	}
	if sign.Bold != 1 || sign.Weight() != 700 {
		t.Errorf("Bold = %d weight %d", sign.Bold, sign.Weight())
	}
	if sign.Primary != (ssa.Color{R: 255, A: 255}) {
		t.Errorf("Primary = %+v", sign.Primary)
	}
	if sign.Back.A != 127 {
		t.Errorf("Back alpha = %d", sign.Back.A)
	}
	if sign.AlignH != ssa.AlignHCenter || sign.AlignV != ssa.AlignVTop {
		t.Errorf("alignment = %v/%v", sign.AlignH, sign.AlignV)
	}
	if sign.MarginL != 30 || sign.MarginV != 40 {
		t.Errorf("margins = %d/%d", sign.MarginL, sign.MarginV)
	}
}

func TestNewStyle_SSA(t *testing.T) {
	f := ssa.DefaultStyleFormat(ssa.DialectSsa)
	row, ok := f.Apply("Default,Tahoma,24,16777215,65535,255,0,700,1,3,2,2,6,30,30,10,64,0")
	if !ok {
		t.Fatal("Apply() failed")
	}
	s := ssa.NewStyle(row, ssa.DialectSsa, nil)

	// legacy 6 is top center
	if s.AlignH != ssa.AlignHCenter || s.AlignV != ssa.AlignVTop {
		t.Errorf("alignment = %v/%v", s.AlignH, s.AlignV)
	}
	if s.Outline != (ssa.Color{R: 255, A: 191}) {
		t.Errorf("outline from tertiary = %+v", s.Outline)
	}
	if s.Primary.A != 191 || s.Back.A != 255 {
		t.Errorf("alpha level applied as %d/%d", s.Primary.A, s.Back.A)
	}
	if s.Bold != 700 || !s.Italic || s.BorderStyle != ssa.BorderStyleBox {
		t.Errorf("bold %d italic %v border %v", s.Bold, s.Italic, s.BorderStyle)
	}
	// fields absent from SSA layout keep defaults
	if s.ScaleX != 100 || s.ScaleY != 100 {
		t.Errorf("scale = %v/%v", s.ScaleX, s.ScaleY)
	}
}

func TestTimestamp(t *testing.T) {
	tests := []struct {
		in   string
		want time.Duration
	}{
		{"0:00:01.50", 1500 * time.Millisecond},
		{"1:02:03.04", time.Hour + 2*time.Minute + 3*time.Second + 40*time.Millisecond},
		{"0:00:00.123", 123 * time.Millisecond},
		{"02:03", 2*time.Minute + 3*time.Second},
		{"5", 5 * time.Second},
		{"", 0},
		{"1:2:3:4", 0},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			if got := ssa.ParseTimestamp(tt.in); got != tt.want {
				t.Errorf("ParseTimestamp(%q) = %v, want %v", tt.in, got, tt.want)
			}
		})
	}

	if got := ssa.FormatTimestamp(time.Hour + 2*time.Minute + 3045*time.Millisecond); got != "1:02:03.04" {
		t.Errorf("FormatTimestamp() = %q", got)
	}
}

func TestPenVisitor(t *testing.T) {
	div, _ := ssa.ParseLine(`{\b1\fs30\c&H0000FF&\alpha&H80&}a{\fs\i1}b{\r}c`, nil, nil, ssa.PenVisitor{})
	if len(div.Spans) != 3 {
		t.Fatalf("len(Spans) = %d, want 3", len(div.Spans))
	}
	def := ssa.DefaultStyle()

	p0 := div.SpanPen(0)
	if p0.Bold != 1 || p0.FontSize != 30 {
		t.Errorf("span 0 bold %d size %v", p0.Bold, p0.FontSize)
	}
	if p0.Colors[0] != (ssa.Color{R: 255, A: 127}) {
		t.Errorf("span 0 primary = %+v", p0.Colors[0])
	}

	p1 := div.SpanPen(1)
	if p1.FontSize != def.FontSize || !p1.Italic || p1.Bold != 1 {
		t.Errorf("span 1 size %v italic %v bold %d", p1.FontSize, p1.Italic, p1.Bold)
	}
	if p0 == p1 {
		t.Error("spans share pen")
	}

	p2 := div.SpanPen(2)
	if p2.Bold != def.Bold || p2.Italic || p2.Colors[0] != def.Primary {
		t.Errorf("span 2 not reset: %+v", p2)
	}
}
