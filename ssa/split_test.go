package ssa_test

import (
	"slices"
	"testing"

	"subc/ssa"
)

func TestSplitN(t *testing.T) {
	tests := []struct {
		name string
		line string
		n    int
		want []string
	}{
		{"exact", "a,b,c", 3, []string{"a", "b", "c"}},
		{"last absorbs", "a,b,c,d", 3, []string{"a", "b", "c,d"}},
		{"short", "a,b", 3, []string{"a", "b"}},
		{"single", "a,b", 1, []string{"a,b"}},
		{"empty fields", ",,", 3, []string{"", "", ""}},
		{"no trimming", " a , b ", 2, []string{" a ", " b "}},
		{"zero", "a", 0, nil},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ssa.SplitN(tt.line, ',', tt.n)
			if !slices.Equal(got, tt.want) {
				t.Errorf("SplitN(%q, %d) = %q, want %q", tt.line, tt.n, got, tt.want)
			}
		})
	}
}

func TestSplitTrimmed(t *testing.T) {
	got := ssa.SplitTrimmed(" Name,  Fontname ,Fontsize, ", ',')
	want := []string{"Name", "Fontname", "Fontsize"}
	if !slices.Equal(got, want) {
		t.Errorf("SplitTrimmed() = %q, want %q", got, want)
	}
}

func TestFormatApply(t *testing.T) {
	f := ssa.ParseFormat("Layer, Start, End, Style, Text")

	row, ok := f.Apply(" 1, 0:00:01.00 ,0:00:02.00,Default, Hello, world ")
	if !ok {
		t.Fatal("Apply() rejected valid row")
	}
	if row.Len() != f.Len() {
		t.Errorf("row.Len() = %d, want %d", row.Len(), f.Len())
	}
	if got := row.Get("Text"); got != "Hello, world" {
		t.Errorf("Text = %q, want %q", got, "Hello, world")
	}
	if got := row.Get("start"); got != "0:00:01.00" {
		t.Errorf("case-insensitive Start = %q", got)
	}
	if _, ok := row.Lookup("Effect"); ok {
		t.Error("Lookup() found field missing from format")
	}

	if _, ok := f.Apply("1,2,3"); ok {
		t.Error("Apply() accepted row with too few fields")
	}
}

func TestDefaultFormats(t *testing.T) {
	tests := []struct {
		name  string
		f     *ssa.Format
		count int
		field string
		text  bool
	}{
		{"ssa styles", ssa.DefaultStyleFormat(ssa.DialectSsa), 18, "TertiaryColour", false},
		{"ass styles", ssa.DefaultStyleFormat(ssa.DialectAss), 23, "OutlineColour", false},
		{"ssa events", ssa.DefaultEventFormat(ssa.DialectSsa), 10, "Marked", true},
		{"ass events", ssa.DefaultEventFormat(ssa.DialectAss), 10, "Layer", true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.f.Len() != tt.count {
				t.Errorf("Len() = %d, want %d", tt.f.Len(), tt.count)
			}
			if _, ok := tt.f.Index(tt.field); !ok {
				t.Errorf("field %q missing", tt.field)
			}
			if i, ok := tt.f.Index("Text"); tt.text && (!ok || i != tt.count-1) {
				t.Errorf("Text index = %d, want last", i)
			}
		})
	}
}
