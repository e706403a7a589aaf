package ssa

import (
	"slices"
	"strings"
)

// Tag is the canonical name of an override tag, without the backslash.
type Tag string

// Recognized override tags.
const (
	TagBold        Tag = "b"
	TagItalic      Tag = "i"
	TagUnderline   Tag = "u"
	TagStrikeOut   Tag = "s"
	TagEdgeBlur    Tag = "be"
	TagWrapStyle   Tag = "q"
	TagAlignment   Tag = "an"
	TagLegacyAlign Tag = "a"
	TagKaraoke     Tag = "k"
	TagKaraokeF    Tag = "kf"
	TagKaraokeO    Tag = "ko"
	TagDrawing     Tag = "p"
	TagEncoding    Tag = "fe"

	TagBorder       Tag = "bord"
	TagBorderX      Tag = "xbord"
	TagBorderY      Tag = "ybord"
	TagShadow       Tag = "shad"
	TagShadowX      Tag = "xshad"
	TagShadowY      Tag = "yshad"
	TagBlur         Tag = "blur"
	TagFontSize     Tag = "fs"
	TagScaleX       Tag = "fscx"
	TagScaleY       Tag = "fscy"
	TagSpacing      Tag = "fsp"
	TagRotateX      Tag = "frx"
	TagRotateY      Tag = "fry"
	TagRotateZ      Tag = "frz"
	TagShearX       Tag = "fax"
	TagShearY       Tag = "fay"
	TagBaselineOffs Tag = "pbo"

	TagPrimaryColor   Tag = "1c"
	TagSecondaryColor Tag = "2c"
	TagOutlineColor   Tag = "3c"
	TagBackColor      Tag = "4c"

	TagAlpha          Tag = "alpha"
	TagPrimaryAlpha   Tag = "1a"
	TagSecondaryAlpha Tag = "2a"
	TagOutlineAlpha   Tag = "3a"
	TagBackAlpha      Tag = "4a"

	TagFontName Tag = "fn"
	TagReset    Tag = "r"

	TagPosition Tag = "pos"
	TagOrigin   Tag = "org"

	TagMove      Tag = "move"
	TagFad       Tag = "fad"
	TagFade      Tag = "fade"
	TagClip      Tag = "clip"
	TagClipInv   Tag = "iclip"
	TagTransform Tag = "t"
)

type tagDef struct {
	name string
	tag  Tag
	kind ParamKind
	// line level tags describe the whole line and are kept on the div
	line bool
}

// tagTable is ordered by decreasing name length so the longest name wins:
// "\fscx" is never read as "\fs" with junk, "\be" never as "\b".
var tagTable = func() []tagDef {
	defs := []tagDef{
		{name: "b", tag: TagBold, kind: ParamKindInt},
		{name: "i", tag: TagItalic, kind: ParamKindInt},
		{name: "u", tag: TagUnderline, kind: ParamKindInt},
		{name: "s", tag: TagStrikeOut, kind: ParamKindInt},
		{name: "be", tag: TagEdgeBlur, kind: ParamKindInt},
		{name: "q", tag: TagWrapStyle, kind: ParamKindInt, line: true},
		{name: "an", tag: TagAlignment, kind: ParamKindInt, line: true},
		{name: "a", tag: TagLegacyAlign, kind: ParamKindInt, line: true},
		{name: "k", tag: TagKaraoke, kind: ParamKindInt},
		{name: "K", tag: TagKaraokeF, kind: ParamKindInt},
		{name: "kf", tag: TagKaraokeF, kind: ParamKindInt},
		{name: "ko", tag: TagKaraokeO, kind: ParamKindInt},
		{name: "p", tag: TagDrawing, kind: ParamKindFloat},
		{name: "fe", tag: TagEncoding, kind: ParamKindInt},

		{name: "bord", tag: TagBorder, kind: ParamKindFloat},
		{name: "xbord", tag: TagBorderX, kind: ParamKindFloat},
		{name: "ybord", tag: TagBorderY, kind: ParamKindFloat},
		{name: "shad", tag: TagShadow, kind: ParamKindFloat},
		{name: "xshad", tag: TagShadowX, kind: ParamKindFloat},
		{name: "yshad", tag: TagShadowY, kind: ParamKindFloat},
		{name: "blur", tag: TagBlur, kind: ParamKindFloat},
		{name: "fs", tag: TagFontSize, kind: ParamKindFloat},
		{name: "fscx", tag: TagScaleX, kind: ParamKindFloat},
		{name: "fscy", tag: TagScaleY, kind: ParamKindFloat},
		{name: "fsp", tag: TagSpacing, kind: ParamKindFloat},
		{name: "frx", tag: TagRotateX, kind: ParamKindFloat},
		{name: "fry", tag: TagRotateY, kind: ParamKindFloat},
		{name: "frz", tag: TagRotateZ, kind: ParamKindFloat},
		{name: "fr", tag: TagRotateZ, kind: ParamKindFloat},
		{name: "fax", tag: TagShearX, kind: ParamKindFloat},
		{name: "fay", tag: TagShearY, kind: ParamKindFloat},
		{name: "pbo", tag: TagBaselineOffs, kind: ParamKindFloat},

		{name: "c", tag: TagPrimaryColor, kind: ParamKindColor},
		{name: "1c", tag: TagPrimaryColor, kind: ParamKindColor},
		{name: "2c", tag: TagSecondaryColor, kind: ParamKindColor},
		{name: "3c", tag: TagOutlineColor, kind: ParamKindColor},
		{name: "4c", tag: TagBackColor, kind: ParamKindColor},

		{name: "alpha", tag: TagAlpha, kind: ParamKindAlpha},
		{name: "1a", tag: TagPrimaryAlpha, kind: ParamKindAlpha},
		{name: "2a", tag: TagSecondaryAlpha, kind: ParamKindAlpha},
		{name: "3a", tag: TagOutlineAlpha, kind: ParamKindAlpha},
		{name: "4a", tag: TagBackAlpha, kind: ParamKindAlpha},

		{name: "fn", tag: TagFontName, kind: ParamKindString},
		{name: "r", tag: TagReset, kind: ParamKindString},

		{name: "pos", tag: TagPosition, kind: ParamKindPoint, line: true},
		{name: "org", tag: TagOrigin, kind: ParamKindPoint, line: true},

		{name: "move", tag: TagMove, kind: ParamKindArgs, line: true},
		{name: "fad", tag: TagFad, kind: ParamKindArgs, line: true},
		{name: "fade", tag: TagFade, kind: ParamKindArgs, line: true},
		{name: "clip", tag: TagClip, kind: ParamKindArgs, line: true},
		{name: "iclip", tag: TagClipInv, kind: ParamKindArgs, line: true},
		{name: "t", tag: TagTransform, kind: ParamKindArgs},
	}
	slices.SortStableFunc(defs, func(a, b tagDef) int {
		return len(b.name) - len(a.name)
	})
	return defs
}()

// lookupTag finds the tag whose name is the longest prefix of s.
func lookupTag(s string) (tagDef, bool) {
	for _, def := range tagTable {
		if strings.HasPrefix(s, def.name) {
			return def, true
		}
	}
	return tagDef{}, false
}

// canonical tags by name
var tagDefs = func() map[Tag]tagDef {
	m := make(map[Tag]tagDef, len(tagTable))
	for _, def := range tagTable {
		if def.name == string(def.tag) {
			m[def.tag] = def
		}
	}
	return m
}()

// Kind returns parameter kind of a canonical tag.
func (t Tag) Kind() ParamKind {
	return tagDefs[t].kind
}

// LineLevel reports whether the tag describes the whole line rather than
// the span it appears in.
func (t Tag) LineLevel() bool {
	return tagDefs[t].line
}
