package ssa

// Pen is the text drawing state at a span: the line style with every
// override of the span applied.
type Pen struct {
	FontName string
	Vertical bool
	FontSize float64
	Encoding int

	// Colors are primary, secondary, outline and back in that order.
	Colors [4]Color

	Bold      int
	Italic    bool
	Underline bool
	StrikeOut bool

	ScaleX  float64
	ScaleY  float64
	Spacing float64

	RotateX float64
	RotateY float64
	RotateZ float64
	ShearX  float64
	ShearY  float64

	BorderX  float64
	BorderY  float64
	ShadowX  float64
	ShadowY  float64
	Blur     float64
	EdgeBlur int

	// Karaoke is duration of the span syllable in centiseconds, KaraokeTag
	// which of \k, \kf or \ko set it.
	Karaoke    int
	KaraokeTag Tag
}

// NewPen creates pen for style.
func NewPen(s *Style) *Pen {
	if s == nil {
		s = DefaultStyle()
	}
	return &Pen{
		FontName:  s.FontName,
		Vertical:  s.Vertical,
		FontSize:  s.FontSize,
		Encoding:  s.Encoding,
		Colors:    [4]Color{s.Primary, s.Secondary, s.Outline, s.Back},
		Bold:      s.Bold,
		Italic:    s.Italic,
		Underline: s.Underline,
		StrikeOut: s.StrikeOut,
		ScaleX:    s.ScaleX,
		ScaleY:    s.ScaleY,
		Spacing:   s.Spacing,
		RotateZ:   s.Angle,
		BorderX:   s.OutlineWidth,
		BorderY:   s.OutlineWidth,
		ShadowX:   s.ShadowDepth,
		ShadowY:   s.ShadowDepth,
	}
}

// Clone implements Cloner.
func (p *Pen) Clone() any {
	c := *p
	return &c
}

// Weight returns CSS like font weight.
func (p *Pen) Weight() int {
	return weight(p.Bold)
}

// Apply changes pen according to override tag. Empty parameters revert the
// attribute to its value in base.
func (p *Pen) Apply(tag Tag, param Param, base *Style) {
	def := NewPen(base)

	num := func(dst *float64, from float64) {
		if param.Empty {
			*dst = from
			return
		}
		*dst = param.Number()
	}
	flag := func(dst *bool, from bool) {
		if param.Empty {
			*dst = from
			return
		}
		*dst = param.Int != 0
	}
	color := func(i int) {
		if param.Empty {
			p.Colors[i] = def.Colors[i].WithOpacity(p.Colors[i].A)
			return
		}
		p.Colors[i] = param.Color().WithOpacity(p.Colors[i].A)
	}
	alpha := func(i int) {
		if param.Empty {
			p.Colors[i].A = def.Colors[i].A
			return
		}
		p.Colors[i].A = param.Opacity()
	}

	switch tag {
	case TagBold:
		if param.Empty {
			p.Bold = def.Bold
		} else {
			p.Bold = boldValue(int(param.Int))
		}
	case TagItalic:
		flag(&p.Italic, def.Italic)
	case TagUnderline:
		flag(&p.Underline, def.Underline)
	case TagStrikeOut:
		flag(&p.StrikeOut, def.StrikeOut)
	case TagEdgeBlur:
		p.EdgeBlur = int(param.Int)
	case TagEncoding:
		if param.Empty {
			p.Encoding = def.Encoding
		} else {
			p.Encoding = int(param.Int)
		}
	case TagKaraoke, TagKaraokeF, TagKaraokeO:
		p.Karaoke, p.KaraokeTag = int(param.Int), tag
	case TagBorder:
		num(&p.BorderX, def.BorderX)
		p.BorderY = p.BorderX
	case TagBorderX:
		num(&p.BorderX, def.BorderX)
	case TagBorderY:
		num(&p.BorderY, def.BorderY)
	case TagShadow:
		num(&p.ShadowX, def.ShadowX)
		p.ShadowY = p.ShadowX
	case TagShadowX:
		num(&p.ShadowX, def.ShadowX)
	case TagShadowY:
		num(&p.ShadowY, def.ShadowY)
	case TagBlur:
		num(&p.Blur, 0)
	case TagFontSize:
		num(&p.FontSize, def.FontSize)
		if p.FontSize <= 0 {
			p.FontSize = def.FontSize
		}
	case TagScaleX:
		num(&p.ScaleX, def.ScaleX)
	case TagScaleY:
		num(&p.ScaleY, def.ScaleY)
	case TagSpacing:
		num(&p.Spacing, def.Spacing)
	case TagRotateX:
		num(&p.RotateX, 0)
	case TagRotateY:
		num(&p.RotateY, 0)
	case TagRotateZ:
		num(&p.RotateZ, def.RotateZ)
	case TagShearX:
		num(&p.ShearX, 0)
	case TagShearY:
		num(&p.ShearY, 0)
	case TagPrimaryColor:
		color(0)
	case TagSecondaryColor:
		color(1)
	case TagOutlineColor:
		color(2)
	case TagBackColor:
		color(3)
	case TagAlpha:
		for i := range p.Colors {
			alpha(i)
		}
	case TagPrimaryAlpha:
		alpha(0)
	case TagSecondaryAlpha:
		alpha(1)
	case TagOutlineAlpha:
		alpha(2)
	case TagBackAlpha:
		alpha(3)
	case TagFontName:
		if param.Empty {
			p.FontName, p.Vertical = def.FontName, def.Vertical
		} else {
			p.FontName = param.Str
			p.Vertical = false
			if len(p.FontName) > 1 && p.FontName[0] == '@' {
				p.FontName, p.Vertical = p.FontName[1:], true
			}
		}
	}
}

// PenVisitor keeps a *Pen in Span.Extra of every span, so consumers get
// fully resolved attributes without replaying deltas.
type PenVisitor struct{}

func (PenVisitor) StartingSpan(span *Span, div *Div) {
	if _, ok := span.Extra.(*Pen); !ok {
		span.Extra = NewPen(div.Style)
	}
}

func (PenVisitor) TagChanged(tag Tag, param Param, span *Span, div *Div) {
	pen, ok := span.Extra.(*Pen)
	if !ok {
		pen = NewPen(div.Style)
		span.Extra = pen
	}
	base := div.Style
	if span.Delta.Reset && span.Delta.Base != nil {
		base = span.Delta.Base
	}
	if tag == TagReset {
		*pen = *NewPen(base)
		return
	}
	pen.Apply(tag, param, base)
}

// SpanPen returns pen of span i when div was parsed with PenVisitor, or a
// pen of the div style otherwise.
func (d *Div) SpanPen(i int) *Pen {
	if pen, ok := d.Spans[i].Extra.(*Pen); ok {
		return pen
	}
	return NewPen(d.Style)
}
