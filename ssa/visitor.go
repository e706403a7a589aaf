package ssa

// Visitor receives line parsing events. Span passed to the methods is the
// span being built, it is appended to the div once the next span starts or
// the line ends. Implementations used with concurrent assembly must be safe
// for concurrent use.
type Visitor interface {
	// StartingSpan is called for every new span before tags of its
	// override block are applied.
	StartingSpan(span *Span, div *Div)
	// TagChanged is called for every tag which took effect. Tags ignored
	// because an earlier tag of the same category already set alignment,
	// wrapping or position are not reported.
	TagChanged(tag Tag, param Param, span *Span, div *Div)
}

// VisitorFuncs adapts functions to Visitor, nil members are skipped.
type VisitorFuncs struct {
	Start func(span *Span, div *Div)
	Tag   func(tag Tag, param Param, span *Span, div *Div)
}

func (f VisitorFuncs) StartingSpan(span *Span, div *Div) {
	if f.Start != nil {
		f.Start(span, div)
	}
}

func (f VisitorFuncs) TagChanged(tag Tag, param Param, span *Span, div *Div) {
	if f.Tag != nil {
		f.Tag(tag, param, span, div)
	}
}

type nopVisitor struct{}

func (nopVisitor) StartingSpan(*Span, *Div)            {}
func (nopVisitor) TagChanged(Tag, Param, *Span, *Div) {}

// StyleLookup resolves style names referenced by \r tags.
type StyleLookup interface {
	StyleForName(name string) *Style
}
