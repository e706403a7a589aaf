package ssa

// Script dialect.
// ENUM(ssa, ass)
type Dialect int

// Horizontal alignment of a div.
// ENUM(left, center, right)
type AlignH int

// Vertical alignment of a div.
// ENUM(bottom, middle, top)
type AlignV int

// Line wrapping mode as specified by WrapStyle header and \q tag.
// ENUM(smart, endOfLine, none, smartLower)
type WrapStyle int

// Order in which lines of a single packet are laid out.
// ENUM(normal, reverse)
type Collisions int

// Border style of a style definition.
// ENUM(outline=1, box=3)
type BorderStyle int

// Kind of value carried by an override tag parameter.
// ENUM(none, int, float, color, alpha, string, point, args)
type ParamKind int
