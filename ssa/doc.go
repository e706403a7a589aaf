// Package ssa parses SubStation Alpha (SSA) and Advanced SubStation Alpha
// (ASS) scripts.
//
// Parsing happens in two stages. ParseScript splits whole script text into
// headers, style rows and event rows. ParseLine turns the text of a single
// event into a Div: body text with override blocks removed plus an ordered
// list of spans, each carrying a snapshot of the override tags active from its
// offset on. Context ties both stages together - it resolves style rows into
// styles, builds base divs from event rows and produces the final, layer
// ordered list of divs.
//
// Nothing here performs I/O and nothing here fails: malformed rows are
// dropped, unknown tags are ignored and unterminated override blocks are
// closed implicitly. Problems are reported as advisory warnings and
// diagnostics.
package ssa

//go:generate go tool go-enum --marshal --nocase --names -f enums.go
