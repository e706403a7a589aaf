// Package common holds enums shared by the configuration and the conversion
// pipeline, kept apart so neither has to import the other.
package common

// Specification of requested output type.
// ENUM(dump, html)
type OutputFmt int

func (o OutputFmt) Ext() string {
	switch o {
	case OutputFmtDump:
		return ".txt"
	case OutputFmtHtml:
		return ".html"
	default:
		// this should never happen
		panic("unsupported format requested")
	}
}

