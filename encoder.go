package lawtree

import (
	"encoding/json"
	"io"
)

// Encoder writes a parse result in one output format.
type Encoder interface {
	Encode(w io.Writer, r *ParseResult) error
	// Name returns the format name used on the command line.
	Name() string
}

// Compile-time interface verification.
var _ Encoder = JSONEncoder{}

// JSONEncoder writes indented JSON with non-ASCII text left unescaped.
type JSONEncoder struct{}

// Encode implements Encoder.
func (JSONEncoder) Encode(w io.Writer, r *ParseResult) error {
	enc := json.NewEncoder(w)
	enc.SetEscapeHTML(false)
	enc.SetIndent("", "  ")
	return enc.Encode(r)
}

// Name implements Encoder.
func (JSONEncoder) Name() string { return "json" }
