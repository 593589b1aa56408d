package source

import (
	"io"

	"golang.org/x/text/encoding/unicode"
)

// NewBOMAware wraps r with a BOM-aware UTF-8 decoder before handing it to
// New. The DATA state already special-cases a literal U+FEFF (see
// parser.stateData). parser.Parse always builds its own source with New,
// so nothing in this module calls NewBOMAware; it serves callers that read
// a Source directly and want the BOM stripped by a real decoder.
func NewBOMAware(r io.Reader) *Source {
	decoder := unicode.BOMOverride(unicode.UTF8.NewDecoder())
	return New(decoder.Reader(r))
}
