package codec

import (
	"io"

	"github.com/wippyai/toon-bridge/value"
)

// Delimiter selects the field separator used by the codec.
type Delimiter uint8

const (
	Comma Delimiter = iota
	Tab
	Pipe
)

// String returns the delimiter token.
func (d Delimiter) String() string {
	switch d {
	case Tab:
		return "tab"
	case Pipe:
		return "pipe"
	default:
		return "comma"
	}
}

// Options is the codec's configuration struct. The zero value is the
// default configuration: comma delimiter, strict mode off.
type Options struct {
	Delimiter Delimiter
	Strict    bool
}

// Codec is the external TOON implementation consumed by the bridge. It is a
// black box operating purely on the canonical value model; implementations
// must not retain the values passed to them.
type Codec interface {
	// Encode renders a canonical value as TOON text.
	Encode(v *value.Value, opts Options) (string, error)

	// Decode parses TOON text into a canonical value.
	Decode(text string, opts Options) (*value.Value, error)

	// EncodeTo renders a canonical value and writes it to w.
	EncodeTo(w io.Writer, v *value.Value, opts Options) error

	// DecodeFrom reads the full text from r and parses it.
	DecodeFrom(r io.Reader, opts Options) (*value.Value, error)
}
