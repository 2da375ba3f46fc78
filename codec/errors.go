package codec

import "fmt"

// SyntaxError reports malformed TOON text. Line is 1-based.
type SyntaxError struct {
	Message string
	Line    int
}

func (e *SyntaxError) Error() string {
	return fmt.Sprintf("Line %d: %s", e.Line, e.Message)
}

// MessageError is a generic codec failure with a free-text description.
type MessageError struct {
	Message string
}

func (e *MessageError) Error() string { return e.Message }

// IOError reports a failure of the underlying sink or source.
type IOError struct {
	Err error
}

func (e *IOError) Error() string { return e.Err.Error() }

func (e *IOError) Unwrap() error { return e.Err }

// EmbeddedFormatError reports a failure in a downstream format handled by
// the codec, e.g. malformed JSON fed to a transcoding entry point.
type EmbeddedFormatError struct {
	Stage  string // format name, e.g. "JSON"
	Detail string
}

func (e *EmbeddedFormatError) Error() string {
	return fmt.Sprintf("%s error: %s", e.Stage, e.Detail)
}
