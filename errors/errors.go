package errors

import (
	"fmt"
	"strings"
)

// Class is the top-level error category. Codec-origin failures and
// bridge-side validation failures form disjoint hierarchies so callers can
// handle them selectively with errors.Is.
type Class string

const (
	ClassCodec      Class = "codec"      // reported by the TOON codec
	ClassValidation Class = "validation" // detected by the bridge itself
)

// Phase indicates where in processing the error occurred
type Phase string

const (
	PhaseOptions   Phase = "options"   // option token validation
	PhaseEncode    Phase = "encode"    // host to canonical value, codec encode
	PhaseDecode    Phase = "decode"    // codec decode, canonical value to host
	PhaseTranscode Phase = "transcode" // JSON <-> TOON convenience conversion
)

// Kind categorizes the error
type Kind string

const (
	KindSyntax          Kind = "syntax"
	KindIO              Kind = "io"
	KindMessage         Kind = "message"
	KindEmbeddedFormat  Kind = "embedded_format"
	KindInvalidOption   Kind = "invalid_option"
	KindUnsupportedType Kind = "unsupported_type"
	KindNonFiniteFloat  Kind = "non_finite_float"
	KindInvalidJSON     Kind = "invalid_json"
)

// Error is the structured error type used throughout the bridge
type Error struct {
	Cause    error
	Class    Class
	Phase    Phase
	Kind     Kind
	HostType string
	Detail   string
	Line     int // 1-based source line, syntax errors only
}

// Error implements the error interface
func (e *Error) Error() string {
	var b strings.Builder

	b.WriteByte('[')
	b.WriteString(string(e.Phase))
	b.WriteString("] ")
	b.WriteString(string(e.Kind))

	if e.HostType != "" {
		b.WriteString(": host type ")
		b.WriteString(e.HostType)
		if e.Detail != "" {
			b.WriteString(" - ")
			b.WriteString(e.Detail)
		}
	} else if e.Detail != "" {
		b.WriteString(": ")
		b.WriteString(e.Detail)
	}

	if e.Cause != nil {
		b.WriteString(" (caused by: ")
		b.WriteString(e.Cause.Error())
		b.WriteByte(')')
	}

	return b.String()
}

// Unwrap returns the underlying error
func (e *Error) Unwrap() error {
	return e.Cause
}

// Is reports whether target matches this error. A target with zero-valued
// fields acts as a wildcard for those fields, so the exported sentinels
// below match entire classes.
func (e *Error) Is(target error) bool {
	t, ok := target.(*Error)
	if !ok {
		return false
	}
	if t.Class != "" && t.Class != e.Class {
		return false
	}
	if t.Phase != "" && t.Phase != e.Phase {
		return false
	}
	if t.Kind != "" && t.Kind != e.Kind {
		return false
	}
	return true
}

// Sentinels for errors.Is. ErrCodec is the base of the codec-origin
// hierarchy; ErrSyntax and ErrIO refine it. ErrValidation is the separate
// bridge-side class.
var (
	ErrCodec      = &Error{Class: ClassCodec}
	ErrSyntax     = &Error{Class: ClassCodec, Kind: KindSyntax}
	ErrIO         = &Error{Class: ClassCodec, Kind: KindIO}
	ErrValidation = &Error{Class: ClassValidation}
)

// Convenience constructors for common error patterns

// Syntax creates a codec syntax error. Line is 1-based.
func Syntax(phase Phase, line int, message string) *Error {
	return &Error{
		Class:  ClassCodec,
		Phase:  phase,
		Kind:   KindSyntax,
		Line:   line,
		Detail: fmt.Sprintf("Line %d: %s", line, message),
	}
}

// IO creates a codec I/O error
func IO(phase Phase, cause error) *Error {
	detail := ""
	if cause != nil {
		detail = cause.Error()
	}
	return &Error{
		Class:  ClassCodec,
		Phase:  phase,
		Kind:   KindIO,
		Detail: detail,
		Cause:  cause,
	}
}

// Message creates a generic codec error with the message verbatim
func Message(phase Phase, msg string) *Error {
	return &Error{
		Class:  ClassCodec,
		Phase:  phase,
		Kind:   KindMessage,
		Detail: msg,
	}
}

// EmbeddedFormat creates a codec error for a downstream-format failure,
// prefixed with the stage that failed (e.g. "Invalid JSON: ...").
func EmbeddedFormat(phase Phase, stage, detail string) *Error {
	return &Error{
		Class:  ClassCodec,
		Phase:  phase,
		Kind:   KindEmbeddedFormat,
		Detail: fmt.Sprintf("Invalid %s: %s", stage, detail),
	}
}

// InvalidOption creates a validation error naming the offending token and
// the accepted set
func InvalidOption(token string) *Error {
	return &Error{
		Class:  ClassValidation,
		Phase:  PhaseOptions,
		Kind:   KindInvalidOption,
		Detail: fmt.Sprintf("invalid delimiter %q: must be \"comma\", \"tab\", or \"pipe\"", token),
	}
}

// UnsupportedType creates a validation error naming the host runtime type
// that could not be classified
func UnsupportedType(phase Phase, hostType string) *Error {
	return &Error{
		Class:    ClassValidation,
		Phase:    phase,
		Kind:     KindUnsupportedType,
		HostType: hostType,
		Detail:   "cannot convert to TOON format",
	}
}

// NonFiniteFloat creates a validation error for NaN or infinite host floats
func NonFiniteFloat(phase Phase) *Error {
	return &Error{
		Class:  ClassValidation,
		Phase:  phase,
		Kind:   KindNonFiniteFloat,
		Detail: "invalid float value (NaN or Infinity)",
	}
}

// InvalidJSON creates a validation error for malformed JSON input to the
// JSON-to-TOON transcoding stage
func InvalidJSON(cause error) *Error {
	detail := ""
	if cause != nil {
		detail = cause.Error()
	}
	return &Error{
		Class:  ClassValidation,
		Phase:  PhaseTranscode,
		Kind:   KindInvalidJSON,
		Detail: fmt.Sprintf("Invalid JSON: %s", detail),
		Cause:  cause,
	}
}
