package toonbridge

import (
	"bytes"
	stderrors "errors"
	"io"
	"sync"

	"go.uber.org/zap"

	"github.com/wippyai/toon-bridge/codec"
	"github.com/wippyai/toon-bridge/convert"
	"github.com/wippyai/toon-bridge/errors"
	"github.com/wippyai/toon-bridge/value"
)

// Bridge adapts a TOON codec to a host application's dynamic object graph.
// It sequences the inbound/outbound converters around codec calls and keeps
// the host-graph lock discipline: the lock is held only while converters
// touch host objects and released for the whole codec phase.
type Bridge struct {
	codec  codec.Codec
	graph  sync.Locker
	logger *zap.Logger
}

// BridgeOption configures a Bridge.
type BridgeOption func(*Bridge)

// WithGraphLock supplies the host runtime's object-graph lock. The bridge
// holds it during conversions and releases it during codec work. Hosts
// whose graphs need no exclusion can omit it.
func WithGraphLock(l sync.Locker) BridgeOption {
	return func(b *Bridge) { b.graph = l }
}

// WithLogger supplies a logger for debug output at operation boundaries.
func WithLogger(l *zap.Logger) BridgeOption {
	return func(b *Bridge) { b.logger = l }
}

type noopLocker struct{}

func (noopLocker) Lock()   {}
func (noopLocker) Unlock() {}

// New creates a Bridge over the given codec.
func New(c codec.Codec, opts ...BridgeOption) *Bridge {
	b := &Bridge{
		codec:  c,
		graph:  noopLocker{},
		logger: Logger(),
	}
	for _, opt := range opts {
		opt(b)
	}
	return b
}

// toCanonical runs the inbound converter under the host-graph lock.
func (b *Bridge) toCanonical(host any) (*value.Value, error) {
	b.graph.Lock()
	v, err := convert.ToValue(host)
	b.graph.Unlock()
	return v, err
}

// fromCanonical runs the outbound converter under the host-graph lock.
func (b *Bridge) fromCanonical(v *value.Value) any {
	b.graph.Lock()
	host := convert.FromValue(v)
	b.graph.Unlock()
	return host
}

// Encode converts a host value and renders it as TOON text. The delimiter
// token is validated per call; pass "" for the default. Use
// EncodeWithOptions with a prebuilt Options to skip re-validation.
func (b *Bridge) Encode(host any, delimiter string, strict bool) (string, error) {
	opts, err := buildOptions(delimiter, strict)
	if err != nil {
		return "", err
	}
	return b.encode(host, opts)
}

// EncodeWithOptions is the options-object variant of Encode. A nil o uses
// the shared default options.
func (b *Bridge) EncodeWithOptions(host any, o *Options) (string, error) {
	return b.encode(host, o.codecOptions())
}

func (b *Bridge) encode(host any, opts codec.Options) (string, error) {
	v, err := b.toCanonical(host)
	if err != nil {
		return "", err
	}
	text, err := b.codec.Encode(v, opts)
	if err != nil {
		return "", mapCodecError(errors.PhaseEncode, err)
	}
	b.logger.Debug("encoded value", zap.Int("bytes", len(text)))
	return text, nil
}

// Decode parses TOON text and converts the result to host values. The
// delimiter token is validated per call; pass "" for the default.
func (b *Bridge) Decode(text string, delimiter string, strict bool) (any, error) {
	opts, err := buildOptions(delimiter, strict)
	if err != nil {
		return nil, err
	}
	return b.decode(text, opts)
}

// DecodeWithOptions is the options-object variant of Decode. A nil o uses
// the shared default options.
func (b *Bridge) DecodeWithOptions(text string, o *Options) (any, error) {
	return b.decode(text, o.codecOptions())
}

func (b *Bridge) decode(text string, opts codec.Options) (any, error) {
	v, err := b.codec.Decode(text, opts)
	if err != nil {
		return nil, mapCodecError(errors.PhaseDecode, err)
	}
	return b.fromCanonical(v), nil
}

// EncodeBytes renders a host value as a TOON byte buffer.
func (b *Bridge) EncodeBytes(host any, o *Options) ([]byte, error) {
	v, err := b.toCanonical(host)
	if err != nil {
		return nil, err
	}
	var buf bytes.Buffer
	if err := b.codec.EncodeTo(&buf, v, o.codecOptions()); err != nil {
		return nil, mapCodecError(errors.PhaseEncode, err)
	}
	return buf.Bytes(), nil
}

// DecodeBytes parses a TOON byte buffer into host values.
func (b *Bridge) DecodeBytes(data []byte, o *Options) (any, error) {
	v, err := b.codec.DecodeFrom(bytes.NewReader(data), o.codecOptions())
	if err != nil {
		return nil, mapCodecError(errors.PhaseDecode, err)
	}
	return b.fromCanonical(v), nil
}

// Dump encodes a host value with default options and writes it to w.
func (b *Bridge) Dump(w io.Writer, host any) error {
	v, err := b.toCanonical(host)
	if err != nil {
		return err
	}
	if err := b.codec.EncodeTo(w, v, DefaultOptions().inner); err != nil {
		return mapCodecError(errors.PhaseEncode, err)
	}
	return nil
}

// Load reads the full TOON text from r with default options and converts it
// to host values.
func (b *Bridge) Load(r io.Reader) (any, error) {
	v, err := b.codec.DecodeFrom(r, DefaultOptions().inner)
	if err != nil {
		return nil, mapCodecError(errors.PhaseDecode, err)
	}
	return b.fromCanonical(v), nil
}

// JSONToTOON converts JSON text directly to TOON text. The source is
// already structured, so the inbound converter is bypassed; malformed JSON
// is a validation error, not a codec error.
func (b *Bridge) JSONToTOON(jsonText string, delimiter string, strict bool) (string, error) {
	opts, err := buildOptions(delimiter, strict)
	if err != nil {
		return "", err
	}
	v, err := value.FromJSON([]byte(jsonText))
	if err != nil {
		return "", errors.InvalidJSON(err)
	}
	text, err := b.codec.Encode(v, opts)
	if err != nil {
		return "", mapCodecError(errors.PhaseTranscode, err)
	}
	return text, nil
}

// TOONToJSON converts TOON text to JSON text, optionally indented.
func (b *Bridge) TOONToJSON(toonText string, pretty bool, strict bool) (string, error) {
	opts, err := buildOptions("", strict)
	if err != nil {
		return "", err
	}
	v, err := b.codec.Decode(toonText, opts)
	if err != nil {
		return "", mapCodecError(errors.PhaseTranscode, err)
	}
	out, err := value.ToJSON(v, pretty)
	if err != nil {
		return "", errors.EmbeddedFormat(errors.PhaseTranscode, "JSON", err.Error())
	}
	return out, nil
}

// Validate reports whether a host value can be encoded. Any failure,
// conversion or codec, yields false; Validate never returns an error.
func (b *Bridge) Validate(host any, o *Options) bool {
	v, err := b.toCanonical(host)
	if err != nil {
		return false
	}
	_, err = b.codec.Encode(v, o.codecOptions())
	return err == nil
}

// mapCodecError converts the codec's error variants into the caller-visible
// taxonomy. Unknown errors surface as generic codec messages.
func mapCodecError(phase errors.Phase, err error) error {
	var syn *codec.SyntaxError
	if stderrors.As(err, &syn) {
		return errors.Syntax(phase, syn.Line, syn.Message)
	}
	var ioErr *codec.IOError
	if stderrors.As(err, &ioErr) {
		return errors.IO(phase, ioErr.Err)
	}
	var emb *codec.EmbeddedFormatError
	if stderrors.As(err, &emb) {
		return errors.EmbeddedFormat(phase, emb.Stage, emb.Detail)
	}
	var msg *codec.MessageError
	if stderrors.As(err, &msg) {
		return errors.Message(phase, msg.Message)
	}
	return errors.Message(phase, err.Error())
}
