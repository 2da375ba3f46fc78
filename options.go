package toonbridge

import (
	"fmt"
	"hash/fnv"
	"sync"

	"github.com/wippyai/toon-bridge/codec"
	"github.com/wippyai/toon-bridge/errors"
)

// Delimiter tokens accepted by NewOptions and the loose-parameter
// operations.
const (
	DelimiterComma = "comma"
	DelimiterTab   = "tab"
	DelimiterPipe  = "pipe"
)

// Options is the caller-facing configuration value: a delimiter token and a
// strict-mode flag. Build one with NewOptions and reuse it across calls to
// pay the validation cost once. Options are immutable once built.
type Options struct {
	inner codec.Options
}

// NewOptions validates the delimiter token and builds an Options value.
// An empty delimiter selects the default (comma); strict defaults to false.
func NewOptions(delimiter string, strict bool) (*Options, error) {
	inner, err := buildOptions(delimiter, strict)
	if err != nil {
		return nil, err
	}
	return &Options{inner: inner}, nil
}

// buildOptions translates loose parameters into the codec's configuration
// struct, validating the delimiter token.
func buildOptions(delimiter string, strict bool) (codec.Options, error) {
	opts := codec.Options{Strict: strict}
	switch delimiter {
	case "", DelimiterComma:
		opts.Delimiter = codec.Comma
	case DelimiterTab:
		opts.Delimiter = codec.Tab
	case DelimiterPipe:
		opts.Delimiter = codec.Pipe
	default:
		return codec.Options{}, errors.InvalidOption(delimiter)
	}
	return opts, nil
}

// Delimiter returns the delimiter token. A nil receiver reads as the
// default options, like the other accessors.
func (o *Options) Delimiter() string { return o.codecOptions().Delimiter.String() }

// Strict returns the strict-mode flag.
func (o *Options) Strict() bool { return o.codecOptions().Strict }

// Equal reports whether both fields match. A nil receiver or argument
// compares as the default options.
func (o *Options) Equal(other *Options) bool {
	return o.codecOptions() == other.codecOptions()
}

// Hash returns a stable hash derived from both fields, for callers keying
// maps or deduplicating option sets.
func (o *Options) Hash() uint64 {
	h := fnv.New64a()
	h.Write([]byte(o.Delimiter()))
	if o.Strict() {
		h.Write([]byte{1})
	} else {
		h.Write([]byte{0})
	}
	return h.Sum64()
}

// String renders the options in the canonical human-readable form.
func (o *Options) String() string {
	return fmt.Sprintf("Options(delimiter='%s', strict=%t)", o.Delimiter(), o.Strict())
}

var (
	defaultOptions     *Options
	defaultOptionsOnce sync.Once
)

// DefaultOptions returns the process-wide shared default instance (comma
// delimiter, strict off). It is initialized once and never mutated.
func DefaultOptions() *Options {
	defaultOptionsOnce.Do(func() {
		defaultOptions = &Options{}
	})
	return defaultOptions
}

// codecOptions resolves a possibly-nil caller options value to the codec
// configuration, without re-validation.
func (o *Options) codecOptions() codec.Options {
	if o == nil {
		return DefaultOptions().inner
	}
	return o.inner
}
