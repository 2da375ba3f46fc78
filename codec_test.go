package toonbridge

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/wippyai/toon-bridge/codec"
	"github.com/wippyai/toon-bridge/value"
)

// fakeCodec implements codec.Codec for testing: a line-oriented rendering of
// objects of primitives ("key: value" per line) with inline arrays. It is
// not a TOON implementation, just enough surface to exercise the bridge.
type fakeCodec struct {
	// observe, when set, is called at the start of every codec operation.
	// Tests use it to assert the host-graph lock is not held here.
	observe func()
}

func (f *fakeCodec) observed() {
	if f.observe != nil {
		f.observe()
	}
}

func delimiterRune(opts codec.Options) string {
	switch opts.Delimiter {
	case codec.Tab:
		return "\t"
	case codec.Pipe:
		return "|"
	default:
		return ","
	}
}

func (f *fakeCodec) Encode(v *value.Value, opts codec.Options) (string, error) {
	f.observed()
	switch v.Kind() {
	case value.KindObject:
		lines := make([]string, 0, v.Len())
		for _, e := range v.Entries() {
			rendered, err := renderInline(e.Value, opts)
			if err != nil {
				return "", err
			}
			lines = append(lines, e.Key+": "+rendered)
		}
		return strings.Join(lines, "\n"), nil
	default:
		return renderInline(v, opts)
	}
}

func renderInline(v *value.Value, opts codec.Options) (string, error) {
	switch v.Kind() {
	case value.KindNull:
		return "null", nil
	case value.KindBool:
		return strconv.FormatBool(v.BoolVal()), nil
	case value.KindInt:
		return strconv.FormatInt(v.IntVal(), 10), nil
	case value.KindUint:
		return strconv.FormatUint(v.UintVal(), 10), nil
	case value.KindFloat:
		return strconv.FormatFloat(v.FloatVal(), 'g', -1, 64), nil
	case value.KindString:
		return v.StrVal(), nil
	case value.KindArray:
		parts := make([]string, 0, v.Len())
		for _, item := range v.Items() {
			p, err := renderInline(item, opts)
			if err != nil {
				return "", err
			}
			parts = append(parts, p)
		}
		return "[" + strings.Join(parts, delimiterRune(opts)) + "]", nil
	default:
		return "", &codec.MessageError{Message: fmt.Sprintf("cannot render %s inline", v.Kind())}
	}
}

func (f *fakeCodec) Decode(text string, opts codec.Options) (*value.Value, error) {
	f.observed()
	if text == "" {
		return nil, &codec.SyntaxError{Line: 1, Message: "empty document"}
	}
	lines := strings.Split(text, "\n")
	if len(lines) == 1 && !strings.Contains(lines[0], ": ") {
		return parseScalar(lines[0], opts), nil
	}

	entries := make([]value.Entry, 0, len(lines))
	seen := map[string]bool{}
	for i, line := range lines {
		key, rest, found := strings.Cut(line, ": ")
		if !found {
			return nil, &codec.SyntaxError{Line: i + 1, Message: "missing key separator"}
		}
		if opts.Strict && seen[key] {
			return nil, &codec.MessageError{Message: fmt.Sprintf("duplicate key %q", key)}
		}
		seen[key] = true
		entries = append(entries, value.Entry{Key: key, Value: parseScalar(rest, opts)})
	}
	return value.Object(entries...), nil
}

func parseScalar(s string, opts codec.Options) *value.Value {
	switch s {
	case "null":
		return value.Null()
	case "true":
		return value.Bool(true)
	case "false":
		return value.Bool(false)
	}
	if strings.HasPrefix(s, "[") && strings.HasSuffix(s, "]") {
		inner := s[1 : len(s)-1]
		if inner == "" {
			return value.Array()
		}
		parts := strings.Split(inner, delimiterRune(opts))
		items := make([]*value.Value, 0, len(parts))
		for _, p := range parts {
			items = append(items, parseScalar(p, opts))
		}
		return value.Array(items...)
	}
	if i, err := strconv.ParseInt(s, 10, 64); err == nil {
		return value.Int(i)
	}
	if u, err := strconv.ParseUint(s, 10, 64); err == nil {
		return value.Uint(u)
	}
	if f, err := strconv.ParseFloat(s, 64); err == nil {
		return value.Float(f)
	}
	return value.Str(s)
}

func (f *fakeCodec) EncodeTo(w io.Writer, v *value.Value, opts codec.Options) error {
	text, err := f.Encode(v, opts)
	if err != nil {
		return err
	}
	if _, err := io.WriteString(w, text); err != nil {
		return &codec.IOError{Err: err}
	}
	return nil
}

func (f *fakeCodec) DecodeFrom(r io.Reader, opts codec.Options) (*value.Value, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, &codec.IOError{Err: err}
	}
	return f.Decode(string(data), opts)
}

// failCodec returns a fixed error from every operation.
type failCodec struct {
	err error
}

func (f *failCodec) Encode(*value.Value, codec.Options) (string, error) { return "", f.err }
func (f *failCodec) Decode(string, codec.Options) (*value.Value, error) {
	return nil, f.err
}
func (f *failCodec) EncodeTo(io.Writer, *value.Value, codec.Options) error { return f.err }
func (f *failCodec) DecodeFrom(io.Reader, codec.Options) (*value.Value, error) {
	return nil, f.err
}
