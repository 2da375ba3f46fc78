package toonbridge

import (
	"bytes"
	stderrors "errors"
	"math"
	"reflect"
	"strings"
	"testing"

	"github.com/wippyai/toon-bridge/codec"
	"github.com/wippyai/toon-bridge/errors"
)

func newTestBridge(opts ...BridgeOption) *Bridge {
	return New(&fakeCodec{}, opts...)
}

func TestEncodeScenario(t *testing.T) {
	b := newTestBridge()
	text, err := b.Encode(map[string]any{"name": "Alice", "age": 30}, "", false)
	if err != nil {
		t.Fatalf("Encode: %v", err)
	}
	lines := strings.Split(text, "\n")
	if len(lines) != 2 {
		t.Fatalf("want two lines, got %q", text)
	}
	if lines[0] != "age: 30" || lines[1] != "name: Alice" {
		t.Errorf("unexpected lines: %q", lines)
	}
}

func TestDecodeScenario(t *testing.T) {
	b := newTestBridge()
	got, err := b.Decode("name: Alice\nage: 30", "", false)
	if err != nil {
		t.Fatalf("Decode: %v", err)
	}
	want := map[string]any{"name": "Alice", "age": int64(30)}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("got %#v, want %#v", got, want)
	}
}

func TestEncodeDecodeInverse(t *testing.T) {
	b := newTestBridge()
	hosts := []any{
		map[string]any{"id": 1, "name": "Alice", "score": 9.5, "ok": true, "none": nil},
		"bare string",
		int64(-12),
		[]any{int64(1), int64(2), int64(3)},
	}
	for i, host := range hosts {
		text, err := b.Encode(host, "", false)
		if err != nil {
			t.Fatalf("case %d encode: %v", i, err)
		}
		got, err := b.Decode(text, "", false)
		if err != nil {
			t.Fatalf("case %d decode: %v", i, err)
		}
		// Numeric subtype distinctions collapse under structural equality;
		// the fake codec round-trips ints as int64.
		want := normalizeInts(host)
		if !reflect.DeepEqual(got, want) {
			t.Errorf("case %d: got %#v, want %#v", i, got, want)
		}
	}
}

func normalizeInts(host any) any {
	switch v := host.(type) {
	case int:
		return int64(v)
	case []any:
		out := make([]any, len(v))
		for i, e := range v {
			out[i] = normalizeInts(e)
		}
		return out
	case map[string]any:
		out := make(map[string]any, len(v))
		for k, e := range v {
			out[k] = normalizeInts(e)
		}
		return out
	default:
		return host
	}
}

func TestEncodeInvalidDelimiter(t *testing.T) {
	b := newTestBridge()
	_, err := b.Encode(map[string]any{"a": 1}, "invalid", false)
	if err == nil {
		t.Fatal("invalid delimiter should fail")
	}
	if !stderrors.Is(err, errors.ErrValidation) {
		t.Errorf("want validation error, got %v", err)
	}
	if !strings.Contains(err.Error(), `"invalid"`) {
		t.Errorf("error should name the offending token: %v", err)
	}
}

func TestEncodeDelimiterReachesCodec(t *testing.T) {
	b := newTestBridge()
	text, err := b.Encode([]any{1, 2, 3}, DelimiterPipe, false)
	if err != nil {
		t.Fatalf("Encode: %v", err)
	}
	if text != "[1|2|3]" {
		t.Errorf("pipe delimiter not applied: %q", text)
	}
}

func TestEncodeWithOptionsSkipsValidation(t *testing.T) {
	b := newTestBridge()
	opts, err := NewOptions(DelimiterTab, true)
	if err != nil {
		t.Fatalf("NewOptions: %v", err)
	}
	text, err := b.EncodeWithOptions([]any{1, 2}, opts)
	if err != nil {
		t.Fatalf("EncodeWithOptions: %v", err)
	}
	if text != "[1\t2]" {
		t.Errorf("tab delimiter not applied: %q", text)
	}

	// nil options use the shared default.
	text, err = b.EncodeWithOptions([]any{1, 2}, nil)
	if err != nil || text != "[1,2]" {
		t.Errorf("nil options should use defaults, got %q, %v", text, err)
	}
}

func TestDecodeStrictModeReachesCodec(t *testing.T) {
	b := newTestBridge()
	if _, err := b.Decode("a: 1\na: 2", "", true); err == nil {
		t.Error("strict decode of duplicate keys should fail")
	}
	if _, err := b.Decode("a: 1\na: 2", "", false); err != nil {
		t.Errorf("lenient decode should pass: %v", err)
	}
}

func TestDecodeSyntaxErrorMapping(t *testing.T) {
	b := newTestBridge()
	_, err := b.Decode("ok: 1\nbroken-line", "", false)
	if err == nil {
		t.Fatal("malformed document should fail")
	}
	if !stderrors.Is(err, errors.ErrSyntax) {
		t.Errorf("want syntax error, got %v", err)
	}
	if !stderrors.Is(err, errors.ErrCodec) {
		t.Error("syntax error should match the codec base kind")
	}
	if !strings.Contains(err.Error(), "Line 2:") {
		t.Errorf("message should embed the 1-based line: %v", err)
	}
}

func TestEncodeUnsupportedHostValue(t *testing.T) {
	b := newTestBridge()
	_, err := b.Encode(make(chan int), "", false)
	if err == nil {
		t.Fatal("channel should not encode")
	}
	if !stderrors.Is(err, errors.ErrValidation) || stderrors.Is(err, errors.ErrCodec) {
		t.Errorf("conversion failure must stay validation-class: %v", err)
	}
}

func TestEncodeNonFiniteFloat(t *testing.T) {
	b := newTestBridge()
	for _, f := range []float64{math.NaN(), math.Inf(1), math.Inf(-1)} {
		if _, err := b.Encode(f, "", false); !stderrors.Is(err, errors.ErrValidation) {
			t.Errorf("Encode(%v) should fail validation, got %v", f, err)
		}
	}
}

func TestBytesVariants(t *testing.T) {
	b := newTestBridge()
	data, err := b.EncodeBytes(map[string]any{"age": 30}, nil)
	if err != nil {
		t.Fatalf("EncodeBytes: %v", err)
	}
	if string(data) != "age: 30" {
		t.Errorf("unexpected bytes: %q", data)
	}
	got, err := b.DecodeBytes(data, nil)
	if err != nil {
		t.Fatalf("DecodeBytes: %v", err)
	}
	if !reflect.DeepEqual(got, map[string]any{"age": int64(30)}) {
		t.Errorf("got %#v", got)
	}
}

func TestDumpAndLoad(t *testing.T) {
	b := newTestBridge()
	var buf bytes.Buffer
	if err := b.Dump(&buf, map[string]any{"name": "Bob"}); err != nil {
		t.Fatalf("Dump: %v", err)
	}
	if buf.String() != "name: Bob" {
		t.Errorf("sink content: %q", buf.String())
	}
	got, err := b.Load(strings.NewReader("name: Bob"))
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if !reflect.DeepEqual(got, map[string]any{"name": "Bob"}) {
		t.Errorf("got %#v", got)
	}
}

func TestJSONToTOON(t *testing.T) {
	b := newTestBridge()
	text, err := b.JSONToTOON(`{"name":"Alice","age":30}`, "", false)
	if err != nil {
		t.Fatalf("JSONToTOON: %v", err)
	}
	// JSON source order is preserved; the inbound converter is bypassed.
	if text != "name: Alice\nage: 30" {
		t.Errorf("unexpected output: %q", text)
	}

	_, err = b.JSONToTOON(`{"broken`, "", false)
	if err == nil {
		t.Fatal("malformed JSON should fail")
	}
	if !stderrors.Is(err, errors.ErrValidation) {
		t.Errorf("want validation error, got %v", err)
	}
	if !strings.Contains(err.Error(), "Invalid JSON") {
		t.Errorf("message should name the transcoding stage: %v", err)
	}
}

func TestTOONToJSON(t *testing.T) {
	b := newTestBridge()
	out, err := b.TOONToJSON("name: Alice\nage: 30", false, false)
	if err != nil {
		t.Fatalf("TOONToJSON: %v", err)
	}
	if out != `{"name":"Alice","age":30}` {
		t.Errorf("unexpected output: %s", out)
	}

	pretty, err := b.TOONToJSON("age: 30", true, false)
	if err != nil {
		t.Fatalf("TOONToJSON pretty: %v", err)
	}
	if !strings.Contains(pretty, "\n") {
		t.Errorf("pretty output should be indented: %q", pretty)
	}
}

func TestValidateNeverFails(t *testing.T) {
	b := newTestBridge()
	cases := []struct {
		host any
		want bool
	}{
		{map[string]any{"a": 1}, true},
		{"text", true},
		{nil, true},
		{make(chan int), false},
		{math.NaN(), false},
		{map[string]any{"x": math.Inf(1)}, false},
	}
	for _, tc := range cases {
		if got := b.Validate(tc.host, nil); got != tc.want {
			t.Errorf("Validate(%T) = %v, want %v", tc.host, got, tc.want)
		}
	}

	// Codec failures also surface as false, never as an error.
	failing := New(&failCodec{err: &codec.MessageError{Message: "refused"}})
	if failing.Validate(map[string]any{"a": 1}, nil) {
		t.Error("codec failure should yield false")
	}
}

func TestCodecIOErrorMapping(t *testing.T) {
	b := New(&failCodec{err: &codec.IOError{Err: stderrors.New("pipe closed")}})
	_, err := b.Decode("x: 1", "", false)
	if !stderrors.Is(err, errors.ErrIO) {
		t.Errorf("want I/O error, got %v", err)
	}
	if !stderrors.Is(err, errors.ErrCodec) {
		t.Error("I/O error should match the codec base kind")
	}
}

func TestCodecMessageErrorMapping(t *testing.T) {
	b := New(&failCodec{err: &codec.MessageError{Message: "rows have inconsistent width"}})
	_, err := b.Encode(map[string]any{"a": 1}, "", false)
	if !stderrors.Is(err, errors.ErrCodec) {
		t.Errorf("want codec error, got %v", err)
	}
	if stderrors.Is(err, errors.ErrSyntax) || stderrors.Is(err, errors.ErrIO) {
		t.Error("message error should match only the base kind")
	}
	if !strings.Contains(err.Error(), "rows have inconsistent width") {
		t.Errorf("message should pass through verbatim: %v", err)
	}
}
