package toonbridge

import (
	stderrors "errors"
	"strings"
	"testing"

	"github.com/wippyai/toon-bridge/errors"
)

func TestNewOptionsAcceptsAllTokens(t *testing.T) {
	for _, token := range []string{DelimiterComma, DelimiterTab, DelimiterPipe} {
		o, err := NewOptions(token, false)
		if err != nil {
			t.Errorf("NewOptions(%q): %v", token, err)
			continue
		}
		if o.Delimiter() != token {
			t.Errorf("Delimiter() = %q, want %q", o.Delimiter(), token)
		}
	}
}

func TestNewOptionsDefaults(t *testing.T) {
	o, err := NewOptions("", false)
	if err != nil {
		t.Fatalf("NewOptions: %v", err)
	}
	if o.Delimiter() != DelimiterComma || o.Strict() {
		t.Errorf("defaults wrong: %s", o)
	}
}

func TestNewOptionsRejectsUnknownToken(t *testing.T) {
	_, err := NewOptions("invalid", false)
	if err == nil {
		t.Fatal("unknown token should fail")
	}
	if !stderrors.Is(err, errors.ErrValidation) {
		t.Errorf("want validation error, got %v", err)
	}
	if !strings.Contains(err.Error(), `"invalid"`) {
		t.Errorf("error should name the token: %v", err)
	}
}

func TestOptionsEqualAndHash(t *testing.T) {
	a, _ := NewOptions(DelimiterTab, true)
	b, _ := NewOptions(DelimiterTab, true)
	c, _ := NewOptions(DelimiterTab, false)
	d, _ := NewOptions(DelimiterPipe, true)

	if !a.Equal(b) {
		t.Error("identical options should be equal")
	}
	if a.Equal(c) || a.Equal(d) {
		t.Error("options differing in one field should not be equal")
	}
	if a.Hash() != b.Hash() {
		t.Error("equal options should hash alike")
	}
	if a.Hash() == c.Hash() || a.Hash() == d.Hash() || c.Hash() == d.Hash() {
		t.Error("distinct options should hash apart")
	}
}

func TestOptionsString(t *testing.T) {
	o, _ := NewOptions(DelimiterPipe, true)
	if got := o.String(); got != "Options(delimiter='pipe', strict=true)" {
		t.Errorf("String() = %q", got)
	}
	if got := DefaultOptions().String(); got != "Options(delimiter='comma', strict=false)" {
		t.Errorf("default String() = %q", got)
	}
}

func TestOptionsNilReceiverReadsAsDefault(t *testing.T) {
	var o *Options
	if got := o.Delimiter(); got != DelimiterComma {
		t.Errorf("nil Delimiter() = %q", got)
	}
	if o.Strict() {
		t.Error("nil Strict() should be false")
	}
	if got := o.String(); got != "Options(delimiter='comma', strict=false)" {
		t.Errorf("nil String() = %q", got)
	}
	if o.Hash() != DefaultOptions().Hash() {
		t.Error("nil Hash() should match the default instance")
	}
	if !o.Equal(DefaultOptions()) || !DefaultOptions().Equal(o) {
		t.Error("nil should compare equal to the default instance")
	}
}

func TestDefaultOptionsShared(t *testing.T) {
	if DefaultOptions() != DefaultOptions() {
		t.Error("DefaultOptions should return the shared instance")
	}
	if !DefaultOptions().Equal(&Options{}) {
		t.Error("default instance should equal the zero options")
	}
}
