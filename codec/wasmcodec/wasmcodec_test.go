package wasmcodec

import (
	"context"
	"errors"
	"testing"

	"github.com/tetratelabs/wazero/api"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"
)

type stubFunction struct {
	api.Function
	err error
}

func (s stubFunction) Definition() api.FunctionDefinition { return nil }

func (s stubFunction) Call(context.Context, ...uint64) ([]uint64, error) {
	return nil, s.err
}

func (s stubFunction) CallWithStack(context.Context, []uint64) error {
	return s.err
}

func TestFreeGuestLogsFailure(t *testing.T) {
	core, logs := observer.New(zap.DebugLevel)
	SetLogger(zap.New(core))
	defer SetLogger(zap.NewNop())

	c := &Codec{free: stubFunction{err: errors.New("out of bounds")}}
	c.freeGuest(context.Background(), 16, 8)

	entries := logs.All()
	if len(entries) != 1 {
		t.Fatalf("expected one log entry, got %d", len(entries))
	}
	if entries[0].Message != "guest free failed" {
		t.Errorf("unexpected message %q", entries[0].Message)
	}

	ok := &Codec{free: stubFunction{}}
	ok.freeGuest(context.Background(), 16, 8)
	if logs.Len() != 1 {
		t.Error("successful free should not log")
	}
}
