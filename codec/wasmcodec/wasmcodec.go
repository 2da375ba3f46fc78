package wasmcodec

import (
	"context"
	"fmt"
	"io"
	"sync"

	"github.com/tetratelabs/wazero"
	"github.com/tetratelabs/wazero/api"
	"github.com/tetratelabs/wazero/imports/wasi_snapshot_preview1"
	"go.uber.org/zap"

	"github.com/wippyai/toon-bridge/codec"
	"github.com/wippyai/toon-bridge/value"
)

// Guest exports required by the plugin ABI.
const (
	exportAlloc  = "toon_alloc"
	exportFree   = "toon_free"
	exportEncode = "toon_encode"
	exportDecode = "toon_decode"
)

// Codec is a codec.Codec backed by a TOON implementation compiled to a
// WebAssembly module. Values cross the boundary as JSON bytes of the
// canonical model; see the package doc for the guest ABI.
type Codec struct {
	runtime wazero.Runtime
	module  api.Module
	alloc   api.Function
	free    api.Function
	encode  api.Function
	decode  api.Function

	// Guests are not reentrant; calls are serialized.
	mu     sync.Mutex
	closed bool
}

var _ codec.Codec = (*Codec)(nil)

// Load compiles and instantiates a codec plugin. WASI preview1 is
// provided so plugins built against it can link. Close the codec to
// release the runtime.
func Load(ctx context.Context, wasmBytes []byte) (*Codec, error) {
	r := wazero.NewRuntime(ctx)

	if _, err := wasi_snapshot_preview1.Instantiate(ctx, r); err != nil {
		r.Close(ctx)
		return nil, fmt.Errorf("instantiate wasi: %w", err)
	}

	mod, err := r.InstantiateWithConfig(ctx, wasmBytes,
		wazero.NewModuleConfig().WithName("toon-codec"))
	if err != nil {
		r.Close(ctx)
		return nil, fmt.Errorf("instantiate codec module: %w", err)
	}

	c := &Codec{runtime: r, module: mod}
	for _, export := range []struct {
		name string
		fn   *api.Function
	}{
		{exportAlloc, &c.alloc},
		{exportFree, &c.free},
		{exportEncode, &c.encode},
		{exportDecode, &c.decode},
	} {
		f := mod.ExportedFunction(export.name)
		if f == nil {
			r.Close(ctx)
			return nil, fmt.Errorf("codec module does not export %q", export.name)
		}
		*export.fn = f
	}
	return c, nil
}

// Close releases the underlying runtime. The codec is unusable afterwards.
func (c *Codec) Close(ctx context.Context) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.closed {
		return nil
	}
	c.closed = true
	return c.runtime.Close(ctx)
}

// Encode implements codec.Codec.
func (c *Codec) Encode(v *value.Value, opts codec.Options) (string, error) {
	payload, err := v.MarshalJSON()
	if err != nil {
		return "", &codec.MessageError{Message: err.Error()}
	}
	out, err := c.call(c.encode, payload, packFlags(opts))
	if err != nil {
		return "", err
	}
	return string(out), nil
}

// Decode implements codec.Codec.
func (c *Codec) Decode(text string, opts codec.Options) (*value.Value, error) {
	out, err := c.call(c.decode, []byte(text), packFlags(opts))
	if err != nil {
		return nil, err
	}
	v, err := value.FromJSON(out)
	if err != nil {
		return nil, &codec.EmbeddedFormatError{Stage: "JSON", Detail: err.Error()}
	}
	return v, nil
}

// EncodeTo implements codec.Codec.
func (c *Codec) EncodeTo(w io.Writer, v *value.Value, opts codec.Options) error {
	text, err := c.Encode(v, opts)
	if err != nil {
		return err
	}
	if _, err := io.WriteString(w, text); err != nil {
		return &codec.IOError{Err: err}
	}
	return nil
}

// DecodeFrom implements codec.Codec.
func (c *Codec) DecodeFrom(r io.Reader, opts codec.Options) (*value.Value, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, &codec.IOError{Err: err}
	}
	return c.Decode(string(data), opts)
}

// call writes the input into guest memory, invokes fn, and parses the
// status-prefixed response buffer.
func (c *Codec) call(fn api.Function, input []byte, flags uint32) ([]byte, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.closed {
		return nil, &codec.MessageError{Message: "codec is closed"}
	}

	ctx := context.Background()
	mem := c.module.Memory()

	inPtr := uint32(0)
	inLen := uint32(len(input))
	if inLen > 0 {
		res, err := c.alloc.Call(ctx, uint64(inLen))
		if err != nil {
			return nil, &codec.MessageError{Message: fmt.Sprintf("guest alloc: %v", err)}
		}
		inPtr = uint32(res[0])
		if !mem.Write(inPtr, input) {
			c.freeGuest(ctx, inPtr, inLen)
			return nil, &codec.MessageError{Message: "input does not fit guest memory"}
		}
	}

	res, err := fn.Call(ctx, uint64(inPtr), uint64(inLen), uint64(flags))
	if inLen > 0 {
		c.freeGuest(ctx, inPtr, inLen)
	}
	if err != nil {
		return nil, &codec.MessageError{Message: fmt.Sprintf("guest call: %v", err)}
	}

	outPtr, outLen := unpackResult(res[0])
	response, ok := mem.Read(outPtr, outLen)
	if !ok {
		return nil, &codec.MessageError{Message: "response buffer out of bounds"}
	}
	// Copy before freeing; Read aliases guest memory.
	response = append([]byte(nil), response...)
	c.freeGuest(ctx, outPtr, outLen)

	return parseResponse(response)
}

// freeGuest returns a buffer to the guest allocator. A failing free leaks
// guest memory; the failure is surfaced through the package logger so
// misbehaving plugins stay observable.
func (c *Codec) freeGuest(ctx context.Context, ptr, length uint32) {
	if _, err := c.free.Call(ctx, uint64(ptr), uint64(length)); err != nil {
		Logger().Debug("guest free failed",
			zap.Uint32("ptr", ptr),
			zap.Uint32("len", length),
			zap.Error(err))
	}
}
