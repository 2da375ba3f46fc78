// Package toonbridge is a bidirectional value bridge between a host
// application's dynamic object graph and an external TOON codec.
//
// The codec's API is expressed solely in terms of a canonical value model
// (null/bool/int/uint/float/string/array/object); this package converts
// host values to and from that model and sequences the codec calls. The
// codec itself is a black box behind the codec.Codec interface.
//
// # Architecture Overview
//
//	toonbridge/          Bridge façade: encode/decode, batch, validate, transcode
//	├── value/           Canonical value model and JSON bridge
//	├── convert/         Inbound (host→value) and outbound (value→host) converters
//	├── codec/           Codec contract and error variants
//	├── codec/wasmcodec/ wazero-backed WASM plugin codec
//	└── errors/          Structured error taxonomy
//
// # Quick Start
//
//	c, err := wasmcodec.Load(ctx, wasmBytes)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	defer c.Close(ctx)
//
//	bridge := toonbridge.New(c)
//	text, err := bridge.Encode(map[string]any{"name": "Alice", "age": 30}, "", false)
//	// "age: 30\nname: Alice"
//
// # Locking Discipline
//
// Hosts that guard their object graph with a single lock pass it via
// WithGraphLock. The bridge holds the lock only while converters touch
// host objects and releases it for the entire codec phase. Batch
// operations convert all inputs under one lock acquisition, run all codec
// work unlocked, then convert all outputs under a second acquisition.
//
// # Errors
//
// Codec failures map onto a three-level hierarchy (errors.ErrCodec refined
// by ErrSyntax and ErrIO); bridge-side failures (bad option tokens,
// unsupported host types, non-finite floats, malformed JSON) are a
// separate validation class. Validate is the one operation that never
// fails: it reports encodability as a bool.
package toonbridge
