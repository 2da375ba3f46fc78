// Package codec declares the contract of the external TOON codec: a pure
// encode/decode pair over the canonical value model, plus the error
// variants implementations report (syntax with line number, generic
// message, I/O, embedded-format).
//
// The bridge never parses or generates TOON text itself; it only sequences
// conversions around these calls. One concrete implementation is provided
// in codec/wasmcodec, which loads a codec compiled to a WebAssembly module.
package codec
