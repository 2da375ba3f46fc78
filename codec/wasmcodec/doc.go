// Package wasmcodec loads a TOON codec compiled to a WebAssembly module and
// exposes it as a codec.Codec.
//
// # Guest ABI
//
// The plugin must export four functions:
//
//	toon_alloc(size: u32) -> u32               allocate a guest buffer
//	toon_free(ptr: u32, size: u32)             release a guest buffer
//	toon_encode(ptr, len, flags: u32) -> u64   JSON bytes in, response out
//	toon_decode(ptr, len, flags: u32) -> u64   TOON bytes in, response out
//
// Values cross the boundary as JSON renderings of the canonical value
// model. Results pack a response pointer and length into one u64
// (ptr<<32|len). Every response buffer starts with a status byte; on
// success the payload follows, on failure the payload describes the error
// (syntax failures carry a 4-byte little-endian line number before the
// message).
//
// Options pack into the flags word: delimiter in the low two bits
// (0 comma, 1 tab, 2 pipe), strict mode in bit 2.
//
// WASI preview1 is instantiated so plugins built against wasip1 can link.
// Guest calls are serialized with an internal mutex; the codec is safe for
// concurrent use but calls do not overlap.
package wasmcodec
