// Package value defines the canonical value model exchanged with the TOON
// codec: a tagged union of null, bool, int, uint, float, string, ordered
// array, and ordered string-keyed object.
//
// The signed/unsigned split exists only to represent magnitudes beyond the
// signed 64-bit range without precision loss; Equal collapses the two under
// value equality. Float values are always finite - the converters reject
// NaN and infinities before a Value is built.
//
// The package also carries the JSON bridge used by the format-to-format
// conveniences: FromJSON preserves source key order and integer fidelity,
// and ToJSON emits object entries in insertion order.
package value
