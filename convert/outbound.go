package convert

import (
	"github.com/wippyai/toon-bridge/value"
)

// FromValue converts a canonical value into host-native Go values: nil,
// bool, int64, uint64, float64, string, []any, and map[string]any.
//
// The conversion is infallible for well-formed values. Array and object
// loops inline the primitive cases and recurse only for nested containers;
// the inline path is indistinguishable from full recursion. Host maps carry
// no ordering, so the ordered form of a decoded document is the Value
// itself.
func FromValue(v *value.Value) any {
	switch v.Kind() {
	case value.KindNull:
		return nil
	case value.KindBool:
		return v.BoolVal()
	case value.KindInt:
		return v.IntVal()
	case value.KindUint:
		return v.UintVal()
	case value.KindFloat:
		return v.FloatVal()
	case value.KindString:
		return v.StrVal()
	case value.KindArray:
		items := v.Items()
		out := make([]any, len(items))
		for i, item := range items {
			if elem, ok := scalarFromValue(item); ok {
				out[i] = elem
			} else {
				out[i] = FromValue(item)
			}
		}
		return out
	case value.KindObject:
		entries := v.Entries()
		out := make(map[string]any, len(entries))
		for _, e := range entries {
			if elem, ok := scalarFromValue(e.Value); ok {
				out[e.Key] = elem
			} else {
				out[e.Key] = FromValue(e.Value)
			}
		}
		return out
	default:
		return nil
	}
}

// scalarFromValue is the inline fast path for primitive elements. ok is
// false for containers, which the callers convert recursively.
func scalarFromValue(v *value.Value) (any, bool) {
	switch v.Kind() {
	case value.KindNull:
		return nil, true
	case value.KindBool:
		return v.BoolVal(), true
	case value.KindInt:
		return v.IntVal(), true
	case value.KindUint:
		return v.UintVal(), true
	case value.KindFloat:
		return v.FloatVal(), true
	case value.KindString:
		return v.StrVal(), true
	default:
		return nil, false
	}
}
