package convert

import (
	"fmt"
	"math"
	"reflect"
	"sort"

	"github.com/wippyai/toon-bridge/errors"
	"github.com/wippyai/toon-bridge/value"
)

// ToValue converts a host value into the canonical value model.
//
// Classification runs in a fixed priority order: nil, bool, integer-like,
// float-like, string, array-like, map-like. The common Go shapes take the
// type-switch fast path; named types and exotic shapes fall through to a
// reflection-based capability probe with identical behavior. Anything that
// exposes none of these capabilities fails with a validation error naming
// the host runtime type.
func ToValue(host any) (*value.Value, error) {
	switch v := host.(type) {
	case nil:
		return value.Null(), nil
	case bool:
		return value.Bool(v), nil
	case int:
		return value.Int(int64(v)), nil
	case int8:
		return value.Int(int64(v)), nil
	case int16:
		return value.Int(int64(v)), nil
	case int32:
		return value.Int(int64(v)), nil
	case int64:
		return value.Int(v), nil
	case uint8:
		return value.Int(int64(v)), nil
	case uint16:
		return value.Int(int64(v)), nil
	case uint32:
		return value.Int(int64(v)), nil
	case uint:
		return uintValue(uint64(v)), nil
	case uint64:
		return uintValue(v), nil
	case float32:
		return floatValue(float64(v))
	case float64:
		return floatValue(v)
	case string:
		return value.Str(v), nil
	case []any:
		return sliceToValue(v)
	case map[string]any:
		return mapToValue(v)
	case *value.Value:
		// Already canonical; pass through untouched.
		return v, nil
	default:
		return reflectToValue(host)
	}
}

// uintValue keeps the signed representation whenever the magnitude fits;
// Uint exists only for the overflow case.
func uintValue(u uint64) *value.Value {
	if u <= math.MaxInt64 {
		return value.Int(int64(u))
	}
	return value.Uint(u)
}

func floatValue(f float64) (*value.Value, error) {
	if math.IsNaN(f) || math.IsInf(f, 0) {
		return nil, errors.NonFiniteFloat(errors.PhaseEncode)
	}
	return value.Float(f), nil
}

// sliceToValue converts elements in order, inlining the primitive cases and
// recursing only for nested containers. The inline path must stay
// behaviorally identical to calling ToValue per element.
func sliceToValue(src []any) (*value.Value, error) {
	items := make([]*value.Value, 0, len(src))
	for _, elem := range src {
		item, ok, err := scalarToValue(elem)
		if err != nil {
			return nil, err
		}
		if !ok {
			if item, err = ToValue(elem); err != nil {
				return nil, err
			}
		}
		items = append(items, item)
	}
	return value.Array(items...), nil
}

// mapToValue emits entries in sorted key order. Go maps carry no insertion
// order, and a deterministic order keeps encoded text stable across runs.
func mapToValue(src map[string]any) (*value.Value, error) {
	keys := make([]string, 0, len(src))
	for k := range src {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	entries := make([]value.Entry, 0, len(src))
	for _, k := range keys {
		elem := src[k]
		member, ok, err := scalarToValue(elem)
		if err != nil {
			return nil, err
		}
		if !ok {
			if member, err = ToValue(elem); err != nil {
				return nil, err
			}
		}
		entries = append(entries, value.Entry{Key: k, Value: member})
	}
	return value.Object(entries...), nil
}

// scalarToValue is the inline fast path for primitive elements inside
// containers. ok is false for container or unrecognized values, which the
// callers route through the full recursive path.
func scalarToValue(host any) (*value.Value, bool, error) {
	switch v := host.(type) {
	case nil:
		return value.Null(), true, nil
	case bool:
		return value.Bool(v), true, nil
	case int:
		return value.Int(int64(v)), true, nil
	case int64:
		return value.Int(v), true, nil
	case uint64:
		return uintValue(v), true, nil
	case float64:
		fv, err := floatValue(v)
		return fv, true, err
	case string:
		return value.Str(v), true, nil
	default:
		return nil, false, nil
	}
}

// reflectToValue probes capabilities of named and exotic host types. The
// priority order matches the type-switch path exactly.
func reflectToValue(host any) (*value.Value, error) {
	rv := reflect.ValueOf(host)
	switch rv.Kind() {
	case reflect.Bool:
		return value.Bool(rv.Bool()), nil
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return value.Int(rv.Int()), nil
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr:
		return uintValue(rv.Uint()), nil
	case reflect.Float32, reflect.Float64:
		return floatValue(rv.Float())
	case reflect.String:
		return value.Str(rv.String()), nil
	case reflect.Slice, reflect.Array:
		items := make([]*value.Value, 0, rv.Len())
		for i := 0; i < rv.Len(); i++ {
			item, err := ToValue(rv.Index(i).Interface())
			if err != nil {
				return nil, err
			}
			items = append(items, item)
		}
		return value.Array(items...), nil
	case reflect.Map:
		return reflectMapToValue(rv)
	case reflect.Pointer, reflect.Interface:
		if rv.IsNil() {
			return value.Null(), nil
		}
		return ToValue(rv.Elem().Interface())
	default:
		return nil, errors.UnsupportedType(errors.PhaseEncode, fmt.Sprintf("%T", host))
	}
}

func reflectMapToValue(rv reflect.Value) (*value.Value, error) {
	type pair struct {
		key  string
		elem reflect.Value
	}
	pairs := make([]pair, 0, rv.Len())

	iter := rv.MapRange()
	for iter.Next() {
		k, ok := stringKey(iter.Key())
		if !ok {
			return nil, errors.UnsupportedType(errors.PhaseEncode,
				fmt.Sprintf("%s (map key is not string-coercible)", rv.Type()))
		}
		pairs = append(pairs, pair{key: k, elem: iter.Value()})
	}
	sort.Slice(pairs, func(i, j int) bool { return pairs[i].key < pairs[j].key })

	entries := make([]value.Entry, 0, len(pairs))
	for _, p := range pairs {
		member, err := ToValue(p.elem.Interface())
		if err != nil {
			return nil, err
		}
		entries = append(entries, value.Entry{Key: p.key, Value: member})
	}
	return value.Object(entries...), nil
}

// stringKey coerces a map key to string: natively string-kinded keys are
// used directly, otherwise a Stringer capability is probed before failing.
// Interface-typed keys are unwrapped to their dynamic value first, so a
// map[any]any with string keys converts like a map[string]any.
func stringKey(k reflect.Value) (string, bool) {
	if k.Kind() == reflect.Interface {
		if k.IsNil() {
			return "", false
		}
		k = k.Elem()
	}
	if k.Kind() == reflect.String {
		return k.String(), true
	}
	if s, ok := k.Interface().(fmt.Stringer); ok {
		return s.String(), true
	}
	return "", false
}
