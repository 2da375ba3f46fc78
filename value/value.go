package value

// Kind identifies the variant held by a Value.
type Kind uint8

const (
	KindNull Kind = iota
	KindBool
	KindInt
	KindUint
	KindFloat
	KindString
	KindArray
	KindObject
)

// String returns the kind name.
func (k Kind) String() string {
	switch k {
	case KindNull:
		return "null"
	case KindBool:
		return "bool"
	case KindInt:
		return "int"
	case KindUint:
		return "uint"
	case KindFloat:
		return "float"
	case KindString:
		return "string"
	case KindArray:
		return "array"
	case KindObject:
		return "object"
	default:
		return "unknown"
	}
}

// Value is the canonical, format-agnostic representation exchanged with the
// TOON codec. It is a tagged union; exactly one field is valid per kind.
// Values are built fresh per conversion and never shared between calls.
type Value struct {
	kind Kind

	boolVal  bool
	intVal   int64
	uintVal  uint64
	floatVal float64
	strVal   string

	arrVal []*Value
	objVal []Entry
}

// Entry is a key-value pair in an Object. Object entries are ordered so
// decoded documents round-trip with stable text.
type Entry struct {
	Key   string
	Value *Value
}

var nullValue = Value{kind: KindNull}

// Null returns the null value.
func Null() *Value { return &nullValue }

// Bool constructs a boolean value.
func Bool(b bool) *Value { return &Value{kind: KindBool, boolVal: b} }

// Int constructs a signed integer value.
func Int(i int64) *Value { return &Value{kind: KindInt, intVal: i} }

// Uint constructs an unsigned integer value. Used only for magnitudes that
// exceed the signed 64-bit range.
func Uint(u uint64) *Value { return &Value{kind: KindUint, uintVal: u} }

// Float constructs a float value. Callers must reject NaN and infinities
// before construction; a Value never holds a non-finite float.
func Float(f float64) *Value { return &Value{kind: KindFloat, floatVal: f} }

// Str constructs a string value.
func Str(s string) *Value { return &Value{kind: KindString, strVal: s} }

// Array constructs an array value from items, preserving order.
func Array(items ...*Value) *Value { return &Value{kind: KindArray, arrVal: items} }

// Object constructs an object value from entries, preserving order.
func Object(entries ...Entry) *Value { return &Value{kind: KindObject, objVal: entries} }

// Kind returns the variant tag.
func (v *Value) Kind() Kind { return v.kind }

// BoolVal returns the boolean payload. Valid only for KindBool.
func (v *Value) BoolVal() bool { return v.boolVal }

// IntVal returns the signed integer payload. Valid only for KindInt.
func (v *Value) IntVal() int64 { return v.intVal }

// UintVal returns the unsigned integer payload. Valid only for KindUint.
func (v *Value) UintVal() uint64 { return v.uintVal }

// FloatVal returns the float payload. Valid only for KindFloat.
func (v *Value) FloatVal() float64 { return v.floatVal }

// StrVal returns the string payload. Valid only for KindString.
func (v *Value) StrVal() string { return v.strVal }

// Items returns the array elements. Valid only for KindArray.
func (v *Value) Items() []*Value { return v.arrVal }

// Entries returns the object entries in insertion order. Valid only for
// KindObject.
func (v *Value) Entries() []Entry { return v.objVal }

// Len returns the element count for arrays and objects, zero otherwise.
func (v *Value) Len() int {
	switch v.kind {
	case KindArray:
		return len(v.arrVal)
	case KindObject:
		return len(v.objVal)
	default:
		return 0
	}
}

// Equal reports structural equality. Int and Uint collapse under value
// equality: Int(5) equals Uint(5). Object comparison is order-sensitive.
func (v *Value) Equal(o *Value) bool {
	if v == nil || o == nil {
		return v == o
	}
	switch v.kind {
	case KindNull:
		return o.kind == KindNull
	case KindBool:
		return o.kind == KindBool && v.boolVal == o.boolVal
	case KindInt:
		switch o.kind {
		case KindInt:
			return v.intVal == o.intVal
		case KindUint:
			return v.intVal >= 0 && uint64(v.intVal) == o.uintVal
		}
		return false
	case KindUint:
		switch o.kind {
		case KindUint:
			return v.uintVal == o.uintVal
		case KindInt:
			return o.intVal >= 0 && uint64(o.intVal) == v.uintVal
		}
		return false
	case KindFloat:
		return o.kind == KindFloat && v.floatVal == o.floatVal
	case KindString:
		return o.kind == KindString && v.strVal == o.strVal
	case KindArray:
		if o.kind != KindArray || len(v.arrVal) != len(o.arrVal) {
			return false
		}
		for i, item := range v.arrVal {
			if !item.Equal(o.arrVal[i]) {
				return false
			}
		}
		return true
	case KindObject:
		if o.kind != KindObject || len(v.objVal) != len(o.objVal) {
			return false
		}
		for i, e := range v.objVal {
			if e.Key != o.objVal[i].Key || !e.Value.Equal(o.objVal[i].Value) {
				return false
			}
		}
		return true
	default:
		return false
	}
}
