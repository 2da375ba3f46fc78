package value

import (
	"bytes"
	stdjson "encoding/json"
	"fmt"
	"strconv"
	"strings"

	"github.com/bytedance/sonic"
	"github.com/bytedance/sonic/ast"
)

var api = sonic.Config{
	EscapeHTML:  false,
	SortMapKeys: false,
	UseInt64:    true,
	CopyString:  true,
}.Froze()

// FromJSON parses JSON text into a canonical Value. Object key order follows
// the source text, and integers without a fractional part stay integral
// (Int, or Uint above the signed range) instead of collapsing to float64.
func FromJSON(data []byte) (*Value, error) {
	root, err := sonic.Get(data)
	if err != nil {
		return nil, err
	}
	return fromNode(&root)
}

func fromNode(n *ast.Node) (*Value, error) {
	switch n.Type() {
	case ast.V_NULL:
		return Null(), nil
	case ast.V_TRUE:
		return Bool(true), nil
	case ast.V_FALSE:
		return Bool(false), nil
	case ast.V_STRING:
		s, err := n.String()
		if err != nil {
			return nil, err
		}
		return Str(s), nil
	case ast.V_NUMBER:
		raw, err := n.Raw()
		if err != nil {
			return nil, err
		}
		return numberFromRaw(strings.TrimSpace(raw))
	case ast.V_ARRAY:
		length, err := n.Len()
		if err != nil {
			return nil, err
		}
		items := make([]*Value, 0, length)
		var convErr error
		err = n.ForEach(func(path ast.Sequence, node *ast.Node) bool {
			var item *Value
			if item, convErr = fromNode(node); convErr != nil {
				return false
			}
			items = append(items, item)
			return true
		})
		if convErr != nil {
			return nil, convErr
		}
		if err != nil {
			return nil, err
		}
		return Array(items...), nil
	case ast.V_OBJECT:
		length, err := n.Len()
		if err != nil {
			return nil, err
		}
		entries := make([]Entry, 0, length)
		var convErr error
		err = n.ForEach(func(path ast.Sequence, node *ast.Node) bool {
			if path.Key == nil {
				convErr = fmt.Errorf("object member without key")
				return false
			}
			var member *Value
			if member, convErr = fromNode(node); convErr != nil {
				return false
			}
			entries = append(entries, Entry{Key: *path.Key, Value: member})
			return true
		})
		if convErr != nil {
			return nil, convErr
		}
		if err != nil {
			return nil, err
		}
		return Object(entries...), nil
	default:
		return nil, fmt.Errorf("unsupported JSON node type %d", n.Type())
	}
}

func numberFromRaw(raw string) (*Value, error) {
	if !strings.ContainsAny(raw, ".eE") {
		if i, err := strconv.ParseInt(raw, 10, 64); err == nil {
			return Int(i), nil
		}
		if u, err := strconv.ParseUint(raw, 10, 64); err == nil {
			return Uint(u), nil
		}
	}
	f, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return nil, fmt.Errorf("invalid JSON number %q", raw)
	}
	return Float(f), nil
}

// MarshalJSON emits compact JSON with object entries in insertion order.
func (v *Value) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	if err := v.appendJSON(&buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func (v *Value) appendJSON(buf *bytes.Buffer) error {
	switch v.kind {
	case KindNull:
		buf.WriteString("null")
	case KindBool:
		buf.WriteString(strconv.FormatBool(v.boolVal))
	case KindInt:
		b := buf.AvailableBuffer()
		buf.Write(strconv.AppendInt(b, v.intVal, 10))
	case KindUint:
		b := buf.AvailableBuffer()
		buf.Write(strconv.AppendUint(b, v.uintVal, 10))
	case KindFloat:
		b := buf.AvailableBuffer()
		buf.Write(strconv.AppendFloat(b, v.floatVal, 'g', -1, 64))
	case KindString:
		quoted, err := api.Marshal(v.strVal)
		if err != nil {
			return err
		}
		buf.Write(quoted)
	case KindArray:
		buf.WriteByte('[')
		for i, item := range v.arrVal {
			if i > 0 {
				buf.WriteByte(',')
			}
			if err := item.appendJSON(buf); err != nil {
				return err
			}
		}
		buf.WriteByte(']')
	case KindObject:
		buf.WriteByte('{')
		for i, e := range v.objVal {
			if i > 0 {
				buf.WriteByte(',')
			}
			key, err := api.Marshal(e.Key)
			if err != nil {
				return err
			}
			buf.Write(key)
			buf.WriteByte(':')
			if err := e.Value.appendJSON(buf); err != nil {
				return err
			}
		}
		buf.WriteByte('}')
	default:
		return fmt.Errorf("unknown value kind %d", v.kind)
	}
	return nil
}

// ToJSON renders a Value as JSON text. When pretty is set the output is
// indented with two spaces.
func ToJSON(v *Value, pretty bool) (string, error) {
	compact, err := v.MarshalJSON()
	if err != nil {
		return "", err
	}
	if !pretty {
		return string(compact), nil
	}
	// sonic has no standalone re-indenter for pre-rendered bytes.
	var buf bytes.Buffer
	if err := stdjson.Indent(&buf, compact, "", "  "); err != nil {
		return "", err
	}
	return buf.String(), nil
}
