package manifest

import (
	"bytes"
	"fmt"
	"strconv"

	"github.com/goccy/go-json"
	"github.com/shopspring/decimal"
)

// Kind identifies which JSON variant a Value holds.
type Kind int

const (
	KindNull Kind = iota
	KindBool
	KindNumber
	KindText
	KindSequence
	KindMapping
)

func (k Kind) String() string {
	switch k {
	case KindNull:
		return "null"
	case KindBool:
		return "bool"
	case KindNumber:
		return "number"
	case KindText:
		return "text"
	case KindSequence:
		return "sequence"
	case KindMapping:
		return "mapping"
	default:
		return fmt.Sprintf("kind(%d)", int(k))
	}
}

// Value is a decoded JSON value tagged with its Kind. The zero Value is null.
type Value struct {
	kind    Kind
	boolean bool
	number  decimal.Decimal
	text    string
	items   []Value
	mapping *Mapping
}

func NullValue() Value { return Value{kind: KindNull} }

func BoolValue(b bool) Value { return Value{kind: KindBool, boolean: b} }

func NumberValue(d decimal.Decimal) Value { return Value{kind: KindNumber, number: d} }

func TextValue(s string) Value { return Value{kind: KindText, text: s} }

func SequenceValue(items []Value) Value { return Value{kind: KindSequence, items: items} }

func MappingValue(m *Mapping) Value {
	if m == nil {
		m = newMapping()
	}
	return Value{kind: KindMapping, mapping: m}
}

// Kind returns the variant held by v.
func (v Value) Kind() Kind { return v.kind }

func (v Value) AsMapping() (*Mapping, bool) { return v.mapping, v.kind == KindMapping }

// String renders v in its natural textual form: text unquoted, numbers in
// canonical decimal notation, and sequences and mappings as compact JSON.
func (v Value) String() string {
	switch v.kind {
	case KindText:
		return v.text
	case KindNumber:
		return v.number.String()
	case KindBool:
		return strconv.FormatBool(v.boolean)
	case KindNull:
		return "null"
	}

	b, err := v.MarshalJSON()
	if err != nil {
		return fmt.Sprintf("<%s: %v>", v.kind, err)
	}
	return string(b)
}

// MarshalJSON encodes v as compact JSON, keeping mapping keys in document order.
func (v Value) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	if err := v.encode(&buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func (v Value) encode(buf *bytes.Buffer) error {
	switch v.kind {
	case KindNull:
		buf.WriteString("null")
	case KindBool:
		buf.WriteString(strconv.FormatBool(v.boolean))
	case KindNumber:
		buf.WriteString(v.number.String())
	case KindText:
		return writeQuoted(buf, v.text)
	case KindSequence:
		buf.WriteByte('[')
		for i, item := range v.items {
			if i > 0 {
				buf.WriteByte(',')
			}
			if err := item.encode(buf); err != nil {
				return err
			}
		}
		buf.WriteByte(']')
	case KindMapping:
		buf.WriteByte('{')
		first := true
		err := v.mapping.Each(func(key string, item Value) error {
			if !first {
				buf.WriteByte(',')
			}
			first = false
			if err := writeQuoted(buf, key); err != nil {
				return err
			}
			buf.WriteByte(':')
			return item.encode(buf)
		})
		if err != nil {
			return err
		}
		buf.WriteByte('}')
	default:
		return fmt.Errorf("cannot encode value of %s", v.kind)
	}
	return nil
}

// writeQuoted appends s as a JSON string. HTML characters are left as-is so
// shell operators such as && survive rendering.
func writeQuoted(buf *bytes.Buffer, s string) error {
	var tmp bytes.Buffer
	enc := json.NewEncoder(&tmp)
	enc.SetEscapeHTML(false)
	if err := enc.Encode(s); err != nil {
		return fmt.Errorf("failed to encode string: %w", err)
	}
	buf.Write(bytes.TrimSuffix(tmp.Bytes(), []byte("\n")))
	return nil
}
