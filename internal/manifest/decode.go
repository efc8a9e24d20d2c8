package manifest

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/shopspring/decimal"
)

var errInvalidJSON = errors.New("invalid JSON")

// Decode parses data as a single JSON document. Object keys keep the order
// they have in data. Invalid UTF-16 escapes decode to U+FFFD.
func Decode(data []byte) (Value, error) {
	if !json.Valid(data) {
		var discard any
		if err := json.Unmarshal(data, &discard); err != nil {
			return Value{}, err
		}
		return Value{}, errInvalidJSON
	}

	dec := json.NewDecoder(bytes.NewReader(data))
	dec.UseNumber()
	return decodeValue(dec)
}

func decodeValue(dec *json.Decoder) (Value, error) {
	tok, err := dec.Token()
	if err != nil {
		return Value{}, err
	}

	switch t := tok.(type) {
	case nil:
		return NullValue(), nil
	case bool:
		return BoolValue(t), nil
	case json.Number:
		d, err := decimal.NewFromString(t.String())
		if err != nil {
			return Value{}, fmt.Errorf("invalid number %q: %w", t, err)
		}
		return NumberValue(d), nil
	case string:
		return TextValue(t), nil
	case json.Delim:
		switch t {
		case '{':
			return decodeMapping(dec)
		case '[':
			return decodeSequence(dec)
		}
		return Value{}, fmt.Errorf("unexpected delimiter %q", t)
	default:
		return Value{}, fmt.Errorf("unexpected JSON token %T", tok)
	}
}

func decodeSequence(dec *json.Decoder) (Value, error) {
	items := []Value{}
	for dec.More() {
		item, err := decodeValue(dec)
		if err != nil {
			return Value{}, fmt.Errorf("item %d: %w", len(items), err)
		}
		items = append(items, item)
	}
	// closing ]
	if _, err := dec.Token(); err != nil {
		return Value{}, err
	}
	return SequenceValue(items), nil
}

func decodeMapping(dec *json.Decoder) (Value, error) {
	m := newMapping()
	for dec.More() {
		tok, err := dec.Token()
		if err != nil {
			return Value{}, err
		}
		key, ok := tok.(string)
		if !ok {
			return Value{}, fmt.Errorf("unexpected object key %v", tok)
		}

		v, err := decodeValue(dec)
		if err != nil {
			return Value{}, fmt.Errorf("field %q: %w", key, err)
		}
		m.set(key, v)
	}
	// closing }
	if _, err := dec.Token(); err != nil {
		return Value{}, err
	}
	return MappingValue(m), nil
}
