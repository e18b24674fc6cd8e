package urlcodec

import (
	"errors"
	"fmt"
)

// ErrUnsupportedType is returned by [Codec.EncodeValue] and
// [Codec.DecodeValue] when given the zero [Value], which holds neither
// bytes nor text.
var ErrUnsupportedType = errors.New("value is neither bytes nor text")

type valueKind int

const (
	valueNone valueKind = iota
	valueBytes
	valueText
)

// A Value holds either a byte sequence or a string, the two shapes the
// codec's polymorphic operations accept. Construct one with
// [BytesValue] or [TextValue]; the zero Value holds neither.
type Value struct {
	kind valueKind
	b    []byte
	s    string
}

// BytesValue returns a [Value] holding the byte sequence p.
func BytesValue(p []byte) Value {
	return Value{kind: valueBytes, b: p}
}

// TextValue returns a [Value] holding the string s.
func TextValue(s string) Value {
	return Value{kind: valueText, s: s}
}

// Bytes returns the byte sequence held by v, and whether v holds one.
func (v Value) Bytes() ([]byte, bool) {
	return v.b, v.kind == valueBytes
}

// Text returns the string held by v, and whether v holds one.
func (v Value) Text() (string, bool) {
	return v.s, v.kind == valueText
}

// EncodeValue encodes whichever shape v holds: a bytes Value yields a
// bytes Value, a text Value yields a text Value. The zero Value
// returns an error wrapping [ErrUnsupportedType].
func (c *Codec) EncodeValue(v Value) (Value, error) {
	switch v.kind {
	case valueBytes:
		return BytesValue(c.Encode(v.b)), nil
	case valueText:
		s, err := c.EncodeString(v.s)
		if err != nil {
			return Value{}, err
		}
		return TextValue(s), nil
	default:
		return Value{}, fmt.Errorf("urlcodec: cannot encode: %w", ErrUnsupportedType)
	}
}

// DecodeValue decodes whichever shape v holds, mirroring
// [Codec.EncodeValue].
func (c *Codec) DecodeValue(v Value) (Value, error) {
	switch v.kind {
	case valueBytes:
		b, err := c.Decode(v.b)
		if err != nil {
			return Value{}, err
		}
		return BytesValue(b), nil
	case valueText:
		s, err := c.DecodeString(v.s)
		if err != nil {
			return Value{}, err
		}
		return TextValue(s), nil
	default:
		return Value{}, fmt.Errorf("urlcodec: cannot decode: %w", ErrUnsupportedType)
	}
}
