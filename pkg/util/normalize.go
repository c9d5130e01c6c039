package util

import (
	"encoding/hex"
	"reflect"

	"github.com/pkg/errors"
)

// FormatHex tells ToBytes to decode a string input as base-16 digit pairs
// instead of treating it as UTF-8 text.
const FormatHex = "hex"

var (
	// ErrMalformedHex is returned when a hex string has odd length or
	// contains a non-hex character.
	ErrMalformedHex = errors.New("malformed hex string")

	// ErrUnsupportedType is returned when the input is not a string, a byte
	// slice, or a byte array.
	ErrUnsupportedType = errors.New("unsupported input type: want string, []byte, or byte array")
)

// ToBytes converts a heterogeneous input value into a canonical byte slice.
//
// A nil input yields an empty slice. Strings are decoded as hex when format
// is FormatHex, otherwise encoded as UTF-8. Byte slices are returned as-is
// without copying; fixed-size byte arrays are copied into a fresh slice.
// The input value is never mutated.
func ToBytes(v any, format string) ([]byte, error) {
	if v == nil {
		return []byte{}, nil
	}

	switch val := v.(type) {
	case string:
		if format == FormatHex {
			decoded, err := hex.DecodeString(val)
			if err != nil {
				return nil, errors.Wrapf(ErrMalformedHex, "decoding %q: %v", val, err)
			}
			return decoded, nil
		}
		return []byte(val), nil
	case []byte:
		return val, nil
	}

	// Fixed-size byte arrays ([32]byte and friends) can't be matched by a
	// type switch, so fall back to kind inspection and copy them out.
	rv := reflect.ValueOf(v)
	if rv.Kind() == reflect.Array && rv.Type().Elem().Kind() == reflect.Uint8 {
		out := make([]byte, rv.Len())
		reflect.Copy(reflect.ValueOf(out), rv)
		return out, nil
	}

	return nil, errors.Wrapf(ErrUnsupportedType, "got %T", v)
}
