package util

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestToBytes_NilInput(t *testing.T) {
	out, err := ToBytes(nil, "")
	require.NoError(t, err)
	require.Empty(t, out)

	// Nil with the hex format tag behaves the same.
	out, err = ToBytes(nil, FormatHex)
	require.NoError(t, err)
	require.Empty(t, out)
}

func TestToBytes_StringUTF8(t *testing.T) {
	out, err := ToBytes("hello", "")
	require.NoError(t, err)
	require.Equal(t, []byte("hello"), out)

	// An unrecognized format tag means UTF-8, not an error.
	out, err = ToBytes("hello", "base64")
	require.NoError(t, err)
	require.Equal(t, []byte("hello"), out)

	// Non-ASCII text round-trips as raw UTF-8 bytes.
	out, err = ToBytes("héllo", "")
	require.NoError(t, err)
	require.Equal(t, []byte("héllo"), out)
}

func TestToBytes_StringHex(t *testing.T) {
	out, err := ToBytes("deadBEEF", FormatHex)
	require.NoError(t, err)
	require.Equal(t, []byte{0xde, 0xad, 0xbe, 0xef}, out)

	out, err = ToBytes("", FormatHex)
	require.NoError(t, err)
	require.Empty(t, out)
}

func TestToBytes_MalformedHex(t *testing.T) {
	t.Run("odd length", func(t *testing.T) {
		_, err := ToBytes("abc", FormatHex)
		require.ErrorIs(t, err, ErrMalformedHex)
	})

	t.Run("non-hex characters", func(t *testing.T) {
		_, err := ToBytes("zzzz", FormatHex)
		require.ErrorIs(t, err, ErrMalformedHex)
	})

	t.Run("0x prefix is rejected", func(t *testing.T) {
		_, err := ToBytes("0xdead", FormatHex)
		require.ErrorIs(t, err, ErrMalformedHex)
	})
}

func TestToBytes_ByteSlicePassthrough(t *testing.T) {
	in := []byte{1, 2, 3}
	out, err := ToBytes(in, "")
	require.NoError(t, err)
	require.Equal(t, in, out)

	// The slice is handed back without copying; the hex tag is ignored for
	// non-string inputs.
	out, err = ToBytes(in, FormatHex)
	require.NoError(t, err)
	require.Equal(t, in, out)
}

func TestToBytes_ByteArrayCopied(t *testing.T) {
	arr := [4]byte{0xca, 0xfe, 0xba, 0xbe}
	out, err := ToBytes(arr, "")
	require.NoError(t, err)
	require.Equal(t, []byte{0xca, 0xfe, 0xba, 0xbe}, out)

	// Mutating the returned slice must not touch the array.
	out[0] = 0
	require.Equal(t, byte(0xca), arr[0])
}

func TestToBytes_UnsupportedTypes(t *testing.T) {
	for _, v := range []any{42, 3.14, true, []int{1, 2}, map[string]string{}, struct{}{}} {
		_, err := ToBytes(v, "")
		require.ErrorIs(t, err, ErrUnsupportedType, "input %T", v)
	}
}
