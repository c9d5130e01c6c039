package util

import (
	"encoding/hex"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

func FuzzToBytesHex(f *testing.F) {
	f.Add("")
	f.Add("00")
	f.Add("deadbeef")
	f.Add("abc")
	f.Add("zz")
	f.Add("0xdead")

	f.Fuzz(func(t *testing.T, s string) {
		out, err := ToBytes(s, FormatHex)
		if err != nil {
			require.ErrorIs(t, err, ErrMalformedHex)
			return
		}

		// A successful decode implies even length and a faithful round-trip.
		require.Zero(t, len(s)%2)
		require.Equal(t, strings.ToLower(s), hex.EncodeToString(out))
	})
}

func FuzzToBytesUTF8(f *testing.F) {
	f.Add("")
	f.Add("hello")
	f.Add("héllo")
	f.Add("\x00\xff")

	f.Fuzz(func(t *testing.T, s string) {
		out, err := ToBytes(s, "")
		require.NoError(t, err)
		require.Equal(t, []byte(s), out)
	})
}
