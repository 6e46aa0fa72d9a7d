package codec

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestCodecs_RoundTrip(t *testing.T) {
	// Repetitive content so the compressing codecs actually shrink it.
	data := []byte(strings.Repeat("the quick brown fox jumps over the lazy dog\n", 100))

	for _, c := range []Codec{Identity{}, Zstd{}, LZ4{}, Gzip{}} {
		t.Run(c.Name(), func(t *testing.T) {
			encoded, err := c.Encode(data)
			require.NoError(t, err)

			decoded, err := c.Decode(encoded)
			require.NoError(t, err)
			require.Equal(t, data, decoded)

			if c.Name() != "identity" {
				require.Less(t, len(encoded), len(data))
			}
		})
	}
}

func TestCodecs_EmptyInput(t *testing.T) {
	for _, c := range []Codec{Identity{}, Zstd{}, LZ4{}, Gzip{}} {
		t.Run(c.Name(), func(t *testing.T) {
			encoded, err := c.Encode(nil)
			require.NoError(t, err)

			decoded, err := c.Decode(encoded)
			require.NoError(t, err)
			require.Empty(t, decoded)
		})
	}
}

func TestByName(t *testing.T) {
	for _, name := range []string{"identity", "zstd", "lz4", "gzip"} {
		c, ok := ByName(name)
		require.True(t, ok)
		require.Equal(t, name, c.Name())
	}

	_, ok := ByName("snappy")
	require.False(t, ok)
}

func TestDecode_Garbage(t *testing.T) {
	for _, c := range []Codec{Zstd{}, Gzip{}} {
		t.Run(c.Name(), func(t *testing.T) {
			// MustEncode output must decode; arbitrary bytes must not.
			decoded, err := c.Decode(MustEncode(c, []byte("ok")))
			require.NoError(t, err)
			require.Equal(t, []byte("ok"), decoded)

			_, err = c.Decode([]byte("definitely not a compressed frame"))
			require.Error(t, err)
		})
	}
}

func TestMustEncode_NilCodecUsesDefault(t *testing.T) {
	require.Equal(t, []byte("plain"), MustEncode(nil, []byte("plain")))
}
