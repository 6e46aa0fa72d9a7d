// Package codec centralizes content encoding for file payloads.
//
// A codec transforms the bytes of a file between their in-memory text form
// and their on-disk form. Changing codecs is a breaking-change boundary:
// files written with one codec may no longer decode with another.
package codec

import "fmt"

// Codec encodes/decodes file contents.
// Implementations must be safe for concurrent use.
type Codec interface {
	Encode(data []byte) ([]byte, error)
	Decode(data []byte) ([]byte, error)
	Name() string
}

// Default is the codec used when none is configured.
var Default Codec = Identity{}

// ByName returns a built-in codec by its stable name.
func ByName(name string) (Codec, bool) {
	switch name {
	case "identity":
		return Identity{}, true
	case "zstd":
		return Zstd{}, true
	case "lz4":
		return LZ4{}, true
	case "gzip":
		return Gzip{}, true
	default:
		return nil, false
	}
}

// Identity passes content through unchanged.
type Identity struct{}

// Encode implements Codec.
func (Identity) Encode(data []byte) ([]byte, error) { return data, nil }

// Decode implements Codec.
func (Identity) Decode(data []byte) ([]byte, error) { return data, nil }

// Name implements Codec.
func (Identity) Name() string { return "identity" }

// MustEncode is a helper for internal tests/benchmarks.
func MustEncode(c Codec, data []byte) []byte {
	if c == nil {
		c = Default
	}
	b, err := c.Encode(data)
	if err != nil {
		panic(fmt.Errorf("codec %s encode failed: %w", c.Name(), err))
	}
	return b
}
