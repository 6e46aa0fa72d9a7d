package codec

import (
	"github.com/klauspost/compress/zstd"
)

// Shared encoder/decoder in stateless mode. EncodeAll/DecodeAll are safe
// for concurrent use on a single instance.
var (
	zstdEncoder *zstd.Encoder
	zstdDecoder *zstd.Decoder
)

func init() {
	var err error
	zstdEncoder, err = zstd.NewWriter(nil)
	if err != nil {
		panic(err)
	}
	zstdDecoder, err = zstd.NewReader(nil)
	if err != nil {
		panic(err)
	}
}

// Zstd compresses content with Zstandard.
type Zstd struct{}

// Encode implements Codec.
func (Zstd) Encode(data []byte) ([]byte, error) {
	return zstdEncoder.EncodeAll(data, nil), nil
}

// Decode implements Codec.
func (Zstd) Decode(data []byte) ([]byte, error) {
	return zstdDecoder.DecodeAll(data, nil)
}

// Name implements Codec.
func (Zstd) Name() string { return "zstd" }
