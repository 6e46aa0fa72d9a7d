package codec

import (
	"bytes"
	"io"

	"github.com/pierrec/lz4/v4"
)

// LZ4 compresses content with the LZ4 frame format.
type LZ4 struct{}

// Encode implements Codec.
func (LZ4) Encode(data []byte) ([]byte, error) {
	var buf bytes.Buffer
	w := lz4.NewWriter(&buf)
	if _, err := w.Write(data); err != nil {
		return nil, err
	}
	if err := w.Close(); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// Decode implements Codec.
func (LZ4) Decode(data []byte) ([]byte, error) {
	return io.ReadAll(lz4.NewReader(bytes.NewReader(data)))
}

// Name implements Codec.
func (LZ4) Name() string { return "lz4" }
