package codec

import (
	"bytes"
	"io"

	"github.com/klauspost/compress/gzip"
)

// Gzip compresses content with gzip. Prefer Zstd for new data; gzip exists
// for interoperability with tooling that expects .gz payloads.
type Gzip struct{}

// Encode implements Codec.
func (Gzip) Encode(data []byte) ([]byte, error) {
	var buf bytes.Buffer
	w := gzip.NewWriter(&buf)
	if _, err := w.Write(data); err != nil {
		return nil, err
	}
	if err := w.Close(); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// Decode implements Codec.
func (Gzip) Decode(data []byte) ([]byte, error) {
	r, err := gzip.NewReader(bytes.NewReader(data))
	if err != nil {
		return nil, err
	}
	defer r.Close()
	return io.ReadAll(r)
}

// Name implements Codec.
func (Gzip) Name() string { return "gzip" }
