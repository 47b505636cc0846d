package transport

import (
	"bytes"
	"io"

	"github.com/pierrec/lz4/v4"
)

// lz4Decompressor decompresses a whole image file compressed as a single
// LZ4 frame (the streaming format, not CompressBlock's bare block format
// used for per-payload compression).
type lz4Decompressor struct{}

func (lz4Decompressor) Decompress(data []byte) ([]byte, error) {
	r := lz4.NewReader(bytes.NewReader(data))

	out, err := io.ReadAll(r)
	if err != nil {
		return nil, err
	}

	return out, nil
}
