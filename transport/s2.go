package transport

import (
	"bytes"
	"io"

	"github.com/klauspost/compress/s2"
)

// s2Decompressor decompresses a whole image file written as a single S2
// stream (s2.NewWriter's framed format, not the bare s2.Encode block
// format used for per-payload compression).
type s2Decompressor struct{}

func (s2Decompressor) Decompress(data []byte) ([]byte, error) {
	r := s2.NewReader(bytes.NewReader(data))

	out, err := io.ReadAll(r)
	if err != nil {
		return nil, err
	}

	return out, nil
}
