package transport

import (
	"bytes"
	"io"
)

// Decompress reads all physicalLength bytes from r and, if enc is not
// None, decompresses them, returning an in-memory io.ReaderAt over the
// result along with its length.
//
// When enc is None, r and physicalLength are returned unchanged and no
// bytes are read up front — the file cursor reads directly from the
// caller's reader, lazily.
func Decompress(r io.ReaderAt, physicalLength int64, enc Encoding) (io.ReaderAt, int64, error) {
	if enc == None {
		return r, physicalLength, nil
	}

	raw := make([]byte, physicalLength)
	if _, err := io.ReadFull(io.NewSectionReader(r, 0, physicalLength), raw); err != nil {
		return nil, 0, err
	}

	codec, err := CreateDecompressor(enc)
	if err != nil {
		return nil, 0, err
	}

	decoded, err := codec.Decompress(raw)
	if err != nil {
		return nil, 0, err
	}

	return bytes.NewReader(decoded), int64(len(decoded)), nil
}
