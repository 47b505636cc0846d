//go:build nobuild

package transport

import "github.com/valyala/gozstd"

// zstdDecompressor is the cgo-backed alternative implementation, kept
// unbuilt by default behind the nobuild tag until a caller opts in.
type zstdDecompressor struct{}

func (zstdDecompressor) Decompress(data []byte) ([]byte, error) {
	if len(data) == 0 {
		return nil, nil
	}

	return gozstd.Decompress(nil, data)
}
