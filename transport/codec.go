package transport

import "fmt"

// Decompressor decompresses a whole-file payload. Unlike a typical
// Compressor/Decompressor split, transport only ever decodes: this module
// never writes E57 files.
type Decompressor interface {
	Decompress(data []byte) ([]byte, error)
}

// CreateDecompressor is a factory function that returns the Decompressor
// for enc.
func CreateDecompressor(enc Encoding) (Decompressor, error) {
	switch enc {
	case None:
		return noopDecompressor{}, nil
	case Zstd:
		return zstdDecompressor{}, nil
	case S2:
		return s2Decompressor{}, nil
	case LZ4:
		return lz4Decompressor{}, nil
	default:
		return nil, fmt.Errorf("transport: invalid encoding: %v", enc)
	}
}
