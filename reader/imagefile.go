package reader

import (
	"io"
	"sync"

	"github.com/go-e57/e57reader/errs"
	"github.com/go-e57/e57reader/file"
	"github.com/go-e57/e57reader/transport"
)

// ImageFile owns the underlying file and the reader count every open
// Reader increments and decrements: the owning image file maintains a
// reader count so that close-while-reading is detectable, and the file
// itself may be shared with a concurrently open writer.
type ImageFile struct {
	mu       sync.Mutex
	path     string
	cursor   *file.Cursor
	readers  int
	isOpen   bool
}

// OpenImageFile opens an E57 image file backed by r, whose physical length
// is physicalLength, optionally decompressing the whole stream per enc
// before any logical/physical mapping runs (see the transport package).
func OpenImageFile(path string, r io.ReaderAt, physicalLength int64, enc transport.Encoding) (*ImageFile, error) {
	decoded, decodedLength, err := transport.Decompress(r, physicalLength, enc)
	if err != nil {
		return nil, wrapContext(err, path, "", "open image file: decompress")
	}

	return &ImageFile{
		path:   path,
		cursor: file.NewCursor(decoded, decodedLength),
		isOpen: true,
	}, nil
}

// Path returns the image file's path, as supplied to OpenImageFile.
func (imf *ImageFile) Path() string {
	return imf.path
}

// IsOpen reports whether the image file is still open.
func (imf *ImageFile) IsOpen() bool {
	imf.mu.Lock()
	defer imf.mu.Unlock()

	return imf.isOpen
}

// Close closes the image file. It fails with errs.ErrImageFileNotOpen if
// any Reader is still open on it.
func (imf *ImageFile) Close() error {
	imf.mu.Lock()
	defer imf.mu.Unlock()

	if !imf.isOpen {
		return wrapContext(errs.ErrImageFileNotOpen, imf.path, "", "close: already closed")
	}

	if imf.readers > 0 {
		return wrapContext(errs.ErrImageFileNotOpen, imf.path, "", "close: readers still open")
	}

	imf.isOpen = false

	return nil
}

func (imf *ImageFile) incrReaderCount() {
	imf.mu.Lock()
	defer imf.mu.Unlock()

	imf.readers++
}

// decrReaderCount decrements the reader count before the caller checks
// image-file-open status, mirroring CompressedVectorReaderImpl's
// close()/destructor ordering (see DESIGN.md).
func (imf *ImageFile) decrReaderCount() {
	imf.mu.Lock()
	defer imf.mu.Unlock()

	if imf.readers > 0 {
		imf.readers--
	}
}

func (imf *ImageFile) checkOpen() error {
	imf.mu.Lock()
	defer imf.mu.Unlock()

	if !imf.isOpen {
		return errs.ErrImageFileNotOpen
	}

	return nil
}
