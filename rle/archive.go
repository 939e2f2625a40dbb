package rle

import (
	"io"

	"github.com/klauspost/compress/gzip"
)

// CompressArchive run-length encodes everything readable from input using the
// given variant, then gzips the result to output. RLE alone already collapses
// the dead space that dominates legacy game assets; the gzip layer mops up
// what's left, and the combination keeps fixture files in this repository
// tiny.
//
// The returned int64 is the number of RLE bytes fed into the gzip layer, not
// the on-disk size. If an error occurred the value is undefined.
func CompressArchive(v Variant, input io.Reader, output io.Writer) (int64, error) {
	raw, err := io.ReadAll(input)
	if err != nil {
		return 0, err
	}

	packed := make([]byte, Compress(v, raw, nil))
	Compress(v, raw, packed)

	// The assets aren't big enough for the highest level to cost noticeable
	// time, so always take the better ratio.
	gzWriter, err := gzip.NewWriterLevel(output, gzip.BestCompression)
	if err != nil {
		return 0, err
	}

	n, err := gzWriter.Write(packed)
	if err != nil {
		gzWriter.Close()
		return int64(n), err
	}
	return int64(n), gzWriter.Close()
}

// DecompressArchive expands a gzipped, RLE-encoded archive back to the
// original raw bytes and writes them to output. The returned int64 is the
// number of bytes written, i.e. the decoded size.
func DecompressArchive(v Variant, input io.Reader, output io.Writer) (int64, error) {
	data, err := DecompressArchiveToBytes(v, input)
	if err != nil {
		return 0, err
	}
	if len(data) == 0 {
		// Zero-length writes trip full-buffer checks in fixed-capacity
		// writers, and an empty archive has nothing to say anyway.
		return 0, nil
	}
	n, err := output.Write(data)
	return int64(n), err
}

// DecompressArchiveToBytes works like [DecompressArchive] but returns the
// decoded data in a new byte slice instead of writing to an io.Writer.
func DecompressArchiveToBytes(v Variant, input io.Reader) ([]byte, error) {
	gzReader, err := gzip.NewReader(input)
	if err != nil {
		return nil, err
	}
	defer gzReader.Close()

	packed, err := io.ReadAll(gzReader)
	if err != nil {
		return nil, err
	}

	size, err := Decompress(v, packed, nil)
	if err != nil {
		return nil, err
	}
	raw := make([]byte, size)
	if _, err := Decompress(v, packed, raw); err != nil {
		return nil, err
	}
	return raw, nil
}
