package testing

import (
	"bytes"
	"io"
	"testing"

	"github.com/dargueta/rlekit/rle"
	"github.com/stretchr/testify/require"
	"github.com/xaionaro-go/bytesextra"
)

// LoadAsset takes a gzipped, run-length encoded asset and returns a stream to
// access the expanded data.
//
//   - Writes to the stream do not affect `archiveBytes`.
//   - While the stream can be written to, its size is fixed to
//     `expectedSize`. Attempting to write past the end of this buffer will
//     trigger an error.
func LoadAsset(
	t *testing.T, archiveBytes []byte, variantName string, expectedSize uint,
) io.ReadWriteSeeker {
	require.Greater(t, len(archiveBytes), 0, "archived asset is empty")

	variant, ok := rle.Lookup(variantName)
	require.Truef(t, ok, "no such variant: %q", variantName)

	rawBytes, err := rle.DecompressArchiveToBytes(variant, bytes.NewBuffer(archiveBytes))
	require.NoError(t, err)

	require.Equal(
		t,
		expectedSize,
		uint(len(rawBytes)),
		"expanded asset is wrong size",
	)
	return bytesextra.NewReadWriteSeeker(rawBytes)
}
