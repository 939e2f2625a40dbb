// Package suite runs fixture-driven conformance checks against the codec
// entry points.
//
// A suite file is a CSV of cases, each naming a variant, an action, an input,
// and the expected output size and CRC-32C. For every case the runner does
// the full battery: a length-determination pass, a run into an oversized
// buffer, a run into a byte-tight buffer (the two must agree byte for byte),
// a checksum comparison, and a round trip back to the original input. The
// battery matches how the legacy formats were originally validated, so a
// suite file doubles as executable format documentation.
package suite

import (
	"fmt"
	"hash/crc32"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/dargueta/rlekit"
	"github.com/dargueta/rlekit/rle"
	"github.com/gocarina/gocsv"
	"github.com/hashicorp/go-multierror"
)

// Case is one conformance fixture.
type Case struct {
	// Variant names the rule set under test, e.g. "goldbox".
	Variant string `csv:"variant"`
	// Action is "c" for compress or "d" for decompress. A trailing "-"
	// suppresses the round-trip leg, for inputs that aren't canonically
	// compressed (a decoder must accept them, but a re-encode won't
	// reproduce them).
	Action string `csv:"action"`
	// Input is an escape string per [ExpandEscapes], or "@path" to load a
	// raw binary file relative to the suite file.
	Input string `csv:"input"`
	// ExpectedSize is the exact output size in bytes.
	ExpectedSize uint `csv:"expected_size"`
	// ExpectedHash is the CRC-32C of the output, in hex.
	ExpectedHash string `csv:"expected_crc32c"`
}

var castagnoli = crc32.MakeTable(crc32.Castagnoli)

// Load reads suite cases from CSV.
func Load(r io.Reader) ([]Case, error) {
	var cases []Case
	if err := gocsv.Unmarshal(r, &cases); err != nil {
		return nil, rlekit.ErrBadFixture.Wrap(err)
	}
	return cases, nil
}

// LoadFile reads suite cases from a CSV file.
func LoadFile(path string) ([]Case, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return Load(f)
}

// Data decodes the case input into raw bytes.
func (c *Case) Data() ([]byte, error) {
	if strings.HasPrefix(c.Input, "@") {
		data, err := os.ReadFile(c.Input[1:])
		if err != nil {
			return nil, rlekit.ErrBadFixture.Wrap(err)
		}
		return data, nil
	}
	return ExpandEscapes(c.Input)
}

// hash parses the expected checksum field.
func (c *Case) hash() (uint32, error) {
	raw := strings.TrimPrefix(strings.ToLower(c.ExpectedHash), "0x")
	value, err := strconv.ParseUint(raw, 16, 32)
	if err != nil {
		return 0, rlekit.ErrBadFixture.Wrap(err).WithMessage(
			fmt.Sprintf("bad checksum %q", c.ExpectedHash))
	}
	return uint32(value), nil
}

// Run executes the full check battery for one case. All failed checks are
// reported together; a nil return means the case passed.
func (c *Case) Run() error {
	v, ok := rle.Lookup(c.Variant)
	if !ok {
		return rlekit.ErrUnknownVariant.WithMessage(c.Variant)
	}

	input, err := c.Data()
	if err != nil {
		return err
	}
	expectedHash, err := c.hash()
	if err != nil {
		return err
	}

	var forward, inverse func(src, dest []byte) (int, error)
	compress := func(src, dest []byte) (int, error) {
		return rle.Compress(v, src, dest), nil
	}
	decompress := func(src, dest []byte) (int, error) {
		return rle.Decompress(v, src, dest)
	}

	switch {
	case strings.HasPrefix(c.Action, "c"):
		forward, inverse = compress, decompress
	case strings.HasPrefix(c.Action, "d"):
		forward, inverse = decompress, compress
	default:
		return rlekit.ErrBadFixture.WithMessage(fmt.Sprintf("unknown action %q", c.Action))
	}

	var result *multierror.Error
	fail := func(format string, args ...interface{}) {
		result = multierror.Append(
			result, rlekit.ErrCheckFailed.WithMessage(fmt.Sprintf(format, args...)))
	}

	// Length-determination pass first; everything downstream sizes off it.
	probed, err := forward(input, nil)
	if err != nil {
		return rlekit.ErrCheckFailed.Wrap(err)
	}
	if uint(probed) != c.ExpectedSize {
		fail("expected output size %d, got %d", c.ExpectedSize, probed)
	}

	oversized := make([]byte, probed*4+64)
	n, err := forward(input, oversized)
	if err != nil {
		return multierror.Append(result, rlekit.ErrCheckFailed.Wrap(err)).ErrorOrNil()
	}
	if n != probed {
		fail("oversized-buffer output length %d differs from determined %d", n, probed)
	}

	tight := make([]byte, probed)
	n, err = forward(input, tight)
	if err != nil {
		return multierror.Append(result, rlekit.ErrCheckFailed.Wrap(err)).ErrorOrNil()
	}
	if n != probed {
		fail("tight-buffer output length %d differs from determined %d", n, probed)
	}

	if crc32.Checksum(tight, castagnoli) != expectedHash {
		fail("expected checksum 0x%08x, got 0x%08x", expectedHash, crc32.Checksum(tight, castagnoli))
	}
	if crc32.Checksum(oversized[:probed], castagnoli) != crc32.Checksum(tight, castagnoli) {
		fail("tight and oversized outputs differ")
	}

	if !strings.Contains(c.Action, "-") {
		restored := make([]byte, len(input))
		n, err = inverse(tight, restored)
		if err != nil {
			fail("round trip failed: %s", err.Error())
		} else if n != len(input) {
			fail("round trip size %d, want %d", n, len(input))
		} else if crc32.Checksum(restored, castagnoli) != crc32.Checksum(input, castagnoli) {
			fail("round trip does not reproduce the input")
		}
	}

	return result.ErrorOrNil()
}

// RunAll runs every case, tagging failures with their position in the suite.
func RunAll(cases []Case) error {
	var result *multierror.Error
	for i, c := range cases {
		if err := c.Run(); err != nil {
			result = multierror.Append(result, fmt.Errorf(
				"case %d (%s %s %q): %w", i+1, c.Variant, c.Action, c.Input, err))
		}
	}
	return result.ErrorOrNil()
}
