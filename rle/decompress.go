package rle

import (
	"fmt"
	"io"

	"github.com/dargueta/rlekit"
)

// Decompress expands a compressed stream with the given variant's rules and
// returns the total size of the decoded output. dest follows the same
// capacity contract as [Compress]: nil sizes the output, a short buffer is
// filled as far as it goes, and the return value always reflects the full
// decoded length. Capacity never limits parsing, only writes.
//
// Compressed input is untrusted. A control byte with no valid decoding
// yields [rlekit.ErrInvalidControlByte], and a stream that ends between a
// control byte and its payload yields [rlekit.ErrTruncatedStream] (which
// also matches io.ErrUnexpectedEOF). Either way the returned count covers
// everything decoded before the violation.
func Decompress(v Variant, src []byte, dest []byte) (int, error) {
	w := capWriter{dest: dest}

	rp := 0
	for rp < len(src) {
		here := rp
		control := src[rp]
		rp++

		op := v.DecodeByte(control)
		switch op.Kind {
		case OpRepeat:
			if rp >= len(src) {
				return w.n, rlekit.ErrTruncatedStream.Wrap(io.ErrUnexpectedEOF).WithMessage(
					fmt.Sprintf("repeat control byte at offset %d has no payload", here))
			}
			w.putRepeat(src[rp], int(op.Count))
			rp++

		case OpCopy:
			count := int(op.Count)
			if rp+count > len(src) {
				return w.n, rlekit.ErrTruncatedStream.Wrap(io.ErrUnexpectedEOF).WithMessage(
					fmt.Sprintf(
						"copy at offset %d needs %d payload bytes, %d left",
						here, count, len(src)-rp))
			}
			w.put(src[rp : rp+count])
			rp += count

		case OpLiteral:
			w.putByte(control)

		case OpNoOp:
			// Filler byte; emits nothing and has no payload.

		default:
			return w.n, rlekit.ErrInvalidControlByte.WithMessage(
				fmt.Sprintf("0x%02x at offset %d in %s stream", control, here, v.Name()))
		}
	}
	return w.n, nil
}
