package rle

import "fmt"

// capWriter implements the destination-buffer contract shared by every entry
// point: each byte is written only when its offset fits inside dest, but the
// running total keeps counting as if the buffer were unbounded. A nil (or
// empty) dest therefore turns any call into a pure length-determination pass,
// and a caller can detect truncation by comparing the returned total against
// the capacity it supplied.
type capWriter struct {
	dest []byte
	n    int
}

func (w *capWriter) putByte(b byte) {
	if w.n < len(w.dest) {
		w.dest[w.n] = b
	}
	w.n++
}

func (w *capWriter) put(p []byte) {
	if w.n < len(w.dest) {
		copy(w.dest[w.n:], p)
	}
	w.n += len(p)
}

func (w *capWriter) putRepeat(b byte, count int) {
	for i := 0; i < count && w.n+i < len(w.dest); i++ {
		w.dest[w.n+i] = b
	}
	w.n += count
}

// Compress run-length encodes src with the given variant's rules and returns
// the total size of the encoded stream. Output lands in dest under the
// capacity contract described on [capWriter]: pass nil to size the output,
// pass a buffer to fill it, compare the result against len(dest) to detect
// truncation.
//
// Compression cannot fail. Every source byte is consumed by exactly one
// operation, and the run counters are bounded by the variant's declared
// ranges so the encoder never constructs an unrepresentable operation.
func Compress(v Variant, src []byte, dest []byte) int {
	lay := v.layout()
	w := capWriter{dest: dest}

	rp := 0
	for rp < len(src) {
		start := rp
		run := CountRepeat(src[rp:], lay.maxRepeat)

		switch {
		case lay.literalOnly:
			value := src[rp]
			if run == 1 && value <= lay.maxBareLiteral {
				w.putByte(value)
				rp++
			} else {
				// Repeats, and single bytes that collide with the repeat
				// prefix, both travel as a repeat token.
				w.putByte(mustEncode(v, Op{Kind: OpRepeat, Count: uint8(run)}))
				w.putByte(value)
				rp += run
			}

		case run >= lay.minRepeat || (lay.repeatAtTail && rp+run == len(src)):
			w.putByte(mustEncode(v, Op{Kind: OpRepeat, Count: uint8(run)}))
			w.putByte(src[rp])
			rp += run

		default:
			count := countCopyBreak(src[rp:], lay.maxCopy, lay.minRepeat)
			if lay.repeatAtTail && rp+count == len(src) {
				// The stream has to close with a repeat token, so the copy
				// stops one byte short and the next iteration emits the
				// trailing byte as a repeat of one.
				count--
			}
			w.putByte(mustEncode(v, Op{Kind: OpCopy, Count: uint8(count)}))
			w.put(src[rp : rp+count])
			rp += count
		}

		if rp <= start {
			panic(fmt.Sprintf(
				"rle: %s compressor stalled at offset %d of %d",
				v.Name(), start, len(src)))
		}
	}
	return w.n
}

// mustEncode serializes an operation the compressor built itself. The run
// counters are capped to the variant's ranges, so a failure here is a bug in
// the rule set, not bad input.
func mustEncode(v Variant, op Op) byte {
	b, ok := v.EncodeOp(op)
	if !ok {
		panic(fmt.Sprintf(
			"rle: %s cannot encode %s with count %d", v.Name(), op.Kind, op.Count))
	}
	return b
}
