package rle

// goldboxVariant reproduces the RLE used by SSI's Gold Box adventure games.
//
// A control byte of 0x81 or above is a repeat whose count is the byte's
// two's-complement negation (0xFF -> 1, 0x81 -> 127); 0x7D or below is a
// copy of byte+1 literals (1-126). The three bytes in between, 0x7E-0x80,
// mean nothing. The shipped decoders also require the last token of a stream
// to be a repeat, so the compressor closes with one even for a lone trailing
// byte; accepting longer copy runs or a trailing copy breaks compatibility
// with Pool of Radiance.
type goldboxVariant struct{}

func (goldboxVariant) Name() string { return "goldbox" }

func (goldboxVariant) DecodeByte(b byte) Op {
	switch {
	case b > 0x80:
		return Op{Kind: OpRepeat, Count: ^b + 1}
	case b < 0x7e:
		return Op{Kind: OpCopy, Count: b + 1}
	}
	return InvalidOp
}

func (goldboxVariant) EncodeOp(op Op) (byte, bool) {
	switch op.Kind {
	case OpRepeat:
		if op.Count >= 1 && op.Count <= 127 {
			return ^op.Count + 1, true
		}
	case OpCopy:
		if op.Count >= 1 && op.Count <= 126 {
			return op.Count - 1, true
		}
	}
	return 0, false
}

func (goldboxVariant) CountRange(kind OpKind) (CountRange, bool) {
	switch kind {
	case OpRepeat:
		return CountRange{Min: 1, Max: 127}, true
	case OpCopy:
		return CountRange{Min: 1, Max: 126}, true
	}
	return CountRange{}, false
}

func (goldboxVariant) layout() codecLayout {
	return codecLayout{
		minRepeat:    2,
		maxRepeat:    127,
		maxCopy:      126,
		repeatAtTail: true,
	}
}
