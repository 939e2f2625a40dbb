package rle

// packbitsVariant is the classic PackBits scheme from the Macintosh toolbox,
// also used by TIFF and ILBM.
//
// Reading the control byte as signed: -1 through -127 (0xFF-0x81) repeat the
// next byte 1-count times, i.e. runs of 2-128; 0 through 127 copy byte+1
// literals (1-128); and -128 (0x80) is a no-op filler some writers use for
// padding. Every control byte decodes to something.
type packbitsVariant struct{}

func (packbitsVariant) Name() string { return "packbits" }

func (packbitsVariant) DecodeByte(b byte) Op {
	switch {
	case b > 0x80:
		return Op{Kind: OpRepeat, Count: 1 - b}
	case b < 0x80:
		return Op{Kind: OpCopy, Count: b + 1}
	}
	return Op{Kind: OpNoOp, Count: 1}
}

func (packbitsVariant) EncodeOp(op Op) (byte, bool) {
	switch op.Kind {
	case OpRepeat:
		if op.Count >= 2 && op.Count <= 128 {
			return 1 - op.Count, true
		}
	case OpCopy:
		if op.Count >= 1 && op.Count <= 128 {
			return op.Count - 1, true
		}
	case OpNoOp:
		if op.Count == 1 {
			return 0x80, true
		}
	}
	return 0, false
}

func (packbitsVariant) CountRange(kind OpKind) (CountRange, bool) {
	switch kind {
	case OpRepeat:
		return CountRange{Min: 2, Max: 128}, true
	case OpCopy:
		return CountRange{Min: 1, Max: 128}, true
	}
	return CountRange{}, false
}

func (packbitsVariant) layout() codecLayout {
	return codecLayout{
		minRepeat: 2,
		maxRepeat: 128,
		maxCopy:   128,
	}
}
