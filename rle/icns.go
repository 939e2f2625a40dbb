package rle

// icnsVariant is the QuickDraw-style packing found inside Apple icon
// container files.
//
// Control bytes 0x80 and above repeat the next byte count times where count
// is the byte minus 125, giving runs of 3-130; bytes below 0x80 copy byte+1
// literals (1-128). With a minimum repeat of three, runs of one or two bytes
// have to be folded into the surrounding copy.
type icnsVariant struct{}

func (icnsVariant) Name() string { return "icns" }

func (icnsVariant) DecodeByte(b byte) Op {
	if b >= 0x80 {
		return Op{Kind: OpRepeat, Count: b - 125}
	}
	return Op{Kind: OpCopy, Count: b + 1}
}

func (icnsVariant) EncodeOp(op Op) (byte, bool) {
	switch op.Kind {
	case OpRepeat:
		if op.Count >= 3 && op.Count <= 130 {
			return op.Count + 125, true
		}
	case OpCopy:
		if op.Count >= 1 && op.Count <= 128 {
			return op.Count - 1, true
		}
	}
	return 0, false
}

func (icnsVariant) CountRange(kind OpKind) (CountRange, bool) {
	switch kind {
	case OpRepeat:
		return CountRange{Min: 3, Max: 130}, true
	case OpCopy:
		return CountRange{Min: 1, Max: 128}, true
	}
	return CountRange{}, false
}

func (icnsVariant) layout() codecLayout {
	return codecLayout{
		minRepeat: 3,
		maxRepeat: 130,
		maxCopy:   128,
	}
}
