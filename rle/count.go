package rle

// CountRepeat counts the run of identical bytes at the start of src, capped
// at max. The count is inclusive: any non-empty input has a run of at least
// one. It never reads past the end of src.
//
//	""   -> 0
//	"A"  -> 1
//	"AA" -> 2
//	"AB" -> 1
func CountRepeat(src []byte, max int) int {
	if len(src) == 0 || max <= 0 {
		return 0
	}
	cnt := 1
	for cnt < len(src) && cnt < max && src[cnt-1] == src[cnt] {
		cnt++
	}
	return cnt
}

// CountCopy counts the bytes at the start of src that are better emitted as
// literals, i.e. everything up to the start of the next run of two or more
// identical bytes, capped at max. A lone byte at the end of the buffer is
// copy-worthy, so the count runs all the way out when no run intervenes.
//
//	"A"   -> 1
//	"AA"  -> 0
//	"AB"  -> 2
//	"ABB" -> 1
func CountCopy(src []byte, max int) int {
	return countCopyBreak(src, max, 2)
}

// countCopyBreak is CountCopy generalized to a format's minimum repeat run
// length: counting stops only where a run of at least minRun begins, so
// shorter runs stay inside the copy. minRun of 2 gives CountCopy exactly.
func countCopyBreak(src []byte, max int, minRun int) int {
	cnt := 0
	for cnt < len(src) && cnt < max {
		run := 1
		for cnt+run < len(src) && run < minRun && src[cnt+run] == src[cnt] {
			run++
		}
		if run >= minRun {
			break
		}
		cnt++
	}
	return cnt
}
