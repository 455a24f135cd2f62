package vm

import (
	"unicode/utf8"

	"github.com/nsf/libzbs/peg/runeset"
)

// decodeRune reads one rune from the front of b, returning utf8.RuneError
// and a width of 1 for invalid encodings so a stuck decoder still makes
// forward progress rather than looping.
func decodeRune(b []byte) (rune, int) {
	r, size := utf8.DecodeRune(b)
	if size == 0 {
		size = 1
	}
	return r, size
}

// setMatcherFromOp rebuilds the runeset.Matcher a SET instruction encodes:
// the union of its ASCII bitmap and its sorted non-ASCII rune list.
func setMatcherFromOp(op Op) runeset.Matcher {
	ascii := runeset.AsciiFromBitmap(op.AsciiBitmap)
	if len(op.Runes) == 0 {
		return ascii
	}
	return runeset.Or(ascii, runeset.NewSorted(op.Runes...))
}
