package runeset

import (
	"bytes"
	"fmt"
	"sort"
)

func genericString(m Matcher) string {
	var buf bytes.Buffer
	buf.WriteByte('[')
	first := true
	m.ForEach(func(r rune) {
		if !first {
			buf.WriteByte(' ')
		}
		first = false
		if r >= 0x20 && r < 0x7f {
			fmt.Fprintf(&buf, "%q", r)
		} else {
			fmt.Fprintf(&buf, "U+%04X", r)
		}
	})
	buf.WriteByte(']')
	return buf.String()
}

// Split partitions m's members into the two halves a compiled SET
// instruction encodes: runes below 0x80 go into a 16-byte bitmap, the
// rest into an ascending slice.
func Split(m Matcher) (ascii [16]byte, sorted []rune) {
	var bits [4]uint32
	var nonAscii []rune
	m.ForEach(func(r rune) {
		if r >= 0 && r < 0x80 {
			index, mask := asciiIM(r)
			bits[index] |= mask
		} else {
			nonAscii = append(nonAscii, r)
		}
	})
	sort.Slice(nonAscii, func(i, j int) bool { return nonAscii[i] < nonAscii[j] })
	return (&Ascii{bits: bits}).Bitmap(), nonAscii
}
