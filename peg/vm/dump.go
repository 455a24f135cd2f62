package vm

import (
	"bytes"
	"fmt"
	"unicode"
)

// Disassemble renders a program's bytecode as human-readable assembly,
// in the style of go-peggy/peggyvm/program.go's Disassemble: a label line
// before any instruction some jump targets it, then one instruction per
// line. The exact formatting is not a stable interface — it exists for
// debugging and for cmd/pegdump, not for machine consumption.
func Disassemble(code []byte) (string, error) {
	labelNeeded := make(map[uint32]bool)
	for ip := uint32(0); int(ip) < len(code); {
		op, err := Decode(code, ip)
		if err != nil {
			return "", err
		}
		switch op.Code {
		case OpChoice, OpCommit, OpPartialCommit, OpRewindCommit:
			labelNeeded[op.Target] = true
		}
		ip += uint32(op.Len)
	}

	var buf bytes.Buffer
	for ip := uint32(0); int(ip) < len(code); {
		op, err := Decode(code, ip)
		if err != nil {
			return "", err
		}
		if labelNeeded[ip] {
			fmt.Fprintf(&buf, "L%d:\n", ip)
		}
		buf.WriteByte('\t')
		writeOp(&buf, op, ip)
		buf.WriteByte('\n')
		ip += uint32(op.Len)
	}
	return buf.String(), nil
}

func writeOp(buf *bytes.Buffer, op Op, ip uint32) {
	buf.WriteString(op.Code.String())
	switch op.Code {
	case OpString:
		fmt.Fprintf(buf, " %q", op.Str)

	case OpSet:
		buf.WriteString(" [")
		first := true
		writeRuneMember := func(r rune) {
			if !first {
				buf.WriteByte(' ')
			}
			first = false
			writeRuneLiteral(buf, r)
		}
		for i := 0; i < 0x80; i++ {
			byteIndex, mask := i/32, uint32(1)<<uint(i%32)
			word := uint32(op.AsciiBitmap[4*byteIndex]) | uint32(op.AsciiBitmap[4*byteIndex+1])<<8 |
				uint32(op.AsciiBitmap[4*byteIndex+2])<<16 | uint32(op.AsciiBitmap[4*byteIndex+3])<<24
			if word&mask != 0 {
				writeRuneMember(rune(i))
			}
		}
		for _, r := range op.Runes {
			writeRuneMember(r)
		}
		buf.WriteByte(']')

	case OpRange:
		buf.WriteByte(' ')
		writeRuneLiteral(buf, op.From)
		buf.WriteByte('-')
		writeRuneLiteral(buf, op.To)

	case OpChoice, OpCommit, OpPartialCommit, OpRewindCommit:
		fmt.Fprintf(buf, " L%d", op.Target)

	case OpOpenCapture:
		buf.WriteByte(' ')
		buf.WriteString(op.Kind.String())
	}
}

func writeRuneLiteral(buf *bytes.Buffer, r rune) {
	switch r {
	case '\n':
		buf.WriteString(`'\n'`)
		return
	case '\t':
		buf.WriteString(`'\t'`)
		return
	case '\'':
		buf.WriteString(`'\''`)
		return
	}
	if unicode.IsPrint(r) {
		fmt.Fprintf(buf, "'%c'", r)
		return
	}
	fmt.Fprintf(buf, "U+%04X", r)
}
