package peg

import (
	"fmt"
	"strconv"
	"strings"
)

// Dump renders p as an expression in the combinator API's own syntax,
// grounded on original_source/src/peg.cc's recursive_dump.
func Dump(p Pattern) string {
	switch p.kind {
	case kindStr:
		return fmt.Sprintf("Str(%s)", strconv.Quote(string(p.str)))
	case kindSet:
		members := make([]string, len(p.setMembers))
		for i, r := range p.setMembers {
			members[i] = strconv.QuoteRune(r)
		}
		return fmt.Sprintf("Set(%s)", strings.Join(members, ", "))
	case kindRange:
		return fmt.Sprintf("Range(%d, %d)", p.from, p.to)
	case kindAny:
		if p.n == 1 {
			return "Any()"
		}
		return fmt.Sprintf("AnyN(%d)", p.n)
	case kindTrue, kindFalse, kindCall:
		panic(ErrNotImplemented)
	case kindRepeat:
		switch {
		case p.n < 0:
			return fmt.Sprintf("%s.Opt()", Dump(*p.left))
		case p.n == 0:
			return fmt.Sprintf("%s.Star()", Dump(*p.left))
		case p.n == 1:
			return fmt.Sprintf("%s.Plus()", Dump(*p.left))
		default:
			return fmt.Sprintf("%s.Repeat(%d)", Dump(*p.left), p.n)
		}
	case kindSeq:
		return fmt.Sprintf("(%s.Then(%s))", Dump(*p.left), Dump(*p.right))
	case kindChoice:
		return fmt.Sprintf("(%s.Or(%s))", Dump(*p.left), Dump(*p.right))
	case kindNot:
		return fmt.Sprintf("%s.Not()", Dump(*p.left))
	case kindAnd:
		return fmt.Sprintf("%s.And()", Dump(*p.left))
	case kindCapture:
		if p.capture == captureGroup {
			return fmt.Sprintf("%s.CaptureGroup()", Dump(*p.left))
		}
		return fmt.Sprintf("%s.Capture()", Dump(*p.left))
	default:
		panic(ErrNotImplemented)
	}
}
