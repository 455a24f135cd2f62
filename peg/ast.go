// Package peg implements a parsing expression grammar engine: a combinator
// API for building patterns, a compiler that lowers them to the bytecode
// defined in peg/vm, and a facade for running compiled patterns against
// input and collecting captures.
package peg

import (
	"bytes"
	"errors"
	"fmt"
)

// assert panics if cond is false, in the style of
// go-peggy/peggyvm/util.go's assert helper. Builders use this for
// precondition violations: malformed input aborts construction rather
// than producing a Pattern with undefined behavior.
func assert(cond bool, format string, args ...interface{}) {
	if !cond {
		var buf bytes.Buffer
		buf.WriteString("peg: assertion failed: ")
		fmt.Fprintf(&buf, format, args...)
		panic(errors.New(buf.String()))
	}
}

// nodeKind identifies the shape of one Pattern node, mirroring
// original_source/src/zbs/peg.hh's ast_type enum.
type nodeKind int

const (
	kindStr nodeKind = iota
	kindSet
	kindRange
	kindAny
	kindTrue  // reserved, unreachable from any combinator; see DESIGN.md
	kindFalse // reserved, unreachable from any combinator; see DESIGN.md
	kindRepeat
	kindSeq
	kindChoice
	kindNot
	kindAnd
	kindCall // reserved, unreachable from any combinator; see DESIGN.md
	kindCapture
)

// captureKind distinguishes a plain byte-range capture from one that groups
// nested captures, matching peg/vm.CaptureKind.
type captureKind int

const (
	captureSimple captureKind = iota
	captureGroup
)

// Pattern is an immutable PEG expression tree. The zero Pattern is not
// valid; build one with Str, Byte, Set, Range, Any, Seq, or Choice and
// combine with its methods.
type Pattern struct {
	kind nodeKind

	// str holds Str/Byte's literal bytes. Set's members live in
	// setMembers instead.
	str []byte

	// left, right are the node's children. repetition, not, and,
	// capture use left only; sequence and choice use both.
	left, right *Pattern

	// n is repetition's count: n < 0 means "0 or 1" (Opt), n == 0 means
	// "0 or more" (Star), n == 1 means "1 or more" (Plus). Any positive
	// value means "exactly n, then 0 or more".
	n int

	// from, to hold range's inclusive bounds.
	from, to rune

	// setMembers holds Set's member runes, kept distinct from str so
	// Set("abc") and Str("abc") are visibly different node kinds.
	setMembers []rune

	capture captureKind
}

func leaf(kind nodeKind) Pattern { return Pattern{kind: kind} }

// Str matches s literally.
func Str(s string) Pattern {
	return Pattern{kind: kindStr, str: []byte(s)}
}

// Byte matches the single byte b literally.
func Byte(b byte) Pattern {
	return Pattern{kind: kindStr, str: []byte{b}}
}

// Set matches any single one of the given runes.
func Set(members ...rune) Pattern {
	return Pattern{kind: kindSet, setMembers: append([]rune(nil), members...)}
}

// Range matches any single rune r with from <= r <= to.
func Range(from, to rune) Pattern {
	assert(from < to, "Range requires from < to, got %d, %d", from, to)
	return Pattern{kind: kindRange, from: from, to: to}
}

// Any matches a single rune, failing only at end of input.
func Any() Pattern { return Pattern{kind: kindAny, n: 1} }

// AnyN matches exactly n arbitrary runes, failing if fewer than n remain.
// AnyN(0) always succeeds without consuming input.
func AnyN(n int) Pattern {
	assert(n >= 0, "AnyN requires n >= 0, got %d", n)
	return Pattern{kind: kindAny, n: n}
}

// Seq matches each pattern in order; it is a convenience wrapper around
// repeated Then calls.
func Seq(ps ...Pattern) Pattern {
	assert(len(ps) > 0, "Seq requires at least one pattern")
	out := ps[0]
	for _, p := range ps[1:] {
		out = out.Then(p)
	}
	return out
}

// Choice tries each pattern in order, committing to the first that
// matches; it is a convenience wrapper around repeated Or calls.
func Choice(ps ...Pattern) Pattern {
	assert(len(ps) > 0, "Choice requires at least one pattern")
	out := ps[0]
	for _, p := range ps[1:] {
		out = out.Or(p)
	}
	return out
}

func clonePattern(p Pattern) *Pattern {
	c := p
	return &c
}

// Then matches p followed by q.
func (p Pattern) Then(q Pattern) Pattern {
	return Pattern{kind: kindSeq, left: clonePattern(p), right: clonePattern(q)}
}

// Or tries p, and if p fails without consuming input beyond what it
// backtracks from, tries q (ordered choice).
func (p Pattern) Or(q Pattern) Pattern {
	return Pattern{kind: kindChoice, left: clonePattern(p), right: clonePattern(q)}
}

// Star matches p zero or more times.
func (p Pattern) Star() Pattern {
	return Pattern{kind: kindRepeat, left: clonePattern(p), n: 0}
}

// Plus matches p one or more times.
func (p Pattern) Plus() Pattern {
	return Pattern{kind: kindRepeat, left: clonePattern(p), n: 1}
}

// Opt matches p zero or one time.
func (p Pattern) Opt() Pattern {
	return Pattern{kind: kindRepeat, left: clonePattern(p), n: -1}
}

// Not is PEG's negative lookahead: it succeeds, consuming no input, if and
// only if p does not match here.
func (p Pattern) Not() Pattern {
	return Pattern{kind: kindNot, left: clonePattern(p)}
}

// And is PEG's positive lookahead: it succeeds, consuming no input, if and
// only if p matches here.
func (p Pattern) And() Pattern {
	return Pattern{kind: kindAnd, left: clonePattern(p)}
}

// Diff matches p only where q does not match, i.e. !q >> p.
func (p Pattern) Diff(q Pattern) Pattern {
	return q.Not().Then(p)
}

// Capture records the byte range p consumes as a simple (ungrouped)
// capture.
func (p Pattern) Capture() Pattern {
	return Pattern{kind: kindCapture, left: clonePattern(p), capture: captureSimple}
}

// CaptureGroup wraps any captures nested inside p between a group-open and
// group-close event. It does not itself capture the byte range p consumes.
func (p Pattern) CaptureGroup() Pattern {
	return Pattern{kind: kindCapture, left: clonePattern(p), capture: captureGroup}
}
