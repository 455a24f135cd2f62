package peg

import "github.com/nsf/libzbs/peg/prefilter"

// literalAlternatives walks a left-leaning tree of Choice nodes over Str
// leaves (e.g. Str("if").Or(Str("else")).Or(Str("while"))) and returns its
// literals in left-to-right order, or ok == false if p isn't shaped that
// way. This is the only AST shape this module recognizes for prefilter
// acceleration; anything else runs the VM directly.
func literalAlternatives(p Pattern) (literals [][]byte, ok bool) {
	switch p.kind {
	case kindStr:
		return [][]byte{p.str}, true
	case kindChoice:
		left, leftOK := literalAlternatives(*p.left)
		right, rightOK := literalAlternatives(*p.right)
		if !leftOK || !rightOK {
			return nil, false
		}
		return append(left, right...), true
	default:
		return nil, false
	}
}

// buildPrefilter attempts to attach a literal-alternation prefilter to a
// compiled program, per the top-level pattern's shape. It never changes
// what the program matches; it only gives Program.Match a fast reject.
func buildPrefilter(p Pattern) *prefilter.Set {
	literals, ok := literalAlternatives(p)
	if !ok || len(literals) < 2 {
		return nil
	}
	set, ok := prefilter.New(literals)
	if !ok {
		return nil
	}
	return set
}
