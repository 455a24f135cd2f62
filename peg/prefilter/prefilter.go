// Package prefilter provides a fast-reject accelerator for patterns whose
// top level is an ordered choice of literal alternatives, modeled on
// coregx/coregex's prefilter package: a Set built once from the literal
// alternatives lets a caller skip straight past any input position where
// none of them could possibly start a match, without altering what the
// slow path (the VM) would have matched.
package prefilter

import (
	"github.com/coregx/ahocorasick"
)

// Set tests whether any of a fixed collection of literal byte strings
// could start a match at or after a given position.
type Set struct {
	automaton *ahocorasick.Automaton
}

// New builds a Set from literals. It returns ok == false if literals is
// empty or the underlying automaton fails to build, in which case the
// caller should skip the prefilter and run the slow path unconditionally.
func New(literals [][]byte) (set *Set, ok bool) {
	if len(literals) == 0 {
		return nil, false
	}
	builder := ahocorasick.NewBuilder()
	for _, lit := range literals {
		builder.AddPattern(lit)
	}
	auto, err := builder.Build()
	if err != nil {
		return nil, false
	}
	return &Set{automaton: auto}, true
}

// Find returns the offset of the next position at or after start where one
// of the literal alternatives begins, or -1 if none occurs in haystack at
// or after start.
func (s *Set) Find(haystack []byte, start int) int {
	m := s.automaton.Find(haystack, start)
	if m == nil {
		return -1
	}
	return m.Start
}

// IsMatch reports whether any literal alternative occurs anywhere in
// haystack.
func (s *Set) IsMatch(haystack []byte) bool {
	return s.automaton.IsMatch(haystack)
}
