// Package runeset provides matchers over sets of Unicode code points.
//
// It plays the role that github.com/chronos-tachyon/go-peggy/byteset plays
// for a byte-oriented VM: a small algebra of set representations sharing one
// interface, so callers can build a set out of whatever combination of
// ranges, literals, and set operations is convenient and let Optimize pick a
// good concrete representation.
//
// Unlike byteset, the universe here (all Unicode scalar values) is not
// dense enough to represent with a fixed-size bitmap, so the ASCII subset
// (code points below 0x80) and the rest are treated differently: Ascii
// covers the former with a 128-bit bitmap, Sorted covers the latter with a
// sorted slice. This mirrors the split the SET instruction's own encoding
// uses.
package runeset

// Matcher is a predicate that returns true for certain runes.
//
// Implementations of Matcher must not change their observable state on a
// call to Match.
type Matcher interface {
	// Match returns true iff r is in the set.
	Match(r rune) bool

	// ForEach calls f exactly once for each rune in the set, in ascending
	// order. Matchers with an unbounded set (e.g. Not of a small set)
	// document their own ForEach behavior; callers should prefer Match
	// unless they know the set is small.
	ForEach(f func(r rune))

	// Optimize returns a Matcher for the same set, possibly represented
	// more efficiently. If no better representation is found, returns
	// this Matcher.
	Optimize() Matcher

	// String returns a debug representation of the set.
	String() string
}
