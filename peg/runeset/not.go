package runeset

// Not returns a Matcher that inverts the given Matcher over the full rune
// universe. ForEach on the result iterates the full Unicode range and is
// therefore slow; it exists for completeness and for Optimize's folding
// rules, not for hot-path use.
func Not(m Matcher) Matcher {
	return &mNegation{inner: m}
}

type mNegation struct {
	inner Matcher
}

var _ Matcher = (*mNegation)(nil)

func (m *mNegation) Match(r rune) bool { return !m.inner.Match(r) }

func (m *mNegation) ForEach(f func(r rune)) {
	for r := rune(0); r <= 0x10FFFF; r++ {
		if m.Match(r) {
			f(r)
		}
	}
}

func (m *mNegation) Optimize() Matcher {
	inner := m.inner.Optimize()
	switch sub := inner.(type) {
	case *mAll:
		return None()
	case *mNone:
		return All()
	case *mNegation:
		return sub.inner
	default:
		return &mNegation{inner: inner}
	}
}

func (m *mNegation) String() string { return "!" + m.inner.String() }
