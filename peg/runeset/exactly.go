package runeset

// Exactly returns a Matcher that matches exactly one rune.
func Exactly(r rune) Matcher {
	return &mExact{r: r}
}

type mExact struct{ r rune }

var _ Matcher = (*mExact)(nil)

func (m *mExact) Match(r rune) bool      { return r == m.r }
func (m *mExact) ForEach(f func(rune))   { f(m.r) }
func (m *mExact) Optimize() Matcher      { return m }
func (m *mExact) String() string         { return genericString(m) }
