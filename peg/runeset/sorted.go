package runeset

import "sort"

// Sorted is a Matcher backed by a sorted slice of runes, searched with
// binary search. It is the rune-domain analogue of go-peggy/byteset's
// mSparse, and is the representation the non-ASCII (>= 0x80) portion of
// a compiled SET instruction uses: an array of 32-bit runes, sorted so
// membership can be tested by binary search.
type Sorted struct {
	runes []rune
}

var _ Matcher = (*Sorted)(nil)

// NewSorted returns a Sorted matcher containing exactly the given runes,
// deduplicated and sorted ascending.
func NewSorted(given ...rune) *Sorted {
	uniq := make(map[rune]struct{}, len(given))
	for _, r := range given {
		uniq[r] = struct{}{}
	}
	runes := make([]rune, 0, len(uniq))
	for r := range uniq {
		runes = append(runes, r)
	}
	sort.Slice(runes, func(i, j int) bool { return runes[i] < runes[j] })
	return &Sorted{runes: runes}
}

func (m *Sorted) Match(r rune) bool {
	i := sort.Search(len(m.runes), func(i int) bool { return m.runes[i] >= r })
	return i < len(m.runes) && m.runes[i] == r
}

func (m *Sorted) ForEach(f func(r rune)) {
	for _, r := range m.runes {
		f(r)
	}
}

func (m *Sorted) Optimize() Matcher {
	switch len(m.runes) {
	case 0:
		return None()
	case 1:
		return Exactly(m.runes[0])
	}
	return m
}

func (m *Sorted) String() string {
	return genericString(m)
}

// Runes returns the sorted, deduplicated backing slice. Callers must not
// mutate the result.
func (m *Sorted) Runes() []rune {
	return m.runes
}
