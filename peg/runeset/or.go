package runeset

import "sort"

// Or returns a Matcher that matches iff any of the given Matchers match.
func Or(ms ...Matcher) Matcher {
	kept := make([]Matcher, 0, len(ms))
	for _, m := range ms {
		if m != nil {
			kept = append(kept, m)
		}
	}
	if len(kept) == 0 {
		return None()
	}
	if len(kept) == 1 {
		return kept[0]
	}
	return &mUnion{list: kept}
}

type mUnion struct {
	list []Matcher
}

var _ Matcher = (*mUnion)(nil)

func (m *mUnion) Match(r rune) bool {
	for _, sub := range m.list {
		if sub.Match(r) {
			return true
		}
	}
	return false
}

func (m *mUnion) ForEach(f func(r rune)) {
	seen := make(map[rune]struct{})
	var members []rune
	for _, sub := range m.list {
		sub.ForEach(func(r rune) {
			if _, ok := seen[r]; !ok {
				seen[r] = struct{}{}
				members = append(members, r)
			}
		})
	}
	sort.Slice(members, func(i, j int) bool { return members[i] < members[j] })
	for _, r := range members {
		f(r)
	}
}

func (m *mUnion) Optimize() Matcher {
	ascii, sorted := Split(m)
	asciiMatcher := AsciiFromBitmap(ascii).Optimize()
	sortedMatcher := NewSorted(sorted...).Optimize()

	asciiEmpty := asciiMatcher == None()
	sortedEmpty := sortedMatcher == None()
	switch {
	case asciiEmpty && sortedEmpty:
		return None()
	case asciiEmpty:
		return sortedMatcher
	case sortedEmpty:
		return asciiMatcher
	default:
		return &mUnion{list: []Matcher{asciiMatcher, sortedMatcher}}
	}
}

func (m *mUnion) String() string {
	return genericString(m)
}
