package runeset

import "sort"

// Range represents an inclusive range of runes [Lo, Hi]. If Lo > Hi it
// represents the null set.
type Range struct {
	Lo rune
	Hi rune
}

// Ranges returns a Matcher for the union of the given ranges. It is
// usually the best choice when a set is naturally described as one or a
// few contiguous spans. (The peg package's Range builder does not use it;
// that builder compiles straight to a RANGE instruction.) The ranges are sorted and merged where they
// overlap or touch, so ForEach can walk them in ascending order without
// materializing every member rune up front.
func Ranges(rs ...Range) Matcher {
	kept := make([]Range, 0, len(rs))
	for _, r := range rs {
		if r.Lo <= r.Hi {
			kept = append(kept, r)
		}
	}
	if len(kept) == 0 {
		return None()
	}
	sort.Slice(kept, func(i, j int) bool { return kept[i].Lo < kept[j].Lo })
	merged := kept[:1]
	for _, r := range kept[1:] {
		last := &merged[len(merged)-1]
		if r.Lo <= last.Hi+1 {
			if r.Hi > last.Hi {
				last.Hi = r.Hi
			}
			continue
		}
		merged = append(merged, r)
	}
	return &mRange{ranges: merged}
}

type mRange struct {
	ranges []Range
}

var _ Matcher = (*mRange)(nil)

func (m *mRange) Match(r rune) bool {
	for _, rg := range m.ranges {
		if rg.Lo <= r && r <= rg.Hi {
			return true
		}
	}
	return false
}

func (m *mRange) ForEach(f func(r rune)) {
	for _, rg := range m.ranges {
		for r := rg.Lo; r <= rg.Hi; r++ {
			f(r)
		}
	}
}

func (m *mRange) Optimize() Matcher {
	if len(m.ranges) == 1 && m.ranges[0].Lo == m.ranges[0].Hi {
		return Exactly(m.ranges[0].Lo)
	}
	return m
}

func (m *mRange) String() string {
	return genericString(m)
}
