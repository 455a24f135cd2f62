package runeset

// All returns a Matcher that matches every valid rune.
func All() Matcher { return singletonAll }

type mAll struct{}

var _ Matcher = (*mAll)(nil)
var singletonAll = &mAll{}

func (m *mAll) Match(r rune) bool { return r >= 0 && r <= 0x10FFFF }
func (m *mAll) ForEach(f func(r rune)) {
	for r := rune(0); r <= 0x10FFFF; r++ {
		f(r)
	}
}
func (m *mAll) Optimize() Matcher { return singletonAll }
func (m *mAll) String() string    { return "." }
