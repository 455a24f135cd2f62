package vm

// CaptureEventKind identifies one of the three capture-log event kinds:
// a group opening, a plain capture opening, or a close that ends
// whichever of those is most recently open.
type CaptureEventKind byte

const (
	CaptureEventGroup CaptureEventKind = iota
	CaptureEventSimple
	CaptureEventClose
)

// CaptureEvent is one entry in a match's capture log: an
// OPEN_CAPTURE(group), OPEN_CAPTURE(simple), or CLOSE_CAPTURE instruction
// firing during a successful run through the bytecode, recording the byte
// offset (from the start of the original input) at which it fired.
type CaptureEvent struct {
	Kind   CaptureEventKind
	Offset uint64
}

// Capturer receives the projected result of walking a capture log,
// grounded on the original C++ zbs::peg::capturer this module descends
// from (original_source/src/zbs/peg.hh). OpenGroup/CloseGroup/Capture are
// called in the order the underlying pattern captured them.
type Capturer interface {
	OpenGroup()
	CloseGroup()
	Capture(data []byte)
}

// ApplyCaptures walks log once, interpreting it against original, and
// drives c accordingly:
//
//   - a `group` event calls c.OpenGroup()
//   - a `simple` event remembers its offset as pending
//   - a `close` event ends the most recently opened, not yet closed event:
//     a pending `simple` calls c.Capture with its byte range, a `group`
//     (or nothing open at all) calls c.CloseGroup()
//
// Nested `simple` captures are not produced by any of this module's own
// combinators; if a caller hand-built a log that nests them anyway, the
// innermost close consumes the innermost pending start, which is a
// reasonable but unspecified interpretation.
func ApplyCaptures(log []CaptureEvent, original []byte, c Capturer) {
	var open []CaptureEvent
	for _, ev := range log {
		switch ev.Kind {
		case CaptureEventGroup:
			open = append(open, ev)
			c.OpenGroup()
		case CaptureEventSimple:
			open = append(open, ev)
		case CaptureEventClose:
			if n := len(open); n > 0 && open[n-1].Kind == CaptureEventSimple {
				start := open[n-1].Offset
				open = open[:n-1]
				c.Capture(original[start:ev.Offset])
			} else {
				if n > 0 {
					open = open[:n-1]
				}
				c.CloseGroup()
			}
		}
	}
}

// FlatCapturer is the default Capturer: it ignores grouping entirely and
// appends every captured byte range, in order, to Result.
type FlatCapturer struct {
	Result [][]byte
}

var _ Capturer = (*FlatCapturer)(nil)

func (c *FlatCapturer) OpenGroup()       {}
func (c *FlatCapturer) CloseGroup()      {}
func (c *FlatCapturer) Capture(data []byte) {
	c.Result = append(c.Result, data)
}

// ProjectingCapturer maps each captured byte range through Project before
// appending it to Result. Grounded on the C++ original's
// sequential_capturer<T> template; Go's type parameter plays the same role
// the template parameter T plays there.
type ProjectingCapturer[T any] struct {
	Project func(data []byte) T
	Result  []T
}

var _ Capturer = (*ProjectingCapturer[any])(nil)

func (c *ProjectingCapturer[T]) OpenGroup()  {}
func (c *ProjectingCapturer[T]) CloseGroup() {}
func (c *ProjectingCapturer[T]) Capture(data []byte) {
	c.Result = append(c.Result, c.Project(data))
}
