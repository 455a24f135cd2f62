package vm

import (
	"fmt"
	"regexp"
	"testing"

	"github.com/lithammer/dedent"
	"github.com/sergi/go-diff/diffmatchpatch"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var reLineStart = regexp.MustCompile(`(?m)^`)

// diff renders a readable diff between expected and actual disassembly, in
// the style of go-peggy/peggyvm_test.go's diff helper.
func diff(expected, actual string) string {
	dmp := diffmatchpatch.New()
	diffs := dmp.DiffMain(expected, actual, false)
	pretty := dmp.DiffPrettyText(diffs)
	return reLineStart.ReplaceAllLiteralString(pretty, "\t")
}

// asm is a tiny hand-backpatching assembler for building test programs
// directly out of Op values, in the spirit of go-peggy/peggyvm_test.go's
// hand-assembled sampleProgram1/sampleProgram2 — except here we emit via
// Op.Encode rather than transcribing raw hex, since nothing in this
// session runs the assembled bytecode to double check by hand.
type asm struct {
	code []byte
}

func (a *asm) emit(op Op) uint32 {
	ip := uint32(len(a.code))
	a.code = op.Encode(a.code)
	return ip
}

func (a *asm) patchTarget(ip uint32, target uint32) {
	op, err := Decode(a.code, ip)
	if err != nil {
		panic(err)
	}
	op.Target = target
	encoded := op.Encode(nil)
	// CHOICE/COMMIT/PARTIAL_COMMIT/REWIND_COMMIT are fixed-width, so
	// re-encoding in place never changes the instruction's length and
	// never disturbs anything emitted after it.
	copy(a.code[ip:int(ip)+len(encoded)], encoded)
}

func TestExecution_StringLiteral(t *testing.T) {
	a := &asm{}
	a.emit(Op{Code: OpString, Str: []byte("ana")})
	a.emit(Op{Code: OpEnd})
	p := NewProgram(a.code)

	assert.True(t, p.Match([]byte("ana")))
	assert.True(t, p.Match([]byte("anabanana")))
	assert.False(t, p.Match([]byte("xyz")))
}

func TestExecution_AnyAndRange(t *testing.T) {
	a := &asm{}
	a.emit(Op{Code: OpRange, From: '0', To: '9'})
	a.emit(Op{Code: OpAny})
	a.emit(Op{Code: OpEnd})
	p := NewProgram(a.code)

	assert.True(t, p.Match([]byte("5x")))
	assert.False(t, p.Match([]byte("ax")))
}

// main <- . ';'   -- ANY must consume a whole multi-byte rune, not one byte.
func TestExecution_AnyDecodesFullRune(t *testing.T) {
	a := &asm{}
	a.emit(Op{Code: OpAny})
	a.emit(Op{Code: OpString, Str: []byte(";")})
	a.emit(Op{Code: OpEnd})
	p := NewProgram(a.code)

	assert.True(t, p.Match([]byte("中;")))
	assert.False(t, p.Match([]byte("中")))
}

// main <- 'a' / 'b'
func TestExecution_Choice(t *testing.T) {
	a := &asm{}
	choiceIP := a.emit(Op{Code: OpChoice})
	a.emit(Op{Code: OpString, Str: []byte("a")})
	commitIP := a.emit(Op{Code: OpCommit})
	altIP := a.emit(Op{Code: OpString, Str: []byte("b")})
	endIP := a.emit(Op{Code: OpEnd})

	a.patchTarget(choiceIP, altIP)
	a.patchTarget(commitIP, endIP)

	p := NewProgram(a.code)
	assert.True(t, p.Match([]byte("a")))
	assert.True(t, p.Match([]byte("b")))
	assert.False(t, p.Match([]byte("c")))
}

// main <- 'a'*    (matches any input, consuming the leading run of 'a's)
func TestExecution_Star(t *testing.T) {
	a := &asm{}
	loopIP := a.emit(Op{Code: OpChoice})
	a.emit(Op{Code: OpString, Str: []byte("a")})
	pcIP := a.emit(Op{Code: OpPartialCommit})
	exitIP := uint32(len(a.code))
	a.emit(Op{Code: OpEnd})

	a.patchTarget(loopIP, exitIP)
	a.patchTarget(pcIP, loopIP)

	p := NewProgram(a.code)
	assert.True(t, p.Match([]byte("")))
	assert.True(t, p.Match([]byte("aaaa")))
	// Star is greedy-but-never-fails, so it just stops consuming at the
	// first non-'a' byte; Match only requires a matching prefix.
	assert.True(t, p.Match([]byte("aaab")))
}

// main <- OPEN_CAPTURE(simple) 'ana' CLOSE_CAPTURE
func TestExecution_Capture(t *testing.T) {
	a := &asm{}
	a.emit(Op{Code: OpOpenCapture, Kind: CaptureSimple})
	a.emit(Op{Code: OpString, Str: []byte("ana")})
	a.emit(Op{Code: OpCloseCapture})
	a.emit(Op{Code: OpEnd})

	p := NewProgram(a.code)
	var c FlatCapturer
	ok, err := p.Capture([]byte("ana"), &c)
	require.NoError(t, err)
	require.True(t, ok)
	require.Len(t, c.Result, 1)
	assert.Equal(t, "ana", string(c.Result[0]))
}

// main <- 'a' / 'b', golden-compared against Disassemble's output in the
// style of go-peggy/peggyvm_test.go's TestProgram_Disassemble.
func TestDisassemble(t *testing.T) {
	a := &asm{}
	choiceIP := a.emit(Op{Code: OpChoice})
	a.emit(Op{Code: OpString, Str: []byte("a")})
	commitIP := a.emit(Op{Code: OpCommit})
	altIP := a.emit(Op{Code: OpString, Str: []byte("b")})
	endIP := a.emit(Op{Code: OpEnd})
	a.patchTarget(choiceIP, altIP)
	a.patchTarget(commitIP, endIP)

	out, err := Disassemble(a.code)
	require.NoError(t, err)

	expected := dedent.Dedent(fmt.Sprintf(`
		CHOICE L%d
		STRING "a"
		COMMIT L%d
	L%d:
		STRING "b"
	L%d:
		END
	`, altIP, endIP, altIP, endIP))[1:]
	if out != expected {
		t.Errorf("wrong disassembly:\n%s", diff(expected, out))
	}
}

func TestValidateJumpTargets(t *testing.T) {
	a := &asm{}
	choiceIP := a.emit(Op{Code: OpChoice})
	a.emit(Op{Code: OpString, Str: []byte("a")})
	endIP := a.emit(Op{Code: OpEnd})
	a.patchTarget(choiceIP, endIP)
	require.NoError(t, ValidateJumpTargets(a.code))

	a.patchTarget(choiceIP, choiceIP+1)
	err := ValidateJumpTargets(a.code)
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrBadJumpTarget)
}

func TestApplyCaptures_GroupWrapsSimple(t *testing.T) {
	log := []CaptureEvent{
		{Kind: CaptureEventGroup, Offset: 0},
		{Kind: CaptureEventSimple, Offset: 0},
		{Kind: CaptureEventClose, Offset: 3},
		{Kind: CaptureEventClose, Offset: 3},
	}
	var c FlatCapturer
	ApplyCaptures(log, []byte("ana"), &c)
	require.Len(t, c.Result, 1)
	assert.Equal(t, "ana", string(c.Result[0]))
}
