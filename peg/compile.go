package peg

import (
	"errors"

	"github.com/nsf/libzbs/peg/runeset"
	"github.com/nsf/libzbs/peg/vm"
)

// ErrNotImplemented is returned by Compile when the pattern tree contains a
// node kind that is reserved but has no defined compilation — call/
// recursion and the true/false leaves. No combinator in this package
// produces them; they only arise from a hand-built Pattern.
var ErrNotImplemented = errors.New("peg: compilation of this node kind is not implemented")

// compiler accumulates bytecode for one compilation, recording byte
// offsets for outstanding jump patches exactly as pegvm.cc's codegen
// does ("choice->offset = commit->offset = instbuf.len()"), except that
// here the offset is the patch *site*, not the target — see patchTarget.
type compiler struct {
	code []byte
	err  error
}

func (c *compiler) fail(err error) {
	if c.err == nil {
		c.err = err
	}
}

func (c *compiler) emit(op vm.Op) uint32 {
	ip := uint32(len(c.code))
	c.code = op.Encode(c.code)
	return ip
}

// patchTarget overwrites the Target field of the fixed-width jump
// instruction at ip, once its destination is known.
func (c *compiler) patchTarget(ip uint32, target uint32) {
	op, err := vm.Decode(c.code, ip)
	if err != nil {
		c.fail(err)
		return
	}
	op.Target = target
	encoded := op.Encode(nil)
	copy(c.code[ip:int(ip)+len(encoded)], encoded)
}

func (c *compiler) here() uint32 { return uint32(len(c.code)) }

// compile lowers one Pattern node, appending to c.code. Control-flow
// shapes below mirror pegvm.cc's codegen switch exactly: choice,
// repetition, not_, and_ all follow that function's choice/commit
// backpatch pattern, generalized from relative to absolute offsets.
func (c *compiler) compile(p *Pattern) {
	if c.err != nil {
		return
	}
	switch p.kind {
	case kindStr:
		c.emit(vm.Op{Code: vm.OpString, Str: p.str})

	case kindSet:
		ascii, sorted := runeset.Split(runeset.NewSorted(p.setMembers...))
		c.emit(vm.Op{Code: vm.OpSet, AsciiBitmap: ascii, Runes: sorted})

	case kindRange:
		c.emit(vm.Op{Code: vm.OpRange, From: p.from, To: p.to})

	case kindAny:
		for i := 0; i < p.n; i++ {
			c.emit(vm.Op{Code: vm.OpAny})
		}

	case kindRepeat:
		c.compileRepeat(p)

	case kindSeq:
		c.compile(p.left)
		c.compile(p.right)

	case kindChoice:
		choiceIP := c.emit(vm.Op{Code: vm.OpChoice})
		c.compile(p.left)
		commitIP := c.emit(vm.Op{Code: vm.OpCommit})
		c.patchTarget(choiceIP, c.here())
		c.compile(p.right)
		c.patchTarget(commitIP, c.here())

	case kindNot:
		choiceIP := c.emit(vm.Op{Code: vm.OpChoice})
		c.compile(p.left)
		c.emit(vm.Op{Code: vm.OpFailTwice})
		c.patchTarget(choiceIP, c.here())

	case kindAnd:
		choiceIP := c.emit(vm.Op{Code: vm.OpChoice})
		c.compile(p.left)
		rcommitIP := c.emit(vm.Op{Code: vm.OpRewindCommit})
		c.patchTarget(choiceIP, c.here())
		c.emit(vm.Op{Code: vm.OpFail})
		c.patchTarget(rcommitIP, c.here())

	case kindCapture:
		kind := vm.CaptureSimple
		if p.capture == captureGroup {
			kind = vm.CaptureGroup
		}
		c.emit(vm.Op{Code: vm.OpOpenCapture, Kind: kind})
		c.compile(p.left)
		c.emit(vm.Op{Code: vm.OpCloseCapture})

	case kindTrue, kindFalse, kindCall:
		c.fail(ErrNotImplemented)

	default:
		c.fail(ErrNotImplemented)
	}
}

// compileRepeat handles the three repetition shapes: p.n < 0 is "zero or
// one" (Opt), compiled as a bare choice/commit with an empty right side;
// p.n == 0 or 1 is "zero or more"/"one or more", compiled as N
// unconditional copies of patt followed by a choice/partial-commit loop,
// per pegvm.cc's codegen "repetition" case.
func (c *compiler) compileRepeat(p *Pattern) {
	if p.n < 0 {
		choiceIP := c.emit(vm.Op{Code: vm.OpChoice})
		c.compile(p.left)
		commitIP := c.emit(vm.Op{Code: vm.OpCommit})
		c.patchTarget(choiceIP, c.here())
		c.patchTarget(commitIP, c.here())
		return
	}

	for i := 0; i < p.n; i++ {
		c.compile(p.left)
	}
	choiceIP := c.emit(vm.Op{Code: vm.OpChoice})
	loopStart := c.here()
	c.compile(p.left)
	pcIP := c.emit(vm.Op{Code: vm.OpPartialCommit})
	c.patchTarget(pcIP, loopStart)
	c.patchTarget(choiceIP, c.here())
}

// compile builds the full bytecode for p, appending a trailing END.
func compile(p Pattern) ([]byte, error) {
	c := &compiler{}
	c.compile(&p)
	c.emit(vm.Op{Code: vm.OpEnd})
	if c.err != nil {
		return nil, c.err
	}
	return c.code, nil
}
