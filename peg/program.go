package peg

import (
	"github.com/nsf/libzbs/peg/prefilter"
	"github.com/nsf/libzbs/peg/vm"
)

// Program is a compiled Pattern, ready to run against input. Grounded on
// chronos-tachyon/go-peggy/peggyvm/program.go's split between "the raw VM
// program" and "the friendly wrapper a caller actually uses" — this type
// is the friendly wrapper, additionally owning the optional literal
// prefilter.
type Program struct {
	prog *vm.Program
	pf   *prefilter.Set
}

// Compile builds p into a Program.
func Compile(p Pattern) (*Program, error) {
	code, err := compile(p)
	if err != nil {
		return nil, err
	}
	return &Program{prog: vm.NewProgram(code), pf: buildPrefilter(p)}, nil
}

// Match reports whether the program matches a prefix of input.
func (prg *Program) Match(input []byte) bool {
	if prg.pf != nil && len(input) > 0 {
		if prg.pf.Find(input, 0) != 0 {
			return false
		}
	}
	return prg.prog.Match(input)
}

// Capture runs the program against input and, on a match, returns the
// flat, in-order list of captured byte ranges (capture grouping is
// discarded; use CaptureInto with a Capturer that handles
// OpenGroup/CloseGroup to observe grouping).
func (prg *Program) Capture(input []byte) (matched bool, captures [][]byte, err error) {
	var c vm.FlatCapturer
	matched, err = prg.CaptureInto(input, &c)
	if err != nil {
		return false, nil, err
	}
	return matched, c.Result, nil
}

// CaptureWith runs the program against input, projecting each captured
// byte range through project. Grounded on original_source's
// sequential_capturer<T> template.
func CaptureWith[T any](prg *Program, input []byte, project func([]byte) T) (matched bool, results []T, err error) {
	c := &vm.ProjectingCapturer[T]{Project: project}
	matched, err = prg.CaptureInto(input, c)
	if err != nil {
		return false, nil, err
	}
	return matched, c.Result, nil
}

// CaptureInto runs the program against input, driving an arbitrary
// vm.Capturer directly. Capture and CaptureWith cover the common cases
// (flat byte ranges, and per-capture projection); CaptureInto exists for
// callers that also need OpenGroup/CloseGroup, e.g. to build a tree of
// nested captures rather than a flat sequence. Consults the literal
// prefilter first, exactly as Match does, since a failed prefilter probe
// means the VM would fail too.
func (prg *Program) CaptureInto(input []byte, c vm.Capturer) (matched bool, err error) {
	if prg.pf != nil && len(input) > 0 {
		if prg.pf.Find(input, 0) != 0 {
			return false, nil
		}
	}
	return prg.prog.Capture(input, c)
}

// Dump renders the program's bytecode as human-readable assembly.
func (prg *Program) Dump() (string, error) {
	return vm.Disassemble(prg.prog.Code)
}
