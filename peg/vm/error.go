package vm

import (
	"errors"
	"fmt"
)

// Sentinel errors for bytecode decoding, in the style of
// chronos-tachyon/go-peggy/peggyvm/error.go. A well-formed program produced
// by this module's own compiler never triggers these; they exist as a
// graceful-extension hook and for defending against hand-corrupted or
// hostile bytecode passed to Decode directly.
var (
	ErrUnknownOpcode        = errors.New("vm: unknown opcode")
	ErrTruncatedInstruction = errors.New("vm: truncated instruction")
	ErrBadJumpTarget        = errors.New("vm: jump target is not a valid instruction boundary")
)

// DecodeError reports a failure to decode an instruction at a given code
// offset. It wraps one of the sentinels above.
type DecodeError struct {
	Err    error
	Offset uint32
}

func (e *DecodeError) Error() string {
	return fmt.Sprintf("libzbs/peg/vm: decode error at offset %d: %v", e.Offset, e.Err)
}

func (e *DecodeError) Unwrap() error { return e.Err }
