package vm

// ValidateJumpTargets walks code once, decoding every instruction, and
// confirms every CHOICE/COMMIT/PARTIAL_COMMIT/REWIND_COMMIT jump target
// lands exactly on the start of some instruction in the stream. A
// program built by this package's own compiler always satisfies this by
// construction (every Target comes from a compiler's own here()), so
// this only ever fires against hand-corrupted or hostile bytecode
// decoded from outside the package.
func ValidateJumpTargets(code []byte) error {
	boundaries := make(map[uint32]bool)
	type jump struct {
		ip     uint32
		target uint32
	}
	var jumps []jump

	for ip := uint32(0); int(ip) < len(code); {
		op, err := Decode(code, ip)
		if err != nil {
			return err
		}
		boundaries[ip] = true
		switch op.Code {
		case OpChoice, OpCommit, OpPartialCommit, OpRewindCommit:
			jumps = append(jumps, jump{ip: ip, target: op.Target})
		}
		ip += uint32(op.Len)
	}

	for _, j := range jumps {
		if !boundaries[j.target] {
			return &DecodeError{Err: ErrBadJumpTarget, Offset: j.ip}
		}
	}
	return nil
}
