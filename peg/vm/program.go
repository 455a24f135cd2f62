package vm

// Program is a compiled PEG pattern: a flat bytecode stream ready to run
// against arbitrary input. Grounded on go-peggy/peggyvm/program.go's
// Program type, trimmed down since this module's bytecode carries
// literals and sets inline in each instruction rather than through side
// tables, so there is no Literals/ByteSets index to maintain here.
type Program struct {
	Code []byte
}

// NewProgram wraps an already-assembled bytecode stream.
func NewProgram(code []byte) *Program {
	return &Program{Code: code}
}

// Match reports whether pattern matches a prefix of input, without
// collecting captures.
func (p *Program) Match(input []byte) bool {
	x := NewExecution(p, input)
	if err := x.Run(); err != nil {
		panic(err)
	}
	return x.State() == Matched
}

// Run executes the program against input and returns the completed
// Execution, whatever its outcome, so a caller can inspect Pos() and
// Log() on both success and failure.
func (p *Program) Run(input []byte) (*Execution, error) {
	x := NewExecution(p, input)
	if err := x.Run(); err != nil {
		return x, err
	}
	return x, nil
}

// Capture runs the program and, on a match, projects its capture log
// through c. It reports whether the match succeeded.
func (p *Program) Capture(input []byte, c Capturer) (bool, error) {
	x, err := p.Run(input)
	if err != nil {
		return false, err
	}
	if x.State() != Matched {
		return false, nil
	}
	ApplyCaptures(x.Log(), input, c)
	return true, nil
}
