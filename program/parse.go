package program

import (
	"strconv"
	"strings"
)

// Parse converts program text into a validated Program.
//
// Lines which are empty after trimming the surrounding whitespace of the
// whole text are ignored. A line consisting of blanks only is not empty and
// will be rejected. Fields are separated by single spaces.
//
// Parse returns a *ParseError for the first invalid line. Parsing an empty
// text results in an empty program.
func Parse(text string) (*Program, error) {
	var lines []string
	for _, line := range strings.Split(strings.TrimSpace(text), "\n") {
		if line != "" {
			lines = append(lines, line)
		}
	}
	p := &Program{code: make([]Instruction, 0, len(lines))}
	for n, line := range lines {
		inst, err := parseInstruction(line, n, len(lines))
		if err != nil {
			tracer().Errorf("program line %d: %v", n+1, err)
			return nil, &ParseError{Line: n + 1, Text: line, Err: err}
		}
		p.code = append(p.code, inst)
	}
	tracer().Debugf("parsed program with %d instructions", p.Len())
	return p, nil
}

// parseInstruction parses a single line, expected to hold the instruction
// for pc. size is the total number of instructions in the program.
func parseInstruction(line string, pc int, size int) (Instruction, error) {
	fields := strings.Split(line, " ")
	if len(fields) < 2 || len(fields) > 4 {
		return Instruction{}, ErrFieldCount
	}
	n, err := strconv.Atoi(fields[0])
	if err != nil {
		return Instruction{}, ErrOperand
	}
	if n != pc {
		return Instruction{}, ErrPCOrder
	}
	op, ok := opcodeFromString(fields[1])
	if !ok {
		return Instruction{}, ErrUnknownOpcode
	}
	if len(fields) != arity[op] {
		return Instruction{}, ErrArity
	}
	operands := make([]int, len(fields)-2)
	for i, f := range fields[2:] {
		if operands[i], err = strconv.Atoi(f); err != nil {
			return Instruction{}, ErrOperand
		}
	}
	inst := Instruction{Op: op}
	switch op {
	case CHAR:
		inst.X, inst.Y = operands[0], operands[1]
		if inst.X > inst.Y {
			return Instruction{}, ErrCharRange
		}
	case MATCH:
	case JMP:
		inst.X = operands[0]
		if !validTarget(inst.X, size) {
			return Instruction{}, ErrJumpTarget
		}
	case SPLIT:
		inst.X, inst.Y = operands[0], operands[1]
		if !validTarget(inst.X, size) || !validTarget(inst.Y, size) {
			return Instruction{}, ErrJumpTarget
		}
	}
	return inst, nil
}

func validTarget(target int, size int) bool {
	return target >= 0 && target < size
}
