package program

import "fmt"

// Opcode is the operation of an instruction. The set of opcodes is closed.
type Opcode uint8

// The four opcodes of the NFA byte-code.
const (
	CHAR Opcode = iota
	MATCH
	JMP
	SPLIT
)

var opcodeNames = [...]string{
	CHAR:  "CHAR",
	MATCH: "MATCH",
	JMP:   "JMP",
	SPLIT: "SPLIT",
}

// arity is the number of fields of an instruction line, including pc and opcode.
var arity = [...]int{
	CHAR:  4,
	MATCH: 2,
	JMP:   3,
	SPLIT: 4,
}

func (op Opcode) String() string {
	if int(op) < len(opcodeNames) {
		return opcodeNames[op]
	}
	return fmt.Sprintf("Opcode(%d)", uint8(op))
}

// opcodeFromString looks up an opcode by its exact name.
func opcodeFromString(s string) (Opcode, bool) {
	for op, name := range opcodeNames {
		if name == s {
			return Opcode(op), true
		}
	}
	return 0, false
}

// --- Instructions ----------------------------------------------------------

// Instruction is a single NFA instruction. The meaning of the operands
// depends on the opcode:
//
//    CHAR   X, Y = inclusive code point range, X ≤ Y
//    MATCH  no operands
//    JMP    X = target
//    SPLIT  X, Y = first and second target
//
// Unused operands are 0.
type Instruction struct {
	Op Opcode
	X  int
	Y  int
}

// Char creates a CHAR instruction for the code point range [x, y].
func Char(x, y rune) Instruction {
	return Instruction{Op: CHAR, X: int(x), Y: int(y)}
}

// Match creates a MATCH instruction.
func Match() Instruction {
	return Instruction{Op: MATCH}
}

// Jmp creates a JMP instruction.
func Jmp(target int) Instruction {
	return Instruction{Op: JMP, X: target}
}

// Split creates a SPLIT instruction. target1 has priority over target2.
func Split(target1, target2 int) Instruction {
	return Instruction{Op: SPLIT, X: target1, Y: target2}
}

// Accepts reports whether a CHAR instruction accepts code point r.
// It is false for all other opcodes.
func (i Instruction) Accepts(r rune) bool {
	return i.Op == CHAR && int(r) >= i.X && int(r) <= i.Y
}

// String returns the instruction in program text notation, without the pc.
func (i Instruction) String() string {
	switch i.Op {
	case CHAR, SPLIT:
		return fmt.Sprintf("%s %d %d", i.Op, i.X, i.Y)
	case JMP:
		return fmt.Sprintf("%s %d", i.Op, i.X)
	}
	return i.Op.String()
}
