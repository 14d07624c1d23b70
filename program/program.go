package program

import (
	"fmt"
	"strings"

	"github.com/cnf/structhash"
)

// Program is an ordered sequence of instructions. The index of an
// instruction is its program counter (PC). Programs are immutable once
// created.
type Program struct {
	code []Instruction
}

// New creates a program from a list of instructions. It does not validate
// jump targets; clients reading untrusted text should use Parse.
func New(code ...Instruction) *Program {
	p := &Program{code: make([]Instruction, len(code))}
	copy(p.code, code)
	return p
}

// Len returns the number of instructions.
func (p *Program) Len() int {
	if p == nil {
		return 0
	}
	return len(p.code)
}

// At returns the instruction at pc. The second return value is false if pc
// is not a valid PC of p.
func (p *Program) At(pc int) (Instruction, bool) {
	if pc < 0 || pc >= p.Len() {
		return Instruction{}, false
	}
	return p.code[pc], true
}

// Instructions returns a copy of the instruction list, in PC order.
func (p *Program) Instructions() []Instruction {
	code := make([]Instruction, p.Len())
	if p != nil {
		copy(code, p.code)
	}
	return code
}

// Equal reports whether two programs are structurally identical.
func (p *Program) Equal(other *Program) bool {
	if p.Len() != other.Len() {
		return false
	}
	for pc := 0; pc < p.Len(); pc++ {
		if p.code[pc] != other.code[pc] {
			return false
		}
	}
	return true
}

// Fingerprint returns a hash of the program's structure. Structurally
// identical programs have identical fingerprints.
func (p *Program) Fingerprint() string {
	h, err := structhash.Hash(struct{ Code []Instruction }{p.Instructions()}, 1)
	if err != nil {
		tracer().Errorf("cannot hash program: %v", err)
		return ""
	}
	return h
}

// String returns the program in its textual form. Parsing the result
// yields a program equal to p.
func (p *Program) String() string {
	var b strings.Builder
	for pc, inst := range p.Instructions() {
		if pc > 0 {
			b.WriteByte('\n')
		}
		fmt.Fprintf(&b, "%d %s", pc, inst)
	}
	return b.String()
}

// Dump is a debugging helper, listing the program to the trace.
func (p *Program) Dump() {
	tracer().Debugf("--- program (%d) -----------", p.Len())
	for pc, inst := range p.Instructions() {
		tracer().Debugf("[%3d] %s", pc, inst)
	}
	tracer().Debugf("-------------------------")
}
