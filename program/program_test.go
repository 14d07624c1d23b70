package program

import (
	"errors"
	"testing"

	"github.com/npillmayer/schuko/tracing/gotestingadapter"
)

func TestParseAllInstructions(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "nfatok.program")
	defer teardown()
	//
	p, err := Parse("0 CHAR 97 98\n1 MATCH\n2 JMP 1\n3 SPLIT 0 1")
	if err != nil {
		t.Fatal(err)
	}
	expected := []Instruction{Char('a', 'b'), Match(), Jmp(1), Split(0, 1)}
	if p.Len() != len(expected) {
		t.Fatalf("expected %d instructions, have %d", len(expected), p.Len())
	}
	for pc, inst := range expected {
		if have, _ := p.At(pc); have != inst {
			t.Errorf("expected instruction %d to be %v, is %v", pc, inst, have)
		}
	}
	p.Dump()
}

func TestParseEmpty(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "nfatok.program")
	defer teardown()
	//
	for _, text := range []string{"", "\n\n", "  \n"} {
		p, err := Parse(text)
		if err != nil {
			t.Errorf("expected empty program for %q, have error %v", text, err)
		} else if p.Len() != 0 {
			t.Errorf("expected empty program for %q, have %d instructions", text, p.Len())
		}
	}
}

func TestParseSkipsEmptyLines(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "nfatok.program")
	defer teardown()
	//
	p, err := Parse("\n0 CHAR 97 97\n\n1 MATCH\n")
	if err != nil {
		t.Fatal(err)
	}
	if p.Len() != 2 {
		t.Errorf("expected 2 instructions, have %d", p.Len())
	}
}

func TestParseInvalid(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "nfatok.program")
	defer teardown()
	//
	for i, test := range []struct {
		text  string
		cause error
	}{
		{"5", ErrFieldCount},
		{"0 CHAR 1 1 1", ErrFieldCount},
		{"MATCH 0", ErrOperand},
		{"0 Unknown 97 98", ErrUnknownOpcode},
		{"0 CHAR 97 97\n2 MATCH\n1 MATCH", ErrPCOrder},
		{"1 MATCH", ErrPCOrder},
		{"0  MATCH", ErrUnknownOpcode},
		{"0 CHAR 97 97\n \n1 MATCH", ErrOperand},
		// CHAR
		{"0 CHAR a b", ErrOperand},
		{"0 CHAR 97", ErrArity},
		{"0 CHAR 98 97", ErrCharRange},
		// MATCH
		{"0 MATCH 3", ErrArity},
		// JMP
		{"0 JMP a", ErrOperand},
		{"0 JMP\n1 MATCH", ErrArity},
		{"0 JMP 1 0\n1 MATCH", ErrArity},
		{"0 JMP 1", ErrJumpTarget},
		{"0 JMP -1\n1 MATCH", ErrJumpTarget},
		// SPLIT
		{"0 SPLIT a b", ErrOperand},
		{"0 SPLIT 1 2", ErrJumpTarget},
		{"0 SPLIT 0 -1", ErrJumpTarget},
		{"0 SPLIT 0", ErrArity},
	} {
		p, err := Parse(test.text)
		if err == nil {
			t.Errorf("test %d: expected %q to fail, parsed %d instructions", i, test.text, p.Len())
			continue
		}
		var perr *ParseError
		if !errors.As(err, &perr) {
			t.Errorf("test %d: expected a ParseError, have %T", i, err)
		}
		if !errors.Is(err, test.cause) {
			t.Errorf("test %d: expected cause %q, have %q", i, test.cause, err)
		}
	}
}

func TestParseErrorLine(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "nfatok.program")
	defer teardown()
	//
	_, err := Parse("0 CHAR 97 97\n\n1 FOO")
	var perr *ParseError
	if !errors.As(err, &perr) {
		t.Fatalf("expected a ParseError, have %v", err)
	}
	if perr.Line != 2 || perr.Text != "1 FOO" {
		t.Errorf("expected error at instruction #2 \"1 FOO\", have #%d %q", perr.Line, perr.Text)
	}
}

func TestParseIdempotent(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "nfatok.program")
	defer teardown()
	//
	text := "0 SPLIT 1 3\n1 CHAR 48 57\n2 JMP 0\n3 MATCH"
	p1, err1 := Parse(text)
	p2, err2 := Parse(text)
	if err1 != nil || err2 != nil {
		t.Fatalf("unexpected errors: %v, %v", err1, err2)
	}
	if !p1.Equal(p2) {
		t.Errorf("expected programs to be equal")
	}
	if p1.Fingerprint() == "" || p1.Fingerprint() != p2.Fingerprint() {
		t.Errorf("expected equal fingerprints, have %q and %q", p1.Fingerprint(), p2.Fingerprint())
	}
	p3, _ := Parse("0 SPLIT 1 3\n1 CHAR 48 58\n2 JMP 0\n3 MATCH")
	if p1.Equal(p3) || p1.Fingerprint() == p3.Fingerprint() {
		t.Errorf("expected different programs to differ")
	}
}

func TestProgramString(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "nfatok.program")
	defer teardown()
	//
	text := "0 CHAR 97 98\n1 MATCH\n2 JMP 1\n3 SPLIT 0 1"
	p, err := Parse(text)
	if err != nil {
		t.Fatal(err)
	}
	if p.String() != text {
		t.Errorf("expected program text\n%s\nhave\n%s", text, p.String())
	}
	q, err := Parse(p.String())
	if err != nil || !q.Equal(p) {
		t.Errorf("expected re-parsed program to be equal, err=%v", err)
	}
}

func TestInstructionAccepts(t *testing.T) {
	c := Char('a', 'c')
	for r, ok := range map[rune]bool{'`': false, 'a': true, 'b': true, 'c': true, 'd': false} {
		if c.Accepts(r) != ok {
			t.Errorf("expected %v.Accepts(%q) to be %v", c, r, ok)
		}
	}
	if Match().Accepts('a') {
		t.Errorf("MATCH should not accept any input")
	}
}
