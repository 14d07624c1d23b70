package vm

import (
	"github.com/npillmayer/nfatok"
	"github.com/npillmayer/nfatok/program"
	"github.com/npillmayer/schuko/gconf"
)

// Token is a token recognized by a scan. It implements nfatok.Token.
type Token struct {
	PC    int    // PC of the MATCH instruction which recognized the token
	Text  string // the recognized part of the input
	Start int    // rune offset of the first character
	End   int    // rune offset behind the last character
}

var _ nfatok.Token = Token{}

// TokType returns the PC of the recognizing MATCH instruction.
func (t Token) TokType() nfatok.TokType {
	return nfatok.TokType(t.PC)
}

func (t Token) Lexeme() string {
	return t.Text
}

func (t Token) Value() interface{} {
	return nil
}

func (t Token) Span() nfatok.Span {
	return nfatok.Span{uint64(t.Start), uint64(t.End)}
}

// --- Scans -----------------------------------------------------------------

// Scan is a single run of a program over an input text. A Scan is not safe
// for concurrent use, but any number of scans may share a program.
type Scan struct {
	prog    *program.Program
	input   []rune
	clist   *threadList // threads at the current position
	nlist   *threadList // threads at the next position
	matchPC int         // PC of the best pending match, or -1
	matchTC int         // position of the most recent match, or -1
	start   int         // start of the current token
	tc      int         // current position in the input
	dump    bool        // trace thread lists
}

// NewScan creates a scan of prog over input. The automaton starts at PC 0.
func NewScan(prog *program.Program, input string) *Scan {
	s := &Scan{
		prog:    prog,
		input:   []rune(input),
		clist:   newThreadList(),
		nlist:   newThreadList(),
		matchPC: -1,
		matchTC: -1,
		dump:    gconf.GetBool("nfatok.trace-threads"),
	}
	s.clist.add(0)
	return s
}

// Next runs the automaton until the next token has been determined. It
// returns false if no further token will be recognized.
func (s *Scan) Next() (Token, bool) {
	for !s.Done() {
		if token, ok := s.step(); ok {
			return token, true
		}
	}
	return Token{}, false
}

// Done reports whether the scan has come to an end, i.e. Next will not
// return any further tokens.
func (s *Scan) Done() bool {
	return s.tc > len(s.input)
}

// Accepted reports whether the input has been consumed completely by
// tokens. It is always false before the scan is done.
func (s *Scan) Accepted() bool {
	return s.Done() && s.matchTC == len(s.input)
}

// Consumed returns the rune offset behind the last token emitted so far.
func (s *Scan) Consumed() int {
	return s.start
}

// Len returns the length of the input in runes.
func (s *Scan) Len() int {
	return len(s.input)
}

// step executes all threads at the current position, computing the epsilon
// closure on the fly. It then either advances to the next position or, if
// no thread is left alive, finalizes a token or halts the scan.
func (s *Scan) step() (token Token, emitted bool) {
	if s.dump {
		tracer().Debugf("tc=%d threads=%s", s.tc, s.clist)
	}
	for pc, ok := s.clist.pop(); ok; pc, ok = s.clist.pop() {
		inst, valid := s.prog.At(pc)
		if !valid {
			tracer().Debugf("thread at PC %d is outside of program", pc)
			continue
		}
		switch inst.Op {
		case program.CHAR:
			if s.tc < len(s.input) && inst.Accepts(s.input[s.tc]) {
				s.nlist.add(pc + 1)
			}
		case program.MATCH:
			// a later match always wins, at the same position the lower PC wins
			if s.matchTC < s.tc || s.matchPC > pc {
				s.matchPC, s.matchTC = pc, s.tc
			}
		case program.JMP:
			s.clist.add(inst.X)
		case program.SPLIT:
			s.clist.add(inst.X)
			s.clist.add(inst.Y)
		}
	}
	s.clist, s.nlist = s.nlist, s.clist
	s.nlist.clear()
	if !s.clist.empty() {
		s.tc++
		return
	}
	if s.matchPC == -1 {
		tracer().Debugf("no thread alive at tc=%d, halting", s.tc)
		s.tc = len(s.input) + 1
		return
	}
	token = Token{
		PC:    s.matchPC,
		Text:  string(s.input[s.start:s.matchTC]),
		Start: s.start,
		End:   s.matchTC,
	}
	tracer().Debugf("token %d:%q at %v", token.PC, token.Text, token.Span())
	// restart the automaton right behind the token; matchTC is retained
	s.start = s.matchTC
	s.tc = s.matchTC
	s.matchPC = -1
	s.clist.add(0)
	return token, true
}

// Run scans input with prog, calling emit for every token as soon as it
// has been recognized. Returns true if the input has been consumed
// completely.
func Run(prog *program.Program, input string, emit func(Token)) bool {
	s := NewScan(prog, input)
	for token, ok := s.Next(); ok; token, ok = s.Next() {
		if emit != nil {
			emit(token)
		}
	}
	return s.Accepted()
}
