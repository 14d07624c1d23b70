/*
Package scanner defines an interface for tokenizers and adapts the NFA
simulation of package vm to it.

Two implementations are provided: (1) NFATokenizer, driven by an NFA program,
and (2) an adapter for lexmachine, living in sub-package `lexmach`, which is
mainly used as a reference to check NFA programs against.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>

*/
package scanner

import (
	"fmt"
	"text/scanner"

	"github.com/npillmayer/nfatok"
	"github.com/npillmayer/nfatok/program"
	"github.com/npillmayer/nfatok/vm"
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'nfatok.scanner'.
func tracer() tracing.Trace {
	return tracing.Select("nfatok.scanner")
}

// EOF is identical to text/scanner.EOF. It never collides with a PC.
const EOF = scanner.EOF

// Tokenizer is a scanner interface.
type Tokenizer interface {
	NextToken() nfatok.Token
	SetErrorHandler(func(error))
}

// UnconsumedInput is reported to a tokenizer's error handler if the input
// could not be tokenized completely.
type UnconsumedInput struct {
	Offset int    // rune offset of the first character not covered by a token
	Rest   string // the remaining input
}

func (e *UnconsumedInput) Error() string {
	return fmt.Sprintf("unrecognized input at offset %d: %q", e.Offset, e.Rest)
}

// Default error reporting function for scanners
func logError(e error) {
	tracer().Errorf("scanner error: " + e.Error())
}

// --- NFA tokenizer ---------------------------------------------------------

// NFATokenizer is a tokenizer driven by an NFA program. Create one with
// NewNFATokenizer.
type NFATokenizer struct {
	scan     *vm.Scan
	input    []rune
	Error    func(error) // error handler
	reported bool        // unconsumed input has been reported
}

var _ Tokenizer = (*NFATokenizer)(nil)

// NewNFATokenizer creates a tokenizer for input, recognizing tokens with
// prog. The token type of a token is the PC of the recognizing MATCH
// instruction.
func NewNFATokenizer(prog *program.Program, input string) *NFATokenizer {
	return &NFATokenizer{
		scan:  vm.NewScan(prog, input),
		input: []rune(input),
		Error: logError,
	}
}

// SetErrorHandler sets an error handler for the scanner.
func (t *NFATokenizer) SetErrorHandler(h func(error)) {
	if h == nil {
		t.Error = logError
		return
	}
	t.Error = h
}

// NextToken is part of the Tokenizer interface. After the last token it
// returns tokens of type EOF. If the input has not been consumed completely,
// the error handler is called once with an *UnconsumedInput error.
func (t *NFATokenizer) NextToken() nfatok.Token {
	if token, ok := t.scan.Next(); ok {
		return token
	}
	n := t.scan.Consumed()
	if !t.scan.Accepted() && !t.reported {
		t.reported = true
		t.Error(&UnconsumedInput{Offset: n, Rest: string(t.input[n:])})
	}
	tracer().Debugf("NFATokenizer reached end of input")
	return MakeDefaultToken(EOF, "", nfatok.Span{uint64(n), uint64(n)})
}

// Accepted reports whether the input has been tokenized completely. It is
// valid after NextToken has returned EOF.
func (t *NFATokenizer) Accepted() bool {
	return t.scan.Accepted()
}

// --- Default tokens --------------------------------------------------------

// DefaultToken is a very unsophisticated token type, used for EOF and by
// the lexmachine adapter.
type DefaultToken struct {
	kind   nfatok.TokType
	lexeme string
	Val    interface{}
	span   nfatok.Span
}

func MakeDefaultToken(typ nfatok.TokType, lexeme string, span nfatok.Span) DefaultToken {
	return DefaultToken{
		kind:   typ,
		lexeme: lexeme,
		span:   span,
	}
}

func (t DefaultToken) TokType() nfatok.TokType {
	return t.kind
}

func (t DefaultToken) Value() interface{} {
	return t.Val
}

func (t DefaultToken) Lexeme() string {
	return t.lexeme
}

func (t DefaultToken) Span() nfatok.Span {
	return t.span
}
