package nfatok

import "fmt"

// --- A general purpose interface for tokens --------------------------------

// TokType is a category type for a Token. For tokens recognized by the NFA
// it is the program counter of the MATCH instruction which ended the token.
// Negative values are reserved for pseudo-tokens like EOF.
type TokType int

// Tokens represent input tokens as produced by a tokenizer.
//
// An example would be a token recognized by the MATCH instruction at PC 7:
//
//    TokType = 7           // PC of the recognizing MATCH instruction
//    Lexeme  = "aa"        // lexeme how it appeared in the input stream
//    Span    = 0…2         // occured from rune position 0 in the input stream
//
type Token interface {
	TokType() TokType
	Lexeme() string
	Value() interface{}
	Span() Span
}

// --- Spans ------------------------------------------------------------

// Span is a small type for capturing a run of input characters. A span
// denotes a start position and the position just behind the end. Positions
// count runes, not bytes.
type Span [2]uint64 // (x…y)

// From returns the start value of a span.
func (s Span) From() uint64 {
	return s[0]
}

// To returns the end value of a span.
func (s Span) To() uint64 {
	return s[1]
}

// Len returns the length of (x…y)
func (s Span) Len() uint64 {
	return s[1] - s[0]
}

func (s Span) IsNull() bool {
	return s == Span{}
}

func (s Span) Extend(other Span) Span {
	if other[0] < s[0] {
		s[0] = other[0]
	}
	if other[1] > s[1] {
		s[1] = other[1]
	}
	return s
}

func (s Span) String() string {
	return fmt.Sprintf("(%d…%d)", s[0], s[1])
}
