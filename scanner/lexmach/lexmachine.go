package lexmach

import (
	"unicode/utf8"

	"github.com/npillmayer/nfatok"
	"github.com/npillmayer/nfatok/scanner"
	"github.com/npillmayer/schuko/tracing"

	"github.com/timtadh/lexmachine"
	"github.com/timtadh/lexmachine/machines"
)

// lexmachine adapter

// tracer traces with key 'nfatok.scanner'.
func tracer() tracing.Trace {
	return tracing.Select("nfatok.scanner")
}

// Rule is a regular expression in lexmachine syntax, together with the
// token type to produce for it.
type Rule struct {
	Pattern string
	Type    nfatok.TokType
}

// LMAdapter is a lexmachine adapter to use lexmachine as a scanner.
type LMAdapter struct {
	Lexer *lexmachine.Lexer
}

// NewLMAdapter creates a new lexmachine adapter. Rules are added in order,
// i.e. earlier rules take precedence over later ones for matches of equal
// length.
//
// NewLMAdapter will return an error if compiling the DFA failed.
func NewLMAdapter(rules []Rule) (*LMAdapter, error) {
	adapter := &LMAdapter{}
	adapter.Lexer = lexmachine.NewLexer()
	for _, rule := range rules {
		adapter.Lexer.Add([]byte(rule.Pattern), MakeToken(rule.Type))
	}
	if err := adapter.Lexer.Compile(); err != nil {
		tracer().Errorf("Error compiling DFA: %v", err)
		return nil, err
	}
	return adapter, nil
}

// Scanner creates a scanner for a given input. The scanner will implement the
// Tokenizer interface.
func (lm *LMAdapter) Scanner(input string) (*LMScanner, error) {
	s, err := lm.Lexer.Scanner([]byte(input))
	if err != nil {
		return &LMScanner{}, err
	}
	return &LMScanner{scanner: s, input: []byte(input), Error: logError}, nil
}

// LMScanner is a scanner type for lexmachine scanners, implementing the
// Tokenizer interface.
type LMScanner struct {
	scanner *lexmachine.Scanner
	input   []byte
	Error   func(error)
	halted  bool
	end     int // rune offset behind the last token
}

var _ scanner.Tokenizer = (*LMScanner)(nil)

// SetErrorHandler sets an error handler for the scanner.
func (lms *LMScanner) SetErrorHandler(h func(error)) {
	if h == nil {
		lms.Error = logError
		return
	}
	lms.Error = h
}

// Default error reporting function for lexmachine-based scanners
func logError(e error) {
	tracer().Errorf("scanner error: " + e.Error())
}

// NextToken is part of the Tokenizer interface.
//
// The first unrecognized character halts the scanner: the error handler is
// called with a *scanner.UnconsumedInput error and EOF is returned from then on.
func (lms *LMScanner) NextToken() nfatok.Token {
	if lms.halted {
		return lms.eof()
	}
	tok, err, eof := lms.scanner.Next()
	if err != nil {
		lms.halted = true
		if ui, is := err.(*machines.UnconsumedInput); is {
			offset := utf8.RuneCount(lms.input[:ui.StartTC])
			lms.Error(&scanner.UnconsumedInput{Offset: offset, Rest: string(lms.input[ui.StartTC:])})
		} else {
			lms.Error(err)
		}
		return lms.eof()
	}
	if eof {
		lms.halted = true
		return lms.eof()
	}
	tracer().Debugf("tok is %T | %v", tok, tok)
	token := tok.(*lexmachine.Token)
	start := utf8.RuneCount(lms.input[:token.TC])
	lms.end = start + utf8.RuneCount(token.Lexeme)
	return scanner.MakeDefaultToken(
		nfatok.TokType(token.Type),
		string(token.Lexeme),
		nfatok.Span{uint64(start), uint64(lms.end)},
	)
}

func (lms *LMScanner) eof() nfatok.Token {
	return scanner.MakeDefaultToken(scanner.EOF, "", nfatok.Span{uint64(lms.end), uint64(lms.end)})
}

// ---------------------------------------------------------------------------

// MakeToken is a pre-defined action which wraps a scanned match into a token.
func MakeToken(typ nfatok.TokType) lexmachine.Action {
	return func(s *lexmachine.Scanner, m *machines.Match) (interface{}, error) {
		return s.Token(int(typ), string(m.Bytes), m), nil
	}
}
