/*
Package driver tokenizes an input text with an NFA program given as text.

Tokenize parses the program, runs it over the input and prints every token as
soon as it has been recognized, one per line:

    <pc>:"<text>"

where <pc> is the PC of the recognizing MATCH instruction and <text> is the
token's text in Go-escaped form (e.g., a newline is printed as \n).

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>

*/
package driver

import (
	"fmt"
	"io"
	"io/ioutil"
	"strconv"

	"github.com/npillmayer/nfatok"
	"github.com/npillmayer/nfatok/program"
	"github.com/npillmayer/nfatok/scanner"
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'nfatok.driver'.
func tracer() tracing.Trace {
	return tracing.Select("nfatok.driver")
}

// Exit status of Tokenize.
const (
	Success = 0 // the input has been tokenized completely
	Failure = 1 // invalid program or unrecognized input
)

// Config pairs a program text with an input text.
type Config struct {
	Program string // NFA program in text form
	Input   string // text to tokenize
}

// Tokenize parses conf.Program and tokenizes conf.Input with it. Tokens are
// written to out as they are recognized. A program parse error is written
// to errOut, and no tokenization is attempted. Either writer may be nil.
//
// Tokenize returns Success if the input has been consumed completely by
// tokens, Failure otherwise. Tokens written before a failure remain valid.
func Tokenize(conf Config, out io.Writer, errOut io.Writer) int {
	if out == nil {
		out = ioutil.Discard
	}
	if errOut == nil {
		errOut = ioutil.Discard
	}
	prog, err := program.Parse(conf.Program)
	if err != nil {
		fmt.Fprintln(errOut, err)
		return Failure
	}
	return Run(prog, conf.Input, out)
}

// Run tokenizes input with an already parsed program, writing tokens to out.
// It returns the same status as Tokenize.
func Run(prog *program.Program, input string, out io.Writer) int {
	tok := scanner.NewNFATokenizer(prog, input)
	tok.SetErrorHandler(func(e error) {
		tracer().Infof("tokenizing stopped: %v", e)
	})
	for token := tok.NextToken(); token.TokType() != scanner.EOF; token = tok.NextToken() {
		fmt.Fprintln(out, Format(token))
	}
	if !tok.Accepted() {
		return Failure
	}
	return Success
}

// Format renders a token as an output line (without line end).
func Format(token nfatok.Token) string {
	return fmt.Sprintf("%d:\"%s\"", token.TokType(), Escape(token.Lexeme()))
}

// Escape returns s in Go-escaped form, without surrounding quotes.
func Escape(s string) string {
	q := strconv.Quote(s)
	return q[1 : len(q)-1]
}
