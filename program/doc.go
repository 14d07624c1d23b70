/*
Package program holds the instruction model of the NFA byte-code and a parser
for its textual representation.

A program is a line-oriented text, one instruction per line, fields separated
by single spaces:

    <pc> CHAR <X> <Y>             match a code point in [X, Y], then go to pc+1
    <pc> MATCH                    a token has been recognized
    <pc> JMP <target>             epsilon transition to target
    <pc> SPLIT <target1> <target2>  epsilon transitions to both targets

Each <pc> must equal the zero-based position of its line among all non-empty
lines. Example, recognizing one or more 'a':

    0 CHAR 97 97
    1 SPLIT 0 2
    2 MATCH

Parse validates the text and returns an immutable Program. Programs may be
shared between any number of concurrent scans.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>

*/
package program

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'nfatok.program'.
func tracer() tracing.Trace {
	return tracing.Select("nfatok.program")
}
