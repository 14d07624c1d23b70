/*
Package lexmach provides an adapter to use the lexmachine scanner generator as
a scanner.Tokenizer.

For more information on lexmachine, see e.g.
https://hackthology.com/how-to-tokenize-complex-strings-with-lexmachine.html

Lexmachine follows the same tokenization policy as the NFA simulation of
package vm: the longest match wins, and for matches of equal length the rule
added first wins. This makes it a convenient reference when writing NFA
programs by hand. Given a list of rules, each with the token type the NFA
program is expected to produce,

	rules := []lexmach.Rule{
		{Pattern: `ab`, Type: 3},   // MATCH at PC 3
		{Pattern: `a+`, Type: 7},   // MATCH at PC 7
		{Pattern: `b`, Type: 9},    // MATCH at PC 9
	}

clients use `NewLMAdapter` to compile the rules and `Scanner` to create
a tokenizer for a concrete input.

	LM, err := lexmach.NewLMAdapter(rules)
	if err != nil {
		// do error handling
	}
	scan, err := LM.Scanner("aabab")

Tokens are read until EOF. Contrary to lexmachine's default behaviour, the
scanner stops at the first unrecognized character.

________________________________________________________________________________

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>

*/
package lexmach
