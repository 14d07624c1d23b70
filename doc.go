/*
Package nfatok is a tokenizer driven by a small NFA byte-code.

A program of automaton instructions (CHAR, MATCH, JMP, SPLIT) is simulated
in the tradition of Thompson and Pike: all live automaton states advance in
lock-step over the input, one character at a time, without backtracking.
The input is partitioned into maximal-munch tokens, each tagged with the
program counter of the MATCH instruction that recognized it. Package
structure is as follows:

■ program: Package program holds the instruction model and the parser for
the textual program format.

■ vm: Package vm implements the thread scheduler, i.e. the simulation of a
program over an input text.

■ scanner: Package scanner defines a tokenizer interface and adapts the VM to
it. Sub-package lexmach provides a reference scanner built with lexmachine.

■ driver: Package driver wraps parsing and simulation into a single call,
printing tokens as they are recognized.

The base package contains data types which are used throughout all the other packages.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>

*/
package nfatok
