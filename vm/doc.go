/*
Package vm simulates NFA programs over an input text.

The simulation is a Pike VM: all live automaton states ("threads") advance in
lock-step, one input character at a time. Epsilon transitions (JMP, SPLIT)
are resolved within the current step, CHAR instructions schedule their
successor for the next step. Every PC is scheduled at most once per step,
keeping the simulation linear in the length of the input.

Tokenization follows the maximal-munch rule: a token ends as soon as no
thread is left alive while a match is pending. The match with the later
end position wins; for matches ending at the same position the lower PC
wins. After a token has been emitted, the automaton is restarted at PC 0
right behind the token.

    scan := vm.NewScan(prog, "aab")
    for token, ok := scan.Next(); ok; token, ok = scan.Next() {
        fmt.Println(token.PC, token.Text)
    }
    if !scan.Accepted() {
        // trailing input has not been recognized
    }

Setting the configuration flag 'nfatok.trace-threads' will trace the thread
list of every step on level Debug.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>

*/
package vm

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'nfatok.vm'.
func tracer() tracing.Trace {
	return tracing.Select("nfatok.vm")
}
