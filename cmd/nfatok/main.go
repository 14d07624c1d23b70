package main

import (
	"flag"
	"fmt"
	"io/ioutil"
	"os"
	"strings"

	"github.com/chzyer/readline"
	"github.com/npillmayer/nfatok/driver"
	"github.com/npillmayer/nfatok/program"
	"github.com/pterm/pterm"

	"github.com/npillmayer/schuko/gtrace"
	"github.com/npillmayer/schuko/tracing"
	"github.com/npillmayer/schuko/tracing/gologadapter"
)

/*
License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>

*/

// tracer traces with key 'nfatok.cli'
func tracer() tracing.Trace {
	return tracing.Select("nfatok.cli")
}

// all trace keys of the module, set to the user supplied level
var traceKeys = []string{
	"nfatok.cli",
	"nfatok.program",
	"nfatok.vm",
	"nfatok.scanner",
	"nfatok.driver",
}

// main() reads an NFA program from a file and tokenizes the input given as
// arguments (or stdin, if no arguments are given). Tokens are printed to
// stdout, one per line. The exit status is 0 if the input has been
// tokenized completely, 1 otherwise.
//
// With flag -i, nfatok starts an interactive loop, tokenizing every line
// entered.
//
func main() {
	// set up logging
	initDisplay()
	gtrace.SyntaxTracer = gologadapter.New()
	tlevel := flag.String("trace", "Error", "Trace level [Debug|Info|Error]")
	progf := flag.String("program", "", "NFA program file")
	dump := flag.Bool("dump", false, "Print the program listing")
	interactive := flag.Bool("i", false, "Tokenize lines interactively")
	flag.Parse()
	setTraceLevel(tracing.TraceLevelFromString(*tlevel))
	//
	if *progf == "" {
		pterm.Error.Println("no program file given, use -program")
		os.Exit(driver.Failure)
	}
	text, err := ioutil.ReadFile(*progf)
	if err != nil {
		pterm.Error.Println(err.Error())
		os.Exit(driver.Failure)
	}
	if *dump || *interactive {
		prog, err := program.Parse(string(text))
		if err != nil {
			fmt.Fprintln(os.Stderr, err)
			os.Exit(driver.Failure)
		}
		if *dump {
			dumpProgram(prog)
		}
		if *interactive {
			repl(prog)
			return
		}
	}
	input, err := readInput(flag.Args())
	if err != nil {
		pterm.Error.Println(err.Error())
		os.Exit(driver.Failure)
	}
	tracer().Infof("Input is %q", input)
	conf := driver.Config{Program: string(text), Input: input}
	os.Exit(driver.Tokenize(conf, os.Stdout, os.Stderr))
}

// We use pterm for moderately fancy output.
func initDisplay() {
	pterm.EnableDebugMessages()
	pterm.Info.Prefix = pterm.Prefix{
		Text:  "  >>",
		Style: pterm.NewStyle(pterm.BgCyan, pterm.FgBlack),
	}
	pterm.Error.Prefix = pterm.Prefix{
		Text:  "  Error",
		Style: pterm.NewStyle(pterm.BgRed, pterm.FgBlack),
	}
}

func setTraceLevel(level tracing.TraceLevel) {
	for _, key := range traceKeys {
		tracing.Select(key).SetTraceLevel(level)
	}
}

func readInput(args []string) (string, error) {
	if len(args) > 0 {
		return strings.Join(args, " "), nil
	}
	b, err := ioutil.ReadAll(os.Stdin)
	if err != nil {
		return "", err
	}
	return string(b), nil
}

// repl tokenizes every line entered, until <ctrl>D.
func repl(prog *program.Program) {
	rl, err := readline.New("nfatok> ")
	if err != nil {
		tracer().Errorf(err.Error())
		os.Exit(3)
	}
	defer rl.Close()
	pterm.Info.Println("Quit with <ctrl>D")
	for {
		line, err := rl.Readline()
		if err != nil { // io.EOF
			break
		}
		if driver.Run(prog, line, os.Stdout) == driver.Success {
			pterm.Info.Println("accepted")
		} else {
			pterm.Error.Println("input not recognized completely")
		}
	}
	println("Good bye!")
}

// dumpProgram prints the program as a tree, with jump targets as children
// of JMP and SPLIT instructions.
func dumpProgram(prog *program.Program) {
	pterm.Println(fmt.Sprintf("program %s", prog.Fingerprint()))
	ll := pterm.LeveledList{}
	for pc, inst := range prog.Instructions() {
		ll = append(ll, pterm.LeveledListItem{
			Level: 0,
			Text:  fmt.Sprintf("%3d %s", pc, inst),
		})
		switch inst.Op {
		case program.JMP:
			ll = append(ll, pterm.LeveledListItem{Level: 1, Text: fmt.Sprintf("→ %d", inst.X)})
		case program.SPLIT:
			ll = append(ll, pterm.LeveledListItem{Level: 1, Text: fmt.Sprintf("→ %d", inst.X)})
			ll = append(ll, pterm.LeveledListItem{Level: 1, Text: fmt.Sprintf("→ %d", inst.Y)})
		}
	}
	root := pterm.NewTreeFromLeveledList(ll)
	pterm.DefaultTree.WithRoot(root).Render()
}
