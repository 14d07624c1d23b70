package lexmach

import (
	"errors"
	"testing"

	"github.com/npillmayer/nfatok"
	"github.com/npillmayer/nfatok/program"
	"github.com/npillmayer/nfatok/scanner"
	"github.com/npillmayer/schuko/tracing/gotestingadapter"
)

// ab | a+ | b, with MATCH instructions at PC 3, 7 and 9
const progABAPlusB = `0 SPLIT 1 4
1 CHAR 97 97
2 CHAR 98 98
3 MATCH
4 SPLIT 5 8
5 CHAR 97 97
6 SPLIT 5 7
7 MATCH
8 CHAR 98 98
9 MATCH`

var rulesABAPlusB = []Rule{
	{Pattern: `ab`, Type: 3},
	{Pattern: `a+`, Type: 7},
	{Pattern: `b`, Type: 9},
}

// [0-9]+ | [a-z]+ | ' ' | [a-z][0-9], with MATCH instructions at PC 3, 7, 9 and 12
const progWords = `0 SPLIT 1 4
1 CHAR 48 57
2 SPLIT 1 3
3 MATCH
4 SPLIT 5 13
5 CHAR 97 122
6 SPLIT 5 7
7 MATCH
8 CHAR 32 32
9 MATCH
10 CHAR 97 122
11 CHAR 48 57
12 MATCH
13 SPLIT 8 10`

var rulesWords = []Rule{
	{Pattern: `[0-9]+`, Type: 3},
	{Pattern: `[a-z]+`, Type: 7},
	{Pattern: `( )`, Type: 9},
	{Pattern: `[a-z][0-9]`, Type: 12},
}

func TestLM(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "nfatok.scanner")
	defer teardown()
	//
	LM, err := NewLMAdapter(rulesABAPlusB)
	if err != nil {
		t.Fatal(err)
	}
	sc, err := LM.Scanner("aababaab")
	if err != nil {
		t.Fatal(err)
	}
	expected := []struct {
		typ    nfatok.TokType
		lexeme string
	}{{7, "aa"}, {9, "b"}, {3, "ab"}, {7, "aa"}, {9, "b"}}
	count := 0
	for token := sc.NextToken(); token.TokType() != scanner.EOF; token = sc.NextToken() {
		t.Logf(" %4d | %15s | @%5d", token.TokType(), token.Lexeme(), token.Span().From())
		if count < len(expected) &&
			(token.TokType() != expected[count].typ || token.Lexeme() != expected[count].lexeme) {
			t.Errorf("expected token #%d to be %d:%q, is %d:%q", count,
				expected[count].typ, expected[count].lexeme, token.TokType(), token.Lexeme())
		}
		count++
	}
	if count != len(expected) {
		t.Errorf("expected %d tokens, have %d", len(expected), count)
	}
}

func TestLMHaltsOnUnconsumedInput(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "nfatok.scanner")
	defer teardown()
	//
	LM, err := NewLMAdapter(rulesWords)
	if err != nil {
		t.Fatal(err)
	}
	sc, _ := LM.Scanner("ab!cd")
	var reported error
	sc.SetErrorHandler(func(e error) { reported = e })
	token := sc.NextToken()
	if token.Lexeme() != "ab" {
		t.Errorf("expected first token to be \"ab\", is %q", token.Lexeme())
	}
	if token = sc.NextToken(); token.TokType() != scanner.EOF {
		t.Errorf("expected scanner to halt, have token %q", token.Lexeme())
	}
	var ui *scanner.UnconsumedInput
	if !errors.As(reported, &ui) || ui.Offset != 2 {
		t.Errorf("expected unconsumed input at offset 2, have %v", reported)
	}
	if token = sc.NextToken(); token.TokType() != scanner.EOF {
		t.Errorf("expected scanner to stay halted")
	}
}

// The NFA programs are expected to tokenize exactly like the equivalent
// lexmachine rules.
func TestNFAMatchesLexmachine(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "nfatok.scanner")
	defer teardown()
	//
	for _, test := range []struct {
		prog   string
		rules  []Rule
		inputs []string
	}{
		{progABAPlusB, rulesABAPlusB, []string{"a", "b", "ab", "aababaab", "bbaab", "aaaa", "abc", "bab"}},
		{progWords, rulesWords, []string{"abc 123", "x9", "x99", "xy9", "a1b2 c3", "hello world", "7up", "ab#"}},
	} {
		prog, err := program.Parse(test.prog)
		if err != nil {
			t.Fatal(err)
		}
		LM, err := NewLMAdapter(test.rules)
		if err != nil {
			t.Fatal(err)
		}
		for _, input := range test.inputs {
			nfa := scanner.NewNFATokenizer(prog, input)
			lms, err := LM.Scanner(input)
			if err != nil {
				t.Fatal(err)
			}
			var nfaErr, lmErr error
			nfa.SetErrorHandler(func(e error) { nfaErr = e })
			lms.SetErrorHandler(func(e error) { lmErr = e })
			for n := 0; ; n++ {
				a, b := nfa.NextToken(), lms.NextToken()
				if a.TokType() != b.TokType() || a.Lexeme() != b.Lexeme() || a.Span() != b.Span() {
					t.Errorf("input %q, token #%d: NFA has %d:%q%v, lexmachine has %d:%q%v", input, n,
						a.TokType(), a.Lexeme(), a.Span(), b.TokType(), b.Lexeme(), b.Span())
					break
				}
				if a.TokType() == scanner.EOF {
					break
				}
			}
			if (nfaErr == nil) != (lmErr == nil) {
				t.Errorf("input %q: NFA reports %v, lexmachine reports %v", input, nfaErr, lmErr)
			}
			if nfa.Accepted() != (nfaErr == nil) {
				t.Errorf("input %q: accepted=%v, but error is %v", input, nfa.Accepted(), nfaErr)
			}
		}
	}
}
