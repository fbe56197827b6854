// Package arith evaluates integer arithmetic expressions.
//
// The grammar is the usual one, with left-associative operators and
// parenthesised grouping:
//
//	expr   = term   {("+"|"-") term}
//	term   = factor {("*"|"/") factor}
//	factor = nat | "(" expr ")"
//
// It is built entirely from kombu combinators: each precedence level is one
// Chain1, grouping is a Bracket, and whitespace between tokens is handled by
// the lexeme layer.
package arith

import (
	"fmt"

	"github.com/dhamidi/kombu"
)

// Expr returns the expression parser. The parser is a reusable value; build
// it once and run it as often as needed.
func Expr() kombu.Parser[int] {
	var expr kombu.Parser[int]

	// factor references expr through a closure so the grammar can recurse.
	group := kombu.Bracket(
		kombu.Symbol("("),
		kombu.Parser[int](func(input string) []kombu.Result[int] { return expr(input) }),
		kombu.Symbol(")"),
	)
	factor := kombu.Or(kombu.Token(kombu.Nat()), group)
	term := kombu.Chain1(factor, mulOp())
	expr = kombu.Chain1(term, addOp())

	// Leading whitespace is stripped once; every token eats what follows it.
	return kombu.Bind(kombu.Spaces(), func(string) kombu.Parser[int] { return expr })
}

// Parse runs the expression parser on input and returns the raw result
// sequence. The operator closures fold during parsing, so a division by
// zero surfaces as a runtime panic inside Run; Parse turns it into the
// error return, since callers feed us arbitrary user input and must not
// be killed by it.
func Parse(input string) (results []kombu.Result[int], err error) {
	defer func() {
		if p := recover(); p != nil {
			results = nil
			err = fmt.Errorf("evaluate %q: %v", input, p)
		}
	}()
	return kombu.Run(Expr(), input), nil
}

// Eval parses input as an arithmetic expression and returns its value. It
// fails when nothing parses, when a parse leaves unconsumed input behind, or
// when evaluation itself faults (division by zero).
func Eval(input string) (int, error) {
	results, err := Parse(input)
	if err != nil {
		return 0, err
	}
	for _, r := range results {
		if r.Rest == "" {
			return r.Value, nil
		}
	}
	if len(results) == 0 {
		return 0, fmt.Errorf("parse %q: not an expression", input)
	}
	return 0, fmt.Errorf("parse %q: unexpected input %q", input, results[0].Rest)
}

func addOp() kombu.Parser[func(int, int) int] {
	return kombu.Or(
		op("+", func(a, b int) int { return a + b }),
		op("-", func(a, b int) int { return a - b }),
	)
}

func mulOp() kombu.Parser[func(int, int) int] {
	return kombu.Or(
		op("*", func(a, b int) int { return a * b }),
		op("/", func(a, b int) int { return a / b }),
	)
}

func op(sym string, f func(int, int) int) kombu.Parser[func(int, int) int] {
	return kombu.Map(kombu.Symbol(sym), func(string) func(int, int) int { return f })
}
