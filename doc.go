// Package kombu is a backtracking parser-combinator library.
//
// # Overview
//
// A parser is an ordinary Go value: a function from the remaining input to
// the sequence of ways that input can be parsed. Parsers for a whole grammar
// are built up by combining small parsers with the functions in this package
// instead of hand-writing a recursive-descent parser.
//
//	type Parser[T any] func(input string) []Result[T]
//
//	type Result[T any] struct {
//	    Value T      // the semantic result of one successful parse
//	    Rest  string // the unconsumed suffix of the input
//	}
//
// An empty result sequence means the parse failed. A sequence with more than
// one entry means the parse was ambiguous; entries are ordered with the
// leftmost alternative first. Failure is never an error value or a panic,
// only an empty sequence.
//
// # Building Parsers
//
// The primitives consume at most one element of input:
//
//	Item()     // any single rune
//	Return(v)  // succeed with v, consume nothing
//	Zero[T]()  // always fail
//
// Combinators build larger parsers out of smaller ones:
//
//	Bind(p, f) // run p, feed each value into f, run the parser f returns
//	Map(p, f)  // run p, transform each value with f
//	Or(p, q)   // biased choice: q runs only when p yields no results
//	And(p, q)  // both alternatives: p's results followed by q's
//
// On top of these sit the text parsers (Satisfy, Char, String, the character
// classes), the repetition combinators (Many, Many1, SepBy, SepBy1), the
// operator-chaining combinators (Chain, Chain1, ChainRight, ChainRight1,
// Bracket), and a small lexeme layer (Spaces, Token, Symbol, Ident, Nat,
// Int).
//
// # Example
//
// A parser for comma-separated naturals:
//
//	nats := kombu.SepBy(kombu.Nat(), kombu.Char(','))
//	for _, r := range kombu.Run(nats, "10,20,30") {
//	    fmt.Println(r.Value, r.Rest) // [10 20 30] ""
//	}
//
// See the arith package for a complete expression grammar built this way.
//
// # Semantics
//
// Or is first-match-wins: when the left parser yields at least one result,
// that entire result sequence is the answer and the right parser never runs.
// And is the opposite: it always runs both sides and concatenates their
// results, so ambiguity stays observable. Many and Chain are greedy; their
// "zero matches" fallback applies only when the repeated parser fails
// outright on the first attempt.
//
// Parsers are pure values. They never mutate their input, hold no state
// between runs, and return identical results for identical inputs, so a
// parser built once may be reused from any number of goroutines.
//
// # Termination
//
// The recursive combinators terminate because every recursion step consumes
// input. That is a precondition on the argument parser: Many(p), SepBy1(p,
// sep) and Chain1(p, op) do not terminate when p (or sep, or op) can succeed
// without consuming anything, e.g. Many(Return(0)) or Many(Many(p)). Keep
// zero-width parsers out of repetition.
package kombu
