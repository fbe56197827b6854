package kombu

import "unicode/utf8"

// Result is one way of parsing an input: the value produced by the parse and
// the suffix of the input it did not consume.
type Result[T any] struct {
	Value T
	Rest  string
}

// Parser maps an input to the ordered sequence of its possible parses.
// An empty sequence means the parser does not match the input.
type Parser[T any] func(input string) []Result[T]

// Run invokes p on input and returns the raw result sequence.
func Run[T any](p Parser[T], input string) []Result[T] {
	return p(input)
}

// Item parses any single rune. It fails only on empty input.
func Item() Parser[rune] {
	return func(input string) []Result[rune] {
		if input == "" {
			return nil
		}
		c, size := utf8.DecodeRuneInString(input)
		return []Result[rune]{{Value: c, Rest: input[size:]}}
	}
}

// Return succeeds with v without consuming any input.
func Return[T any](v T) Parser[T] {
	return func(input string) []Result[T] {
		return []Result[T]{{Value: v, Rest: input}}
	}
}

// Zero fails on every input. It is the identity for Or.
func Zero[T any]() Parser[T] {
	return func(string) []Result[T] {
		return nil
	}
}

// Bind sequences two parses: it runs p, and for each of p's results feeds
// the value to f and runs the returned parser on that result's remaining
// input. The output keeps p's result order, and within it, the order of
// each inner parser's results. A failure on either side contributes nothing.
func Bind[A, B any](p Parser[A], f func(A) Parser[B]) Parser[B] {
	return func(input string) []Result[B] {
		var out []Result[B]
		for _, r := range p(input) {
			out = append(out, f(r.Value)(r.Rest)...)
		}
		return out
	}
}

// Map runs p and applies f to each value it produces, leaving the remaining
// input untouched. It never turns success into failure or vice versa.
func Map[A, B any](p Parser[A], f func(A) B) Parser[B] {
	return func(input string) []Result[B] {
		var out []Result[B]
		for _, r := range p(input) {
			out = append(out, Result[B]{Value: f(r.Value), Rest: r.Rest})
		}
		return out
	}
}

// Or is biased choice. If p yields any results they are returned as-is and q
// is never consulted, even when p is ambiguous; q runs on the original input
// only when p yields nothing.
func Or[T any](p, q Parser[T]) Parser[T] {
	return func(input string) []Result[T] {
		if rs := p(input); len(rs) > 0 {
			return rs
		}
		return q(input)
	}
}

// And runs both p and q on the same input and concatenates their results,
// p's first. Unlike Or it discards nothing: it exists to keep every
// alternative parse observable.
func And[T any](p, q Parser[T]) Parser[T] {
	return func(input string) []Result[T] {
		var out []Result[T]
		out = append(out, p(input)...)
		return append(out, q(input)...)
	}
}
