package kombu

import "math"

// Spaces parses zero or more whitespace runes and returns them as a string.
// It never fails.
func Spaces() Parser[string] {
	return Map(Many(Space()), func(cs []rune) string { return string(cs) })
}

// Token runs p and discards any whitespace after it. Combined with a single
// leading Spaces, this lets a grammar ignore whitespace between tokens.
func Token[T any](p Parser[T]) Parser[T] {
	return Bind(p, func(v T) Parser[T] {
		return Bind(Spaces(), func(string) Parser[T] {
			return Return(v)
		})
	})
}

// Symbol parses the literal s as a token, discarding trailing whitespace.
func Symbol(s string) Parser[string] {
	return Token(String(s))
}

// Ident parses an identifier: a letter followed by any number of letters
// and digits.
func Ident() Parser[string] {
	return Bind(Letter(), func(c rune) Parser[string] {
		return Map(Many(AlphaNum()), func(cs []rune) string {
			return string(cons(c, cs))
		})
	})
}

// Nat parses a natural number: one or more decimal digits, as an int. A
// numeral too large for int fails the parse rather than wrapping around.
func Nat() Parser[int] {
	return Bind(Many1(Digit()), func(ds []rune) Parser[int] {
		n := 0
		for _, d := range ds {
			if n > (math.MaxInt-int(d-'0'))/10 {
				return Zero[int]()
			}
			n = n*10 + int(d-'0')
		}
		return Return(n)
	})
}

// Int parses an integer: an optional leading '-' followed by a natural
// number.
func Int() Parser[int] {
	neg := Bind(Char('-'), func(rune) Parser[int] {
		return Map(Nat(), func(n int) int { return -n })
	})
	return Or(neg, Nat())
}
