package kombu

import (
	"unicode"
	"unicode/utf8"
)

// Satisfy parses a single rune for which pred returns true.
func Satisfy(pred func(rune) bool) Parser[rune] {
	return Bind(Item(), func(c rune) Parser[rune] {
		if pred(c) {
			return Return(c)
		}
		return Zero[rune]()
	})
}

// Char parses exactly the rune c.
func Char(c rune) Parser[rune] {
	return Satisfy(func(x rune) bool { return x == c })
}

// String parses exactly the string s, rune by rune, and succeeds with s.
// A mismatch anywhere fails the whole parse; nothing is consumed on failure.
// The empty string matches trivially.
func String(s string) Parser[string] {
	if s == "" {
		return Return("")
	}
	c, size := utf8.DecodeRuneInString(s)
	rest := s[size:]
	return Bind(Char(c), func(rune) Parser[string] {
		return Bind(String(rest), func(string) Parser[string] {
			return Return(s)
		})
	})
}

// Digit parses a decimal digit '0' through '9'.
func Digit() Parser[rune] {
	return Satisfy(func(c rune) bool { return '0' <= c && c <= '9' })
}

// Lower parses a lowercase letter.
func Lower() Parser[rune] {
	return Satisfy(unicode.IsLower)
}

// Upper parses an uppercase letter.
func Upper() Parser[rune] {
	return Satisfy(unicode.IsUpper)
}

// Letter parses any letter.
func Letter() Parser[rune] {
	return Satisfy(unicode.IsLetter)
}

// AlphaNum parses a letter or digit.
func AlphaNum() Parser[rune] {
	return Satisfy(func(c rune) bool { return unicode.IsLetter(c) || unicode.IsDigit(c) })
}

// Space parses a single whitespace rune.
func Space() Parser[rune] {
	return Satisfy(unicode.IsSpace)
}
