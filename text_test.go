package kombu

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSatisfy(t *testing.T) {
	isA := Satisfy(func(c rune) bool { return c == 'a' })

	tests := map[string]struct {
		input string
		want  []Result[rune]
	}{
		"predicate holds": {
			input: "abc",
			want:  []Result[rune]{{Value: 'a', Rest: "bc"}},
		},
		"predicate fails": {
			input: "bcd",
			want:  nil,
		},
		"empty input": {
			input: "",
			want:  nil,
		},
	}

	for name, test := range tests {
		t.Run(name, func(t *testing.T) {
			assert.Equal(t, test.want, Run(isA, test.input))
		})
	}
}

func TestChar(t *testing.T) {
	tests := map[string]struct {
		char  rune
		input string
		want  []Result[rune]
	}{
		"matching char": {
			char:  'a',
			input: "abc",
			want:  []Result[rune]{{Value: 'a', Rest: "bc"}},
		},
		"wrong char": {
			char:  'a',
			input: "xbc",
			want:  nil,
		},
		"empty input": {
			char:  'a',
			input: "",
			want:  nil,
		},
		"multibyte char": {
			char:  'é',
			input: "éx",
			want:  []Result[rune]{{Value: 'é', Rest: "x"}},
		},
	}

	for name, test := range tests {
		t.Run(name, func(t *testing.T) {
			assert.Equal(t, test.want, Run(Char(test.char), test.input))
		})
	}
}

func TestString(t *testing.T) {
	tests := map[string]struct {
		pattern string
		input   string
		want    []Result[string]
	}{
		"full match with remainder": {
			pattern: "ab",
			input:   "abc",
			want:    []Result[string]{{Value: "ab", Rest: "c"}},
		},
		"mismatch on first char": {
			pattern: "ab",
			input:   "xbc",
			want:    nil,
		},
		"mismatch in the middle": {
			pattern: "abc",
			input:   "abx",
			want:    nil,
		},
		"input too short": {
			pattern: "ab",
			input:   "a",
			want:    nil,
		},
		"empty pattern matches trivially": {
			pattern: "",
			input:   "abc",
			want:    []Result[string]{{Value: "", Rest: "abc"}},
		},
		"exact match consumes everything": {
			pattern: "hello",
			input:   "hello",
			want:    []Result[string]{{Value: "hello", Rest: ""}},
		},
		"multibyte pattern": {
			pattern: "héllo",
			input:   "héllo!",
			want:    []Result[string]{{Value: "héllo", Rest: "!"}},
		},
	}

	for name, test := range tests {
		t.Run(name, func(t *testing.T) {
			assert.Equal(t, test.want, Run(String(test.pattern), test.input))
		})
	}
}

func TestCharacterClasses(t *testing.T) {
	tests := map[string]struct {
		p      Parser[rune]
		accept string
		reject string
	}{
		"digit":    {p: Digit(), accept: "0159", reject: "aZ -"},
		"lower":    {p: Lower(), accept: "az", reject: "AZ09 "},
		"upper":    {p: Upper(), accept: "AZ", reject: "az09 "},
		"letter":   {p: Letter(), accept: "azAZñ", reject: "09 ;"},
		"alphanum": {p: AlphaNum(), accept: "aZ09", reject: " ;-"},
		"space":    {p: Space(), accept: " \t\n", reject: "a0-"},
	}

	for name, test := range tests {
		t.Run(name, func(t *testing.T) {
			for _, c := range test.accept {
				want := []Result[rune]{{Value: c, Rest: "rest"}}
				assert.Equal(t, want, Run(test.p, string(c)+"rest"), "should accept %q", c)
			}
			for _, c := range test.reject {
				assert.Empty(t, Run(test.p, string(c)+"rest"), "should reject %q", c)
			}
		})
	}
}
