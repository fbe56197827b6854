package format

import (
	"fmt"
	"io"
	"strings"
)

// TextEncoder renders result sequences as one line per result.
type TextEncoder struct {
	w       io.Writer
	results []Result
}

func NewTextEncoder(w io.Writer) *TextEncoder {
	return &TextEncoder{w: w}
}

func (e *TextEncoder) Encode(results []Result) error {
	e.results = results
	text, err := e.MarshalText()
	if err != nil {
		return err
	}
	_, err = e.w.Write(text)
	return err
}

func (e *TextEncoder) MarshalText() ([]byte, error) {
	var b strings.Builder
	if len(e.results) == 0 {
		b.WriteString("no parse\n")
		return []byte(b.String()), nil
	}
	for i, r := range e.results {
		fmt.Fprintf(&b, "%d: %v rest=%q\n", i+1, r.Value, r.Rest)
	}
	return []byte(b.String()), nil
}
