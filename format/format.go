// Package format renders parse result sequences for display.
package format

import (
	"encoding"

	"github.com/dhamidi/kombu"
)

// Result is one parse result as the encoders see it: the parsed value and
// the input left unconsumed after it.
type Result struct {
	Value any    `json:"value"`
	Rest  string `json:"rest"`
}

// Encoder renders a result sequence to its output writer. An empty sequence
// is a failed parse and is rendered as such, not an error.
type Encoder interface {
	encoding.TextMarshaler
	Encode(results []Result) error
}

// Results converts a typed kombu result sequence for encoding, preserving
// order.
func Results[T any](rs []kombu.Result[T]) []Result {
	out := make([]Result, len(rs))
	for i, r := range rs {
		out[i] = Result{Value: r.Value, Rest: r.Rest}
	}
	return out
}
