package format

import (
	"encoding/json"
	"io"
)

// JSONEncoder renders result sequences as indented JSON.
type JSONEncoder struct {
	w       io.Writer
	results []Result
}

func NewJSONEncoder(w io.Writer) *JSONEncoder {
	return &JSONEncoder{w: w}
}

// Encode writes the sequence as indented JSON terminated by a newline.
func (e *JSONEncoder) Encode(results []Result) error {
	e.results = results
	text, err := e.MarshalText()
	if err != nil {
		return err
	}
	_, err = e.w.Write(append(text, '\n'))
	return err
}

func (e *JSONEncoder) MarshalText() ([]byte, error) {
	data := jsonRun{
		Count:   len(e.results),
		Results: e.results,
	}
	if data.Results == nil {
		// A failed parse encodes as an empty list, not null.
		data.Results = []Result{}
	}
	return json.MarshalIndent(data, "", "  ")
}

type jsonRun struct {
	Count   int      `json:"count"`
	Results []Result `json:"results"`
}
