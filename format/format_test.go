package format

import (
	"bytes"
	"testing"

	"github.com/dhamidi/kombu"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestResults(t *testing.T) {
	rs := []kombu.Result[int]{
		{Value: 3, Rest: "x"},
		{Value: 0, Rest: "1+2x"},
	}

	got := Results(rs)

	require.Len(t, got, 2)
	assert.Equal(t, Result{Value: 3, Rest: "x"}, got[0])
	assert.Equal(t, Result{Value: 0, Rest: "1+2x"}, got[1])
}

func TestJSONEncoder(t *testing.T) {
	t.Run("results with remainder", func(t *testing.T) {
		var buf bytes.Buffer
		enc := NewJSONEncoder(&buf)

		err := enc.Encode([]Result{{Value: 3, Rest: "x"}})

		require.NoError(t, err)
		assert.JSONEq(t, `{
			"count": 1,
			"results": [{"value": 3, "rest": "x"}]
		}`, buf.String())
	})

	t.Run("failed parse encodes as empty list", func(t *testing.T) {
		var buf bytes.Buffer
		enc := NewJSONEncoder(&buf)

		err := enc.Encode(nil)

		require.NoError(t, err)
		assert.JSONEq(t, `{"count": 0, "results": []}`, buf.String())
	})
}

func TestTextEncoder(t *testing.T) {
	t.Run("one line per result", func(t *testing.T) {
		var buf bytes.Buffer
		enc := NewTextEncoder(&buf)

		err := enc.Encode([]Result{
			{Value: 3, Rest: ""},
			{Value: 0, Rest: "junk"},
		})

		require.NoError(t, err)
		assert.Equal(t, "1: 3 rest=\"\"\n2: 0 rest=\"junk\"\n", buf.String())
	})

	t.Run("failed parse", func(t *testing.T) {
		var buf bytes.Buffer
		enc := NewTextEncoder(&buf)

		err := enc.Encode(nil)

		require.NoError(t, err)
		assert.Equal(t, "no parse\n", buf.String())
	})
}
