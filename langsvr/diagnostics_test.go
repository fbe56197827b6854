package langsvr

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	protocol "github.com/tliron/glsp/protocol_3_16"
)

func TestDiagnose(t *testing.T) {
	t.Run("clean document has no diagnostics", func(t *testing.T) {
		diags := diagnose("1+2\n2*(3+4)\n")
		require.NotNil(t, diags, "an empty list clears old diagnostics, nil does not")
		assert.Empty(t, diags)
	})

	t.Run("blank lines are skipped", func(t *testing.T) {
		assert.Empty(t, diagnose("\n   \n\t\n"))
	})

	t.Run("empty document", func(t *testing.T) {
		diags := diagnose("")
		require.NotNil(t, diags)
		assert.Empty(t, diags)
	})

	t.Run("one diagnostic per broken line", func(t *testing.T) {
		diags := diagnose("1+2\n2+\nx\n3*3\n")

		require.Len(t, diags, 2)
		assert.Equal(t, protocol.UInteger(1), diags[0].Range.Start.Line)
		assert.Equal(t, protocol.UInteger(2), diags[1].Range.Start.Line)
	})

	t.Run("range spans the whole line", func(t *testing.T) {
		diags := diagnose("10 +")

		require.Len(t, diags, 1)
		assert.Equal(t, protocol.UInteger(0), diags[0].Range.Start.Character)
		assert.Equal(t, protocol.UInteger(4), diags[0].Range.End.Character)
	})

	t.Run("diagnostics carry severity, source and message", func(t *testing.T) {
		diags := diagnose("nonsense")

		require.Len(t, diags, 1)
		require.NotNil(t, diags[0].Severity)
		assert.Equal(t, protocol.DiagnosticSeverityError, *diags[0].Severity)
		require.NotNil(t, diags[0].Source)
		assert.Equal(t, lsName, *diags[0].Source)
		assert.NotEmpty(t, diags[0].Message)
	})

	t.Run("division by zero is a diagnostic, not a crash", func(t *testing.T) {
		diags := diagnose("1+1\n1/0\n")

		require.Len(t, diags, 1)
		assert.Equal(t, protocol.UInteger(1), diags[0].Range.Start.Line)
		assert.Contains(t, diags[0].Message, "divide by zero")
	})

	t.Run("windows line endings", func(t *testing.T) {
		diags := diagnose("1+1\r\noops\r\n")

		require.Len(t, diags, 1)
		assert.Equal(t, protocol.UInteger(1), diags[0].Range.Start.Line)
		assert.Equal(t, protocol.UInteger(4), diags[0].Range.End.Character, "the \\r is not part of the line")
	})
}
