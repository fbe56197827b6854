package langsvr

import (
	"strings"
	"unicode/utf16"

	"github.com/dhamidi/kombu/arith"

	protocol "github.com/tliron/glsp/protocol_3_16"
)

// diagnose evaluates every non-blank line of text as an arithmetic
// expression and returns one diagnostic per line that fails. The slice is
// never nil: publishing an empty list is what clears diagnostics a client
// already shows.
func diagnose(text string) []protocol.Diagnostic {
	diags := []protocol.Diagnostic{}

	for i, line := range strings.Split(text, "\n") {
		line = strings.TrimSuffix(line, "\r")
		if strings.TrimSpace(line) == "" {
			continue
		}
		if _, err := arith.Eval(line); err != nil {
			diags = append(diags, lineDiagnostic(i, line, err.Error()))
		}
	}

	return diags
}

func lineDiagnostic(line int, content, message string) protocol.Diagnostic {
	severity := protocol.DiagnosticSeverityError
	source := lsName

	return protocol.Diagnostic{
		Range: protocol.Range{
			Start: protocol.Position{Line: protocol.UInteger(line), Character: 0},
			End:   protocol.Position{Line: protocol.UInteger(line), Character: lineLength(content)},
		},
		Severity: &severity,
		Source:   &source,
		Message:  message,
	}
}

// lineLength is the column just past the last character. Protocol positions
// count UTF-16 code units, not bytes or runes.
func lineLength(line string) protocol.UInteger {
	return protocol.UInteger(len(utf16.Encode([]rune(line))))
}
