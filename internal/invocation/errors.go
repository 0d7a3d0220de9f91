package invocation

import (
	"fmt"
	"go/token"

	"newtype-generator/internal/diagnostic"
)

// Error is an invocation-shape mismatch: text that does not match any
// supported form.
type Error struct {
	// Code is one of the diagnostic.Code* constants.
	Code string
	// Msg describes what is wrong.
	Msg string
	// Text is the invocation as written.
	Text string
	// Suggestions are likely intended spellings.
	Suggestions []string
}

func (e *Error) Error() string {
	msg := fmt.Sprintf("invalid %s invocation: %s", Keyword, e.Msg)
	if len(e.Suggestions) > 0 {
		msg += fmt.Sprintf(" (did you mean %q?)", e.Suggestions[0])
	}

	return msg
}

// Diagnostic converts the error into a diagnostic at pos.
func (e *Error) Diagnostic(pos token.Position) diagnostic.Diagnostic {
	return diagnostic.Diagnostic{
		Severity:    diagnostic.DiagnosticError,
		Code:        e.Code,
		Message:     e.Msg,
		Pos:         pos,
		Subject:     e.Text,
		Suggestions: e.Suggestions,
	}
}

func errorf(code, text, format string, args ...any) *Error {
	return &Error{Code: code, Text: text, Msg: fmt.Sprintf(format, args...)}
}
