package diagnostic

import (
	"errors"
	"fmt"
	"go/token"
	"strings"

	"newtype-generator/internal/common"
)

// Diagnostic codes.
const (
	CodeSyntax        = "syntax"         // delimiters, argument count
	CodeBadIdent      = "bad-ident"      // name or field is not a usable Go identifier
	CodeBadType       = "bad-type"       // underlying type is not a Go type expression
	CodeBadVisibility = "bad-visibility" // unknown visibility qualifier
	CodeAccessorForm  = "accessor-form"  // accessor style used with extra arguments
	CodeDuplicateType = "duplicate-type" // two invocations declare the same type
	CodeUnknownType   = "unknown-type"   // underlying type does not resolve
	CodeFieldClash    = "field-clash"    // field name collides with a generated method
	CodeRenamed       = "renamed"        // identifier case changed to match visibility
)

// Diagnostics holds all diagnostic information from a generator run.
type Diagnostics struct {
	Errors   []Diagnostic
	Warnings []Diagnostic
}

// Diagnostic represents a single diagnostic message.
type Diagnostic struct {
	// Severity of the diagnostic.
	Severity DiagnosticSeverity
	// Code is a unique identifier for this type of diagnostic.
	Code string
	// Message is the human-readable description.
	Message string
	// Pos is where the invocation was written. Zero if unknown.
	Pos token.Position
	// Subject is the invocation text this relates to (if any).
	Subject string
	// Suggestions are potential fixes or alternatives.
	Suggestions []string
}

// DiagnosticSeverity represents the severity level of a diagnostic.
type DiagnosticSeverity int

const (
	DiagnosticWarning DiagnosticSeverity = iota + 1
	DiagnosticError
)

// String returns a human-readable severity name.
func (s DiagnosticSeverity) String() string {
	switch s {
	case DiagnosticWarning:
		return "warning"
	case DiagnosticError:
		return "error"
	default:
		return common.UnknownStr
	}
}

// AddError adds an error diagnostic and returns it so callers can attach
// suggestions.
func (d *Diagnostics) AddError(code, message string, pos token.Position, subject string) *Diagnostic {
	d.Errors = append(d.Errors, Diagnostic{
		Severity: DiagnosticError,
		Code:     code,
		Message:  message,
		Pos:      pos,
		Subject:  subject,
	})

	return &d.Errors[len(d.Errors)-1]
}

// AddWarning adds a warning diagnostic.
func (d *Diagnostics) AddWarning(code, message string, pos token.Position, subject string) *Diagnostic {
	d.Warnings = append(d.Warnings, Diagnostic{
		Severity: DiagnosticWarning,
		Code:     code,
		Message:  message,
		Pos:      pos,
		Subject:  subject,
	})

	return &d.Warnings[len(d.Warnings)-1]
}

// Add appends an already built diagnostic according to its severity.
func (d *Diagnostics) Add(diag Diagnostic) {
	if diag.Severity == DiagnosticWarning {
		d.Warnings = append(d.Warnings, diag)
		return
	}

	diag.Severity = DiagnosticError
	d.Errors = append(d.Errors, diag)
}

// Suggest appends a suggestion to the diagnostic.
func (d *Diagnostic) Suggest(s string) *Diagnostic {
	d.Suggestions = append(d.Suggestions, s)
	return d
}

// HasErrors returns true if there are any error diagnostics.
func (d *Diagnostics) HasErrors() bool {
	return !common.IsEmpty(d.Errors)
}

// Merge merges another Diagnostics instance into this one.
func (d *Diagnostics) Merge(other Diagnostics) {
	d.Errors = append(d.Errors, other.Errors...)
	d.Warnings = append(d.Warnings, other.Warnings...)
}

// Error returns a combined error from all error diagnostics, or nil if valid.
// Each diagnostic is one line so the output reads like compiler errors.
func (d *Diagnostics) Error() error {
	if !d.HasErrors() {
		return nil
	}

	errs := make([]error, 0, len(d.Errors))
	for _, e := range d.Errors {
		errs = append(errs, errors.New(e.String()))
	}

	return errors.Join(errs...)
}

// String returns a formatted diagnostic string:
//
//	file.go:12:1: [syntax] message (subject); did you mean: pub?
func (d Diagnostic) String() string {
	var sb strings.Builder

	if d.Pos.IsValid() {
		sb.WriteString(d.Pos.String())
		sb.WriteString(": ")
	} else if d.Pos.Filename != "" {
		sb.WriteString(d.Pos.Filename)
		sb.WriteString(": ")
	}

	if d.Code != "" {
		fmt.Fprintf(&sb, "[%s] ", d.Code)
	}

	sb.WriteString(d.Message)

	if d.Subject != "" {
		fmt.Fprintf(&sb, " (%s)", d.Subject)
	}

	if len(d.Suggestions) > 0 {
		sb.WriteString("; did you mean: ")
		sb.WriteString(strings.Join(d.Suggestions, ", "))
		sb.WriteString("?")
	}

	return sb.String()
}
