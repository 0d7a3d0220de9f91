package invocation

import (
	"go/token"
	"strings"
)

//go:generate go tool stringer -type=Form,Style,Visibility,Delim -linecomment -output=enum_string.go

// Keyword starts every invocation.
const Keyword = "newtype"

// AccessorSuffix selects the accessor style: newtype.accessor(...).
const AccessorSuffix = "accessor"

// DefaultField is the field name used when an invocation does not name one.
const DefaultField = "v"

// Form identifies which optional arguments an invocation carries.
type Form int

const (
	FormA Form = iota // A
	FormB             // B
	FormC             // C
	FormD             // D
)

// Style selects the shape of the generated type.
type Style int

const (
	// StyleNamed stores the value in a named field that callers use directly.
	StyleNamed Style = iota // named
	// StyleAccessor hides the field behind a constructor and a Get method.
	StyleAccessor // accessor
)

// Visibility is the requested visibility of the generated type and field.
type Visibility int

const (
	VisibilityDefault Visibility = iota // default
	VisibilityPrivate                   // priv
	VisibilityPublic                    // pub
)

// Exported reports whether identifiers with this visibility are exported.
func (v Visibility) Exported() bool {
	return v == VisibilityPublic
}

// visibilityKeywords maps qualifier spellings to their Visibility.
var visibilityKeywords = map[string]Visibility{
	VisibilityPrivate.String(): VisibilityPrivate,
	VisibilityPublic.String():  VisibilityPublic,
}

// VisibilityKeywords returns the accepted qualifier spellings, sorted.
func VisibilityKeywords() []string {
	return []string{VisibilityPrivate.String(), VisibilityPublic.String()}
}

// LookupVisibility returns the Visibility spelled by word.
func LookupVisibility(word string) (Visibility, bool) {
	v, ok := visibilityKeywords[word]
	return v, ok
}

// Delim is the delimiter pair around the argument list.
type Delim int

const (
	DelimParen Delim = iota // ()
	DelimBrace              // {}
)

// Open returns the opening delimiter.
func (d Delim) Open() byte {
	return d.String()[0]
}

// Close returns the closing delimiter.
func (d Delim) Close() byte {
	return d.String()[1]
}

// Invocation is one parsed newtype invocation.
type Invocation struct {
	// Name is the type name as written.
	Name string
	// Type is the underlying type expression as written, whitespace trimmed.
	Type string
	// Field is the access field name as written. Empty means DefaultField.
	Field string
	// Visibility is the qualifier, VisibilityDefault when omitted.
	Visibility Visibility
	// Explicit is true when a visibility qualifier was written.
	Explicit bool
	// Delim records which delimiters were used.
	Delim Delim
	// Style is the generated shape.
	Style Style
	// Pos is where the invocation was written, if known.
	Pos token.Position
}

// Form reports which of the four argument shapes the invocation uses.
func (inv Invocation) Form() Form {
	switch {
	case inv.Field != "" && inv.Explicit:
		return FormD
	case inv.Field != "":
		return FormC
	case inv.Explicit:
		return FormB
	default:
		return FormA
	}
}

// FieldName returns the field name as written, or DefaultField.
func (inv Invocation) FieldName() string {
	if inv.Field == "" {
		return DefaultField
	}

	return inv.Field
}

// String returns the canonical spelling of the invocation. It always uses
// parentheses, so two invocations that differ only in delimiters print the
// same.
func (inv Invocation) String() string {
	var sb strings.Builder

	sb.WriteString(Keyword)

	if inv.Style == StyleAccessor {
		sb.WriteString(".")
		sb.WriteString(AccessorSuffix)
	}

	args := []string{inv.Name, inv.Type}
	if inv.Field != "" {
		args = append(args, inv.Field)
	}

	if inv.Explicit {
		args = append(args, inv.Visibility.String())
	}

	sb.WriteByte('(')
	sb.WriteString(strings.Join(args, ", "))
	sb.WriteByte(')')

	return sb.String()
}
