package manifest

import (
	"errors"
	"fmt"
	"go/token"
	"path/filepath"
	"strings"

	"newtype-generator/internal/diagnostic"
	"newtype-generator/internal/invocation"
	"newtype-generator/internal/match"
)

var styles = []string{invocation.StyleNamed.String(), invocation.StyleAccessor.String()}

// Validate checks the manifest header and converts every entry into an
// invocation. Entries that fail to parse are reported and skipped, so the
// returned invocations are always well formed.
func Validate(m *Manifest) ([]invocation.Invocation, diagnostic.Diagnostics) {
	var diags diagnostic.Diagnostics

	if m == nil {
		diags.AddError(diagnostic.CodeSyntax, "manifest is nil", token.Position{}, "")
		return nil, diags
	}

	file := token.Position{Filename: m.Path}

	if m.Version != CurrentVersion {
		diags.AddError(diagnostic.CodeSyntax,
			fmt.Sprintf("unsupported manifest version %q, want %q", m.Version, CurrentVersion), file, "")
	}

	if !token.IsIdentifier(m.Package) || m.Package == "_" {
		diags.AddError(diagnostic.CodeBadIdent,
			fmt.Sprintf("package %q is not a valid package name", m.Package), file, "")
	}

	if filepath.Ext(m.Output) != ".go" {
		diags.AddError(diagnostic.CodeSyntax,
			fmt.Sprintf("output %q must be a .go file", m.Output), file, "")
	}

	seenImports := make(map[string]string, len(m.Imports))

	for _, imp := range m.Imports {
		name := imp.LocalName()
		if imp.Path == "" || !token.IsIdentifier(name) {
			diags.AddError(diagnostic.CodeSyntax,
				fmt.Sprintf("invalid import %q (name %q)", imp.Path, name), file, "")

			continue
		}

		if prev, ok := seenImports[name]; ok && prev != imp.Path {
			diags.AddError(diagnostic.CodeSyntax,
				fmt.Sprintf("import name %q used for both %q and %q", name, prev, imp.Path), file, "")
		}

		seenImports[name] = imp.Path
	}

	if len(m.Types) == 0 {
		diags.AddWarning(diagnostic.CodeSyntax, "manifest declares no types", file, "")
	}

	invs := make([]invocation.Invocation, 0, len(m.Types))

	for _, e := range m.Types {
		pos := e.Position(m.Path)

		inv, err := e.Invocation(pos)
		if err != nil {
			var ie *invocation.Error
			if errors.As(err, &ie) {
				diags.Add(ie.Diagnostic(pos))
			} else {
				diags.AddError(diagnostic.CodeSyntax, err.Error(), pos, e.Text)
			}

			continue
		}

		invs = append(invs, inv)
	}

	return invs, diags
}

// Invocation converts the entry into an invocation at pos. Structured
// entries are spelled out as an invocation string first, so both kinds of
// entry obey exactly the same rules.
func (e Entry) Invocation(pos token.Position) (invocation.Invocation, error) {
	if e.IsText() {
		return invocation.ParseAt(e.Text, pos)
	}

	text, err := e.spell()
	if err != nil {
		return invocation.Invocation{Pos: pos}, err
	}

	return invocation.ParseAt(text, pos)
}

// spell renders a structured entry as an invocation string.
func (e Entry) spell() (string, error) {
	if e.Name == "" || e.Type == "" {
		return "", &invocation.Error{
			Code: diagnostic.CodeSyntax,
			Msg:  "structured entry needs both name and type",
			Text: fmt.Sprintf("name: %q, type: %q", e.Name, e.Type),
		}
	}

	keyword := invocation.Keyword

	switch e.Style {
	case "", invocation.StyleNamed.String():
	case invocation.StyleAccessor.String():
		keyword += "." + invocation.AccessorSuffix
	default:
		return "", &invocation.Error{
			Code:        diagnostic.CodeSyntax,
			Msg:         fmt.Sprintf("unknown style %q, want one of %s", e.Style, strings.Join(styles, ", ")),
			Text:        e.Style,
			Suggestions: match.Suggest(e.Style, styles),
		}
	}

	args := []string{e.Name, e.Type}
	if e.Field != "" {
		args = append(args, e.Field)
	}

	if e.Visibility != "" {
		// Without a field a bad qualifier would read as a field name.
		if _, ok := invocation.LookupVisibility(e.Visibility); !ok {
			return "", &invocation.Error{
				Code: diagnostic.CodeBadVisibility,
				Msg: fmt.Sprintf("unknown visibility %q, want one of %s",
					e.Visibility, strings.Join(invocation.VisibilityKeywords(), ", ")),
				Text:        e.Visibility,
				Suggestions: match.Suggest(e.Visibility, invocation.VisibilityKeywords()),
			}
		}

		args = append(args, e.Visibility)
	}

	return keyword + "(" + strings.Join(args, ", ") + ")", nil
}
