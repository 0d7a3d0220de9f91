package invocation

import (
	"go/ast"
	"go/parser"
	"go/token"
	"go/types"
	"strings"

	"newtype-generator/internal/diagnostic"
	"newtype-generator/internal/match"
)

// Parse parses a single invocation such as "newtype(meters, float64, pub)".
// The returned error, if any, is an *Error.
func Parse(text string) (Invocation, error) {
	return ParseAt(text, token.Position{})
}

// ParseAt is like Parse and records pos as the invocation position.
func ParseAt(text string, pos token.Position) (Invocation, error) {
	inv := Invocation{Pos: pos}
	src := strings.TrimSpace(text)

	rest, ok := strings.CutPrefix(src, Keyword)
	if !ok {
		return inv, errorf(diagnostic.CodeSyntax, src, "must start with %q", Keyword)
	}

	// Optional style selector: newtype.accessor(...)
	if after, ok := strings.CutPrefix(rest, "."); ok {
		word, tail := leadingIdent(after)

		if word != AccessorSuffix {
			err := errorf(diagnostic.CodeSyntax, src, "unknown style %q", word)
			err.Suggestions = match.Suggest(word, []string{AccessorSuffix})

			return inv, err
		}

		inv.Style = StyleAccessor
		rest = tail
	}

	rest = strings.TrimLeft(rest, " \t")

	body, delim, err := unwrap(rest)
	if err != nil {
		err.Text = src
		return inv, err
	}

	inv.Delim = delim

	args, err := splitArgs(body)
	if err != nil {
		err.Text = src
		return inv, err
	}

	if err := inv.bind(args); err != nil {
		err.Text = src
		return inv, err
	}

	return inv, nil
}

// bind assigns the split arguments to the invocation fields, choosing the
// form the same way the argument shapes are listed: visibility before field.
func (inv *Invocation) bind(args []string) *Error {
	if len(args) < 2 || len(args) > 4 {
		return errorf(diagnostic.CodeSyntax, "", "expected 2 to 4 arguments, got %d", len(args))
	}

	if inv.Style == StyleAccessor && len(args) != 2 {
		return errorf(diagnostic.CodeAccessorForm, "",
			"%s.%s takes exactly a name and a type, got %d arguments", Keyword, AccessorSuffix, len(args))
	}

	if err := checkIdent("type name", args[0]); err != nil {
		return err
	}

	if err := CheckTypeExpr(args[1]); err != nil {
		return err
	}

	inv.Name = args[0]
	inv.Type = args[1]

	switch len(args) {
	case 3:
		if v, ok := LookupVisibility(args[2]); ok {
			inv.Visibility = v
			inv.Explicit = true

			return nil
		}

		if err := checkIdent("field name", args[2]); err != nil {
			return err
		}

		inv.Field = args[2]

	case 4:
		if err := checkIdent("field name", args[2]); err != nil {
			return err
		}

		if _, ok := LookupVisibility(args[2]); ok {
			return errorf(diagnostic.CodeBadIdent, "", "field name %q is a visibility keyword", args[2])
		}

		v, ok := LookupVisibility(args[3])
		if !ok {
			err := errorf(diagnostic.CodeBadVisibility, "", "unknown visibility %q, want one of %s",
				args[3], strings.Join(VisibilityKeywords(), ", "))
			err.Suggestions = match.Suggest(args[3], VisibilityKeywords())

			return err
		}

		inv.Field = args[2]
		inv.Visibility = v
		inv.Explicit = true
	}

	return nil
}

// unwrap strips the outer delimiters and returns the text between them.
func unwrap(s string) (string, Delim, *Error) {
	if s == "" {
		return "", 0, errorf(diagnostic.CodeSyntax, "", "missing argument list")
	}

	var delim Delim

	switch s[0] {
	case DelimParen.Open():
		delim = DelimParen
	case DelimBrace.Open():
		delim = DelimBrace
	default:
		return "", 0, errorf(diagnostic.CodeSyntax, "", "argument list must start with ( or {, found %q", s[0])
	}

	end := closingIndex(s)
	if end < 0 {
		return "", 0, errorf(diagnostic.CodeSyntax, "", "missing closing %q", delim.Close())
	}

	if s[end] != delim.Close() {
		return "", 0, errorf(diagnostic.CodeSyntax, "", "argument list opened with %q but closed with %q",
			delim.Open(), s[end])
	}

	if trailing := strings.TrimSpace(s[end+1:]); trailing != "" {
		return "", 0, errorf(diagnostic.CodeSyntax, "", "unexpected text after argument list: %q", trailing)
	}

	return s[1:end], delim, nil
}

// closingIndex returns the index of the bracket closing s[0], or -1.
func closingIndex(s string) int {
	sc := newScanner(s)

	for sc.next() {
		if sc.depth == 0 {
			return sc.pos
		}
	}

	return -1
}

// splitArgs splits body on commas that are not nested inside brackets or
// string literals.
func splitArgs(body string) ([]string, *Error) {
	var args []string

	start := 0
	sc := newScanner(body)

	for sc.next() {
		if sc.depth == 0 && body[sc.pos] == ',' {
			args = append(args, body[start:sc.pos])
			start = sc.pos + 1
		}
	}

	if sc.depth != 0 || sc.quote != 0 {
		return nil, errorf(diagnostic.CodeSyntax, "", "unbalanced brackets or quotes in arguments")
	}

	args = append(args, body[start:])

	for i := range args {
		args[i] = strings.TrimSpace(args[i])
		if args[i] == "" {
			return nil, errorf(diagnostic.CodeSyntax, "", "argument %d is empty", i+1)
		}
	}

	return args, nil
}

// checkIdent reports whether s can name a declared type or a struct field.
func checkIdent(what, s string) *Error {
	switch {
	case !token.IsIdentifier(s):
		return errorf(diagnostic.CodeBadIdent, "", "%s %q is not a Go identifier", what, s)
	case s == "_":
		return errorf(diagnostic.CodeBadIdent, "", "%s cannot be the blank identifier", what)
	case what == "type name" && types.Universe.Lookup(s) != nil:
		return errorf(diagnostic.CodeBadIdent, "", "type name %q shadows a predeclared identifier", s)
	}

	return nil
}

// CheckTypeExpr reports whether s is a Go type expression.
func CheckTypeExpr(s string) *Error {
	expr, err := parser.ParseExpr(s)
	if err != nil {
		return errorf(diagnostic.CodeBadType, "", "%q is not a type expression", s)
	}

	if !isTypeExpr(expr) {
		return errorf(diagnostic.CodeBadType, "", "%q is not a type expression", s)
	}

	return nil
}

func isTypeExpr(e ast.Expr) bool {
	switch t := e.(type) {
	case *ast.Ident:
		return t.Name != "_"
	case *ast.SelectorExpr:
		_, ok := t.X.(*ast.Ident)
		return ok
	case *ast.ParenExpr:
		return isTypeExpr(t.X)
	case *ast.StarExpr:
		return isTypeExpr(t.X)
	case *ast.ArrayType:
		return isTypeExpr(t.Elt)
	case *ast.MapType:
		return isTypeExpr(t.Key) && isTypeExpr(t.Value)
	case *ast.ChanType:
		return isTypeExpr(t.Value)
	case *ast.IndexExpr:
		return isTypeExpr(t.X) && isTypeExpr(t.Index)
	case *ast.IndexListExpr:
		if !isTypeExpr(t.X) {
			return false
		}

		for _, idx := range t.Indices {
			if !isTypeExpr(idx) {
				return false
			}
		}

		return true
	case *ast.FuncType, *ast.StructType, *ast.InterfaceType:
		return true
	default:
		return false
	}
}

// leadingIdent splits s into a leading identifier and the rest.
func leadingIdent(s string) (string, string) {
	i := 0
	for i < len(s) && (s[i] == '_' || s[i] >= 'a' && s[i] <= 'z' || s[i] >= 'A' && s[i] <= 'Z' ||
		i > 0 && s[i] >= '0' && s[i] <= '9') {
		i++
	}

	return s[:i], s[i:]
}
