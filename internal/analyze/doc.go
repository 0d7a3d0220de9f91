// Package analyze loads Go packages and collects their newtype directives.
//
// It uses golang.org/x/tools/go/packages with AST and go/types to find
// directive comments, record each file's imports and resolve the underlying
// type expressions in the scope they were written in.
//
// Key types:
//   - Loader: loads packages by pattern
//   - Package: the directives, diagnostics and resolution tables of one package
package analyze
