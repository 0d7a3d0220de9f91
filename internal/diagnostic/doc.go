// Package diagnostic provides structured errors and warnings for the
// newtype generator.
//
// Every rejected invocation becomes a Diagnostic carrying:
//   - a stable code (see the Code* constants)
//   - the position of the directive or manifest entry
//   - the offending invocation text
//   - optional suggestions, such as the keyword the author probably meant
package diagnostic
