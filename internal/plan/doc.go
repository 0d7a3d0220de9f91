// Package plan turns parsed invocations into a deterministic generation plan.
//
// Planning decides everything the generator prints:
//   - final type and field names, cased to match the requested visibility
//   - how Clone copies the held value (slices.Clone, maps.Clone or a plain copy)
//   - the imports the underlying types need
//
// It also rejects invocations that parse but cannot coexist in one package,
// such as two types with the same name, with diagnostics instead of errors so
// that every problem in a package is reported at once.
package plan
