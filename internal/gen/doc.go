// Package gen provides deterministic Go code generation for newtypes.
//
// Generation approach uses text/template + go/format for readable Go code.
// The generator always imports the packages its own methods may need
// (fmt, maps, slices) and prunes the unused ones with astutil before
// formatting.
//
// For every planned type it emits:
//   - the struct declaration with its single field
//   - Clone, returning an independent copy
//   - GoString, so %#v prints "name { field: value }"
//   - for the accessor style, a constructor and Get
package gen
