// Package match provides edit distance and "did you mean" suggestions for
// mistyped invocation keywords such as visibility qualifiers.
//
// Key functions:
//   - Levenshtein: computes edit distance between strings
//   - Suggest: ranks known keywords close to an unknown word
package match
