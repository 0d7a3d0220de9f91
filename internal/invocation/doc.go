// Package invocation parses newtype invocations.
//
// An invocation names a new type, its underlying type and, optionally, the
// field that holds the value and the visibility of the result:
//
//	newtype(Name, Type)                 Form A
//	newtype(Name, Type, pub)            Form B
//	newtype(Name, Type, field)          Form C
//	newtype(Name, Type, field, pub)     Form D
//	newtype.accessor(Name, Type)        accessor style, Form A only
//
// Brace delimiters (newtype{Name, Type}) are accepted everywhere parentheses
// are and mean exactly the same thing.
//
// A third argument is read as a visibility qualifier when it is one of the
// keywords pub or priv and as a field name otherwise, so a field can never
// be called pub or priv.
package invocation
