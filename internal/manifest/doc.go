// Package manifest provides the YAML manifest format, an alternative to
// directive comments for listing newtype invocations.
//
// A manifest does not need the target package to compile, so it can seed a
// package from scratch.
//
// # Schema Overview
//
//	version: "1"
//	package: units          # package clause of the generated file
//	output: newtype_gen.go  # relative to the manifest, optional
//	imports:                # packages referenced by qualified types
//	  - time
//	  - name: yml
//	    path: gopkg.in/yaml.v3
//	types:
//	  # Invocation strings, any form and either delimiter
//	  - newtype(meters, float64)
//	  - newtype{Feet, float64, pub}
//	  # Structured entries, validated by the same rules
//	  - name: Timeout
//	    type: time.Duration
//	    field: d
//	    visibility: pub
//	  - name: handle
//	    type: uint64
//	    style: accessor
package manifest
