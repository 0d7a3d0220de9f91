package a

import "time"

//newtype(timeout, time.Duration, pub)
//newtype(meters, float64, m, pubb) // want `\[bad-visibility\] unknown visibility "pubb".*did you mean: pub\?`
//newtype(ghost, NoSuchType) // want `\[unknown-type\] cannot resolve type NoSuchType`
//newtype.accessor(handle, uint64, pub) // want `\[accessor-form\]`
//newtype.accesor(handle, uint64) // want `\[syntax\] unknown style "accesor".*did you mean: accessor\?`
//newtype(pair, int, string, int) // want `\[bad-visibility\] unknown visibility "int"`
//newtype(dup, int)
//newtype(dup, string) // want `\[duplicate-type\] dup is already declared`
//newtype(box, int, goString, pub) // want `\[field-clash\]`
//newtype(type, int) // want `\[bad-ident\]`

// newtype(prose, int) is not checked.

var _ time.Duration
