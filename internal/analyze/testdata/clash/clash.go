package clash

//newtype(meters, float64, pub)
//newtype(wrapped, int)
//newtype.accessor(handle, uint64)

// Meters is written by hand.
type Meters struct{ V float64 }

func newHandle() {}

func local() {
	//newtype(inner, localType)
	type localType int

	_ = localType(0)
}
