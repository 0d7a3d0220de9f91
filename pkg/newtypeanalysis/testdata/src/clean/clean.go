package clean

import "time"

//newtype(meters, float64, pub)
//newtype{wrapped, int}
//newtype(counter, int, count)
//newtype(timeout, time.Duration, d, pub)
//newtype(routes, []Meters)
//newtype.accessor(handle, uint64)

var _ time.Duration
