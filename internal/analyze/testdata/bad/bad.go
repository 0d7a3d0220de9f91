package bad

import (
	"time"

	yml "gopkg.in/yaml.v3"
)

//newtype(timeout, time.Duration, pub)
//newtype(meters, float64, m, pubb)
//newtype(ghost, NoSuchType)
//newtype(routes, []plain)
//newtype.accesor(handle, uint64)
//newtype(plain, int)
//newtype(node, *yml.Node)

// newtype(prose, int) is not a directive.

var (
	_ time.Duration
	_ yml.Node
)
