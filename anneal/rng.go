package anneal

import (
	"math/rand"
	"time"
)

// rngFromOptions returns a deterministic *rand.Rand when opts.Seed is set,
// otherwise a non-reproducible one seeded from the wall clock. Seed is a
// pointer rather than a bare int64 so the zero value can mean "unset" rather
// than "use seed 0".
//
// Complexity: O(1).
func rngFromOptions(opts Options) *rand.Rand {
	if opts.Seed != nil {
		return rand.New(rand.NewSource(*opts.Seed))
	}
	return rand.New(rand.NewSource(time.Now().UnixNano()))
}
