package listsearch

import (
	"encoding/binary"
	"math/rand/v2"

	"github.com/zeebo/xxh3"
)

// KeySource produces uniformly distributed 32-bit candidate keys for the
// search's random restarts. It is modeled as an explicit capability rather
// than ambient global state so that callers control reproducibility and
// tests can substitute fixed sequences via WithKeySource.
//
// A KeySource is consumed from a single goroutine: Search draws every
// restart's starting key up front, before any hillclimbing begins.
type KeySource interface {
	Uint32() uint32
}

// newSeededKeySource returns the default KeySource for a 64-bit seed.
//
// The seed is expanded through xxHash3 before feeding the PCG generator.
// Callers commonly derive per-block seeds as base+blockIndex, and such
// consecutive seeds are highly non-uniform; hashing decorrelates the
// resulting key streams so neighboring blocks do not share search
// trajectories.
func newSeededKeySource(seed uint64) KeySource {
	var buf [8]byte
	binary.LittleEndian.PutUint64(buf[:], seed)
	return rand.New(rand.NewPCG(seed, xxh3.Hash(buf[:])))
}
