package listsearch

import (
	"encoding/binary"
	"hash/fnv"
	"math/rand/v2"
	"testing"
)

// Named seeds for deterministic reproduction.
const (
	testSeed1 = 0x1234567890ABCDEF
	testSeed2 = 0xFEDCBA9876543210
)

// newTestRNG derives a per-test RNG from the test name, so every test has
// a stable but distinct random stream.
func newTestRNG(t testing.TB) *rand.Rand {
	t.Helper()
	h := fnv.New128a()
	h.Write([]byte(t.Name()))
	sum := h.Sum(nil)
	s1 := binary.LittleEndian.Uint64(sum[:8])
	s2 := binary.LittleEndian.Uint64(sum[8:])
	return rand.New(rand.NewPCG(testSeed1^s1, testSeed2^s2))
}

// fixedKeySource yields a predetermined key sequence. Panics when
// exhausted, so tests fail loudly if the search draws more keys than the
// scenario provides.
type fixedKeySource struct {
	keys []uint32
	next int
}

func (s *fixedKeySource) Uint32() uint32 {
	if s.next >= len(s.keys) {
		panic("fixedKeySource exhausted")
	}
	k := s.keys[s.next]
	s.next++
	return k
}

// sequentialBlock returns the block [0, 1, ..., n-1].
func sequentialBlock(n int) []uint16 {
	block := make([]uint16, n)
	for i := range block {
		block[i] = uint16(i)
	}
	return block
}

// randomBlock returns n values drawn from rng.
func randomBlock(rng *rand.Rand, n int) []uint16 {
	block := make([]uint16, n)
	for i := range block {
		block[i] = uint16(rng.Uint32())
	}
	return block
}
