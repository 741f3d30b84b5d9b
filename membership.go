package listsearch

import (
	"github.com/azizgokhannarin/imaginarylistsearch/internal/feistel"
)

// HasValue reports whether x belongs to the synthetic list identified by
// key: membership is the high bit of the permuted value being clear.
// Because the permutation is bijective, exactly 32768 of the 65536
// possible values are members for every key.
func HasValue(key uint32, x uint16) bool {
	return feistel.Encrypt(x, key)&0x8000 == 0
}

// Score counts how many values in block are members under key, normalized
// for predicate sense: a key whose complement classification captures the
// majority is exactly as informative as one whose direct classification
// does, so the larger of the count and its complement is returned. This
// makes the search direction-agnostic.
//
// For a non-empty block of n values the result is within [⌈n/2⌉, n].
// An empty block scores 0; callers that need a meaningful score must
// validate non-emptiness, as Search does.
func Score(key uint32, block []uint16) int {
	c := 0
	for _, v := range block {
		if HasValue(key, v) {
			c++
		}
	}
	if n := len(block) - c; n > c {
		return n
	}
	return c
}
