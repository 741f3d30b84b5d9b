// Package listsearch searches the key space of a keyed 16-bit permutation
// for keys that classify an unusually large fraction of a data block as
// members of the key's synthetic list.
//
// Each 32-bit key selects a bijection on the 16-bit universe (a 4-round
// Feistel network, see internal/feistel). The list of a key is the half of
// the universe whose permuted value has a clear high bit; because the
// permutation is bijective the split is exactly 50/50 for every key. The
// search maximizes, over keys, the number of block values landing on one
// side of that split, normalized so a key and its complement classify
// equally well.
//
// # Basic Usage
//
// Searching a block:
//
//	res, err := listsearch.Search(block,
//	    listsearch.WithRestarts(250),
//	    listsearch.WithHillClimbPasses(8),
//	    listsearch.WithSeed(seed),
//	)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	fmt.Printf("key=0x%08x score=%d/%d\n", res.Key, res.Score, len(block))
//
// Membership under the found key:
//
//	member := listsearch.HasValue(res.Key, value)
//
// # Package Structure
//
//   - Public API: search.go (Search, Result), membership.go (HasValue, Score)
//   - Configuration: options.go (SearchOption, With* functions)
//   - Randomness: keysource.go (KeySource, seeded default)
//   - Permutation: internal/feistel (Encrypt, Decrypt)
//   - Data access: internal/datafile (mmap-backed u16 files)
//   - Tools: cmd/listscan (block scanner), cmd/gendata (synthetic data)
package listsearch
