// Package feistel implements a keyed pseudo-random permutation on the
// 16-bit universe, built as a 4-round Feistel network over two 8-bit
// halves.
//
// The construction is deliberately non-cryptographic: the round function
// only needs to diffuse key material across the halves. Bijectivity does
// not depend on the round function at all — a Feistel step is invertible
// for any round function — and that guarantee is the property the rest of
// the module is built on: for every key, exactly half of the 65536
// possible inputs land on each side of any single output bit.
package feistel

// diffusionConstant is the odd 32-bit multiplier used by the round
// function's multiply-xor-shift mixer. Being odd, multiplication by it is
// a bijection on uint32, so no entropy is discarded between the shifts.
const diffusionConstant = 0x45D9F3B

// numRounds is fixed at 4. Changing it keeps the permutation bijective
// but changes every output, invalidating any previously recorded key.
const numRounds = 4

// round mixes one 8-bit half with the round's key byte. Round i consumes
// key bits [i*8, i*8+8), so all 32 key bits influence the permutation
// across the 4 rounds.
func round(r uint8, key uint32, i int) uint8 {
	x := uint32(r)
	x ^= (key >> (i * 8)) & 0xFF
	x *= diffusionConstant
	x ^= x >> 16
	x *= diffusionConstant
	x ^= x >> 16
	return uint8(x)
}

// Encrypt applies the keyed permutation to x.
// For every key, Encrypt(·, key) is a bijection on the 16-bit universe.
func Encrypt(x uint16, key uint32) uint16 {
	l := uint8(x >> 8)
	r := uint8(x)
	for i := 0; i < numRounds; i++ {
		l, r = r, l^round(r, key, i)
	}
	return uint16(l)<<8 | uint16(r)
}

// Decrypt inverts Encrypt: Decrypt(Encrypt(x, key), key) == x for all x.
// It unwinds the rounds in reverse order; each step recovers the previous
// halves from the same round function used by Encrypt.
func Decrypt(y uint16, key uint32) uint16 {
	l := uint8(y >> 8)
	r := uint8(y)
	for i := numRounds - 1; i >= 0; i-- {
		l, r = r^round(l, key, i), l
	}
	return uint16(l)<<8 | uint16(r)
}
