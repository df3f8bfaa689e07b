package digest

// threefish implements the Threefish tweakable block cipher that powers
// Skein's UBI chaining, parameterized over the state width in 64-bit
// words (4 for Threefish-256, 8 for Threefish-512, 16 for Threefish-1024).
// No reference implementation of Skein exists anywhere in the retrieved
// pack; this is built directly from the published Skein v1.3 specification
// tables (round counts, rotation constants, word permutation).

const skeinC240 = 0x1BD11BDAA9FC1A22

var threefishRotations = map[int][8][]uint{
	4: {
		{14, 16}, {52, 57}, {23, 40}, {5, 37},
		{25, 33}, {46, 12}, {58, 22}, {32, 32},
	},
	8: {
		{46, 36, 19, 37}, {33, 27, 14, 42}, {17, 49, 36, 39}, {44, 9, 54, 56},
		{39, 30, 34, 24}, {13, 50, 10, 17}, {25, 29, 39, 43}, {8, 35, 56, 22},
	},
	16: {
		{24, 13, 8, 47, 8, 17, 22, 37}, {38, 19, 10, 55, 49, 18, 23, 52},
		{33, 4, 51, 13, 34, 41, 59, 17}, {5, 20, 48, 41, 47, 28, 16, 25},
		{41, 9, 37, 31, 12, 47, 44, 30}, {16, 34, 56, 51, 4, 53, 42, 41},
		{31, 44, 47, 46, 19, 42, 44, 25}, {9, 48, 35, 52, 23, 31, 37, 20},
	},
}

var threefishPermute = map[int][]int{
	4:  {0, 3, 2, 1},
	8:  {2, 1, 4, 7, 6, 5, 0, 3},
	16: {0, 9, 2, 13, 6, 11, 4, 15, 10, 7, 12, 3, 14, 5, 8, 1},
}

var threefishRounds = map[int]int{4: 72, 8: 72, 16: 80}

// threefishEncrypt runs Threefish-(64*nw) over pt, using the expanded key
// words and 128-bit tweak, and returns the ciphertext words in a new
// slice; pt is left unchanged.
func threefishEncrypt(nw int, key []uint64, tweak [2]uint64, pt []uint64) []uint64 {
	ks := make([]uint64, nw+1)
	copy(ks, key)
	ks[nw] = skeinC240
	for i := 0; i < nw; i++ {
		ks[nw] ^= key[i]
	}
	ts := [3]uint64{tweak[0], tweak[1], tweak[0] ^ tweak[1]}

	v := make([]uint64, nw)
	copy(v, pt)

	rot := threefishRotations[nw]
	perm := threefishPermute[nw]
	rounds := threefishRounds[nw]

	subkey := func(s int) []uint64 {
		k := make([]uint64, nw)
		for i := 0; i < nw; i++ {
			k[i] = ks[(s+i)%(nw+1)]
		}
		k[nw-3] += ts[s%3]
		k[nw-2] += ts[(s+1)%3]
		k[nw-1] += uint64(s)
		return k
	}

	mix := func(x, y uint64, r uint) (uint64, uint64) {
		x = x + y
		y = (y<<r | y>>(64-r)) ^ x
		return x, y
	}

	for d := 0; d < rounds; d++ {
		if d%4 == 0 {
			k := subkey(d / 4)
			for i := 0; i < nw; i++ {
				v[i] += k[i]
			}
		}
		rs := rot[d%8]
		for pair := 0; pair < nw/2; pair++ {
			a, b := 2*pair, 2*pair+1
			v[a], v[b] = mix(v[a], v[b], rs[pair])
		}
		permuted := make([]uint64, nw)
		for i := 0; i < nw; i++ {
			permuted[i] = v[perm[i]]
		}
		v = permuted
	}
	k := subkey(rounds / 4)
	for i := 0; i < nw; i++ {
		v[i] += k[i]
	}
	return v
}

// ubi runs one Unique Block Iteration chaining step: E_K(msg) XOR msg,
// where K is the running chaining value g and msg is one (possibly
// partial, zero-padded) Threefish-width block tagged with tweak.
func ubi(nw int, g []uint64, tweak [2]uint64, block []uint64) []uint64 {
	ct := threefishEncrypt(nw, g, tweak, block)
	out := make([]uint64, nw)
	for i := range out {
		out[i] = ct[i] ^ block[i]
	}
	return out
}
