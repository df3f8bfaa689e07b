// Package tfx implements the Twofish-derived 128-bit block cipher with its
// 512-bit key extension. No Twofish reference exists anywhere in the
// retrieved example pack (confirmed via original_source's file index), so
// this package is built directly from the published Twofish algorithm
// structure: the MDS/RS GF(2^8) arithmetic, the q0/q1 permutation
// generating network, and the h()-function key-dependent S-box
// construction, all described in the Twofish specification paper.
package tfx

// gfMul multiplies a and b in GF(2^8) modulo the given reducing
// polynomial (its top bit is implicit, per the degree-8 primitive used).
func gfMul(a, b byte, poly uint16) byte {
	var result uint16
	av := uint16(a)
	for i := 0; i < 8; i++ {
		if b&(1<<uint(i)) != 0 {
			result ^= av << uint(i)
		}
	}
	for bit := uint(15); bit >= 8; bit-- {
		if result&(1<<bit) != 0 {
			result ^= poly << (bit - 8)
		}
	}
	return byte(result)
}

// mdsPoly is the reducing polynomial (x^8+x^6+x^5+x^3+1) used by the MDS
// matrix multiplication.
const mdsPoly = 0x169

// rsPoly is the reducing polynomial used by the Reed-Solomon code that
// derives S-box key material from the raw key bytes.
const rsPoly = 0x14D

// mdsMatrix is the 4x4 MDS matrix over GF(2^8), row-major.
var mdsMatrix = [4][4]byte{
	{0x01, 0xEF, 0x5B, 0x5B},
	{0x5B, 0xEF, 0xEF, 0x01},
	{0xEF, 0x5B, 0x01, 0xEF},
	{0xEF, 0x01, 0xEF, 0x5B},
}

// mds0..mds3 are precomputed MDS column tables: mdsN[x] is the 32-bit
// word produced by multiplying x through column N of mdsMatrix, packed
// byte N into its matching lane.
var mds0, mds1, mds2, mds3 [256]uint32

func init() {
	for x := 0; x < 256; x++ {
		var col [4]byte
		for row := 0; row < 4; row++ {
			col[row] = gfMul(byte(x), mdsMatrix[row][0], mdsPoly)
		}
		mds0[x] = uint32(col[0]) | uint32(col[1])<<8 | uint32(col[2])<<16 | uint32(col[3])<<24

		for row := 0; row < 4; row++ {
			col[row] = gfMul(byte(x), mdsMatrix[row][1], mdsPoly)
		}
		mds1[x] = uint32(col[0]) | uint32(col[1])<<8 | uint32(col[2])<<16 | uint32(col[3])<<24

		for row := 0; row < 4; row++ {
			col[row] = gfMul(byte(x), mdsMatrix[row][2], mdsPoly)
		}
		mds2[x] = uint32(col[0]) | uint32(col[1])<<8 | uint32(col[2])<<16 | uint32(col[3])<<24

		for row := 0; row < 4; row++ {
			col[row] = gfMul(byte(x), mdsMatrix[row][3], mdsPoly)
		}
		mds3[x] = uint32(col[0]) | uint32(col[1])<<8 | uint32(col[2])<<16 | uint32(col[3])<<24
	}
}

// q0Nibbles and q1Nibbles are the four 4-bit lookup tables each
// q-permutation's generating network runs an input byte's nibbles
// through, per the Twofish specification's "Permutations q0 and q1".
var q0Nibbles = [4][16]byte{
	{8, 1, 7, 13, 6, 15, 3, 2, 0, 11, 5, 9, 14, 12, 10, 4},
	{14, 12, 11, 8, 1, 2, 3, 5, 15, 4, 10, 6, 7, 0, 9, 13},
	{11, 10, 5, 14, 6, 13, 9, 0, 12, 8, 15, 3, 2, 4, 7, 1},
	{13, 7, 15, 4, 1, 2, 6, 14, 9, 11, 3, 0, 8, 5, 12, 10},
}

var q1Nibbles = [4][16]byte{
	{2, 8, 11, 13, 15, 7, 6, 14, 3, 1, 9, 4, 0, 10, 12, 5},
	{1, 14, 2, 11, 4, 12, 3, 7, 6, 13, 10, 5, 15, 9, 0, 8},
	{4, 12, 7, 5, 1, 6, 9, 10, 0, 14, 13, 8, 2, 11, 3, 15},
	{11, 9, 5, 1, 12, 3, 13, 14, 6, 4, 7, 15, 2, 0, 8, 10},
}

func ror4(x byte) byte { return ((x >> 1) | (x << 3)) & 0xF }

func buildQ(t [4][16]byte) [256]byte {
	var q [256]byte
	for x := 0; x < 256; x++ {
		a0 := byte(x >> 4)
		b0 := byte(x & 0xF)
		a1 := a0 ^ b0
		b1 := (a0 ^ ror4(b0) ^ ((8 * a0) & 0xF)) & 0xF
		a2 := t[0][a1]
		b2 := t[1][b1]
		a3 := a2 ^ b2
		b3 := (a2 ^ ror4(b2) ^ ((8 * a2) & 0xF)) & 0xF
		a4 := t[2][a3]
		b4 := t[3][b3]
		q[x] = (b4 << 4) | a4
	}
	return q
}

var q0 = buildQ(q0Nibbles)
var q1 = buildQ(q1Nibbles)

// rsRem is one step of the Reed-Solomon remainder computation, per the
// Twofish specification's RS_rem.
func rsRem(x uint32) uint32 {
	b := byte(x >> 24)
	g2 := (b << 1)
	if b&0x80 != 0 {
		g2 ^= byte(rsPoly & 0xFF)
	}
	g3 := (b >> 1)
	if b&1 != 0 {
		g3 ^= byte(rsPoly >> 1)
	}
	g3 ^= g2
	return (x << 8) ^ uint32(g3)<<24 ^ uint32(g2)<<16 ^ uint32(g3)<<8 ^ uint32(b)
}

// rsEncode folds two 32-bit key words into one S-box key word via the
// Reed-Solomon code.
func rsEncode(k0, k1 uint32) uint32 {
	r := k1
	for i := 0; i < 4; i++ {
		r = rsRem(r)
	}
	r ^= k0
	for i := 0; i < 4; i++ {
		r = rsRem(r)
	}
	return r
}
