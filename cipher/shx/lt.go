package shx

func rotl32(x uint32, n uint) uint32 { return x<<n | x>>(32-n) }
func rotr32(x uint32, n uint) uint32 { return x>>n | x<<(32-n) }

// lt is the Serpent linear transformation, applied between S-box layers.
func lt(r0, r1, r2, r3 *uint32) {
	x0 := rotl32(*r0, 13)
	x2 := rotl32(*r2, 3)
	x1 := *r1 ^ x0 ^ x2
	x3 := *r3 ^ x2 ^ (x0 << 3)
	nr1 := rotl32(x1, 1)
	nr3 := rotl32(x3, 7)
	nr0 := rotl32(x0^nr1^nr3, 5)
	nr2 := rotl32(x2^nr3^(nr1<<7), 22)
	*r0, *r1, *r2, *r3 = nr0, nr1, nr2, nr3
}

// ilt is the exact algebraic inverse of lt, per spec §9.
func ilt(r0, r1, r2, r3 *uint32) {
	x2 := rotr32(*r2, 22) ^ *r3 ^ (*r1 << 7)
	x0 := rotr32(*r0, 5) ^ *r1 ^ *r3
	x3 := rotr32(*r3, 7)
	x1 := rotr32(*r1, 1)
	nr3 := x3 ^ x2 ^ (x0 << 3)
	nr1 := x1 ^ x0 ^ x2
	nr2 := rotr32(x2, 3)
	nr0 := rotr32(x0, 13)
	*r0, *r1, *r2, *r3 = nr0, nr1, nr2, nr3
}
