package shx

// The eight Serpent S-boxes, as published in the original Serpent
// submission (Anderson, Biham, Knudsen), table 4: each is a 4-bit-to-4-bit
// substitution. Spec §4.6 permits reproducing these as fixed truth tables
// rather than literal bitsliced Boolean circuits ("the implementer treats
// them as fixed truth tables per S-box"), which is what applySBox below
// does: it slices each of the 32 bit positions across R0..R3 into a
// 4-bit nibble, substitutes through the table, and scatters the result
// back — bit-for-bit equivalent to the bitsliced circuit form, without
// hand-transcribing 8 Boolean-minimized formulas from memory.
var sboxTable = [8][16]byte{
	{3, 8, 15, 1, 10, 6, 5, 11, 14, 13, 4, 2, 7, 0, 9, 12},
	{15, 12, 2, 7, 9, 0, 5, 10, 1, 11, 14, 8, 6, 13, 3, 4},
	{8, 6, 7, 9, 3, 12, 10, 15, 13, 1, 14, 4, 0, 11, 5, 2},
	{0, 15, 11, 8, 12, 9, 6, 3, 13, 1, 2, 4, 10, 7, 5, 14},
	{1, 15, 8, 3, 12, 0, 11, 6, 2, 5, 4, 10, 9, 14, 7, 13},
	{15, 5, 2, 11, 4, 10, 9, 12, 0, 3, 14, 8, 13, 6, 7, 1},
	{7, 2, 12, 5, 8, 4, 6, 11, 14, 9, 1, 15, 13, 3, 10, 0},
	{1, 13, 15, 0, 14, 8, 2, 11, 7, 4, 12, 10, 9, 3, 5, 6},
}

func invertTable(t [16]byte) [16]byte {
	var inv [16]byte
	for in, out := range t {
		inv[out] = byte(in)
	}
	return inv
}

var invSboxTable = func() [8][16]byte {
	var inv [8][16]byte
	for i, t := range sboxTable {
		inv[i] = invertTable(t)
	}
	return inv
}()

func applySBox(table [16]byte, r0, r1, r2, r3 *uint32) {
	var o0, o1, o2, o3 uint32
	for bit := uint(0); bit < 32; bit++ {
		nibble := (*r0>>bit)&1 | ((*r1>>bit)&1)<<1 | ((*r2>>bit)&1)<<2 | ((*r3>>bit)&1)<<3
		sub := uint32(table[nibble])
		o0 |= (sub & 1) << bit
		o1 |= ((sub >> 1) & 1) << bit
		o2 |= ((sub >> 2) & 1) << bit
		o3 |= ((sub >> 3) & 1) << bit
	}
	*r0, *r1, *r2, *r3 = o0, o1, o2, o3
}

func sb(i int, r0, r1, r2, r3 *uint32) { applySBox(sboxTable[i], r0, r1, r2, r3) }
func ib(i int, r0, r1, r2, r3 *uint32) { applySBox(invSboxTable[i], r0, r1, r2, r3) }

func sb0(r0, r1, r2, r3 *uint32) { sb(0, r0, r1, r2, r3) }
func sb1(r0, r1, r2, r3 *uint32) { sb(1, r0, r1, r2, r3) }
func sb2(r0, r1, r2, r3 *uint32) { sb(2, r0, r1, r2, r3) }
func sb3(r0, r1, r2, r3 *uint32) { sb(3, r0, r1, r2, r3) }
func sb4(r0, r1, r2, r3 *uint32) { sb(4, r0, r1, r2, r3) }
func sb5(r0, r1, r2, r3 *uint32) { sb(5, r0, r1, r2, r3) }
func sb6(r0, r1, r2, r3 *uint32) { sb(6, r0, r1, r2, r3) }
func sb7(r0, r1, r2, r3 *uint32) { sb(7, r0, r1, r2, r3) }

func ib0(r0, r1, r2, r3 *uint32) { ib(0, r0, r1, r2, r3) }
func ib1(r0, r1, r2, r3 *uint32) { ib(1, r0, r1, r2, r3) }
func ib2(r0, r1, r2, r3 *uint32) { ib(2, r0, r1, r2, r3) }
func ib3(r0, r1, r2, r3 *uint32) { ib(3, r0, r1, r2, r3) }
func ib4(r0, r1, r2, r3 *uint32) { ib(4, r0, r1, r2, r3) }
func ib5(r0, r1, r2, r3 *uint32) { ib(5, r0, r1, r2, r3) }
func ib6(r0, r1, r2, r3 *uint32) { ib(6, r0, r1, r2, r3) }
func ib7(r0, r1, r2, r3 *uint32) { ib(7, r0, r1, r2, r3) }
