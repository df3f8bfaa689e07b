package tfx

import "shxtfx/cerr"

// rho is Twofish's byte-broadcast constant (0x01 in every byte lane).
// Subkey generation forms its multiples with broadcastByte and does not
// reference rho itself.
const rho = 0x01010101

func rotl32(x uint32, n uint) uint32 { return x<<n | x>>(32-n) }
func rotr32(x uint32, n uint) uint32 { return x>>n | x<<(32-n) }

func broadcastByte(n int) uint32 {
	b := byte(n)
	return uint32(b) | uint32(b)<<8 | uint32(b)<<16 | uint32(b)<<24
}

// wordByte extracts byte i (0 = least significant) of w.
func wordByte(w uint32, i uint) byte { return byte(w >> (8 * i)) }

// h is Twofish's key-dependent permutation/MDS function: X is the input
// word, key is the list of k key-material words L[0..k-1] (L[0]
// innermost), ordered outermost-first as passed in (key[0] = L[k-1]).
//
// For k == 2 this is the fixed base network (q1,q0,q0 / q0,q0,q1 / ... per
// byte lane). Each extra layer beyond k == 2 applies one more q-round per
// lane before the base network, alternating between two q-choice
//4-tuples — the pattern the Twofish specification gives explicitly for
// k == 3 and k == 4; this implementation generalizes it to the larger k
// values TFX's 512-bit key extension requires, since no published
// reference covers k > 4.
var extraLayerEven = [4]*[256]byte{&q1, &q1, &q0, &q0}
var extraLayerOdd = [4]*[256]byte{&q1, &q0, &q0, &q1}

func h(x uint32, key []uint32, k int) uint32 {
	var y [4]byte
	for i := uint(0); i < 4; i++ {
		y[i] = wordByte(x, i)
	}

	for layer := k - 1; layer >= 2; layer-- {
		l := key[layer]
		var choice *[4]*[256]byte
		if (layer-2)%2 == 0 {
			choice = &extraLayerEven
		} else {
			choice = &extraLayerOdd
		}
		for i := uint(0); i < 4; i++ {
			y[i] = choice[i][y[i]] ^ wordByte(l, i)
		}
	}

	l1 := key[1]
	l0 := key[0]
	y[0] = q1[q0[q0[y[0]]^wordByte(l1, 0)]^wordByte(l0, 0)]
	y[1] = q0[q0[q1[y[1]]^wordByte(l1, 1)]^wordByte(l0, 1)]
	y[2] = q1[q1[q0[y[2]]^wordByte(l1, 2)]^wordByte(l0, 2)]
	y[3] = q0[q1[q1[y[3]]^wordByte(l1, 3)]^wordByte(l0, 3)]

	return mds0[y[0]] ^ mds1[y[1]] ^ mds2[y[2]] ^ mds3[y[3]]
}

// keyMaterial holds the expanded subkeys and S-box key words for one
// direction of one TFX engine instance.
type keyMaterial struct {
	k      int
	subKey []uint32 // 2*rounds+8 words
	sKey   []uint32 // k words, reversed per the Twofish key schedule
}

// legalKeyByteSizes are the supported raw key lengths: the classic
// Twofish sizes (128/192/256-bit) plus TFX's 512-bit extension.
var legalKeyByteSizes = []int{16, 24, 32, 64}

func isLegalKeySize(n int) bool {
	for _, s := range legalKeyByteSizes {
		if n == s {
			return true
		}
	}
	return false
}

func bytesToWordsLE(b []byte) []uint32 {
	n := len(b) / 4
	w := make([]uint32, n)
	for i := 0; i < n; i++ {
		w[i] = uint32(b[i*4]) | uint32(b[i*4+1])<<8 | uint32(b[i*4+2])<<16 | uint32(b[i*4+3])<<24
	}
	return w
}

func expandKey(key []byte, rounds int) (*keyMaterial, error) {
	if !isLegalKeySize(len(key)) {
		return nil, cerr.ErrInvalidKeySize
	}
	words := bytesToWordsLE(key)
	k := len(words) / 2

	me := make([]uint32, k)
	mo := make([]uint32, k)
	for i := 0; i < k; i++ {
		me[i] = words[2*i]
		mo[i] = words[2*i+1]
	}

	sKey := make([]uint32, k)
	for i := 0; i < k; i++ {
		sKey[k-1-i] = rsEncode(me[i], mo[i])
	}

	numPairs := rounds + 4
	subKey := make([]uint32, 2*numPairs)
	for i := 0; i < numPairs; i++ {
		a := h(broadcastByte(2*i), me, k)
		b := rotl32(h(broadcastByte(2*i+1), mo, k), 8)
		subKey[2*i] = a + b
		subKey[2*i+1] = rotl32(a+2*b, 9)
	}

	return &keyMaterial{k: k, subKey: subKey, sKey: sKey}, nil
}

func (m *keyMaterial) g(x uint32) uint32 {
	return h(x, m.sKey, m.k)
}

func (m *keyMaterial) zero() {
	for i := range m.subKey {
		m.subKey[i] = 0
	}
	for i := range m.sKey {
		m.sKey[i] = 0
	}
}
