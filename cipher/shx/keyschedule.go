package shx

import (
	"encoding/binary"

	"shxtfx/cerr"
	"shxtfx/digest"
	"shxtfx/kdf"
)

const phi = 0x9E3779B9

var defaultDistributionCode = []byte("SHX version 1 information string")

// standardKeySizes are the legal key lengths for the non-HKDF path.
var standardKeySizes = []int{16, 24, 32, 64}

// legalRounds is the full SHX round menu; only 32 (and 40, for 64-byte
// keys) are reachable via the standard path — the rest require the HKDF
// path, i.e. a key longer than 64 bytes.
var legalRounds = []int{32, 40, 48, 56, 64, 80, 96, 128}

func isStandardKeySize(n int) bool {
	for _, s := range standardKeySizes {
		if n == s {
			return true
		}
	}
	return false
}

func isLegalRound(r int) bool {
	for _, v := range legalRounds {
		if v == r {
			return true
		}
	}
	return false
}

// keyToWordsLE packs n/4 little-endian 32-bit words from key, matching the
// standard Serpent key-schedule's byte order (aead-serpent's k[j] packing):
// spec §4.4's "reverse-copy ... big-endian word conversion" describes the
// same operation from the opposite direction (reversing each 4-byte group
// before a big-endian read is numerically identical to a direct
// little-endian read of the original bytes).
func keyToWordsLE(key []byte) []uint32 {
	n := len(key) / 4
	words := make([]uint32, n)
	for i := 0; i < n; i++ {
		words[i] = binary.LittleEndian.Uint32(key[i*4:])
	}
	return words
}

// expandStandard implements spec §4.4's standard path (key.len() <= 64).
func expandStandard(key []byte, rounds int) []uint32 {
	padSize := 16
	lag := 8
	offsets := []int{8, 5, 3, 1}
	if len(key) == 64 {
		padSize = 32
		lag = 16
		offsets = []int{16, 13, 11, 10, 8, 5, 3, 1}
	}

	tmp := make([]uint32, padSize)
	kw := keyToWordsLE(key)
	copy(tmp, kw)
	if len(kw) < 8 {
		tmp[len(kw)] = 1
	}

	for i := lag; i < padSize; i++ {
		var x uint32 = phi ^ uint32(i-lag)
		for _, off := range offsets {
			x ^= tmp[i-off]
		}
		tmp[i] = rotl32(x, 11)
	}

	total := 4 * (rounds + 1)
	s := make([]uint32, total)
	copy(s, tmp[padSize-lag:])

	for i := lag; i < total; i++ {
		var x uint32 = phi ^ uint32(i)
		for _, off := range offsets {
			x ^= s[i-off]
		}
		s[i] = rotl32(x, 11)
	}

	mixExpandedKey(s)
	return s
}

// mixExpandedKey applies the cyclic Sb3,Sb2,Sb1,Sb0,Sb7,Sb6,Sb5,Sb4 pass
// over 4-word groups, per spec §4.4 step 5.
func mixExpandedKey(s []uint32) {
	order := [8]func(*uint32, *uint32, *uint32, *uint32){sb3, sb2, sb1, sb0, sb7, sb6, sb5, sb4}
	i := 0
	for ; i+32 <= len(s); i += 32 {
		for g, fn := range order {
			off := i + g*4
			fn(&s[off], &s[off+1], &s[off+2], &s[off+3])
		}
	}
	sb3(&s[len(s)-4], &s[len(s)-3], &s[len(s)-2], &s[len(s)-1])
}

// hkdfSplit derives the IKM/salt byte sizes for a given key length and
// digest selector, applying the ikmSize the caller configured. The salt
// is the entire remaining key material (ikm_size + k*salt_size, k>=1 per
// spec §3), not a single block — a key with k>1 has salt bytes beyond
// the first block that must still feed HKDF's extract step.
func hkdfSplit(keyLen int, sel digest.Selector, ikmSize int) (ikm, salt int, err error) {
	blockSize, err := digest.BlockSize(sel)
	if err != nil {
		return 0, 0, err
	}
	remaining := keyLen - ikmSize
	if remaining <= 0 || remaining%blockSize != 0 {
		return 0, 0, cerr.ErrInvalidKeySize
	}
	return ikmSize, remaining, nil
}

// clampIKMSize implements the SetIKMSize clamp-then-snap rule of spec §6.1:
// value is clamped into [output_size, block_size] then rounded down to a
// multiple of output_size.
func clampIKMSize(value int, sel digest.Selector) (int, error) {
	out, err := digest.OutputSize(sel)
	if err != nil {
		return 0, err
	}
	block, err := digest.BlockSize(sel)
	if err != nil {
		return 0, err
	}
	if value <= 0 {
		value = out
	}
	if value < out {
		value = out
	}
	if value > block {
		value = block
	}
	value -= value % out
	if value == 0 {
		value = out
	}
	return value, nil
}

// expandHKDF implements spec §4.4's HKDF path (key.len() > 64).
func expandHKDF(key []byte, rounds int, sel digest.Selector, ikmSize int, distributionCode []byte) ([]uint32, error) {
	ikmLen, saltLen, err := hkdfSplit(len(key), sel, ikmSize)
	if err != nil {
		return nil, err
	}
	ikm := key[:ikmLen]
	salt := key[ikmLen : ikmLen+saltLen]

	h, err := kdf.New(sel)
	if err != nil {
		return nil, err
	}
	if err := h.Initialize(salt, ikm); err != nil {
		return nil, err
	}

	total := 4 * (rounds + 1)
	raw := make([]byte, total*4)
	if err := h.Generate(raw, distributionCode); err != nil {
		h.Zero()
		return nil, err
	}
	h.Zero()

	words := make([]uint32, total)
	for i := range words {
		words[i] = binary.LittleEndian.Uint32(raw[i*4:])
	}
	return words, nil
}
