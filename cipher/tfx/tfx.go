package tfx

import (
	"encoding/binary"

	"shxtfx/cerr"
)

const blockSize = 16

// legalRounds is the TFX round menu per spec §3; 16 is the classic
// Twofish round count, the rest extend it for the 512-bit key path. The
// round math in expandKey/encryptBlock/decryptBlock is round-count
// generic, so every even value in the documented range is accepted.
var legalRounds = []int{16, 18, 20, 22, 24, 26, 28, 30, 32}

func isLegalRound(r int) bool {
	for _, v := range legalRounds {
		if v == r {
			return true
		}
	}
	return false
}

// Engine is a Twofish-derived 128-bit block cipher supporting 128/192/256
// and 512-bit keys.
type Engine struct {
	rounds      int
	initialized bool
	encrypt     bool
	km          *keyMaterial
}

// New constructs an Engine with the given round count; 0 selects the
// default of 16.
func New(rounds int) (*Engine, error) {
	if rounds == 0 {
		rounds = 16
	}
	if !isLegalRound(rounds) {
		return nil, cerr.ErrInvalidRounds
	}
	return &Engine{rounds: rounds}, nil
}

// Initialize builds the round subkeys and key-dependent S-box material
// for encryption or decryption.
func (e *Engine) Initialize(encrypt bool, key []byte) error {
	km, err := expandKey(key, e.rounds)
	if err != nil {
		return err
	}
	e.km = km
	e.encrypt = encrypt
	e.initialized = true
	return nil
}

// BlockSize returns the engine's fixed 128-bit block size.
func (e *Engine) BlockSize() int { return blockSize }

// LegalKeySizes returns the legal raw key lengths in bytes.
func (e *Engine) LegalKeySizes() []int {
	out := make([]int, len(legalKeyByteSizes))
	copy(out, legalKeyByteSizes)
	return out
}

// LegalRounds returns the legal round counts.
func (e *Engine) LegalRounds() []int {
	out := make([]int, len(legalRounds))
	copy(out, legalRounds)
	return out
}

// Destroy zeroes the expanded subkeys and S-box key material.
func (e *Engine) Destroy() {
	if e.km != nil {
		e.km.zero()
	}
	e.initialized = false
}

func (e *Engine) expandedSubkeys() []uint32 {
	if e.km == nil {
		return nil
	}
	return e.km.subKey
}

func loadBlock(src []byte) (r0, r1, r2, r3 uint32) {
	r0 = binary.LittleEndian.Uint32(src[0:4])
	r1 = binary.LittleEndian.Uint32(src[4:8])
	r2 = binary.LittleEndian.Uint32(src[8:12])
	r3 = binary.LittleEndian.Uint32(src[12:16])
	return
}

func storeBlock(dst []byte, r0, r1, r2, r3 uint32) {
	binary.LittleEndian.PutUint32(dst[0:4], r0)
	binary.LittleEndian.PutUint32(dst[4:8], r1)
	binary.LittleEndian.PutUint32(dst[8:12], r2)
	binary.LittleEndian.PutUint32(dst[12:16], r3)
}

// feistel returns the two F-function output words for round r given the
// current R0, R1.
func (m *keyMaterial) feistel(r0, r1 uint32, round int) (f0, f1 uint32) {
	t0 := m.g(r0)
	t1 := m.g(rotl32(r1, 8))
	f0 = t0 + t1 + m.subKey[2*round+8]
	f1 = t0 + 2*t1 + m.subKey[2*round+9]
	return
}

func (e *Engine) encryptBlock(dst, src []byte) {
	r0, r1, r2, r3 := loadBlock(src)
	k := e.km.subKey

	r0 ^= k[0]
	r1 ^= k[1]
	r2 ^= k[2]
	r3 ^= k[3]

	for round := 0; round < e.rounds; round++ {
		f0, f1 := e.km.feistel(r0, r1, round)
		nr2 := rotr32(r2^f0, 1)
		nr3 := rotl32(r3, 1) ^ f1
		r0, r1, r2, r3 = nr2, nr3, r0, r1
	}
	r0, r1, r2, r3 = r2, r3, r0, r1

	r0 ^= k[4]
	r1 ^= k[5]
	r2 ^= k[6]
	r3 ^= k[7]

	storeBlock(dst, r0, r1, r2, r3)
}

func (e *Engine) decryptBlock(dst, src []byte) {
	r0, r1, r2, r3 := loadBlock(src)
	k := e.km.subKey

	r0 ^= k[4]
	r1 ^= k[5]
	r2 ^= k[6]
	r3 ^= k[7]

	for round := e.rounds - 1; round >= 0; round-- {
		f0, f1 := e.km.feistel(r0, r1, round)
		nr2 := rotl32(r2, 1) ^ f0
		nr3 := rotr32(r3^f1, 1)
		r0, r1, r2, r3 = nr2, nr3, r0, r1
	}
	r0, r1, r2, r3 = r2, r3, r0, r1

	r0 ^= k[0]
	r1 ^= k[1]
	r2 ^= k[2]
	r3 ^= k[3]

	storeBlock(dst, r0, r1, r2, r3)
}

// TransformBlock encrypts or decrypts one 16-byte block, per the
// direction fixed at Initialize.
func (e *Engine) TransformBlock(dst, src []byte) error {
	if !e.initialized {
		return cerr.ErrUninitialized
	}
	if len(src) < blockSize || len(dst) < blockSize {
		return cerr.ErrShortBuffer
	}
	if e.encrypt {
		e.encryptBlock(dst, src)
	} else {
		e.decryptBlock(dst, src)
	}
	return nil
}

// selfTestKeys mirrors shx.SelfTest's approach: round-trip and avalanche
// sensitivity against seeded key fixtures.
var selfTestKeys = [][]byte{
	make([]byte, 16),
	func() []byte {
		k := make([]byte, 32)
		for i := range k {
			k[i] = byte(i)
		}
		return k
	}(),
}

// katZeroKey128 is the classic Twofish known-answer vector: 16-round,
// 128-bit all-zero key and plaintext, from the Twofish reference
// submission's ECB test vectors (Schneier et al., "Twofish: A 128-Bit
// Block Cipher", Appendix B, I=1).
var (
	katZeroKey128        = make([]byte, 16)
	katZeroPlaintext128  = make([]byte, 16)
	katZeroCiphertext128 = []byte{
		0x9f, 0x58, 0x9f, 0x5c, 0xf6, 0x12, 0x2c, 0x32,
		0xb6, 0xbf, 0xec, 0x2f, 0x2a, 0xe8, 0xc3, 0x5a,
	}
)

// SelfTest exercises round-trip correctness and avalanche sensitivity
// against the seeded key fixtures, then checks the classic Twofish
// all-zero-key KAT vector against a fixed reference ciphertext.
func SelfTest() error {
	kat, err := New(16)
	if err != nil {
		return err
	}
	if err := kat.Initialize(true, katZeroKey128); err != nil {
		return err
	}
	gotCT := make([]byte, blockSize)
	if err := kat.TransformBlock(gotCT, katZeroPlaintext128); err != nil {
		return err
	}
	kat.Destroy()
	for i := range gotCT {
		if gotCT[i] != katZeroCiphertext128[i] {
			return cerr.ErrUninitialized
		}
	}

	plaintext := make([]byte, blockSize)
	for _, key := range selfTestKeys {
		enc, err := New(16)
		if err != nil {
			return err
		}
		if err := enc.Initialize(true, key); err != nil {
			return err
		}
		ct := make([]byte, blockSize)
		if err := enc.TransformBlock(ct, plaintext); err != nil {
			return err
		}
		enc.Destroy()

		dec, err := New(16)
		if err != nil {
			return err
		}
		if err := dec.Initialize(false, key); err != nil {
			return err
		}
		back := make([]byte, blockSize)
		if err := dec.TransformBlock(back, ct); err != nil {
			return err
		}
		for i := range back {
			if back[i] != plaintext[i] {
				return cerr.ErrUninitialized
			}
		}
		dec.Destroy()

		flipped := make([]byte, blockSize)
		copy(flipped, plaintext)
		flipped[0] ^= 0x01
		enc2, _ := New(16)
		_ = enc2.Initialize(true, key)
		ct2 := make([]byte, blockSize)
		_ = enc2.TransformBlock(ct2, flipped)
		enc2.Destroy()

		same := true
		for i := range ct {
			if ct[i] != ct2[i] {
				same = false
				break
			}
		}
		if same {
			return cerr.ErrUninitialized
		}
	}
	return nil
}
