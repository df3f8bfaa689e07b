// Package shx implements the Serpent-derived 128-bit block cipher with its
// optional HKDF-extended key schedule.
package shx

import (
	"encoding/binary"

	"shxtfx/cerr"
	"shxtfx/digest"
)

const blockSize = 16

// DefaultDigest requests the HKDF-path default digest (SHA512) rather
// than a specific selector. digest.Selector's zero value is the legal
// selector Blake256, so a plain zero value can't double as "unset"
// without silently stealing Blake256 away from callers who actually want
// it; this sentinel keeps the two cases distinct.
const DefaultDigest digest.Selector = -1

// Engine is a Serpent-derived block cipher with a standard 128/192/256/512
// bit key schedule, or an HKDF-backed schedule for keys beyond 64 bytes.
type Engine struct {
	rounds           int
	digestSelector   digest.Selector
	ikmSize          int
	distributionCode []byte

	initialized bool
	encrypt     bool
	expKey      []uint32
}

// New constructs an Engine with the given round count. rounds must be one
// of LegalRounds(); 0 selects the default of 32. sel is only consulted
// when Initialize is called with a key longer than 64 bytes; pass
// DefaultDigest to get the HKDF-path default of SHA512.
func New(rounds int, sel digest.Selector) (*Engine, error) {
	if rounds == 0 {
		rounds = 32
	}
	if !isLegalRound(rounds) {
		return nil, cerr.ErrInvalidRounds
	}
	return &Engine{
		rounds:           rounds,
		digestSelector:   sel,
		distributionCode: append([]byte(nil), defaultDistributionCode...),
	}, nil
}

// resolvedDigest returns the engine's configured selector, substituting
// the HKDF-path default when none was given.
func (e *Engine) resolvedDigest() digest.Selector {
	if e.digestSelector == DefaultDigest {
		return digest.SHA512
	}
	return e.digestSelector
}

// SetDistributionCode overrides the HKDF info string used by the HKDF
// key-schedule path. Must be called before Initialize.
func (e *Engine) SetDistributionCode(code []byte) error {
	if e.initialized {
		return cerr.ErrAlreadyInitialized
	}
	if code == nil {
		return cerr.ErrInvalidDistributionCode
	}
	e.distributionCode = append([]byte(nil), code...)
	return nil
}

// SetIKMSize overrides the IKM/salt split point used by the HKDF key
// schedule path. Must be called before Initialize. The value is clamped
// into [digest output size, digest block size] and rounded down to a
// multiple of the digest output size.
func (e *Engine) SetIKMSize(n int) error {
	if e.initialized {
		return cerr.ErrAlreadyInitialized
	}
	clamped, err := clampIKMSize(n, e.resolvedDigest())
	if err != nil {
		return err
	}
	e.ikmSize = clamped
	return nil
}

// Initialize builds the expanded key for encryption or decryption, routing
// through the standard path (key.len() <= 64) or the HKDF path
// (key.len() > 64), per spec §4.4.
func (e *Engine) Initialize(encrypt bool, key []byte) error {
	switch {
	case len(key) <= 64:
		if !isStandardKeySize(len(key)) {
			return cerr.ErrInvalidKeySize
		}
		if len(key) == 64 {
			if e.rounds != 32 && e.rounds != 40 {
				return cerr.ErrInvalidRounds
			}
		} else if e.rounds != 32 {
			return cerr.ErrInvalidRounds
		}
		e.expKey = expandStandard(key, e.rounds)

	default:
		sel := e.resolvedDigest()
		ikmSize := e.ikmSize
		if ikmSize == 0 {
			out, err := digest.OutputSize(sel)
			if err != nil {
				return err
			}
			ikmSize = out
		}
		expKey, err := expandHKDF(key, e.rounds, sel, ikmSize, e.distributionCode)
		if err != nil {
			return err
		}
		e.expKey = expKey
	}

	e.encrypt = encrypt
	e.initialized = true
	return nil
}

// BlockSize returns the engine's fixed 128-bit block size.
func (e *Engine) BlockSize() int { return blockSize }

// LegalKeySizes returns the standard-path key sizes. Keys longer than 64
// bytes are also legal via the HKDF path provided the residue
// (key.len()-ikm_size) is a positive multiple of the configured digest's
// block size; see LegalHKDFKeySize.
func (e *Engine) LegalKeySizes() []int {
	out := make([]int, len(standardKeySizes))
	copy(out, standardKeySizes)
	return out
}

// LegalHKDFKeySize reports whether keyLen is a legal HKDF-path key size
// for the given digest selector and configured IKM size.
func LegalHKDFKeySize(keyLen int, sel digest.Selector, ikmSize int) bool {
	if keyLen <= 64 {
		return false
	}
	_, _, err := hkdfSplit(keyLen, sel, ikmSize)
	return err == nil
}

// LegalRounds returns the full SHX round menu.
func (e *Engine) LegalRounds() []int {
	out := make([]int, len(legalRounds))
	copy(out, legalRounds)
	return out
}

// Destroy zeroes the expanded key.
func (e *Engine) Destroy() {
	for i := range e.expKey {
		e.expKey[i] = 0
	}
	e.initialized = false
}

// expandedKeyBytes is a test-only probe used to verify zeroization.
func (e *Engine) expandedKeyBytes() []uint32 { return e.expKey }

func loadBlock(src []byte) (r0, r1, r2, r3 uint32) {
	r0 = binary.BigEndian.Uint32(src[0:4])
	r1 = binary.BigEndian.Uint32(src[4:8])
	r2 = binary.BigEndian.Uint32(src[8:12])
	r3 = binary.BigEndian.Uint32(src[12:16])
	return
}

func storeBlock(dst []byte, r0, r1, r2, r3 uint32) {
	binary.BigEndian.PutUint32(dst[0:4], r0)
	binary.BigEndian.PutUint32(dst[4:8], r1)
	binary.BigEndian.PutUint32(dst[8:12], r2)
	binary.BigEndian.PutUint32(dst[12:16], r3)
}

var sboxOrder = [8]func(*uint32, *uint32, *uint32, *uint32){sb0, sb1, sb2, sb3, sb4, sb5, sb6, sb7}
var isboxOrder = [8]func(*uint32, *uint32, *uint32, *uint32){ib0, ib1, ib2, ib3, ib4, ib5, ib6, ib7}

func (e *Engine) encryptBlock(dst, src []byte) {
	r0, r1, r2, r3 := loadBlock(src)
	k := e.expKey

	r0 ^= k[0]
	r1 ^= k[1]
	r2 ^= k[2]
	r3 ^= k[3]

	rounds := e.rounds
	for round := 0; round < rounds; round++ {
		sboxOrder[round%8](&r0, &r1, &r2, &r3)
		if round < rounds-1 {
			lt(&r0, &r1, &r2, &r3)
		}
		base := 4 * (round + 1)
		r0 ^= k[base]
		r1 ^= k[base+1]
		r2 ^= k[base+2]
		r3 ^= k[base+3]
	}

	storeBlock(dst, r0, r1, r2, r3)
}

func (e *Engine) decryptBlock(dst, src []byte) {
	r0, r1, r2, r3 := loadBlock(src)
	k := e.expKey
	rounds := e.rounds

	for round := rounds - 1; round >= 0; round-- {
		base := 4 * (round + 1)
		r0 ^= k[base]
		r1 ^= k[base+1]
		r2 ^= k[base+2]
		r3 ^= k[base+3]
		if round < rounds-1 {
			ilt(&r0, &r1, &r2, &r3)
		}
		isboxOrder[round%8](&r0, &r1, &r2, &r3)
	}

	r0 ^= k[0]
	r1 ^= k[1]
	r2 ^= k[2]
	r3 ^= k[3]

	storeBlock(dst, r0, r1, r2, r3)
}

// TransformBlock encrypts or decrypts one 16-byte block, per the direction
// fixed at Initialize.
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

// selfTestKeys are spec §8's seeded key fixtures: an all-zero 32-byte key
// and a 32-byte key with byte i = i. SelfTest checks round-trip and
// single-bit sensitivity against them; unlike tfx.SelfTest's zero-key KAT
// check, no fixed reference ciphertext is pinned here, since the Serpent
// variable-key KAT set is long enough that transcribing a single entry
// from memory risks baking in a wrong "reference" value rather than a
// real one, which is worse than the avalanche-only check it would replace.
var selfTestKeys = [][]byte{
	make([]byte, 32),
	func() []byte {
		k := make([]byte, 32)
		for i := range k {
			k[i] = byte(i)
		}
		return k
	}(),
}

// SelfTest exercises round-trip correctness and avalanche sensitivity
// against the seeded key fixtures and reports the first failure, if any.
func SelfTest() error {
	plaintext := make([]byte, blockSize)
	for _, key := range selfTestKeys {
		enc, err := New(32, DefaultDigest)
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

		dec, err := New(32, DefaultDigest)
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
		enc2, _ := New(32, DefaultDigest)
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
