package digest

import (
	"hash"

	"golang.org/x/crypto/sha3"
)

// Keccak256/Keccak512 use the original (unpadded, pre-NIST) Keccak
// domain separator, not FIPS 202 SHA3-256/512: the §6.3 block sizes
// (136, 72 bytes) are Keccak's sponge rates, not SHA3's padded rates,
// so golang.org/x/crypto/sha3's Legacy constructors are the correct match.
func newKeccak256() DigestIface {
	w := &stdWrap{newFn: func() hash.Hash { return sha3.NewLegacyKeccak256() }, output: 32, block: 136}
	w.Reset()
	return w
}

func newKeccak512() DigestIface {
	w := &stdWrap{newFn: func() hash.Hash { return sha3.NewLegacyKeccak512() }, output: 64, block: 72}
	w.Reset()
	return w
}
