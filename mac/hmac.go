// Package mac implements HMAC (RFC 2104 / FIPS 198-1) over the digest
// package's pluggable DigestIface, the way macs.HMac in the retrieved pack
// wraps a Digest interface rather than a concrete hash.
package mac

import "shxtfx/digest"

const (
	ipad = 0x36
	opad = 0x5C
)

// HMAC is a keyed MAC over any DigestIface. It is reusable across keys via
// Init, matching the digest's own reset-on-finalize behavior.
type HMAC struct {
	d           digest.DigestIface
	blockLen    int
	digestLen   int
	innerPadded []byte
	outerPadded []byte
}

// New constructs an HMAC over the given digest. The digest must be freshly
// constructed or reset; HMAC takes ownership of it for the lifetime of the
// HMAC instance.
func New(d digest.DigestIface) *HMAC {
	h := &HMAC{
		d:         d,
		blockLen:  d.BlockSize(),
		digestLen: d.OutputSize(),
	}
	h.innerPadded = make([]byte, h.blockLen)
	h.outerPadded = make([]byte, h.blockLen)
	return h
}

// Init keys the HMAC, preparing the inner and outer pads per FIPS 198-1:
// keys longer than the block size are first hashed down, keys shorter are
// zero-padded up.
func (h *HMAC) Init(key []byte) {
	h.d.Reset()

	k := key
	if len(k) > h.blockLen {
		h.d.Update(k)
		hashed := make([]byte, h.digestLen)
		h.d.Finalize(hashed)
		k = hashed
	}

	for i := 0; i < h.blockLen; i++ {
		var kb byte
		if i < len(k) {
			kb = k[i]
		}
		h.innerPadded[i] = kb ^ ipad
		h.outerPadded[i] = kb ^ opad
	}

	h.d.Reset()
	h.d.Update(h.innerPadded)
}

// Update absorbs message bytes into the inner hash.
func (h *HMAC) Update(p []byte) {
	h.d.Update(p)
}

// Finalize writes the MAC tag into out, which must be at least
// Size() bytes, and leaves the HMAC ready for reuse only after a fresh
// Init call.
func (h *HMAC) Finalize(out []byte) {
	inner := make([]byte, h.digestLen)
	h.d.Finalize(inner)

	h.d.Reset()
	h.d.Update(h.outerPadded)
	h.d.Update(inner)
	h.d.Finalize(out)
}

// Size returns the MAC tag length in bytes (the underlying digest's
// output size).
func (h *HMAC) Size() int { return h.digestLen }

// Sum is a convenience one-shot HMAC over key and msg using d (which is
// reset and owned for the duration of the call).
func Sum(d digest.DigestIface, key, msg []byte) []byte {
	h := New(d)
	h.Init(key)
	h.Update(msg)
	out := make([]byte, h.Size())
	h.Finalize(out)
	return out
}
