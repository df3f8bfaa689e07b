// Package kdf implements HKDF (RFC 5869) extract-and-expand over the
// digest package's pluggable DigestIface via mac.HMAC. golang.org/x/crypto
// already ships an HKDF reader, but it is typed over func() hash.Hash and
// cannot accept the Blake/Skein selectors digest.DigestIface exposes, so
// the core reimplements extract/expand directly — the surface below
// (New/Initialize/Generate) follows the shape of the HKDF helpers in
// guided-traffic-s3-encryption-proxy's internal/crypto/hkdf.go and
// CG-8663-shadowmesh's pkg/crypto/rotation/hkdf.go.
package kdf

import (
	"shxtfx/cerr"
	"shxtfx/digest"
	"shxtfx/mac"
)

// HKDF holds the state of one extract-and-expand derivation.
type HKDF struct {
	sel    digest.Selector
	output int
	prk    []byte
}

// New constructs an HKDF generator bound to the given digest selector.
func New(sel digest.Selector) (*HKDF, error) {
	out, err := digest.OutputSize(sel)
	if err != nil {
		return nil, err
	}
	return &HKDF{sel: sel, output: out}, nil
}

// Initialize runs the RFC 5869 Extract step: PRK = HMAC(salt, IKM). An
// empty salt is replaced with a zero buffer of the digest's output size,
// per RFC 5869 §2.2.
func (h *HKDF) Initialize(salt, ikm []byte) error {
	if len(salt) == 0 {
		salt = make([]byte, h.output)
	}
	d, err := digest.New(h.sel)
	if err != nil {
		return err
	}
	h.prk = mac.Sum(d, salt, ikm)
	return nil
}

// Generate runs the RFC 5869 Expand step, filling out with len(out) bytes
// of keying material derived from info. Generate may be called only after
// a successful Initialize, and fails with ErrLengthExceeded if
// len(out) > 255 * digest output size.
func (h *HKDF) Generate(out []byte, info []byte) error {
	if h.prk == nil {
		return cerr.ErrUninitialized
	}
	l := len(out)
	if l > 255*h.output {
		return cerr.ErrLengthExceeded
	}

	d, err := digest.New(h.sel)
	if err != nil {
		return err
	}

	var prev []byte
	written := 0
	for i := 1; written < l; i++ {
		h2 := mac.New(d)
		h2.Init(h.prk)
		h2.Update(prev)
		h2.Update(info)
		h2.Update([]byte{byte(i)})
		t := make([]byte, h2.Size())
		h2.Finalize(t)

		n := copy(out[written:], t)
		written += n
		prev = t
	}
	return nil
}

// Zero overwrites the pseudorandom key held by h. Safe to call more than
// once.
func (h *HKDF) Zero() {
	for i := range h.prk {
		h.prk[i] = 0
	}
	h.prk = nil
}
