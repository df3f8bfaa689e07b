package digest

import (
	"crypto/sha256"
	"crypto/sha512"
	"hash"
)

// stdWrap adapts a stdlib hash.Hash to DigestIface. SHA-256's and SHA-512's
// native block/output sizes already match the §6.3 table exactly, so no
// size translation is needed here (contrast blake.go, where they don't).
type stdWrap struct {
	h      hash.Hash
	newFn  func() hash.Hash
	output int
	block  int
}

func (w *stdWrap) BlockSize() int  { return w.block }
func (w *stdWrap) OutputSize() int { return w.output }
func (w *stdWrap) Update(p []byte) { w.h.Write(p) }

func (w *stdWrap) Finalize(out []byte) {
	sum := w.h.Sum(nil)
	copy(out, sum)
	w.Reset()
}

func (w *stdWrap) Reset() { w.h = w.newFn() }

func newSHA256() DigestIface {
	w := &stdWrap{newFn: func() hash.Hash { return sha256.New() }, output: 32, block: 64}
	w.Reset()
	return w
}

func newSHA512() DigestIface {
	w := &stdWrap{newFn: func() hash.Hash { return sha512.New() }, output: 64, block: 128}
	w.Reset()
	return w
}
