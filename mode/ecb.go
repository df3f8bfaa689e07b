// Package mode implements the ECB mode glue over any cipher.BlockEngine.
package mode

import (
	"shxtfx/cerr"
	"shxtfx/cipher"
)

// ECB transforms a buffer one cipher.BlockEngine block at a time, with no
// chaining between blocks.
type ECB struct {
	engine cipher.BlockEngine
}

// New wraps an already-Initialize'd engine for ECB-mode transforms.
func New(engine cipher.BlockEngine) *ECB {
	return &ECB{engine: engine}
}

// BlockSize delegates to the wrapped engine.
func (e *ECB) BlockSize() int { return e.engine.BlockSize() }

// Transform processes src in BlockSize()-sized chunks into dst, calling
// the wrapped engine's TransformBlock once per block. len(src) must be a
// positive multiple of BlockSize().
func (e *ECB) Transform(dst, src []byte) error {
	bs := e.engine.BlockSize()
	if len(src) == 0 || len(src)%bs != 0 {
		return cerr.ErrShortBuffer
	}
	if len(dst) < len(src) {
		return cerr.ErrShortBuffer
	}
	for off := 0; off < len(src); off += bs {
		if err := e.engine.TransformBlock(dst[off:off+bs], src[off:off+bs]); err != nil {
			return err
		}
	}
	return nil
}

// Destroy disposes of the underlying engine's key material.
func (e *ECB) Destroy() { e.engine.Destroy() }
