package kdf

import (
	"bytes"
	"encoding/hex"
	"testing"

	"shxtfx/digest"
)

// TestRFC5869Case1 matches RFC 5869's basic SHA-256 test case exactly,
// since SHA256 is a direct crypto/sha256 pass-through with no size
// translation.
func TestRFC5869Case1(t *testing.T) {
	ikm, _ := hex.DecodeString("0b0b0b0b0b0b0b0b0b0b0b0b0b0b0b0b0b0b0b0b0b0b")
	salt, _ := hex.DecodeString("000102030405060708090a0b0c")
	info, _ := hex.DecodeString("f0f1f2f3f4f5f6f7f8f9")
	wantOKM, _ := hex.DecodeString("3cb25f25faacd57a90434f64d0362f2a2d2d0a90cf1a5a4c5db02d56ecc4c5bf34007208d5b887185865")

	h, err := New(digest.SHA256)
	if err != nil {
		t.Fatal(err)
	}
	if err := h.Initialize(salt, ikm); err != nil {
		t.Fatal(err)
	}

	okm := make([]byte, 42)
	if err := h.Generate(okm, info); err != nil {
		t.Fatal(err)
	}
	if !bytes.Equal(okm, wantOKM) {
		t.Fatalf("OKM mismatch:\n got  %x\n want %x", okm, wantOKM)
	}
}

func TestLengthExceeded(t *testing.T) {
	h, _ := New(digest.SHA256)
	if err := h.Initialize(nil, []byte("ikm")); err != nil {
		t.Fatal(err)
	}
	out := make([]byte, 255*32+1)
	if err := h.Generate(out, nil); err == nil {
		t.Fatal("expected ErrLengthExceeded")
	}
}

func TestEmptySaltUsesZeroBuffer(t *testing.T) {
	h1, _ := New(digest.SHA256)
	_ = h1.Initialize(nil, []byte("ikm-material"))
	out1 := make([]byte, 32)
	_ = h1.Generate(out1, []byte("info"))

	h2, _ := New(digest.SHA256)
	_ = h2.Initialize(make([]byte, 32), []byte("ikm-material"))
	out2 := make([]byte, 32)
	_ = h2.Generate(out2, []byte("info"))

	if !bytes.Equal(out1, out2) {
		t.Fatal("empty salt should behave identically to a zero-filled salt of digest size")
	}
}

func TestGenerateBeforeInitialize(t *testing.T) {
	h, _ := New(digest.SHA256)
	out := make([]byte, 16)
	if err := h.Generate(out, nil); err == nil {
		t.Fatal("expected error when Generate is called before Initialize")
	}
}
