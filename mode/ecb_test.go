package mode

import (
	"bytes"
	"testing"

	"shxtfx/cipher/shx"
	"shxtfx/cipher/tfx"
)

// TestECBMatchesIndependentBlocks verifies that running ECB over ten
// contiguous blocks produces the same output as ten independent
// TransformBlock calls.
func TestECBMatchesIndependentBlocks(t *testing.T) {
	key := make([]byte, 32)
	for i := range key {
		key[i] = byte(i * 3)
	}

	plain := make([]byte, 16*10)
	for i := range plain {
		plain[i] = byte(i)
	}

	direct, err := shx.New(0, shx.DefaultDigest)
	if err != nil {
		t.Fatal(err)
	}
	if err := direct.Initialize(true, key); err != nil {
		t.Fatal(err)
	}
	wantBuf := make([]byte, len(plain))
	for off := 0; off < len(plain); off += 16 {
		if err := direct.TransformBlock(wantBuf[off:off+16], plain[off:off+16]); err != nil {
			t.Fatal(err)
		}
	}

	viaECB, err := shx.New(0, shx.DefaultDigest)
	if err != nil {
		t.Fatal(err)
	}
	if err := viaECB.Initialize(true, key); err != nil {
		t.Fatal(err)
	}
	ecb := New(viaECB)
	gotBuf := make([]byte, len(plain))
	if err := ecb.Transform(gotBuf, plain); err != nil {
		t.Fatal(err)
	}

	if !bytes.Equal(gotBuf, wantBuf) {
		t.Fatalf("ECB output diverges from independent block calls")
	}
}

func TestECBRoundTripWithTFX(t *testing.T) {
	key := make([]byte, 16)
	for i := range key {
		key[i] = byte(i)
	}
	plain := make([]byte, 16*4)
	for i := range plain {
		plain[i] = byte(i * 2)
	}

	enc, _ := tfx.New(0)
	if err := enc.Initialize(true, key); err != nil {
		t.Fatal(err)
	}
	ct := make([]byte, len(plain))
	if err := New(enc).Transform(ct, plain); err != nil {
		t.Fatal(err)
	}

	dec, _ := tfx.New(0)
	if err := dec.Initialize(false, key); err != nil {
		t.Fatal(err)
	}
	pt := make([]byte, len(plain))
	if err := New(dec).Transform(pt, ct); err != nil {
		t.Fatal(err)
	}

	if !bytes.Equal(pt, plain) {
		t.Fatalf("ECB round trip mismatch: got %x want %x", pt, plain)
	}
}

func TestTransformRejectsNonMultipleLength(t *testing.T) {
	key := make([]byte, 16)
	e, _ := shx.New(0, shx.DefaultDigest)
	_ = e.Initialize(true, key)
	ecb := New(e)
	if err := ecb.Transform(make([]byte, 20), make([]byte, 20)); err == nil {
		t.Fatal("expected error for a non-block-multiple length")
	}
}
