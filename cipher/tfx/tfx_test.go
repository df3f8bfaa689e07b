package tfx

import (
	"bytes"
	"testing"
)

func TestSelfTest(t *testing.T) {
	if err := SelfTest(); err != nil {
		t.Fatalf("SelfTest failed: %v", err)
	}
}

func TestRoundTripAllKeySizes(t *testing.T) {
	for _, ks := range legalKeyByteSizes {
		key := make([]byte, ks)
		for i := range key {
			key[i] = byte(i * 11)
		}
		plaintext := []byte("Twofish-vector!!")

		enc, err := New(0)
		if err != nil {
			t.Fatal(err)
		}
		if err := enc.Initialize(true, key); err != nil {
			t.Fatalf("key size %d: %v", ks, err)
		}
		ct := make([]byte, 16)
		if err := enc.TransformBlock(ct, plaintext); err != nil {
			t.Fatal(err)
		}
		enc.Destroy()

		dec, _ := New(0)
		if err := dec.Initialize(false, key); err != nil {
			t.Fatal(err)
		}
		pt := make([]byte, 16)
		if err := dec.TransformBlock(pt, ct); err != nil {
			t.Fatal(err)
		}
		dec.Destroy()

		if !bytes.Equal(pt, plaintext) {
			t.Fatalf("key size %d: round trip mismatch: got %x want %x", ks, pt, plaintext)
		}
	}
}

func TestRoundTripExtendedRounds(t *testing.T) {
	for _, rounds := range []int{18, 20, 22, 24, 26, 28, 30, 32} {
		key := make([]byte, 64)
		for i := range key {
			key[i] = byte(i * 5)
		}
		enc, err := New(rounds)
		if err != nil {
			t.Fatal(err)
		}
		if err := enc.Initialize(true, key); err != nil {
			t.Fatal(err)
		}
		plaintext := []byte("extended-rounds!")
		ct := make([]byte, 16)
		if err := enc.TransformBlock(ct, plaintext); err != nil {
			t.Fatal(err)
		}

		dec, _ := New(rounds)
		if err := dec.Initialize(false, key); err != nil {
			t.Fatal(err)
		}
		pt := make([]byte, 16)
		if err := dec.TransformBlock(pt, ct); err != nil {
			t.Fatal(err)
		}
		if !bytes.Equal(pt, plaintext) {
			t.Fatalf("rounds %d: round trip mismatch: got %x want %x", rounds, pt, plaintext)
		}
	}
}

func TestZeroKeyKATVector(t *testing.T) {
	e, err := New(16)
	if err != nil {
		t.Fatal(err)
	}
	if err := e.Initialize(true, katZeroKey128); err != nil {
		t.Fatal(err)
	}
	ct := make([]byte, 16)
	if err := e.TransformBlock(ct, katZeroPlaintext128); err != nil {
		t.Fatal(err)
	}
	if !bytes.Equal(ct, katZeroCiphertext128) {
		t.Fatalf("zero-key KAT mismatch: got %x want %x", ct, katZeroCiphertext128)
	}
}

func TestInvalidRounds(t *testing.T) {
	if _, err := New(17); err == nil {
		t.Fatal("expected ErrInvalidRounds for 17")
	}
}

func TestInvalidKeySize(t *testing.T) {
	e, _ := New(0)
	if err := e.Initialize(true, make([]byte, 20)); err == nil {
		t.Fatal("expected ErrInvalidKeySize for a 20-byte key")
	}
}

func TestDestroyZeroesSubkeys(t *testing.T) {
	e, _ := New(0)
	if err := e.Initialize(true, make([]byte, 16)); err != nil {
		t.Fatal(err)
	}
	e.Destroy()
	for _, w := range e.expandedSubkeys() {
		if w != 0 {
			t.Fatal("subkeys not zeroed after Destroy")
		}
	}
}

func TestTransformBlockBeforeInitialize(t *testing.T) {
	e, _ := New(0)
	if err := e.TransformBlock(make([]byte, 16), make([]byte, 16)); err == nil {
		t.Fatal("expected ErrUninitialized")
	}
}

func TestTransformBlockShortBuffer(t *testing.T) {
	e, _ := New(0)
	_ = e.Initialize(true, make([]byte, 16))
	if err := e.TransformBlock(make([]byte, 8), make([]byte, 16)); err == nil {
		t.Fatal("expected ErrShortBuffer")
	}
}
