package mac

import (
	"bytes"
	"encoding/hex"
	"testing"

	"shxtfx/digest"
)

// TestHMACSHA256RFC4231Case1 checks against RFC 4231 test case 1, which
// exercises the exact SHA-256 selector this package uses directly (the SHA2
// wrapper is a thin pass-through over crypto/sha256, so this is a true
// known-answer test, unlike the Blake/Skein selectors).
func TestHMACSHA256RFC4231Case1(t *testing.T) {
	key := bytes.Repeat([]byte{0x0b}, 20)
	data := []byte("Hi There")
	want, _ := hex.DecodeString("b0344c61d8db38535ca8afceaf0bf12b881dc200c9833da726e9376c2e32cff")

	d, err := digest.New(digest.SHA256)
	if err != nil {
		t.Fatal(err)
	}
	got := Sum(d, key, data)
	if !bytes.Equal(got, want) {
		t.Fatalf("HMAC-SHA256 mismatch:\n got  %x\n want %x", got, want)
	}
}

func TestHMACKeyLongerThanBlock(t *testing.T) {
	d, _ := digest.New(digest.SHA256)
	longKey := bytes.Repeat([]byte{0x42}, 200)
	sum1 := Sum(d, longKey, []byte("message"))

	d2, _ := digest.New(digest.SHA256)
	sum2 := Sum(d2, longKey, []byte("message"))
	if !bytes.Equal(sum1, sum2) {
		t.Fatal("HMAC over a key longer than block size is not deterministic")
	}
}

func TestHMACReusableAfterInit(t *testing.T) {
	d, _ := digest.New(digest.SHA256)
	h := New(d)
	h.Init([]byte("key1"))
	h.Update([]byte("msg"))
	out1 := make([]byte, h.Size())
	h.Finalize(out1)

	h.Init([]byte("key2"))
	h.Update([]byte("msg"))
	out2 := make([]byte, h.Size())
	h.Finalize(out2)

	if bytes.Equal(out1, out2) {
		t.Fatal("expected different MACs for different keys")
	}
}
