package digest

import "testing"

func TestSizesMatchTable(t *testing.T) {
	cases := []struct {
		sel    Selector
		output int
		block  int
	}{
		{Blake256, 32, 32},
		{Blake512, 64, 64},
		{Keccak256, 32, 136},
		{Keccak512, 64, 72},
		{SHA256, 32, 64},
		{SHA512, 64, 128},
		{Skein256, 32, 32},
		{Skein512, 64, 64},
		{Skein1024, 128, 128},
	}
	for _, c := range cases {
		d, err := New(c.sel)
		if err != nil {
			t.Fatalf("%s: %v", c.sel, err)
		}
		if d.OutputSize() != c.output {
			t.Errorf("%s: output size = %d, want %d", c.sel, d.OutputSize(), c.output)
		}
		if d.BlockSize() != c.block {
			t.Errorf("%s: block size = %d, want %d", c.sel, d.BlockSize(), c.block)
		}
	}
}

func TestUnsupportedSelector(t *testing.T) {
	if _, err := New(Selector(99)); err == nil {
		t.Fatal("expected error for unsupported selector")
	}
}

func TestDeterministicAndSensitive(t *testing.T) {
	for _, sel := range []Selector{Blake256, Blake512, Keccak256, Keccak512, SHA256, SHA512, Skein256, Skein512, Skein1024} {
		d1, _ := New(sel)
		d2, _ := New(sel)

		msg := []byte("the quick brown fox jumps over the lazy dog")
		d1.Update(msg)
		d2.Update(msg)

		out1 := make([]byte, d1.OutputSize())
		out2 := make([]byte, d2.OutputSize())
		d1.Finalize(out1)
		d2.Finalize(out2)

		if string(out1) != string(out2) {
			t.Errorf("%s: not deterministic", sel)
		}

		d3, _ := New(sel)
		d3.Update([]byte("the quick brown fox jumps over the lazy dof"))
		out3 := make([]byte, d3.OutputSize())
		d3.Finalize(out3)
		if string(out1) == string(out3) {
			t.Errorf("%s: insensitive to single-byte change", sel)
		}

		// Finalize resets the digest for reuse.
		d1.Update([]byte("more"))
		out4 := make([]byte, d1.OutputSize())
		d1.Finalize(out4)
		if len(out4) != d1.OutputSize() {
			t.Errorf("%s: unexpected output length after reuse", sel)
		}
	}
}

func TestSkeinMultiBlock(t *testing.T) {
	// Exercise the Update buffering boundary (> one internal block).
	d, _ := New(Skein512)
	big := make([]byte, 500)
	for i := range big {
		big[i] = byte(i)
	}
	d.Update(big)
	out := make([]byte, d.OutputSize())
	d.Finalize(out)

	d2, _ := New(Skein512)
	d2.Update(big[:200])
	d2.Update(big[200:])
	out2 := make([]byte, d2.OutputSize())
	d2.Finalize(out2)

	if string(out) != string(out2) {
		t.Fatal("chunked update produced different digest than single update")
	}
}
