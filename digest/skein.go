package digest

import "encoding/binary"

const (
	skeinTypeCfg = 4
	skeinTypeMsg = 48
	skeinTypeOut = 63
)

const skeinSchemaID = 0x33414853 // ASCII "SHA3", little-endian

func skeinTweak(pos uint64, blockType uint64, first, final bool) [2]uint64 {
	var t1 uint64 = blockType << 56
	if first {
		t1 |= 1 << 62
	}
	if final {
		t1 |= 1 << 63
	}
	return [2]uint64{pos, t1}
}

func bytesToWords(nw int, data []byte) []uint64 {
	words := make([]uint64, nw)
	for i := 0; i < nw && i*8 < len(data); i++ {
		var buf [8]byte
		copy(buf[:], data[i*8:])
		words[i] = binary.LittleEndian.Uint64(buf[:])
	}
	return words
}

func wordsToBytes(words []uint64) []byte {
	out := make([]byte, len(words)*8)
	for i, w := range words {
		binary.LittleEndian.PutUint64(out[i*8:], w)
	}
	return out
}

// skein implements the Skein hash (UBI chaining over Threefish) for the
// "n-n" configuration (output size equal to the internal state size),
// which is what spec §6.3 asks for at all three widths.
type skein struct {
	nw      int
	nb      int
	output  int
	g       []uint64
	buf     []byte
	total   uint64 // bytes chained into g so far, not counting buf
	anyMsg  bool   // whether at least one message block has been chained
}

func newSkeinState(nw, output int) *skein {
	d := &skein{nw: nw, nb: nw * 8, output: output}
	d.Reset()
	return d
}

func newSkein256() DigestIface  { return newSkeinState(4, 32) }
func newSkein512() DigestIface  { return newSkeinState(8, 64) }
func newSkein1024() DigestIface { return newSkeinState(16, 128) }

func (d *skein) BlockSize() int  { return d.output }
func (d *skein) OutputSize() int { return d.output }

func (d *skein) Reset() {
	cfg := make([]byte, d.nb)
	binary.LittleEndian.PutUint32(cfg[0:4], skeinSchemaID)
	binary.LittleEndian.PutUint16(cfg[4:6], 1)
	binary.LittleEndian.PutUint64(cfg[8:16], uint64(d.output)*8)

	zero := make([]uint64, d.nw)
	tw := skeinTweak(uint64(32), skeinTypeCfg, true, true)
	d.g = ubi(d.nw, zero, tw, bytesToWords(d.nw, cfg))
	d.buf = d.buf[:0]
	d.total = 0
	d.anyMsg = false
}

func (d *skein) zero() {
	for i := range d.g {
		d.g[i] = 0
	}
	d.buf = nil
	d.total, d.anyMsg = 0, false
}

func (d *skein) Update(p []byte) {
	d.buf = append(d.buf, p...)
	for len(d.buf) > d.nb {
		block := d.buf[:d.nb]
		d.total += uint64(d.nb)
		tw := skeinTweak(d.total, skeinTypeMsg, !d.anyMsg, false)
		d.g = ubi(d.nw, d.g, tw, bytesToWords(d.nw, block))
		d.anyMsg = true
		d.buf = append([]byte(nil), d.buf[d.nb:]...)
	}
}

func (d *skein) Finalize(out []byte) {
	d.total += uint64(len(d.buf))
	tw := skeinTweak(d.total, skeinTypeMsg, !d.anyMsg, true)
	d.g = ubi(d.nw, d.g, tw, bytesToWords(d.nw, d.buf))

	ctr := make([]byte, d.nb)
	twOut := skeinTweak(8, skeinTypeOut, true, true)
	outWords := ubi(d.nw, d.g, twOut, bytesToWords(d.nw, ctr))
	copy(out, wordsToBytes(outWords)[:d.output])

	d.Reset()
}
