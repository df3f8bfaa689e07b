// Package digest provides the pluggable hash abstraction HMAC and HKDF are
// built over, together with the nine concrete selectors the core tolerates.
package digest

import "shxtfx/cerr"

// DigestIface is the abstract hash contract HMAC and HKDF consume. None of
// the core ever needs a digest beyond Update/Finalize/Reset plus the two
// size getters, so no richer hash.Hash-style surface is exposed here.
type DigestIface interface {
	// BlockSize reports the digest's input block size in bytes, used by
	// HMAC for key padding and by the SHX HKDF path for salt sizing.
	BlockSize() int

	// OutputSize reports the digest's output size in bytes.
	OutputSize() int

	// Update absorbs bytes into the running hash state.
	Update(p []byte)

	// Finalize writes the digest into out, which must be at least
	// OutputSize() bytes, then resets to the initial state.
	Finalize(out []byte)

	// Reset returns the digest to its initial state without producing
	// output.
	Reset()
}

// zeroer is implemented by digests that hold sensitive internal state
// worth overwriting explicitly on top of Reset (Reset zeroes the visible
// chaining state already; zeroer additionally clears scratch buffers).
type zeroer interface {
	zero()
}

// Selector names one of the nine digest primitives the core supports.
type Selector int

const (
	Blake256 Selector = iota
	Blake512
	Keccak256
	Keccak512
	SHA256
	SHA512
	Skein256
	Skein512
	Skein1024
)

func (s Selector) String() string {
	switch s {
	case Blake256:
		return "Blake256"
	case Blake512:
		return "Blake512"
	case Keccak256:
		return "Keccak256"
	case Keccak512:
		return "Keccak512"
	case SHA256:
		return "SHA256"
	case SHA512:
		return "SHA512"
	case Skein256:
		return "Skein256"
	case Skein512:
		return "Skein512"
	case Skein1024:
		return "Skein1024"
	default:
		return "Unknown"
	}
}

// sizePair is the (output_size, block_size) pair fixed by spec §6.3.
type sizePair struct {
	output int
	block  int
}

var sizes = map[Selector]sizePair{
	Blake256:  {output: 32, block: 32},
	Blake512:  {output: 64, block: 64},
	Keccak256: {output: 32, block: 136},
	Keccak512: {output: 64, block: 72},
	SHA256:    {output: 32, block: 64},
	SHA512:    {output: 64, block: 128},
	Skein256:  {output: 32, block: 32},
	Skein512:  {output: 64, block: 64},
	Skein1024: {output: 128, block: 128},
}

// OutputSize returns the output size in bytes that the selector produces,
// per the §6.3 table, without constructing a digest instance.
func OutputSize(s Selector) (int, error) {
	p, ok := sizes[s]
	if !ok {
		return 0, cerr.ErrUnsupportedDigest
	}
	return p.output, nil
}

// BlockSize returns the HMAC-significant block size for the selector, per
// the §6.3 table, without constructing a digest instance.
func BlockSize(s Selector) (int, error) {
	p, ok := sizes[s]
	if !ok {
		return 0, cerr.ErrUnsupportedDigest
	}
	return p.block, nil
}

// New constructs a fresh, reset DigestIface for the given selector.
func New(s Selector) (DigestIface, error) {
	switch s {
	case Blake256:
		return newBlake256(), nil
	case Blake512:
		return newBlake512(), nil
	case Keccak256:
		return newKeccak256(), nil
	case Keccak512:
		return newKeccak512(), nil
	case SHA256:
		return newSHA256(), nil
	case SHA512:
		return newSHA512(), nil
	case Skein256:
		return newSkein256(), nil
	case Skein512:
		return newSkein512(), nil
	case Skein1024:
		return newSkein1024(), nil
	default:
		return nil, cerr.ErrUnsupportedDigest
	}
}

// Zero overwrites a digest's internal state with zeros. kdf.HKDF does not
// call it on the digest instances it creates. Digests
// that don't implement zeroer (the stdlib-backed wrappers) are reset
// instead, which already clears their chaining state.
func Zero(d DigestIface) {
	if z, ok := d.(zeroer); ok {
		z.zero()
		return
	}
	d.Reset()
}
