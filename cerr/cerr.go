// Package cerr defines the sentinel error taxonomy shared by every package
// in shxtfx. Callers compare with errors.Is rather than type assertions.
package cerr

import "errors"

var (
	// ErrInvalidKeySize is returned when a key's length falls outside the
	// legal sizes for the chosen key-schedule path.
	ErrInvalidKeySize = errors.New("shxtfx: invalid key size")

	// ErrInvalidRounds is returned when a round count is outside an
	// engine's legal set.
	ErrInvalidRounds = errors.New("shxtfx: invalid round count")

	// ErrUnsupportedDigest is returned when a digest selector is not one
	// of the nine supported selectors.
	ErrUnsupportedDigest = errors.New("shxtfx: unsupported digest selector")

	// ErrUninitialized is returned when TransformBlock is called before a
	// successful Initialize.
	ErrUninitialized = errors.New("shxtfx: engine not initialized")

	// ErrShortBuffer is returned when an input or output block is shorter
	// than the cipher's block size.
	ErrShortBuffer = errors.New("shxtfx: buffer shorter than block size")

	// ErrLengthExceeded is returned when an HKDF caller requests more than
	// 255 * digest output size bytes.
	ErrLengthExceeded = errors.New("shxtfx: requested length exceeds 255 * output size")

	// ErrInvalidDistributionCode is returned when SetDistributionCode is
	// given a nil slice. An empty, zero-length slice is valid.
	ErrInvalidDistributionCode = errors.New("shxtfx: distribution code must not be nil")

	// ErrAlreadyInitialized is returned by pre-initialize setters
	// (SetDistributionCode, SetIKMSize) once Initialize has succeeded.
	ErrAlreadyInitialized = errors.New("shxtfx: setter called after initialize")
)
