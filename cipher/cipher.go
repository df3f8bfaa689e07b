// Package cipher defines the shared BlockEngine contract that shx.Engine
// and tfx.Engine both satisfy, and that mode.ECB wraps.
package cipher

// BlockEngine is the common lifecycle every 128-bit block engine in this
// module follows: construct, Initialize once with a direction and key,
// then TransformBlock any number of times, then Destroy.
type BlockEngine interface {
	Initialize(encrypt bool, key []byte) error
	TransformBlock(dst, src []byte) error
	BlockSize() int
	LegalKeySizes() []int
	LegalRounds() []int
	Destroy()
}
