// SPDX-License-Identifier: MIT

package switchangle

// Decode policy defaults. These are the single source of truth for the
// zero-option behavior of Decode and DecodeBytes.
const (
	// DefaultLenientPolarity keeps polarity bytes strict: only 0 and 1 are legal.
	DefaultLenientPolarity = false

	// DefaultMaxBlocks bounds the declared block count accepted from a header.
	// The wire format allows any u32; this default is deliberately tighter.
	// Real tables span a modulation range of ~1.3 at 0.01 steps, far below it.
	DefaultMaxBlocks = 1 << 20
)

const panicMaxBlocksInvalid = "switchangle: WithMaxBlocks: n must be > 0"

// Option configures Decode. Options are applied left to right.
type Option func(*options)

// options is the resolved decode policy.
type options struct {
	lenientPolarity bool
	maxBlocks       int
}

// WithLenientPolarity reads a polarity byte as true only when it equals 1,
// and as false for every other value, instead of rejecting values outside {0,1}.
// Tables written by older generators that pad the flag byte need this.
func WithLenientPolarity() Option {
	return func(o *options) { o.lenientPolarity = true }
}

// WithMaxBlocks caps the block count a header may declare. A header above the
// cap fails with ErrMalformedTable before any block is read.
// Panics if n <= 0 (programmer error).
func WithMaxBlocks(n int) Option {
	if n <= 0 {
		panic(panicMaxBlocksInvalid)
	}
	return func(o *options) { o.maxBlocks = n }
}

// gatherOptions resolves opts over the documented defaults.
func gatherOptions(opts ...Option) options {
	o := options{
		lenientPolarity: DefaultLenientPolarity,
		maxBlocks:       DefaultMaxBlocks,
	}
	for _, opt := range opts {
		if opt != nil {
			opt(&o)
		}
	}
	return o
}
