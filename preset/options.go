// SPDX-License-Identifier: MIT

package preset

import (
	"io"
	"log"

	"github.com/katalvlaran/vvvfpwm/switchangle"
)

// Option configures a Registry.
type Option func(*Registry)

// WithDecodeOptions passes opts to every switchangle.Decode the registry runs.
func WithDecodeOptions(opts ...switchangle.Option) Option {
	return func(r *Registry) { r.decodeOpts = append(r.decodeOpts, opts...) }
}

// WithAnyName lets Get load names outside the catalog, for user-supplied tables.
func WithAnyName() Option {
	return func(r *Registry) { r.anyName = true }
}

// WithLogger logs one line per decode attempt to l. A nil l discards.
func WithLogger(l *log.Logger) Option {
	return func(r *Registry) {
		if l == nil {
			l = log.New(io.Discard, "", 0)
		}
		r.logger = l
	}
}
