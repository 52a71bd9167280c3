// SPDX-License-Identifier: MIT

package preset

import "errors"

var (
	// ErrUnknownPreset indicates a name outside the preset catalog.
	ErrUnknownPreset = errors.New("preset: unknown preset name")

	// ErrProvider wraps any failure of the byte-stream provider to open a preset.
	ErrProvider = errors.New("preset: provider failed")

	// ErrNilProvider is returned by NewRegistry when no provider is given.
	ErrNilProvider = errors.New("preset: nil provider")
)
