// SPDX-License-Identifier: MIT
// Package: switchangle
//
// Purpose:
//   - Single source of truth for table invariants.
//   - Decode checks each row as it arrives; New and Validate check whole tables.
//   - Return sentinels wrapped with a validator tag so call sites stay uniform.
//
// Determinism & Performance:
//   - All checks are pure and allocate nothing on the success path.

package switchangle

import (
	"fmt"
	"math"
)

// validatorErrorf tags err with the validator that produced it.
func validatorErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}

// validateHeader checks the scalar header fields.
func validateHeader(switchCount int, division float64) error {
	if switchCount < 1 || switchCount > math.MaxUint8 {
		return validatorErrorf(fmt.Sprintf("validateHeader: switchCount=%d", switchCount), ErrMalformedTable)
	}
	if math.IsNaN(division) || math.IsInf(division, 0) || division <= 0 {
		return validatorErrorf(fmt.Sprintf("validateHeader: division=%g", division), ErrMalformedTable)
	}
	return nil
}

// validateRow checks one bucket's staircase: finite angles in non-decreasing
// order and levels within [0, MaxLevel].
//
// Complexity: O(S).
func validateRow(b int, row []Threshold) error {
	prev := math.Inf(-1)
	for j, th := range row {
		if math.IsNaN(th.Angle) || math.IsInf(th.Angle, 0) {
			return validatorErrorf(fmt.Sprintf("validateRow: bucket %d switch %d: angle %g", b, j, th.Angle), ErrMalformedTable)
		}
		if th.Angle < prev {
			return validatorErrorf(fmt.Sprintf("validateRow: bucket %d switch %d: angle %g < %g", b, j, th.Angle, prev), ErrMalformedTable)
		}
		if th.Level < 0 || th.Level > MaxLevel {
			return validatorErrorf(fmt.Sprintf("validateRow: bucket %d switch %d: level %d", b, j, th.Level), ErrMalformedTable)
		}
		prev = th.Angle
	}
	return nil
}

// Validate checks every invariant of t:
// header fields, slice lengths, and each bucket's staircase.
//
// Errors:
//   - ErrInvalidInput if t is nil.
//   - ErrMalformedTable on any structural violation.
//
// Complexity: O(B·S).
func Validate(t *SwitchAngleTable) error {
	if t == nil {
		return validatorErrorf("Validate", ErrInvalidInput)
	}
	if err := validateHeader(t.switchCount, t.division); err != nil {
		return validatorErrorf("Validate", err)
	}
	if t.blockCount < 0 || uint64(t.blockCount) > math.MaxUint32 || len(t.polarity) != t.blockCount {
		return validatorErrorf("Validate: polarity length", ErrMalformedTable)
	}
	if len(t.thresholds) != t.blockCount*t.switchCount {
		return validatorErrorf("Validate: thresholds length", ErrMalformedTable)
	}
	for b := 0; b < t.blockCount; b++ {
		if err := validateRow(b, t.row(b)); err != nil {
			return validatorErrorf("Validate", err)
		}
	}
	return nil
}
