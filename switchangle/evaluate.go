// SPDX-License-Identifier: MIT

package switchangle

import "math"

// Evaluate returns the PWM level of table t at modulation index m and
// electrical angle x (radians). A nil table yields 0.
// See (*SwitchAngleTable).Level for the full contract.
func Evaluate(t *SwitchAngleTable, m, x float64) int {
	if t == nil {
		return 0
	}
	return t.Level(m, x)
}

// Level returns the instantaneous output level in [0, MaxLevel] for
// modulation index m and electrical angle x (radians).
//
// Algorithm:
//  1. bucket = ⌊m / division⌋; a bucket outside [0, BlockCount) yields 0.
//  2. x is reduced modulo 2π into [0, 2π).
//  3. orthant = ⌊x / (π/2)⌋ ∈ {0,1,2,3}, base = x mod π/2.
//  4. Odd orthants mirror the base angle: base = π/2 − base.
//  5. level = Level of the last threshold with Angle ≤ base, or 0 if none.
//  6. Orthants 2 and 3 (the negative half-cycle) give MaxLevel − level.
//  7. An inverted bucket complements once more: MaxLevel − level.
//
// Behavior highlights:
//   - Total: NaN m, NaN or infinite x, and uncovered m all give 0.
//   - Pure and lock-free; safe for any number of concurrent callers.
//   - No allocation; O(log S) per call via binary search over the row.
func (t *SwitchAngleTable) Level(m, x float64) int {
	b, ok := t.Bucket(m)
	if !ok {
		return 0
	}
	orthant, base, ok := fold(x)
	if !ok {
		return 0
	}

	level := staircase(t.row(b), base)
	if orthant > 1 {
		level = MaxLevel - level
	}
	if t.polarity[b] {
		level = MaxLevel - level
	}
	return level
}

// Bucket returns the modulation-index bucket for m and whether the table
// covers it. Indices at or beyond MaxModulationIndex, negative indices and
// NaN are not covered.
func (t *SwitchAngleTable) Bucket(m float64) (int, bool) {
	q := math.Floor(m / t.division)
	// Compare as floats first so huge m cannot overflow the int conversion.
	if !(q >= 0 && q < float64(t.blockCount)) {
		return 0, false
	}
	return int(q), true
}

// Sample fills dst with one electrical cycle of levels at modulation index m:
// dst[i] = Level(m, 2π·i/len(dst)). It allocates nothing.
func (t *SwitchAngleTable) Sample(m float64, dst []int) {
	n := float64(len(dst))
	for i := range dst {
		dst[i] = t.Level(m, twoPi*float64(i)/n)
	}
}

// fold reduces x to its orthant and the mirrored quarter-wave base angle.
// It reports false when x has no defined phase (NaN or ±Inf).
func fold(x float64) (orthant int, base float64, ok bool) {
	if math.IsNaN(x) || math.IsInf(x, 0) {
		return 0, 0, false
	}
	x = math.Mod(x, twoPi)
	if x < 0 {
		x += twoPi
	}
	if x >= twoPi { // a tiny negative x rounds up to exactly 2π
		x = 0
	}

	// math.Mod is exact, so x-base is a whole multiple of π/2 and rounding
	// recovers the orthant consistently with base, even at the boundaries
	// where x/(π/2) alone would round up.
	base = math.Mod(x, halfPi)
	orthant = int(math.Round((x - base) / halfPi))
	if orthant > 3 {
		orthant = 3
	}
	if orthant&1 == 1 {
		base = halfPi - base
	}
	return orthant, base, true
}

// staircase returns the level of the last threshold whose angle does not
// exceed base, or 0 when base precedes the first threshold. row must be
// sorted by non-decreasing angle.
func staircase(row []Threshold, base float64) int {
	// Find the first index whose angle is strictly greater than base.
	lo, hi := 0, len(row)
	for lo < hi {
		mid := int(uint(lo+hi) >> 1)
		if row[mid].Angle <= base {
			lo = mid + 1
		} else {
			hi = mid
		}
	}
	if lo == 0 {
		return 0
	}
	return row[lo-1].Level
}
