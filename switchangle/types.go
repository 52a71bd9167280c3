// SPDX-License-Identifier: MIT
//
// File: types.go
// Role: SwitchAngleTable data model, constructor and read-only accessors.
// Policy:
//   - A table is immutable once New or Decode returns it.
//   - Accessors never hand out internal slices; callers get copies or values.
//   - Concurrent reads need no synchronization.

package switchangle

import (
	"fmt"
	"math"
)

// MaxLevel is the highest PWM level a table may store. Levels 0, 1 and 2
// encode the three leg states (negative rail, neutral, positive rail).
const MaxLevel = 2

// Header sizes of the binary layout, in bytes.
const (
	headerSize    = 1 + 8 + 4 // switchCount u8, division f64, blockCount u32
	thresholdSize = 1 + 8     // level u8, angle f64
)

const (
	halfPi = math.Pi / 2
	twoPi  = 2 * math.Pi
)

// Threshold is one step of a quarter-cycle staircase: from Angle (radians,
// inclusive) onward the output holds Level until the next threshold.
type Threshold struct {
	Angle float64
	Level int
}

// Block is a read-only view of one modulation-index bucket.
type Block struct {
	// Inverted is the polarity flag of the bucket.
	Inverted bool
	// Thresholds is a copy of the bucket's staircase in ascending angle order.
	Thresholds []Threshold
}

// SwitchAngleTable holds, for each modulation-index bucket, the quarter-wave
// switching thresholds of one inverter leg. Rows are stored contiguously:
// bucket b occupies thresholds[b*switchCount : (b+1)*switchCount].
type SwitchAngleTable struct {
	switchCount int
	division    float64
	blockCount  int
	thresholds  []Threshold
	polarity    []bool
}

// New builds a validated table from its fields. The slices are copied, so
// the caller may reuse them afterwards.
//
// Inputs:
//   - switchCount: thresholds per bucket, in [1, 255].
//   - division:    modulation-index step, finite and > 0.
//   - thresholds:  len(polarity)*switchCount entries, row-major by bucket.
//   - polarity:    one inversion flag per bucket; its length is the block count.
//
// Errors:
//   - ErrMalformedTable if any invariant of Validate fails.
//
// Complexity: O(B·S) time and space.
func New(switchCount int, division float64, thresholds []Threshold, polarity []bool) (*SwitchAngleTable, error) {
	t := &SwitchAngleTable{
		switchCount: switchCount,
		division:    division,
		blockCount:  len(polarity),
		thresholds:  append([]Threshold(nil), thresholds...),
		polarity:    append([]bool(nil), polarity...),
	}
	if err := Validate(t); err != nil {
		return nil, fmt.Errorf("New: %w", err)
	}
	return t, nil
}

// SwitchCount returns the number of thresholds per bucket.
func (t *SwitchAngleTable) SwitchCount() int { return t.switchCount }

// ModulationIndexDivision returns the bucket width on the modulation-index axis.
func (t *SwitchAngleTable) ModulationIndexDivision() float64 { return t.division }

// BlockCount returns the number of modulation-index buckets.
func (t *SwitchAngleTable) BlockCount() int { return t.blockCount }

// MaxModulationIndex returns the exclusive upper bound of the covered
// modulation range, BlockCount·ModulationIndexDivision.
func (t *SwitchAngleTable) MaxModulationIndex() float64 {
	return float64(t.blockCount) * t.division
}

// Inverted reports the polarity flag of bucket b.
func (t *SwitchAngleTable) Inverted(b int) (bool, error) {
	if b < 0 || b >= t.blockCount {
		return false, fmt.Errorf("Inverted(%d): %w", b, ErrBucketRange)
	}
	return t.polarity[b], nil
}

// Block returns a copy of bucket b.
func (t *SwitchAngleTable) Block(b int) (Block, error) {
	if b < 0 || b >= t.blockCount {
		return Block{}, fmt.Errorf("Block(%d): %w", b, ErrBucketRange)
	}
	return Block{
		Inverted:   t.polarity[b],
		Thresholds: append([]Threshold(nil), t.row(b)...),
	}, nil
}

// Equal reports whether t and u carry identical fields. Angles are compared
// bit for bit, so a table equals its own round-trip through Encode/Decode.
func (t *SwitchAngleTable) Equal(u *SwitchAngleTable) bool {
	if t == nil || u == nil {
		return t == u
	}
	if t.switchCount != u.switchCount || t.blockCount != u.blockCount ||
		math.Float64bits(t.division) != math.Float64bits(u.division) {
		return false
	}
	for i := range t.polarity {
		if t.polarity[i] != u.polarity[i] {
			return false
		}
	}
	for i := range t.thresholds {
		a, b := t.thresholds[i], u.thresholds[i]
		if a.Level != b.Level || math.Float64bits(a.Angle) != math.Float64bits(b.Angle) {
			return false
		}
	}
	return true
}

// String summarizes the header, e.g. "SwitchAngleTable{switches=5 div=0.01 blocks=128}".
func (t *SwitchAngleTable) String() string {
	return fmt.Sprintf("SwitchAngleTable{switches=%d div=%g blocks=%d}", t.switchCount, t.division, t.blockCount)
}

// row returns the internal staircase of bucket b without copying.
// The caller guarantees 0 <= b < blockCount.
func (t *SwitchAngleTable) row(b int) []Threshold {
	lo := b * t.switchCount
	return t.thresholds[lo : lo+t.switchCount]
}
