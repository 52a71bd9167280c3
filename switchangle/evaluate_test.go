package switchangle_test

import (
	"math"
	"math/rand"
	"testing"

	"github.com/katalvlaran/vvvfpwm/switchangle"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestLevel_SingleThreshold walks the one-threshold table through every
// folding step: below and at the threshold, a mirrored odd orthant, the
// complemented negative half-cycle, and an uncovered modulation index.
func TestLevel_SingleThreshold(t *testing.T) {
	tbl := singleThresholdTable(t, false)

	cases := []struct {
		name string
		m, x float64
		want int
	}{
		{"before threshold", 0.1, 0, 0},
		{"at threshold", 0.1, math.Pi / 4, 2},
		{"mirrored just past quarter", 0.1, math.Pi/2 + 0.01, 2},
		{"mirrored past 3π/4", 0.1, 3*math.Pi/4 + 0.1, 0},
		// orthant 2: base 0.1 precedes π/4 → 0, complemented to 2.
		{"negative half start", 0.1, math.Pi + 0.1, 2},
		{"negative half after threshold", 0.1, math.Pi + math.Pi/4 + 0.1, 0},
		{"orthant 3 mirrored", 0.1, 7*math.Pi/4 + 0.1, 2},
		{"bucket out of range", 0.6, 1.0, 0},
		{"bucket out of range negative half", 0.6, math.Pi + 0.1, 0},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, tbl.Level(tc.m, tc.x))
			assert.Equal(t, tc.want, switchangle.Evaluate(tbl, tc.m, tc.x))
		})
	}
}

// TestLevel_Saturation: any modulation index at or beyond the covered range
// yields 0 regardless of angle.
func TestLevel_Saturation(t *testing.T) {
	rng := rand.New(rand.NewSource(11))
	for i := 0; i < 20; i++ {
		tbl := randomTable(t, rng)
		for k := 0; k < 50; k++ {
			m := tbl.MaxModulationIndex() + rng.Float64()*10
			x := rng.Float64() * 4 * math.Pi
			assert.Equal(t, 0, tbl.Level(m, x), "m=%g x=%g", m, x)
		}
		assert.Equal(t, 0, tbl.Level(math.Inf(1), 0.3))
		assert.Equal(t, 0, tbl.Level(1e300, 0.3))
	}
}

// TestLevel_UndefinedInputs: NaN/Inf angles and negative or NaN indices give 0.
func TestLevel_UndefinedInputs(t *testing.T) {
	tbl := singleThresholdTable(t, true) // inverted: a real lookup would never give 0 here at x=0
	assert.Equal(t, 2, tbl.Level(0.1, 0))

	assert.Equal(t, 0, tbl.Level(0.1, math.NaN()))
	assert.Equal(t, 0, tbl.Level(0.1, math.Inf(1)))
	assert.Equal(t, 0, tbl.Level(0.1, math.Inf(-1)))
	assert.Equal(t, 0, tbl.Level(-0.1, 0))
	assert.Equal(t, 0, tbl.Level(math.NaN(), 0))
	assert.Equal(t, 0, switchangle.Evaluate(nil, 0.1, 0))
}

// TestLevel_MirrorSymmetry: with no inversion, θ and π−θ share a level.
func TestLevel_MirrorSymmetry(t *testing.T) {
	rng := rand.New(rand.NewSource(3))
	for i := 0; i < 20; i++ {
		tbl := randomTable(t, rng)
		for k := 0; k < 100; k++ {
			m := rng.Float64() * tbl.MaxModulationIndex()
			theta := rng.Float64() * math.Pi / 2
			assert.Equal(t, tbl.Level(m, theta), tbl.Level(m, math.Pi-theta), "m=%g θ=%g", m, theta)
		}
	}
}

// TestLevel_HalfCycleComplement: level(θ) + level(θ+π) == MaxLevel for
// every covered bucket, inverted or not.
func TestLevel_HalfCycleComplement(t *testing.T) {
	rng := rand.New(rand.NewSource(5))
	for i := 0; i < 20; i++ {
		tbl := randomTable(t, rng)
		for k := 0; k < 100; k++ {
			m := rng.Float64() * tbl.MaxModulationIndex()
			theta := rng.Float64() * 2 * math.Pi
			sum := tbl.Level(m, theta) + tbl.Level(m, theta+math.Pi)
			assert.Equal(t, switchangle.MaxLevel, sum, "m=%g θ=%g", m, theta)
		}
	}
}

// TestLevel_PolarityToggle: flipping a bucket's flag complements every level.
func TestLevel_PolarityToggle(t *testing.T) {
	ths := []switchangle.Threshold{{Angle: 0.2, Level: 1}, {Angle: 0.6, Level: 2}, {Angle: 1.1, Level: 0}}
	plain, err := switchangle.New(3, 0.1, ths, []bool{false})
	require.NoError(t, err)
	flipped, err := switchangle.New(3, 0.1, ths, []bool{true})
	require.NoError(t, err)

	for i := 0; i < 720; i++ {
		x := float64(i) * math.Pi / 360
		assert.Equal(t, switchangle.MaxLevel-plain.Level(0.05, x), flipped.Level(0.05, x), "x=%g", x)
	}
}

// TestLevel_AngleReduction: angles outside [0, 2π) fold onto the same cycle.
func TestLevel_AngleReduction(t *testing.T) {
	ths := []switchangle.Threshold{{Angle: 0.2, Level: 1}, {Angle: 0.6, Level: 2}}
	tbl, err := switchangle.New(2, 0.1, ths, []bool{false})
	require.NoError(t, err)

	// Sample points stay well clear of the thresholds and quarter boundaries.
	for _, x := range []float64{0.1, 0.4, 1.0, 1.9, 2.8, 3.3, 4.0, 5.0, 6.0} {
		want := tbl.Level(0.05, x)
		assert.Equal(t, want, tbl.Level(0.05, x+2*math.Pi), "x+2π, x=%g", x)
		assert.Equal(t, want, tbl.Level(0.05, x-2*math.Pi), "x-2π, x=%g", x)
		assert.Equal(t, want, tbl.Level(0.05, x+20*math.Pi), "x+20π, x=%g", x)
	}
	// A negative angle a hair below zero sits at the end of orthant 3.
	assert.Equal(t, tbl.Level(0.05, 2*math.Pi-1e-9), tbl.Level(0.05, -1e-9))
	assert.Equal(t, tbl.Level(0.05, 0), tbl.Level(0.05, -1e-300))
}

// TestLevel_MatchesLinearScan checks the binary search against a plain scan,
// including rows with equal neighbouring angles.
func TestLevel_MatchesLinearScan(t *testing.T) {
	rng := rand.New(rand.NewSource(13))
	for i := 0; i < 30; i++ {
		tbl := randomTable(t, rng)
		for k := 0; k < 200; k++ {
			m := rng.Float64() * tbl.MaxModulationIndex()
			x := rng.Float64() * 2 * math.Pi
			assert.Equal(t, referenceLevel(t, tbl, m, x), tbl.Level(m, x), "m=%g x=%g", m, x)
		}
	}
}

// referenceLevel evaluates with the naive folding and a linear scan.
// Only valid for x in [0, 2π).
func referenceLevel(t *testing.T, tbl *switchangle.SwitchAngleTable, m, x float64) int {
	t.Helper()
	b, ok := tbl.Bucket(m)
	if !ok {
		return 0
	}
	blk, err := tbl.Block(b)
	require.NoError(t, err)

	orthant := int(x / (math.Pi / 2))
	base := math.Mod(x, math.Pi/2)
	if orthant&1 == 1 {
		base = math.Pi/2 - base
	}
	level := linearLevel(blk.Thresholds, base)
	if orthant > 1 {
		level = switchangle.MaxLevel - level
	}
	if blk.Inverted {
		level = switchangle.MaxLevel - level
	}
	return level
}

// TestLevel_ThresholdEdges pins right-continuity at the quarter boundaries.
func TestLevel_ThresholdEdges(t *testing.T) {
	ths := []switchangle.Threshold{{Angle: 0, Level: 1}, {Angle: math.Pi / 2, Level: 2}}
	tbl, err := switchangle.New(2, 1, ths, []bool{false})
	require.NoError(t, err)

	assert.Equal(t, 1, tbl.Level(0, 0), "threshold at 0 is reached at 0")
	assert.Equal(t, 1, tbl.Level(0, 0.5))
	assert.Equal(t, 2, tbl.Level(0, math.Pi/2), "orthant 1 start mirrors to base π/2")
	assert.Equal(t, 1, tbl.Level(0, 3*math.Pi/2+1e-9), "just inside orthant 3 mirrors below π/2, complemented")
}

// TestBucket exposes the quantization step.
func TestBucket(t *testing.T) {
	tbl, err := switchangle.New(1, 0.25,
		[]switchangle.Threshold{{Angle: 0.1, Level: 1}, {Angle: 0.1, Level: 1}, {Angle: 0.1, Level: 1}},
		[]bool{false, false, false})
	require.NoError(t, err)

	for _, tc := range []struct {
		m    float64
		want int
		ok   bool
	}{
		{0, 0, true}, {0.24, 0, true}, {0.25, 1, true}, {0.74, 2, true},
		{0.75, 0, false}, {-0.01, 0, false}, {math.NaN(), 0, false},
	} {
		b, ok := tbl.Bucket(tc.m)
		assert.Equal(t, tc.ok, ok, "m=%g", tc.m)
		assert.Equal(t, tc.want, b, "m=%g", tc.m)
	}
}

// TestSample fills one cycle at 40° steps, clear of every π/4 multiple.
func TestSample(t *testing.T) {
	tbl := singleThresholdTable(t, false)
	dst := make([]int, 9)
	tbl.Sample(0.1, dst)
	assert.Equal(t, []int{0, 0, 2, 2, 0, 2, 0, 0, 2}, dst)
}

// TestLevel_NoAllocs keeps the evaluator off the heap.
func TestLevel_NoAllocs(t *testing.T) {
	tbl := randomTable(t, rand.New(rand.NewSource(1)))
	dst := make([]int, 64)
	allocs := testing.AllocsPerRun(100, func() {
		_ = tbl.Level(0.01, 2.5)
		tbl.Sample(0.01, dst)
	})
	assert.Zero(t, allocs)
}
