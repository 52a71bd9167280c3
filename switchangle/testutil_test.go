package switchangle_test

import (
	"bytes"
	"encoding/binary"
	"errors"
	"math"
	"math/rand"
	"sort"
	"testing"

	"github.com/katalvlaran/vvvfpwm/switchangle"
	"github.com/stretchr/testify/require"
)

// rawBlock is one block of a hand-built table image.
type rawBlock struct {
	polarity   byte
	thresholds []switchangle.Threshold
}

// rawTable builds a table image byte by byte, independently of Encode,
// declaring exactly len(blocks) blocks.
func rawTable(switchCount byte, division float64, blocks ...rawBlock) []byte {
	return rawTableDeclared(switchCount, division, uint32(len(blocks)), blocks...)
}

// rawTableDeclared is rawTable with an explicit (possibly lying) block count.
func rawTableDeclared(switchCount byte, division float64, declared uint32, blocks ...rawBlock) []byte {
	out := []byte{switchCount}
	out = binary.LittleEndian.AppendUint64(out, math.Float64bits(division))
	out = binary.LittleEndian.AppendUint32(out, declared)
	for _, b := range blocks {
		out = append(out, b.polarity)
		for _, th := range b.thresholds {
			out = append(out, byte(th.Level))
			out = binary.LittleEndian.AppendUint64(out, math.Float64bits(th.Angle))
		}
	}
	return out
}

// singleThresholdTable is the one-bucket table used across the evaluator
// tests: division 0.5, threshold (π/4 → 2), polarity as given.
func singleThresholdTable(t *testing.T, inverted bool) *switchangle.SwitchAngleTable {
	t.Helper()
	tbl, err := switchangle.New(1, 0.5,
		[]switchangle.Threshold{{Angle: math.Pi / 4, Level: 2}},
		[]bool{inverted})
	require.NoError(t, err)
	return tbl
}

// randomTable builds a valid table with sorted angles in [0, π/2],
// occasional duplicate angles, and random levels and polarity.
func randomTable(t *testing.T, rng *rand.Rand) *switchangle.SwitchAngleTable {
	t.Helper()
	switches := 1 + rng.Intn(9)
	blocks := 1 + rng.Intn(6)
	ths := make([]switchangle.Threshold, 0, switches*blocks)
	pol := make([]bool, blocks)
	for b := 0; b < blocks; b++ {
		angles := make([]float64, switches)
		for j := range angles {
			angles[j] = rng.Float64() * math.Pi / 2
		}
		sort.Float64s(angles)
		if switches > 1 && rng.Intn(3) == 0 {
			angles[1] = angles[0] // exercise equal neighbours
		}
		for _, a := range angles {
			ths = append(ths, switchangle.Threshold{Angle: a, Level: rng.Intn(switchangle.MaxLevel + 1)})
		}
		pol[b] = rng.Intn(2) == 1
	}
	tbl, err := switchangle.New(switches, 0.05+rng.Float64()*0.2, ths, pol)
	require.NoError(t, err)
	return tbl
}

// linearLevel is the plain left-to-right scan with early break over one
// bucket, before the half-cycle and polarity steps. Used as a reference for
// the binary search in Level.
func linearLevel(row []switchangle.Threshold, base float64) int {
	level := 0
	for _, th := range row {
		if th.Angle <= base {
			level = th.Level
		} else {
			break
		}
	}
	return level
}

// trackingReader counts Close calls and can fail them on demand.
type trackingReader struct {
	*bytes.Reader
	closed   int
	closeErr error
}

func newTrackingReader(data []byte) *trackingReader {
	return &trackingReader{Reader: bytes.NewReader(data)}
}

func (r *trackingReader) Close() error {
	r.closed++
	return r.closeErr
}

// failingReader returns err after delivering prefix.
type failingReader struct {
	prefix []byte
	err    error
}

func (r *failingReader) Read(p []byte) (int, error) {
	if len(r.prefix) == 0 {
		return 0, r.err
	}
	n := copy(p, r.prefix)
	r.prefix = r.prefix[n:]
	return n, nil
}

var errDisk = errors.New("disk on fire")
