// Package switchangle decodes precomputed quarter-wave switch-angle tables
// and evaluates them into instantaneous three-level PWM samples for a
// VVVF inverter simulation.
//
// What:
//
//   - SwitchAngleTable holds, per modulation-index bucket, a staircase of
//     (angle, level) thresholds over one quarter of the electrical cycle,
//     plus a polarity flag per bucket.
//   - Decode / DecodeBytes read the little-endian binary layout; Encode and
//     MarshalBinary write it back bit for bit.
//   - Level / Evaluate rebuild the full-cycle waveform from the quarter-wave
//     data: orthant folding, mirroring of odd quarters, a staircase lookup,
//     the negative half-cycle complement and the polarity complement.
//
// Why:
//
//   - Selective harmonic elimination and similar optimized patterns are
//     solved offline; the simulator only needs a bounded, allocation-free
//     lookup at sample rate.
//
// Levels:
//
//	0 — negative rail, 1 — neutral, 2 — positive rail (MaxLevel).
//
// Quick ASCII example (one bucket, single threshold π/4 → level 2):
//
//	2 ┤     ┌─────────┐     ┌─────┐                 ┌─────
//	0 ┤─────┘         └─────┘     └─────────────────┘
//	  0    π/4      3π/4    π   5π/4              7π/4  2π
//
// Complexity:
//
//   - Decode: O(B·S) time and memory (B buckets, S switches per bucket).
//   - Level:  O(log S) time, zero allocations.
//
// Concurrency:
//
//   - Tables are immutable after construction. Any number of goroutines may
//     call Level on the same table without synchronization.
//
// Errors:
//
//   - ErrInvalidInput:   nil source stream or argument.
//   - ErrTruncated:      stream shorter than the header or a declared block.
//   - ErrMalformedTable: invariant violated (monotonicity, level range,
//     polarity byte, header values).
//   - ErrBucketRange:    accessor called with a bucket outside the table.
package switchangle
