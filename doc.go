// Package vvvfpwm is the switching core of a VVVF inverter output simulator:
// precomputed quarter-wave switch-angle tables and the symmetric evaluator
// that turns them into instantaneous three-level PWM samples.
//
// 🚀 What is vvvfpwm?
//
//	A small, allocation-free library that brings together:
//		• Table codec: bit-exact little-endian decoder and encoder
//		• Evaluator: orthant folding, quarter-wave mirroring, staircase lookup,
//		  half-cycle and polarity complements
//		• Preset registry: once-per-name lazy decoding over any fs.FS
//		• CLI: inspect, validate and sample table files
//
// ✨ Why vvvfpwm?
//
//   - Constant-bounded evaluation – O(log S) per sample, zero allocations
//   - Immutable tables – share one table across any number of goroutines
//   - Strict decoding – truncated or malformed tables never reach the simulator
//
// Under the hood, everything is organized under these packages:
//
//	switchangle/   — SwitchAngleTable, Decode/Encode, Level/Evaluate
//	preset/        — preset Name catalog, Provider, Registry
//	cmd/vvvfpwm/   — command-line tool
//	examples/      — runnable scenarios
//
//	go get github.com/katalvlaran/vvvfpwm/switchangle
package vvvfpwm
