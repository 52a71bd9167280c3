// SPDX-License-Identifier: MIT

package switchangle

import (
	"bytes"
	"encoding/binary"
	"errors"
	"fmt"
	"io"
	"math"
)

// preallocBlocks bounds the capacity reserved up front from a declared block
// count; further rows are appended as they are actually read, so a header
// that lies about its size cannot force a large allocation.
const preallocBlocks = 4096

// Decode reads one SwitchAngleTable from r.
//
// Layout (little-endian, read strictly in order):
//
//	offset  size  field
//	0       1     switchCount             (u8)
//	1       8     modulationIndexDivision (f64)
//	9       4     blockCount              (u32)
//	13      ...   blocks[blockCount]:
//	                1  polarity (u8: 0|1)
//	                switchCount × { 1 outputLevel (u8), 8 angle (f64) }
//
// Implementation:
//   - Stage 1: read and validate the 13-byte header.
//   - Stage 2: for each block read the polarity byte and its staircase in one
//     buffer, validating the row before moving on.
//   - Stage 3: assemble the table; bytes after the last block are not read.
//
// Behavior highlights:
//   - All-or-nothing: on any error the returned table is nil.
//   - If r implements io.Closer it is closed on every path, success or failure.
//   - The stream is consumed from its current position.
//   - The format allows any u32 block count, but by default headers above
//     DefaultMaxBlocks are rejected; raise the cap with WithMaxBlocks to read
//     larger tables.
//
// Errors:
//   - ErrInvalidInput   if r is nil.
//   - ErrTruncated      if the stream ends inside the header or a block.
//   - ErrMalformedTable on a bad header value, a block count above the
//     WithMaxBlocks cap, a non-monotonic row, a level above MaxLevel, a
//     non-finite angle, or (strict mode) a polarity byte outside {0,1}.
//   - Other read and close errors are returned wrapped.
//
// Complexity: O(B·S) time and space.
func Decode(r io.Reader, opts ...Option) (t *SwitchAngleTable, err error) {
	if r == nil {
		return nil, fmt.Errorf("Decode: %w", ErrInvalidInput)
	}
	if c, ok := r.(io.Closer); ok {
		defer func() {
			if cerr := c.Close(); cerr != nil && err == nil {
				t, err = nil, fmt.Errorf("Decode: close source: %w", cerr)
			}
		}()
	}
	t, err = decode(r, gatherOptions(opts...))
	if err != nil {
		return nil, fmt.Errorf("Decode: %w", err)
	}
	return t, nil
}

// DecodeBytes decodes a table held in memory. It behaves like Decode over a
// bytes.Reader.
func DecodeBytes(data []byte, opts ...Option) (*SwitchAngleTable, error) {
	return Decode(bytes.NewReader(data), opts...)
}

// decode performs the actual read without the close and nil handling.
func decode(r io.Reader, o options) (*SwitchAngleTable, error) {
	var hdr [headerSize]byte
	if err := readFull(r, hdr[:], -1); err != nil {
		return nil, err
	}
	switchCount := int(hdr[0])
	division := math.Float64frombits(binary.LittleEndian.Uint64(hdr[1:9]))
	declared := binary.LittleEndian.Uint32(hdr[9:13])

	if err := validateHeader(switchCount, division); err != nil {
		return nil, err
	}
	if uint64(declared) > uint64(o.maxBlocks) {
		return nil, fmt.Errorf("header: blockCount %d exceeds limit %d: %w", declared, o.maxBlocks, ErrMalformedTable)
	}
	blockCount := int(declared)

	reserve := min(blockCount, preallocBlocks)
	t := &SwitchAngleTable{
		switchCount: switchCount,
		division:    division,
		blockCount:  blockCount,
		thresholds:  make([]Threshold, 0, reserve*switchCount),
		polarity:    make([]bool, 0, reserve),
	}

	buf := make([]byte, 1+switchCount*thresholdSize)
	for b := 0; b < blockCount; b++ {
		if err := readFull(r, buf, b); err != nil {
			return nil, err
		}
		inverted, err := readPolarity(buf[0], o.lenientPolarity)
		if err != nil {
			return nil, fmt.Errorf("block %d: %w", b, err)
		}
		t.polarity = append(t.polarity, inverted)

		lo := len(t.thresholds)
		for j := 0; j < switchCount; j++ {
			p := buf[1+j*thresholdSize:]
			t.thresholds = append(t.thresholds, Threshold{
				Level: int(p[0]),
				Angle: math.Float64frombits(binary.LittleEndian.Uint64(p[1:9])),
			})
		}
		if err := validateRow(b, t.thresholds[lo:]); err != nil {
			return nil, err
		}
	}
	return t, nil
}

// readPolarity maps the polarity byte to the inversion flag.
// Strict mode accepts only 0 and 1; lenient mode treats exactly 1 as true.
func readPolarity(v byte, lenient bool) (bool, error) {
	switch {
	case v == 1:
		return true, nil
	case v == 0 || lenient:
		return false, nil
	default:
		return false, fmt.Errorf("polarity byte %#x: %w", v, ErrMalformedTable)
	}
}

// readFull fills buf from r, reporting a short stream as ErrTruncated.
// block is the index being read, or -1 for the header; it is only formatted
// on failure.
func readFull(r io.Reader, buf []byte, block int) error {
	_, err := io.ReadFull(r, buf)
	if err == nil {
		return nil
	}
	what := "header"
	if block >= 0 {
		what = fmt.Sprintf("block %d", block)
	}
	if errors.Is(err, io.EOF) || errors.Is(err, io.ErrUnexpectedEOF) {
		return fmt.Errorf("%s: %w: %w", what, ErrTruncated, io.ErrUnexpectedEOF)
	}
	return fmt.Errorf("%s: %w", what, err)
}
