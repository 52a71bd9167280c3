// SPDX-License-Identifier: MIT

package switchangle

import (
	"bytes"
	"encoding/binary"
	"fmt"
	"io"
	"math"
)

// Encode writes t to w in the layout Decode reads. The table is validated
// first, so Encode never produces bytes that Decode would reject.
//
// Errors:
//   - ErrInvalidInput if w or t is nil.
//   - ErrMalformedTable if t fails Validate.
//   - write errors from w, wrapped.
//
// Complexity: O(B·S). One buffer of a single block is allocated.
func Encode(w io.Writer, t *SwitchAngleTable) error {
	if w == nil {
		return fmt.Errorf("Encode: writer: %w", ErrInvalidInput)
	}
	if err := Validate(t); err != nil {
		return fmt.Errorf("Encode: %w", err)
	}

	var hdr [headerSize]byte
	hdr[0] = byte(t.switchCount)
	binary.LittleEndian.PutUint64(hdr[1:9], math.Float64bits(t.division))
	binary.LittleEndian.PutUint32(hdr[9:13], uint32(t.blockCount))
	if _, err := w.Write(hdr[:]); err != nil {
		return fmt.Errorf("Encode: header: %w", err)
	}

	buf := make([]byte, 1+t.switchCount*thresholdSize)
	for b := 0; b < t.blockCount; b++ {
		buf[0] = 0
		if t.polarity[b] {
			buf[0] = 1
		}
		for j, th := range t.row(b) {
			p := buf[1+j*thresholdSize:]
			p[0] = byte(th.Level)
			binary.LittleEndian.PutUint64(p[1:9], math.Float64bits(th.Angle))
		}
		if _, err := w.Write(buf); err != nil {
			return fmt.Errorf("Encode: block %d: %w", b, err)
		}
	}
	return nil
}

// EncodedSize returns the number of bytes Encode writes for t.
func (t *SwitchAngleTable) EncodedSize() int {
	return headerSize + t.blockCount*(1+t.switchCount*thresholdSize)
}

// MarshalBinary implements encoding.BinaryMarshaler.
func (t *SwitchAngleTable) MarshalBinary() ([]byte, error) {
	var buf bytes.Buffer
	if t != nil {
		buf.Grow(t.EncodedSize())
	}
	if err := Encode(&buf, t); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// UnmarshalBinary implements encoding.BinaryUnmarshaler with strict decoding.
// It only populates a zero-value table; tables are never rewritten in place.
func (t *SwitchAngleTable) UnmarshalBinary(data []byte) error {
	if t == nil || t.switchCount != 0 || t.thresholds != nil || t.polarity != nil {
		return fmt.Errorf("UnmarshalBinary: receiver must be a zero-value table: %w", ErrInvalidInput)
	}
	decoded, err := DecodeBytes(data)
	if err != nil {
		return fmt.Errorf("UnmarshalBinary: %w", err)
	}
	*t = *decoded
	return nil
}
