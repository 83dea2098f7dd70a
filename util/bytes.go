// Copyright (c) 2019 Nameops Authors.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package util

import (
	"encoding/binary"
	"encoding/hex"

	"github.com/pkg/errors"
)

var defaultEndian = binary.LittleEndian

// Hex encodes []byte to Hex.
func Hex(data []byte) string {
	return hex.EncodeToString(data)
}

// FromHex decodes string from Hex.
func FromHex(data string) ([]byte, error) {
	return hex.DecodeString(data)
}

// ReverseHex reverses the byte order of a hex string: pairs of hex
// characters are treated as bytes and their sequence order is reversed.
func ReverseHex(s string) (string, error) {
	data, err := hex.DecodeString(s)
	if err != nil {
		return "", errors.Wrapf(ErrInvalidHex, "reverse hex %q: %v", s, err)
	}
	return Hex(ReverseBytes(data)), nil
}

// ReverseBytes returns a new slice holding data in reversed byte order.
func ReverseBytes(data []byte) []byte {
	out := make([]byte, len(data))
	for i, b := range data {
		out[len(data)-1-i] = b
	}
	return out
}

// LittleEndianBytes encodes i into exactly length little-endian bytes.
// Negative values are rendered in two's complement within length bytes.
// i must fit in length bytes either as an unsigned value or as a signed
// two's-complement value, i.e. lie in [-(256^length)/2, 256^length - 1].
func LittleEndianBytes(i int64, length int) ([]byte, error) {
	if length <= 0 {
		return nil, errors.Wrapf(ErrIntOutOfRange, "non-positive byte length %d", length)
	}
	if length < 8 {
		max := int64(1)<<uint(8*length) - 1
		min := -(int64(1) << uint(8*length-1))
		if i < min || i > max {
			return nil, errors.Wrapf(ErrIntOutOfRange, "%d does not fit in %d byte(s): valid range [%d, %d]",
				i, length, min, max)
		}
	}
	buf := make([]byte, length)
	u := uint64(i) // two's complement for negative i
	for k := 0; k < length && k < 8; k++ {
		buf[k] = byte(u >> uint(8*k))
	}
	// Bytes beyond the 8th carry the sign extension.
	if i < 0 {
		for k := 8; k < length; k++ {
			buf[k] = 0xff
		}
	}
	return buf, nil
}

// LittleEndianHex encodes i into a little-endian hex string of exactly
// 2*length characters. See LittleEndianBytes for the accepted range.
func LittleEndianHex(i int64, length int) (string, error) {
	buf, err := LittleEndianBytes(i, length)
	if err != nil {
		return "", err
	}
	return Hex(buf), nil
}

// FromUint32 encodes v into 4 little-endian bytes.
func FromUint32(v uint32) []byte {
	b := make([]byte, 4)
	defaultEndian.PutUint32(b, v)
	return b
}

// FromUint16 encodes v into 2 little-endian bytes.
func FromUint16(v uint16) []byte {
	b := make([]byte, 2)
	defaultEndian.PutUint16(b, v)
	return b
}

// Uint32 decodes 4 little-endian bytes.
func Uint32(data []byte) uint32 {
	return defaultEndian.Uint32(data)
}

// Uint16 decodes 2 little-endian bytes.
func Uint16(data []byte) uint16 {
	return defaultEndian.Uint16(data)
}

// Equal checks whether byte slice a and b are equal.
func Equal(a []byte, b []byte) bool {
	if len(a) != len(b) {
		return false
	}
	for i := 0; i < len(a); i++ {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}
