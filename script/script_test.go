// Copyright (c) 2019 Nameops Authors.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package script

import (
	"bytes"
	"testing"

	"github.com/facebookgo/ensure"
)

func TestAddOperandEmptyAndZero(t *testing.T) {
	// empty push and single zero byte both collapse to OP_0
	s := NewScript().AddOperand(nil)
	ensure.DeepEqual(t, s.Hex(), "00")

	s = NewScript().AddOperand([]byte{})
	ensure.DeepEqual(t, s.Hex(), "00")

	s = NewScript().AddOperand([]byte{0x00})
	ensure.DeepEqual(t, s.Hex(), "00")
}

func TestAddOperandSmallInt(t *testing.T) {
	// single bytes 1..16 use the dedicated small-integer opcodes, never a
	// length-prefixed push
	for b := byte(1); b <= 16; b++ {
		s := NewScript().AddOperand([]byte{b})
		ensure.DeepEqual(t, len(*s), 1)
		ensure.DeepEqual(t, (*s)[0], byte(OP1)-1+b)
	}
}

func TestAddOperandNegativeOne(t *testing.T) {
	s := NewScript().AddOperand([]byte{0x81})
	ensure.DeepEqual(t, s.Hex(), "4f")
}

func TestAddOperandDirectLength(t *testing.T) {
	// lengths 1..75 outside the special cases carry the length as the
	// opcode byte itself
	s := NewScript().AddOperand([]byte{0x17})
	ensure.DeepEqual(t, s.Hex(), "0117")

	data := bytes.Repeat([]byte{0xab}, 75)
	s = NewScript().AddOperand(data)
	ensure.DeepEqual(t, len(*s), 76)
	ensure.DeepEqual(t, (*s)[0], byte(75))
	ensure.True(t, bytes.Equal((*s)[1:], data))
}

func TestAddOperandPushData1(t *testing.T) {
	for _, n := range []int{76, 200, 255} {
		data := bytes.Repeat([]byte{0xcd}, n)
		s := NewScript().AddOperand(data)
		ensure.DeepEqual(t, (*s)[0], byte(OPPUSHDATA1))
		ensure.DeepEqual(t, (*s)[1], byte(n))
		ensure.True(t, bytes.Equal((*s)[2:], data))
	}
}

func TestAddOperandPushData2(t *testing.T) {
	data := bytes.Repeat([]byte{0xef}, 0x0102)
	s := NewScript().AddOperand(data)
	ensure.DeepEqual(t, (*s)[0], byte(OPPUSHDATA2))
	// length 0x0102 little-endian
	ensure.DeepEqual(t, (*s)[1], byte(0x02))
	ensure.DeepEqual(t, (*s)[2], byte(0x01))
	ensure.True(t, bytes.Equal((*s)[3:], data))
}

func TestAddOperandPushData4(t *testing.T) {
	// the four-byte tier must carry the true length, not a placeholder
	n := 0x10000
	data := bytes.Repeat([]byte{0x11}, n)
	s := NewScript().AddOperand(data)
	ensure.DeepEqual(t, (*s)[0], byte(OPPUSHDATA4))
	ensure.DeepEqual(t, (*s)[1], byte(0x00))
	ensure.DeepEqual(t, (*s)[2], byte(0x00))
	ensure.DeepEqual(t, (*s)[3], byte(0x01))
	ensure.DeepEqual(t, (*s)[4], byte(0x00))
	ensure.True(t, bytes.Equal((*s)[5:], data))
}

func TestAddOpCodeAndAddScript(t *testing.T) {
	s := NewScript().AddOpCode(OPNAMEUPDATE).AddOperand([]byte("id/x"))
	tail := NewScript().AddOpCode(OP2DROP).AddOpCode(OPDROP)
	s.AddScript(tail)
	ensure.DeepEqual(t, s.Hex(), "530469642f786d75")

	s2 := NewScriptFromBytes(s.Bytes())
	ensure.DeepEqual(t, s2, s)
}

func TestScriptHexIsLowercase(t *testing.T) {
	s := NewScript().AddOperand([]byte{0xAB, 0xCD, 0xEF})
	ensure.DeepEqual(t, s.Hex(), "03abcdef")
	ensure.DeepEqual(t, s.String(), s.Hex())
}
