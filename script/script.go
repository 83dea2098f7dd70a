// Copyright (c) 2019 Nameops Authors.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package script

import (
	"encoding/hex"

	"github.com/nmcsuite/nameops/log"
	"github.com/nmcsuite/nameops/util"
)

var logger = log.NewLogger("script") // logger

// nameOpScriptLen is a typical name-operation script size, used as the
// initial capacity for built scripts.
const nameOpScriptLen = 64

// Script represents scripts
type Script []byte

// NewScript returns an empty script
func NewScript() *Script {
	emptyBytes := make([]byte, 0, nameOpScriptLen)
	return (*Script)(&emptyBytes)
}

// NewScriptWithCap returns an empty script with the given capacity
func NewScriptWithCap(cap int) *Script {
	emptyBytes := make([]byte, 0, cap)
	return (*Script)(&emptyBytes)
}

// NewScriptFromBytes returns a script from byte slice
func NewScriptFromBytes(scriptBytes []byte) *Script {
	script := Script(scriptBytes)
	return &script
}

// AddOpCode adds an opcode to the script
func (s *Script) AddOpCode(opCode OpCode) *Script {
	*s = append(*s, byte(opCode))
	return s
}

// AddOperand adds an operand to the script using the canonical push
// encoding: the shortest opcode sequence consensus accepts for the data.
func (s *Script) AddOperand(operand []byte) *Script {
	dataLen := len(operand)

	// Single-byte values with dedicated opcodes never use a length prefix.
	if dataLen == 0 || dataLen == 1 && operand[0] == 0x00 {
		*s = append(*s, byte(OP0))
		return s
	}
	if dataLen == 1 && operand[0] >= 1 && operand[0] <= 16 {
		*s = append(*s, byte(OP1)-1+operand[0])
		return s
	}
	if dataLen == 1 && operand[0] == opNegativeOne {
		*s = append(*s, byte(OP1NEGATE))
		return s
	}

	if dataLen < int(OPPUSHDATA1) {
		// opcode itself encodes operand size
		*s = append(*s, byte(dataLen))
	} else if dataLen <= 0xff {
		*s = append(*s, byte(OPPUSHDATA1), byte(dataLen))
	} else if dataLen <= 0xffff {
		*s = append(*s, byte(OPPUSHDATA2))
		*s = append(*s, util.FromUint16(uint16(dataLen))...)
	} else {
		*s = append(*s, byte(OPPUSHDATA4))
		*s = append(*s, util.FromUint32(uint32(dataLen))...)
	}

	// Append the actual operand
	*s = append(*s, operand...)
	return s
}

// AddScript appends a script to the script
func (s *Script) AddScript(script *Script) *Script {
	*s = append(*s, (*script)...)
	return s
}

// Bytes returns the raw script bytes.
func (s *Script) Bytes() []byte {
	return []byte(*s)
}

// Hex returns the script rendered as a lowercase hex string.
func (s *Script) Hex() string {
	return hex.EncodeToString(*s)
}

func (s *Script) String() string {
	return s.Hex()
}
