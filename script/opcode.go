// Copyright (c) 2019 Nameops Authors.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package script

import "fmt"

// OpCode enum
type OpCode byte

// These constants are based on the official opcodes of the target chain's
// script language. Only the subset a name operation can reach is listed.
const (
	// push value
	OP0         OpCode = 0x00 // 0
	OPFALSE     OpCode = 0x00 // 0 - AKA OP0
	OPDATA1     OpCode = 0x01 // 1
	OPDATA20    OpCode = 0x14 // 20
	OPDATA75    OpCode = 0x4b // 75
	OPPUSHDATA1 OpCode = 0x4c // 76
	OPPUSHDATA2 OpCode = 0x4d // 77
	OPPUSHDATA4 OpCode = 0x4e // 78
	OP1NEGATE   OpCode = 0x4f // 79
	OPRESERVED  OpCode = 0x50 // 80
	OP1         OpCode = 0x51 // 81
	OPTRUE      OpCode = 0x51 // 81 - AKA OP1
	OP2         OpCode = 0x52 // 82
	OP3         OpCode = 0x53 // 83
	OP4         OpCode = 0x54 // 84
	OP5         OpCode = 0x55 // 85
	OP6         OpCode = 0x56 // 86
	OP7         OpCode = 0x57 // 87
	OP8         OpCode = 0x58 // 88
	OP9         OpCode = 0x59 // 89
	OP10        OpCode = 0x5a // 90
	OP11        OpCode = 0x5b // 91
	OP12        OpCode = 0x5c // 92
	OP13        OpCode = 0x5d // 93
	OP14        OpCode = 0x5e // 94
	OP15        OpCode = 0x5f // 95
	OP16        OpCode = 0x60 // 96

	// control
	OPNOP    OpCode = 0x61 // 97
	OPRETURN OpCode = 0x6a // 106

	// stack ops
	OP2DROP OpCode = 0x6d // 109
	OPDROP  OpCode = 0x75 // 117
	OPDUP   OpCode = 0x76 // 118
)

// Name operations overload the small-integer opcodes: the opcode tags the
// registration phase and the interpreter drops the pushed payload.
const (
	OPNAMENEW         = OP1
	OPNAMEFIRSTUPDATE = OP2
	OPNAMEUPDATE      = OP3
)

// opNegativeOne is the single data byte the dedicated negative-one opcode
// stands for in canonical push encoding.
const opNegativeOne byte = 0x81

// Table maps symbolic opcode names to their byte values. It is built once
// and never mutated afterwards; tests may substitute alternate tables.
type Table map[string]OpCode

// DefaultTable returns the opcode table of the target chain.
func DefaultTable() Table {
	return Table{
		"OP_0":                OP0,
		"OP_FALSE":            OPFALSE,
		"OP_PUSHDATA1":        OPPUSHDATA1,
		"OP_PUSHDATA2":        OPPUSHDATA2,
		"OP_PUSHDATA4":        OPPUSHDATA4,
		"OP_1NEGATE":          OP1NEGATE,
		"OP_1":                OP1,
		"OP_TRUE":             OPTRUE,
		"OP_2":                OP2,
		"OP_3":                OP3,
		"OP_4":                OP4,
		"OP_5":                OP5,
		"OP_6":                OP6,
		"OP_7":                OP7,
		"OP_8":                OP8,
		"OP_9":                OP9,
		"OP_10":               OP10,
		"OP_11":               OP11,
		"OP_12":               OP12,
		"OP_13":               OP13,
		"OP_14":               OP14,
		"OP_15":               OP15,
		"OP_16":               OP16,
		"OP_NOP":              OPNOP,
		"OP_RETURN":           OPRETURN,
		"OP_2DROP":            OP2DROP,
		"OP_DROP":             OPDROP,
		"OP_DUP":              OPDUP,
		"OP_NAME_NEW":         OPNAMENEW,
		"OP_NAME_FIRSTUPDATE": OPNAMEFIRSTUPDATE,
		"OP_NAME_UPDATE":      OPNAMEUPDATE,
	}
}

// MustGet returns the opcode registered under name. A missing name means
// the table was wired wrong at startup, so it panics instead of returning
// an error.
func (t Table) MustGet(name string) OpCode {
	op, ok := t[name]
	if !ok {
		panic(fmt.Sprintf("opcode %s not in table", name))
	}
	return op
}
