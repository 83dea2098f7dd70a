// Copyright (c) 2019 Nameops Authors.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package script

import (
	"github.com/pkg/errors"
)

// Default name-policy limits of the target chain.
const (
	DefaultCommitmentLen = 20
	DefaultSaltLen       = 20
	DefaultMaxNameLen    = 255
	DefaultMaxValueLen   = 520
)

// Policy holds the length limits a name operation must satisfy before it is
// encoded. The limits come from configuration; they change which inputs are
// accepted, never the encoding itself.
type Policy struct {
	CommitmentLen int `mapstructure:"commitment_len"`
	SaltLen       int `mapstructure:"salt_len"`
	MaxNameLen    int `mapstructure:"max_name_len"`
	MaxValueLen   int `mapstructure:"max_value_len"`
}

// DefaultPolicy returns the limits enforced by the target chain.
func DefaultPolicy() Policy {
	return Policy{
		CommitmentLen: DefaultCommitmentLen,
		SaltLen:       DefaultSaltLen,
		MaxNameLen:    DefaultMaxNameLen,
		MaxValueLen:   DefaultMaxValueLen,
	}
}

// NameOp is one phase of the commit / reveal / update name-registration
// protocol. Exactly three kinds exist: NameNew, NameFirstUpdate and
// NameUpdate.
type NameOp interface {
	nameOp()
}

// NameNew commits to a future name claim without revealing the name. The
// commitment is a fixed-length digest, see MakeCommitment.
type NameNew struct {
	Commitment []byte
}

// NameFirstUpdate reveals a committed name and sets its initial value.
type NameFirstUpdate struct {
	Name  []byte
	Salt  []byte
	Value []byte
}

// NameUpdate replaces the value of an already-registered name.
type NameUpdate struct {
	Name  []byte
	Value []byte
}

func (NameNew) nameOp()         {}
func (NameFirstUpdate) nameOp() {}
func (NameUpdate) nameOp()      {}

// Builder encodes name operations into scripts using an opcode table and a
// name policy, both immutable after construction.
type Builder struct {
	table  Table
	policy Policy
}

// NewBuilder returns a builder using the default opcode table and policy.
func NewBuilder() *Builder {
	return &Builder{table: DefaultTable(), policy: DefaultPolicy()}
}

// NewBuilderWith returns a builder using the given opcode table and policy.
func NewBuilderWith(table Table, policy Policy) *Builder {
	return &Builder{table: table, policy: policy}
}

// validate checks the operation's field lengths against the policy. It
// fails on the first violation and never mutates the operation.
func (b *Builder) validate(op NameOp) error {
	switch o := op.(type) {
	case NameNew:
		if len(o.Commitment) != b.policy.CommitmentLen {
			return errors.Wrapf(ErrBadCommitmentLen, "commitment is %d bytes, requires %d",
				len(o.Commitment), b.policy.CommitmentLen)
		}
	case NameFirstUpdate:
		if len(o.Salt) != b.policy.SaltLen {
			return errors.Wrapf(ErrBadSaltLen, "salt is %d bytes, requires %d",
				len(o.Salt), b.policy.SaltLen)
		}
		if len(o.Name) > b.policy.MaxNameLen {
			return errors.Wrapf(ErrNameTooLong, "name is %d bytes, maximum %d",
				len(o.Name), b.policy.MaxNameLen)
		}
		if len(o.Value) > b.policy.MaxValueLen {
			return errors.Wrapf(ErrValueTooLong, "value is %d bytes, maximum %d",
				len(o.Value), b.policy.MaxValueLen)
		}
	case NameUpdate:
		if len(o.Name) > b.policy.MaxNameLen {
			return errors.Wrapf(ErrNameTooLong, "name is %d bytes, maximum %d",
				len(o.Name), b.policy.MaxNameLen)
		}
		if len(o.Value) > b.policy.MaxValueLen {
			return errors.Wrapf(ErrValueTooLong, "value is %d bytes, maximum %d",
				len(o.Value), b.policy.MaxValueLen)
		}
	default:
		return errors.Wrapf(ErrUnknownNameOp, "%T", op)
	}
	return nil
}

// Build encodes op into its script form. It validates first and never
// returns a partial script.
func (b *Builder) Build(op NameOp) (*Script, error) {
	if err := b.validate(op); err != nil {
		return nil, err
	}

	s := NewScript()
	switch o := op.(type) {
	case NameNew:
		s.AddOpCode(b.table.MustGet("OP_NAME_NEW")).
			AddOperand(o.Commitment).
			AddOpCode(b.table.MustGet("OP_2DROP"))
	case NameFirstUpdate:
		s.AddOpCode(b.table.MustGet("OP_NAME_FIRSTUPDATE")).
			AddOperand(o.Name).
			AddOperand(o.Salt).
			AddOperand(o.Value).
			AddOpCode(b.table.MustGet("OP_2DROP")).
			AddOpCode(b.table.MustGet("OP_2DROP"))
	case NameUpdate:
		s.AddOpCode(b.table.MustGet("OP_NAME_UPDATE")).
			AddOperand(o.Name).
			AddOperand(o.Value).
			AddOpCode(b.table.MustGet("OP_2DROP")).
			AddOpCode(b.table.MustGet("OP_DROP"))
	}

	logger.Debugf("built %T script: %s", op, s.Hex())
	return s, nil
}

// BuildHex encodes op and renders the script as lowercase hex, the form
// transaction assembly embeds into an output.
func (b *Builder) BuildHex(op NameOp) (string, error) {
	s, err := b.Build(op)
	if err != nil {
		return "", err
	}
	return s.Hex(), nil
}
