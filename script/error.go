// Copyright (c) 2019 Nameops Authors.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package script

import "github.com/pkg/errors"

// error
var (

	// nameop.go
	ErrBadCommitmentLen = errors.New("commitment length does not match required length")
	ErrBadSaltLen       = errors.New("salt length does not match required length")
	ErrNameTooLong      = errors.New("name exceeds maximum length")
	ErrValueTooLong     = errors.New("value exceeds maximum length")
	ErrUnknownNameOp    = errors.New("unknown name operation")

	// hash.go
	ErrNonASCIIName = errors.New("name contains non-ASCII characters")
)
