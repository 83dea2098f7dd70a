// Copyright (c) 2019 Nameops Authors.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package util

import "github.com/pkg/errors"

// error
var (
	ErrIntOutOfRange = errors.New("integer does not fit in requested byte length")
	ErrInvalidHex    = errors.New("invalid hex string")
)
