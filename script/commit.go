// Copyright (c) 2019 Nameops Authors.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package script

import "github.com/nmcsuite/nameops/crypto"

// MakeCommitment derives the commit-phase payload for a future name claim:
// Hash160 over salt followed by name. The same salt must be revealed in the
// matching NameFirstUpdate.
func MakeCommitment(name, salt []byte) []byte {
	buf := make([]byte, 0, len(salt)+len(name))
	buf = append(buf, salt...)
	buf = append(buf, name...)
	return crypto.Hash160(buf)
}
