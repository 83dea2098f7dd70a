// Copyright (c) 2019 Nameops Authors.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package script

import (
	"github.com/nmcsuite/nameops/crypto"
	"github.com/nmcsuite/nameops/util"
	"github.com/pkg/errors"
)

// ScriptHash fingerprints a script for history-index lookups: the sha256
// digest of the raw script bytes in reversed byte order, as 64 lowercase
// hex characters.
func ScriptHash(script []byte) string {
	return crypto.Sha256H(script).String()
}

// ScriptHashHex fingerprints a hex-rendered script. The digest is computed
// over the decoded bytes, not the hex text.
func ScriptHashHex(scriptHex string) (string, error) {
	script, err := util.FromHex(scriptHex)
	if err != nil {
		return "", errors.Wrapf(err, "script hex %q", scriptHex)
	}
	return ScriptHash(script), nil
}

// HashForName turns a human-readable name into the fingerprint a
// history-index server is queried with. The name is encoded as ASCII,
// wrapped in a value-less update operation followed by OP_RETURN, and the
// resulting script is fingerprinted.
func (b *Builder) HashForName(name string) (string, error) {
	for i := 0; i < len(name); i++ {
		if name[i] > 0x7f {
			return "", errors.Wrapf(ErrNonASCIIName, "name %q", name)
		}
	}

	s, err := b.Build(NameUpdate{Name: []byte(name)})
	if err != nil {
		return "", err
	}
	s.AddOpCode(b.table.MustGet("OP_RETURN"))

	return ScriptHash(s.Bytes()), nil
}

// HashForName is the package-level form of Builder.HashForName using the
// default opcode table and policy.
func HashForName(name string) (string, error) {
	return NewBuilder().HashForName(name)
}
