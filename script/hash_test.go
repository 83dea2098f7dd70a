// Copyright (c) 2019 Nameops Authors.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package script

import (
	"testing"

	"github.com/facebookgo/ensure"
	"github.com/pkg/errors"
)

func TestScriptHash(t *testing.T) {
	// sha256("") reversed
	ensure.DeepEqual(t, ScriptHash(nil),
		"55b852781b9995a44c939b64e441ae2724b96f99c8f4fb9a141cfc9842c4b0e3")

	script := NewScript().AddOpCode(OPNAMEUPDATE).AddOperand([]byte("id/x"))
	fingerprint := ScriptHash(script.Bytes())
	ensure.DeepEqual(t, len(fingerprint), 64)
	// deterministic
	ensure.DeepEqual(t, ScriptHash(script.Bytes()), fingerprint)
}

func TestScriptHashHex(t *testing.T) {
	got, err := ScriptHashHex("530469642f78006d756a")
	ensure.Nil(t, err)
	ensure.DeepEqual(t, got,
		"dae01d6bfa34dfea6067cb15440da44f6dd949faaa6b106539daf38a521bc753")

	_, err = ScriptHashHex("not-hex")
	ensure.NotNil(t, err)
}

// The full derivation pinned byte for byte: OP_3, a 4-byte push of the
// ASCII name, an empty value push, OP_2DROP, OP_DROP, then the OP_RETURN
// terminator; the fingerprint is the reversed sha256 of those bytes.
func TestHashForName(t *testing.T) {
	builder := NewBuilder()

	s, err := builder.Build(NameUpdate{Name: []byte("id/x")})
	ensure.Nil(t, err)
	s.AddOpCode(OPRETURN)
	ensure.DeepEqual(t, s.Hex(), "530469642f78006d756a")

	fingerprint, err := builder.HashForName("id/x")
	ensure.Nil(t, err)
	ensure.DeepEqual(t, fingerprint, ScriptHash(s.Bytes()))
	ensure.DeepEqual(t, fingerprint,
		"dae01d6bfa34dfea6067cb15440da44f6dd949faaa6b106539daf38a521bc753")
}

func TestHashForNameDefaultBuilder(t *testing.T) {
	want, err := NewBuilder().HashForName("d/example")
	ensure.Nil(t, err)

	got, err := HashForName("d/example")
	ensure.Nil(t, err)
	ensure.DeepEqual(t, got, want)
	ensure.DeepEqual(t, len(got), 64)
}

func TestHashForNameNonASCII(t *testing.T) {
	_, err := HashForName("d/exämple")
	ensure.NotNil(t, err)
	ensure.DeepEqual(t, errors.Cause(err), ErrNonASCIIName)
}

func TestHashForNameTooLong(t *testing.T) {
	name := make([]byte, DefaultMaxNameLen+1)
	for i := range name {
		name[i] = 'a'
	}
	_, err := HashForName(string(name))
	ensure.NotNil(t, err)
	ensure.DeepEqual(t, errors.Cause(err), ErrNameTooLong)
}
