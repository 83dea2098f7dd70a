// Copyright (c) 2019 Nameops Authors.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package crypto

import (
	"crypto/sha256"
	"encoding/hex"
	"fmt"

	"golang.org/x/crypto/ripemd160"
)

const (
	// HashSize is length of digest
	HashSize = 32
)

// HashType is renamed hash type
type HashType [HashSize]byte

// String returns the Hash as the hexadecimal string of the byte-reversed
// hash. This is the rendering history-index servers expect as a lookup key.
func (hash HashType) String() string {
	reverseBytes(hash[:])
	return hex.EncodeToString(hash[:])
}

// SetString sets the hash from the hexadecimal string of the byte-reversed
// hash, the inverse of String.
func (hash *HashType) SetString(str string) error {
	data, err := hex.DecodeString(str)
	if err != nil {
		return err
	}
	if err := hash.SetBytes(data); err != nil {
		return err
	}
	reverseBytes(hash[:])
	return nil
}

// reverseBytes reverses buf in place.
func reverseBytes(buf []byte) {
	for i, j := 0, len(buf)-1; i < j; i, j = i+1, j-1 {
		buf[i], buf[j] = buf[j], buf[i]
	}
}

// Sha256 calculates the sha256 digest of buf
func Sha256(buf []byte) []byte {
	digest := sha256.Sum256(buf)
	return digest[:]
}

// Sha256H calculates the sha256 digest of buf and returns it as a hash.
func Sha256H(buf []byte) HashType {
	return HashType(sha256.Sum256(buf))
}

// Ripemd160 calculates the RIPEMD160 digest of buf
func Ripemd160(buf []byte) []byte {
	hasher := ripemd160.New()
	hasher.Write(buf)
	return hasher.Sum(nil)
}

// Hash160 calculates the RIPEMD160 digest of buf's sha256 digest
func Hash160(buf []byte) []byte {
	return Ripemd160(Sha256(buf))
}

// IsEqual returns true if target is the same as hash.
func (hash *HashType) IsEqual(target *HashType) bool {
	if hash == nil && target == nil {
		return true
	}
	if hash == nil || target == nil {
		return false
	}
	return *hash == *target
}

// SetBytes convert type []byte to HashType
func (hash *HashType) SetBytes(hashBytes []byte) error {
	if len(hashBytes) != HashSize {
		return fmt.Errorf("Incorrect hash length : %v", hashBytes)
	}
	copy(hash[:], hashBytes)
	return nil
}

// GetBytes returns a copy of the hash bytes in digest order.
func (hash *HashType) GetBytes() []byte {
	out := make([]byte, HashSize)
	copy(out, hash[:])
	return out
}
