/*
   Copyright The wallet-core Authors.

   Licensed under the Apache License, Version 2.0 (the "License");
   you may not use this file except in compliance with the License.
   You may obtain a copy of the License at

       http://www.apache.org/licenses/LICENSE-2.0

   Unless required by applicable law or agreed to in writing, software
   distributed under the License is distributed on an "AS IS" BASIS,
   WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
   See the License for the specific language governing permissions and
   limitations under the License.
*/

// Package hash provides the Keccak-256 digest primitive used to
// content-address typed structured data.
package hash

import (
	"encoding/hex"

	"github.com/opencontainers/go-digest"
	"golang.org/x/crypto/sha3"
)

// Size is the width in bytes of a Keccak-256 digest.
const Size = 32

// Algorithm identifies the digest algorithm in content-address renderings.
const Algorithm = digest.Algorithm("keccak256")

// Hash is a fixed-width Keccak-256 digest.
type Hash [Size]byte

// Keccak256 computes the legacy (pre-NIST padding) Keccak-256 digest of the
// concatenation of the given byte slices.
func Keccak256(data ...[]byte) Hash {
	d := sha3.NewLegacyKeccak256()
	for _, p := range data {
		d.Write(p)
	}
	var h Hash
	d.Sum(h[:0])
	return h
}

// Bytes returns the digest as a byte slice.
func (h Hash) Bytes() []byte { return h[:] }

// String returns the digest in lowercase hex.
func (h Hash) String() string { return hex.EncodeToString(h[:]) }

// Digest renders the hash as an algorithm-prefixed content address,
// e.g. "keccak256:9c0257...".
func (h Hash) Digest() digest.Digest {
	return digest.NewDigestFromEncoded(Algorithm, h.String())
}
