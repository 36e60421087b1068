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

package typeddata

import (
	"fmt"

	"github.com/opencontainers/go-digest"

	"github.com/sadeghzare2580/wallet-core/pkg/hash"
)

// TypeHash returns the digest of the canonical full type string. It is a
// pure function of the struct's shape, never of its values: two instances
// of the same type with different field values share a type hash.
func (s *Struct) TypeHash() hash.Hash {
	return hash.Keccak256([]byte(s.TypeString()))
}

// encodeHashes concatenates every field's contribution in declaration order.
func (l FieldList) encodeHashes() ([]byte, error) {
	buf := make([]byte, 0, len(l)*hash.Size)
	for _, f := range l {
		h, err := f.Value.contribution()
		if err != nil {
			return nil, fmt.Errorf("field %q: %w", f.Name, err)
		}
		buf = append(buf, h.Bytes()...)
	}
	return buf, nil
}

// StructHash returns the content address of a bound instance:
// digest(typeHash ++ per-field contributions). Seeding every struct hash
// with its own type hash keeps structurally different types from colliding
// on equal values. A struct type with no fields hashes to the all-zero
// sentinel rather than failing.
func (s *Struct) StructHash() (hash.Hash, error) {
	encoded, err := s.fields.encodeHashes()
	if err != nil {
		return hash.Hash{}, err
	}
	if len(encoded) == 0 {
		return hash.Hash{}, nil
	}
	th := s.TypeHash()
	return hash.Keccak256(th.Bytes(), encoded), nil
}

// contribution implements Value: a nested instance contributes its complete
// struct hash, not its type hash or raw field bytes.
func (s *Struct) contribution() (hash.Hash, error) {
	return s.StructHash()
}

// Digest renders the struct hash as an algorithm-prefixed content address.
func (s *Struct) Digest() (digest.Digest, error) {
	h, err := s.StructHash()
	if err != nil {
		return "", err
	}
	return h.Digest(), nil
}
