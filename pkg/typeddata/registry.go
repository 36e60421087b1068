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
	"encoding/json"
	"fmt"
	"strconv"
	"strings"
	"sync"

	"github.com/containerd/errdefs"

	"github.com/sadeghzare2580/wallet-core/pkg/hash"
	"github.com/sadeghzare2580/wallet-core/pkg/hexcoding"
)

// Codec decodes one primitive type's JSON scalar into its internal encoding
// and folds the encoding into a fixed-width hash contribution.
type Codec struct {
	// Decode parses the raw JSON scalar into the type's internal encoding.
	Decode func(raw json.RawMessage) ([]byte, error)

	// Hash produces the 32-byte contribution for an encoded value.
	Hash func(enc []byte) hash.Hash
}

var (
	mu     sync.Mutex
	codecs = make(map[string]Codec)
)

func init() {
	RegisterPrimitive("string", Codec{
		Decode: func(raw json.RawMessage) ([]byte, error) {
			var s string
			if err := json.Unmarshal(raw, &s); err != nil {
				return nil, fmt.Errorf("expecting string scalar: %w", errdefs.ErrInvalidArgument)
			}
			return []byte(s), nil
		},
		Hash: func(enc []byte) hash.Hash {
			return hash.Keccak256(enc)
		},
	})
	RegisterPrimitive("address", Codec{
		Decode: decodeAddress,
		Hash: func(enc []byte) hash.Hash {
			// enc is already the left-padded 32-byte word; the
			// contribution is the raw word, not a digest of it.
			var h hash.Hash
			copy(h[:], enc)
			return h
		},
	})
}

// decodeAddress parses a hex address string into a left-padded 32-byte word.
func decodeAddress(raw json.RawMessage) ([]byte, error) {
	var s string
	if err := json.Unmarshal(raw, &s); err != nil {
		return nil, fmt.Errorf("expecting address hex string: %w", errdefs.ErrInvalidArgument)
	}
	b, err := hexcoding.Decode(s)
	if err != nil {
		return nil, err
	}
	if len(b) > hash.Size {
		return nil, fmt.Errorf("address %q longer than %d bytes: %w", s, hash.Size, errdefs.ErrInvalidArgument)
	}
	enc := make([]byte, hash.Size)
	copy(enc[hash.Size-len(b):], b)
	return enc, nil
}

// RegisterPrimitive wires a value codec for a primitive type name, making
// the type bindable from value documents. Registering a name twice, or an
// incomplete codec, panics.
func RegisterPrimitive(name string, c Codec) {
	if name == "" || c.Decode == nil || c.Hash == nil {
		panic(fmt.Errorf("incomplete codec for primitive %q: %w", name, errdefs.ErrInvalidArgument))
	}
	mu.Lock()
	defer mu.Unlock()
	if _, ok := codecs[name]; ok {
		panic(fmt.Errorf("primitive %q: %w", name, errdefs.ErrAlreadyExists))
	}
	codecs[name] = c
}

func lookupCodec(name string) (Codec, bool) {
	mu.Lock()
	defer mu.Unlock()
	c, ok := codecs[name]
	return c, ok
}

// IsPrimitiveType reports whether name names a primitive field type. The
// answer decides primitive vs. struct resolution during schema compilation,
// so recognition is wider than the codec registry: the whole ABI scalar
// catalog compiles, while binding additionally needs a registered codec.
func IsPrimitiveType(name string) bool {
	if _, ok := lookupCodec(name); ok {
		return true
	}
	switch name {
	case "string", "address", "bool", "bytes":
		return true
	}
	if rest, ok := strings.CutPrefix(name, "bytes"); ok {
		n, err := strconv.Atoi(rest)
		// no leading zeros: "bytes07" is not an ABI type name
		return err == nil && rest[0] != '0' && n >= 1 && n <= 32
	}
	rest, ok := strings.CutPrefix(name, "uint")
	if !ok {
		rest, ok = strings.CutPrefix(name, "int")
	}
	if ok {
		n, err := strconv.Atoi(rest)
		return err == nil && rest[0] != '0' && n >= 8 && n <= 256 && n%8 == 0
	}
	return false
}
