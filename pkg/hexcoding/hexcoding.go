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

// Package hexcoding converts between byte slices and the 0x-prefixed hex
// strings used for addresses and raw byte values in JSON documents.
package hexcoding

import (
	"encoding/hex"
	"fmt"
	"strings"

	"github.com/containerd/errdefs"
)

// Decode parses a hex string into bytes. A "0x" or "0X" prefix is accepted,
// and an odd number of digits is interpreted with an implied leading zero.
func Decode(s string) ([]byte, error) {
	trimmed := s
	if strings.HasPrefix(trimmed, "0x") || strings.HasPrefix(trimmed, "0X") {
		trimmed = trimmed[2:]
	}
	if len(trimmed)%2 != 0 {
		trimmed = "0" + trimmed
	}
	b, err := hex.DecodeString(trimmed)
	if err != nil {
		return nil, fmt.Errorf("invalid hex string %q: %w", s, errdefs.ErrInvalidArgument)
	}
	return b, nil
}

// Encode renders bytes as a lowercase 0x-prefixed hex string.
func Encode(b []byte) string {
	return "0x" + hex.EncodeToString(b)
}
