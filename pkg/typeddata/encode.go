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
	"slices"
	"strings"
)

// TupleSignature renders the comma-separated field tuple,
// e.g. "(string from,string to)".
func (l FieldList) TupleSignature() string {
	var b strings.Builder
	b.WriteByte('(')
	for i, f := range l {
		if i > 0 {
			b.WriteByte(',')
		}
		b.WriteString(f.Signature())
	}
	b.WriteByte(')')
	return b.String()
}

// Signature renders the struct's own type signature with no dependency
// expansion, e.g. "Mail(string from,string to)".
func (s *Struct) Signature() string {
	return s.name + s.fields.TupleSignature()
}

// TypeString returns the canonical full type string: the struct's own
// signature followed by the signature of every transitively referenced
// struct type, each exactly once, in the order first discovered by a
// depth-first walk of the field declarations. The ordering is first-seen,
// not alphabetical, and feeds directly into TypeHash.
func (s *Struct) TypeString() string {
	var b strings.Builder
	var seen []string
	s.writeTypes(&b, &seen)
	return b.String()
}

func (s *Struct) writeTypes(b *strings.Builder, seen *[]string) {
	if slices.Contains(*seen, s.name) {
		return
	}
	b.WriteString(s.Signature())
	*seen = append(*seen, s.name)
	for _, f := range s.fields {
		if sub, ok := f.Value.(*Struct); ok {
			sub.writeTypes(b, seen)
		}
	}
}
