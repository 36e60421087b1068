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
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const mailSchema = `[{"Mail":[{"name":"from","type":"string"},{"name":"to","type":"string"}]}]`

const nestedSchema = `[
	{"Person":[{"name":"name","type":"string"},{"name":"wallet","type":"address"}]},
	{"Mail":[{"name":"from","type":"Person"},{"name":"to","type":"Person"}]}
]`

// diamondSchema: A references B and C, B references C. C is reachable twice
// but must be listed once, after B, in first-seen order.
const diamondSchema = `[
	{"C":[{"name":"x","type":"string"}]},
	{"B":[{"name":"c","type":"C"}]},
	{"A":[{"name":"b","type":"B"},{"name":"c","type":"C"}]}
]`

func compile(t *testing.T, schema, name string) *Struct {
	t.Helper()
	catalog, err := CompileTypes(schema)
	require.NoError(t, err)
	s, err := catalog.Lookup(name)
	require.NoError(t, err)
	return s
}

func TestSignature(t *testing.T) {
	mail := compile(t, mailSchema, "Mail")
	assert.Equal(t, "Mail(string from,string to)", mail.Signature())
	assert.Equal(t, "(string from,string to)", mail.Fields().TupleSignature())
	assert.Equal(t, "string from", mail.Field("from").Signature())
}

func TestSignatureSingleField(t *testing.T) {
	c := compile(t, diamondSchema, "C")
	assert.Equal(t, "C(string x)", c.Signature())
}

func TestTypeStringFlat(t *testing.T) {
	mail := compile(t, mailSchema, "Mail")
	// primitive fields contribute nothing beyond the struct's own signature
	assert.Equal(t, "Mail(string from,string to)", mail.TypeString())
}

func TestTypeStringNested(t *testing.T) {
	mail := compile(t, nestedSchema, "Mail")
	assert.Equal(t, "Mail(Person from,Person to)Person(string name,address wallet)", mail.TypeString())
}

func TestTypeStringFirstSeenOrder(t *testing.T) {
	a := compile(t, diamondSchema, "A")
	// A first, then B (discovered through A's first field), then C exactly
	// once despite being reachable both through B and directly.
	assert.Equal(t, "A(B b,C c)B(C c)C(string x)", a.TypeString())

	b := compile(t, diamondSchema, "B")
	assert.Equal(t, "B(C c)C(string x)", b.TypeString())
}
