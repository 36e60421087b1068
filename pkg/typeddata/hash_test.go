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

	"github.com/containerd/errdefs"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sadeghzare2580/wallet-core/pkg/hash"
)

const mailValue = `{"from":"alice","to":"bob"}`

func TestTypeHashGolden(t *testing.T) {
	mail := compile(t, mailSchema, "Mail")
	assert.Equal(t, "b86dede043f6263e79997150ca9f030d808181e3b93260dbfcf363e200710ad6", mail.TypeHash().String())
}

func TestTypeHashNestedGolden(t *testing.T) {
	mail := compile(t, nestedSchema, "Mail")
	person := compile(t, nestedSchema, "Person")
	// well-known EIP-712 example value
	assert.Equal(t, "b9d8c78acf9b987311de6c7b45bb6a9c8e1bf361fa7fd3467a2163f994c79500", person.TypeHash().String())
	assert.Equal(t, "dc49a516f1fafabab1fa4dec4ba6cc72b4969c273a9c4be37ee01afd447c997e", mail.TypeHash().String())
}

func TestTypeHashFirstSeenGolden(t *testing.T) {
	a := compile(t, diamondSchema, "A")
	assert.Equal(t, "410cd4d642e83f0860bb7b2e8cf15d6182ad3aa0e4a476076cd0711b674f6952", a.TypeHash().String())
}

func TestStructHashGolden(t *testing.T) {
	catalog, err := CompileTypes(mailSchema)
	require.NoError(t, err)
	mail, err := catalog.Bind("Mail", []byte(mailValue))
	require.NoError(t, err)

	h, err := mail.StructHash()
	require.NoError(t, err)
	assert.Equal(t, "5e78c6399d00ca0b30237635062c16a363ae44f3c260bd874fb812db90940dde", h.String())
}

func TestStructHashValueSensitivity(t *testing.T) {
	catalog, err := CompileTypes(mailSchema)
	require.NoError(t, err)
	base, err := catalog.Bind("Mail", []byte(mailValue))
	require.NoError(t, err)
	baseHash, err := base.StructHash()
	require.NoError(t, err)

	swapped, err := catalog.Bind("Mail", []byte(`{"from":"bob","to":"alice"}`))
	require.NoError(t, err)
	swappedHash, err := swapped.StructHash()
	require.NoError(t, err)

	assert.NotEqual(t, baseHash, swappedHash)
	assert.Equal(t, "1e5a9034c68a15514c50730c1d573e22f0274f63fe00f3e78e91ec2e8a1626f5", swappedHash.String())
}

func TestStructHashSchemaSensitivity(t *testing.T) {
	base, err := HashTypedValue("Mail", mailValue, mailSchema)
	require.NoError(t, err)

	// renaming a field changes the hash even with identical values
	renamedField, err := HashTypedValue("Mail",
		`{"sender":"alice","to":"bob"}`,
		`[{"Mail":[{"name":"sender","type":"string"},{"name":"to","type":"string"}]}]`)
	require.NoError(t, err)
	assert.NotEqual(t, base, renamedField)

	// renaming the struct type changes the hash too
	renamedType, err := HashTypedValue("Letter",
		mailValue,
		`[{"Letter":[{"name":"from","type":"string"},{"name":"to","type":"string"}]}]`)
	require.NoError(t, err)
	assert.NotEqual(t, base, renamedType)
}

func TestTypeHashIndependentOfValues(t *testing.T) {
	catalog, err := CompileTypes(mailSchema)
	require.NoError(t, err)

	one, err := catalog.Bind("Mail", []byte(mailValue))
	require.NoError(t, err)
	other, err := catalog.Bind("Mail", []byte(`{"from":"carol","to":"dave"}`))
	require.NoError(t, err)

	definition, err := catalog.Lookup("Mail")
	require.NoError(t, err)

	assert.Equal(t, definition.TypeHash(), one.TypeHash())
	assert.Equal(t, one.TypeHash(), other.TypeHash())
}

func TestEmptyStructSentinel(t *testing.T) {
	// the compiler rejects empty definitions, but hashing a fieldless
	// struct is defined: the all-zero sentinel, not an error
	empty := NewStruct("Empty", nil)
	h, err := empty.StructHash()
	require.NoError(t, err)
	assert.Equal(t, hash.Hash{}, h)

	d, err := empty.Digest()
	require.NoError(t, err)
	assert.Equal(t, hash.Hash{}.Digest(), d)
}

func TestNestedStructHash(t *testing.T) {
	catalog, err := CompileTypes(nestedSchema)
	require.NoError(t, err)

	value := `{
		"from": {"name": "Cow", "wallet": "0xCD2a3d9F938E13CD947Ec05AbC7FE734Df8DD826"},
		"to":   {"name": "Bob", "wallet": "0xbBbBBBBbbBBBbbbBBbBbbbbBBbBBbBbBbBbBbBbB"}
	}`
	mail, err := catalog.Bind("Mail", []byte(value))
	require.NoError(t, err)

	from, ok := mail.Field("from").Value.(*Struct)
	require.True(t, ok)
	to, ok := mail.Field("to").Value.(*Struct)
	require.True(t, ok)

	fromHash, err := from.StructHash()
	require.NoError(t, err)
	toHash, err := to.StructHash()
	require.NoError(t, err)
	assert.Equal(t, "fc71e5fa27ff56c350aa531bc129ebdf613b772b6604664f5d8dbe21b85eb0c8", fromHash.String())
	assert.Equal(t, "cd54f074a4af31b4411ff6a60c9719dbd559c221c8ac3492d9d872b041d703d1", toHash.String())

	// the outer hash folds each nested instance's own struct hash
	outer, err := mail.StructHash()
	require.NoError(t, err)
	expected := hash.Keccak256(mail.TypeHash().Bytes(), fromHash.Bytes(), toHash.Bytes())
	assert.Equal(t, expected, outer)
	assert.Equal(t, "1f340f32e7701a75ff268d200251340b4f250110c2b156cf2de4ab7060aa703e", outer.String())
}

func TestHashUnboundDefinitionFails(t *testing.T) {
	mail := compile(t, mailSchema, "Mail")
	_, err := mail.StructHash()
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrValueNotSet)
	assert.True(t, errdefs.IsFailedPrecondition(err))
}
