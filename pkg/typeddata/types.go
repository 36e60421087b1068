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

	"github.com/sadeghzare2580/wallet-core/pkg/hash"
)

// Value is one field's runtime value: a primitive scalar or a nested struct
// instance. Exactly two implementations exist, *Primitive and *Struct.
type Value interface {
	// TypeName returns the canonical type name, e.g. "string" or "Person".
	TypeName() string

	// contribution returns the value's 32-byte hash contribution.
	contribution() (hash.Hash, error)
}

// Primitive is a leaf value of a registered primitive type. As part of a
// type definition it carries no value; binding creates set copies.
type Primitive struct {
	kind string
	enc  []byte
	set  bool
}

// NewPrimitive returns an unset primitive node of the given type name.
func NewPrimitive(kind string) *Primitive {
	return &Primitive{kind: kind}
}

// TypeName implements Value.
func (p *Primitive) TypeName() string { return p.kind }

// SetJSON decodes the raw JSON scalar with the type's registered codec and
// stores the encoded value.
func (p *Primitive) SetJSON(raw json.RawMessage) error {
	c, ok := lookupCodec(p.kind)
	if !ok {
		return fmt.Errorf("%q: %w", p.kind, ErrUnsupportedPrimitive)
	}
	enc, err := c.Decode(raw)
	if err != nil {
		return fmt.Errorf("decode %s: %w", p.kind, err)
	}
	p.enc = enc
	p.set = true
	return nil
}

func (p *Primitive) contribution() (hash.Hash, error) {
	if !p.set {
		return hash.Hash{}, fmt.Errorf("%s: %w", p.kind, ErrValueNotSet)
	}
	c, ok := lookupCodec(p.kind)
	if !ok {
		return hash.Hash{}, fmt.Errorf("%q: %w", p.kind, ErrUnsupportedPrimitive)
	}
	return c.Hash(p.enc), nil
}

// Field pairs a field name with its value node. A field exclusively owns its
// node; nodes are never shared between fields of an instance.
type Field struct {
	Name  string
	Value Value
}

// Signature renders the field as "<type> <name>".
func (f *Field) Signature() string {
	return f.Value.TypeName() + " " + f.Name
}

// FieldList is the ordered field set of one struct type. Order is fixed at
// construction: it defines both the tuple signature and the hash layout.
type FieldList []*Field

// Struct is a named, ordered list of typed fields. The same shape serves as
// a type definition (unbound leaves) and as a bound value instance.
type Struct struct {
	name   string
	fields FieldList
}

// NewStruct builds a struct type over the given fields. The field order is
// semantically meaningful and is never reordered.
func NewStruct(name string, fields FieldList) *Struct {
	return &Struct{name: name, fields: fields}
}

// Name returns the struct type name.
func (s *Struct) Name() string { return s.name }

// TypeName implements Value.
func (s *Struct) TypeName() string { return s.name }

// Fields returns the struct's ordered field list.
func (s *Struct) Fields() FieldList { return s.fields }

// Field returns the first field with the given name, or nil.
func (s *Struct) Field(name string) *Field {
	for _, f := range s.fields {
		if f.Name == name {
			return f
		}
	}
	return nil
}
