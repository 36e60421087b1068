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

	"github.com/containerd/errdefs"
	"github.com/containerd/log"

	"github.com/sadeghzare2580/wallet-core/pkg/hash"
)

// Bind populates a fresh instance of the named struct type from a JSON
// value object. Fields are walked in schema-declared order; key order in
// the value document carries no meaning. Composite fields recurse with the
// corresponding subtree against the same catalog.
func (c *Catalog) Bind(structType string, valueJSON []byte) (*Struct, error) {
	target, err := c.Lookup(structType)
	if err != nil {
		return nil, err
	}
	var values map[string]json.RawMessage
	if err := json.Unmarshal(valueJSON, &values); err != nil {
		return nil, fmt.Errorf("%s: parse value json: %w: %w", structType, err, errdefs.ErrInvalidArgument)
	}
	if values == nil {
		return nil, fmt.Errorf("%s: expecting value object: %w", structType, errdefs.ErrInvalidArgument)
	}
	fields := make(FieldList, 0, len(target.fields))
	for _, f := range target.fields {
		raw, ok := values[f.Name]
		if !ok {
			return nil, fmt.Errorf("%s.%s: %w", structType, f.Name, ErrMissingValue)
		}
		var bound Value
		switch v := f.Value.(type) {
		case *Primitive:
			p := NewPrimitive(v.kind)
			if err := p.SetJSON(raw); err != nil {
				return nil, fmt.Errorf("%s.%s: %w", structType, f.Name, err)
			}
			bound = p
		case *Struct:
			sub, err := c.Bind(v.name, raw)
			if err != nil {
				return nil, fmt.Errorf("%s.%s: %w", structType, f.Name, err)
			}
			bound = sub
		}
		fields = append(fields, &Field{Name: f.Name, Value: bound})
	}
	return NewStruct(target.name, fields), nil
}

// HashTypedValue compiles the schema, binds the value document against the
// named struct type and returns the resulting struct hash, all in one call.
// Identical (schema, value) inputs always produce identical hashes.
func HashTypedValue(structType, valueJSON, typesJSON string) (hash.Hash, error) {
	catalog, err := CompileTypes(typesJSON)
	if err != nil {
		return hash.Hash{}, err
	}
	instance, err := catalog.Bind(structType, []byte(valueJSON))
	if err != nil {
		return hash.Hash{}, err
	}
	h, err := instance.StructHash()
	if err != nil {
		return hash.Hash{}, err
	}
	log.L.WithField("type", structType).WithField("digest", h.Digest()).Debug("hashed typed value")
	return h, nil
}
