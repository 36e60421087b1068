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
	"slices"

	"github.com/containerd/errdefs"
	"github.com/containerd/log"
)

// Catalog is the ordered collection of struct types compiled from one
// schema document. It resolves cross references during compilation and
// binding and is scoped to one top-level call chain; it is never retained
// as process state.
type Catalog struct {
	types []*Struct
}

// Lookup returns the first declared struct type with the given name.
func (c *Catalog) Lookup(name string) (*Struct, error) {
	for _, s := range c.types {
		if s.name == name {
			return s, nil
		}
	}
	return nil, fmt.Errorf("%q: %w", name, ErrUnknownStruct)
}

// Types returns the compiled struct types in declaration order.
func (c *Catalog) Types() []*Struct {
	return slices.Clone(c.types)
}

type fieldDescriptor struct {
	Name string `json:"name"`
	Type string `json:"type"`
}

// CompileTypes parses a schema document: a JSON array of single-entry
// objects, each mapping a struct name to its ordered field descriptors.
// A field may reference any struct declared earlier in the array; forward
// references and cycles (including self-reference) do not resolve, so
// every compiled catalog is a DAG and hashing always terminates.
func CompileTypes(typesJSON string) (*Catalog, error) {
	var entries []json.RawMessage
	if err := json.Unmarshal([]byte(typesJSON), &entries); err != nil {
		return nil, fmt.Errorf("parse types json: %w: %w", err, errdefs.ErrInvalidArgument)
	}
	if entries == nil {
		// "null" unmarshals into a nil slice without error
		return nil, fmt.Errorf("expecting types array: %w", errdefs.ErrInvalidArgument)
	}
	catalog := &Catalog{}
	for i, entry := range entries {
		s, err := compileType(entry, catalog)
		if err != nil {
			return nil, fmt.Errorf("types[%d]: %w", i, err)
		}
		catalog.types = append(catalog.types, s)
	}
	log.L.WithField("types", len(catalog.types)).Debug("compiled type schema")
	return catalog, nil
}

// compileType builds one struct type from a single-entry schema object,
// resolving composite field types against the catalog compiled so far.
func compileType(entry json.RawMessage, catalog *Catalog) (*Struct, error) {
	var def map[string]json.RawMessage
	if err := json.Unmarshal(entry, &def); err != nil {
		return nil, fmt.Errorf("parse type entry: %w: %w", err, errdefs.ErrInvalidArgument)
	}
	if len(def) != 1 {
		return nil, fmt.Errorf("expecting one struct name per entry, got %d: %w", len(def), errdefs.ErrInvalidArgument)
	}
	for name, rawFields := range def {
		var descriptors []fieldDescriptor
		if err := json.Unmarshal(rawFields, &descriptors); err != nil {
			return nil, fmt.Errorf("%s: expecting field descriptor array: %w: %w", name, err, errdefs.ErrInvalidArgument)
		}
		if len(descriptors) == 0 {
			return nil, fmt.Errorf("%s: %w", name, ErrEmptySchema)
		}
		fields := make(FieldList, 0, len(descriptors))
		for _, d := range descriptors {
			if d.Name == "" || d.Type == "" {
				return nil, fmt.Errorf("%s: field descriptor needs non-empty name and type: %w", name, errdefs.ErrInvalidArgument)
			}
			var value Value
			if IsPrimitiveType(d.Type) {
				value = NewPrimitive(d.Type)
			} else if sub, err := catalog.Lookup(d.Type); err == nil {
				value = sub
			} else {
				return nil, fmt.Errorf("%s.%s: %q: %w", name, d.Name, d.Type, ErrUnresolvedType)
			}
			fields = append(fields, &Field{Name: d.Name, Value: value})
		}
		return NewStruct(name, fields), nil
	}
	// unreachable, the map has exactly one entry
	return nil, fmt.Errorf("expecting struct entry: %w", errdefs.ErrInvalidArgument)
}
