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

// Package typeddata hashes schema-described structured values into
// content-addressed digests following the EIP-712 struct hashing scheme.
//
// A schema document declares named struct types with ordered, typed fields.
// CompileTypes turns a schema into a Catalog of type definitions, Bind
// populates a definition from a JSON value document walking fields in
// schema-declared order, and StructHash folds the type identity and every
// field's value contribution into one reproducible 32-byte digest:
//
//	typeHash   = keccak256(canonical type string)
//	structHash = keccak256(typeHash ++ contribution(field 1) ++ ...)
//
// A nested struct field contributes the nested instance's own struct hash,
// never its raw field bytes, so two different type shapes cannot collide on
// coincidentally equal values.
//
// HashTypedValue bundles compile, bind and hash into a single call for
// signing layers that hold schema and value as JSON text.
package typeddata
