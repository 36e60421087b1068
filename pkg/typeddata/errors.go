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

	"github.com/containerd/errdefs"
)

// Failure conditions surfaced by schema compilation, value binding and
// hashing. Each wraps an errdefs classification, so callers may branch
// either with errors.Is against these sentinels or with the errdefs
// helpers (IsNotFound, IsInvalidArgument, ...). Any failure aborts the
// whole operation; no partial catalog or instance is ever returned.
var (
	// ErrUnresolvedType indicates a field's declared type matched neither a
	// recognized primitive nor a previously declared struct type.
	ErrUnresolvedType = fmt.Errorf("unresolved type: %w", errdefs.ErrNotFound)

	// ErrUnknownStruct indicates the requested struct type is absent from
	// the compiled catalog.
	ErrUnknownStruct = fmt.Errorf("unknown struct type: %w", errdefs.ErrNotFound)

	// ErrMissingValue indicates the value document has no entry for a
	// declared field.
	ErrMissingValue = fmt.Errorf("missing value: %w", errdefs.ErrInvalidArgument)

	// ErrUnsupportedPrimitive indicates a primitive type is recognized by
	// the registry but has no value codec wired up.
	ErrUnsupportedPrimitive = fmt.Errorf("unsupported primitive type: %w", errdefs.ErrNotImplemented)

	// ErrEmptySchema indicates a struct definition with no field descriptors.
	ErrEmptySchema = fmt.Errorf("empty schema: %w", errdefs.ErrInvalidArgument)

	// ErrValueNotSet indicates hashing was requested on an unbound leaf,
	// i.e. on a type definition rather than a bound instance.
	ErrValueNotSet = fmt.Errorf("value not set: %w", errdefs.ErrFailedPrecondition)
)
