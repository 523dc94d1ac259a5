// Copyright 2020-2025 Buf Technologies, Inc.
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//      http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package tree

// RawKind is the language-agnostic kind tag stored in a [Tree].
type RawKind uint16

// Language binds a kind type K to the raw kinds stored in a [Tree].
//
// KindFromRaw must accept every value KindToRaw produces, and
// KindFromRaw(KindToRaw(k)) must equal k.
type Language[K comparable] interface {
	// KindFromRaw interprets a raw kind. It returns an error if raw does not
	// correspond to any K.
	KindFromRaw(raw RawKind) (K, error)

	// KindToRaw converts a kind into its raw representation.
	KindToRaw(kind K) RawKind
}
