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

// Package ast provides typed views over a [syntax.Tree].
//
// A view is a thin wrapper around a [syntax.Node] of a fixed set of kinds,
// obtained with [Cast] or [Classify]. Views hold no state of their own and are
// as cheap to copy as the node they wrap; building any number of them over a
// shared tree from many goroutines is safe.
//
// Accessors never fail. When a subtree does not have the expected shape,
// such as an environment with no \end, they return zero values: the nil
// node, the nil token, a zero view (check with IsZero), or an empty iterator.
package ast
