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

package corpora

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDiff(t *testing.T) {
	t.Parallel()

	assert.Empty(t, diff("a\nb\n", "a\nb\n"))
	assert.Equal(t, `--- want
+++ got
@@ -1,2 +1,2 @@
 a
-b
+c
`, diff("a\nc\n", "a\nb\n"))
	assert.Equal(t, `--- want
+++ got
@@ -1,3 +1,3 @@
 a
-b
+c
 d
`, diff("a\nc\nd", "a\nb\nd"))
	assert.Equal(t, "--- want\n+++ got\ntrailing newline differs\n", diff("a\n", "a"))
}
