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

package source

import (
	"strings"

	"github.com/rivo/uniseg"
)

// TabstopWidth is the size tab stops are rendered as by default.
const TabstopWidth int = 4

// Width calculates the approximate width of text in terminal columns.
type Width struct {
	// The column at which the text is being rendered. This is necessary for
	// tabstop calculations.
	Column int

	// The width of a tabstop in columns. If zero, [TabstopWidth] is used.
	Tabstop int
}

// WriteString advances w.Column by the width of text.
//
// It never fails; the signature matches [io.StringWriter].
func (w *Width) WriteString(text string) (int, error) {
	tabstop := w.Tabstop
	if tabstop <= 0 {
		tabstop = TabstopWidth
	}

	for i, chunk := range strings.Split(text, "\t") {
		if i > 0 {
			w.Column += tabstop - (w.Column % tabstop)
		}
		w.Column += uniseg.StringWidth(chunk)
	}
	return len(text), nil
}
