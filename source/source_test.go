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

package source_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/bufbuild/texsyntax/source"
)

func TestLocation(t *testing.T) {
	t.Parallel()

	file := source.NewFile("test.tex", "\\section{Intro}\n\t$x$ 数学\n\nend")

	tests := []struct {
		offset int
		units  source.Unit
		want   source.Location
	}{
		{0, source.Bytes, source.Location{Offset: 0, Line: 1, Column: 1}},
		{9, source.Bytes, source.Location{Offset: 9, Line: 1, Column: 10}},
		{16, source.Bytes, source.Location{Offset: 16, Line: 2, Column: 1}},
		{17, source.TermWidth, source.Location{Offset: 17, Line: 2, Column: 5}},
		// After "\t$x$ 数": the ideograph is three bytes, one rune, one UTF-16
		// unit and two terminal columns.
		{24, source.Bytes, source.Location{Offset: 24, Line: 2, Column: 9}},
		{24, source.Runes, source.Location{Offset: 24, Line: 2, Column: 7}},
		{24, source.UTF16, source.Location{Offset: 24, Line: 2, Column: 7}},
		{24, source.TermWidth, source.Location{Offset: 24, Line: 2, Column: 11}},
		{28, source.Bytes, source.Location{Offset: 28, Line: 3, Column: 1}},
		{29, source.Bytes, source.Location{Offset: 29, Line: 4, Column: 1}},
		{1000, source.Bytes, source.Location{Offset: 32, Line: 4, Column: 4}},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, file.Location(tt.offset, tt.units), "%d in %v", tt.offset, tt.units)
	}

	assert.Equal(t, 4, file.Lines())
	assert.Equal(t, "\t$x$ 数学\n", file.Line(2))
	assert.Equal(t, "end", file.Line(4))
	assert.Equal(t, "", file.Line(5))
}

func TestSpan(t *testing.T) {
	t.Parallel()

	file := source.NewFile("a.tex", "$$x$$")
	span := file.Span(2, 3)
	assert.Equal(t, "x", span.Text())
	assert.Equal(t, 1, span.Len())
	assert.True(t, span.Contains(2))
	assert.False(t, span.Contains(3))
	assert.Equal(t, `"a.tex":1:3[2:3]`, span.String())

	var zero source.Span
	assert.True(t, zero.IsZero())
	assert.Equal(t, "", zero.Text())
	assert.False(t, zero.Contains(0))

	var nilFile *source.File
	assert.True(t, nilFile.Span(0, 1).IsZero())
	assert.Equal(t, source.Location{Line: 1, Column: 1}, nilFile.Location(5, source.Bytes))
}

func TestWidth(t *testing.T) {
	t.Parallel()

	w := &source.Width{Tabstop: 8}
	_, _ = w.WriteString("ab\tc")
	assert.Equal(t, 9, w.Column)

	w = new(source.Width)
	_, _ = w.WriteString("数学")
	assert.Equal(t, 4, w.Column)
}
