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

// Package source provides source files, byte spans within them, and the
// conversion of byte offsets into user-facing line/column locations.
package source

import (
	"slices"
	"strings"
	"sync"
	"unicode/utf16"
)

// File is the text a syntax tree was built from.
//
// Files are immutable once created. A nil *File behaves like an empty file
// with the path name "".
type File struct {
	path, text string

	once sync.Once
	// Offsets of the first byte of every line. lineIndex[0] is always 0; the
	// remaining entries are the offsets immediately after each \n.
	lineIndex []int
}

// NewFile constructs a new source file.
func NewFile(path, text string) *File {
	return &File{path: path, text: text}
}

// Path returns this file's path.
//
// It need not be a real filesystem path.
func (f *File) Path() string {
	if f == nil {
		return ""
	}
	return f.path
}

// Text returns this file's textual contents.
func (f *File) Text() string {
	if f == nil {
		return ""
	}
	return f.text
}

// Span is a shorthand for creating a new Span.
func (f *File) Span(start, end int) Span {
	if f == nil {
		return Span{}
	}
	return Span{f, start, end}
}

// Lines returns the number of lines in this file. A file with no newlines
// has one line.
func (f *File) Lines() int {
	return len(f.lines())
}

// Line returns the given 1-indexed line, including its trailing newline.
func (f *File) Line(line int) string {
	lines := f.lines()
	if line < 1 || line > len(lines) {
		return ""
	}
	if line == len(lines) {
		return f.text[lines[line-1]:]
	}
	return f.text[lines[line-1]:lines[line]]
}

// Location converts a byte offset into a [Location], measuring the column in
// the given units.
//
// Offsets past the end of the file are clamped to it. This operation is
// O(log n) in the number of lines.
func (f *File) Location(offset int, units Unit) Location {
	if f == nil || offset <= 0 {
		return Location{Offset: 0, Line: 1, Column: 1}
	}
	offset = min(offset, len(f.text))

	lines := f.lines()
	line, exact := slices.BinarySearch(lines, offset)
	if !exact {
		line--
	}

	chunk := f.text[lines[line]:offset]
	var column int
	switch units {
	case Bytes:
		column = len(chunk)
	case Runes:
		for range chunk {
			column++
		}
	case UTF16:
		for _, r := range chunk {
			column += utf16.RuneLen(r)
		}
	case TermWidth:
		w := new(Width)
		_, _ = w.WriteString(chunk)
		column = w.Column
	}

	return Location{
		Offset: offset,
		Line:   line + 1,
		Column: column + 1,
	}
}

func (f *File) lines() []int {
	if f == nil {
		return []int{0}
	}

	f.once.Do(func() {
		f.lineIndex = append(f.lineIndex, 0)
		text := f.text
		next := 0
		for {
			// Index of the byte immediately after the newline.
			nl := strings.IndexByte(text, '\n') + 1
			if nl == 0 {
				break
			}
			next += nl
			text = text[nl:]
			f.lineIndex = append(f.lineIndex, next)
		}
	})
	return f.lineIndex
}
