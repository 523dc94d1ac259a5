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

import (
	"fmt"
	"math"

	"google.golang.org/protobuf/encoding/protowire"
)

// Field numbers of the tree encoding. A tree is encoded as a flat message
// whose repeated event fields appear in the order a [Builder] would receive
// them.
const (
	fieldPath   protowire.Number = 1 // bytes
	fieldText   protowire.Number = 2 // bytes
	fieldStart  protowire.Number = 3 // varint raw kind
	fieldToken  protowire.Number = 4 // message {1: raw kind, 2: byte length}
	fieldFinish protowire.Number = 5 // varint, always 0

	fieldTokenKind protowire.Number = 1
	fieldTokenLen  protowire.Number = 2
)

// Marshal encodes a tree in the protobuf wire format.
//
// The encoding contains the tree's path and text followed by the sequence of
// builder events that reproduce it. Token texts are stored as lengths into
// the text.
func Marshal[K comparable](t *Tree[K]) []byte {
	var b []byte
	b = protowire.AppendTag(b, fieldPath, protowire.BytesType)
	b = protowire.AppendString(b, t.File().Path())
	b = protowire.AppendTag(b, fieldText, protowire.BytesType)
	b = protowire.AppendString(b, t.Text())

	var encode func(Node[K])
	encode = func(n Node[K]) {
		b = protowire.AppendTag(b, fieldStart, protowire.VarintType)
		b = protowire.AppendVarint(b, uint64(n.RawKind()))

		for child := range n.ChildrenWithTokens() {
			if node := child.AsNode(); !node.IsZero() {
				encode(node)
				continue
			}

			tok := child.AsToken()
			var msg []byte
			msg = protowire.AppendTag(msg, fieldTokenKind, protowire.VarintType)
			msg = protowire.AppendVarint(msg, uint64(tok.RawKind()))
			msg = protowire.AppendTag(msg, fieldTokenLen, protowire.VarintType)
			msg = protowire.AppendVarint(msg, uint64(tok.Span().Len()))

			b = protowire.AppendTag(b, fieldToken, protowire.BytesType)
			b = protowire.AppendBytes(b, msg)
		}

		b = protowire.AppendTag(b, fieldFinish, protowire.VarintType)
		b = protowire.AppendVarint(b, 0)
	}
	encode(t.Root())

	return b
}

// event is a decoded builder event.
type event struct {
	field protowire.Number
	kind  uint64
	len   uint64
}

// Unmarshal decodes a tree produced by [Marshal].
//
// Every raw kind is checked with lang's KindFromRaw; if it fails, the error
// is returned wrapped. Malformed input fails with [ErrCorrupt].
func Unmarshal[K comparable](lang Language[K], data []byte) (*Tree[K], error) {
	var path, text string
	var events []event

	for len(data) > 0 {
		num, typ, n := protowire.ConsumeTag(data)
		if n < 0 {
			return nil, fmt.Errorf("%w: %w", ErrCorrupt, protowire.ParseError(n))
		}
		data = data[n:]

		switch {
		case num == fieldPath && typ == protowire.BytesType:
			path, n = protowire.ConsumeString(data)
		case num == fieldText && typ == protowire.BytesType:
			text, n = protowire.ConsumeString(data)
		case (num == fieldStart || num == fieldFinish) && typ == protowire.VarintType:
			var v uint64
			v, n = protowire.ConsumeVarint(data)
			events = append(events, event{field: num, kind: v})
		case num == fieldToken && typ == protowire.BytesType:
			var msg []byte
			msg, n = protowire.ConsumeBytes(data)
			if n >= 0 {
				ev, err := decodeToken(msg)
				if err != nil {
					return nil, err
				}
				events = append(events, ev)
			}
		default:
			return nil, fmt.Errorf("%w: unexpected field %d of type %d", ErrCorrupt, num, typ)
		}
		if n < 0 {
			return nil, fmt.Errorf("%w: field %d: %w", ErrCorrupt, num, protowire.ParseError(n))
		}
		data = data[n:]
	}

	b := NewBuilder(lang, path)
	var offset uint64
	var depth int
	for i, ev := range events {
		switch ev.field {
		case fieldStart:
			kind, err := decodeKind(lang, ev.kind)
			if err != nil {
				return nil, fmt.Errorf("tree: event %d: %w", i, err)
			}
			b.StartNode(kind)
			depth++

		case fieldToken:
			kind, err := decodeKind(lang, ev.kind)
			if err != nil {
				return nil, fmt.Errorf("tree: event %d: %w", i, err)
			}
			if ev.len > uint64(len(text))-offset {
				return nil, fmt.Errorf("%w: event %d: token overruns text", ErrCorrupt, i)
			}
			b.Token(kind, text[offset:offset+ev.len])
			offset += ev.len

		case fieldFinish:
			if depth == 0 {
				return nil, fmt.Errorf("%w: event %d: finish without start", ErrCorrupt, i)
			}
			b.FinishNode()
			depth--
		}
	}

	if offset != uint64(len(text)) {
		return nil, fmt.Errorf("%w: tokens cover %d of %d bytes", ErrCorrupt, offset, len(text))
	}

	t, err := b.Finish()
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrCorrupt, err)
	}
	return t, nil
}

func decodeToken(msg []byte) (event, error) {
	ev := event{field: fieldToken}
	for len(msg) > 0 {
		num, typ, n := protowire.ConsumeTag(msg)
		if n < 0 {
			return ev, fmt.Errorf("%w: token: %w", ErrCorrupt, protowire.ParseError(n))
		}
		msg = msg[n:]
		if typ != protowire.VarintType || (num != fieldTokenKind && num != fieldTokenLen) {
			return ev, fmt.Errorf("%w: token: unexpected field %d of type %d", ErrCorrupt, num, typ)
		}

		v, n := protowire.ConsumeVarint(msg)
		if n < 0 {
			return ev, fmt.Errorf("%w: token: %w", ErrCorrupt, protowire.ParseError(n))
		}
		msg = msg[n:]

		if num == fieldTokenKind {
			ev.kind = v
		} else {
			ev.len = v
		}
	}
	return ev, nil
}

func decodeKind[K comparable](lang Language[K], raw uint64) (K, error) {
	if raw > math.MaxUint16 {
		var zero K
		return zero, fmt.Errorf("%w: raw kind %d does not fit in 16 bits", ErrCorrupt, raw)
	}
	return lang.KindFromRaw(RawKind(raw))
}
