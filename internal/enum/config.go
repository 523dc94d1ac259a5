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

package main

import (
	"cmp"
	"fmt"
)

// enumDef describes one enum type.
type enumDef struct {
	Name    string      `yaml:"name"`  // The name of the new type.
	Type    string      `yaml:"type"`  // The underlying integer type.
	Docs    string      `yaml:"docs"`  // Doc comment for the type.
	Total   string      `yaml:"total"` // If set, the name of a constant holding the number of values.
	Methods []methodDef `yaml:"methods"`
	Values  []valueDef  `yaml:"values"`
}

// valueDef describes one constant of an enum. Values are numbered from zero
// in order.
type valueDef struct {
	Name   string `yaml:"name"`
	String string `yaml:"string"` // Defaults to Name.
	Docs   string `yaml:"docs"`
	Group  bool   `yaml:"group"` // Starts a new group, separated by a blank line.

	Index int `yaml:"-"`
}

// methodDef describes one generated function or method.
type methodDef struct {
	// One of:
	//
	//   - string: a String method.
	//   - go-string: a GoString method, qualified by package name.
	//   - from-string: a function looking up a value by its string.
	//   - all: a function returning an iterator over every value.
	Kind string `yaml:"kind"`
	Name string `yaml:"name"` // Required for from-string and all.
	Docs string `yaml:"docs"`
}

// resolve validates e and fills in defaults.
func (e *enumDef) resolve() error {
	if e.Name == "" || e.Type == "" {
		return fmt.Errorf("enum %q: name and type are required", e.Name)
	}
	if len(e.Values) == 0 {
		return fmt.Errorf("enum %s: no values", e.Name)
	}

	seen := make(map[string]bool)
	for i := range e.Values {
		v := &e.Values[i]
		v.Index = i
		if v.String == "" {
			v.String = v.Name
		}
		if seen[v.String] {
			return fmt.Errorf("enum %s: duplicate string %q", e.Name, v.String)
		}
		seen[v.String] = true
	}

	for i := range e.Methods {
		m := &e.Methods[i]
		switch m.Kind {
		case "string":
			m.Name = cmp.Or(m.Name, "String")
			m.Docs = cmp.Or(m.Docs, "String implements [fmt.Stringer].")
		case "go-string":
			m.Name = cmp.Or(m.Name, "GoString")
			m.Docs = cmp.Or(m.Docs, "GoString implements [fmt.GoStringer].")
		case "from-string", "all":
			if m.Name == "" {
				return fmt.Errorf("enum %s: method of kind %q needs a name", e.Name, m.Kind)
			}
		default:
			return fmt.Errorf("enum %s: unknown method kind %q", e.Name, m.Kind)
		}
	}
	return nil
}
