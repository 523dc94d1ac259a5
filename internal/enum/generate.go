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
	"bytes"
	_ "embed"
	"fmt"
	"go/format"
	"strings"
	"text/template"

	"gopkg.in/yaml.v3"
)

var (
	//go:embed enum.go.tmpl
	tmplText string

	//go:embed header.txt
	header string

	tmpl = template.Must(template.New("enum").Funcs(template.FuncMap{
		"docs": docs,
	}).Parse(tmplText))
)

// generate renders the Go file for a YAML config.
func generate(config, pkg string, text []byte) ([]byte, error) {
	var enums []enumDef
	if err := yaml.Unmarshal(text, &enums); err != nil {
		return nil, err
	}
	for i := range enums {
		if err := enums[i].resolve(); err != nil {
			return nil, err
		}
	}

	var buf bytes.Buffer
	err := tmpl.Execute(&buf, struct {
		Header, Config, Package string
		Enums                   []enumDef
	}{header, config, pkg, enums})
	if err != nil {
		return nil, err
	}

	out, err := format.Source(buf.Bytes())
	if err != nil {
		return nil, fmt.Errorf("generated invalid code: %w\n%s", err, buf.Bytes())
	}
	return out, nil
}

// docs renders text as a doc comment with the given indentation.
func docs(text, indent string) string {
	text = strings.TrimSpace(text)
	if text == "" {
		return ""
	}

	var out strings.Builder
	for line := range strings.SplitSeq(text, "\n") {
		out.WriteString(indent)
		out.WriteString(strings.TrimRight("// "+line, " "))
		out.WriteByte('\n')
	}
	return out.String()
}
