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

// Command enum generates the boilerplate of Go enums from YAML.
//
// To generate the enums described by foo.yaml into foo.go, use
//
//	//go:generate go run github.com/bufbuild/texsyntax/internal/enum foo.yaml
//
// foo.yaml holds a list of enums; see [enumDef] for the schema.
package main

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

func main() {
	var failed bool
	for _, config := range os.Args[1:] {
		if err := run(config, os.Getenv("GOPACKAGE")); err != nil {
			fmt.Fprintf(os.Stderr, "%s: %v\n", config, err)
			failed = true
		}
	}
	if failed {
		os.Exit(1)
	}
}

// run generates the file for one YAML config.
func run(config, pkg string) error {
	if filepath.Ext(config) != ".yaml" {
		return errors.New("config file must end in .yaml")
	}
	if pkg == "" {
		return errors.New("GOPACKAGE is not set; run this through go generate")
	}

	text, err := os.ReadFile(config)
	if err != nil {
		return err
	}
	out, err := generate(filepath.Base(config), pkg, text)
	if err != nil {
		return err
	}
	return os.WriteFile(strings.TrimSuffix(config, ".yaml")+".go", out, 0o644)
}
