// Copyright 2025 Tom Barlow
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package conf

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// YAMLProvider contributes values parsed from a YAML document. The document
// is read lazily on every Data call, so file contents are picked up fresh
// each time the stack is assembled.
type YAMLProvider struct {
	path    string
	raw     []byte
	profile Profile
}

// YAML creates a provider from an in-memory YAML document, contributing to
// the Default profile.
func YAML(doc []byte) *YAMLProvider {
	return &YAMLProvider{raw: doc, profile: Default}
}

// YAMLFile creates a provider that reads the YAML document at path.
// A missing or unreadable file is an error surfaced from Data.
func YAMLFile(path string) *YAMLProvider {
	return &YAMLProvider{path: path, profile: Default}
}

// InProfile returns a copy of the provider scoped to the given profile.
func (y *YAMLProvider) InProfile(profile Profile) *YAMLProvider {
	cp := *y
	cp.profile = profile.OrDefault()
	return &cp
}

// Metadata implements Provider.
func (y *YAMLProvider) Metadata() Metadata {
	return Metadata{Name: "yaml", Source: y.path}
}

// Data implements Provider.
func (y *YAMLProvider) Data() (Map, error) {
	doc := y.raw
	if y.path != "" {
		var err error
		doc, err = os.ReadFile(y.path)
		if err != nil {
			return nil, fmt.Errorf("reading %s: %w", y.path, err)
		}
	}

	dict := make(Dict)
	if err := yaml.Unmarshal(doc, &dict); err != nil {
		return nil, fmt.Errorf("parsing yaml: %w", err)
	}
	return Map{y.profile: dict}, nil
}
