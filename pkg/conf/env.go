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
	"os"
	"strings"

	"github.com/bmatcuk/doublestar/v4"
	"gopkg.in/yaml.v3"
)

// EnvProvider contributes values from process environment variables.
//
// Variables matching the prefix are stripped of it, lowercased, and split on
// "__" into nested keys:
//
//	MYAPP_SERVICE=billing        -> service: billing
//	MYAPP_AUTH__OPTIONAL=true    -> auth: {optional: true}
//
// Values are typed like YAML scalars, so "true", "42" and "1.5" become
// bool, int and float rather than strings.
type EnvProvider struct {
	prefix    string
	allowlist []string
	profile   Profile
}

// Env creates a provider scanning variables with the given prefix,
// contributing to the Default profile.
func Env(prefix string) *EnvProvider {
	return &EnvProvider{prefix: prefix, profile: Default}
}

// Allow restricts the provider to variables whose full name matches at least
// one of the given glob patterns (e.g. "MYAPP_AUTH__*"). An empty allowlist
// admits every variable with the prefix.
func (e *EnvProvider) Allow(patterns ...string) *EnvProvider {
	cp := *e
	cp.allowlist = append(append([]string(nil), e.allowlist...), patterns...)
	return &cp
}

// InProfile returns a copy of the provider scoped to the given profile.
func (e *EnvProvider) InProfile(profile Profile) *EnvProvider {
	cp := *e
	cp.profile = profile.OrDefault()
	return &cp
}

// Metadata implements Provider.
func (e *EnvProvider) Metadata() Metadata {
	return Metadata{Name: "env", Source: e.prefix + "*"}
}

// Data implements Provider.
func (e *EnvProvider) Data() (Map, error) {
	dict := make(Dict)
	for _, entry := range os.Environ() {
		name, raw, ok := strings.Cut(entry, "=")
		if !ok || !strings.HasPrefix(name, e.prefix) {
			continue
		}
		if !e.allowed(name) {
			continue
		}

		key := strings.ToLower(strings.TrimPrefix(name, e.prefix))
		if key == "" {
			continue
		}
		insertNested(dict, strings.Split(key, "__"), scalarValue(raw))
	}
	return Map{e.profile: dict}, nil
}

func (e *EnvProvider) allowed(name string) bool {
	if len(e.allowlist) == 0 {
		return true
	}
	for _, pattern := range e.allowlist {
		if ok, err := doublestar.Match(pattern, name); err == nil && ok {
			return true
		}
	}
	return false
}

// insertNested walks the key path, creating intermediate maps as needed.
func insertNested(dict Dict, path []string, value any) {
	for len(path) > 1 {
		next, ok := dict[path[0]].(map[string]any)
		if !ok {
			next = make(map[string]any)
			dict[path[0]] = next
		}
		dict = next
		path = path[1:]
	}
	dict[path[0]] = value
}

// scalarValue types a raw environment value like a YAML scalar.
// Anything that fails to parse stays a string.
func scalarValue(raw string) any {
	if raw == "" {
		return ""
	}
	var v any
	if err := yaml.Unmarshal([]byte(raw), &v); err != nil || v == nil {
		return raw
	}
	switch v.(type) {
	case bool, int, int64, uint64, float64, string:
		return v
	default:
		// Lists and maps in a single variable stay opaque strings.
		return raw
	}
}
