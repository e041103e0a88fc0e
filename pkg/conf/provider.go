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

// Profile is a named partition of the configuration tree.
// Profiles are merged independently; extraction overlays the requested
// profile on top of Default.
type Profile string

// Default is the profile used when none is specified.
const Default Profile = "default"

// OrDefault normalizes the empty profile to Default.
func (p Profile) OrDefault() Profile {
	if p == "" {
		return Default
	}
	return p
}

// String returns the profile name.
func (p Profile) String() string {
	return string(p.OrDefault())
}

// Dict holds the key/value pairs contributed to a single profile.
type Dict = map[string]any

// Map is the profile-scoped data a provider contributes.
type Map = map[Profile]Dict

// Metadata identifies a provider for diagnostics and error messages.
type Metadata struct {
	// Name is the provider kind (e.g. "yaml", "env", "keyring").
	Name string

	// Source describes where the data comes from (file path, env prefix, ...).
	// May be empty when the provider has no external source.
	Source string
}

// Provider produces configuration data for the final merged tree.
//
// Data is called with no arguments when a Stack assembles its result; any
// lazy work (reading files, querying services) happens inside Data, not at
// construction time.
type Provider interface {
	// Metadata names the provider. It must not fail.
	Metadata() Metadata

	// Data returns the provider's contribution, keyed by profile.
	Data() (Map, error)
}

// mergeDict deep-merges src into dst. Nested string-keyed maps are merged
// recursively; any other value from src replaces the value in dst.
func mergeDict(dst, src Dict) {
	for k, v := range src {
		sm, sok := v.(map[string]any)
		dm, dok := dst[k].(map[string]any)
		if sok && dok {
			merged := make(map[string]any, len(dm)+len(sm))
			mergeDict(merged, dm)
			mergeDict(merged, sm)
			dst[k] = merged
			continue
		}
		dst[k] = v
	}
}

// mergeMap merges each profile dict of src into dst.
func mergeMap(dst Map, src Map) {
	for profile, dict := range src {
		profile = profile.OrDefault()
		existing, ok := dst[profile]
		if !ok {
			existing = make(Dict, len(dict))
			dst[profile] = existing
		}
		mergeDict(existing, dict)
	}
}
