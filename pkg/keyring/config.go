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

package keyring

import "strings"

// Config describes one secret resolution request. It is designed to be
// extracted from any conf source:
//
//	service: myapp
//	keyrings: [user, team-secrets]
//	optional: false
type Config struct {
	// Service is the namespace under which the secret is filed in each
	// store, commonly the application name. Required.
	Service string `mapstructure:"service" yaml:"service"`

	// Keyrings to search, in priority order. The first store holding the
	// entry wins. Defaults to the user keyring when empty.
	Keyrings []Keyring `mapstructure:"keyrings" yaml:"keyrings,omitempty"`

	// Optional tolerates resolution failure: a secret missing from every
	// keyring yields no value instead of an error, and per-store faults
	// are treated like absence. It does not excuse an invalid Config.
	Optional bool `mapstructure:"optional" yaml:"optional,omitempty"`
}

// Validate checks the structural requirements. Validation failures are
// CategoryConfig errors and are never suppressed by Optional.
func (c Config) Validate() error {
	if strings.TrimSpace(c.Service) == "" {
		return ConfigError("service is required", nil)
	}
	return nil
}

// withDefaults returns a copy with the default search order applied.
func (c Config) withDefaults() Config {
	if len(c.Keyrings) == 0 {
		c.Keyrings = []Keyring{User}
	}
	return c
}
