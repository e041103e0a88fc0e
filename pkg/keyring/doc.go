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

/*
Package keyring resolves secrets from OS credential stores into layered
configuration.

A Provider looks up one named credential by searching an ordered list of
keyrings (the user's default store, the system store, or arbitrary named
stores) and contributes the found value to a conf.Stack under a
caller-chosen key. Applications keep credentials in the platform secret
store (macOS Keychain, Windows Credential Manager, Linux Secret Service)
instead of plaintext configuration files.

# Usage

The provider is configured by a conf.Stack, so the resolution parameters
themselves can come from any configuration source:

	// config.yaml
	// service: myapp
	// keyrings: [user, team-secrets]
	// optional: false

	settings := conf.New(conf.YAMLFile("config.yaml"))
	apiKey := keyring.ConfiguredBy(settings, "api_key")

	final := conf.New(
	    conf.YAMLFile("config.yaml"),
	    apiKey,
	)

	var cfg AppConfig
	err := final.Extract(&cfg)

Nothing is read from the keyring until the final stack asks the provider for
its data; construction is free of side effects (late binding).

For the common single-store case there are inline constructors:

	keyring.New("myapp", "api_key")        // user keyring only
	keyring.NewSystem("myapp", "api_key")  // system keyring only

# Search semantics

Keyrings are a priority list: the first store holding the entry wins and no
further stores are queried. A store that simply lacks the entry never fails
the search. Any other failure (locked store, permission denied, service
unreachable) aborts the search, unless the configuration sets optional: true,
in which case faults are treated like absence. A required credential missing
from every store is reported as an error naming the credential; an optional
one yields an empty contribution.
*/
package keyring
