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
Package conf implements a small layered configuration system.

Configuration is assembled from an ordered list of providers. Each provider
contributes values for one or more profiles, and later providers override
earlier ones. The merged result can be extracted into typed structs.

# Providers

A provider is anything that can produce profile-scoped key/value data:

	type Provider interface {
	    Metadata() Metadata
	    Data() (Map, error)
	}

The package ships providers for fixed values (Serialized), YAML documents
(YAML, YAMLFile), and environment variables (Env). Other packages can
contribute their own providers; pkg/keyring does this to inject secrets from
OS credential stores.

# Usage

	stack := conf.New(
	    conf.Serialized(conf.Dict{"service": "myapp"}),
	    conf.YAMLFile("config.yaml"),
	    conf.Env("MYAPP_"),
	)

	var cfg AppConfig
	if err := stack.Extract(&cfg); err != nil {
	    return err
	}

# Profiles

Values are partitioned into named profiles (e.g. "default", "production").
Extraction overlays the requested profile on top of the default profile, so
profile-specific values win over shared ones.

Stacks are immutable once built: With returns a new stack rather than
mutating the receiver, so a *Stack may be shared and read concurrently.
*/
package conf
