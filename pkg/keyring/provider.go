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

import (
	"context"
	"fmt"

	"github.com/tombee/stratum/pkg/conf"
)

// Provider injects one secret from OS credential stores into a layered
// configuration.
//
// The provider is late-bound: it holds a shared *conf.Stack describing the
// resolution (service, keyrings, optional) but extracts nothing until the
// host configuration asks for data. The stack may be backed by files,
// environment variables or anything else the application merges into it,
// and may be shared with other providers.
//
// Providers are immutable; the With/As builders return updated copies, so a
// Provider may be queried from multiple goroutines. Each Data call
// re-extracts the configuration and re-runs the search — results are never
// cached.
type Provider struct {
	source     *conf.Stack
	credential string
	key        string
	profile    conf.Profile
	backend    Backend
}

// ConfiguredBy creates a provider whose resolution parameters are extracted
// from source at data-production time. credential is the account name looked
// up in each store and, unless overridden with AsKey, the key the secret is
// filed under in the output.
func ConfiguredBy(source *conf.Stack, credential string) *Provider {
	return &Provider{source: source, credential: credential}
}

// New creates a provider searching only the user keyring of the given
// service. Equivalent to ConfiguredBy with an inline single-store config.
func New(service, credential string) *Provider {
	return inline(service, credential, User)
}

// NewSystem creates a provider searching only the system keyring of the
// given service.
func NewSystem(service, credential string) *Provider {
	return inline(service, credential, System)
}

func inline(service, credential string, ring Keyring) *Provider {
	source := conf.New(conf.Serialized(conf.Dict{
		"service":  service,
		"keyrings": []string{ring.String()},
		"optional": false,
	}))
	return ConfiguredBy(source, credential)
}

// AsKey returns a copy of the provider that files the secret under key
// instead of the credential name. The lookup account name is unchanged.
func (p *Provider) AsKey(key string) *Provider {
	cp := *p
	cp.key = key
	return &cp
}

// WithProfile returns a copy of the provider contributing to the given
// profile instead of the default one.
func (p *Provider) WithProfile(profile conf.Profile) *Provider {
	cp := *p
	cp.profile = profile
	return &cp
}

// WithBackend returns a copy of the provider querying b instead of the
// process-wide native backend. Hosts use this to substitute their own
// credential-store adapter; tests use it to mock lookups.
func (p *Provider) WithBackend(b Backend) *Provider {
	cp := *p
	cp.backend = b
	return &cp
}

// Metadata implements conf.Provider.
func (p *Provider) Metadata() conf.Metadata {
	return conf.Metadata{Name: "keyring"}
}

// Data implements conf.Provider. It extracts the resolution config from the
// bound stack, runs the keyring search, and contributes at most one key to
// the target profile.
//
// Extraction or validation failure is a CategoryConfig error regardless of
// the optional flag; optional governs the secret lookup, not structural
// validity.
func (p *Provider) Data() (conf.Map, error) {
	var cfg Config
	if err := p.source.Extract(&cfg); err != nil {
		return nil, ConfigError(err.Error(), err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	resolver := NewResolver(p.backend)
	value, found, err := resolver.Resolve(context.Background(), cfg, p.credential)
	if err != nil {
		return nil, err
	}

	key := p.key
	if key == "" {
		key = p.credential
	}

	dict := make(conf.Dict)
	switch {
	case found:
		dict[key] = value
	case cfg.Optional:
		// Empty contribution: the key is simply absent.
	default:
		return nil, NotFoundError(fmt.Sprintf("%q in any keyring", p.credential))
	}

	return conf.Map{p.profile.OrDefault(): dict}, nil
}
