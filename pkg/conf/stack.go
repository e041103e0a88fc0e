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

	"github.com/go-viper/mapstructure/v2"
)

// Stack is an ordered collection of providers forming one layered
// configuration. Providers later in the list override earlier ones.
//
// A Stack is immutable after construction; With returns a new Stack. The
// same *Stack may therefore back multiple consumers and be read from
// multiple goroutines.
type Stack struct {
	providers []Provider
}

// New creates a stack from the given providers, in merge order.
func New(providers ...Provider) *Stack {
	return &Stack{providers: providers}
}

// With returns a new stack with p merged after the receiver's providers.
func (s *Stack) With(p Provider) *Stack {
	providers := make([]Provider, 0, len(s.providers)+1)
	providers = append(providers, s.providers...)
	providers = append(providers, p)
	return &Stack{providers: providers}
}

// Providers returns the stack's providers in merge order.
func (s *Stack) Providers() []Provider {
	out := make([]Provider, len(s.providers))
	copy(out, s.providers)
	return out
}

// Data collects and merges the contribution of every provider.
// A provider failure aborts the merge and is returned wrapped with the
// provider's metadata.
func (s *Stack) Data() (Map, error) {
	merged := make(Map)
	for _, p := range s.providers {
		data, err := p.Data()
		if err != nil {
			meta := p.Metadata()
			if meta.Source != "" {
				return nil, fmt.Errorf("conf: provider %s (%s): %w", meta.Name, meta.Source, err)
			}
			return nil, fmt.Errorf("conf: provider %s: %w", meta.Name, err)
		}
		mergeMap(merged, data)
	}
	return merged, nil
}

// Extract decodes the Default profile of the merged data into out.
func (s *Stack) Extract(out any) error {
	return s.ExtractProfile(Default, out)
}

// ExtractProfile decodes the given profile, overlaid on Default, into out.
// out must be a pointer to a struct or map. Fields decode by their
// mapstructure tags; string values decode into any field type implementing
// encoding.TextUnmarshaler.
func (s *Stack) ExtractProfile(profile Profile, out any) error {
	merged, err := s.Data()
	if err != nil {
		return err
	}

	view := make(Dict)
	mergeDict(view, merged[Default])
	if profile = profile.OrDefault(); profile != Default {
		mergeDict(view, merged[profile])
	}

	dec, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		Result:     out,
		DecodeHook: mapstructure.TextUnmarshallerHookFunc(),
	})
	if err != nil {
		return fmt.Errorf("conf: building decoder: %w", err)
	}
	if err := dec.Decode(view); err != nil {
		return fmt.Errorf("conf: extracting profile %q: %w", profile, err)
	}
	return nil
}
