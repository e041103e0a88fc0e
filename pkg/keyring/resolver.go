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
)

// Resolver runs the ordered keyring search for a single credential.
type Resolver struct {
	backend Backend
}

// NewResolver creates a resolver querying the given backend. A nil backend
// selects the process-wide native backend.
func NewResolver(backend Backend) *Resolver {
	if backend == nil {
		backend = Default()
	}
	return &Resolver{backend: backend}
}

// Resolve tries cfg.Keyrings in order and returns the first secret found.
//
// A store reporting not-found always advances the search. Any other store
// failure aborts the search unless cfg.Optional is set, in which case it is
// treated like absence. found is false with a nil error when no keyring
// held the entry; that is only an error for the caller to decide.
//
// Every store is queried at most once per call; there are no retries.
func (r *Resolver) Resolve(ctx context.Context, cfg Config, account string) (value string, found bool, err error) {
	if err := cfg.Validate(); err != nil {
		return "", false, err
	}
	cfg = cfg.withDefaults()

	for _, ring := range cfg.Keyrings {
		value, err := r.backend.GetSecret(ctx, ring, cfg.Service, account)
		if err == nil {
			return value, true, nil
		}
		if IsNotFound(err) {
			continue
		}
		if cfg.Optional {
			continue
		}
		return "", false, fmt.Errorf("searching keyring %q: %w", ring, err)
	}

	return "", false, nil
}
