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
	"sync"
)

// Backend performs the platform-specific lookup for a single keyring entry.
//
// Implementations classify failures as *Error values: absence of the entry
// is CategoryNotFound, everything else uses the remaining categories. The
// resolver relies on that classification to decide whether a failure
// advances the search or aborts it.
//
// Lookups are blocking; any timeout behavior belongs to the backend, not to
// the resolver, which is why ctx is part of the contract.
type Backend interface {
	GetSecret(ctx context.Context, ring Keyring, service, account string) (string, error)
}

var (
	defaultOnce    sync.Once
	defaultBackend Backend
)

// Default returns the process-wide native backend backed by the operating
// system's credential store. The backend is initialized exactly once, on
// first use, including its store availability probe; concurrent first
// callers share the same instance.
func Default() Backend {
	defaultOnce.Do(func() {
		defaultBackend = newNativeBackend()
	})
	return defaultBackend
}
