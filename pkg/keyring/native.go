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
	"errors"
	"runtime"
	"strings"

	gokeyring "github.com/zalando/go-keyring"
)

// probeAccount is a key that should never exist; looking it up tells us
// whether the credential store is reachable at all.
const probeAccount = "__stratum_availability_test__"

// nativeBackend talks to the operating system's credential store:
//   - macOS: Keychain Access
//   - Windows: Credential Manager
//   - Linux: Secret Service API (GNOME Keyring, KWallet)
//
// go-keyring addresses entries by (service, account) only, without a store
// selector, so non-default stores are scoped through the service namespace:
// an entry in store "team" under service "myapp" lives at service
// "team/myapp".
type nativeBackend struct {
	available bool
}

// newNativeBackend creates the backend and probes the store once. A probe
// failure other than not-found means the store is locked or missing, and
// every later lookup reports CategoryUnavailable without touching the
// platform again.
func newNativeBackend() *nativeBackend {
	b := &nativeBackend{available: true}

	_, err := gokeyring.Get("stratum", probeAccount)
	if err != nil && !errors.Is(err, gokeyring.ErrNotFound) {
		b.available = false
	}

	return b
}

// GetSecret implements Backend.
func (b *nativeBackend) GetSecret(ctx context.Context, ring Keyring, service, account string) (string, error) {
	if !b.available {
		return "", UnavailableError("no usable credential store", nil)
	}
	if err := ctx.Err(); err != nil {
		return "", UnavailableError("lookup canceled", err)
	}

	value, err := gokeyring.Get(scopedService(ring, service), account)
	if err != nil {
		if errors.Is(err, gokeyring.ErrNotFound) {
			return "", NotFoundError(account)
		}
		if errors.Is(err, gokeyring.ErrUnsupportedPlatform) {
			return "", UnavailableError("platform has no credential store", err)
		}
		return "", classify(err)
	}

	return value, nil
}

// scopedService maps a (keyring, service) pair onto the flat service
// namespace go-keyring exposes.
func scopedService(ring Keyring, service string) string {
	switch ring.kind {
	case kindSystem:
		return defaultSystemTarget() + "/" + service
	case kindNamed:
		return ring.name + "/" + service
	default:
		return service
	}
}

// defaultSystemTarget names the system-wide store on each platform.
func defaultSystemTarget() string {
	switch runtime.GOOS {
	case "windows":
		return "Windows Credential Manager"
	case "darwin":
		return "login.keychain"
	default:
		return "default"
	}
}

// classify maps an unrecognized go-keyring failure onto the error taxonomy
// using the message heuristics the underlying platforms produce.
func classify(err error) *Error {
	msg := strings.ToLower(err.Error())

	permissionIndicators := []string{
		"permission denied",
		"access denied",
		"not authorized",
		"access is denied",
	}
	for _, indicator := range permissionIndicators {
		if strings.Contains(msg, indicator) {
			return PermissionDeniedError(err)
		}
	}

	unavailableIndicators := []string{
		"locked",
		"cannot access",
		"failed to unlock",
		"user interaction required",
		"secret service",
		"org.freedesktop.secrets",
		"dbus",
		"user canceled",
		"timeout",
	}
	for _, indicator := range unavailableIndicators {
		if strings.Contains(msg, indicator) {
			return UnavailableError(err.Error(), err)
		}
	}

	return BackendError(err.Error(), err)
}
