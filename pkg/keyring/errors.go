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

import "errors"

// Category classifies keyring failures. The resolver's fallback behavior
// depends on it: CategoryNotFound always advances the search to the next
// keyring, every other category aborts unless the configuration is optional.
type Category string

const (
	// CategoryNotFound means the store is healthy but has no such entry.
	CategoryNotFound Category = "NOT_FOUND"

	// CategoryConfig means the resolution configuration itself is invalid.
	CategoryConfig Category = "CONFIG"

	// CategoryUnavailable means the credential store cannot be reached
	// (locked keychain, missing secret service, unsupported platform).
	CategoryUnavailable Category = "SERVICE_UNAVAILABLE"

	// CategoryPermission means the store refused access.
	CategoryPermission Category = "PERMISSION_DENIED"

	// CategoryBackend is any other store failure.
	CategoryBackend Category = "BACKEND"
)

// Error is a classified keyring failure.
type Error struct {
	Category Category
	Detail   string
	Cause    error
}

// Error implements the error interface.
func (e *Error) Error() string {
	switch e.Category {
	case CategoryNotFound:
		return "secret not found: " + e.Detail
	case CategoryConfig:
		return "keyring config error: " + e.Detail
	case CategoryUnavailable:
		return "keyring service unavailable: " + e.Detail
	case CategoryPermission:
		return "permission denied"
	default:
		return "backend error: " + e.Detail
	}
}

// Unwrap returns the underlying cause for errors.Is/As support.
func (e *Error) Unwrap() error {
	return e.Cause
}

// NotFoundError reports a missing entry. detail typically names the account
// that was looked up.
func NotFoundError(detail string) *Error {
	return &Error{Category: CategoryNotFound, Detail: detail}
}

// ConfigError reports an invalid resolution configuration.
func ConfigError(detail string, cause error) *Error {
	return &Error{Category: CategoryConfig, Detail: detail, Cause: cause}
}

// UnavailableError reports an unreachable credential store.
func UnavailableError(detail string, cause error) *Error {
	return &Error{Category: CategoryUnavailable, Detail: detail, Cause: cause}
}

// PermissionDeniedError reports that the store refused access. No detail is
// carried; the cause is retained for wrapping only.
func PermissionDeniedError(cause error) *Error {
	return &Error{Category: CategoryPermission, Cause: cause}
}

// BackendError reports any other store failure.
func BackendError(detail string, cause error) *Error {
	return &Error{Category: CategoryBackend, Detail: detail, Cause: cause}
}

// CategoryOf returns the category of the first *Error in err's tree, or the
// empty category when err carries no classification.
func CategoryOf(err error) Category {
	var e *Error
	if errors.As(err, &e) {
		return e.Category
	}
	return ""
}

// IsNotFound reports whether err is classified as a missing entry.
func IsNotFound(err error) bool {
	return CategoryOf(err) == CategoryNotFound
}

// IsPermissionDenied reports whether err is classified as an access refusal.
func IsPermissionDenied(err error) bool {
	return CategoryOf(err) == CategoryPermission
}

// IsUnavailable reports whether err is classified as an unreachable store.
func IsUnavailable(err error) bool {
	return CategoryOf(err) == CategoryUnavailable
}
