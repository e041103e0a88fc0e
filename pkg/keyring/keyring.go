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

type kind uint8

const (
	kindUser kind = iota
	kindSystem
	kindNamed
)

// Keyring identifies which OS credential store to query. The zero value is
// the invoking user's default store.
//
// Keyring values are immutable and comparable; two keyrings are equal when
// they identify the same store.
type Keyring struct {
	kind kind
	name string
}

// The two fixed stores every platform provides.
var (
	// User is the invoking user's default credential store.
	User = Keyring{kind: kindUser}

	// System is the system-wide credential store.
	System = Keyring{kind: kindSystem}
)

// Named identifies an arbitrary store by name. The name is not validated
// here; an empty or unknown name surfaces as a backend failure at lookup
// time.
func Named(name string) Keyring {
	return Keyring{kind: kindNamed, name: name}
}

// FromString maps a textual identifier onto a keyring. The literals "user"
// and "system" are reserved for the two fixed stores; every other string
// names a custom store. FromString never fails, so a store literally named
// "user" cannot be produced this way.
func FromString(s string) Keyring {
	switch s {
	case "user":
		return User
	case "system":
		return System
	default:
		return Named(s)
	}
}

// String returns the textual form accepted by FromString.
func (k Keyring) String() string {
	switch k.kind {
	case kindSystem:
		return "system"
	case kindNamed:
		return k.name
	default:
		return "user"
	}
}

// Store returns the custom store name for named keyrings. ok is false for
// the fixed User and System keyrings.
func (k Keyring) Store() (name string, ok bool) {
	if k.kind == kindNamed {
		return k.name, true
	}
	return "", false
}

// MarshalText implements encoding.TextMarshaler.
func (k Keyring) MarshalText() ([]byte, error) {
	return []byte(k.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler. It never fails; see
// FromString.
func (k *Keyring) UnmarshalText(text []byte) error {
	*k = FromString(string(text))
	return nil
}
