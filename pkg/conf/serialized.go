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
	"encoding"
	"fmt"
	"reflect"

	"github.com/go-viper/mapstructure/v2"
)

// SerializedProvider contributes fixed, already-assembled values to a single
// profile. It is the simplest provider and is typically used for defaults.
type SerializedProvider struct {
	profile Profile
	values  any
}

// Serialized creates a provider contributing values to the Default profile.
// values may be a Dict, any string-keyed map, or a struct; structs are
// converted field-by-field using mapstructure tags. Field values
// implementing encoding.TextMarshaler are stored in their text form, so they
// survive the round trip back through Extract.
func Serialized(values any) *SerializedProvider {
	return SerializedInProfile(Default, values)
}

// SerializedInProfile is Serialized scoped to a specific profile.
func SerializedInProfile(profile Profile, values any) *SerializedProvider {
	return &SerializedProvider{profile: profile.OrDefault(), values: values}
}

// Metadata implements Provider.
func (s *SerializedProvider) Metadata() Metadata {
	return Metadata{Name: "serialized"}
}

// Data implements Provider.
func (s *SerializedProvider) Data() (Map, error) {
	dict := make(Dict)
	if s.values != nil {
		dec, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
			Result:     &dict,
			DecodeHook: textMarshalerHook,
		})
		if err != nil {
			return nil, fmt.Errorf("building serializer: %w", err)
		}
		if err := dec.Decode(s.values); err != nil {
			return nil, fmt.Errorf("serializing values: %w", err)
		}
	}
	return Map{s.profile: dict}, nil
}

// textMarshalerHook flattens TextMarshaler values (and slices of them) into
// strings when they are headed for an untyped slot of the dict.
func textMarshalerHook(from reflect.Value, to reflect.Value) (any, error) {
	if to.Kind() != reflect.Interface {
		return from.Interface(), nil
	}
	if tm, ok := from.Interface().(encoding.TextMarshaler); ok {
		text, err := tm.MarshalText()
		if err != nil {
			return nil, err
		}
		return string(text), nil
	}
	return from.Interface(), nil
}
