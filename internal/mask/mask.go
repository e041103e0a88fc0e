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

// Package mask hides resolved secret values in CLI output.
package mask

import (
	"fmt"
	"strings"
)

// Masker replaces registered secret values with "***" wherever they appear.
type Masker struct {
	secrets map[string]bool
}

// New creates an empty masker.
func New() *Masker {
	return &Masker{secrets: make(map[string]bool)}
}

// Add registers a value to be masked. Empty values are ignored.
func (m *Masker) Add(value string) {
	if value != "" {
		m.secrets[value] = true
	}
}

// Mask replaces all known secrets in a string with "***".
func (m *Masker) Mask(s string) string {
	result := s
	for secret := range m.secrets {
		if strings.Contains(result, secret) {
			result = strings.ReplaceAll(result, secret, "***")
		}
	}
	return result
}

// MaskMap returns a copy of data with secrets replaced in every value,
// recursing into nested maps and slices.
func (m *Masker) MaskMap(data map[string]any) map[string]any {
	result := make(map[string]any, len(data))
	for k, v := range data {
		result[k] = m.maskValue(v)
	}
	return result
}

func (m *Masker) maskValue(v any) any {
	switch val := v.(type) {
	case string:
		return m.Mask(val)
	case map[string]any:
		return m.MaskMap(val)
	case []any:
		result := make([]any, len(val))
		for i, item := range val {
			result[i] = m.maskValue(item)
		}
		return result
	case bool, nil, int, int64, uint64, float64:
		return val
	default:
		return m.Mask(fmt.Sprintf("%v", val))
	}
}
