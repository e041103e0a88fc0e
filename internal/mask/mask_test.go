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

package mask

import (
	"reflect"
	"testing"
)

func TestMask(t *testing.T) {
	m := New()
	m.Add("s3cret")

	if got := m.Mask("token is s3cret here"); got != "token is *** here" {
		t.Errorf("Mask = %q", got)
	}
	if got := m.Mask("nothing to hide"); got != "nothing to hide" {
		t.Errorf("Mask = %q", got)
	}
}

func TestAddIgnoresEmpty(t *testing.T) {
	m := New()
	m.Add("")

	if got := m.Mask("unchanged"); got != "unchanged" {
		t.Errorf("Mask = %q", got)
	}
}

func TestMaskMap(t *testing.T) {
	m := New()
	m.Add("abc123")

	in := map[string]any{
		"api_key": "abc123",
		"nested":  map[string]any{"token": "abc123", "keep": 42},
		"list":    []any{"abc123", true},
	}
	want := map[string]any{
		"api_key": "***",
		"nested":  map[string]any{"token": "***", "keep": 42},
		"list":    []any{"***", true},
	}

	if got := m.MaskMap(in); !reflect.DeepEqual(got, want) {
		t.Errorf("MaskMap = %#v, want %#v", got, want)
	}
}
