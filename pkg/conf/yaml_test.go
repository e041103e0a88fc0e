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
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestYAMLDocument(t *testing.T) {
	data, err := YAML([]byte("service: myapp\nkeyrings: [user, system]\n")).Data()
	require.NoError(t, err)

	dict := data[Default]
	assert.Equal(t, "myapp", dict["service"])
	assert.Equal(t, []any{"user", "system"}, dict["keyrings"])
}

func TestYAMLFileReadsLazily(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	provider := YAMLFile(path)

	_, err := provider.Data()
	assert.Error(t, err, "missing file surfaces at data time")

	require.NoError(t, os.WriteFile(path, []byte("service: myapp\n"), 0o600))

	data, err := provider.Data()
	require.NoError(t, err)
	assert.Equal(t, "myapp", data[Default]["service"])

	// Later edits are picked up on the next call.
	require.NoError(t, os.WriteFile(path, []byte("service: other\n"), 0o600))
	data, err = provider.Data()
	require.NoError(t, err)
	assert.Equal(t, "other", data[Default]["service"])
}

func TestYAMLInProfile(t *testing.T) {
	data, err := YAML([]byte("host: prod.example.com\n")).InProfile("production").Data()
	require.NoError(t, err)
	assert.Equal(t, "prod.example.com", data[Profile("production")]["host"])
}

func TestYAMLMalformed(t *testing.T) {
	_, err := YAML([]byte("service: [unclosed")).Data()
	assert.Error(t, err)
}

func TestYAMLEmptyDocument(t *testing.T) {
	data, err := YAML(nil).Data()
	require.NoError(t, err)
	assert.Empty(t, data[Default])
}
