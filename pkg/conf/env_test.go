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
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEnvPrefixAndTyping(t *testing.T) {
	t.Setenv("STRATUMTEST_SERVICE", "myapp")
	t.Setenv("STRATUMTEST_RETRIES", "3")
	t.Setenv("STRATUMTEST_OPTIONAL", "true")
	t.Setenv("STRATUMTEST_RATIO", "0.5")
	t.Setenv("UNRELATED_SERVICE", "other")

	data, err := Env("STRATUMTEST_").Data()
	require.NoError(t, err)

	dict := data[Default]
	assert.Equal(t, "myapp", dict["service"])
	assert.EqualValues(t, 3, dict["retries"])
	assert.Equal(t, true, dict["optional"])
	assert.Equal(t, 0.5, dict["ratio"])
	assert.NotContains(t, dict, "unrelated_service")
}

func TestEnvNesting(t *testing.T) {
	t.Setenv("STRATUMTEST_AUTH__TOKEN", "abc")
	t.Setenv("STRATUMTEST_AUTH__RETRY__MAX", "5")

	data, err := Env("STRATUMTEST_").Data()
	require.NoError(t, err)

	auth, ok := data[Default]["auth"].(map[string]any)
	require.True(t, ok, "auth should be a nested map")
	assert.Equal(t, "abc", auth["token"])

	retry, ok := auth["retry"].(map[string]any)
	require.True(t, ok, "retry should be a nested map")
	assert.EqualValues(t, 5, retry["max"])
}

func TestEnvAllowlist(t *testing.T) {
	t.Setenv("STRATUMTEST_SERVICE", "myapp")
	t.Setenv("STRATUMTEST_SECRET", "s3cret")

	data, err := Env("STRATUMTEST_").Allow("STRATUMTEST_SERVICE").Data()
	require.NoError(t, err)

	dict := data[Default]
	assert.Equal(t, "myapp", dict["service"])
	assert.NotContains(t, dict, "secret")
}

func TestEnvAllowlistGlob(t *testing.T) {
	t.Setenv("STRATUMTEST_AUTH__TOKEN", "abc")
	t.Setenv("STRATUMTEST_DEBUG", "true")

	data, err := Env("STRATUMTEST_").Allow("STRATUMTEST_AUTH__*").Data()
	require.NoError(t, err)

	dict := data[Default]
	assert.Contains(t, dict, "auth")
	assert.NotContains(t, dict, "debug")
}

func TestEnvProfile(t *testing.T) {
	t.Setenv("STRATUMTEST_HOST", "prod.example.com")

	data, err := Env("STRATUMTEST_").InProfile("production").Data()
	require.NoError(t, err)
	assert.Equal(t, "prod.example.com", data[Profile("production")]["host"])
	assert.NotContains(t, data, Default)
}

func TestEnvEmptyValueStaysString(t *testing.T) {
	t.Setenv("STRATUMTEST_EMPTY", "")

	data, err := Env("STRATUMTEST_").Data()
	require.NoError(t, err)
	assert.Equal(t, "", data[Default]["empty"])
}

func TestEnvKeyringNamesStayStrings(t *testing.T) {
	// "user" must survive as a string so keyring identifiers extract cleanly.
	t.Setenv("STRATUMTEST_KEYRING", "user")

	data, err := Env("STRATUMTEST_").Data()
	require.NoError(t, err)
	assert.Equal(t, "user", data[Default]["keyring"])
}
