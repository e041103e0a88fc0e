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
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type failingProvider struct{ err error }

func (f *failingProvider) Metadata() Metadata { return Metadata{Name: "failing", Source: "test"} }
func (f *failingProvider) Data() (Map, error) { return nil, f.err }

func TestStackMergeOrder(t *testing.T) {
	stack := New(
		Serialized(Dict{"host": "localhost", "port": 8080}),
		Serialized(Dict{"port": 9090}),
	)

	data, err := stack.Data()
	require.NoError(t, err)
	assert.Equal(t, Dict{"host": "localhost", "port": 9090}, data[Default])
}

func TestStackDeepMerge(t *testing.T) {
	stack := New(
		Serialized(Dict{"auth": map[string]any{"user": "alice", "timeout": 30}}),
		Serialized(Dict{"auth": map[string]any{"user": "bob"}}),
	)

	data, err := stack.Data()
	require.NoError(t, err)
	assert.Equal(t, Dict{"auth": map[string]any{"user": "bob", "timeout": 30}}, data[Default])
}

func TestStackProfileOverlay(t *testing.T) {
	stack := New(
		Serialized(Dict{"host": "localhost", "debug": true}),
		SerializedInProfile("production", Dict{"host": "prod.example.com"}),
	)

	var out struct {
		Host  string `mapstructure:"host"`
		Debug bool   `mapstructure:"debug"`
	}

	require.NoError(t, stack.Extract(&out))
	assert.Equal(t, "localhost", out.Host)

	require.NoError(t, stack.ExtractProfile("production", &out))
	assert.Equal(t, "prod.example.com", out.Host)
	assert.True(t, out.Debug, "default profile values back the named profile")
}

func TestStackWithDoesNotMutate(t *testing.T) {
	base := New(Serialized(Dict{"a": 1}))
	extended := base.With(Serialized(Dict{"b": 2}))

	data, err := base.Data()
	require.NoError(t, err)
	assert.NotContains(t, data[Default], "b")

	data, err = extended.Data()
	require.NoError(t, err)
	assert.Equal(t, Dict{"a": 1, "b": 2}, data[Default])
}

func TestStackProviderFailureNamesProvider(t *testing.T) {
	sentinel := errors.New("boom")
	_, err := New(&failingProvider{err: sentinel}).Data()
	require.Error(t, err)
	assert.ErrorIs(t, err, sentinel)
	assert.Contains(t, err.Error(), "failing")
}

func TestSerializedFromStruct(t *testing.T) {
	type settings struct {
		Service string `mapstructure:"service"`
		Retries int    `mapstructure:"retries"`
	}

	data, err := Serialized(settings{Service: "myapp", Retries: 3}).Data()
	require.NoError(t, err)
	assert.Equal(t, "myapp", data[Default]["service"])
	assert.EqualValues(t, 3, data[Default]["retries"])
}

func TestExtractTypeMismatch(t *testing.T) {
	stack := New(Serialized(Dict{"port": "not a number"}))

	var out struct {
		Port int `mapstructure:"port"`
	}
	assert.Error(t, stack.Extract(&out))
}

func TestEmptyStack(t *testing.T) {
	var out struct {
		Host string `mapstructure:"host"`
	}
	require.NoError(t, New().Extract(&out))
	assert.Empty(t, out.Host)
}
