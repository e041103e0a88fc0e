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

// Package resolve implements the `stratum resolve` command.
package resolve

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"golang.org/x/term"
	"gopkg.in/yaml.v3"

	"github.com/tombee/stratum/internal/mask"
	"github.com/tombee/stratum/pkg/conf"
	"github.com/tombee/stratum/pkg/keyring"
)

var (
	configPath  string
	envPrefix   string
	service     string
	keyrings    []string
	optional    bool
	profileName string
	outputKey   string
	unmask      bool
	format      string
)

// NewCommand creates the resolve command.
func NewCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "resolve <credential>",
		Short: "Resolve a secret from OS credential stores",
		Long: `Resolve a named secret by searching keyrings in priority order.

The resolution parameters (service, keyring order, optional flag) come from
a layered configuration assembled from --config, --env-prefix, and the flag
overrides, in that order. The first keyring holding the entry wins.

Output is masked unless --unmask is given.

Examples:
  stratum resolve api_key --service myapp
  stratum resolve api_key --config stratum.yaml --profile production
  stratum resolve deploy_token --service myapp --keyring system --keyring team-secrets
  stratum resolve api_key --service myapp --unmask --format json`,
		Args: cobra.ExactArgs(1),
		RunE: runResolve,
	}

	addSourceFlags(cmd.Flags())
	cmd.Flags().StringVar(&profileName, "profile", "", "Target configuration profile")
	cmd.Flags().StringVar(&outputKey, "key", "", "Destination key (defaults to the credential name)")
	cmd.Flags().BoolVar(&unmask, "unmask", false, "Print the secret value unmasked")
	cmd.Flags().StringVar(&format, "format", "text", "Output format (text, json, yaml)")

	return cmd
}

// addSourceFlags registers the flags that feed the configuration stack.
func addSourceFlags(flags *pflag.FlagSet) {
	flags.StringVarP(&configPath, "config", "c", "", "YAML file with resolution settings")
	flags.StringVar(&envPrefix, "env-prefix", "", "Read settings from environment variables with this prefix")
	flags.StringVar(&service, "service", "", "Service namespace for keyring entries")
	flags.StringSliceVar(&keyrings, "keyring", nil, "Keyring to search, in priority order (repeatable)")
	flags.BoolVar(&optional, "optional", false, "Tolerate a missing secret")
}

func runResolve(cmd *cobra.Command, args []string) error {
	credential := args[0]

	stack := buildStack(cmd)
	provider := keyring.ConfiguredBy(stack, credential)
	if outputKey != "" {
		provider = provider.AsKey(outputKey)
	}
	if profileName != "" {
		provider = provider.WithProfile(conf.Profile(profileName))
	}

	slog.Debug("resolving credential", "credential", credential, "profile", conf.Profile(profileName).OrDefault())

	data, err := provider.Data()
	if err != nil {
		return err
	}

	return printContribution(cmd, data)
}

// buildStack layers the configuration sources: file, then environment, then
// explicit flag overrides.
func buildStack(cmd *cobra.Command) *conf.Stack {
	stack := conf.New()
	if configPath != "" {
		stack = stack.With(conf.YAMLFile(configPath))
	}
	if envPrefix != "" {
		stack = stack.With(conf.Env(envPrefix))
	}

	overrides := conf.Dict{}
	if service != "" {
		overrides["service"] = service
	}
	if len(keyrings) > 0 {
		overrides["keyrings"] = keyrings
	}
	if cmd.Flags().Changed("optional") {
		overrides["optional"] = optional
	}
	if len(overrides) > 0 {
		stack = stack.With(conf.Serialized(overrides))
	}

	return stack
}

func printContribution(cmd *cobra.Command, data conf.Map) error {
	masker := mask.New()
	if !unmask {
		for _, dict := range data {
			for _, v := range dict {
				if s, ok := v.(string); ok {
					masker.Add(s)
				}
			}
		}
	}

	switch format {
	case "text":
		return printText(cmd, data, masker)
	case "json":
		out := make(map[string]map[string]any, len(data))
		for profile, dict := range data {
			out[profile.String()] = masker.MaskMap(dict)
		}
		encoded, err := json.MarshalIndent(out, "", "  ")
		if err != nil {
			return err
		}
		cmd.Println(string(encoded))
		return nil
	case "yaml":
		out := make(map[string]map[string]any, len(data))
		for profile, dict := range data {
			out[profile.String()] = masker.MaskMap(dict)
		}
		encoded, err := yaml.Marshal(out)
		if err != nil {
			return err
		}
		cmd.Print(string(encoded))
		return nil
	default:
		return fmt.Errorf("unknown format %q", format)
	}
}

// printText writes just the resolved value. On a terminal a trailing newline
// keeps the prompt clean; when piped, the bare value is easier to consume.
func printText(cmd *cobra.Command, data conf.Map, masker *mask.Masker) error {
	for _, dict := range data {
		for key, v := range dict {
			value := fmt.Sprintf("%v", v)
			value = masker.Mask(value)
			if term.IsTerminal(int(os.Stdout.Fd())) {
				cmd.Println(value)
			} else {
				cmd.Print(value)
			}
			slog.Debug("resolved", "key", key)
			return nil
		}
	}

	slog.Info("no secret found; optional resolution produced no value")
	return nil
}
