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

// Package doctor implements the `stratum doctor` command.
package doctor

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/tombee/stratum/pkg/keyring"
)

// probeAccount should never exist in any store; the lookup outcome tells us
// whether the store itself is reachable.
const probeAccount = "__stratum_doctor__"

var serviceName string

// NewCommand creates the doctor command.
func NewCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "doctor [keyring...]",
		Short: "Check credential store availability",
		Long: `Probe each keyring with a harmless lookup and report its health.

Without arguments the user and system keyrings are probed. Additional
keyrings can be named explicitly:

  stratum doctor
  stratum doctor user team-secrets`,
		RunE: runDoctor,
	}

	cmd.Flags().StringVar(&serviceName, "service", "stratum", "Service namespace used for the probe")

	return cmd
}

func runDoctor(cmd *cobra.Command, args []string) error {
	names := args
	if len(names) == 0 {
		names = []string{"user", "system"}
	}

	backend := keyring.Default()
	healthy := true

	for _, name := range names {
		ring := keyring.FromString(name)
		_, err := backend.GetSecret(cmd.Context(), ring, serviceName, probeAccount)

		switch {
		case err == nil || keyring.IsNotFound(err):
			cmd.Printf("%-20s ok\n", ring)
		case keyring.IsPermissionDenied(err):
			cmd.Printf("%-20s permission denied\n", ring)
			healthy = false
		case keyring.IsUnavailable(err):
			cmd.Printf("%-20s unavailable: %v\n", ring, err)
			healthy = false
		default:
			cmd.Printf("%-20s error: %v\n", ring, err)
			healthy = false
		}
	}

	if !healthy {
		return fmt.Errorf("one or more keyrings are not usable")
	}
	return nil
}
