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

package main

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/tombee/stratum/internal/commands/doctor"
	"github.com/tombee/stratum/internal/commands/resolve"
	"github.com/tombee/stratum/internal/commands/version"
	"github.com/tombee/stratum/internal/log"
)

func main() {
	slog.SetDefault(log.New(log.FromEnv()))

	root := &cobra.Command{
		Use:   "stratum",
		Short: "Resolve secrets from OS credential stores into configuration",
		Long: `stratum injects secrets from OS credential stores (macOS Keychain,
Windows Credential Manager, Linux Secret Service) into layered
configuration, searching keyrings in priority order.`,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	root.AddCommand(resolve.NewCommand())
	root.AddCommand(doctor.NewCommand())
	root.AddCommand(version.NewCommand())

	if err := root.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}
