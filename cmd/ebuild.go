/*
Copyright © 2025 SUSE LLC

Licensed under the Apache License, Version 2.0 (the "License");
you may not use this file except in compliance with the License.
You may obtain a copy of the License at

    http://www.apache.org/licenses/LICENSE-2.0

Unless required by applicable law or agreed to in writing, software
distributed under the License is distributed on an "AS IS" BASIS,
WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
See the License for the specific language governing permissions and
limitations under the License.
*/

package cmd

import (
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"github.com/twpayne/go-vfs/v4"

	"github.com/rancher-sandbox/vardbpkg/cmd/config"
	"github.com/rancher-sandbox/vardbpkg/pkg/ebuild"
	vdbError "github.com/rancher-sandbox/vardbpkg/pkg/error"
	"github.com/rancher-sandbox/vardbpkg/pkg/output"
)

// NewEbuildCmd returns a new instance of the ebuild subcommand and appends it to
// the root command.
func NewEbuildCmd(root *cobra.Command) *cobra.Command {
	c := &cobra.Command{
		Use:   "ebuild FILE",
		Short: "Print the variables assigned in an ebuild file",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.ReadConfigRun(viper.GetString("config-dir"), cmd.Flags(), vfs.OSFS)
			if err != nil {
				return vdbError.NewFromError(err, vdbError.ReadingConfig)
			}

			cmd.SilenceUsage = true

			// Output settings are shared with the list command
			spec, err := config.ReadListConfig(cfg, cmd.Flags())
			if err != nil {
				cfg.Logger.Errorf("invalid ebuild command setup %v", err)
				return vdbError.NewFromError(err, vdbError.ReadingConfig)
			}

			enc, err := output.NewEncoder(spec.Output, nil)
			if err != nil {
				cfg.Logger.Errorf("invalid output settings: %v", err)
				return vdbError.NewFromError(err, vdbError.InvalidOutput)
			}

			cfg.Logger.Debugf("Reading ebuild: %s", args[0])
			data, err := ebuild.Scan(cfg.Fs, args[0])
			if err != nil {
				cfg.Logger.Errorf("failed reading %s: %v", args[0], err)
				return vdbError.NewFromError(err, vdbError.ReadFile)
			}

			if err = enc.EncodeVariables(cmd.OutOrStdout(), data.Variables()); err != nil {
				cfg.Logger.Errorf("failed writing output: %v", err)
				return vdbError.NewFromError(err, vdbError.EncodeOutput)
			}
			return nil
		},
	}
	root.AddCommand(c)
	addOutputFlags(c)
	return c
}

// register the subcommand into rootCmd
var _ = NewEbuildCmd(rootCmd)
