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
	vdbError "github.com/rancher-sandbox/vardbpkg/pkg/error"
	"github.com/rancher-sandbox/vardbpkg/pkg/output"
	"github.com/rancher-sandbox/vardbpkg/pkg/vardb"
)

// NewListCmd returns a new instance of the list subcommand and appends it to
// the root command.
func NewListCmd(root *cobra.Command) *cobra.Command {
	c := &cobra.Command{
		Use:   "list [path]",
		Short: "List the packages recorded in a vardb directory",
		Long: "List the packages recorded in a vardb directory, /var/db/pkg by default.\n" +
			"Unreadable categories, packages or metadata files are skipped.",
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.ReadConfigRun(viper.GetString("config-dir"), cmd.Flags(), vfs.OSFS)
			if err != nil {
				return vdbError.NewFromError(err, vdbError.ReadingConfig)
			}

			// Set this after parsing of the flags, so it fails on parsing and prints usage properly
			cmd.SilenceUsage = true

			spec, err := config.ReadListConfig(cfg, cmd.Flags())
			if err != nil {
				cfg.Logger.Errorf("invalid list command setup %v", err)
				return vdbError.NewFromError(err, vdbError.ReadingConfig)
			}
			spec.Path = scanPath(args, spec.Path)

			enc, err := output.NewEncoder(spec.Output, spec.Fields)
			if err != nil {
				cfg.Logger.Errorf("invalid output settings: %v", err)
				return vdbError.NewFromError(err, vdbError.InvalidOutput)
			}

			cfg.Logger.Infof("Scanning directory: %s", spec.Path)
			pkgs, err := vardb.NewParser(cfg).Parse(spec.Path)
			if err != nil {
				cfg.Logger.Errorf("failed scanning %s: %v", spec.Path, err)
				return scanError(err)
			}
			if spec.Sort {
				vardb.SortPackages(pkgs)
			}

			if err = enc.Encode(cmd.OutOrStdout(), pkgs); err != nil {
				cfg.Logger.Errorf("failed writing output: %v", err)
				return vdbError.NewFromError(err, vdbError.EncodeOutput)
			}
			return nil
		},
	}
	root.AddCommand(c)
	addListFlags(c)
	return c
}

// register the subcommand into rootCmd
var _ = NewListCmd(rootCmd)
