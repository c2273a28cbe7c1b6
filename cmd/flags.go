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
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/rancher-sandbox/vardbpkg/pkg/constants"
	v1 "github.com/rancher-sandbox/vardbpkg/pkg/types/v1"
)

// addOutputFlags adds flags related to the output encoding
func addOutputFlags(cmd *cobra.Command) {
	cmd.Flags().StringP("output", "o", constants.OutputJSON,
		fmt.Sprintf("Output format, one of: %s", strings.Join(constants.GetOutputFormats(), ", ")))
}

// addListFlags adds flags of the list command
func addListFlags(cmd *cobra.Command) {
	addOutputFlags(cmd)
	cmd.Flags().StringSlice("fields", []string{},
		fmt.Sprintf("Comma separated record fields to print, any of: %s", strings.Join(v1.PackageFields, ", ")))
	cmd.Flags().Bool("sort", false, "Sort packages by category and name")
}
