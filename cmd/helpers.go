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
	"errors"

	"github.com/rancher-sandbox/vardbpkg/pkg/constants"
	vdbError "github.com/rancher-sandbox/vardbpkg/pkg/error"
	"github.com/rancher-sandbox/vardbpkg/pkg/vardb"
)

// scanError wraps a parser error with its exit code
func scanError(err error) error {
	if errors.Is(err, vardb.ErrRootUnreadable) {
		return vdbError.NewFromError(err, vdbError.RootUnreadable)
	}
	return vdbError.NewFromError(err, vdbError.Unknown)
}

// scanPath returns the path given as argument or the configured one
func scanPath(args []string, configured string) string {
	if len(args) > 0 && args[0] != "" {
		return args[0]
	}
	if configured == "" {
		return constants.DefaultVarDbPath
	}
	return configured
}
