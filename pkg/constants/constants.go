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

package constants

const (
	// DefaultVarDbPath is the Portage installed packages database
	DefaultVarDbPath = "/var/db/pkg"
	ConfigDir        = "/etc/vardbpkg"
	ConfigFile       = "config.yaml"
	EnvFile          = "vardbpkg.env"
	EnvPrefix        = "VARDBPKG"

	OutputJSON = "json"
	OutputYAML = "yaml"
	OutputText = "text"
)

// Metadata file names written by Portage into each package directory
const (
	BuildTimeFile   = "BUILD_TIME"
	DescriptionFile = "DESCRIPTION"
	HomepageFile    = "HOMEPAGE"
	IUseFile        = "IUSE"
	KeywordsFile    = "KEYWORDS"
	LicenseFile     = "LICENSE"
	RDependFile     = "RDEPEND"
	RepositoryFile  = "repository"
	SlotFile        = "SLOT"
	UseFile         = "USE"
	EAPIFile        = "EAPI"
	BinPkgMD5File   = "BINPKGMD5"
	SizeFile        = "SIZE"
)

// GetOutputFormats returns the supported output encodings
func GetOutputFormats() []string {
	return []string{OutputJSON, OutputYAML, OutputText}
}
