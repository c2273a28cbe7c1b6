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

package v1

import "fmt"

// Package is a single installed package as recorded in the vardb.
// Category and Package are the directory names, everything else comes from
// the metadata files found in the package directory and is empty when missing.
type Package struct {
	Category    string `json:"category" yaml:"category"`
	Package     string `json:"package" yaml:"package"`
	Name        string `json:"name" yaml:"name"`
	Version     string `json:"version" yaml:"version"`
	Description string `json:"description" yaml:"description"`
	BuildTime   string `json:"buildtime" yaml:"buildtime"`
	Homepage    string `json:"homepage" yaml:"homepage"`
	IUse        string `json:"iuse" yaml:"iuse"`
	Keywords    string `json:"keywords" yaml:"keywords"`
	License     string `json:"license" yaml:"license"`
	RDepend     string `json:"rdepend" yaml:"rdepend"`
	Repository  string `json:"repository" yaml:"repository"`
	Slot        string `json:"slot" yaml:"slot"`
	Use         string `json:"use" yaml:"use"`
	EAPI        string `json:"eapi" yaml:"eapi"`
	BinPkgMD5   string `json:"binpkgmd5" yaml:"binpkgmd5"`
	Size        string `json:"size" yaml:"size"`
}

// Atom returns the category qualified package directory, e.g. app-editors/vim-9.0
func (p Package) Atom() string {
	return fmt.Sprintf("%s/%s", p.Category, p.Package)
}

// PackageFields lists the serialized field names in declaration order
var PackageFields = []string{
	"category", "package", "name", "version", "description", "buildtime",
	"homepage", "iuse", "keywords", "license", "rdepend", "repository",
	"slot", "use", "eapi", "binpkgmd5", "size",
}

// Field returns the value of the field with the given serialized name
func (p Package) Field(name string) (string, bool) {
	switch name {
	case "category":
		return p.Category, true
	case "package":
		return p.Package, true
	case "name":
		return p.Name, true
	case "version":
		return p.Version, true
	case "description":
		return p.Description, true
	case "buildtime":
		return p.BuildTime, true
	case "homepage":
		return p.Homepage, true
	case "iuse":
		return p.IUse, true
	case "keywords":
		return p.Keywords, true
	case "license":
		return p.License, true
	case "rdepend":
		return p.RDepend, true
	case "repository":
		return p.Repository, true
	case "slot":
		return p.Slot, true
	case "use":
		return p.Use, true
	case "eapi":
		return p.EAPI, true
	case "binpkgmd5":
		return p.BinPkgMD5, true
	case "size":
		return p.Size, true
	}
	return "", false
}
