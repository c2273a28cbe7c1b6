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

package vardb

import (
	"errors"
	"fmt"
	"io/fs"
	"path/filepath"
	"sort"
	"strings"

	"github.com/hashicorp/go-multierror"

	"github.com/rancher-sandbox/vardbpkg/pkg/config"
	"github.com/rancher-sandbox/vardbpkg/pkg/constants"
	v1 "github.com/rancher-sandbox/vardbpkg/pkg/types/v1"
	"github.com/rancher-sandbox/vardbpkg/pkg/utils"
)

// ErrRootUnreadable is returned when the vardb root itself cannot be listed
var ErrRootUnreadable = errors.New("vardb root unreadable")

// Parser scans a vardb tree through the configured filesystem
type Parser struct {
	cfg *v1.Config
}

func NewParser(cfg *v1.Config) *Parser {
	return &Parser{cfg: cfg}
}

// ParseVarDb scans the vardb at root on the host filesystem, logging nothing
func ParseVarDb(root string) ([]v1.Package, error) {
	cfg := config.NewConfig(config.WithLogger(v1.NewNullLogger()))
	return NewParser(cfg).Parse(root)
}

// Parse walks <root>/<category>/<package> and returns one record per package
// directory found. Only a root that cannot be listed is an error, any other
// unreadable entry is skipped. The returned order is not defined.
func (p *Parser) Parse(root string) ([]v1.Package, error) {
	var skipped error

	entries, err := p.cfg.Fs.ReadDir(root)
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %w", ErrRootUnreadable, root, err)
	}

	packages := []v1.Package{}
	for _, catEntry := range entries {
		catPath := filepath.Join(root, catEntry.Name())
		if ok, err := p.isDir(catEntry, catPath); !ok {
			if err != nil {
				skipped = multierror.Append(skipped, err)
			}
			continue
		}

		pkgEntries, err := p.cfg.Fs.ReadDir(catPath)
		if err != nil {
			skipped = multierror.Append(skipped, err)
			continue
		}
		for _, pkgEntry := range pkgEntries {
			pkgPath := filepath.Join(catPath, pkgEntry.Name())
			if ok, err := p.isDir(pkgEntry, pkgPath); !ok {
				if err != nil {
					skipped = multierror.Append(skipped, err)
				}
				continue
			}
			pkg, err := p.parsePackageDir(catEntry.Name(), pkgEntry.Name(), pkgPath)
			if err != nil {
				skipped = multierror.Append(skipped, err)
			}
			if pkg != nil {
				packages = append(packages, *pkg)
			}
		}
	}

	if skipped != nil {
		p.cfg.Logger.Debugf("Skipped unreadable entries while scanning %s: %s", root, skipped.Error())
	}
	p.cfg.Logger.Debugf("Found %d packages in %s", len(packages), root)
	return packages, nil
}

// isDir reports whether the entry is a directory, resolving symlinks. A
// dangling symlink reports its Stat error.
func (p *Parser) isDir(entry fs.DirEntry, path string) (bool, error) {
	if entry.IsDir() {
		return true, nil
	}
	if entry.Type()&fs.ModeSymlink == 0 {
		return false, nil
	}
	return utils.IsDir(p.cfg.Fs, path)
}

// parsePackageDir returns nil if the directory cannot be listed. Metadata
// files which are listed but cannot be read are left empty and reported in
// the returned error along with the record.
func (p *Parser) parsePackageDir(category, dirName, path string) (*v1.Package, error) {
	var errs error

	entries, err := p.cfg.Fs.ReadDir(path)
	if err != nil {
		return nil, err
	}
	files := map[string]bool{}
	for _, e := range entries {
		if !e.IsDir() {
			files[e.Name()] = true
		}
	}

	name, version := SplitPackageVersion(dirName)
	pkg := &v1.Package{
		Category: category,
		Package:  dirName,
		Name:     name,
		Version:  version,
	}

	metadata := []struct {
		file  string
		field *string
		read  func(v1.FS, string) (string, error)
	}{
		{constants.DescriptionFile, &pkg.Description, utils.ReadTrimmed},
		{constants.BuildTimeFile, &pkg.BuildTime, utils.ReadFirstLine},
		{constants.HomepageFile, &pkg.Homepage, utils.ReadFirstLine},
		{constants.IUseFile, &pkg.IUse, utils.ReadFirstLine},
		{constants.KeywordsFile, &pkg.Keywords, utils.ReadFirstLine},
		{constants.LicenseFile, &pkg.License, utils.ReadFirstLine},
		{constants.RDependFile, &pkg.RDepend, utils.ReadFirstLine},
		{constants.RepositoryFile, &pkg.Repository, utils.ReadFirstLine},
		{constants.SlotFile, &pkg.Slot, utils.ReadFirstLine},
		{constants.UseFile, &pkg.Use, utils.ReadFirstLine},
		{constants.EAPIFile, &pkg.EAPI, utils.ReadFirstLine},
		{constants.BinPkgMD5File, &pkg.BinPkgMD5, utils.ReadFirstLine},
		{constants.SizeFile, &pkg.Size, utils.ReadFirstLine},
	}
	for _, m := range metadata {
		if !files[m.file] {
			continue
		}
		value, err := m.read(p.cfg.Fs, filepath.Join(path, m.file))
		if err != nil {
			errs = multierror.Append(errs, err)
			continue
		}
		*m.field = value
	}
	return pkg, errs
}

// SplitPackageVersion splits a package directory name at the first dash
// followed by a digit, e.g. "my-pkg-name-1.2.3-r1" gives "my-pkg-name" and
// "1.2.3-r1". Names without such a dash have no version.
func SplitPackageVersion(dirName string) (string, string) {
	parts := strings.Split(dirName, "-")
	for i := 1; i < len(parts); i++ {
		if parts[i] != "" && parts[i][0] >= '0' && parts[i][0] <= '9' {
			return strings.Join(parts[:i], "-"), strings.Join(parts[i:], "-")
		}
	}
	return dirName, ""
}

// SortPackages orders records by category and then by package directory name
func SortPackages(pkgs []v1.Package) {
	sort.SliceStable(pkgs, func(i, j int) bool {
		if pkgs[i].Category != pkgs[j].Category {
			return pkgs[i].Category < pkgs[j].Category
		}
		return pkgs[i].Package < pkgs[j].Package
	})
}
