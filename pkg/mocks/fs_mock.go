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

package mocks

import (
	"io/fs"
	"os"
	"syscall"

	v1 "github.com/rancher-sandbox/vardbpkg/pkg/types/v1"
)

var _ v1.FS = (*FakeFS)(nil)

// FakeFS wraps a real FS and fails the reads of selected paths with EACCES,
// so tests can simulate permission restricted entries even when run as root.
type FakeFS struct {
	v1.FS
	ErrorOnReadDir  map[string]bool
	ErrorOnReadFile map[string]bool
	ReadDirCalls    []string
}

// NewFakeFS returns a FakeFS over the given filesystem with no failures set
func NewFakeFS(fs v1.FS) *FakeFS {
	return &FakeFS{
		FS:              fs,
		ErrorOnReadDir:  map[string]bool{},
		ErrorOnReadFile: map[string]bool{},
	}
}

// ReadDir will return a permission error if the path is in ErrorOnReadDir
func (f *FakeFS) ReadDir(dirname string) ([]fs.DirEntry, error) {
	f.ReadDirCalls = append(f.ReadDirCalls, dirname)
	if f.ErrorOnReadDir[dirname] {
		return nil, &os.PathError{Op: "readdirent", Path: dirname, Err: syscall.EACCES}
	}
	return f.FS.ReadDir(dirname)
}

// ReadFile will return a permission error if the path is in ErrorOnReadFile
func (f *FakeFS) ReadFile(filename string) ([]byte, error) {
	if f.ErrorOnReadFile[filename] {
		return nil, &os.PathError{Op: "open", Path: filename, Err: syscall.EACCES}
	}
	return f.FS.ReadFile(filename)
}
