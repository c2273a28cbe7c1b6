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

package utils_test

import (
	"os"
	"testing"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
	"github.com/twpayne/go-vfs/v4/vfst"

	"github.com/rancher-sandbox/vardbpkg/pkg/utils"
)

func TestUtilsSuite(t *testing.T) {
	RegisterFailHandler(Fail)
	RunSpecs(t, "Utils test suite")
}

var _ = Describe("Utils", Label("utils"), func() {
	var fs *vfst.TestFS
	var cleanup func()
	var err error

	BeforeEach(func() {
		fs, cleanup, err = vfst.NewTestFS(map[string]interface{}{
			"/db/sys-libs/glibc-2.38/SLOT":  "2.2\n",
			"/db/sys-libs/glibc-2.38/EMPTY": "",
			"/db/app-editors/vim-9.0/DESCRIPTION": "  Vi IMproved  \nsecond line\n",
			"/db/README":                          "not a category",
		})
		Expect(err).Should(BeNil())
	})
	AfterEach(func() {
		cleanup()
	})

	Describe("Exists", Label("exists"), func() {
		It("returns true for existing files and dirs", func() {
			e, err := utils.Exists(fs, "/db/README")
			Expect(err).ShouldNot(HaveOccurred())
			Expect(e).To(BeTrue())
			e, err = utils.Exists(fs, "/db/sys-libs")
			Expect(err).ShouldNot(HaveOccurred())
			Expect(e).To(BeTrue())
		})
		It("returns false without error for missing paths", func() {
			e, err := utils.Exists(fs, "/db/dev-lang")
			Expect(err).ShouldNot(HaveOccurred())
			Expect(e).To(BeFalse())
		})
	})

	Describe("IsDir", Label("isdir"), func() {
		It("tells dirs and files apart", func() {
			d, err := utils.IsDir(fs, "/db/sys-libs")
			Expect(err).ShouldNot(HaveOccurred())
			Expect(d).To(BeTrue())
			d, err = utils.IsDir(fs, "/db/README")
			Expect(err).ShouldNot(HaveOccurred())
			Expect(d).To(BeFalse())
		})
		It("follows symlinks", func() {
			Expect(fs.Symlink("/db/sys-libs", "/db/linked")).To(Succeed())
			d, err := utils.IsDir(fs, "/db/linked")
			Expect(err).ShouldNot(HaveOccurred())
			Expect(d).To(BeTrue())
		})
		It("fails on missing paths", func() {
			_, err := utils.IsDir(fs, "/db/missing")
			Expect(os.IsNotExist(err)).To(BeTrue())
		})
	})

	Describe("ReadTrimmed", Label("read"), func() {
		It("returns the whole trimmed content", func() {
			s, err := utils.ReadTrimmed(fs, "/db/app-editors/vim-9.0/DESCRIPTION")
			Expect(err).ShouldNot(HaveOccurred())
			Expect(s).To(Equal("Vi IMproved  \nsecond line"))
		})
		It("fails on missing files", func() {
			_, err := utils.ReadTrimmed(fs, "/db/sys-libs/glibc-2.38/DESCRIPTION")
			Expect(err).Should(HaveOccurred())
		})
	})

	Describe("ReadFirstLine", Label("read"), func() {
		It("returns the trimmed first line", func() {
			s, err := utils.ReadFirstLine(fs, "/db/app-editors/vim-9.0/DESCRIPTION")
			Expect(err).ShouldNot(HaveOccurred())
			Expect(s).To(Equal("Vi IMproved"))
			s, err = utils.ReadFirstLine(fs, "/db/sys-libs/glibc-2.38/SLOT")
			Expect(err).ShouldNot(HaveOccurred())
			Expect(s).To(Equal("2.2"))
		})
		It("returns an empty string for empty files", func() {
			s, err := utils.ReadFirstLine(fs, "/db/sys-libs/glibc-2.38/EMPTY")
			Expect(err).ShouldNot(HaveOccurred())
			Expect(s).To(BeEmpty())
		})
		It("fails on missing files", func() {
			_, err := utils.ReadFirstLine(fs, "/db/sys-libs/glibc-2.38/nonexistent")
			Expect(err).Should(HaveOccurred())
		})
	})
})
