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
	"encoding/json"
	"os"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
	"github.com/sanity-io/litter"
	"github.com/spf13/viper"
	"github.com/twpayne/go-vfs/v4/vfst"

	vdbError "github.com/rancher-sandbox/vardbpkg/pkg/error"
)

func exitCode(err error) int {
	vErr, ok := err.(*vdbError.VarDbError)
	ExpectWithOffset(1, ok).To(BeTrue(), litter.Sdump(err))
	return vErr.ExitCode()
}

var _ = Describe("List", Label("list", "cmd"), func() {
	var fs *vfst.TestFS
	var cleanup func()
	var err error
	var root, configDir string

	BeforeEach(func() {
		rootCmd = NewRootCmd()
		_ = NewListCmd(rootCmd)
		fs, cleanup, err = vfst.NewTestFS(map[string]interface{}{
			"/db/sys-libs/glibc-2.38": map[string]interface{}{
				"DESCRIPTION": "GNU libc C library\n",
				"SLOT":        "2.2\n",
				"SIZE":        "52428800\n",
			},
			"/db/app-editors/vim-9.0/DESCRIPTION": "Vi IMproved\n",
			"/etc/vardbpkg/.keep":                 "",
		})
		Expect(err).Should(BeNil())
		root, err = fs.RawPath("/db")
		Expect(err).Should(BeNil())
		configDir, err = fs.RawPath("/etc/vardbpkg")
		Expect(err).Should(BeNil())
	})
	AfterEach(func() {
		viper.Reset()
		os.Unsetenv("VARDBPKG_OUTPUT")
		cleanup()
	})

	It("prints the packages as json by default", func() {
		_, output, err := executeCommandC(rootCmd, "list", root, "--quiet", "--config-dir", configDir)
		Expect(err).To(BeNil())
		var pkgs []map[string]interface{}
		Expect(json.Unmarshal([]byte(output), &pkgs)).To(Succeed(), output)
		Expect(pkgs).To(HaveLen(2))
	})
	It("sorts and selects fields", Label("flags"), func() {
		_, output, err := executeCommandC(
			rootCmd, "list", root, "--quiet", "--config-dir", configDir,
			"--sort", "--fields", "category,package,slot",
		)
		Expect(err).To(BeNil())
		var pkgs []map[string]string
		Expect(json.Unmarshal([]byte(output), &pkgs)).To(Succeed(), output)
		Expect(pkgs).To(Equal([]map[string]string{
			{"category": "app-editors", "package": "vim-9.0", "slot": ""},
			{"category": "sys-libs", "package": "glibc-2.38", "slot": "2.2"},
		}))
	})
	It("prints a table", Label("flags"), func() {
		_, output, err := executeCommandC(rootCmd, "list", root, "--quiet", "--config-dir", configDir, "-o", "text")
		Expect(err).To(BeNil())
		Expect(output).To(ContainSubstring("CATEGORY"))
		Expect(output).To(ContainSubstring("GNU libc C library"))
		Expect(output).To(ContainSubstring("50MiB"))
	})
	It("reads the output format from the config file", func() {
		Expect(fs.WriteFile("/etc/vardbpkg/config.yaml", []byte("output: yaml\nsort: true\n"), 0644)).To(Succeed())
		_, output, err := executeCommandC(rootCmd, "list", root, "--quiet", "--config-dir", configDir)
		Expect(err).To(BeNil())
		Expect(output).To(HavePrefix("- category: app-editors"))
	})
	It("reads the output format from the environment", func() {
		Expect(os.Setenv("VARDBPKG_OUTPUT", "text")).To(Succeed())
		_, output, err := executeCommandC(rootCmd, "list", root, "--quiet", "--config-dir", configDir)
		Expect(err).To(BeNil())
		Expect(output).To(HavePrefix("CATEGORY"))
	})
	It("reads the root path from the config file", func() {
		Expect(fs.WriteFile("/etc/vardbpkg/config.yaml", []byte("path: "+root+"\n"), 0644)).To(Succeed())
		_, output, err := executeCommandC(rootCmd, "list", "--quiet", "--config-dir", configDir, "-o", "text")
		Expect(err).To(BeNil())
		Expect(output).To(ContainSubstring("Vi IMproved"))
	})
	It("fails with an unknown output format", func() {
		_, _, err := executeCommandC(rootCmd, "list", root, "--quiet", "--config-dir", configDir, "-o", "xml")
		Expect(err).To(HaveOccurred())
		Expect(exitCode(err)).To(Equal(vdbError.InvalidOutput))
	})
	It("fails with an unknown field", func() {
		_, _, err := executeCommandC(rootCmd, "list", root, "--quiet", "--config-dir", configDir, "--fields", "bogus")
		Expect(err).To(HaveOccurred())
		Expect(exitCode(err)).To(Equal(vdbError.InvalidOutput))
	})
	It("fails on an unreadable root", func() {
		_, _, err := executeCommandC(rootCmd, "list", root+"/missing", "--quiet", "--config-dir", configDir)
		Expect(err).To(HaveOccurred())
		Expect(exitCode(err)).To(Equal(vdbError.RootUnreadable))
	})
	It("rejects more than one path", func() {
		_, _, err := executeCommandC(rootCmd, "list", root, root)
		Expect(err).To(HaveOccurred())
	})
})
