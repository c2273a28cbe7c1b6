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

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
	"github.com/spf13/viper"
	"github.com/twpayne/go-vfs/v4/vfst"

	vdbError "github.com/rancher-sandbox/vardbpkg/pkg/error"
)

var _ = Describe("Ebuild", Label("ebuild", "cmd"), func() {
	var fs *vfst.TestFS
	var cleanup func()
	var err error
	var file, configDir string

	BeforeEach(func() {
		rootCmd = NewRootCmd()
		_ = NewEbuildCmd(rootCmd)
		fs, cleanup, err = vfst.NewTestFS(map[string]interface{}{
			"/repo/app-misc/hello-1.0.ebuild": "EAPI=8\n\nDESCRIPTION=\"Prints a greeting\"\nSLOT=\"0\"\n",
			"/etc/vardbpkg/.keep":             "",
		})
		Expect(err).Should(BeNil())
		file, err = fs.RawPath("/repo/app-misc/hello-1.0.ebuild")
		Expect(err).Should(BeNil())
		configDir, err = fs.RawPath("/etc/vardbpkg")
		Expect(err).Should(BeNil())
	})
	AfterEach(func() {
		viper.Reset()
		cleanup()
	})

	It("prints the variables as json", func() {
		_, output, err := executeCommandC(rootCmd, "ebuild", file, "--quiet", "--config-dir", configDir)
		Expect(err).To(BeNil())
		vars := map[string]string{}
		Expect(json.Unmarshal([]byte(output), &vars)).To(Succeed(), output)
		Expect(vars).To(HaveKeyWithValue("eapi", "8"))
		Expect(vars).To(HaveKeyWithValue("description", "Prints a greeting"))
	})
	It("prints the variables as text", Label("flags"), func() {
		_, output, err := executeCommandC(rootCmd, "ebuild", file, "--quiet", "--config-dir", configDir, "-o", "text")
		Expect(err).To(BeNil())
		Expect(output).To(ContainSubstring("DESCRIPTION=\"Prints a greeting\"\n"))
		Expect(output).To(ContainSubstring("SLOT=\"0\"\n"))
	})
	It("fails on a missing file", func() {
		_, _, err := executeCommandC(rootCmd, "ebuild", file+".missing", "--quiet", "--config-dir", configDir)
		Expect(err).To(HaveOccurred())
		Expect(exitCode(err)).To(Equal(vdbError.ReadFile))
	})
	It("requires a file argument", func() {
		_, _, err := executeCommandC(rootCmd, "ebuild")
		Expect(err).To(HaveOccurred())
	})
})
