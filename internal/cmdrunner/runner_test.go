// Copyright (c) 2026, R.I. Pienaar and the Choria Project contributors
//
// SPDX-License-Identifier: Apache-2.0

package cmdrunner

import (
	"context"
	"os"
	"path/filepath"
	"runtime"
	"strings"
	"testing"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
	"go.uber.org/mock/gomock"

	"github.com/choria-io/crosszip/model"
	"github.com/choria-io/crosszip/model/modelmocks"
)

func TestCommandRunner(t *testing.T) {
	RegisterFailHandler(Fail)
	RunSpecs(t, "Internal/CmdRunner")
}

var _ = Describe("CommandRunner", func() {
	var (
		mockctl *gomock.Controller
		runner  *CommandRunner
		err     error
	)

	BeforeEach(func() {
		if runtime.GOOS == "windows" {
			Skip("posix shell required")
		}

		mockctl = gomock.NewController(GinkgoT())
		runner, err = NewCommandRunner(modelmocks.NewLogger(mockctl))
		Expect(err).ToNot(HaveOccurred())
	})

	Describe("ExecuteWithOptions", func() {
		It("Should require a command", func() {
			_, _, _, err := runner.ExecuteWithOptions(context.Background(), model.ExtendedExecOptions{})
			Expect(err).To(MatchError("command not specified"))
		})

		It("Should capture stdout and stderr separately", func() {
			stdout, stderr, exitCode, err := runner.Execute(context.Background(), "/bin/sh", "-c", "echo out; echo err >&2")
			Expect(err).ToNot(HaveOccurred())
			Expect(exitCode).To(Equal(0))
			Expect(string(stdout)).To(Equal("out\n"))
			Expect(string(stderr)).To(Equal("err\n"))
		})

		It("Should report non zero exit codes without an error", func() {
			_, stderr, exitCode, err := runner.Execute(context.Background(), "/bin/sh", "-c", "echo failed >&2; exit 3")
			Expect(err).ToNot(HaveOccurred())
			Expect(exitCode).To(Equal(3))
			Expect(string(stderr)).To(Equal("failed\n"))
		})

		It("Should return an error when the command cannot be found", func() {
			_, _, exitCode, err := runner.Execute(context.Background(), "crosszip-does-not-exist")
			Expect(err).To(HaveOccurred())
			Expect(exitCode).To(Equal(-1))
		})

		It("Should pass arguments without shell interpretation", func() {
			arg := `it's a "quoted" $HOME; path`
			stdout, _, _, err := runner.Execute(context.Background(), "/bin/sh", "-c", `printf '%s' "$1"`, "sh", arg)
			Expect(err).ToNot(HaveOccurred())
			Expect(string(stdout)).To(Equal(arg))
		})

		It("Should run in the requested working directory", func() {
			dir, err := filepath.EvalSymlinks(GinkgoT().TempDir())
			Expect(err).ToNot(HaveOccurred())

			stdout, _, _, err := runner.ExecuteWithOptions(context.Background(), model.ExtendedExecOptions{
				Command: "/bin/sh",
				Args:    []string{"-c", "pwd -P"},
				Cwd:     dir,
			})
			Expect(err).ToNot(HaveOccurred())
			Expect(strings.TrimSpace(string(stdout))).To(Equal(dir))
		})

		It("Should add the environment to the inherited one", func() {
			stdout, _, _, err := runner.ExecuteWithOptions(context.Background(), model.ExtendedExecOptions{
				Command:     "/bin/sh",
				Args:        []string{"-c", `printf '%s' "$CROSSZIP_TEST"`},
				Environment: []string{"CROSSZIP_TEST=value with spaces"},
			})
			Expect(err).ToNot(HaveOccurred())
			Expect(string(stdout)).To(Equal("value with spaces"))
		})

		It("Should use the explicit path over the command lookup", func() {
			stdout, _, exitCode, err := runner.ExecuteWithOptions(context.Background(), model.ExtendedExecOptions{
				Command: "crosszip-shell",
				Path:    "/bin/sh",
				Args:    []string{"-c", "echo via path"},
			})
			Expect(err).ToNot(HaveOccurred())
			Expect(exitCode).To(Equal(0))
			Expect(string(stdout)).To(Equal("via path\n"))
		})

		It("Should not truncate large output", func() {
			dir := GinkgoT().TempDir()
			big := filepath.Join(dir, "big.txt")
			Expect(os.WriteFile(big, []byte(strings.Repeat("0123456789abcdef", 512*1024)), 0644)).To(Succeed())

			stdout, _, exitCode, err := runner.Execute(context.Background(), "/bin/cat", big)
			Expect(err).ToNot(HaveOccurred())
			Expect(exitCode).To(Equal(0))
			Expect(stdout).To(HaveLen(16 * 512 * 1024))
		})
	})
})
