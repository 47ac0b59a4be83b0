// Copyright (c) 2026, R.I. Pienaar and the Choria Project contributors
//
// SPDX-License-Identifier: Apache-2.0

package archiver

import (
	"fmt"
	"os"
	"path/filepath"
	"runtime"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
	"github.com/spf13/afero"
	"go.uber.org/mock/gomock"
	"golang.org/x/sync/errgroup"

	iu "github.com/choria-io/crosszip/internal/util"
	"github.com/choria-io/crosszip/model"
	"github.com/choria-io/crosszip/model/modelmocks"
)

var _ = Describe("Native tools", func() {
	var (
		mockctl *gomock.Controller
		a       *Archiver
		dir     string
		osfs    afero.Fs
	)

	write := func(path string, content string) {
		GinkgoHelper()
		Expect(os.MkdirAll(filepath.Dir(path), 0755)).To(Succeed())
		Expect(os.WriteFile(path, []byte(content), 0644)).To(Succeed())
	}

	tree := func(path string) map[string]string {
		GinkgoHelper()
		content, err := readTree(osfs, path, path)
		Expect(err).ToNot(HaveOccurred())
		return content
	}

	BeforeEach(func() {
		if runtime.GOOS == "windows" {
			Skip("native tool tests run on posix hosts")
		}

		for _, tool := range []string{"zip", "unzip"} {
			_, found, _ := iu.ExecutableInPath(tool)
			if !found {
				Skip(fmt.Sprintf("%s is not installed", tool))
			}
		}

		mockctl = gomock.NewController(GinkgoT())
		dir = GinkgoT().TempDir()
		osfs = afero.NewOsFs()

		var err error
		a, err = New(modelmocks.NewLogger(mockctl), WithTempRoot(filepath.Join(dir, "tmp")))
		Expect(err).ToNot(HaveOccurred())
		Expect(os.MkdirAll(a.TempRoot(), 0700)).To(Succeed())

		write(filepath.Join(dir, "src", "my data", "top.txt"), "top")
		write(filepath.Join(dir, "src", "my data", "sub dir", "file with 'quotes' and \"double\" quotes.txt"), "nested")
	})

	It("Should round trip directories without the base directory", func() {
		src := filepath.Join(dir, "src", "my data")
		archive := filepath.Join(dir, "out dir", "my data.zip")
		restored := filepath.Join(dir, "restored")

		size, err := a.ArchiveBlocking(src, archive, false)
		Expect(err).ToNot(HaveOccurred())
		Expect(size).To(BeNumerically(">", 0))

		Expect(a.ExtractBlocking(archive, restored)).To(Succeed())
		Expect(tree(restored)).To(Equal(tree(src)))
	})

	It("Should round trip directories with the base directory", func() {
		src := filepath.Join(dir, "src", "my data")
		archive := filepath.Join(dir, "data.zip")
		restored := filepath.Join(dir, "restored")

		_, err := a.ArchiveBlocking(src, archive, true)
		Expect(err).ToNot(HaveOccurred())
		Expect(a.ExtractBlocking(archive, restored)).To(Succeed())

		entries, err := os.ReadDir(restored)
		Expect(err).ToNot(HaveOccurred())
		Expect(entries).To(HaveLen(1))
		Expect(entries[0].Name()).To(Equal("my data"))
		Expect(tree(filepath.Join(restored, "my data"))).To(Equal(tree(src)))
	})

	It("Should archive single files unwrapped", func() {
		src := filepath.Join(dir, "src", "my data", "top.txt")

		for i, includeBase := range []bool{false, true} {
			archive := filepath.Join(dir, fmt.Sprintf("file-%d.zip", i))
			restored := filepath.Join(dir, fmt.Sprintf("restored-%d", i))

			_, err := a.ArchiveBlocking(src, archive, includeBase)
			Expect(err).ToNot(HaveOccurred())
			Expect(a.ExtractBlocking(archive, restored)).To(Succeed())
			Expect(tree(restored)).To(Equal(map[string]string{"top.txt": "top"}))
		}

		entries, err := os.ReadDir(a.TempRoot())
		Expect(err).ToNot(HaveOccurred())
		Expect(entries).To(BeEmpty())
	})

	It("Should write archives to the exact destination when it has no extension", func() {
		src := filepath.Join(dir, "src", "my data")
		archive := filepath.Join(dir, "out", "backup")
		restored := filepath.Join(dir, "restored")

		size, err := a.ArchiveBlocking(src, archive, false)
		Expect(err).ToNot(HaveOccurred())

		stat, err := os.Stat(archive)
		Expect(err).ToNot(HaveOccurred())
		Expect(stat.Mode().IsRegular()).To(BeTrue())
		Expect(size).To(Equal(stat.Size()))

		_, err = os.Stat(archive + ".zip")
		Expect(os.IsNotExist(err)).To(BeTrue())

		Expect(a.ExtractBlocking(archive, restored)).To(Succeed())
		Expect(tree(restored)).To(Equal(tree(src)))

		entries, err := os.ReadDir(a.TempRoot())
		Expect(err).ToNot(HaveOccurred())
		Expect(entries).To(BeEmpty())
	})

	It("Should not update an existing suffixed archive next to an extensionless destination", func() {
		archive := filepath.Join(dir, "out", "backup")
		restored := filepath.Join(dir, "restored")

		_, err := a.ArchiveBlocking(filepath.Join(dir, "src", "my data", "sub dir"), archive+".zip", false)
		Expect(err).ToNot(HaveOccurred())
		before, err := os.ReadFile(archive + ".zip")
		Expect(err).ToNot(HaveOccurred())

		_, err = a.ArchiveBlocking(filepath.Join(dir, "src", "my data", "top.txt"), archive, false)
		Expect(err).ToNot(HaveOccurred())

		Expect(os.ReadFile(archive + ".zip")).To(Equal(before))

		Expect(a.ExtractBlocking(archive, restored)).To(Succeed())
		Expect(tree(restored)).To(Equal(map[string]string{"top.txt": "top"}))
	})

	It("Should refuse to replace the source with the archive", func() {
		src := filepath.Join(dir, "src", "my data")

		_, err := a.ArchiveBlocking(src, src, false)
		Expect(err).To(MatchError(model.ErrInvalidRequest))
		_, err = a.ArchiveBlocking(src, filepath.Join(dir, "src"), false)
		Expect(err).To(MatchError(model.ErrInvalidRequest))

		Expect(tree(src)).To(HaveKeyWithValue("top.txt", "top"))
	})

	It("Should overwrite on repeated extraction and keep unrelated files", func() {
		src := filepath.Join(dir, "src", "my data")
		archive := filepath.Join(dir, "data.zip")
		restored := filepath.Join(dir, "restored")

		_, err := a.ArchiveBlocking(src, archive, false)
		Expect(err).ToNot(HaveOccurred())

		write(filepath.Join(restored, "top.txt"), "changed locally")
		write(filepath.Join(restored, "mine.txt"), "mine")

		Expect(a.ExtractBlocking(archive, restored)).To(Succeed())
		Expect(a.ExtractBlocking(archive, restored)).To(Succeed())

		content := tree(restored)
		Expect(content).To(HaveKeyWithValue("top.txt", "top"))
		Expect(content).To(HaveKeyWithValue("mine.txt", "mine"))
	})

	It("Should fail for invalid destination parents without creating an archive", func() {
		write(filepath.Join(dir, "file"), "x")

		_, err := a.ArchiveBlocking(filepath.Join(dir, "src"), filepath.Join(dir, "file", "data.zip"), false)
		Expect(err).To(MatchError(model.ErrInvalidDestinationParent))
	})

	It("Should report corrupt archives with the tool output", func() {
		write(filepath.Join(dir, "bad.zip"), "this is not a zip file")

		err := a.ExtractBlocking(filepath.Join(dir, "bad.zip"), filepath.Join(dir, "restored"))
		Expect(err).To(MatchError(model.ErrBackendFailure))
		Expect(err).To(MatchError(ContainSubstring("unzip")))
	})

	It("Should isolate concurrent archives of the same file", func() {
		src := filepath.Join(dir, "src", "my data", "top.txt")
		var g errgroup.Group

		for i := range 5 {
			g.Go(func() error {
				_, err := a.ArchiveBlocking(src, filepath.Join(dir, fmt.Sprintf("c-%d.zip", i)), false)
				return err
			})
		}
		Expect(g.Wait()).To(Succeed())

		for i := range 5 {
			restored := filepath.Join(dir, fmt.Sprintf("c-%d", i))
			Expect(a.ExtractBlocking(filepath.Join(dir, fmt.Sprintf("c-%d.zip", i)), restored)).To(Succeed())
			Expect(tree(restored)).To(Equal(map[string]string{"top.txt": "top"}))
		}
	})
})
