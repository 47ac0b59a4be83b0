// Copyright (c) 2026, R.I. Pienaar and the Choria Project contributors
//
// SPDX-License-Identifier: Apache-2.0

// Package fsys implements model.FileSystem on top of afero
package fsys

import (
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"syscall"

	"github.com/spf13/afero"

	"github.com/choria-io/crosszip/model"
)

var _ model.FileSystem = (*FileSystem)(nil)

// FileSystem implements model.FileSystem using an afero.Fs
type FileSystem struct {
	fs afero.Fs
}

// New creates a FileSystem backed by fs
func New(fs afero.Fs) *FileSystem {
	return &FileSystem{fs: fs}
}

// NewOsFileSystem creates a FileSystem backed by the operating system
func NewOsFileSystem() *FileSystem {
	return New(afero.NewOsFs())
}

// IsAbsent reports if err means nothing exists at a path, including when a parent is not a directory
func IsAbsent(err error) bool {
	return errors.Is(err, fs.ErrNotExist) || errors.Is(err, syscall.ENOTDIR)
}

func (f *FileSystem) Stat(path string) (os.FileInfo, error) {
	return f.fs.Stat(path)
}

func (f *FileSystem) Exists(path string) (bool, error) {
	_, err := f.lstat(path)
	switch {
	case err == nil:
		return true, nil
	case IsAbsent(err):
		return false, nil
	default:
		return false, err
	}
}

func (f *FileSystem) Mkdir(path string, perm os.FileMode) error {
	return f.fs.Mkdir(path, perm)
}

func (f *FileSystem) MkdirAll(path string, perm os.FileMode) error {
	return f.fs.MkdirAll(path, perm)
}

func (f *FileSystem) RemoveAll(path string) error {
	_, err := f.lstat(path)
	if IsAbsent(err) {
		return nil
	}
	if err != nil {
		return err
	}

	return f.fs.RemoveAll(path)
}

func (f *FileSystem) ReadDir(path string) ([]string, error) {
	entries, err := afero.ReadDir(f.fs, path)
	if err != nil {
		return nil, err
	}

	names := make([]string, 0, len(entries))
	for _, entry := range entries {
		names = append(names, entry.Name())
	}
	sort.Strings(names)

	return names, nil
}

func (f *FileSystem) CopyFile(src string, dst string) error {
	stat, err := f.fs.Stat(src)
	if err != nil {
		return err
	}
	if stat.IsDir() {
		return fmt.Errorf("%s: is a directory", src)
	}

	return f.copyFile(src, dst, stat.Mode().Perm())
}

func (f *FileSystem) CopyRecursive(src string, dst string) error {
	stat, err := f.fs.Stat(src)
	if err != nil {
		return err
	}
	if !stat.IsDir() {
		return f.copyFile(src, dst, stat.Mode().Perm())
	}

	return afero.Walk(f.fs, src, func(path string, info os.FileInfo, err error) error {
		if err != nil {
			return err
		}

		rel, err := filepath.Rel(src, path)
		if err != nil {
			return err
		}
		target := filepath.Join(dst, rel)

		switch {
		case info.IsDir():
			return f.ensureDirectory(target, info.Mode().Perm())

		case info.Mode()&os.ModeSymlink != 0:
			return f.copySymlink(path, target)

		case info.Mode().IsRegular():
			return f.copyFile(path, target, info.Mode().Perm())

		default:
			return fmt.Errorf("%s: unsupported file type %v", path, info.Mode().Type())
		}
	})
}

// ensureDirectory makes sure target is a directory, replacing anything else found there
func (f *FileSystem) ensureDirectory(target string, perm os.FileMode) error {
	stat, err := f.lstat(target)
	switch {
	case err == nil && stat.IsDir():
		return nil
	case err == nil:
		err = f.fs.Remove(target)
		if err != nil {
			return err
		}
	case !IsAbsent(err):
		return err
	}

	return f.fs.MkdirAll(target, perm|0700)
}

func (f *FileSystem) copyFile(src string, dst string, perm os.FileMode) error {
	stat, err := f.lstat(dst)
	if err == nil && (stat.IsDir() || stat.Mode()&os.ModeSymlink != 0) {
		err = f.fs.RemoveAll(dst)
		if err != nil {
			return err
		}
	}

	in, err := f.fs.Open(src)
	if err != nil {
		return err
	}
	defer in.Close()

	out, err := f.fs.OpenFile(dst, os.O_WRONLY|os.O_CREATE|os.O_TRUNC, perm)
	if err != nil {
		return err
	}

	_, err = io.Copy(out, in)
	if err != nil {
		out.Close()
		return fmt.Errorf("could not copy %s to %s: %w", src, dst, err)
	}

	err = out.Close()
	if err != nil {
		return err
	}

	// OpenFile only applies perm to new files
	return f.fs.Chmod(dst, perm)
}

func (f *FileSystem) copySymlink(src string, dst string) error {
	reader, rok := f.fs.(afero.LinkReader)
	linker, lok := f.fs.(afero.Linker)
	if !rok || !lok {
		return f.copyFile(src, dst, 0644)
	}

	link, err := reader.ReadlinkIfPossible(src)
	if err != nil {
		return err
	}

	err = f.RemoveAll(dst)
	if err != nil {
		return err
	}

	return linker.SymlinkIfPossible(link, dst)
}

func (f *FileSystem) lstat(path string) (os.FileInfo, error) {
	if lstater, ok := f.fs.(afero.Lstater); ok {
		stat, _, err := lstater.LstatIfPossible(path)
		return stat, err
	}

	return f.fs.Stat(path)
}
