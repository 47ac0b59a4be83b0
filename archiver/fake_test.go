// Copyright (c) 2026, R.I. Pienaar and the Choria Project contributors
//
// SPDX-License-Identifier: Apache-2.0

package archiver

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"sync"

	"github.com/spf13/afero"

	"github.com/choria-io/crosszip/internal/fsys"
	"github.com/choria-io/crosszip/model"
)

// fakeTools emulates zip, unzip and the powershell scripts on an afero filesystem,
// archives are JSON maps of slash separated names to content with directories ending in /
type fakeTools struct {
	fs    afero.Fs
	mu    sync.Mutex
	calls []model.ExtendedExecOptions
}

func (f *fakeTools) execute(_ context.Context, opts model.ExtendedExecOptions) ([]byte, []byte, int, error) {
	f.mu.Lock()
	f.calls = append(f.calls, opts)
	f.mu.Unlock()

	switch opts.Command {
	case "zip":
		dest := opts.Args[4]
		if filepath.Ext(dest) == "" {
			dest += ".zip"
		}

		return f.archive(opts.Cwd, filepath.Join(opts.Cwd, opts.Args[5]), dest)

	case "unzip":
		return f.extract(opts.Args[2], opts.Args[4], true)

	case "powershell.exe":
		env := map[string]string{}
		for _, e := range opts.Environment {
			k, v, _ := strings.Cut(e, "=")
			env[k] = v
		}

		src := env["CROSSZIP_SOURCE"]
		dst := env["CROSSZIP_DESTINATION"]

		inc, ok := env["CROSSZIP_INCLUDE_BASE"]
		switch {
		case !ok:
			return f.extract(src, dst, false)
		case inc == "true":
			return f.archive(filepath.Dir(src), src, dst)
		default:
			return f.archive(src, src, dst)
		}
	}

	return nil, []byte("command not found"), 127, nil
}

func (f *fakeTools) invocations() []model.ExtendedExecOptions {
	f.mu.Lock()
	defer f.mu.Unlock()

	return append([]model.ExtendedExecOptions{}, f.calls...)
}

func (f *fakeTools) archive(root string, entry string, dest string) ([]byte, []byte, int, error) {
	content, err := readTree(f.fs, root, entry)
	if err != nil {
		return nil, []byte(err.Error()), 18, nil
	}
	if len(content) == 0 {
		return nil, []byte("zip error: Nothing to do!"), 12, nil
	}

	j, err := json.Marshal(content)
	if err != nil {
		return nil, nil, 0, err
	}

	err = afero.WriteFile(f.fs, dest, j, 0644)
	if err != nil {
		return nil, []byte(err.Error()), 15, nil
	}

	return nil, nil, 0, nil
}

func (f *fakeTools) extract(src string, dst string, overwrite bool) ([]byte, []byte, int, error) {
	b, err := afero.ReadFile(f.fs, src)
	if err != nil {
		return nil, []byte(fmt.Sprintf("cannot find or open %s", src)), 9, nil
	}

	content := map[string]string{}
	err = json.Unmarshal(b, &content)
	if err != nil {
		return nil, []byte("End-of-central-directory signature not found"), 9, nil
	}

	var names []string
	for name := range content {
		names = append(names, name)
	}
	sort.Strings(names)

	for _, name := range names {
		target := filepath.Join(dst, filepath.FromSlash(name))

		if strings.HasSuffix(name, "/") {
			err = f.fs.MkdirAll(target, 0755)
			if err != nil {
				return nil, []byte(err.Error()), 50, nil
			}
			continue
		}

		if !overwrite {
			exists, _ := afero.Exists(f.fs, target)
			if exists {
				return nil, []byte(fmt.Sprintf("The file '%s' already exists.", target)), 1, nil
			}
		}

		err = f.fs.MkdirAll(filepath.Dir(target), 0755)
		if err != nil {
			return nil, []byte(err.Error()), 50, nil
		}

		err = afero.WriteFile(f.fs, target, []byte(content[name]), 0644)
		if err != nil {
			return nil, []byte(err.Error()), 50, nil
		}
	}

	return nil, nil, 0, nil
}

// readTree maps everything below entry to its content keyed by the slash separated path relative to root
func readTree(fs afero.Fs, root string, entry string) (map[string]string, error) {
	content := map[string]string{}

	err := afero.Walk(fs, entry, func(path string, info os.FileInfo, err error) error {
		if err != nil {
			return err
		}

		rel, err := filepath.Rel(root, path)
		if err != nil {
			return err
		}
		if rel == "." {
			return nil
		}
		rel = filepath.ToSlash(rel)

		if info.IsDir() {
			content[rel+"/"] = ""
			return nil
		}

		b, err := afero.ReadFile(fs, path)
		if err != nil {
			return err
		}
		content[rel] = string(b)

		return nil
	})

	return content, err
}

// faultyFS injects failures into selected filesystem calls
type faultyFS struct {
	*fsys.FileSystem

	removeAll     func(path string) error
	copyRecursive func(src string, dst string) error
}

func (f *faultyFS) RemoveAll(path string) error {
	if f.removeAll != nil {
		err := f.removeAll(path)
		if err != nil {
			return err
		}
	}

	return f.FileSystem.RemoveAll(path)
}

func (f *faultyFS) CopyRecursive(src string, dst string) error {
	if f.copyRecursive != nil {
		err := f.copyRecursive(src, dst)
		if err != nil {
			return err
		}
	}

	return f.FileSystem.CopyRecursive(src, dst)
}
