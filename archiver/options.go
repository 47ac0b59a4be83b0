// Copyright (c) 2026, R.I. Pienaar and the Choria Project contributors
//
// SPDX-License-Identifier: Apache-2.0

package archiver

import (
	"fmt"
	"path/filepath"

	"github.com/choria-io/crosszip/model"
)

// Option is a functional option for configuring the Archiver
type Option func(*Archiver) error

// WithRunner sets the program runner, defaults to one using os/exec
func WithRunner(runner model.CommandRunner) Option {
	return func(a *Archiver) error {
		if runner == nil {
			return fmt.Errorf("runner is required")
		}

		a.runner = runner

		return nil
	}
}

// WithFileSystem sets the filesystem, defaults to the operating system
func WithFileSystem(fs model.FileSystem) Option {
	return func(a *Archiver) error {
		if fs == nil {
			return fmt.Errorf("filesystem is required")
		}

		a.fs = fs

		return nil
	}
}

// WithPlatform overrides the detected host platform
func WithPlatform(platform model.Platform) Option {
	return func(a *Archiver) error {
		switch platform {
		case model.PlatformPosix, model.PlatformWindows:
			a.platform = platform
			return nil
		default:
			return fmt.Errorf("unknown platform %q", platform)
		}
	}
}

// WithBackend selects a backend by name instead of by platform priority
func WithBackend(name string) Option {
	return func(a *Archiver) error {
		a.backendName = name
		return nil
	}
}

// WithTempRoot sets the directory staging areas are created in
func WithTempRoot(path string) Option {
	return func(a *Archiver) error {
		if path == "" {
			return nil
		}

		abs, err := filepath.Abs(path)
		if err != nil {
			return err
		}

		a.tempRoot = abs

		return nil
	}
}

// WithExecutable runs command from path rather than searching PATH for it
func WithExecutable(command string, path string) Option {
	return func(a *Archiver) error {
		if command == "" {
			return fmt.Errorf("command is required")
		}
		if !filepath.IsAbs(path) {
			return fmt.Errorf("executable path for %s must be absolute", command)
		}

		a.executables[command] = path

		return nil
	}
}
