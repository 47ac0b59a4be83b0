// Copyright (c) 2026, R.I. Pienaar and the Choria Project contributors
//
// SPDX-License-Identifier: Apache-2.0

// Package staging allocates short-lived scratch directories under the temporary root
package staging

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sync"

	"github.com/segmentio/ksuid"

	"github.com/choria-io/crosszip/metrics"
	"github.com/choria-io/crosszip/model"
)

// Prefix starts the name of every staging directory
const Prefix = "crosszip-"

// maxAttempts bounds retries when a generated name is already taken
const maxAttempts = 5

// Allocator names and creates staging directories
type Allocator struct {
	fs   model.FileSystem
	root string
	log  model.Logger
}

// Area is a staging directory owned by a single operation
type Area struct {
	path     string
	fs       model.FileSystem
	log      model.Logger
	once     sync.Once
	released error
}

// NewAllocator creates an allocator placing directories in root, os.TempDir() when root is empty
func NewAllocator(fs model.FileSystem, root string, log model.Logger) *Allocator {
	if root == "" {
		root = os.TempDir()
	}

	return &Allocator{fs: fs, root: root, log: log}
}

// Root is the directory staging areas are created in
func (a *Allocator) Root() string {
	return a.root
}

// Name generates a unique staging path, it does not create anything
func (a *Allocator) Name() string {
	return filepath.Join(a.root, Prefix+ksuid.New().String())
}

// Acquire creates a new empty staging directory
func (a *Allocator) Acquire() (*Area, error) {
	for range maxAttempts {
		path := a.Name()

		err := a.fs.Mkdir(path, 0700)
		if errors.Is(err, fs.ErrExist) {
			a.log.Warn("Staging directory name collision, retrying", "path", path)
			continue
		}
		if err != nil {
			return nil, fmt.Errorf("could not create staging directory %s: %w", path, err)
		}

		metrics.StagingAreasActive.Inc()
		a.log.Debug("Created staging directory", "path", path)

		return &Area{path: path, fs: a.fs, log: a.log}, nil
	}

	return nil, fmt.Errorf("could not allocate a unique staging directory in %s after %d attempts", a.root, maxAttempts)
}

// Path is the location of the staging directory
func (s *Area) Path() string {
	return s.path
}

// Release removes the staging directory and all its content, subsequent calls return the first result
func (s *Area) Release() error {
	s.once.Do(func() {
		metrics.StagingAreasActive.Dec()

		err := s.fs.RemoveAll(s.path)
		if err != nil {
			s.log.Warn("Could not remove staging directory", "path", s.path, "error", err)
			s.released = fmt.Errorf("%w: could not remove staging directory %s: %w", model.ErrCleanupFailure, s.path, err)
			return
		}

		s.log.Debug("Removed staging directory", "path", s.path)
	})

	return s.released
}
