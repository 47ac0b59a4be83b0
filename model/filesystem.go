// Copyright (c) 2026, R.I. Pienaar and the Choria Project contributors
//
// SPDX-License-Identifier: Apache-2.0

package model

import (
	"os"
)

// FileSystem is the set of filesystem operations needed to stage, clear and merge archive content
type FileSystem interface {
	// Stat returns file info for path following symlinks
	Stat(path string) (os.FileInfo, error)

	// Exists reports if anything exists at path
	Exists(path string) (bool, error)

	// Mkdir creates a single directory and fails if it already exists
	Mkdir(path string, perm os.FileMode) error

	// MkdirAll creates a directory along with any necessary parents
	MkdirAll(path string, perm os.FileMode) error

	// RemoveAll removes path and any children, a path that does not exist is not an error
	RemoveAll(path string) error

	// CopyFile copies a regular file preserving its permissions, replacing dst
	CopyFile(src string, dst string) error

	// CopyRecursive merges the tree at src into dst, colliding names are overwritten
	CopyRecursive(src string, dst string) error

	// ReadDir returns the sorted names of the entries in a directory
	ReadDir(path string) ([]string, error)
}
