// Copyright (c) 2026, R.I. Pienaar and the Choria Project contributors
//
// SPDX-License-Identifier: Apache-2.0

package archiver

import (
	"context"
	"fmt"
	"path/filepath"
	"strings"
	"time"

	"github.com/choria-io/crosszip/model"
)

func (a *Archiver) archive(ctx context.Context, source string, destination string, includeBase bool) (size int64, err error) {
	req := model.ArchiveRequest{Source: source, Destination: destination, IncludeBaseDirectory: includeBase}
	err = req.Validate()
	if err != nil {
		return 0, err
	}

	ctx, backend, err := a.begin(ctx)
	if err != nil {
		return 0, err
	}

	start := time.Now()
	defer func() { a.observe(operationArchive, backend.Name(), start, err) }()

	err = absolutePaths(&req.Source, &req.Destination)
	if err != nil {
		return 0, err
	}

	if containsPath(req.Destination, req.Source) {
		return 0, fmt.Errorf("%w: destination %s would replace the source %s", model.ErrInvalidRequest, req.Destination, req.Source)
	}

	log := a.log.With("operation", operationArchive, "backend", backend.Name(), "source", req.Source, "destination", req.Destination)

	stat, err := a.fs.Stat(req.Source)
	if err != nil {
		return 0, fmt.Errorf("%w: %s: %w", model.ErrSourceNotFound, req.Source, err)
	}

	err = a.fs.RemoveAll(req.Destination)
	if err != nil {
		return 0, fmt.Errorf("could not remove existing destination %s: %w", req.Destination, err)
	}

	err = a.ensureParent(req.Destination)
	if err != nil {
		return 0, err
	}

	build := func(dest string) error {
		r := req
		r.Destination = dest

		if stat.IsDir() {
			return a.archiveDirectory(ctx, backend, r, log)
		}

		return a.archiveFile(ctx, backend, r, log)
	}

	if filepath.Ext(req.Destination) == "" {
		err = a.archiveUnsuffixed(req.Destination, build, log)
	} else {
		err = build(req.Destination)
	}
	if err != nil {
		return 0, err
	}

	stat, err = a.fs.Stat(req.Destination)
	if err != nil {
		return 0, fmt.Errorf("could not determine size of archive %s: %w", req.Destination, err)
	}

	log.Info("Created archive", "size", stat.Size(), "duration", time.Since(start))

	return stat.Size(), nil
}

func (a *Archiver) archiveDirectory(ctx context.Context, backend model.Backend, req model.ArchiveRequest, log model.Logger) error {
	inv, err := backend.ArchiveInvocation(req)
	if err != nil {
		return err
	}

	return a.invoke(ctx, backend, inv, log)
}

// archiveFile stages the file alone in a directory and archives that without its base, so the
// archive root holds just the file whatever includeBase was
func (a *Archiver) archiveFile(ctx context.Context, backend model.Backend, req model.ArchiveRequest, log model.Logger) error {
	return a.withStaging(log, func(dir string) error {
		err := a.fs.CopyFile(req.Source, filepath.Join(dir, filepath.Base(req.Source)))
		if err != nil {
			return fmt.Errorf("could not stage %s: %w", req.Source, err)
		}

		return a.archiveDirectory(ctx, backend, model.ArchiveRequest{Source: dir, Destination: req.Destination}, log)
	})
}

// archiveUnsuffixed builds the archive under a name ending in .zip in a staging directory and copies it
// to dest, zip appends .zip to destinations without an extension
func (a *Archiver) archiveUnsuffixed(dest string, build func(string) error, log model.Logger) error {
	return a.withStaging(log, func(dir string) error {
		staged := filepath.Join(dir, filepath.Base(dest)+".zip")

		err := build(staged)
		if err != nil {
			return err
		}

		err = a.fs.CopyFile(staged, dest)
		if err != nil {
			return fmt.Errorf("could not move archive to %s: %w", dest, err)
		}

		return nil
	})
}

// containsPath reports if path is parent or one of its descendants
func containsPath(parent string, path string) bool {
	rel, err := filepath.Rel(parent, path)
	if err != nil {
		return false
	}

	return rel != ".." && !strings.HasPrefix(rel, ".."+string(filepath.Separator))
}
