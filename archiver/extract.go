// Copyright (c) 2026, R.I. Pienaar and the Choria Project contributors
//
// SPDX-License-Identifier: Apache-2.0

package archiver

import (
	"context"
	"fmt"
	"time"

	"github.com/choria-io/crosszip/internal/fsys"
	"github.com/choria-io/crosszip/model"
)

func (a *Archiver) extract(ctx context.Context, source string, destination string) (err error) {
	req := model.ExtractRequest{Source: source, Destination: destination}
	err = req.Validate()
	if err != nil {
		return err
	}

	ctx, backend, err := a.begin(ctx)
	if err != nil {
		return err
	}

	start := time.Now()
	defer func() { a.observe(operationExtract, backend.Name(), start, err) }()

	err = absolutePaths(&req.Source, &req.Destination)
	if err != nil {
		return err
	}

	log := a.log.With("operation", operationExtract, "backend", backend.Name(), "source", req.Source, "destination", req.Destination)

	err = a.ensureParent(req.Destination)
	if err != nil {
		return err
	}

	stat, err := a.fs.Stat(req.Destination)
	switch {
	case err == nil && !stat.IsDir():
		return fmt.Errorf("%w: %s", model.ErrDestinationNotADirectory, req.Destination)

	case err == nil && !backend.ExtractsIntoExisting():
		err = a.extractMerged(ctx, backend, req, log)

	case err == nil:
		err = a.extractDirect(ctx, backend, req, log)

	case fsys.IsAbsent(err):
		err = a.fs.MkdirAll(req.Destination, 0755)
		if err != nil {
			return fmt.Errorf("could not create destination %s: %w", req.Destination, err)
		}

		err = a.extractDirect(ctx, backend, req, log)

	default:
		return fmt.Errorf("could not check destination %s: %w", req.Destination, err)
	}
	if err != nil {
		return err
	}

	log.Info("Extracted archive", "duration", time.Since(start))

	return nil
}

func (a *Archiver) extractDirect(ctx context.Context, backend model.Backend, req model.ExtractRequest, log model.Logger) error {
	inv, err := backend.ExtractInvocation(req)
	if err != nil {
		return err
	}

	return a.invoke(ctx, backend, inv, log)
}

// extractMerged extracts into a staging directory and copies the result over destination,
// replacing colliding entries and keeping all others
func (a *Archiver) extractMerged(ctx context.Context, backend model.Backend, req model.ExtractRequest, log model.Logger) error {
	return a.withStaging(log, func(dir string) error {
		err := a.extractDirect(ctx, backend, model.ExtractRequest{Source: req.Source, Destination: dir}, log)
		if err != nil {
			return err
		}

		log.Debug("Merging staged content", "staging", dir)

		err = a.fs.CopyRecursive(dir, req.Destination)
		if err != nil {
			return fmt.Errorf("%w: could not merge %s into %s: %w", model.ErrCleanupFailure, dir, req.Destination, err)
		}

		return nil
	})
}
