// Copyright (c) 2026, R.I. Pienaar and the Choria Project contributors
//
// SPDX-License-Identifier: Apache-2.0

// Package archiver creates and extracts ZIP archives using the native tooling of the host
package archiver

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"path/filepath"
	"time"

	_ "github.com/choria-io/crosszip/backends"
	"github.com/choria-io/crosszip/internal/cmdrunner"
	"github.com/choria-io/crosszip/internal/fsys"
	"github.com/choria-io/crosszip/internal/registry"
	"github.com/choria-io/crosszip/internal/staging"
	"github.com/choria-io/crosszip/metrics"
	"github.com/choria-io/crosszip/model"
)

const (
	operationArchive = "archive"
	operationExtract = "extract"
)

// Archiver archives and extracts ZIP files, it holds no per operation state and is safe for concurrent use
type Archiver struct {
	log         model.Logger
	runner      model.CommandRunner
	fs          model.FileSystem
	platform    model.Platform
	backendName string
	tempRoot    string
	executables map[string]string
	staging     *staging.Allocator
}

// ArchiveResult is the outcome of an asynchronous archive operation
type ArchiveResult struct {
	// Size is the size of the created archive in bytes
	Size int64
	Err  error
}

// New creates an Archiver, it fails when no backend applies to the platform
func New(log model.Logger, opts ...Option) (*Archiver, error) {
	a := &Archiver{
		log:         log,
		platform:    model.HostPlatform(),
		executables: make(map[string]string),
	}

	for _, opt := range opts {
		err := opt(a)
		if err != nil {
			return nil, err
		}
	}

	if a.fs == nil {
		a.fs = fsys.NewOsFileSystem()
	}

	if a.runner == nil {
		runner, err := cmdrunner.NewCommandRunner(log.With("component", "runner"))
		if err != nil {
			return nil, err
		}
		a.runner = runner
	}

	a.staging = staging.NewAllocator(a.fs, a.tempRoot, log.With("component", "staging"))

	_, err := a.selectBackend()
	if err != nil {
		return nil, err
	}

	return a, nil
}

// Archive creates destination from source in the background, the channel receives one result and is closed
func (a *Archiver) Archive(ctx context.Context, source string, destination string, includeBaseDirectory bool) <-chan ArchiveResult {
	res := make(chan ArchiveResult, 1)

	go func() {
		defer close(res)

		size, err := a.archive(ctx, source, destination, includeBaseDirectory)
		res <- ArchiveResult{Size: size, Err: err}
	}()

	return res
}

// ArchiveBlocking creates destination from source and returns its size in bytes
func (a *Archiver) ArchiveBlocking(source string, destination string, includeBaseDirectory bool) (int64, error) {
	return a.archive(context.Background(), source, destination, includeBaseDirectory)
}

// Extract extracts source into destination in the background, the channel receives one result and is closed
func (a *Archiver) Extract(ctx context.Context, source string, destination string) <-chan error {
	res := make(chan error, 1)

	go func() {
		defer close(res)

		res <- a.extract(ctx, source, destination)
	}()

	return res
}

// ExtractBlocking extracts source into destination
func (a *Archiver) ExtractBlocking(source string, destination string) error {
	return a.extract(context.Background(), source, destination)
}

// Platform is the platform backends are selected for
func (a *Archiver) Platform() model.Platform {
	return a.platform
}

// TempRoot is the directory staging areas are created in
func (a *Archiver) TempRoot() string {
	return a.staging.Root()
}

func (a *Archiver) selectBackend() (model.Backend, error) {
	return registry.FindSuitableBackend(a.backendName, a.platform, a.log)
}

// begin checks ctx and resolves the backend for a new operation, once started operations are not cancelled
func (a *Archiver) begin(ctx context.Context) (context.Context, model.Backend, error) {
	err := ctx.Err()
	if err != nil {
		return nil, nil, err
	}

	backend, err := a.selectBackend()
	if err != nil {
		return nil, nil, err
	}

	return context.WithoutCancel(ctx), backend, nil
}

func (a *Archiver) observe(operation string, backend string, start time.Time, err error) {
	metrics.OperationTime.WithLabelValues(operation, backend).Observe(time.Since(start).Seconds())

	if err != nil {
		metrics.OperationErrors.WithLabelValues(operation, backend, model.ErrorKind(err)).Inc()
	}
}

// withStaging runs cb with a fresh staging directory that is removed afterwards, errors from cb come first
func (a *Archiver) withStaging(log model.Logger, cb func(dir string) error) error {
	area, err := a.staging.Acquire()
	if err != nil {
		return err
	}

	log.Debug("Using staging directory", "staging", area.Path())

	err = cb(area.Path())
	rerr := area.Release()

	switch {
	case rerr == nil:
		return err
	case err == nil:
		return rerr
	default:
		return errors.Join(err, rerr)
	}
}

// invoke runs the backend program, failures to start and non zero exits are BackendErrors
func (a *Archiver) invoke(ctx context.Context, backend model.Backend, inv *model.Invocation, log model.Logger) error {
	start := time.Now()
	stdout, stderr, exitCode, err := a.runner.ExecuteWithOptions(ctx, inv.ExecOptions(a.executables[inv.Command]))
	metrics.BackendInvocationTime.WithLabelValues(backend.Name(), inv.Command).Observe(time.Since(start).Seconds())

	if err != nil || exitCode != 0 {
		return &model.BackendError{
			Backend:  backend.Name(),
			Command:  inv.Command,
			Args:     inv.Args,
			ExitCode: exitCode,
			Output:   combinedOutput(stdout, stderr),
			Err:      err,
		}
	}

	log.Debug("Backend completed", "command", inv.Command, "duration", time.Since(start))

	return nil
}

// ensureParent creates the parent of path, failing when an existing ancestor is not a directory
func (a *Archiver) ensureParent(path string) error {
	parent := filepath.Dir(path)

	for dir := parent; ; dir = filepath.Dir(dir) {
		stat, err := a.fs.Stat(dir)
		if err == nil {
			if !stat.IsDir() {
				return fmt.Errorf("%w: %s", model.ErrInvalidDestinationParent, dir)
			}
			break
		}

		if !fsys.IsAbsent(err) {
			return fmt.Errorf("could not check destination parent %s: %w", dir, err)
		}

		if filepath.Dir(dir) == dir {
			break
		}
	}

	err := a.fs.MkdirAll(parent, 0755)
	if err != nil {
		return fmt.Errorf("%w: %s: %w", model.ErrInvalidDestinationParent, parent, err)
	}

	return nil
}

func absolutePaths(paths ...*string) error {
	for _, p := range paths {
		abs, err := filepath.Abs(*p)
		if err != nil {
			return fmt.Errorf("%w: %s: %w", model.ErrInvalidRequest, *p, err)
		}
		*p = abs
	}

	return nil
}

func combinedOutput(stdout []byte, stderr []byte) []byte {
	stdout = bytes.TrimSpace(stdout)
	stderr = bytes.TrimSpace(stderr)

	switch {
	case len(stderr) == 0:
		return stdout
	case len(stdout) == 0:
		return stderr
	default:
		return bytes.Join([][]byte{stderr, stdout}, []byte("\n"))
	}
}
