// Copyright (c) 2026, R.I. Pienaar and the Choria Project contributors
//
// SPDX-License-Identifier: Apache-2.0

package main

import (
	"github.com/choria-io/fisk"

	iu "github.com/choria-io/crosszip/internal/util"
)

type archiveCommand struct {
	source      string
	destination string
	includeBase bool
	checksum    bool
}

func registerArchiveCommand(app *fisk.Application) {
	cmd := &archiveCommand{}

	archive := app.Command("archive", "Creates a ZIP archive from a file or directory").Alias("zip").Action(cmd.archiveAction)
	archive.Arg("source", "File or directory to archive").Required().StringVar(&cmd.source)
	archive.Arg("archive", "Archive file to create, replaced when it exists").Required().StringVar(&cmd.destination)
	archive.Flag("base-dir", "Store directory content below the directory name").UnNegatableBoolVar(&cmd.includeBase)
	archive.Flag("checksum", "Show the SHA-256 checksum of the archive").UnNegatableBoolVar(&cmd.checksum)
}

func (c *archiveCommand) archiveAction(_ *fisk.ParseContext) (err error) {
	defer func() { err = finish(err) }()

	arch, out, err := newArchiver()
	if err != nil {
		return err
	}

	res := <-arch.Archive(ctx, c.source, c.destination, c.includeBase)
	if res.Err != nil {
		return res.Err
	}

	kv := []any{"archive", c.destination, "size", res.Size}

	if c.checksum {
		sum, err := iu.Sha256HashFile(c.destination)
		if err != nil {
			return err
		}
		kv = append(kv, "sha256", sum)
	}

	out.Info("Created archive", kv...)

	return nil
}
