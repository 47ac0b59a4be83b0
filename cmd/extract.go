// Copyright (c) 2026, R.I. Pienaar and the Choria Project contributors
//
// SPDX-License-Identifier: Apache-2.0

package main

import (
	"github.com/choria-io/fisk"
)

type extractCommand struct {
	source      string
	destination string
}

func registerExtractCommand(app *fisk.Application) {
	cmd := &extractCommand{}

	extract := app.Command("extract", "Extracts a ZIP archive into a directory").Alias("unzip").Action(cmd.extractAction)
	extract.Arg("archive", "Archive to extract").Required().ExistingFileVar(&cmd.source)
	extract.Arg("directory", "Directory to extract into, existing files are overwritten").Required().StringVar(&cmd.destination)
}

func (c *extractCommand) extractAction(_ *fisk.ParseContext) (err error) {
	defer func() { err = finish(err) }()

	arch, out, err := newArchiver()
	if err != nil {
		return err
	}

	err = <-arch.Extract(ctx, c.source, c.destination)
	if err != nil {
		return err
	}

	out.Info("Extracted archive", "archive", c.source, "directory", c.destination)

	return nil
}
