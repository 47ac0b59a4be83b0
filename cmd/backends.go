// Copyright (c) 2026, R.I. Pienaar and the Choria Project contributors
//
// SPDX-License-Identifier: Apache-2.0

package main

import (
	"fmt"
	"strings"

	"github.com/choria-io/fisk"
	"github.com/goccy/go-yaml"

	_ "github.com/choria-io/crosszip/backends"
	"github.com/choria-io/crosszip/internal/config"
	"github.com/choria-io/crosszip/internal/registry"
	iu "github.com/choria-io/crosszip/internal/util"
	"github.com/choria-io/crosszip/model"
)

type backendsCommand struct {
	yamlFormat bool
}

type backendStatus struct {
	registry.Description `yaml:",inline"`

	Found map[string]string `yaml:"found"`
	Ready bool              `yaml:"ready"`
}

func registerBackendsCommand(app *fisk.Application) {
	cmd := &backendsCommand{}

	backends := app.Command("backends", "Lists the archive backends and their availability").Action(cmd.backendsAction)
	backends.Flag("yaml", "Output in YAML format").UnNegatableBoolVar(&cmd.yamlFormat)
}

func (c *backendsCommand) backendsAction(_ *fisk.ParseContext) error {
	cfg, err := config.Load(configFile)
	if err != nil {
		return err
	}

	platform := model.HostPlatform()
	var statuses []backendStatus

	for _, d := range registry.Inventory(platform) {
		status := backendStatus{Description: d, Found: map[string]string{}, Ready: d.Manageable}

		for _, command := range d.Executables {
			path, ok := cfg.Executables[command]
			if !ok {
				path, ok, _ = iu.ExecutableInPath(command)
			}

			if ok {
				status.Found[command] = path
			} else {
				status.Ready = false
			}
		}

		statuses = append(statuses, status)
	}

	if c.yamlFormat {
		y, err := yaml.Marshal(map[string]any{"platform": platform, "backends": statuses})
		if err != nil {
			return err
		}

		fmt.Println(string(y))
		return nil
	}

	fmt.Printf("Platform: %s\n\n", platform)

	for _, s := range statuses {
		state := "ready"
		switch {
		case s.Error != "":
			state = "error: " + s.Error
		case !s.Manageable:
			state = "not applicable"
		case !s.Ready:
			state = "missing executables"
		}

		fmt.Printf("%-12s %-20s %s\n", s.Name, state, strings.Join(s.Executables, ", "))

		for _, command := range s.Executables {
			if path, ok := s.Found[command]; ok {
				fmt.Printf("%12s %s => %s\n", "", command, path)
			}
		}
	}

	return nil
}
