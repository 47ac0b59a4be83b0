// Copyright (c) 2026, R.I. Pienaar and the Choria Project contributors
//
// SPDX-License-Identifier: Apache-2.0

package powershell

import (
	"github.com/choria-io/crosszip/internal/registry"
	"github.com/choria-io/crosszip/model"
)

// Register registers this backend with the registry
func Register() {
	registry.MustRegister(&factory{})
}

type factory struct{}

func (p *factory) Name() string          { return ProviderName }
func (p *factory) Executables() []string { return []string{Command} }
func (p *factory) New(log model.Logger) (model.Backend, error) {
	return NewPowerShellProvider(log)
}
func (p *factory) IsManageable(platform model.Platform) (bool, int, error) {
	return platform == model.PlatformWindows, 1, nil
}
