// Copyright (c) 2025-2026, R.I. Pienaar and the Choria Project contributors
//
// SPDX-License-Identifier: Apache-2.0

package registry

import (
	"fmt"
	"maps"
	"slices"
	"sort"
	"sync"

	"github.com/choria-io/crosszip/model"
)

type backendEntry struct {
	factory model.BackendFactory
}

// Description is a summary of a registered backend for a given platform
type Description struct {
	Name        string   `json:"name" yaml:"name"`
	Executables []string `json:"executables" yaml:"executables"`
	Manageable  bool     `json:"manageable" yaml:"manageable"`
	Priority    int      `json:"priority" yaml:"priority"`
	Error       string   `json:"error,omitempty" yaml:"error,omitempty"`
}

var (
	backends = make(map[string]*backendEntry)
	mu       sync.Mutex
)

// Clear removes all registered backends
func Clear() {
	mu.Lock()
	defer mu.Unlock()

	backends = make(map[string]*backendEntry)
}

// Register registers a plugin
func Register(p any) error {
	switch tp := p.(type) {
	case model.BackendFactory:
		return registerBackend(tp)
	default:
		return fmt.Errorf("cannot register plugin of type %T", p)
	}
}

// MustRegister registers a plugin and panics if registration fails
func MustRegister(p any) {
	err := Register(p)
	if err != nil {
		panic(err)
	}
}

// registerBackend registers a backend factory and returns an error if one with the same name already exists
func registerBackend(p model.BackendFactory) error {
	mu.Lock()
	defer mu.Unlock()

	name := p.Name()

	_, ok := backends[name]
	if ok {
		return fmt.Errorf("%w: %s", model.ErrDuplicateBackend, name)
	}

	backends[name] = &backendEntry{factory: p}

	return nil
}

// selectBackends returns the backends that apply to platform ordered by priority
func selectBackends(platform model.Platform, log model.Logger) []model.BackendFactory {
	mu.Lock()
	defer mu.Unlock()

	type matched struct {
		prio int
		name string
		prov model.BackendFactory
	}

	var found []*matched

	for _, v := range backends {
		ok, priority, err := v.factory.IsManageable(platform)
		if err != nil {
			log.Warn("Could not check if backend is manageable", "backend", v.factory.Name(), "err", err)
			continue
		}

		if ok {
			found = append(found, &matched{priority, v.factory.Name(), v.factory})
		}
	}

	// name breaks ties so selection does not depend on map order
	sort.Slice(found, func(i, j int) bool {
		if found[i].prio == found[j].prio {
			return found[i].name < found[j].name
		}
		return found[i].prio < found[j].prio
	})

	var result []model.BackendFactory
	for _, v := range found {
		result = append(result, v.prov)
	}

	return result
}

// selectBackend finds a backend matching name and checks it's manageable before returning it
func selectBackend(name string, platform model.Platform, log model.Logger) (model.BackendFactory, error) {
	mu.Lock()
	defer mu.Unlock()

	p, ok := backends[name]
	if !ok {
		log.Debug("No backend found", "backend", name)
		return nil, fmt.Errorf("%w: %s", model.ErrBackendNotFound, name)
	}

	ok, _, err := p.factory.IsManageable(platform)
	if err != nil {
		log.Debug("Backend detection failed", "backend", name, "err", err)
		return nil, fmt.Errorf("%w: %s: %w", model.ErrBackendNotManageable, name, err)
	}

	if !ok {
		log.Debug("Backend cannot be used", "backend", name, "platform", platform)
		return nil, fmt.Errorf("%w: %s does not support the %s platform", model.ErrBackendNotManageable, name, platform)
	}

	return p.factory, nil
}

// Names returns the sorted names of all registered backends
func Names() []string {
	mu.Lock()
	defer mu.Unlock()

	return slices.Sorted(maps.Keys(backends))
}

// Inventory reports every registered backend and whether it applies to platform, sorted by name
func Inventory(platform model.Platform) []Description {
	mu.Lock()
	defer mu.Unlock()

	var res []Description

	for _, name := range slices.Sorted(maps.Keys(backends)) {
		f := backends[name].factory
		ok, prio, err := f.IsManageable(platform)

		d := Description{
			Name:        name,
			Executables: f.Executables(),
			Manageable:  ok && err == nil,
			Priority:    prio,
		}
		if err != nil {
			d.Error = err.Error()
		}

		res = append(res, d)
	}

	return res
}

// FindSuitableBackend creates the named backend, or the highest priority backend for platform when name is empty
func FindSuitableBackend(name string, platform model.Platform, log model.Logger) (model.Backend, error) {
	var selected model.BackendFactory

	if name == "" {
		provs := selectBackends(platform, log)
		if len(provs) == 0 {
			return nil, fmt.Errorf("%w for the %s platform", model.ErrNoSuitableBackend, platform)
		}

		selected = provs[0]
	} else {
		prov, err := selectBackend(name, platform, log)
		if err != nil {
			return nil, err
		}

		selected = prov
	}

	log.Debug("Selected backend", "backend", selected.Name(), "platform", platform)

	return selected.New(log)
}
