// Copyright (c) 2025-2026, R.I. Pienaar and the Choria Project contributors
//
// SPDX-License-Identifier: Apache-2.0

package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
)

var (
	NameSpace = "choria"
	Subsystem = "crosszip"

	// OperationTime is a summary of the time taken by complete archive and extract operations
	OperationTime = prometheus.NewSummaryVec(prometheus.SummaryOpts{
		Name: prometheus.BuildFQName(NameSpace, Subsystem, "operation_duration_seconds"),
		Help: "Time taken to complete archive and extract operations",
	}, []string{"operation", "backend"})

	// OperationErrors counts failed operations by the kind of failure
	OperationErrors = prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: prometheus.BuildFQName(NameSpace, Subsystem, "operation_error_count"),
		Help: "How many archive and extract operations failed",
	}, []string{"operation", "backend", "kind"})

	// BackendInvocationTime is a summary of the time the native archive programs ran for
	BackendInvocationTime = prometheus.NewSummaryVec(prometheus.SummaryOpts{
		Name: prometheus.BuildFQName(NameSpace, Subsystem, "backend_invocation_duration_seconds"),
		Help: "Time taken by backend program invocations",
	}, []string{"backend", "command"})

	// StagingAreasActive is how many staging directories currently exist
	StagingAreasActive = prometheus.NewGauge(prometheus.GaugeOpts{
		Name: prometheus.BuildFQName(NameSpace, Subsystem, "staging_areas_active"),
		Help: "How many staging directories currently exist",
	})
)

// RegisterMetrics registers all collectors with reg, prometheus.DefaultRegisterer when reg is nil
func RegisterMetrics(reg prometheus.Registerer) {
	if reg == nil {
		reg = prometheus.DefaultRegisterer
	}

	reg.MustRegister(OperationTime)
	reg.MustRegister(OperationErrors)
	reg.MustRegister(BackendInvocationTime)
	reg.MustRegister(StagingAreasActive)
}
