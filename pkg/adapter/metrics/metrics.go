// Copyright (c) 2024 Behnam Momeni
// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at https://mozilla.org/MPL/2.0/.

// Package metrics collects the prometheus metrics of the fleetmon
// server on a dedicated registry. A Metrics instance is created once by
// the serve command and shared by the gin middleware, the ledger use
// case (as its fault observer), and the geometry cache.
package metrics

import (
	"context"
	"net/http"
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const namespace = "fleetmon"

// Cache lookup results, used as the result label value.
const (
	CacheHit   = "hit"
	CacheMiss  = "miss"
	CacheError = "error"
)

// Metrics holds the collectors of the server and the registry which
// they are registered on.
type Metrics struct {
	registry *prometheus.Registry

	requests     *prometheus.CounterVec
	durations    *prometheus.HistogramVec
	ledgerFaults *prometheus.CounterVec
	cacheLookups *prometheus.CounterVec
}

// New creates a registry with the Go runtime and process collectors
// and registers all fleetmon collectors on it.
func New() *Metrics {
	m := &Metrics{
		registry: prometheus.NewRegistry(),
		requests: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "http_requests_total",
				Help:      "Total HTTP requests.",
			},
			[]string{"method", "path", "status"},
		),
		durations: prometheus.NewHistogramVec(
			prometheus.HistogramOpts{
				Namespace: namespace,
				Name:      "http_request_duration_seconds",
				Help:      "HTTP request duration in seconds.",
				Buckets:   prometheus.DefBuckets,
			},
			[]string{"method", "path", "status"},
		),
		ledgerFaults: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "ledger_multiple_open_assignments_total",
				Help:      "Lookups which found more than one open assignment.",
			},
			[]string{"scope"},
		),
		cacheLookups: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "geometry_cache_lookups_total",
				Help:      "Route geometry cache lookups by result.",
			},
			[]string{"result"},
		),
	}
	m.registry.MustRegister(
		m.requests,
		m.durations,
		m.ledgerFaults,
		m.cacheLookups,
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
	return m
}

// Handler returns an http.Handler which exposes the registry in the
// prometheus text format.
func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{
		Registry: m.registry,
	})
}

// ObserveRequest records one served HTTP request. The path must be
// the route template (not the concrete URL) so the label cardinality
// stays bounded.
func (m *Metrics) ObserveRequest(
	method, path string, status int, d time.Duration,
) {
	s := strconv.Itoa(status)
	m.requests.WithLabelValues(method, path, s).Inc()
	m.durations.WithLabelValues(method, path, s).Observe(d.Seconds())
}

// MultipleOpenAssignments counts one ledger integrity fault for the
// given scope. Metrics implements the ledgeruc.FaultObserver interface.
func (m *Metrics) MultipleOpenAssignments(
	_ context.Context, scope string, _ int,
) {
	m.ledgerFaults.WithLabelValues(scope).Inc()
}

// CacheLookup counts one cache lookup with the given result, being
// one of CacheHit, CacheMiss, or CacheError.
func (m *Metrics) CacheLookup(result string) {
	m.cacheLookups.WithLabelValues(result).Inc()
}
