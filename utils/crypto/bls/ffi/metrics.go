// Copyright (C) 2019-2023, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package ffi

import (
	"errors"

	"github.com/prometheus/client_golang/prometheus"
)

const (
	operationLabel = "operation"
	statusLabel    = "status"
)

type metrics struct {
	calls    *prometheus.CounterVec
	failures *prometheus.CounterVec
}

func newMetrics(namespace string, registerer prometheus.Registerer) (*metrics, error) {
	m := &metrics{
		calls: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "calls",
				Help:      "Number of calls served across the boundary",
			},
			[]string{operationLabel},
		),
		failures: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "failures",
				Help:      "Number of calls that returned a non-ok status",
			},
			[]string{operationLabel, statusLabel},
		),
	}
	err := errors.Join(
		registerer.Register(m.calls),
		registerer.Register(m.failures),
	)
	return m, err
}

func (m *metrics) observe(op string, status Status) {
	m.calls.WithLabelValues(op).Inc()
	if status != StatusOK {
		m.failures.WithLabelValues(op, status.String()).Inc()
	}
}
