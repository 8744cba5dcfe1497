// SPDX-FileCopyrightText: Copyright (c) 2016-2025, CloudZero, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

package auto

import (
	"errors"
	"sync"

	"github.com/prometheus/client_golang/prometheus"
)

const resultSuccess = "success"

var (
	metricsOnce sync.Once

	// probeAttemptsTotal counts probe attempts by provider and result. Result is
	// "success" or one of the failure kinds reported by types.Classify.
	probeAttemptsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "pacman_location_probe_total",
			Help: "Total number of cloud metadata probe attempts, by provider and result.",
		},
		[]string{"provider", "result"},
	)

	probeDuration = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "pacman_location_probe_duration_seconds",
			Help:    "Duration of cloud metadata probe attempts in seconds.",
			Buckets: []float64{.005, .01, .05, .1, .25, .5, 1, 2.5, 5, 10},
		},
		[]string{"provider"},
	)
)

func registerMetrics() {
	metricsOnce.Do(func() {
		for _, c := range []prometheus.Collector{probeAttemptsTotal, probeDuration} {
			if err := prometheus.Register(c); err != nil {
				var are prometheus.AlreadyRegisteredError
				if !errors.As(err, &are) {
					panic(err)
				}
			}
		}
	})
}
