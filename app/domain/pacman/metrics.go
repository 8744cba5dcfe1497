// SPDX-FileCopyrightText: Copyright (c) 2016-2025, CloudZero, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

package pacman

import (
	"errors"
	"sync"

	"github.com/prometheus/client_golang/prometheus"

	"github.com/cloudzero/pacman/app/types"
)

const (
	resultSuccess = "success"
	resultError   = "error"
)

var (
	metricsOnce sync.Once

	highScoresSubmittedTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: types.Metric("highscores_submitted_total"),
			Help: "Total number of high score submissions, by result.",
		},
		[]string{"result"},
	)

	userStatsUpdatesTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: types.Metric("user_stats_updates_total"),
			Help: "Total number of player stats updates, by result.",
		},
		[]string{"result"},
	)

	userSessionsCreatedTotal = prometheus.NewCounter(
		prometheus.CounterOpts{
			Name: types.Metric("user_sessions_created_total"),
			Help: "Total number of player sessions handed out.",
		},
	)
)

func registerMetrics() {
	metricsOnce.Do(func() {
		for _, c := range []prometheus.Collector{
			highScoresSubmittedTotal,
			userStatsUpdatesTotal,
			userSessionsCreatedTotal,
		} {
			if err := prometheus.Register(c); err != nil {
				var are prometheus.AlreadyRegisteredError
				if !errors.As(err, &are) {
					panic(err)
				}
			}
		}
	})
}
