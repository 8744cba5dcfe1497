// SPDX-FileCopyrightText: Copyright (c) 2016-2025, CloudZero, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

package handlers_test

import (
	"io"
	"testing"

	"github.com/go-obvious/server/test"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cloudzero/pacman/app/handlers"
)

func TestUnit_Handlers_PromMetrics(t *testing.T) {
	reg := prometheus.NewRegistry()
	games := prometheus.NewCounter(prometheus.CounterOpts{
		Name: "pacman_test_games_total",
		Help: "Games played in the test.",
	})
	reg.MustRegister(games)
	games.Add(3)

	promMetrics := handlers.NewPromMetricsAPI("/", reg)

	tests := []struct {
		name               string
		path               string
		expectedStatusCode int
		expectedBody       string
	}{
		{
			name:               "QueryIndex",
			path:               "/",
			expectedStatusCode: 200,
			expectedBody:       "pacman_test_games_total 3",
		},
		{
			name:               "QueryErr",
			path:               "/does/not/exist",
			expectedStatusCode: 404,
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			req := createRequest("GET", tc.path, nil)
			resp, err := test.InvokeService(promMetrics.Service, tc.path, *req)
			require.NoError(t, err)
			defer resp.Body.Close()
			assert.Equal(t, tc.expectedStatusCode, resp.StatusCode)

			if tc.expectedBody != "" {
				body, err := io.ReadAll(resp.Body)
				require.NoError(t, err)
				assert.Contains(t, string(body), tc.expectedBody)
			}
		})
	}
}

func TestUnit_Handlers_PromMetricsDefaultGatherer(t *testing.T) {
	promMetrics := handlers.NewPromMetricsAPI("/", nil)

	req := createRequest("GET", "/", nil)
	resp, err := test.InvokeService(promMetrics.Service, "/", *req)
	require.NoError(t, err)
	defer resp.Body.Close()
	assert.Equal(t, 200, resp.StatusCode)
}
