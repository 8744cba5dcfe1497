// SPDX-FileCopyrightText: Copyright (c) 2016-2025, CloudZero, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

// Package middleware provides standard app middlware implementations
package middleware

import (
	"errors"
	"net/http"
	"sync"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/cloudzero/pacman/app/types"
)

type statusRecorder struct {
	http.ResponseWriter
	status int
}

func (r *statusRecorder) WriteHeader(code int) {
	r.status = code
	r.ResponseWriter.WriteHeader(code)
}

var (
	httpRequestDuration = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Name: types.Metric("http_request_duration_seconds"),
			Help: "Duration of HTTP requests in seconds.",
		},
		[]string{"code", "method"},
	)
	httpRequestsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: types.Metric("http_requests_total"),
			Help: "Count of all HTTP requests processed, labeled by method and status code.",
		},
		[]string{"code", "method"},
	)
	metricsOnce sync.Once
)

func registerMetrics() {
	metricsOnce.Do(func() {
		for _, c := range []prometheus.Collector{httpRequestDuration, httpRequestsTotal} {
			if err := prometheus.Register(c); err != nil {
				var are prometheus.AlreadyRegisteredError
				if !errors.As(err, &are) {
					panic(err)
				}
			}
		}
	})
}

// PromHTTPMiddleware instruments HTTP requests with Prometheus metrics.
func PromHTTPMiddleware(next http.Handler) http.Handler {
	registerMetrics()
	return promhttp.InstrumentHandlerDuration(
		httpRequestDuration,
		promhttp.InstrumentHandlerCounter(
			httpRequestsTotal,
			next,
		),
	)
}

// LoggingMiddlewareWrapper logs one line per request. Probe and scrape
// endpoints log at trace.
func LoggingMiddlewareWrapper(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		startTime := time.Now()
		recorder := &statusRecorder{ResponseWriter: w, status: http.StatusOK}

		next.ServeHTTP(recorder, r)

		route := r.URL.Path
		level := zerolog.DebugLevel
		if route == "/healthz" || route == "/metrics" {
			level = zerolog.TraceLevel
		}

		log.Ctx(r.Context()).WithLevel(level).
			Str("method", r.Method).
			Str("route", route).
			Int("statusCode", recorder.status).
			Str("status", http.StatusText(recorder.status)).
			Dur("duration", time.Since(startTime)).
			Str("client", r.RemoteAddr).
			Msg("HTTP request")
	})
}
