// SPDX-FileCopyrightText: Copyright (c) 2016-2025, CloudZero, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

// Package healthz provides a process-wide registry of named health checks
// and the HTTP handler that runs them.
//
// Components register their checks during initialization:
//
//	healthz.Register("database", func() error {
//		return core.Ping(ctx, db)
//	})
//
// GET /healthz runs the checks in parallel and answers 200 "ok" when every
// check passes, otherwise 500 with "<name> failed: <error>" for the first
// failing check in name order.
package healthz

import (
	"net/http"
	"sort"
	"sync"

	"golang.org/x/sync/errgroup"
)

// HealthCheck returns nil when the component is healthy. It should be fast.
type HealthCheck func() error

// HealthChecker runs the registered checks behind an HTTP handler.
type HealthChecker interface {
	EndpointHandler() http.HandlerFunc
}

// Register adds or replaces the check named name in the global registry.
func Register(name string, fn HealthCheck) {
	// get the interface and cast to internal type
	chkr, success := NewHealthz().(*checker)
	if !success {
		panic("unexpected type mismatch")
	}
	chkr.add(name, fn)
}

// Unregister removes the check named name. Unknown names are ignored.
func Unregister(name string) {
	chkr, success := NewHealthz().(*checker)
	if !success {
		panic("unexpected type mismatch")
	}
	chkr.remove(name)
}

var (
	h    *checker
	once sync.Once
)

type checker struct {
	mu     sync.Mutex
	checks map[string]HealthCheck
}

// NewHealthz returns the singleton HealthChecker.
func NewHealthz() HealthChecker {
	once.Do(func() {
		h = &checker{}
	})
	return h
}

func (x *checker) add(name string, fn HealthCheck) {
	x.mu.Lock()
	defer x.mu.Unlock()
	if x.checks == nil {
		x.checks = make(map[string]HealthCheck)
	}
	x.checks[name] = fn
}

func (x *checker) remove(name string) {
	x.mu.Lock()
	defer x.mu.Unlock()
	delete(x.checks, name)
}

type namedCheck struct {
	name string
	fn   HealthCheck
}

// snapshot copies the registry so checks run without the lock held.
func (x *checker) snapshot() []namedCheck {
	x.mu.Lock()
	defer x.mu.Unlock()
	out := make([]namedCheck, 0, len(x.checks))
	for name, fn := range x.checks {
		out = append(out, namedCheck{name: name, fn: fn})
	}
	sort.Slice(out, func(i, j int) bool { return out[i].name < out[j].name })
	return out
}

func (x *checker) EndpointHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, _ *http.Request) {
		checks := x.snapshot()
		errs := make([]error, len(checks))

		var g errgroup.Group
		for i, check := range checks {
			g.Go(func() error {
				errs[i] = check.fn()
				return nil
			})
		}
		_ = g.Wait()

		for i, err := range errs {
			if err != nil {
				w.WriteHeader(http.StatusInternalServerError)
				_, _ = w.Write([]byte(checks[i].name + " failed: " + err.Error()))
				return
			}
		}
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("ok")) // ignore return values
	}
}
